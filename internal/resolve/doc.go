// Package resolve turns declared manifest dependencies into version-pinned
// crates by cross-referencing Cargo.lock, and applies user include/exclude
// lists to the resulting set.
package resolve
