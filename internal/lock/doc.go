// Package lock handles parsing of Cargo.lock files. The lock file records
// the exact resolved version of every package in the dependency graph,
// which is what pins the crates this tool passes to cargo doc.
package lock
