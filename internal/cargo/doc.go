// Package cargo wraps invocations of the cargo binary. It builds the
// argument list for cargo doc, runs the child process with stdout and
// stderr passed through unmodified, and distinguishes launch failures
// from ordinary non-zero exits.
package cargo
