// Package project integrates manifest and lock loading with crate root
// discovery. It provides the Context type that holds resolved project paths
// and both parsed dependency files.
package project
