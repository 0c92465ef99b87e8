package main

import "fmt"

// exitError carries a child process exit code up to main so the wrapper
// can mirror cargo's exit status.
type exitError struct {
	code int
}

func (e *exitError) Error() string {
	return fmt.Sprintf("cargo exited with code %d", e.code)
}
