//go:build !unix

package main

import (
	"fmt"
	"os"
)

// redirectStdIO swaps os.Stdout and os.Stderr for the file. Runtime output
// such as panics still goes to the original descriptors.
func redirectStdIO(path string) error {
	if path == "" {
		return nil
	}
	f, err := os.OpenFile(path, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o644)
	if err != nil {
		return fmt.Errorf("open stdio log: %w", err)
	}
	os.Stdout = f
	os.Stderr = f
	return nil
}
