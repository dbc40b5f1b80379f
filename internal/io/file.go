package ioutils

import (
	"os"
)

// WriteFile writes data to a file with mode 0644, truncating any
// existing content.
func WriteFile(path string, data []byte) error {
	return os.WriteFile(path, data, 0644)
}

// EnsureDir creates a directory and all missing parents with mode 0755.
// An existing directory is not an error.
func EnsureDir(path string) error {
	return os.MkdirAll(path, 0755)
}
