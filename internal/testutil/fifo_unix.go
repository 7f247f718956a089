//go:build unix

package testutil

import "syscall"

// MakeFIFO creates a named pipe at path.
func MakeFIFO(path string) error {
	return syscall.Mkfifo(path, 0o644)
}
