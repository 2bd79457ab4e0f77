//go:build !windows

package utils

import (
	"os"
	"syscall"
)

// tryLock takes a non-blocking exclusive flock.
func tryLock(file *os.File) error {
	return syscall.Flock(int(file.Fd()), syscall.LOCK_EX|syscall.LOCK_NB)
}

func unlock(file *os.File) error {
	return syscall.Flock(int(file.Fd()), syscall.LOCK_UN)
}
