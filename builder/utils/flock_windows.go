//go:build windows

package utils

import (
	"os"
	"syscall"
	"unsafe"
)

var (
	kernel32     = syscall.NewLazyDLL("kernel32.dll")
	procLockEx   = kernel32.NewProc("LockFileEx")
	procUnlockEx = kernel32.NewProc("UnlockFile")
)

const (
	lockfileExclusiveLock   = 2
	lockfileFailImmediately = 1
	wholeFile               = 0xFFFFFFFF
)

func tryLock(file *os.File) error {
	var overlapped syscall.Overlapped
	ret, _, err := procLockEx.Call(
		file.Fd(),
		uintptr(lockfileExclusiveLock|lockfileFailImmediately),
		0,
		wholeFile,
		wholeFile,
		uintptr(unsafe.Pointer(&overlapped)),
	)
	if ret == 0 {
		return err
	}
	return nil
}

func unlock(file *os.File) error {
	ret, _, err := procUnlockEx.Call(file.Fd(), 0, 0, wholeFile, wholeFile)
	if ret == 0 {
		return err
	}
	return nil
}
