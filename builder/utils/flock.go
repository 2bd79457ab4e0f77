package utils

import (
	"fmt"
	"os"
	"path/filepath"
	"time"
)

// LockFileName is created in the project directory while a build runs.
const LockFileName = ".blogbuilder.lock"

// FileLock gives one process exclusive use of a project directory.
type FileLock struct {
	file *os.File
	path string
}

// AcquireBuildLock fails fast when another build holds the project.
func AcquireBuildLock(projectDir string) (*FileLock, error) {
	lockPath := filepath.Join(projectDir, LockFileName)

	file, err := os.OpenFile(lockPath, os.O_CREATE|os.O_RDWR, 0644)
	if err != nil {
		return nil, fmt.Errorf("failed to create lock file: %w", err)
	}

	if err := tryLock(file); err != nil {
		_ = file.Close()
		return nil, fmt.Errorf("another build is in progress (lock file: %s)", lockPath)
	}

	owner := fmt.Sprintf("%d\n%s", os.Getpid(), time.Now().Format(time.RFC3339))
	_ = file.Truncate(0)
	_, _ = file.WriteAt([]byte(owner), 0)

	return &FileLock{file: file, path: lockPath}, nil
}

func (fl *FileLock) Release() error {
	if fl == nil || fl.file == nil {
		return nil
	}

	_ = unlock(fl.file)
	err := fl.file.Close()
	fl.file = nil

	_ = os.Remove(fl.path)
	return err
}
