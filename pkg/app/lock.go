package app

import (
	"fmt"
	"os"
	"path/filepath"
)

// InstanceLock guards against a second running copy through exclusive
// creation of a lock file in the OS temp directory.
type InstanceLock struct {
	path string
	file *os.File
}

// AcquireInstanceLock creates the lock file for name. A second acquire of
// the same name fails until the first is released.
func AcquireInstanceLock(name string) (*InstanceLock, error) {
	path := filepath.Join(os.TempDir(), name+".lock")
	f, err := os.OpenFile(path, os.O_CREATE|os.O_EXCL|os.O_WRONLY, 0o600) //nolint:gosec // temp dir lock file
	if err != nil {
		if os.IsExist(err) {
			return nil, fmt.Errorf("another instance is already running (lock %s)", path)
		}
		return nil, fmt.Errorf("create lock file: %w", err)
	}
	fmt.Fprintf(f, "%d\n", os.Getpid())
	return &InstanceLock{path: path, file: f}, nil
}

// Release removes the lock file
func (l *InstanceLock) Release() {
	if l == nil || l.file == nil {
		return
	}
	_ = l.file.Close()
	_ = os.Remove(l.path)
	l.file = nil
}
