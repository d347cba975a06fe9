package utils

import (
	"fmt"
	"os"
	"path/filepath"
)

// FileExists reports whether path names an existing file or directory.
// Dictionary sources may be either, so no mode check is made.
func FileExists(path string) bool {
	_, err := os.Stat(path)
	return err == nil
}

// ExecutableDir returns the directory holding the running binary, with
// symlinks resolved so installs through a link still find their data.
func ExecutableDir() (string, error) {
	execPath, err := os.Executable()
	if err != nil {
		return "", err
	}
	if resolved, err := filepath.EvalSymlinks(execPath); err == nil {
		execPath = resolved
	}
	return filepath.Dir(execPath), nil
}

// AbsPath returns path made absolute, or path unchanged when that fails.
func AbsPath(path string) string {
	if abs, err := filepath.Abs(path); err == nil {
		return abs
	}
	return path
}

// PrepareDir creates dir when missing and checks that a file can be created
// in it. A nil error means dir can hold a config file.
func PrepareDir(dir string) error {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("creating %s: %w", dir, err)
	}
	f, err := os.CreateTemp(dir, ".wordcost-*")
	if err != nil {
		return fmt.Errorf("%s is not writable: %w", dir, err)
	}
	name := f.Name()
	f.Close()
	return os.Remove(name)
}
