//go:build android

package utils

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// EnsureStorageDir creates the preference directory before gdata opens it.
// gdata stores under /data/data/{package}/ on Android but does not create
// subdirectories itself.
func EnsureStorageDir() error {
	dir := GetStoragePath()
	if dir == "" {
		return fmt.Errorf("failed to detect Android package name")
	}
	saves := filepath.Join(dir, "saves")
	if err := os.MkdirAll(saves, 0o755); err != nil {
		return fmt.Errorf("failed to create storage directory %s: %w", saves, err)
	}
	return nil
}

// GetStoragePath returns /data/data/{package}, or "" if the package name
// can't be read.
func GetStoragePath() string {
	// /proc/self/cmdline 以 NUL 结尾，第一个参数即包名
	data, err := os.ReadFile("/proc/self/cmdline")
	if err != nil {
		return ""
	}
	name := strings.TrimSpace(strings.SplitN(string(data), "\x00", 2)[0])
	if name == "" {
		return ""
	}
	return filepath.Join("/data/data", name)
}
