// Package embedded gives other packages access to the data files embedded
// by the main package.
//
// //go:embed only sees the declaring package's directory, so the embed.FS
// lives in the repository root (embed.go) and is handed over with Init
// before anything reads configuration.
package embedded

import (
	"errors"
	"fmt"
	"io/fs"
	"path/filepath"
	"strings"
)

// ErrNotInitialized is returned by every accessor before Init.
var ErrNotInitialized = errors.New("embedded package not initialized, call Init() first")

const dataPrefix = "data/"

var dataFS fs.FS

// Init registers the embedded data filesystem.
// Must be called at the start of main, before any resource is loaded.
func Init(data fs.FS) {
	dataFS = data
}

// IsInitialized reports whether Init has been called with a filesystem.
func IsInitialized() bool {
	return dataFS != nil
}

// normalize converts path to the slash-separated form embed.FS expects and
// checks it is under data/.
func normalize(path string) (string, error) {
	path = filepath.ToSlash(path)
	path = strings.TrimPrefix(path, "./")
	if !strings.HasPrefix(path, dataPrefix) {
		return "", fmt.Errorf("unknown resource path prefix: %s (must start with '%s')", path, dataPrefix)
	}
	return path, nil
}

// ReadFile reads an embedded file. The path must start with "data/".
func ReadFile(path string) ([]byte, error) {
	if !IsInitialized() {
		return nil, ErrNotInitialized
	}
	p, err := normalize(path)
	if err != nil {
		return nil, err
	}
	return fs.ReadFile(dataFS, p)
}

// Exists reports whether an embedded file exists.
func Exists(path string) bool {
	if !IsInitialized() {
		return false
	}
	p, err := normalize(path)
	if err != nil {
		return false
	}
	_, err = fs.Stat(dataFS, p)
	return err == nil
}

// ReadDir lists an embedded directory.
func ReadDir(path string) ([]fs.DirEntry, error) {
	if !IsInitialized() {
		return nil, ErrNotInitialized
	}
	p, err := normalize(path)
	if err != nil {
		return nil, err
	}
	return fs.ReadDir(dataFS, strings.TrimSuffix(p, "/"))
}
