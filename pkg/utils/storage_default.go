//go:build !android

package utils

// EnsureStorageDir is a no-op: gdata creates its directory on these platforms.
func EnsureStorageDir() error {
	return nil
}

// GetStoragePath returns "" outside Android; gdata picks the location.
func GetStoragePath() string {
	return ""
}
