// Package fsutil is the single cross-platform file size probe. The legacy
// script chained GNU stat, BSD stat, and du; os.Stat covers all of them.
package fsutil

import "os"

// FileSize returns the size of the file at path in bytes.
func FileSize(path string) (int64, error) {
	fi, err := os.Stat(path)
	if err != nil {
		return 0, err
	}
	return fi.Size(), nil
}

// Exists reports whether path exists.
func Exists(path string) bool {
	_, err := os.Stat(path)
	return err == nil
}
