// Package filex contains small filesystem helpers for the local media store.
// Uploaded images are copied into a per-user directory and addressed by the
// submission id, which makes the stored path stable enough to persist as the
// submission's display URL.
package filex

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
)

// EnsureDir creates dir (and parents) if it does not exist yet.
func EnsureDir(dir string) error {
	if err := os.MkdirAll(dir, 0o770); err != nil {
		return fmt.Errorf("mkdir %s: %w", dir, err)
	}
	return nil
}

// StoreMedia copies the file at srcPath into mediaDir/userID, named after id
// with the original extension preserved. It returns the destination path.
func StoreMedia(mediaDir, userID, id, srcPath string) (string, error) {
	dir := filepath.Join(mediaDir, userID)
	if err := EnsureDir(dir); err != nil {
		return "", err
	}

	src, err := os.Open(srcPath)
	if err != nil {
		return "", fmt.Errorf("open %s: %w", srcPath, err)
	}
	defer src.Close()

	dstPath := filepath.Join(dir, id+filepath.Ext(srcPath))
	dst, err := os.Create(dstPath)
	if err != nil {
		return "", fmt.Errorf("create %s: %w", dstPath, err)
	}
	defer dst.Close()

	if _, err := io.Copy(dst, src); err != nil {
		return "", fmt.Errorf("copy %s: %w", dstPath, err)
	}
	if err := dst.Close(); err != nil {
		return "", fmt.Errorf("close %s: %w", dstPath, err)
	}
	return dstPath, nil
}
