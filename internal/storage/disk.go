package storage

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// DiskBucket stores objects as files under a base directory. Object paths
// use forward slashes regardless of OS; the content type is recorded nowhere
// because the serving layer derives it from the extension.
type DiskBucket struct {
	baseDir string
}

func NewDiskBucket(baseDir string) (*DiskBucket, error) {
	if err := os.MkdirAll(baseDir, 0o755); err != nil {
		return nil, fmt.Errorf("failed to create bucket directory: %w", err)
	}
	return &DiskBucket{baseDir: baseDir}, nil
}

func (b *DiskBucket) Download(ctx context.Context, path string) ([]byte, error) {
	abs, err := b.resolve(path)
	if err != nil {
		return nil, err
	}
	data, err := os.ReadFile(abs)
	if err != nil {
		return nil, fmt.Errorf("failed to read object %s: %w", path, err)
	}
	return data, nil
}

func (b *DiskBucket) Upload(ctx context.Context, path string, data []byte, contentType string) error {
	abs, err := b.resolve(path)
	if err != nil {
		return err
	}
	if err := os.MkdirAll(filepath.Dir(abs), 0o755); err != nil {
		return fmt.Errorf("failed to create object directory: %w", err)
	}
	if err := os.WriteFile(abs, data, 0o644); err != nil {
		return fmt.Errorf("failed to write object %s: %w", path, err)
	}
	return nil
}

func (b *DiskBucket) Remove(ctx context.Context, path string) error {
	abs, err := b.resolve(path)
	if err != nil {
		return err
	}
	if err := os.Remove(abs); err != nil && !os.IsNotExist(err) {
		return fmt.Errorf("failed to remove object %s: %w", path, err)
	}
	return nil
}

// resolve maps an object path to an absolute file path and rejects anything
// escaping the bucket root.
func (b *DiskBucket) resolve(path string) (string, error) {
	clean := filepath.Clean(filepath.FromSlash(path))
	if clean == "." || strings.HasPrefix(clean, "..") || filepath.IsAbs(clean) {
		return "", fmt.Errorf("invalid object path %q", path)
	}
	return filepath.Join(b.baseDir, clean), nil
}
