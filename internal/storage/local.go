// Package storage persists rendered credential images and hands back the
// public URL under which they are served.
package storage

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// LocalStore writes images to a directory served as static files. Saving
// the same name twice overwrites, mirroring an upsert into a bucket.
type LocalStore struct {
	dir        string
	publicBase string
}

func NewLocalStore(dir, publicBase string) (*LocalStore, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("os.MkdirAll -> %w", err)
	}

	return &LocalStore{
		dir:        dir,
		publicBase: strings.TrimSuffix(publicBase, "/"),
	}, nil
}

func (s *LocalStore) Save(_ context.Context, name string, data []byte) (string, error) {
	// Image names are built from numeric ids and meal types; reject
	// anything that would escape the directory.
	if name != filepath.Base(name) {
		return "", fmt.Errorf("invalid image name %q", name)
	}

	path := filepath.Join(s.dir, name)
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return "", fmt.Errorf("os.WriteFile -> %w", err)
	}

	return s.publicBase + "/" + name, nil
}

// Dir is the directory to mount as a static file route.
func (s *LocalStore) Dir() string {
	return s.dir
}
