package storage

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"strings"
)

// ErrOutsideRoot is returned for paths that escape the storage root
var ErrOutsideRoot = errors.New("path escapes storage root")

// LocalStorageClient stores files below a base directory on the local disk
type LocalStorageClient struct {
	rootDir string
}

// NewLocalStorageClient creates the base directory if needed
func NewLocalStorageClient(baseDir string) (*LocalStorageClient, error) {
	if baseDir == "" {
		baseDir = "."
	}
	if err := os.MkdirAll(baseDir, 0755); err != nil {
		return nil, fmt.Errorf("failed to create base directory %s: %w", baseDir, err)
	}
	return &LocalStorageClient{rootDir: baseDir}, nil
}

// Root returns the base directory
func (l *LocalStorageClient) Root() string {
	return l.rootDir
}

// Close is a no-op for local storage
func (l *LocalStorageClient) Close() error {
	return nil
}

// resolve maps a relative slash path onto the root, rejecting escapes
func (l *LocalStorageClient) resolve(p string) (string, error) {
	clean := filepath.Clean(filepath.FromSlash(strings.TrimPrefix(p, "/")))
	if clean == ".." || strings.HasPrefix(clean, ".."+string(filepath.Separator)) {
		return "", fmt.Errorf("%s: %w", p, ErrOutsideRoot)
	}
	return filepath.Join(l.rootDir, clean), nil
}

// CreateDir creates a directory below the root
func (l *LocalStorageClient) CreateDir(ctx context.Context, dirPath string) error {
	full, err := l.resolve(dirPath)
	if err != nil {
		return err
	}
	if err := os.MkdirAll(full, 0755); err != nil {
		return fmt.Errorf("failed to create directory %s: %w", full, err)
	}
	return nil
}

// StoreFile writes a file, creating parent directories as needed
func (l *LocalStorageClient) StoreFile(ctx context.Context, filePath string, fileData []byte) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	full, err := l.resolve(filePath)
	if err != nil {
		return err
	}

	dir := filepath.Dir(full)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("failed to create directory %s: %w", dir, err)
	}
	if err := os.WriteFile(full, fileData, 0644); err != nil {
		return fmt.Errorf("failed to write file %s: %w", full, err)
	}
	return nil
}

// GetFile retrieves a file from local storage
func (l *LocalStorageClient) GetFile(ctx context.Context, filePath string) ([]byte, error) {
	full, err := l.resolve(filePath)
	if err != nil {
		return nil, err
	}
	data, err := os.ReadFile(full)
	if err != nil {
		return nil, fmt.Errorf("failed to read file %s: %w", full, err)
	}
	return data, nil
}

// ListDir lists entries of a directory as slash paths relative to the root,
// sorted. Recursive listings contain files only.
func (l *LocalStorageClient) ListDir(ctx context.Context, dirPath string, recursive bool) ([]string, error) {
	full, err := l.resolve(dirPath)
	if err != nil {
		return nil, err
	}

	var out []string
	if !recursive {
		entries, err := os.ReadDir(full)
		if err != nil {
			return nil, fmt.Errorf("failed to list directory %s: %w", full, err)
		}
		for _, e := range entries {
			rel, _ := filepath.Rel(l.rootDir, filepath.Join(full, e.Name()))
			out = append(out, filepath.ToSlash(rel))
		}
		return out, nil
	}

	err = filepath.WalkDir(full, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() {
			return nil
		}
		rel, _ := filepath.Rel(l.rootDir, path)
		out = append(out, filepath.ToSlash(rel))
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("failed to walk directory %s: %w", full, err)
	}
	sort.Strings(out)
	return out, nil
}

// FileExists reports whether a regular file exists at the path
func (l *LocalStorageClient) FileExists(ctx context.Context, filePath string) (bool, error) {
	full, err := l.resolve(filePath)
	if err != nil {
		return false, err
	}
	info, err := os.Stat(full)
	if errors.Is(err, fs.ErrNotExist) {
		return false, nil
	}
	if err != nil {
		return false, fmt.Errorf("failed to stat %s: %w", full, err)
	}
	return !info.IsDir(), nil
}
