package storage

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"reflect"
	"testing"
)

func newClient(t *testing.T) *LocalStorageClient {
	t.Helper()
	client, err := NewLocalStorageClient(filepath.Join(t.TempDir(), "exports"))
	if err != nil {
		t.Fatalf("Failed to create LocalStorageClient: %v", err)
	}
	t.Cleanup(func() { client.Close() })
	return client
}

func TestNewLocalStorageClient(t *testing.T) {
	base := filepath.Join(t.TempDir(), "nested", "exports")

	client, err := NewLocalStorageClient(base)
	if err != nil {
		t.Fatalf("Failed to create LocalStorageClient: %v", err)
	}
	defer client.Close()

	if client.Root() != base {
		t.Errorf("Expected root '%s', got '%s'", base, client.Root())
	}
	if info, err := os.Stat(base); err != nil || !info.IsDir() {
		t.Errorf("Expected base directory to be created, stat err: %v", err)
	}
}

func TestLocalStorageClient_Close(t *testing.T) {
	client := newClient(t)
	if err := client.Close(); err != nil {
		t.Errorf("Close() returned unexpected error: %v", err)
	}
}

func TestLocalStorageClient_CreateDir(t *testing.T) {
	client := newClient(t)
	ctx := context.Background()

	tests := []struct {
		name    string
		dirPath string
		wantErr bool
	}{
		{"simple directory", "charts", false},
		{"nested directory", "2025/09/17/munchies", false},
		{"leading slash", "/png", false},
		{"escape attempt", "../outside", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := client.CreateDir(ctx, tt.dirPath)
			if (err != nil) != tt.wantErr {
				t.Fatalf("CreateDir(%q) error = %v, wantErr %v", tt.dirPath, err, tt.wantErr)
			}
			if tt.wantErr {
				if !errors.Is(err, ErrOutsideRoot) {
					t.Errorf("Expected ErrOutsideRoot, got %v", err)
				}
				return
			}
			full := filepath.Join(client.Root(), filepath.FromSlash(tt.dirPath))
			if info, err := os.Stat(full); err != nil || !info.IsDir() {
				t.Errorf("Expected directory %s to exist", full)
			}
		})
	}
}

func TestLocalStorageClient_StoreAndGetFile(t *testing.T) {
	client := newClient(t)
	ctx := context.Background()

	tests := []struct {
		name string
		path string
		data []byte
	}{
		{"html page", "index.html", []byte("<html></html>")},
		{"nested png", "charts/chart-trend.png", []byte{0x89, 'P', 'N', 'G'}},
		{"empty file", "empty.json", []byte{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if err := client.StoreFile(ctx, tt.path, tt.data); err != nil {
				t.Fatalf("StoreFile failed: %v", err)
			}

			got, err := client.GetFile(ctx, tt.path)
			if err != nil {
				t.Fatalf("GetFile failed: %v", err)
			}
			if string(got) != string(tt.data) {
				t.Errorf("Expected %q, got %q", tt.data, got)
			}

			exists, err := client.FileExists(ctx, tt.path)
			if err != nil || !exists {
				t.Errorf("Expected %s to exist, got %v (err %v)", tt.path, exists, err)
			}
		})
	}
}

func TestLocalStorageClient_StoreFileRejectsEscape(t *testing.T) {
	client := newClient(t)

	err := client.StoreFile(context.Background(), "../../evil.txt", []byte("x"))
	if !errors.Is(err, ErrOutsideRoot) {
		t.Errorf("Expected ErrOutsideRoot, got %v", err)
	}
}

func TestLocalStorageClient_StoreFileHonoursContext(t *testing.T) {
	client := newClient(t)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	if err := client.StoreFile(ctx, "late.txt", []byte("x")); !errors.Is(err, context.Canceled) {
		t.Errorf("Expected context.Canceled, got %v", err)
	}
}

func TestLocalStorageClient_GetFileMissing(t *testing.T) {
	client := newClient(t)
	if _, err := client.GetFile(context.Background(), "nope.txt"); err == nil {
		t.Error("Expected error for missing file")
	}
}

func TestLocalStorageClient_FileExists(t *testing.T) {
	client := newClient(t)
	ctx := context.Background()

	if err := client.CreateDir(ctx, "dir"); err != nil {
		t.Fatalf("CreateDir failed: %v", err)
	}

	exists, err := client.FileExists(ctx, "missing.txt")
	if err != nil || exists {
		t.Errorf("Expected missing file to not exist, got %v (err %v)", exists, err)
	}

	exists, err = client.FileExists(ctx, "dir")
	if err != nil || exists {
		t.Errorf("Expected directory to not count as a file, got %v (err %v)", exists, err)
	}
}

func TestLocalStorageClient_ListDir(t *testing.T) {
	client := newClient(t)
	ctx := context.Background()

	for _, p := range []string{"index.html", "charts/b.png", "charts/a.png", "charts/json/a.json"} {
		if err := client.StoreFile(ctx, p, []byte("x")); err != nil {
			t.Fatalf("StoreFile(%s) failed: %v", p, err)
		}
	}

	flat, err := client.ListDir(ctx, "charts", false)
	if err != nil {
		t.Fatalf("ListDir failed: %v", err)
	}
	if want := []string{"charts/a.png", "charts/b.png", "charts/json"}; !reflect.DeepEqual(flat, want) {
		t.Errorf("ListDir(charts) = %v, want %v", flat, want)
	}

	all, err := client.ListDir(ctx, "", true)
	if err != nil {
		t.Fatalf("recursive ListDir failed: %v", err)
	}
	want := []string{"charts/a.png", "charts/b.png", "charts/json/a.json", "index.html"}
	if !reflect.DeepEqual(all, want) {
		t.Errorf("recursive ListDir = %v, want %v", all, want)
	}

	if _, err := client.ListDir(ctx, "missing", false); err == nil {
		t.Error("Expected error listing a missing directory")
	}
}
