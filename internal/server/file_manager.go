package server

import (
	"context"
	"fmt"
	"path"
	"time"

	"munchies/internal/reports"
	"munchies/internal/storage"
)

// FileManager handles export file I/O for the server
type FileManager struct {
	server *Server
}

// ExportResult describes one stored export
type ExportResult struct {
	Status    string   `json:"status"`
	Folder    string   `json:"folder"`
	PageURL   string   `json:"page_url"`
	Files     []string `json:"files"`
	Timestamp string   `json:"timestamp"`
}

// NewFileManager creates a new file manager
func NewFileManager(server *Server) *FileManager {
	return &FileManager{server: server}
}

// Export renders every file and stores it under a dated folder:
// YYYY/MM/DD/munchies-YYYY-MM-DD-HH-MM-SS/
func (fm *FileManager) Export(ctx context.Context, timestamp time.Time) (*ExportResult, error) {
	files, err := fm.server.Generator.GenerateFiles(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to generate files: %w", err)
	}
	files.FolderPath = storage.GenerateExportFolderPath(timestamp)

	stored, err := reports.NewStorageOrchestrator(fm.server.Storage).StoreAllFiles(ctx, files)
	if err != nil {
		return nil, err
	}

	return &ExportResult{
		Status:    "success",
		Folder:    files.FolderPath,
		PageURL:   "/exports/" + path.Join(files.FolderPath, "index.html"),
		Files:     stored,
		Timestamp: timestamp.UTC().Format(time.RFC3339),
	}, nil
}

// Exists reports whether an exported file is present
func (fm *FileManager) Exists(ctx context.Context, filePath string) (bool, error) {
	return fm.server.Storage.FileExists(ctx, filePath)
}

// Read loads one exported file
func (fm *FileManager) Read(ctx context.Context, filePath string) ([]byte, error) {
	return fm.server.Storage.GetFile(ctx, filePath)
}
