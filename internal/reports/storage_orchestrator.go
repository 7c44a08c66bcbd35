package reports

import (
	"context"
	"fmt"
	"path"
	"sort"

	"github.com/samber/lo"

	"munchies/internal/logger"
	"munchies/internal/storage"
)

// StorageOrchestrator writes generated files through a storage client
type StorageOrchestrator struct {
	storage storage.StorageClient
	log     *logger.Logger
}

// NewStorageOrchestrator creates a new storage orchestrator
func NewStorageOrchestrator(client storage.StorageClient) *StorageOrchestrator {
	return &StorageOrchestrator{
		storage: client,
		log:     logger.GetGlobalLogger().WithComponent("storage"),
	}
}

// StoreAllFiles writes index.html and every chart file below files.FolderPath
// and returns the stored paths in a stable order
func (so *StorageOrchestrator) StoreAllFiles(ctx context.Context, files *GeneratedFiles) ([]string, error) {
	if files == nil {
		return nil, fmt.Errorf("no files to store")
	}

	if files.FolderPath != "" {
		if err := so.storage.CreateDir(ctx, files.FolderPath); err != nil {
			return nil, fmt.Errorf("failed to create export folder: %w", err)
		}
	}

	all := lo.Assign(files.ChartFiles, files.JSONFiles, map[string][]byte{
		"index.html": []byte(files.HTMLContent),
	})
	names := lo.Keys(all)
	sort.Strings(names)

	stored := make([]string, 0, len(names))
	for _, name := range names {
		p := path.Join(files.FolderPath, name)
		if err := so.storage.StoreFile(ctx, p, all[name]); err != nil {
			return stored, fmt.Errorf("failed to store %s: %w", p, err)
		}
		stored = append(stored, p)
	}

	so.log.Info("Export stored", map[string]interface{}{
		"folder": files.FolderPath,
		"files":  len(stored),
	})
	return stored, nil
}
