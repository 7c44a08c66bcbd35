package server

import (
	"fmt"
	"net/http"
	"sync"

	"munchies/internal/config"
	"munchies/internal/logger"
	"munchies/internal/reports"
	"munchies/internal/storage"
)

// Server represents the main application server
type Server struct {
	Config    *config.Config
	Generator *reports.ReportGenerator
	Storage   storage.StorageClient
	Files     *FileManager

	exportMutex sync.Mutex
	log         *logger.Logger
}

// NewServer creates a new server instance. Exports triggered over HTTP are
// written below cfg.ExportDir.
func NewServer(cfg *config.Config) (*Server, error) {
	log := logger.GetGlobalLogger().WithComponent("server")

	generator, err := reports.NewReportGenerator(reports.Options{
		SpoonImagePath: cfg.SpoonImagePath,
		EChartsURL:     cfg.EChartsCDNURL,
		DebugAssets:    cfg.DebugAssets,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create report generator: %w", err)
	}

	client, err := storage.NewLocalStorageClient(cfg.ExportDir)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize export storage: %w", err)
	}
	log.Info("Export storage ready", map[string]interface{}{
		"root": client.Root(),
	})

	s := &Server{
		Config:    cfg,
		Generator: generator,
		Storage:   client,
		log:       log,
	}
	s.Files = NewFileManager(s)
	return s, nil
}

// SetupRoutes configures HTTP routes for the server
func (s *Server) SetupRoutes() *http.ServeMux {
	mux := http.NewServeMux()

	mux.HandleFunc("/health", s.HandleHealth)
	mux.HandleFunc("/api/charts", s.HandleListCharts)
	mux.HandleFunc("/api/charts/", s.HandleChartDescription)
	mux.HandleFunc("/charts/", s.HandleChart)
	mux.HandleFunc("/export", s.HandleExport)
	mux.HandleFunc("/exports/", s.HandleExportFile)

	// Root is the catch-all, so it rejects anything but "/" itself
	mux.HandleFunc("/", s.HandleRoot)

	return mux
}

// Close cleans up server resources
func (s *Server) Close() error {
	if s.Storage != nil {
		return s.Storage.Close()
	}
	return nil
}
