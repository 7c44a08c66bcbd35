package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"munchies/internal/config"
	"munchies/internal/logger"
	"munchies/internal/server"
)

func main() {
	ctx := context.Background()

	cfg, err := config.Load(ctx)
	if err != nil {
		logger.Fatal("Failed to load configuration", err)
	}
	logger.Configure(cfg.LogLevel, cfg.LogFormat)

	logger.Info("Starting munchies dashboard", map[string]interface{}{
		"port":        cfg.Port,
		"environment": cfg.Environment,
		"version":     config.GetVersion(),
		"export_dir":  cfg.ExportDir,
	})

	if cfg.IsProduction() && cfg.DebugAssets {
		logger.Warn("DEBUG_ASSETS is enabled in production, page script is not minified")
	}

	srv, err := server.NewServer(cfg)
	if err != nil {
		logger.Fatal("Failed to create server", err)
	}
	defer srv.Close()

	httpServer := newHTTPServer(cfg, srv.SetupRoutes())

	go func() {
		logger.Infof("Server listening on :%s", cfg.Port)
		if err := httpServer.ListenAndServe(); !errors.Is(err, http.ErrServerClosed) {
			logger.Fatal("HTTP server error", err)
		}
	}()

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)
	<-sigChan

	logger.Info("Shutting down server...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := httpServer.Shutdown(shutdownCtx); err != nil {
		logger.Error("Server shutdown error", err)
	}

	logger.Info("Server stopped")
}

func newHTTPServer(cfg *config.Config, handler http.Handler) *http.Server {
	return &http.Server{
		Addr:         ":" + cfg.Port,
		Handler:      handler,
		ReadTimeout:  30 * time.Second,
		WriteTimeout: 120 * time.Second, // exports render every chart
		IdleTimeout:  60 * time.Second,
	}
}
