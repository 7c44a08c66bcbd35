package main

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"munchies/internal/config"
	"munchies/internal/server"
)

func TestHealthEndpoint(t *testing.T) {
	cfg := &config.Config{
		Port:           "8981",
		SpoonImagePath: "assets/grey_spoon.png",
		ExportDir:      t.TempDir(),
		Environment:    "test",
	}

	srv, err := server.NewServer(cfg)
	if err != nil {
		t.Fatalf("Failed to create server: %v", err)
	}
	defer srv.Close()

	httpServer := newHTTPServer(cfg, srv.SetupRoutes())
	if httpServer.Addr != ":8981" {
		t.Errorf("Expected addr :8981, got %s", httpServer.Addr)
	}

	req, err := http.NewRequest("GET", "/health", nil)
	if err != nil {
		t.Fatal(err)
	}

	rr := httptest.NewRecorder()
	httpServer.Handler.ServeHTTP(rr, req)

	if status := rr.Code; status != http.StatusOK {
		t.Errorf("handler returned wrong status code: got %v want %v",
			status, http.StatusOK)
	}

	if !strings.Contains(rr.Body.String(), "healthy") {
		t.Errorf("handler returned unexpected body: got %v", rr.Body.String())
	}
}

func TestConfigLoad(t *testing.T) {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	cfg, err := config.Load(ctx)
	if err != nil {
		t.Fatalf("Config load failed with defaults: %v", err)
	}
	if cfg.SpoonImagePath == "" {
		t.Error("Expected a default spoon image path")
	}
}
