package server

import (
	"bytes"
	"encoding/json"
	"errors"
	"net/http"
	"strings"
	"time"

	"munchies/internal/charts"
	"munchies/internal/config"
	"munchies/internal/render"
	"munchies/internal/storage"
)

// HandleRoot renders the dashboard page
func (s *Server) HandleRoot(w http.ResponseWriter, r *http.Request) {
	if r.URL.Path != "/" {
		http.NotFound(w, r)
		return
	}
	if r.Method != http.MethodGet {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	page, err := s.Generator.GeneratePage(r.Context())
	if err != nil {
		s.log.Error("Failed to generate page", err)
		http.Error(w, "Failed to generate page", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", storage.GetContentType("index.html"))
	w.Write([]byte(page))
}

// HandleHealth provides health check endpoint
func (s *Server) HandleHealth(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	writeJSON(w, http.StatusOK, map[string]interface{}{
		"status":      "healthy",
		"version":     config.GetVersion(),
		"environment": s.Config.Environment,
		"timestamp":   time.Now().UTC().Format(time.RFC3339),
	})
}

// HandleListCharts lists the chart ids in page order
func (s *Server) HandleListCharts(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	gen, err := s.Generator.ChartGenerator()
	if err != nil {
		s.log.Error("Failed to prepare charts", err)
		http.Error(w, "Failed to prepare charts", http.StatusInternalServerError)
		return
	}

	ids := gen.IDs()
	writeJSON(w, http.StatusOK, map[string]interface{}{
		"charts": ids,
		"count":  len(ids),
	})
}

// HandleChartDescription returns one chart description as JSON
func (s *Server) HandleChartDescription(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	d, ok := s.describe(w, strings.TrimPrefix(r.URL.Path, "/api/charts/"))
	if !ok {
		return
	}
	writeJSON(w, http.StatusOK, d)
}

// HandleChart serves /charts/{id}.png as an image and /charts/{id} as a
// standalone interactive page
func (s *Server) HandleChart(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	name := strings.TrimPrefix(r.URL.Path, "/charts/")
	id, isPNG := strings.CutSuffix(name, ".png")

	d, ok := s.describe(w, id)
	if !ok {
		return
	}

	var buf bytes.Buffer
	renderer, file := render.Page, id+".html"
	if isPNG {
		renderer, file = render.PNG, name
	}
	if err := renderer(d, &buf); err != nil {
		s.log.Error("Failed to render chart", err, map[string]interface{}{
			"chart": id,
		})
		http.Error(w, "Failed to render chart", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", storage.GetContentType(file))
	w.Write(buf.Bytes())
}

// HandleExport writes a full export below the export directory
func (s *Server) HandleExport(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	if !s.exportMutex.TryLock() {
		s.log.Warn("Export already in progress, rejecting new request")
		writeJSON(w, http.StatusConflict, map[string]interface{}{
			"error":  "Export already in progress",
			"status": "conflict",
		})
		return
	}
	defer s.exportMutex.Unlock()

	result, err := s.Files.Export(r.Context(), time.Now())
	if err != nil {
		s.log.Error("Export failed", err)
		http.Error(w, "Export failed", http.StatusInternalServerError)
		return
	}
	writeJSON(w, http.StatusOK, result)
}

// HandleExportFile serves a previously exported file
func (s *Server) HandleExportFile(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	filePath := strings.TrimPrefix(r.URL.Path, "/exports/")
	if filePath == "" {
		http.Error(w, "File path required", http.StatusBadRequest)
		return
	}

	exists, err := s.Files.Exists(r.Context(), filePath)
	switch {
	case errors.Is(err, storage.ErrOutsideRoot):
		http.Error(w, "Invalid file path", http.StatusBadRequest)
		return
	case err != nil:
		s.log.Error("Failed to check export file", err, map[string]interface{}{
			"path": filePath,
		})
		http.Error(w, "Failed to read file", http.StatusInternalServerError)
		return
	case !exists:
		http.NotFound(w, r)
		return
	}

	data, err := s.Files.Read(r.Context(), filePath)
	if err != nil {
		s.log.Error("Failed to read export file", err, map[string]interface{}{
			"path": filePath,
		})
		http.Error(w, "Failed to read file", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", storage.GetContentType(filePath))
	w.Header().Set("Cache-Control", "public, max-age=3600")
	w.Write(data)
}

// describe builds the named chart, answering 404 or 500 itself on failure
func (s *Server) describe(w http.ResponseWriter, id string) (charts.Description, bool) {
	gen, err := s.Generator.ChartGenerator()
	if err != nil {
		s.log.Error("Failed to prepare charts", err)
		http.Error(w, "Failed to prepare charts", http.StatusInternalServerError)
		return charts.Description{}, false
	}

	d, err := gen.Generate(id)
	if errors.Is(err, charts.ErrUnknownChart) {
		http.Error(w, "Chart not found", http.StatusNotFound)
		return charts.Description{}, false
	}
	if err != nil {
		s.log.Error("Failed to build chart", err, map[string]interface{}{
			"chart": id,
		})
		http.Error(w, "Failed to build chart", http.StatusInternalServerError)
		return charts.Description{}, false
	}
	return d, true
}

func writeJSON(w http.ResponseWriter, status int, v interface{}) {
	w.Header().Set("Content-Type", storage.GetContentType("response.json"))
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v)
}
