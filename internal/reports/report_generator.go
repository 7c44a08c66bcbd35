package reports

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"time"

	"munchies/internal/charts"
	"munchies/internal/dataset"
	"munchies/internal/imagery"
	"munchies/internal/logger"
	"munchies/internal/render"
)

// Options configures report generation
type Options struct {
	SpoonImagePath string
	EChartsURL     string
	DebugAssets    bool
}

// GeneratedFiles contains all files generated for an export
type GeneratedFiles struct {
	HTMLContent string
	ChartFiles  map[string][]byte // <id>.png
	JSONFiles   map[string][]byte // <id>.json
	FolderPath  string
}

// ReportGenerator turns the datasets into the dashboard page and its exports.
// Every call loads fresh datasets and reads the spoon image again.
type ReportGenerator struct {
	opts        Options
	htmlBuilder *HTMLBuilder
	log         *logger.Logger
}

// NewReportGenerator creates a new report generator
func NewReportGenerator(opts Options) (*ReportGenerator, error) {
	builder, err := NewHTMLBuilder(BuilderOptions{
		EChartsURL:  opts.EChartsURL,
		DebugAssets: opts.DebugAssets,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create HTML builder: %w", err)
	}
	return &ReportGenerator{
		opts:        opts,
		htmlBuilder: builder,
		log:         logger.GetGlobalLogger().WithComponent("reports"),
	}, nil
}

// RenderContext loads the datasets and resamples the obesity series
func (rg *ReportGenerator) RenderContext() (*charts.RenderContext, error) {
	rc, err := charts.NewRenderContext(dataset.Load())
	if err != nil {
		return nil, fmt.Errorf("failed to prepare chart data: %w", err)
	}
	return rc, nil
}

// ChartGenerator returns a generator over a freshly prepared render context
func (rg *ReportGenerator) ChartGenerator() (*charts.ChartGenerator, error) {
	rc, err := rg.RenderContext()
	if err != nil {
		return nil, err
	}
	return charts.NewChartGenerator(rc), nil
}

// GeneratePage renders the complete dashboard HTML
func (rg *ReportGenerator) GeneratePage(ctx context.Context) (string, error) {
	start := time.Now()

	rc, err := rg.RenderContext()
	if err != nil {
		return "", err
	}
	icon, err := imagery.LoadIcon(rg.opts.SpoonImagePath)
	if err != nil {
		return "", fmt.Errorf("failed to load icon: %w", err)
	}

	page, err := rg.htmlBuilder.Build(ctx, rc, icon)
	if err != nil {
		return "", fmt.Errorf("failed to build page: %w", err)
	}

	rg.log.Info("Page generated", map[string]interface{}{
		"bytes":       len(page),
		"duration_ms": time.Since(start).Milliseconds(),
	})
	return page, nil
}

// GenerateFiles renders the page plus a PNG and a JSON description per chart
func (rg *ReportGenerator) GenerateFiles(ctx context.Context) (*GeneratedFiles, error) {
	page, err := rg.GeneratePage(ctx)
	if err != nil {
		return nil, err
	}

	gen, err := rg.ChartGenerator()
	if err != nil {
		return nil, err
	}

	files := &GeneratedFiles{
		HTMLContent: page,
		ChartFiles:  make(map[string][]byte),
		JSONFiles:   make(map[string][]byte),
	}
	for _, d := range gen.GenerateAll() {
		if err := ctx.Err(); err != nil {
			return nil, err
		}

		var buf bytes.Buffer
		if err := render.PNG(d, &buf); err != nil {
			return nil, err
		}
		files.ChartFiles[d.ID+".png"] = buf.Bytes()

		desc, err := json.MarshalIndent(d, "", "  ")
		if err != nil {
			return nil, fmt.Errorf("failed to marshal %s: %w", d.ID, err)
		}
		files.JSONFiles[d.ID+".json"] = desc
	}

	rg.log.Info("Export files generated", map[string]interface{}{
		"charts": len(files.ChartFiles),
	})
	return files, nil
}
