package reports

import (
	"bytes"
	"context"
	"fmt"
	"html/template"

	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/extension"
	"github.com/yuin/goldmark/parser"
	"github.com/yuin/goldmark/renderer/html"

	"munchies/internal/charts"
	"munchies/internal/config"
	"munchies/internal/imagery"
	"munchies/internal/logger"
	"munchies/internal/render"
)

const (
	PageTitle          = "Cannabis, Munchies & Vegetable Oils"
	CompositionHeading = "Linoleic Acid Content of Vegetable Oils"
)

// Panel is a collapsible explanation block
type Panel struct {
	Title string
	Body  template.HTML
}

// panel markdown files and their summaries
var panelTitles = map[string]string{
	"consumption_shift": "How Food Consumption Patterns Have Shifted Over Time",
	"oil_consumption":   "Daily Vegetable Oil Consumption",
	"linoleic_bands":    "🛢️ Linoleic Acid in Vegetable Oils",
	"munchies":          "🌿 What about the munchies?! cannabis?!",
}

// ServingColumn is one region of the serving row
type ServingColumn struct {
	Label  string
	Donut  render.ChartSnippet
	Spoons template.HTML
}

// TemplateData represents the data structure for the page template
type TemplateData struct {
	Title              string
	EChartsURL         string
	Version            string
	CompositionHeading string

	Trend       render.ChartSnippet
	Servings    []ServingColumn
	Composition render.ChartSnippet

	ShiftPanel    Panel
	OilPanel      Panel
	BandsPanel    Panel
	MunchiesPanel Panel

	Scripts  []template.HTML
	HelperJS template.JS
}

// BuilderOptions configures page assets
type BuilderOptions struct {
	EChartsURL  string
	DebugAssets bool
}

// HTMLBuilder assembles the dashboard page. It holds only data parsed at
// construction and is safe for concurrent use.
type HTMLBuilder struct {
	templateLoader *TemplateLoader
	goldmark       goldmark.Markdown
	page           *template.Template
	panels         map[string]Panel
	helperJS       template.JS
	echartsURL     string
	log            *logger.Logger
}

// NewHTMLBuilder parses the page template, renders panel markdown and
// minifies the helper script
func NewHTMLBuilder(opts BuilderOptions) (*HTMLBuilder, error) {
	md := goldmark.New(
		goldmark.WithExtensions(extension.GFM),
		goldmark.WithParserOptions(
			parser.WithAutoHeadingID(),
		),
		goldmark.WithRendererOptions(
			html.WithHardWraps(),
			html.WithUnsafe(),
		),
	)

	h := &HTMLBuilder{
		templateLoader: NewTemplateLoader(),
		goldmark:       md,
		panels:         make(map[string]Panel, len(panelTitles)),
		echartsURL:     opts.EChartsURL,
		log:            logger.GetGlobalLogger().WithComponent("reports"),
	}

	raw, err := h.templateLoader.LoadHTMLTemplate()
	if err != nil {
		return nil, err
	}
	h.page, err = template.New("page").Funcs(template.FuncMap{
		"safeHTML": func(s string) template.HTML {
			return template.HTML(s)
		},
	}).Parse(raw)
	if err != nil {
		return nil, fmt.Errorf("failed to parse page template: %w", err)
	}

	for name, title := range panelTitles {
		src, err := h.templateLoader.LoadPanel(name)
		if err != nil {
			return nil, err
		}
		body, err := h.ConvertMarkdownToHTML(src)
		if err != nil {
			return nil, fmt.Errorf("panel %s: %w", name, err)
		}
		h.panels[name] = Panel{Title: title, Body: template.HTML(body)}
	}

	script, err := h.templateLoader.LoadScript()
	if err != nil {
		return nil, err
	}
	minified, err := MinifyScript(script, opts.DebugAssets)
	if err != nil {
		return nil, err
	}
	h.helperJS = template.JS(minified)

	return h, nil
}

// ConvertMarkdownToHTML converts markdown to HTML using goldmark
func (h *HTMLBuilder) ConvertMarkdownToHTML(markdownContent string) (string, error) {
	var buf bytes.Buffer
	if err := h.goldmark.Convert([]byte(markdownContent), &buf); err != nil {
		return "", fmt.Errorf("failed to convert markdown: %w", err)
	}
	return buf.String(), nil
}

// Build lays out the full page for one render
func (h *HTMLBuilder) Build(ctx context.Context, rc *charts.RenderContext, icon *imagery.Icon) (string, error) {
	if rc == nil || icon == nil {
		return "", fmt.Errorf("render context and icon are required")
	}

	data := TemplateData{
		Title:              PageTitle,
		EChartsURL:         h.echartsURL,
		Version:            config.GetVersion(),
		CompositionHeading: CompositionHeading,
		ShiftPanel:         h.panels["consumption_shift"],
		OilPanel:           h.panels["oil_consumption"],
		BandsPanel:         h.panels["linoleic_bands"],
		MunchiesPanel:      h.panels["munchies"],
		HelperJS:           h.helperJS,
	}

	var err error
	if data.Trend, err = h.snippet(charts.BuildTrend(rc), &data); err != nil {
		return "", err
	}
	for i, serving := range rc.Data.Servings {
		if err := ctx.Err(); err != nil {
			return "", err
		}
		donut, err := h.snippet(charts.BuildServingDonut(rc, i), &data)
		if err != nil {
			return "", err
		}
		data.Servings = append(data.Servings, ServingColumn{
			Label:  serving.Label(),
			Donut:  donut,
			Spoons: icon.Strip(serving.Tablespoons),
		})
	}
	if data.Composition, err = h.snippet(charts.BuildCompositionPie(rc), &data); err != nil {
		return "", err
	}

	var buf bytes.Buffer
	if err := h.page.Execute(&buf, data); err != nil {
		return "", fmt.Errorf("failed to execute template: %w", err)
	}

	h.log.Debug("Page built", map[string]interface{}{
		"bytes":  buf.Len(),
		"charts": len(data.Scripts),
	})
	return buf.String(), nil
}

// snippet renders a chart and queues its init script for the page footer
func (h *HTMLBuilder) snippet(d charts.Description, data *TemplateData) (render.ChartSnippet, error) {
	s, err := render.Snippet(d)
	if err != nil {
		return render.ChartSnippet{}, fmt.Errorf("failed to render %s: %w", d.ID, err)
	}
	data.Scripts = append(data.Scripts, template.HTML(s.Script))
	return s, nil
}
