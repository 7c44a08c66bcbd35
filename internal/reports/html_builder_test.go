package reports

import (
	"bytes"
	"context"
	"image"
	"image/png"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"munchies/internal/charts"
	"munchies/internal/dataset"
	"munchies/internal/imagery"
)

func testIcon(t *testing.T) *imagery.Icon {
	t.Helper()
	var buf bytes.Buffer
	require.NoError(t, png.Encode(&buf, image.NewGray(image.Rect(0, 0, 4, 8))))
	icon, err := imagery.NewIcon(buf.Bytes())
	require.NoError(t, err)
	return icon
}

func testBuilder(t *testing.T) *HTMLBuilder {
	t.Helper()
	h, err := NewHTMLBuilder(BuilderOptions{EChartsURL: "https://cdn.example.test/echarts.min.js"})
	require.NoError(t, err)
	return h
}

func buildPage(t *testing.T) string {
	t.Helper()
	rc, err := charts.NewRenderContext(dataset.Load())
	require.NoError(t, err)

	page, err := testBuilder(t).Build(context.Background(), rc, testIcon(t))
	require.NoError(t, err)
	return page
}

func TestBuildLayoutOrder(t *testing.T) {
	page := buildPage(t)

	markers := []string{
		`<h1 class="page-title">Cannabis, Munchies &amp; Vegetable Oils</h1>`,
		`id="chart-trend"`,
		`<summary>How Food Consumption Patterns Have Shifted Over Time</summary>`,
		`<h3 class="section-title">Daily Vegetable Oil Consumption</h3>`,
		`USA (8 tbs)`,
		`id="chart-donut-usa"`,
		`Europe (5.5 tbs)`,
		`id="chart-donut-europe"`,
		`World (3.7 tbs)`,
		`id="chart-donut-world"`,
		`<summary>Daily Vegetable Oil Consumption</summary>`,
		`<h3 class="section-title">` + CompositionHeading + `</h3>`,
		`Linoleic Acid in Vegetable Oils</summary>`,
		`What about the munchies?! cannabis?!</summary>`,
		`id="chart-composition"`,
	}

	last := -1
	for _, m := range markers {
		idx := strings.Index(page, m)
		require.GreaterOrEqual(t, idx, 0, "missing %q", m)
		require.Greater(t, idx, last, "%q is out of order", m)
		last = idx
	}
}

func TestBuildIncludesScriptsAndSpoons(t *testing.T) {
	page := buildPage(t)

	require.Contains(t, page, `<script src="https://cdn.example.test/echarts.min.js"></script>`)
	require.Equal(t, 5, strings.Count(page, "echarts.init(el)"))

	// 8 + 5 + 3 whole spoons, halves for Europe and World
	require.Equal(t, 16, strings.Count(page, `alt="spoon"`))
	require.Equal(t, 2, strings.Count(page, `alt="half spoon"`))

	// panels side by side at 1:1.5
	require.Contains(t, page, `<div class="col" style="flex:1"><details class="panel">`)
	require.Contains(t, page, `<div class="col" style="flex:1.5"><details class="panel">`)

	// chart divs are emitted unescaped
	require.NotContains(t, page, "&lt;div id=")
}

func TestBuildPanelsRenderMarkdown(t *testing.T) {
	page := buildPage(t)

	require.Contains(t, page, "<strong>3rd most consumed food globally</strong>")
	require.Contains(t, page, "<strong>LINOLEIC ACID</strong>")
	require.Contains(t, page, "<li>Increased hunger</li>")
	require.Contains(t, page, "<strong>60–71%</strong>")
}

func TestBuildRequiresInputs(t *testing.T) {
	h := testBuilder(t)
	_, err := h.Build(context.Background(), nil, testIcon(t))
	require.Error(t, err)

	rc, err := charts.NewRenderContext(dataset.Load())
	require.NoError(t, err)
	_, err = h.Build(context.Background(), rc, nil)
	require.Error(t, err)
}

func TestBuildHonoursCancellation(t *testing.T) {
	rc, err := charts.NewRenderContext(dataset.Load())
	require.NoError(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err = testBuilder(t).Build(ctx, rc, testIcon(t))
	require.ErrorIs(t, err, context.Canceled)
}

func TestConvertMarkdownToHTML(t *testing.T) {
	h := testBuilder(t)

	out, err := h.ConvertMarkdownToHTML("**bold** and <span class=\"x\">raw</span>")
	require.NoError(t, err)
	require.Contains(t, out, "<strong>bold</strong>")
	require.Contains(t, out, `<span class="x">raw</span>`)
}

func TestMinifyScript(t *testing.T) {
	src, err := NewTemplateLoader().LoadScript()
	require.NoError(t, err)

	min, err := MinifyScript(src, false)
	require.NoError(t, err)
	require.Less(t, len(min), len(src))
	require.Contains(t, min, "resize")
	require.NotContains(t, min, "// Charts inside")

	debug, err := MinifyScript(src, true)
	require.NoError(t, err)
	require.Greater(t, len(debug), len(min))

	_, err = MinifyScript("function (", false)
	require.Error(t, err)
}
