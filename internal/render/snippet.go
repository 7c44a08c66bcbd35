// Package render turns chart descriptions into ECharts snippets, standalone
// go-echarts pages and PNG images.
package render

import (
	"encoding/json"
	"fmt"

	"munchies/internal/charts"
)

// ChartSnippet represents an embeddable ECharts chart fragment.
// Div contains a single root <div id="..." style="..."></div>,
// Script the <script>...</script> block that initializes the chart in that div
// and HTML both combined for template substitution.
type ChartSnippet struct {
	ID     string
	Title  string
	Div    string
	Script string
	HTML   string
}

// Snippet renders a description as a div plus init script. The page must
// load echarts before the script runs.
func Snippet(d charts.Description) (ChartSnippet, error) {
	if d.ID == "" {
		return ChartSnippet{}, fmt.Errorf("chart description has no id")
	}

	optJSON, err := json.Marshal(Option(d))
	if err != nil {
		return ChartSnippet{}, fmt.Errorf("failed to marshal %s option: %w", d.ID, err)
	}

	width := "100%"
	if d.Width > 0 {
		width = fmt.Sprintf("%dpx", d.Width)
	}
	div := fmt.Sprintf("<div id=\"%s\" class=\"chart\" style=\"width:%s;height:%dpx;\"></div>", d.ID, width, d.Height)
	script := fmt.Sprintf(`<script>(function(){var el=document.getElementById('%s');if(!el)return;var c=echarts.init(el);var option=%s;c.setOption(option);window.addEventListener('resize',function(){c.resize();});})();</script>`, d.ID, string(optJSON))

	return ChartSnippet{
		ID:     d.ID,
		Title:  d.Title,
		Div:    div,
		Script: script,
		HTML:   div + "\n" + script,
	}, nil
}
