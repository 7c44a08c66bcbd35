package render

import (
	"fmt"
	"math"

	"munchies/internal/charts"
)

const (
	pieOuterRadius  = 0.8
	legendTitleGap  = 80
	defaultFontSize = 12
)

// Option converts a description into an ECharts option object.
func Option(d charts.Description) map[string]interface{} {
	option := map[string]interface{}{
		"animation": false,
	}
	if d.Background != "" {
		option["backgroundColor"] = d.Background
	}
	if d.TitleAlign != "" {
		title := map[string]interface{}{
			"text":      d.Title,
			"textStyle": map[string]interface{}{"fontSize": 16},
		}
		title[string(d.TitleAlign)] = 10
		if d.TitleAlign == charts.AnchorCenter {
			title["left"] = "center"
			delete(title, "center")
		}
		option["title"] = title
	}
	if d.Tooltip != "" {
		option["tooltip"] = map[string]interface{}{"trigger": d.Tooltip}
	}

	var graphic []map[string]interface{}

	if len(d.Categories) > 0 {
		option["grid"] = map[string]interface{}{
			"top":          d.Margin.Top,
			"right":        d.Margin.Right,
			"bottom":       d.Margin.Bottom,
			"left":         d.Margin.Left,
			"containLabel": true,
		}
		option["xAxis"] = map[string]interface{}{
			"type":         "category",
			"name":         d.XAxisName,
			"nameLocation": "middle",
			"nameGap":      30,
			"data":         d.Categories,
		}
		option["yAxis"] = valueAxes(d.Axes)
	}

	if d.Legend.Show {
		legend, title := legendOption(d)
		option["legend"] = legend
		if title != nil {
			graphic = append(graphic, title)
		}
	} else {
		option["legend"] = map[string]interface{}{"show": false}
	}

	series := make([]map[string]interface{}, 0, len(d.Series))
	for _, s := range d.Series {
		switch s.Type {
		case charts.SeriesLine:
			series = append(series, lineSeries(s))
		case charts.SeriesBar:
			series = append(series, barSeries(s))
		case charts.SeriesPie:
			series = append(series, pieSeries(s))
		}
	}
	option["series"] = series

	for _, a := range d.Annotations {
		graphic = append(graphic, annotationGraphic(d, a))
	}
	if len(graphic) > 0 {
		option["graphic"] = graphic
	}

	return option
}

func valueAxes(axes []charts.Axis) []map[string]interface{} {
	out := make([]map[string]interface{}, 0, len(axes))
	for i, a := range axes {
		axis := map[string]interface{}{
			"type":         "value",
			"name":         a.Name,
			"position":     string(a.Side),
			"nameLocation": "middle",
			"nameGap":      50,
		}
		if i > 0 {
			// secondary axes share the primary grid lines
			axis["splitLine"] = map[string]interface{}{"show": false}
		}
		out = append(out, axis)
	}
	return out
}

// legendOption returns the legend and, when the legend has a title, a text
// graphic placed in front of it.
func legendOption(d charts.Description) (map[string]interface{}, map[string]interface{}) {
	names := make([]string, 0, len(d.Series))
	for _, s := range d.Series {
		names = append(names, s.Name)
	}

	legend := map[string]interface{}{
		"show":   true,
		"orient": d.Legend.Orient,
		"data":   names,
	}
	if d.Legend.Bottom {
		legend["bottom"] = 0
	} else {
		legend["top"] = 0
	}

	offset := 0
	if d.Legend.Title != "" {
		offset = legendTitleGap
	}
	switch d.Legend.Align {
	case charts.AnchorRight:
		legend["right"] = 0
	case charts.AnchorCenter:
		legend["left"] = "center"
	default:
		legend["left"] = offset
	}

	if d.Legend.Title == "" {
		return legend, nil
	}
	title := map[string]interface{}{
		"type": "text",
		"left": 0,
		"style": map[string]interface{}{
			"text":       d.Legend.Title,
			"fontSize":   defaultFontSize,
			"fontWeight": "bold",
			"fill":       "#333",
		},
	}
	if d.Legend.Bottom {
		title["bottom"] = 4
	} else {
		title["top"] = 4
	}
	return legend, title
}

func lineSeries(s charts.Series) map[string]interface{} {
	lineType := "solid"
	if s.Dash == charts.DashDot {
		lineType = "dotted"
	}
	out := map[string]interface{}{
		"name":       s.Name,
		"type":       "line",
		"data":       s.Data,
		"yAxisIndex": s.YAxis,
		"lineStyle": map[string]interface{}{
			"color": s.Color,
			"width": s.LineWidth,
			"type":  lineType,
		},
		"itemStyle": map[string]interface{}{"color": s.Color},
	}
	if s.MarkerSize > 0 {
		out["symbol"] = "circle"
		out["symbolSize"] = s.MarkerSize
	} else {
		out["showSymbol"] = false
	}
	return out
}

func barSeries(s charts.Series) map[string]interface{} {
	style := map[string]interface{}{"color": s.Color}
	if s.Opacity > 0 {
		style["opacity"] = s.Opacity
	}
	return map[string]interface{}{
		"name":       s.Name,
		"type":       "bar",
		"data":       s.Data,
		"yAxisIndex": s.YAxis,
		"itemStyle":  style,
	}
}

func pieSeries(s charts.Series) map[string]interface{} {
	data := make([]map[string]interface{}, 0, len(s.Data))
	for i, v := range s.Data {
		item := map[string]interface{}{"value": v}
		if i < len(s.Labels) {
			item["name"] = s.Labels[i]
		}
		if i < len(s.Colors) {
			item["itemStyle"] = map[string]interface{}{"color": s.Colors[i]}
		}
		data = append(data, item)
	}

	label := map[string]interface{}{"show": false}
	if s.ShowLabels {
		label = map[string]interface{}{
			"show":      true,
			"position":  "inside",
			"formatter": "{b}",
			"color":     s.LabelColor,
		}
	}

	out := map[string]interface{}{
		"name":       s.Name,
		"type":       "pie",
		"radius":     []string{percent(s.Hole * pieOuterRadius), percent(pieOuterRadius)},
		"center":     []string{"50%", "50%"},
		"startAngle": s.StartAngle,
		"clockwise":  s.Clockwise,
		"data":       data,
		"label":      label,
		"labelLine":  map[string]interface{}{"show": false},
		"emphasis":   map[string]interface{}{"scale": false},
	}
	if s.BorderColor != "" {
		out["itemStyle"] = map[string]interface{}{
			"borderColor": s.BorderColor,
			"borderWidth": s.BorderWidth,
		}
	}
	return out
}

// annotationGraphic places a text element. X is mapped across the full
// canvas width; Y is mapped inside the plot margins so values slightly above
// 1 land in the top margin.
func annotationGraphic(d charts.Description, a charts.Annotation) map[string]interface{} {
	size := a.FontSize
	if size == 0 {
		size = defaultFontSize
	}
	weight := "normal"
	if a.Bold {
		weight = "bold"
	}

	style := map[string]interface{}{
		"text":       a.Text,
		"fontSize":   size,
		"fontWeight": weight,
		"fill":       a.Color,
	}
	if a.Bullet != "" {
		style["text"] = "{dot|●} " + a.Text
		style["rich"] = map[string]interface{}{
			"dot": map[string]interface{}{"fill": a.Bullet, "fontSize": size},
		}
	}

	el := map[string]interface{}{
		"type":  "text",
		"z":     100,
		"top":   paperTop(d, a.Y, size),
		"style": style,
	}
	switch a.Anchor {
	case charts.AnchorRight:
		el["right"] = percent(1 - a.X)
	case charts.AnchorCenter:
		if a.X == 0.5 {
			el["left"] = "center"
		} else {
			el["left"] = percent(a.X)
		}
		style["textAlign"] = "center"
	default:
		el["left"] = percent(math.Max(a.X, 0))
	}
	return el
}

// paperTop converts a paper y coordinate into a pixel offset from the top of
// the canvas, centring the text line on it.
func paperTop(d charts.Description, y float64, fontSize int) int {
	plot := d.Height - d.Margin.Top - d.Margin.Bottom
	top := float64(d.Margin.Top) + (1-y)*float64(plot) - float64(fontSize)/2
	if top < 0 {
		top = 0
	}
	return int(math.Round(top))
}

func percent(f float64) string {
	return fmt.Sprintf("%g%%", math.Round(f*1000)/10)
}
