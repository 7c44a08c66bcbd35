package render

import (
	"fmt"
	"io"

	"github.com/go-echarts/go-echarts/v2/charts"
	"github.com/go-echarts/go-echarts/v2/opts"
	"github.com/samber/lo"

	desc "munchies/internal/charts"
)

const pageWidth = 900

// Page renders a description as a standalone interactive go-echarts page.
// A single centred annotation becomes a centred title; other paper
// annotations are not part of this view.
func Page(d desc.Description, w io.Writer) error {
	if len(d.Series) == 0 {
		return fmt.Errorf("chart %s has no series", d.ID)
	}

	switch d.Series[0].Type {
	case desc.SeriesPie:
		return piePage(d).Render(w)
	default:
		return trendPage(d).Render(w)
	}
}

func initOpts(d desc.Description) opts.Initialization {
	width := pageWidth
	if d.Width > 0 {
		width = d.Width
	}
	return opts.Initialization{
		PageTitle:       d.Title,
		ChartID:         d.ID,
		Width:           fmt.Sprintf("%dpx", width),
		Height:          fmt.Sprintf("%dpx", d.Height),
		BackgroundColor: lo.Ternary(d.Background != "", d.Background, "white"),
	}
}

func titleOpts(d desc.Description) opts.Title {
	if a, ok := centreAnnotation(d); ok {
		return opts.Title{
			Title: a.Text,
			Left:  "center",
			Top:   "middle",
			TitleStyle: &opts.TextStyle{
				Color:    a.Color,
				FontSize: a.FontSize,
			},
		}
	}

	t := opts.Title{Title: d.Title}
	if d.TitleAlign == desc.AnchorRight {
		t.Right = "10"
	}
	return t
}

func trendPage(d desc.Description) *charts.Line {
	line := charts.NewLine()
	line.SetGlobalOptions(
		charts.WithInitializationOpts(initOpts(d)),
		charts.WithTitleOpts(titleOpts(d)),
		charts.WithTooltipOpts(opts.Tooltip{Show: d.Tooltip != "", Trigger: d.Tooltip}),
		charts.WithLegendOpts(opts.Legend{
			Show:   d.Legend.Show,
			Orient: d.Legend.Orient,
			Bottom: lo.Ternary(d.Legend.Bottom, "0", ""),
			Left:   "0",
		}),
		charts.WithXAxisOpts(opts.XAxis{Name: d.XAxisName}),
	)
	if len(d.Axes) > 0 {
		line.SetGlobalOptions(charts.WithYAxisOpts(opts.YAxis{Name: d.Axes[0].Name}))
	}
	for _, a := range lo.Drop(d.Axes, 1) {
		line.ExtendYAxis(opts.YAxis{Name: a.Name})
	}

	line.SetXAxis(d.Categories)
	// one overlapped chart per series keeps the declared series order
	for _, s := range d.Series {
		switch s.Type {
		case desc.SeriesLine:
			l := charts.NewLine()
			l.SetXAxis(d.Categories)
			l.AddSeries(s.Name, lineData(s.Data),
				charts.WithLineChartOpts(opts.LineChart{YAxisIndex: s.YAxis}),
				charts.WithLineStyleOpts(opts.LineStyle{
					Color: s.Color,
					Width: float32(s.LineWidth),
					Type:  lo.Ternary(s.Dash == desc.DashDot, "dotted", "solid"),
				}),
				charts.WithItemStyleOpts(opts.ItemStyle{Color: s.Color}),
			)
			line.Overlap(l)
		case desc.SeriesBar:
			b := charts.NewBar()
			b.SetXAxis(d.Categories)
			b.AddSeries(s.Name, barData(s.Data),
				charts.WithBarChartOpts(opts.BarChart{YAxisIndex: s.YAxis}),
				charts.WithItemStyleOpts(opts.ItemStyle{
					Color:   s.Color,
					Opacity: float32(s.Opacity),
				}),
			)
			line.Overlap(b)
		}
	}
	return line
}

func piePage(d desc.Description) *charts.Pie {
	pie := charts.NewPie()
	pie.SetGlobalOptions(
		charts.WithInitializationOpts(initOpts(d)),
		charts.WithTitleOpts(titleOpts(d)),
		charts.WithLegendOpts(opts.Legend{
			Show:   d.Legend.Show,
			Orient: d.Legend.Orient,
			Left:   "0",
			Bottom: "0",
		}),
	)

	for _, s := range d.SeriesOfType(desc.SeriesPie) {
		items := make([]opts.PieData, 0, len(s.Data))
		for i, v := range s.Data {
			item := opts.PieData{Value: v}
			if i < len(s.Labels) {
				item.Name = s.Labels[i]
			}
			if i < len(s.Colors) {
				item.ItemStyle = &opts.ItemStyle{
					Color:       s.Colors[i],
					BorderColor: s.BorderColor,
					BorderWidth: float32(s.BorderWidth),
				}
			}
			items = append(items, item)
		}
		pie.AddSeries(s.Name, items,
			charts.WithPieChartOpts(opts.PieChart{
				Radius: []string{percent(s.Hole * pieOuterRadius), percent(pieOuterRadius)},
			}),
			charts.WithLabelOpts(opts.Label{
				Show:      s.ShowLabels,
				Color:     s.LabelColor,
				Position:  "inside",
				Formatter: "{b}",
			}),
		)
	}
	return pie
}

// centreAnnotation returns the annotation of charts whose only free text sits
// in the middle of the plot, like the donut gram label
func centreAnnotation(d desc.Description) (desc.Annotation, bool) {
	if len(d.Annotations) != 1 {
		return desc.Annotation{}, false
	}
	a := d.Annotations[0]
	if a.Anchor != desc.AnchorCenter || a.X != 0.5 || a.Y != 0.5 {
		return desc.Annotation{}, false
	}
	return a, true
}

func lineData(values []float64) []opts.LineData {
	return lo.Map(values, func(v float64, _ int) opts.LineData {
		return opts.LineData{Value: v}
	})
}

func barData(values []float64) []opts.BarData {
	return lo.Map(values, func(v float64, _ int) opts.BarData {
		return opts.BarData{Value: v}
	})
}
