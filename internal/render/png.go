package render

import (
	"fmt"
	"io"
	"math"
	"strings"

	"github.com/samber/lo"
	"github.com/wcharczuk/go-chart/v2"
	"github.com/wcharczuk/go-chart/v2/drawing"

	desc "munchies/internal/charts"
)

// groupWidth is the share of a category slot covered by its bar group
const groupWidth = 0.8

// groupedBarSeries draws one category's bars, offset within each slot so
// that sibling series sit side by side.
type groupedBarSeries struct {
	name   string
	color  drawing.Color
	values []float64
	index  int
	count  int
}

func (bs groupedBarSeries) GetName() string { return bs.name }
func (bs groupedBarSeries) GetStyle() chart.Style {
	return chart.Style{FillColor: bs.color, StrokeColor: bs.color, StrokeWidth: 4}
}
func (bs groupedBarSeries) GetYAxis() chart.YAxisType { return chart.YAxisPrimary }
func (bs groupedBarSeries) Len() int                  { return len(bs.values) }
func (bs groupedBarSeries) Validate() error {
	if bs.count == 0 || bs.index >= bs.count {
		return fmt.Errorf("bar series %s: index %d out of %d", bs.name, bs.index, bs.count)
	}
	return nil
}
func (bs groupedBarSeries) Render(r chart.Renderer, canvasBox chart.Box, xrange, yrange chart.Range, defaults chart.Style) {
	barWidth := groupWidth / float64(bs.count)
	bottom := canvasBox.Bottom - yrange.Translate(0)
	for i, v := range bs.values {
		start := float64(i) + (1-groupWidth)/2 + float64(bs.index)*barWidth
		x0 := canvasBox.Left + xrange.Translate(start)
		x1 := canvasBox.Left + xrange.Translate(start+barWidth)
		top := canvasBox.Bottom - yrange.Translate(v)

		r.SetFillColor(bs.color)
		r.MoveTo(x0, top)
		r.LineTo(x1, top)
		r.LineTo(x1, bottom)
		r.LineTo(x0, bottom)
		r.Close()
		r.Fill()
	}
}

// PNG renders a description as a static image.
func PNG(d desc.Description, w io.Writer) error {
	if len(d.Series) == 0 {
		return fmt.Errorf("chart %s has no series", d.ID)
	}
	if d.Series[0].Type == desc.SeriesPie {
		return piePNG(d, w)
	}
	return trendPNG(d, w)
}

func trendPNG(d desc.Description, w io.Writer) error {
	n := len(d.Categories)
	if n == 0 {
		return fmt.Errorf("chart %s has no categories", d.ID)
	}

	xTicks := make([]chart.Tick, 0, n)
	xValues := make([]float64, 0, n)
	for i, c := range d.Categories {
		xTicks = append(xTicks, chart.Tick{Value: float64(i) + 0.5, Label: c})
		xValues = append(xValues, float64(i)+0.5)
	}

	bars := d.SeriesOfType(desc.SeriesBar)
	lines := d.SeriesOfType(desc.SeriesLine)

	primaryMax := 0.0
	for _, s := range d.Series {
		if s.Type != desc.SeriesPie && s.YAxis == 0 {
			primaryMax = math.Max(primaryMax, lo.Max(s.Data))
		}
	}

	graph := chart.Chart{
		Title:      d.Title,
		TitleStyle: chart.Style{FontSize: 16, FontColor: drawing.ColorBlack},
		Width:      lo.Ternary(d.Width > 0, d.Width, pageWidth),
		Height:     d.Height,
		Background: chart.Style{
			FillColor: parseColor(d.Background, drawing.ColorWhite),
			Padding: chart.Box{
				Top:    d.Margin.Top,
				Left:   d.Margin.Left,
				Right:  d.Margin.Right,
				Bottom: d.Margin.Bottom,
			},
		},
		XAxis: chart.XAxis{
			Name:      d.XAxisName,
			NameStyle: chart.Style{FontSize: 12},
			Style:     chart.Style{FontSize: 11},
			Ticks:     xTicks,
			Range:     &chart.ContinuousRange{Min: 0, Max: float64(n)},
		},
		YAxis: chart.YAxis{
			NameStyle: chart.Style{FontSize: 12},
			Style:     chart.Style{FontSize: 11},
			Range:     &chart.ContinuousRange{Min: 0, Max: niceCeil(primaryMax * 1.1)},
			GridMajorStyle: chart.Style{
				StrokeColor: drawing.Color{R: 230, G: 230, B: 230, A: 255},
				StrokeWidth: 1,
			},
		},
		YAxisSecondary: chart.YAxis{
			NameStyle: chart.Style{FontSize: 12},
			Style:     chart.Style{FontSize: 11},
		},
	}
	if len(d.Axes) > 0 {
		graph.YAxis.Name = d.Axes[0].Name
	}
	if len(d.Axes) > 1 {
		graph.YAxisSecondary.Name = d.Axes[1].Name
	}

	// bars first so lines stay visible on top
	for i, s := range bars {
		color := parseColor(s.Color, drawing.ColorBlack)
		if s.Opacity > 0 {
			color = color.WithAlpha(uint8(math.Round(s.Opacity * 255)))
		}
		graph.Series = append(graph.Series, groupedBarSeries{
			name:   s.Name,
			color:  color,
			values: s.Data,
			index:  i,
			count:  len(bars),
		})
	}
	for _, s := range lines {
		color := parseColor(s.Color, drawing.ColorBlack)
		style := chart.Style{
			StrokeColor: color,
			StrokeWidth: s.LineWidth,
		}
		if s.Dash == desc.DashDot {
			style.StrokeDashArray = []float64{2, 4}
		}
		if s.MarkerSize > 0 {
			style.DotColor = color
			style.DotWidth = s.MarkerSize / 2
		}
		graph.Series = append(graph.Series, chart.ContinuousSeries{
			Name:    s.Name,
			XValues: xValues,
			YValues: s.Data,
			YAxis:   lo.Ternary(s.YAxis > 0, chart.YAxisSecondary, chart.YAxisPrimary),
			Style:   style,
		})
	}

	if d.Legend.Show {
		graph.Elements = []chart.Renderable{chart.LegendThin(&graph)}
	}

	if err := graph.Render(chart.PNG, w); err != nil {
		return fmt.Errorf("failed to render %s: %w", d.ID, err)
	}
	return nil
}

func piePNG(d desc.Description, w io.Writer) error {
	s := d.Series[0]
	width := lo.Ternary(d.Width > 0, d.Width, pageWidth)

	values := make([]chart.Value, 0, len(s.Data))
	for i, v := range s.Data {
		val := chart.Value{
			Value: v,
			Style: chart.Style{
				StrokeColor: parseColor(s.BorderColor, drawing.ColorWhite),
				StrokeWidth: s.BorderWidth,
				FontColor:   parseColor(s.LabelColor, drawing.ColorBlack),
			},
		}
		if i < len(s.Colors) {
			val.Style.FillColor = parseColor(s.Colors[i], drawing.ColorBlack)
		}
		if s.ShowLabels && i < len(s.Labels) {
			val.Label = s.Labels[i]
		}
		values = append(values, val)
	}

	graph := chart.PieChart{
		Width:  width,
		Height: d.Height,
		Background: chart.Style{
			FillColor: drawing.ColorWhite,
			Padding: chart.Box{
				Top:    d.Margin.Top,
				Left:   d.Margin.Left,
				Right:  d.Margin.Right,
				Bottom: d.Margin.Bottom,
			},
		},
		Values: values,
	}
	if s.Hole > 0 {
		graph.Elements = append(graph.Elements, holeElement(s.Hole))
	}
	if len(d.Annotations) > 0 {
		graph.Elements = append(graph.Elements, annotationElement(d, width))
	}

	if err := graph.Render(chart.PNG, w); err != nil {
		return fmt.Errorf("failed to render %s: %w", d.ID, err)
	}
	return nil
}

// holeElement punches a white disc into the middle of the pie
func holeElement(hole float64) chart.Renderable {
	return func(r chart.Renderer, canvasBox chart.Box, defaults chart.Style) {
		cx, cy := canvasBox.Center()
		radius := float64(min(canvasBox.Width(), canvasBox.Height())) / 2 * hole
		fillDisc(r, cx, cy, radius, drawing.ColorWhite)
	}
}

// annotationElement draws paper positioned text relative to the canvas
// margins.
func annotationElement(d desc.Description, width int) chart.Renderable {
	return func(r chart.Renderer, _ chart.Box, defaults chart.Style) {
		plotW := float64(width - d.Margin.Left - d.Margin.Right)
		plotH := float64(d.Height - d.Margin.Top - d.Margin.Bottom)

		for _, a := range d.Annotations {
			size := float64(lo.Ternary(a.FontSize > 0, a.FontSize, defaultFontSize))
			style := chart.Style{
				FontSize:  size,
				FontColor: parseColor(a.Color, drawing.ColorBlack),
			}.InheritFrom(defaults)

			textBox := chart.Draw.MeasureText(r, a.Text, style)
			x := d.Margin.Left + int(math.Round(a.X*plotW))
			baseline := d.Margin.Top + int(math.Round((1-a.Y)*plotH)) + textBox.Height()/2

			switch a.Anchor {
			case desc.AnchorRight:
				x -= textBox.Width()
			case desc.AnchorCenter:
				x -= textBox.Width() / 2
			}
			if a.Bullet != "" {
				radius := size / 3
				fillDisc(r, x-int(radius)-4, baseline-textBox.Height()/2, radius, parseColor(a.Bullet, drawing.ColorBlack))
			}
			chart.Draw.Text(r, a.Text, max(x, 0), baseline, style)
		}
	}
}

func fillDisc(r chart.Renderer, cx, cy int, radius float64, color drawing.Color) {
	const steps = 48
	r.SetFillColor(color)
	r.SetStrokeColor(color)
	r.SetStrokeWidth(0)
	for i := 0; i <= steps; i++ {
		angle := 2 * math.Pi * float64(i) / float64(steps)
		px := cx + int(math.Round(radius*math.Cos(angle)))
		py := cy + int(math.Round(radius*math.Sin(angle)))
		if i == 0 {
			r.MoveTo(px, py)
		} else {
			r.LineTo(px, py)
		}
	}
	r.Close()
	r.Fill()
}

// parseColor accepts #rrggbb hex or the names white and black
func parseColor(c string, fallback drawing.Color) drawing.Color {
	switch strings.ToLower(strings.TrimSpace(c)) {
	case "":
		return fallback
	case "white":
		return drawing.ColorWhite
	case "black":
		return drawing.ColorBlack
	}
	return drawing.ColorFromHex(strings.TrimPrefix(c, "#"))
}

// niceCeil rounds up to the next multiple of a power of ten step
func niceCeil(v float64) float64 {
	if v <= 0 {
		return 1
	}
	step := math.Pow(10, math.Floor(math.Log10(v)))
	if step >= 100 {
		step /= 2
	}
	return math.Ceil(v/step) * step
}
