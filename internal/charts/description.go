package charts

// SeriesType tags the variant of a Series
type SeriesType string

const (
	SeriesLine SeriesType = "line"
	SeriesBar  SeriesType = "bar"
	SeriesPie  SeriesType = "pie"
)

// LineDash is the stroke pattern of a line series
type LineDash string

const (
	DashSolid LineDash = "solid"
	DashDot   LineDash = "dot"
)

// Anchor selects which edge of an annotation sits on its X coordinate
type Anchor string

const (
	AnchorLeft   Anchor = "left"
	AnchorCenter Anchor = "center"
	AnchorRight  Anchor = "right"
)

// AxisSide places a value axis on the left or right of the plot
type AxisSide string

const (
	AxisLeft  AxisSide = "left"
	AxisRight AxisSide = "right"
)

// Description is a backend-neutral chart definition. Builders return it and
// the render package turns it into ECharts options, go-echarts pages or PNGs.
type Description struct {
	ID    string `json:"id"`
	Title string `json:"title"`
	// TitleAlign places the title above the plot; empty leaves it to the page
	TitleAlign Anchor `json:"title_align,omitempty"`

	// Width and Height are pixels; zero means fill the container
	Width  int `json:"width,omitempty"`
	Height int `json:"height"`

	// Categories are the x axis labels of rectangular charts
	Categories []string `json:"categories,omitempty"`
	XAxisName  string   `json:"x_axis_name,omitempty"`
	Axes       []Axis   `json:"axes,omitempty"`

	Series      []Series     `json:"series"`
	Legend      Legend       `json:"legend"`
	Tooltip     string       `json:"tooltip,omitempty"` // axis, item or empty for none
	Annotations []Annotation `json:"annotations,omitempty"`
	Margin      Margin       `json:"margin"`
	Background  string       `json:"background,omitempty"`
}

// Axis is a value axis; Series.YAxis indexes into Description.Axes
type Axis struct {
	Name string   `json:"name"`
	Side AxisSide `json:"side"`
}

// Legend configures the series legend
type Legend struct {
	Show   bool   `json:"show"`
	Title  string `json:"title,omitempty"`
	Orient string `json:"orient,omitempty"` // horizontal or vertical
	Bottom bool   `json:"bottom,omitempty"` // below the plot area
	Align  Anchor `json:"align,omitempty"`
}

// Series is a tagged variant over line, bar and pie series. Fields that do
// not apply to Type are left zero.
type Series struct {
	Name string     `json:"name"`
	Type SeriesType `json:"type"`
	Data []float64  `json:"data"`

	// line and bar
	Color      string   `json:"color,omitempty"`
	Opacity    float64  `json:"opacity,omitempty"`
	YAxis      int      `json:"y_axis"`
	LineWidth  float64  `json:"line_width,omitempty"`
	Dash       LineDash `json:"dash,omitempty"`
	MarkerSize float64  `json:"marker_size,omitempty"`

	// pie
	Labels      []string `json:"labels,omitempty"`
	Colors      []string `json:"colors,omitempty"`
	Hole        float64  `json:"hole,omitempty"` // inner radius as a fraction of the outer
	ShowLabels  bool     `json:"show_labels,omitempty"`
	LabelColor  string   `json:"label_color,omitempty"`
	BorderColor string   `json:"border_color,omitempty"`
	BorderWidth float64  `json:"border_width,omitempty"`
	StartAngle  float64  `json:"start_angle,omitempty"` // degrees counterclockwise from 3 o'clock
	Clockwise   bool     `json:"clockwise,omitempty"`
	Sorted      bool     `json:"sorted,omitempty"`
}

// Annotation is free text positioned in paper coordinates: (0,0) is the
// bottom-left of the plot area and (1,1) the top-right.
type Annotation struct {
	Text     string  `json:"text"`
	X        float64 `json:"x"`
	Y        float64 `json:"y"`
	Anchor   Anchor  `json:"anchor"`
	FontSize int     `json:"font_size"`
	Color    string  `json:"color"`
	Bold     bool    `json:"bold,omitempty"`
	// Bullet, when set, prefixes the text with a dot in this colour
	Bullet string `json:"bullet,omitempty"`
}

// Margin is the plot padding in pixels
type Margin struct {
	Top    int `json:"top"`
	Right  int `json:"right"`
	Bottom int `json:"bottom"`
	Left   int `json:"left"`
}

// SeriesOfType returns the series of the given type in declared order
func (d Description) SeriesOfType(t SeriesType) []Series {
	var out []Series
	for _, s := range d.Series {
		if s.Type == t {
			out = append(out, s)
		}
	}
	return out
}
