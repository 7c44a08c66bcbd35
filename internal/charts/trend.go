package charts

import (
	"strconv"

	"github.com/samber/lo"

	"munchies/internal/dataset"
	"munchies/internal/models"
)

const obesitySeriesName = "Obesity (%)"

// BuildTrend describes the food calories / obesity chart: the first food
// category as a line, the rest as grouped bars in declared order, and the
// resampled obesity rate as a dotted line on a secondary axis.
func BuildTrend(rc *RenderContext) Description {
	food := rc.Data.Food

	d := Description{
		ID:         TrendChartID,
		Title:      "Vegetable Oils and Obesity",
		TitleAlign: AnchorRight,
		Height:     500,
		Categories: lo.Map(food.Years(), func(y int, _ int) string { return strconv.Itoa(y) }),
		XAxisName:  "Year",
		Axes: []Axis{
			{Name: "Calories per Person per Day", Side: AxisLeft},
			{Name: obesitySeriesName, Side: AxisRight},
		},
		Legend: Legend{
			Show:   true,
			Title:  "Category",
			Orient: "horizontal",
			Bottom: true,
			Align:  AnchorLeft,
		},
		Tooltip:    "axis",
		Margin:     Margin{Top: 60, Right: 40, Bottom: 80, Left: 40},
		Background: "#ffffff",
	}

	for i, s := range food.Series {
		if i == 0 {
			d.Series = append(d.Series, lineSeries(s))
			continue
		}
		d.Series = append(d.Series, barSeries(s))
	}

	d.Series = append(d.Series, Series{
		Name:       obesitySeriesName,
		Type:       SeriesLine,
		Data:       append([]float64(nil), rc.Obesity...),
		Color:      dataset.ObesityColor,
		YAxis:      1,
		LineWidth:  2,
		Dash:       DashDot,
		MarkerSize: 6,
	})

	return d
}

func lineSeries(s models.YearSeries) Series {
	return Series{
		Name:       s.Name,
		Type:       SeriesLine,
		Data:       s.Values(),
		Color:      s.Color,
		LineWidth:  3,
		Dash:       DashSolid,
		MarkerSize: 6,
	}
}

func barSeries(s models.YearSeries) Series {
	return Series{
		Name:    s.Name,
		Type:    SeriesBar,
		Data:    s.Values(),
		Color:   s.Color,
		Opacity: 0.95,
	}
}
