package charts

import (
	"errors"
	"fmt"

	"munchies/internal/models"
	"munchies/internal/resample"
)

// ErrUnknownChart is returned when a chart id does not name a built chart
var ErrUnknownChart = errors.New("unknown chart")

// Chart ids
const (
	TrendChartID       = "chart-trend"
	CompositionChartID = "chart-composition"
	donutChartPrefix   = "chart-donut-"
)

// RenderContext carries everything one page render needs. It is created per
// render and passed explicitly to every builder.
type RenderContext struct {
	Data *models.Nutrition
	// Obesity holds the obesity rate resampled onto Data.Food.Years()
	Obesity []float64
}

// NewRenderContext resamples the obesity series for the given datasets
func NewRenderContext(data *models.Nutrition) (*RenderContext, error) {
	if data == nil {
		return nil, fmt.Errorf("data cannot be nil")
	}

	obesity, err := resample.ObesityAt(data.Food.Years(), data.Obesity)
	if err != nil {
		return nil, fmt.Errorf("failed to resample obesity series: %w", err)
	}

	return &RenderContext{Data: data, Obesity: obesity}, nil
}

// DonutChartID returns the chart id of a region's serving donut
func DonutChartID(serving models.RegionServing) string {
	return donutChartPrefix + serving.Slug()
}

// ChartGenerator builds chart descriptions for one render context
type ChartGenerator struct {
	rc *RenderContext
}

// NewChartGenerator creates a new chart generator
func NewChartGenerator(rc *RenderContext) *ChartGenerator {
	return &ChartGenerator{rc: rc}
}

// GenerateAll builds every chart in page order: trend, one donut per
// region, composition
func (cg *ChartGenerator) GenerateAll() []Description {
	out := []Description{BuildTrend(cg.rc)}
	for i := range cg.rc.Data.Servings {
		out = append(out, BuildServingDonut(cg.rc, i))
	}
	return append(out, BuildCompositionPie(cg.rc))
}

// Generate builds the chart with the given id
func (cg *ChartGenerator) Generate(id string) (Description, error) {
	switch id {
	case TrendChartID:
		return BuildTrend(cg.rc), nil
	case CompositionChartID:
		return BuildCompositionPie(cg.rc), nil
	}
	for i, serving := range cg.rc.Data.Servings {
		if DonutChartID(serving) == id {
			return BuildServingDonut(cg.rc, i), nil
		}
	}
	return Description{}, fmt.Errorf("%w: %s", ErrUnknownChart, id)
}

// IDs lists the chart ids in page order
func (cg *ChartGenerator) IDs() []string {
	ids := []string{TrendChartID}
	for _, serving := range cg.rc.Data.Servings {
		ids = append(ids, DonutChartID(serving))
	}
	return append(ids, CompositionChartID)
}
