package charts

import (
	"fmt"

	"munchies/internal/dataset"
)

// annotationColumn lays out band headers and their oils top to bottom
type annotationColumn struct {
	bands       []string
	headerX     float64
	headerAlign Anchor
	oilX        float64
	startY      float64
	oilStep     float64
}

// Highest band on the right, the others stacked on the left from the top down.
var compositionColumns = []annotationColumn{
	{
		bands:       []string{dataset.BandMid, dataset.BandPeanut, dataset.BandLow},
		headerX:     -0.01,
		headerAlign: AnchorLeft,
		oilX:        0,
		startY:      1.078,
		oilStep:     0.045,
	},
	{
		bands:       []string{dataset.BandHigh},
		headerX:     0.98,
		headerAlign: AnchorRight,
		oilX:        0.85,
		startY:      0.9,
		oilStep:     0.05,
	},
}

const bandStep = 0.28

// BuildCompositionPie describes the linoleic acid ring. Slice sizes are the
// band weights in declared order; per-oil percentages are annotations around
// the ring.
func BuildCompositionPie(rc *RenderContext) Description {
	comp := rc.Data.Oils
	d := Description{
		ID:     CompositionChartID,
		Title:  "Linoleic Acid % in Vegetable Oils",
		Height: 400,
		Series: []Series{{
			Name:        "Linoleic acid",
			Type:        SeriesPie,
			Data:        comp.Weights(),
			Labels:      comp.Labels(),
			Colors:      comp.Colors(),
			Hole:        0.5,
			ShowLabels:  true,
			LabelColor:  "white",
			BorderColor: "white",
			BorderWidth: 1,
			StartAngle:  90,
			Clockwise:   true,
		}},
		Margin: Margin{Top: 30, Right: 80, Bottom: 10, Left: 40},
	}

	for _, col := range compositionColumns {
		for i, label := range col.bands {
			band, ok := comp.Band(label)
			if !ok {
				continue
			}
			y := col.startY - float64(i)*bandStep
			d.Annotations = append(d.Annotations, Annotation{
				Text:     band.Label,
				X:        col.headerX,
				Y:        y,
				Anchor:   col.headerAlign,
				FontSize: 14,
				Color:    "black",
				Bold:     true,
				Bullet:   band.Color,
			})
			for j, oil := range band.Oils {
				d.Annotations = append(d.Annotations, Annotation{
					Text:     fmt.Sprintf("%s: %d%%", oil.Name, oil.LinoleicPct),
					X:        col.oilX,
					Y:        y - float64(j+1)*col.oilStep,
					Anchor:   AnchorLeft,
					FontSize: 13,
					Color:    "black",
				})
			}
		}
	}

	d.Annotations = append(d.Annotations, Annotation{
		Text:     "Linoleic Acid % in Vegetable Oils",
		X:        0.5,
		Y:        0.45,
		Anchor:   AnchorCenter,
		FontSize: 16,
		Color:    "black",
		Bold:     true,
	})

	return d
}
