package charts

// BuildServingDonut describes the serving size gauge of the region at index
// region of rc.Data.Servings. The ring is always split 1:1; only the centre
// text carries the gram amount.
func BuildServingDonut(rc *RenderContext, region int) Description {
	serving := rc.Data.Servings[region]
	return Description{
		ID:     DonutChartID(serving),
		Title:  serving.Label(),
		Width:  80,
		Height: 80,
		Series: []Series{{
			Name:   serving.Region,
			Type:   SeriesPie,
			Data:   []float64{1, 1},
			Labels: []string{"used", "remaining"},
			Colors: []string{"#bd6aac", "#ffffff"},
			Hole:   0.65,
		}},
		Annotations: []Annotation{{
			Text:     serving.GramsLabel(),
			X:        0.5,
			Y:        0.5,
			Anchor:   AnchorCenter,
			FontSize: 18,
			Color:    "black",
		}},
	}
}
