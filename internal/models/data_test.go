package models

import (
	"testing"
)

func TestRegionServingLabels(t *testing.T) {
	tests := []struct {
		name      string
		serving   RegionServing
		wantLabel string
		wantGrams string
		wantSlug  string
	}{
		{"whole tablespoons", RegionServing{Region: "USA", Grams: 105, Tablespoons: 8}, "USA (8 tbs)", "105g", "usa"},
		{"half tablespoon", RegionServing{Region: "Europe", Grams: 70, Tablespoons: 5.5}, "Europe (5.5 tbs)", "70g", "europe"},
		{"fractional", RegionServing{Region: "World", Grams: 50, Tablespoons: 3.7}, "World (3.7 tbs)", "50g", "world"},
		{"spaces in region", RegionServing{Region: "North America", Grams: 1, Tablespoons: 1}, "North America (1 tbs)", "1g", "north-america"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.serving.Label(); got != tt.wantLabel {
				t.Errorf("Label() = %q, want %q", got, tt.wantLabel)
			}
			if got := tt.serving.GramsLabel(); got != tt.wantGrams {
				t.Errorf("GramsLabel() = %q, want %q", got, tt.wantGrams)
			}
			if got := tt.serving.Slug(); got != tt.wantSlug {
				t.Errorf("Slug() = %q, want %q", got, tt.wantSlug)
			}
		})
	}
}

func TestFoodTableLookup(t *testing.T) {
	table := FoodTable{Series: []YearSeries{
		{Name: "A", Points: []YearPoint{{Year: 2000, Value: 1}, {Year: 2005, Value: 2}}},
		{Name: "B", Points: []YearPoint{{Year: 2000, Value: 3}, {Year: 2005, Value: 4}}},
	}}

	series, ok := table.Lookup("B")
	if !ok {
		t.Fatal("expected to find series B")
	}
	if got := series.Values(); len(got) != 2 || got[0] != 3 || got[1] != 4 {
		t.Errorf("unexpected values %v", got)
	}
	if _, ok := table.Lookup("C"); ok {
		t.Error("did not expect to find series C")
	}

	years := table.Years()
	if len(years) != 2 || years[0] != 2000 || years[1] != 2005 {
		t.Errorf("unexpected years %v", years)
	}
	if (FoodTable{}).Years() != nil {
		t.Error("empty table should have no years")
	}
}

func TestOilCompositionAggregates(t *testing.T) {
	comp := OilComposition{Bands: []OilBand{
		{Label: "low", Color: "#111111", Weight: 3, Oils: []Oil{{Name: "a", LinoleicPct: 1}}},
		{Label: "high", Color: "#222222", Weight: 4, Oils: []Oil{{Name: "b", LinoleicPct: 2}, {Name: "c", LinoleicPct: 3}}},
	}}

	if got := comp.OilCount(); got != 3 {
		t.Errorf("OilCount() = %d, want 3", got)
	}
	if got := comp.Weights(); got[0] != 3 || got[1] != 4 {
		t.Errorf("Weights() = %v", got)
	}
	if got := comp.Labels(); got[0] != "low" || got[1] != "high" {
		t.Errorf("Labels() = %v", got)
	}
	if got := comp.Colors(); got[1] != "#222222" {
		t.Errorf("Colors() = %v", got)
	}
	band, ok := comp.Band("high")
	if !ok || len(band.Oils) != 2 {
		t.Errorf("Band(high) = %+v, %v", band, ok)
	}
}
