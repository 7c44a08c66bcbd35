// Package dataset holds the literal tables rendered by the dashboard.
package dataset

import (
	"munchies/internal/models"
)

// Food category names in display order
const (
	VegOils   = "Veg Oils"
	Dairy     = "Dairy"
	AnimalFat = "Animal Fat"
	Beef      = "Beef"
	Pork      = "Pork"
)

// Linoleic acid band labels in display order
const (
	BandLow    = "10–29%"
	BandPeanut = "30%"
	BandMid    = "50–55%"
	BandHigh   = "60–71%"
)

var sampleYears = []int{1960, 1965, 1970, 1975, 1980, 1985, 1990, 1995, 2000, 2005, 2010, 2015, 2020}

var foodCategories = []struct {
	name   string
	color  string
	values []float64
}{
	{VegOils, "#FFBF00", []float64{185.5, 310, 400, 480, 490, 520, 560, 550, 650, 690, 742, 825, 944}},
	{Dairy, "#b2b3ff", []float64{400, 395, 390, 380, 380, 400, 395, 400, 400, 395, 390, 385, 390}},
	{AnimalFat, "#d6a2f7", []float64{208, 190, 180, 135, 125, 118, 112, 95, 110, 112, 110, 108, 105}},
	{Beef, "#bd6aac", []float64{170, 172, 178, 190, 180, 165, 150, 130, 126, 120, 118, 118, 120}},
	{Pork, "#ffb6d3", []float64{130, 117, 120, 100, 135, 145, 145, 138, 120, 138, 140, 120, 115}},
}

// ObesityColor is the colour of the obesity trend line
const ObesityColor = "#333333"

const obesityStartYear = 1975

var obesityPercent = []float64{
	11.7, 12.1, 12.4, 12.7, 13.1, 13.5, 13.9, 14.3, 14.8, 15.2, 15.8, 16.3, 16.9, 17.5, 18.1,
	19, 19.8, 20.6, 21.5, 22.4, 23.3, 24.2, 25.2, 26.1, 27.1, 28.1,
	29.1, 30.1, 31.0, 31.9, 32.8, 33.7, 34.5, 35.2, 35.9, 36.5, 37.1, 37.6, 38.1, 38.6, 39.2,
	39.7, 40.2, 40.7, 41.2, 41.7, 42.2, 42.7,
}

// Load builds a fresh copy of every dataset. Callers may mutate the result
// without affecting other renders.
func Load() *models.Nutrition {
	return &models.Nutrition{
		Food:     foodTable(),
		Obesity:  obesitySeries(),
		Servings: servings(),
		Oils:     oilComposition(),
	}
}

func foodTable() models.FoodTable {
	table := models.FoodTable{Series: make([]models.YearSeries, 0, len(foodCategories))}
	for _, cat := range foodCategories {
		points := make([]models.YearPoint, len(sampleYears))
		for i, year := range sampleYears {
			points[i] = models.YearPoint{Year: year, Value: cat.values[i]}
		}
		table.Series = append(table.Series, models.YearSeries{
			Name:   cat.name,
			Color:  cat.color,
			Points: points,
		})
	}
	return table
}

func obesitySeries() models.ObesitySeries {
	series := make(models.ObesitySeries, len(obesityPercent))
	for i, pct := range obesityPercent {
		series[i] = models.ObesityPoint{Year: obesityStartYear + i, Percent: pct}
	}
	return series
}

func servings() []models.RegionServing {
	return []models.RegionServing{
		{Region: "USA", Grams: 105, Tablespoons: 8},
		{Region: "Europe", Grams: 70, Tablespoons: 5.5},
		{Region: "World", Grams: 50, Tablespoons: 3.7},
	}
}

func oilComposition() models.OilComposition {
	return models.OilComposition{Bands: []models.OilBand{
		{
			Label:  BandLow,
			Color:  "#ffeb3b",
			Weight: 19,
			Oils: []models.Oil{
				{Name: "Palm oil", LinoleicPct: 10},
				{Name: "Avocado oil", LinoleicPct: 17},
				{Name: "Olive oil", LinoleicPct: 20},
				{Name: "Canola (rapeseed) oil", LinoleicPct: 21},
			},
		},
		{
			Label:  BandPeanut,
			Color:  "#fbc02d",
			Weight: 2,
			Oils: []models.Oil{
				{Name: "Peanut oil", LinoleicPct: 30},
				{Name: "Rice bran oil", LinoleicPct: 30},
			},
		},
		{
			Label:  BandMid,
			Color:  "#ba68c8",
			Weight: 5,
			Oils: []models.Oil{
				{Name: "Cottonseed oil", LinoleicPct: 53},
				{Name: "Soybean oil", LinoleicPct: 55},
			},
		},
		{
			Label:  BandHigh,
			Color:  "#6a1b9a",
			Weight: 11,
			Oils: []models.Oil{
				{Name: "Corn oil", LinoleicPct: 60},
				{Name: "Sunflower oil", LinoleicPct: 66},
				{Name: "Safflower oil", LinoleicPct: 71},
				{Name: "Grapeseed oil", LinoleicPct: 71},
			},
		},
	}}
}
