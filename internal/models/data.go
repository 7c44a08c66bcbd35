package models

import (
	"strconv"
	"strings"

	"github.com/samber/lo"
)

// Nutrition bundles every dataset shown on the dashboard
type Nutrition struct {
	Food     FoodTable       `json:"food"`
	Obesity  ObesitySeries   `json:"obesity"`
	Servings []RegionServing `json:"servings"`
	Oils     OilComposition  `json:"oils"`
}

// YearPoint is a single (year, value) sample
type YearPoint struct {
	Year  int     `json:"year"`
	Value float64 `json:"value"` // calories per person per day
}

// YearSeries is one food category sampled over the years
type YearSeries struct {
	Name   string      `json:"name"`
	Color  string      `json:"color"`
	Points []YearPoint `json:"points"`
}

// Years returns the sample years of the series in order
func (s YearSeries) Years() []int {
	return lo.Map(s.Points, func(p YearPoint, _ int) int { return p.Year })
}

// Values returns the sample values of the series in order
func (s YearSeries) Values() []float64 {
	return lo.Map(s.Points, func(p YearPoint, _ int) float64 { return p.Value })
}

// FoodTable holds the food categories in their declared display order.
// All series share the same sample years.
type FoodTable struct {
	Series []YearSeries `json:"series"`
}

// Years returns the sample years shared by all categories
func (t FoodTable) Years() []int {
	if len(t.Series) == 0 {
		return nil
	}
	return t.Series[0].Years()
}

// Lookup finds a category by name
func (t FoodTable) Lookup(name string) (YearSeries, bool) {
	return lo.Find(t.Series, func(s YearSeries) bool { return s.Name == name })
}

// ObesityPoint is one yearly obesity observation
type ObesityPoint struct {
	Year    int     `json:"year"`
	Percent float64 `json:"percent"`
}

// ObesitySeries is the annual obesity rate, used only as interpolation input
type ObesitySeries []ObesityPoint

// Years returns the observation years as floats for interpolation
func (s ObesitySeries) Years() []float64 {
	return lo.Map(s, func(p ObesityPoint, _ int) float64 { return float64(p.Year) })
}

// Percents returns the observed percentages in year order
func (s ObesitySeries) Percents() []float64 {
	return lo.Map(s, func(p ObesityPoint, _ int) float64 { return p.Percent })
}

// RegionServing is the average daily vegetable oil intake of a region
type RegionServing struct {
	Region      string  `json:"region"`
	Grams       float64 `json:"grams"`
	Tablespoons float64 `json:"tablespoons"` // always > 0
}

// Label returns the display label, e.g. "Europe (5.5 tbs)"
func (r RegionServing) Label() string {
	return r.Region + " (" + strconv.FormatFloat(r.Tablespoons, 'f', -1, 64) + " tbs)"
}

// Slug returns a lowercase identifier usable in element ids
func (r RegionServing) Slug() string {
	return strings.ToLower(strings.ReplaceAll(r.Region, " ", "-"))
}

// GramsLabel returns the gram amount as shown in the donut centre, e.g. "105g"
func (r RegionServing) GramsLabel() string {
	return strconv.FormatFloat(r.Grams, 'f', -1, 64) + "g"
}

// Oil is a named vegetable oil and its linoleic acid share
type Oil struct {
	Name        string `json:"name"`
	LinoleicPct int    `json:"linoleic_pct"`
}

// OilBand groups oils whose linoleic acid share falls in the same range
type OilBand struct {
	Label  string  `json:"label"`
	Color  string  `json:"color"`
	Weight float64 `json:"weight"` // slice size in the composition ring
	Oils   []Oil   `json:"oils"`
}

// OilComposition holds the four disjoint linoleic acid bands in display order
type OilComposition struct {
	Bands []OilBand `json:"bands"`
}

// Band returns the band with the given label
func (c OilComposition) Band(label string) (OilBand, bool) {
	return lo.Find(c.Bands, func(b OilBand) bool { return b.Label == label })
}

// Labels returns band labels in display order
func (c OilComposition) Labels() []string {
	return lo.Map(c.Bands, func(b OilBand, _ int) string { return b.Label })
}

// Weights returns the ring slice sizes in display order
func (c OilComposition) Weights() []float64 {
	return lo.Map(c.Bands, func(b OilBand, _ int) float64 { return b.Weight })
}

// Colors returns band colours in display order
func (c OilComposition) Colors() []string {
	return lo.Map(c.Bands, func(b OilBand, _ int) string { return b.Color })
}

// OilCount returns the number of named oils across all bands
func (c OilComposition) OilCount() int {
	return lo.Sum(lo.Map(c.Bands, func(b OilBand, _ int) int { return len(b.Oils) }))
}
