package main

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/olekukonko/tablewriter"
	"github.com/samber/lo"
	"github.com/spf13/cobra"

	"munchies/internal/charts"
	"munchies/internal/dataset"
	"munchies/internal/models"
)

func buildTableCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "table",
		Short: "Print the food table, resampled obesity rate and oil bands",
		RunE: func(cmd *cobra.Command, args []string) error {
			rc, err := charts.NewRenderContext(dataset.Load())
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			writeFoodTable(out, rc)
			fmt.Fprintln(out)
			writeBandTable(out, rc.Data.Oils)
			return nil
		},
	}
}

// writeFoodTable prints one row per year: calories per category, then obesity
func writeFoodTable(w io.Writer, rc *charts.RenderContext) {
	table := tablewriter.NewWriter(w)
	table.SetAutoFormatHeaders(false)

	food := rc.Data.Food
	header := append([]string{"Year"}, lo.Map(food.Series, func(s models.YearSeries, _ int) string {
		return s.Name
	})...)
	table.SetHeader(append(header, "Obesity (%)"))

	for i, year := range food.Years() {
		row := []string{strconv.Itoa(year)}
		for _, s := range food.Series {
			row = append(row, strconv.FormatFloat(s.Points[i].Value, 'f', -1, 64))
		}
		table.Append(append(row, strconv.FormatFloat(rc.Obesity[i], 'f', 1, 64)))
	}

	alignment := lo.Times(len(header)+1, func(int) int { return tablewriter.ALIGN_RIGHT })
	table.SetColumnAlignment(alignment)
	table.Render()
}

// writeBandTable prints the linoleic acid bands and their oils
func writeBandTable(w io.Writer, oils models.OilComposition) {
	table := tablewriter.NewWriter(w)
	table.SetAutoFormatHeaders(false)
	table.SetAutoWrapText(false)
	table.SetHeader([]string{"Linoleic acid", "Oils"})

	for _, band := range oils.Bands {
		names := lo.Map(band.Oils, func(o models.Oil, _ int) string {
			return fmt.Sprintf("%s (%d%%)", o.Name, o.LinoleicPct)
		})
		table.Append([]string{band.Label, strings.Join(names, ", ")})
	}

	table.SetColumnAlignment([]int{tablewriter.ALIGN_LEFT, tablewriter.ALIGN_LEFT})
	table.Render()
}
