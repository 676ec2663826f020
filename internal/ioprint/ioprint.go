// Package ioprint renders summaries and details to the terminal as a
// table, CSV or JSON.
package ioprint

import (
	"encoding/csv"
	"io"
	"strconv"

	"github.com/gnames/gnfmt"
	"github.com/gnames/gnnutri/pkg/display"
	"github.com/gnames/gnnutri/pkg/nutrition"
	"github.com/olekukonko/tablewriter"
)

// Output formats.
const (
	Table = "table"
	CSV   = "csv"
	JSON  = "json"
)

// Column names that do not come from input tables.
const (
	ColIngredients = "Ingredientes"
	ColUnmatched   = "Sin match"
	ColNoWeight    = "Sin peso"
)

// IncompleteMark is appended to recipe names in table output when some
// ingredients contributed zero.
const IncompleteMark = " *"

type summaryJSON struct {
	Recipe               string             `json:"recipe"`
	Rations              int                `json:"rations"`
	Totals               map[string]float64 `json:"totals"`
	Ingredients          int                `json:"ingredients"`
	UnmatchedIngredients int                `json:"unmatchedIngredients"`
	MissingWeights       int                `json:"missingWeights"`
	Incomplete           bool               `json:"incomplete"`
}

type detailRowJSON struct {
	Ingredient string             `json:"ingredient"`
	Weight     *float64           `json:"weight,omitempty"`
	Values     map[string]float64 `json:"values"`
}

type detailJSON struct {
	Recipe  string          `json:"recipe"`
	Rations int             `json:"rations"`
	Rows    []detailRowJSON `json:"rows"`
	Total   detailRowJSON   `json:"total"`
}

type nutrientJSON struct {
	Name  string `json:"name"`
	Label string `json:"label"`
}

// Summaries writes recipe totals. Values are rounded to one decimal and
// nutrients are shown with their display labels.
func Summaries(
	w io.Writer,
	format string,
	nutrients []string,
	sums []nutrition.RecipeSummary,
) error {
	if format == JSON {
		res := make([]summaryJSON, len(sums))
		for i, s := range sums {
			res[i] = summaryJSON{
				Recipe:               s.Recipe,
				Rations:              s.Rations,
				Totals:               valuesMap(nutrients, s.Totals),
				Ingredients:          s.Ingredients,
				UnmatchedIngredients: s.UnmatchedIngredients,
				MissingWeights:       s.MissingWeights,
				Incomplete:           s.Incomplete,
			}
		}
		return writeJSON(w, res)
	}

	header := []string{display.Label("nombre_de_receta")}
	header = append(header, display.Labels(nutrients)...)
	header = append(header, ColIngredients, ColUnmatched, ColNoWeight)

	rows := make([][]string, len(sums))
	for i, s := range sums {
		name := s.Recipe
		if s.Incomplete && format == Table {
			name += IncompleteMark
		}
		row := []string{name}
		row = append(row, formatValues(s.Totals)...)
		row = append(row,
			strconv.Itoa(s.Ingredients),
			strconv.Itoa(s.UnmatchedIngredients),
			strconv.Itoa(s.MissingWeights),
		)
		rows[i] = row
	}
	return writeRows(w, format, header, rows)
}

// Detail writes ingredient rows of a recipe followed by the TOTAL row.
func Detail(w io.Writer, format string, d *nutrition.Detail) error {
	if format == JSON {
		res := detailJSON{Recipe: d.Recipe, Rations: d.Rations}
		for _, r := range d.Rows {
			row := detailRowJSON{
				Ingredient: r.Ingredient,
				Values:     valuesMap(d.Nutrients, r.Values),
			}
			if r.Weight.Valid {
				v := nutrition.Round1(r.Weight.Value)
				row.Weight = &v
			}
			if r.Total {
				res.Total = row
				continue
			}
			res.Rows = append(res.Rows, row)
		}
		return writeJSON(w, res)
	}

	header := display.Labels(d.Header())
	rows := make([][]string, len(d.Rows))
	for i, r := range d.Rows {
		var weight string
		if r.Weight.Valid {
			weight = formatFloat(r.Weight.Value)
		}
		row := []string{r.Ingredient, weight}
		rows[i] = append(row, formatValues(r.Values)...)
	}
	return writeRows(w, format, header, rows)
}

// Nutrients writes nutrient names of a run with their display labels.
func Nutrients(w io.Writer, format string, names []string) error {
	if format == JSON {
		res := make([]nutrientJSON, len(names))
		for i, v := range names {
			res[i] = nutrientJSON{Name: v, Label: display.Label(v)}
		}
		return writeJSON(w, res)
	}

	rows := make([][]string, len(names))
	for i, v := range names {
		rows[i] = []string{strconv.Itoa(i + 1), v, display.Label(v)}
	}
	return writeRows(w, format, []string{"#", "Nombre", "Etiqueta"}, rows)
}

func writeRows(w io.Writer, format string, header []string, rows [][]string) error {
	switch format {
	case Table:
		tw := tablewriter.NewWriter(w)
		tw.SetHeader(header)
		tw.SetAutoFormatHeaders(false)
		tw.SetAutoWrapText(false)
		tw.AppendBulk(rows)
		tw.Render()
		return nil
	case CSV:
		cw := csv.NewWriter(w)
		if err := cw.Write(header); err != nil {
			return WriteError(err)
		}
		if err := cw.WriteAll(rows); err != nil {
			return WriteError(err)
		}
		return nil
	default:
		return OutputFormatError(format)
	}
}

func writeJSON(w io.Writer, v any) error {
	enc := gnfmt.GNjson{Pretty: true}
	bs, err := enc.Encode(v)
	if err != nil {
		return WriteError(err)
	}
	bs = append(bs, '\n')
	if _, err = w.Write(bs); err != nil {
		return WriteError(err)
	}
	return nil
}

func valuesMap(names []string, vals []float64) map[string]float64 {
	res := make(map[string]float64, len(names))
	for i, v := range names {
		res[v] = nutrition.Round1(vals[i])
	}
	return res
}

func formatValues(vals []float64) []string {
	res := make([]string, len(vals))
	for i, v := range vals {
		res[i] = formatFloat(v)
	}
	return res
}

func formatFloat(v float64) string {
	return strconv.FormatFloat(nutrition.Round1(v), 'f', 1, 64)
}
