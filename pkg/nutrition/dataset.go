package nutrition

import (
	"github.com/gnames/gnnutri/pkg/layout"
)

// Cell is a value of the full dataset: nil for a missing value, float64
// for numbers and string for text.
type Cell = any

// Dataset projects the full joined dataset: descriptive recipe columns in
// source order followed by nutrient columns. Key cells are normalized,
// the weight column holds the weight used for scaling or the raw cell when
// the weight was invalid, text that looks like a number is converted to
// float64 and missing nutrients are nil.
func Dataset(res *Result) ([]string, [][]Cell) {
	header := make([]string, 0, len(res.Columns)+len(res.Nutrients))
	header = append(header, res.Columns...)
	header = append(header, res.Nutrients...)

	rows := make([][]Cell, len(res.Rows))
	for i := range res.Rows {
		r := &res.Rows[i]
		row := make([]Cell, 0, len(header))
		for j, v := range r.Attrs {
			switch res.Roles[j] {
			case layout.Code:
				row = append(row, textCell(r.Key.Code))
			case layout.Group:
				row = append(row, r.Key.Group)
			case layout.Weight:
				if !r.WeightValid {
					row = append(row, textCell(v))
					continue
				}
				row = append(row, r.Weight)
			default:
				row = append(row, textCell(v))
			}
		}
		for _, a := range r.Nutrients {
			if a.Valid {
				row = append(row, a.Value)
			} else {
				row = append(row, nil)
			}
		}
		rows[i] = row
	}
	return header, rows
}

func textCell(s string) Cell {
	if s == "" {
		return nil
	}
	if v, ok := parseFloat(s); ok {
		return v
	}
	return s
}
