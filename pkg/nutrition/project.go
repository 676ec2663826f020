package nutrition

const (
	// ColIngredient is the ingredient column of a detail table.
	ColIngredient = "ingrediente_registrado"

	// ColWeight is the portion weight column of a detail table.
	ColWeight = "peso_neto__racion_g"

	// TotalLabel is the ingredient cell of the total row.
	TotalLabel = "TOTAL"
)

// Detail is the per-ingredient view of one recipe.
type Detail struct {
	Recipe    string
	Rations   int
	Nutrients []string

	// Rows are ingredient rows in source order followed by the total row.
	Rows []DetailRow
}

// DetailRow is one ingredient of a Detail, or its total.
type DetailRow struct {
	Ingredient string

	// Weight is the portion weight multiplied by rations. It is invalid
	// for the total row.
	Weight Amount

	// Values are selected nutrients multiplied by rations.
	Values []float64

	Total bool
}

// Header returns column names of the detail table.
func (d *Detail) Header() []string {
	res := make([]string, 0, len(d.Nutrients)+2)
	res = append(res, ColIngredient, ColWeight)
	return append(res, d.Nutrients...)
}

// Total returns the total row.
func (d *Detail) Total() DetailRow {
	return d.Rows[len(d.Rows)-1]
}

// Project builds the detail table of a recipe: its ingredients with
// weight and selected nutrients multiplied by rations, and a final TOTAL
// row with column sums. An empty recipe name selects the first recipe
// found in rows.
func Project(
	rows []JoinedRow,
	nutrients []string,
	recipe string,
	selection []string,
	rations int,
) (*Detail, error) {
	if rations < 1 {
		return nil, InvalidRationsError(rations)
	}
	names, idx, err := SelectNutrients(nutrients, selection)
	if err != nil {
		return nil, err
	}

	if recipe == "" {
		if len(rows) == 0 {
			return nil, UnknownRecipeError(recipe)
		}
		recipe = rows[0].Recipe
	}

	res := Detail{
		Recipe:    recipe,
		Rations:   rations,
		Nutrients: names,
	}
	total := DetailRow{
		Ingredient: TotalLabel,
		Values:     make([]float64, len(idx)),
		Total:      true,
	}
	r := float64(rations)
	for i := range rows {
		if rows[i].Recipe != recipe {
			continue
		}
		dr := DetailRow{
			Ingredient: rows[i].Ingredient,
			Weight:     Valid(rows[i].Weight * r),
			Values:     make([]float64, len(idx)),
		}
		for j, n := range idx {
			dr.Values[j] = rows[i].Nutrients[n].Or0() * r
			total.Values[j] += dr.Values[j]
		}
		res.Rows = append(res.Rows, dr)
	}
	if len(res.Rows) == 0 {
		return nil, UnknownRecipeError(recipe)
	}
	res.Rows = append(res.Rows, total)
	return &res, nil
}

// Recipes returns distinct recipe names in the order of rows.
func Recipes(rows []JoinedRow) []string {
	var res []string
	seen := make(map[string]struct{})
	for i := range rows {
		name := rows[i].Recipe
		if _, ok := seen[name]; ok {
			continue
		}
		seen[name] = struct{}{}
		res = append(res, name)
	}
	return res
}
