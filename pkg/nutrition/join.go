package nutrition

import (
	"github.com/gnames/gnnutri/pkg/foodkey"
	"github.com/gnames/gnnutri/pkg/layout"
	"github.com/gnames/gnnutri/pkg/table"
)

// Join merges every recipe row with at most one reference row that has
// the same normalized (code, group) key. Matched rows get nutrient values
// scaled to their portion weight, unmatched rows get invalid amounts.
//
// Column positions come from the layout. A missing key or weight column
// is a SchemaError, a reference key that appears twice is a
// JoinCardinalityError. Both are checked before any row is merged.
func Join(
	recipes, reference *table.Table,
	lay layout.Layout,
) (*Result, error) {
	recCols, err := lay.ResolveRecipes(recipes)
	if err != nil {
		return nil, err
	}
	refCols, err := lay.ResolveReference(reference)
	if err != nil {
		return nil, err
	}
	nutrIdx, err := lay.ResolveNutrients(reference, refCols)
	if err != nil {
		return nil, err
	}

	profiles, err := indexReference(reference, refCols, nutrIdx)
	if err != nil {
		return nil, err
	}

	res := Result{
		RecipesSource:   recipes.Source,
		ReferenceSource: reference.Source,
		Nutrients:       make([]string, len(nutrIdx)),
		Rows:            make([]JoinedRow, 0, recipes.Len()),
	}
	for i, idx := range nutrIdx {
		res.Nutrients[i] = reference.Header[idx]
	}

	attrIdx := descriptiveColumns(recipes, res.Nutrients)
	res.Roles = make([]layout.Field, len(attrIdx))
	for j, idx := range attrIdx {
		res.Columns = append(res.Columns, recipes.Header[idx])
		for _, f := range []layout.Field{layout.Code, layout.Group, layout.Weight} {
			if recCols.Get(f) == idx {
				res.Roles[j] = f
			}
		}
	}

	seen := make(map[foodkey.Key]struct{})
	for i := range recipes.Rows {
		ing := ingredientRow(recipes, i, recCols, attrIdx)
		row := JoinedRow{IngredientRow: ing}

		if p, ok := profiles[ing.Key]; ok {
			row.Matched = true
			row.Nutrients = ScaleProfile(p, ing.Weight)
			res.Matched++
		} else {
			row.Nutrients = make([]Amount, len(nutrIdx))
			res.Unmatched++
			if _, ok := seen[ing.Key]; !ok {
				seen[ing.Key] = struct{}{}
				res.UnmatchedKeys = append(res.UnmatchedKeys, ing.Key)
			}
		}
		res.Rows = append(res.Rows, row)
	}
	return &res, nil
}

// indexReference builds profiles of all reference rows keyed by food key.
func indexReference(
	t *table.Table,
	keys layout.Columns,
	nutrIdx []int,
) (map[foodkey.Key]Profile, error) {
	codeIdx := keys.Get(layout.Code)
	groupIdx := keys.Get(layout.Group)

	res := make(map[foodkey.Key]Profile, t.Len())
	lines := make(map[foodkey.Key]int, t.Len())
	for i := range t.Rows {
		key := foodkey.New(t.Cell(i, codeIdx), t.Cell(i, groupIdx))
		if line, ok := lines[key]; ok {
			return nil, JoinCardinalityError(t.Source, key, line, t.Lines[i])
		}
		lines[key] = t.Lines[i]

		p := make(Profile, len(nutrIdx))
		for j, idx := range nutrIdx {
			p[j] = ParseAmount(t.Cell(i, idx))
		}
		res[key] = p
	}
	return res, nil
}

// descriptiveColumns returns positions of recipe columns that are not
// named like a nutrient and have a name.
func descriptiveColumns(t *table.Table, nutrients []string) []int {
	skip := make(map[string]struct{}, len(nutrients))
	for _, v := range nutrients {
		skip[v] = struct{}{}
	}
	var res []int
	for i, name := range t.Header {
		if name == "" {
			continue
		}
		if _, ok := skip[name]; ok {
			continue
		}
		res = append(res, i)
	}
	return res
}

func ingredientRow(
	t *table.Table,
	i int,
	cols layout.Columns,
	attrIdx []int,
) IngredientRow {
	code := t.Cell(i, cols.Get(layout.Code))
	group := t.Cell(i, cols.Get(layout.Group))
	weight, ok := ParseWeight(t.Cell(i, cols.Get(layout.Weight)))

	res := IngredientRow{
		Line:        t.Lines[i],
		Recipe:      t.Cell(i, cols.Get(layout.Recipe)),
		Ingredient:  t.Cell(i, cols.Get(layout.Ingredient)),
		UT:          t.Cell(i, cols.Get(layout.UT)),
		RecipeType:  t.Cell(i, cols.Get(layout.RecipeType)),
		AgeGroup:    t.Cell(i, cols.Get(layout.AgeGroup)),
		Code:        code,
		Group:       group,
		Key:         foodkey.New(code, group),
		Weight:      weight,
		WeightValid: ok,
		Attrs:       make([]string, len(attrIdx)),
	}
	for j, idx := range attrIdx {
		res.Attrs[j] = t.Cell(i, idx)
	}
	return res
}
