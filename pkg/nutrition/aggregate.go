package nutrition

import (
	"slices"

	"github.com/gnames/gnnutri/pkg/display"
)

// SelectNutrients resolves a nutrient selection against nutrient names of
// a run. Selection entries can be internal names or display labels. An
// empty selection selects all nutrients, repeated entries are ignored.
// It returns selected internal names and their positions.
func SelectNutrients(
	nutrients []string,
	selection []string,
) ([]string, []int, error) {
	if len(selection) == 0 {
		idx := make([]int, len(nutrients))
		for i := range idx {
			idx[i] = i
		}
		return slices.Clone(nutrients), idx, nil
	}

	names := make([]string, 0, len(selection))
	idx := make([]int, 0, len(selection))
	var unknown []string
	for _, v := range selection {
		i := slices.Index(nutrients, v)
		if i < 0 {
			i = slices.Index(nutrients, display.Internal(v))
		}
		if i < 0 {
			unknown = append(unknown, v)
			continue
		}
		// a nutrient given by name and by label is selected once
		if slices.Contains(idx, i) {
			continue
		}
		names = append(names, nutrients[i])
		idx = append(idx, i)
	}
	if len(unknown) > 0 {
		return nil, nil, UnknownNutrientError(unknown)
	}
	return names, idx, nil
}

// Aggregate sums selected nutrients of rows per recipe and multiplies the
// sums by rations. Missing amounts add 0. Summaries are sorted by recipe
// name and do not depend on the order of rows.
//
// Rations less than 1 are rejected before any work is done.
func Aggregate(
	rows []JoinedRow,
	nutrients []string,
	selection []string,
	rations int,
) ([]RecipeSummary, error) {
	if rations < 1 {
		return nil, InvalidRationsError(rations)
	}
	_, idx, err := SelectNutrients(nutrients, selection)
	if err != nil {
		return nil, err
	}

	groups := make(map[string][]int)
	for i := range rows {
		name := rows[i].Recipe
		groups[name] = append(groups[name], i)
	}

	names := make([]string, 0, len(groups))
	for k := range groups {
		names = append(names, k)
	}
	slices.Sort(names)

	res := make([]RecipeSummary, 0, len(names))
	for _, name := range names {
		members := groups[name]
		rs := RecipeSummary{
			Recipe:      name,
			Totals:      make([]float64, len(idx)),
			Rations:     rations,
			Ingredients: len(members),
		}
		for _, i := range members {
			if !rows[i].Matched {
				rs.UnmatchedIngredients++
			}
			if !rows[i].WeightValid {
				rs.MissingWeights++
			}
		}
		rs.Incomplete = rs.UnmatchedIngredients > 0 || rs.MissingWeights > 0

		vals := make([]float64, len(members))
		for j, n := range idx {
			for k, i := range members {
				vals[k] = rows[i].Nutrients[n].Or0()
			}
			rs.Totals[j] = sum(vals) * float64(rations)
		}
		res = append(res, rs)
	}
	return res, nil
}

// sum adds values in sorted order, so the result is the same for any
// permutation of vals. It sorts vals in place.
func sum(vals []float64) float64 {
	slices.Sort(vals)
	var res float64
	for _, v := range vals {
		res += v
	}
	return res
}
