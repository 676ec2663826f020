package nutrition

import (
	"slices"
	"strings"
)

// Filter keeps rows by descriptive attributes. A row passes when its
// attribute is in every non-empty list. Comparison ignores case and
// surrounding spaces.
type Filter struct {
	UT         []string
	RecipeType []string
	AgeGroup   []string
}

// IsEmpty returns true if the filter keeps every row.
func (f Filter) IsEmpty() bool {
	return len(f.UT) == 0 && len(f.RecipeType) == 0 && len(f.AgeGroup) == 0
}

// Apply returns rows that pass the filter. The input is not modified.
func (f Filter) Apply(rows []JoinedRow) []JoinedRow {
	if f.IsEmpty() {
		return rows
	}
	ut := fold(f.UT)
	rt := fold(f.RecipeType)
	ag := fold(f.AgeGroup)

	var res []JoinedRow
	for i := range rows {
		r := &rows[i]
		if !accept(ut, r.UT) || !accept(rt, r.RecipeType) ||
			!accept(ag, r.AgeGroup) {
			continue
		}
		res = append(res, *r)
	}
	return res
}

// Choices returns distinct values of filterable attributes found in rows,
// sorted.
func Choices(rows []JoinedRow) Filter {
	var res Filter
	for i := range rows {
		res.UT = appendNew(res.UT, rows[i].UT)
		res.RecipeType = appendNew(res.RecipeType, rows[i].RecipeType)
		res.AgeGroup = appendNew(res.AgeGroup, rows[i].AgeGroup)
	}
	slices.Sort(res.UT)
	slices.Sort(res.RecipeType)
	slices.Sort(res.AgeGroup)
	return res
}

func appendNew(vals []string, v string) []string {
	if v == "" || slices.Contains(vals, v) {
		return vals
	}
	return append(vals, v)
}

func fold(vals []string) map[string]struct{} {
	if len(vals) == 0 {
		return nil
	}
	res := make(map[string]struct{}, len(vals))
	for _, v := range vals {
		res[foldValue(v)] = struct{}{}
	}
	return res
}

func accept(set map[string]struct{}, v string) bool {
	if set == nil {
		return true
	}
	_, ok := set[foldValue(v)]
	return ok
}

func foldValue(s string) string {
	return strings.ToUpper(strings.TrimSpace(s))
}
