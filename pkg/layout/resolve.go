package layout

import (
	"slices"

	"github.com/gnames/gnnutri/pkg/table"
)

// Columns maps logical fields to column positions of a table.
type Columns map[Field]int

// Get returns the position of a field, or -1 if the field was not found.
func (c Columns) Get(f Field) int {
	if i, ok := c[f]; ok {
		return i
	}
	return -1
}

// Resolve finds positions of fields in the table header. For every field
// its aliases are tried in order and the first one present in the header
// is used. A missing required field is a SchemaError.
func Resolve(
	t *table.Table,
	aliases map[Field][]string,
	fields []Field,
	required []Field,
	tableName string,
) (Columns, error) {
	res := make(Columns, len(fields))
	for _, f := range fields {
		idx := -1
		for _, name := range aliases[f] {
			if idx = t.Index(name); idx >= 0 {
				break
			}
		}
		if idx >= 0 {
			res[f] = idx
			continue
		}
		if slices.Contains(required, f) {
			return nil, SchemaError(f, tableName, t.Source, aliases[f])
		}
	}
	return res, nil
}

// ResolveRecipes resolves recipe table columns.
func (l Layout) ResolveRecipes(t *table.Table) (Columns, error) {
	return Resolve(
		t, l.RecipeColumns, RecipeFields, RequiredRecipeFields, RecipeTable,
	)
}

// ResolveReference resolves key columns of the reference table.
func (l Layout) ResolveReference(t *table.Table) (Columns, error) {
	return Resolve(
		t, l.ReferenceColumns, RequiredReferenceFields,
		RequiredReferenceFields, ReferenceTable,
	)
}

// ResolveNutrients returns positions of nutrient columns in the reference
// table. With configured nutrient names every name must be present. Without
// them the positional range [PositionalStart, PositionalEnd) is used, and
// the header must be wide enough and must not have key columns inside the
// range.
func (l Layout) ResolveNutrients(
	t *table.Table,
	keys Columns,
) ([]int, error) {
	var res []int
	if len(l.Nutrients) > 0 {
		var missing []string
		for _, name := range l.Nutrients {
			idx := t.Index(name)
			if idx < 0 {
				missing = append(missing, name)
				continue
			}
			res = append(res, idx)
		}
		if len(missing) > 0 {
			return nil, MissingNutrientsError(t.Source, missing)
		}
	} else {
		if len(t.Header) < PositionalEnd {
			return nil, PositionalLayoutError(t.Source, len(t.Header))
		}
		for i := PositionalStart; i < PositionalEnd; i++ {
			res = append(res, i)
		}
	}

	seen := make(map[string]struct{}, len(res))
	for _, idx := range res {
		name := t.Header[idx]
		for f, k := range keys {
			if k == idx {
				return nil, NutrientKeyOverlapError(t.Source, name, f)
			}
		}
		if name == "" {
			return nil, PositionalLayoutError(t.Source, len(t.Header))
		}
		if _, ok := seen[name]; ok {
			return nil, DuplicateNutrientError(name)
		}
		seen[name] = struct{}{}
	}
	return res, nil
}
