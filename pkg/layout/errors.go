package layout

import (
	"fmt"
	"strings"

	"github.com/gnames/gn"
	"github.com/gnames/gnnutri/pkg/errcode"
)

// SchemaError is returned when a required column cannot be found under
// any accepted name.
func SchemaError(
	field Field,
	tableName, source string,
	aliases []string,
) error {
	msg := `Cannot find <em>%s</em> column in the %s table

<em>File:</em> %s
<em>Accepted column names:</em> %s

<em>How to fix:</em>
  1. Rename the column in the file to one of the accepted names
  2. Or add the column name to <em>layout.yaml</em>`

	vars := []any{field, tableName, source, strings.Join(aliases, ", ")}

	return &gn.Error{
		Code: errcode.SchemaError,
		Msg:  msg,
		Vars: vars,
		Err: fmt.Errorf(
			"missing %s column in %s table %s", field, tableName, source,
		),
	}
}

// NoAliasesError is returned when the layout has no column names for
// a required field.
func NoAliasesError(field Field, tableName string) error {
	msg := "Layout has no column names for <em>%s</em> of the %s table"
	vars := []any{field, tableName}
	return &gn.Error{
		Code: errcode.LayoutConfigError,
		Msg:  msg,
		Vars: vars,
		Err:  fmt.Errorf("no aliases for %s in %s table", field, tableName),
	}
}

// DuplicateNutrientError is returned when the same nutrient column
// appears twice.
func DuplicateNutrientError(name string) error {
	msg := "Nutrient column <em>%s</em> is listed more than once"
	vars := []any{name}
	return &gn.Error{
		Code: errcode.LayoutConfigError,
		Msg:  msg,
		Vars: vars,
		Err:  fmt.Errorf("duplicate nutrient column %s", name),
	}
}

// MissingNutrientsError is returned when configured nutrient columns are
// absent from the reference table.
func MissingNutrientsError(source string, names []string) error {
	msg := `Reference table does not have expected nutrient columns

<em>File:</em> %s
<em>Missing columns:</em> %s

<em>Possible causes:</em>
  - The reference file layout changed
  - Nutrient names in <em>layout.yaml</em> are outdated`

	vars := []any{source, strings.Join(names, ", ")}
	return &gn.Error{
		Code: errcode.SchemaError,
		Msg:  msg,
		Vars: vars,
		Err: fmt.Errorf(
			"missing nutrient columns in %s: %v", source, names,
		),
	}
}

// PositionalLayoutError is returned when the reference header does not
// fit the positional nutrient layout.
func PositionalLayoutError(source string, cols int) error {
	msg := `Reference table does not fit the positional nutrient layout

<em>File:</em> %s
<em>Columns found:</em> %d, nutrients are expected in columns %d to %d

<em>How to fix:</em>
  List nutrient column names under <em>nutrients</em> in layout.yaml`

	vars := []any{source, cols, PositionalStart + 1, PositionalEnd}
	return &gn.Error{
		Code: errcode.SchemaError,
		Msg:  msg,
		Vars: vars,
		Err: fmt.Errorf(
			"reference %s has %d columns, cannot slice nutrients %d:%d",
			source, cols, PositionalStart, PositionalEnd,
		),
	}
}

// NutrientKeyOverlapError is returned when a key column is taken for a
// nutrient column.
func NutrientKeyOverlapError(source, name string, field Field) error {
	msg := `Column <em>%s</em> of %s is used both as %s and as a nutrient`
	vars := []any{name, source, field}
	return &gn.Error{
		Code: errcode.SchemaError,
		Msg:  msg,
		Vars: vars,
		Err: fmt.Errorf(
			"column %s in %s is %s and nutrient", name, source, field,
		),
	}
}
