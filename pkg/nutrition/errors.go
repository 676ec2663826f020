package nutrition

import (
	"fmt"
	"strings"

	"github.com/gnames/gn"
	"github.com/gnames/gnnutri/pkg/errcode"
	"github.com/gnames/gnnutri/pkg/foodkey"
)

// JoinCardinalityError is returned when the reference table has more
// than one row for the same food key.
func JoinCardinalityError(
	source string,
	key foodkey.Key,
	firstLine, secondLine int,
) error {
	msg := `Reference table has duplicate food key

<em>File:</em> %s
<em>Code:</em> %s
<em>Group:</em> %s
<em>Rows:</em> %d and %d

<em>How to fix:</em>
  Every (code, group) pair must appear in the reference table only once`

	vars := []any{source, key.Code, key.Group, firstLine, secondLine}

	return &gn.Error{
		Code: errcode.JoinCardinalityError,
		Msg:  msg,
		Vars: vars,
		Err: fmt.Errorf(
			"duplicate reference key %s in %s (rows %d, %d)",
			key, source, firstLine, secondLine,
		),
	}
}

// UnknownNutrientError is returned when a nutrient selection contains
// names that are neither nutrient columns nor their display labels.
func UnknownNutrientError(names []string) error {
	msg := `Unknown nutrients: <em>%s</em>

<em>How to fix:</em>
  Run <em>gnnutri nutrients</em> to see available names`

	vars := []any{strings.Join(names, ", ")}
	return &gn.Error{
		Code: errcode.UnknownNutrientError,
		Msg:  msg,
		Vars: vars,
		Err:  fmt.Errorf("unknown nutrients %v", names),
	}
}

// InvalidRationsError is returned when the ration multiplier is less
// than 1.
func InvalidRationsError(rations int) error {
	msg := "Number of rations must be 1 or more, got <em>%d</em>"
	vars := []any{rations}
	return &gn.Error{
		Code: errcode.InvalidRationsError,
		Msg:  msg,
		Vars: vars,
		Err:  fmt.Errorf("invalid rations %d", rations),
	}
}

// UnknownRecipeError is returned when a recipe is not found.
func UnknownRecipeError(recipe string) error {
	msg := "Recipe <em>%s</em> is not found"
	vars := []any{recipe}
	return &gn.Error{
		Code: errcode.UnknownRecipeError,
		Msg:  msg,
		Vars: vars,
		Err:  fmt.Errorf("unknown recipe %q", recipe),
	}
}
