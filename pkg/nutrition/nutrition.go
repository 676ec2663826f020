// Package nutrition is the join-and-scale engine. It merges recipe rows
// with the reference food-composition table by food key, converts per-100g
// nutrient values to absolute values of every ingredient and aggregates
// them per recipe.
//
// The engine is pure: it keeps no state between calls and never touches
// the file system. Per-100g values never leave Join, every JoinedRow holds
// values already scaled to the ingredient weight.
package nutrition

import (
	"github.com/gnames/gnnutri/pkg/foodkey"
	"github.com/gnames/gnnutri/pkg/layout"
)

// IngredientRow is one (recipe, ingredient) row of the recipe table.
type IngredientRow struct {
	// Line is the line of the row in the source file (header is line 1).
	Line int

	Recipe     string
	Ingredient string
	UT         string
	RecipeType string
	AgeGroup   string

	// Code and Group are raw key cells as found in the file.
	Code  string
	Group string

	// Key is the normalized food key.
	Key foodkey.Key

	// Weight is the portion weight in grams, 0 when missing or invalid.
	Weight float64

	// WeightValid is false when the weight cell was missing, unparseable
	// or negative.
	WeightValid bool

	// Attrs are descriptive cells aligned with Result.Columns.
	Attrs []string
}

// Profile holds per-100g nutrient values of one reference food, aligned
// with nutrient names of a run.
type Profile []Amount

// JoinedRow is an IngredientRow with weight-absolute nutrient values.
// Unmatched rows have all amounts invalid.
type JoinedRow struct {
	IngredientRow
	Matched   bool
	Nutrients []Amount
}

// Result is the outcome of Join.
type Result struct {
	// RecipesSource and ReferenceSource are the origins of the inputs.
	RecipesSource   string
	ReferenceSource string

	// Columns are descriptive column names of the recipe table in source
	// order. Columns that have the same name as a nutrient are excluded.
	Columns []string

	// Roles are aligned with Columns and mark the columns used as code,
	// group and weight. Other columns have an empty role.
	Roles []layout.Field

	// Nutrients are nutrient column names in reference order.
	Nutrients []string

	// Rows keep every recipe row in source order.
	Rows []JoinedRow

	// Matched and Unmatched count recipe rows.
	Matched   int
	Unmatched int

	// UnmatchedKeys are distinct keys without a reference row, in the
	// order they were first seen.
	UnmatchedKeys []foodkey.Key
}

// RecipeSummary contains nutrient totals of one recipe.
type RecipeSummary struct {
	Recipe string

	// Totals are aligned with the selected nutrients and already
	// multiplied by Rations. They keep full precision.
	Totals []float64

	Rations int

	// Ingredients is the number of rows of the recipe.
	Ingredients int

	// UnmatchedIngredients counts rows without reference data.
	UnmatchedIngredients int

	// MissingWeights counts rows with missing or invalid weight.
	MissingWeights int

	// Incomplete is true if some rows contributed 0 because of missing
	// reference data or weight.
	Incomplete bool
}
