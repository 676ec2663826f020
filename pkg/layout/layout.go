// Package layout describes where the engine finds its data in the recipe
// and reference tables.
//
// Every logical field (food code, food group, portion weight...) has an
// ordered list of accepted column names. Resolution is an exact match
// against cleaned header names, and the first alias present in the header
// wins. Nutrient columns are described by name; when no names are given,
// the historical positional layout of the reference table is used
// (columns 4 to 27).
package layout

import (
	"slices"

	"github.com/gnames/gnnutri/pkg/table"
)

// Field is a logical column of a recipe or reference table.
type Field string

const (
	Code       Field = "code"
	Group      Field = "group"
	Weight     Field = "weight"
	Recipe     Field = "recipe"
	Ingredient Field = "ingredient"
	UT         Field = "ut"
	RecipeType Field = "recipe_type"
	AgeGroup   Field = "age_group"
)

const (
	// RecipeTable is the name of the recipe table used in messages.
	RecipeTable = "recipes"
	// ReferenceTable is the name of the reference table used in messages.
	ReferenceTable = "reference"
)

// PositionalStart and PositionalEnd delimit nutrient columns of the
// reference table when no nutrient names are configured. The range is
// 0-based and half-open.
const (
	PositionalStart = 3
	PositionalEnd   = 27
)

// RecipeFields lists recipe table fields in resolution order.
var RecipeFields = []Field{
	Code, Group, Weight, Recipe, Ingredient, UT, RecipeType, AgeGroup,
}

// RequiredRecipeFields cannot be missing from the recipe table.
var RequiredRecipeFields = []Field{Code, Group, Weight, Recipe}

// RequiredReferenceFields cannot be missing from the reference table.
var RequiredReferenceFields = []Field{Code, Group}

// Layout is the column resolution table of both inputs and the
// nutrient schema descriptor.
type Layout struct {
	// RecipeColumns maps recipe fields to accepted column names, in
	// priority order.
	RecipeColumns map[Field][]string `yaml:"recipe_columns"`

	// ReferenceColumns maps reference fields to accepted column names,
	// in priority order.
	ReferenceColumns map[Field][]string `yaml:"reference_columns"`

	// Nutrients is the ordered list of nutrient columns expected in the
	// reference table. Empty list enables positional detection.
	Nutrients []string `yaml:"nutrients"`
}

// Default returns the layout of MIDIS recipe sheets and of the cleaned
// Peruvian food-composition tables (TPCA 2017).
func Default() Layout {
	return Layout{
		RecipeColumns: map[Field][]string{
			Code: {
				"codigo_del_alimento_tpca_2017",
				"codigo_del_alimento",
				"codigo_tpca",
				"codigo",
			},
			Group: {
				"grupo_alimento_tpca2017",
				"grupo_alimento",
				"grupo_tpca",
				"grupo",
			},
			Weight: {
				"peso_neto__racion_g",
				"peso_neto_racion_g",
				"peso_neto_racion",
				"racion_g",
				"peso_racion",
				"peso_g",
			},
			Recipe:     {"nombre_de_receta", "nombre_receta", "receta"},
			Ingredient: {"ingrediente_registrado", "ingrediente"},
			UT:         {"ut"},
			RecipeType: {"tipo_receta", "tipo_de_receta"},
			AgeGroup: {
				"grupo_etareo_recet",
				"grupo_etareo",
				"grupo_edad",
			},
		},
		ReferenceColumns: map[Field][]string{
			Code:  {"codigo"},
			Group: {"grupo"},
		},
	}
}

// Merge returns a copy of the layout where fields that are empty in l
// are taken from the defaults.
func (l Layout) Merge(defaults Layout) Layout {
	res := Layout{
		RecipeColumns:    mergeColumns(l.RecipeColumns, defaults.RecipeColumns),
		ReferenceColumns: mergeColumns(l.ReferenceColumns, defaults.ReferenceColumns),
		Nutrients:        slices.Clone(l.Nutrients),
	}
	if len(res.Nutrients) == 0 {
		res.Nutrients = slices.Clone(defaults.Nutrients)
	}
	return res
}

// Normalize cleans every alias and nutrient name with table.CleanHeader,
// so they can be compared with cleaned headers.
func (l Layout) Normalize() Layout {
	res := Layout{
		RecipeColumns:    make(map[Field][]string, len(l.RecipeColumns)),
		ReferenceColumns: make(map[Field][]string, len(l.ReferenceColumns)),
	}
	for k, v := range l.RecipeColumns {
		res.RecipeColumns[k] = cleanNames(v)
	}
	for k, v := range l.ReferenceColumns {
		res.ReferenceColumns[k] = cleanNames(v)
	}
	res.Nutrients = cleanNames(l.Nutrients)
	return res
}

// Validate checks that every required field has at least one alias and
// that nutrient names are unique.
func (l Layout) Validate() error {
	for _, f := range RequiredRecipeFields {
		if len(l.RecipeColumns[f]) == 0 {
			return NoAliasesError(f, RecipeTable)
		}
	}
	for _, f := range RequiredReferenceFields {
		if len(l.ReferenceColumns[f]) == 0 {
			return NoAliasesError(f, ReferenceTable)
		}
	}
	seen := make(map[string]struct{}, len(l.Nutrients))
	for _, v := range l.Nutrients {
		if _, ok := seen[v]; ok {
			return DuplicateNutrientError(v)
		}
		seen[v] = struct{}{}
	}
	return nil
}

func mergeColumns(cols, defaults map[Field][]string) map[Field][]string {
	res := make(map[Field][]string, len(defaults))
	for k, v := range defaults {
		res[k] = slices.Clone(v)
	}
	for k, v := range cols {
		if len(v) > 0 {
			res[k] = slices.Clone(v)
		}
	}
	return res
}

func cleanNames(names []string) []string {
	var res []string
	for _, v := range names {
		v = table.CleanHeader(v)
		if v != "" {
			res = append(res, v)
		}
	}
	return res
}

// Loader provides the layout used by a run, usually read from
// layout.yaml.
type Loader interface {
	// Load returns a normalized and validated layout.
	Load() (Layout, error)
}
