// Package schema provides database models of stored runs. Tables are
// created with GORM AutoMigrate, rows are inserted with CopyFrom using
// column names from the db tags.
package schema

import (
	"time"

	"github.com/google/uuid"
)

// Run is one execution of the join-and-scale pipeline.
type Run struct {
	// ID is a random identifier of the run.
	ID uuid.UUID `db:"id" gorm:"type:uuid;primaryKey"`

	// CreatedAt is the time when the run was stored.
	CreatedAt time.Time `db:"created_at" gorm:"not null"`

	// RecipesFile and ReferenceFile are input sources.
	RecipesFile   string `db:"recipes_file" gorm:"type:text;not null"`
	ReferenceFile string `db:"reference_file" gorm:"type:text;not null"`

	RowsTotal       int `db:"rows_total" gorm:"not null"`
	RowsMatched     int `db:"rows_matched" gorm:"not null"`
	RowsUnmatched   int `db:"rows_unmatched" gorm:"not null"`
	NutrientsNumber int `db:"nutrients_number" gorm:"not null"`

	// Rations used for recipe totals.
	Rations int `db:"rations" gorm:"not null;default:1"`
}

// RecipeTotal is the total of one nutrient of one recipe.
type RecipeTotal struct {
	RunID uuid.UUID `db:"run_id" gorm:"type:uuid;primaryKey"`

	// RecipeID is UUIDv5 of the recipe name, it is the same for the same
	// recipe in different runs.
	RecipeID uuid.UUID `db:"recipe_id" gorm:"type:uuid;primaryKey"`

	Nutrient   string  `db:"nutrient" gorm:"type:varchar(255);primaryKey"`
	RecipeName string  `db:"recipe_name" gorm:"type:text;not null;index"`
	Value      float64 `db:"value" gorm:"not null"`

	// Incomplete is true if some ingredients of the recipe had no
	// reference data or weight.
	Incomplete bool `db:"incomplete" gorm:"not null"`
}

// IngredientResult is one row of the recipe table after the join.
type IngredientResult struct {
	RunID     uuid.UUID `db:"run_id" gorm:"type:uuid;primaryKey"`
	RowNumber int       `db:"row_number" gorm:"primaryKey;autoIncrement:false"`

	RecipeName string `db:"recipe_name" gorm:"type:text;not null"`
	Ingredient string `db:"ingredient" gorm:"type:text"`

	// FoodKeyID is UUIDv5 of the normalized "code|group" key.
	FoodKeyID uuid.UUID `db:"food_key_id" gorm:"type:uuid;not null;index"`
	Code      string    `db:"code" gorm:"type:varchar(50)"`
	GroupName string    `db:"group_name" gorm:"type:varchar(255)"`

	// Weight is 0 when WeightValid is false.
	Weight      float64 `db:"weight" gorm:"not null"`
	WeightValid bool    `db:"weight_valid" gorm:"not null"`
	Matched     bool    `db:"matched" gorm:"not null"`
}

// IngredientAmount is a nutrient amount of one ingredient row for its
// portion weight, before rations. Missing amounts have no rows.
type IngredientAmount struct {
	RunID     uuid.UUID `db:"run_id" gorm:"type:uuid;primaryKey"`
	RowNumber int       `db:"row_number" gorm:"primaryKey;autoIncrement:false"`
	Nutrient  string    `db:"nutrient" gorm:"type:varchar(255);primaryKey"`
	Value     float64   `db:"value" gorm:"not null"`
}

// UnmatchedKey is a food key of a run that has no reference data.
type UnmatchedKey struct {
	RunID     uuid.UUID `db:"run_id" gorm:"type:uuid;primaryKey"`
	FoodKeyID uuid.UUID `db:"food_key_id" gorm:"type:uuid;primaryKey"`
	Code      string    `db:"code" gorm:"type:varchar(50)"`
	GroupName string    `db:"group_name" gorm:"type:varchar(255)"`
}

func (Run) TableName() string              { return "runs" }
func (RecipeTotal) TableName() string      { return "recipe_totals" }
func (IngredientResult) TableName() string { return "ingredient_results" }
func (IngredientAmount) TableName() string { return "ingredient_amounts" }
func (UnmatchedKey) TableName() string     { return "unmatched_keys" }
