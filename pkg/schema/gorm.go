package schema

import (
	"reflect"

	"gorm.io/gorm"
)

// AllModels returns all schema models for GORM AutoMigrate.
func AllModels() []any {
	return []any{
		&Run{},
		&RecipeTotal{},
		&IngredientResult{},
		&IngredientAmount{},
		&UnmatchedKey{},
	}
}

// TableNames returns table names of all models.
func TableNames() []string {
	return []string{
		Run{}.TableName(),
		RecipeTotal{}.TableName(),
		IngredientResult{}.TableName(),
		IngredientAmount{}.TableName(),
		UnmatchedKey{}.TableName(),
	}
}

// Migrate runs GORM AutoMigrate to create or update schema.
func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(AllModels()...)
}

// Columns returns column names of a model from its db tags, in field
// order. Values passed to CopyFrom must follow the same order.
func Columns(model any) []string {
	t := reflect.TypeOf(model)
	if t.Kind() == reflect.Ptr {
		t = t.Elem()
	}

	var res []string
	for i := 0; i < t.NumField(); i++ {
		if tag := t.Field(i).Tag.Get("db"); tag != "" {
			res = append(res, tag)
		}
	}
	return res
}
