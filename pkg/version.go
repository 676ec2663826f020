// Package gnnutri computes nutritional totals of recipes from a recipe
// spreadsheet and a reference food-composition table.
package gnnutri

var (
	// Version of the app, set by build flags.
	Version = "v0.1.0"
	// Build timestamp, set by build flags.
	Build = "n/a"
)
