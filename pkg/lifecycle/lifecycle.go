// Package lifecycle defines interfaces of the main GNnutri operations.
// Implementations live in internal io* packages, commands use them
// through these interfaces.
package lifecycle

import (
	"context"

	"github.com/gnames/gnnutri/pkg/nutrition"
)

// Calculator loads recipe and reference tables and joins them.
type Calculator interface {
	// Calculate reads both input tables and returns joined rows with
	// scaled nutrient values.
	Calculate(ctx context.Context) (*nutrition.Result, error)
}

// Exporter writes workbooks with computed data.
type Exporter interface {
	// ExportResults writes the full joined dataset with a metadata sheet.
	ExportResults(res *nutrition.Result) (string, error)

	// ExportUnmatched writes distinct unmatched keys. It does nothing and
	// returns an empty path if all rows matched.
	ExportUnmatched(res *nutrition.Result) (string, error)

	// ExportSummary writes recipe totals together with the full dataset.
	ExportSummary(
		res *nutrition.Result,
		nutrients []string,
		sums []nutrition.RecipeSummary,
	) (string, error)
}

// Store persists computed runs to PostgreSQL.
type Store interface {
	// Save stores a run and returns its ID.
	Save(
		ctx context.Context,
		res *nutrition.Result,
		nutrients []string,
		sums []nutrition.RecipeSummary,
	) (string, error)
}

// SchemaManager defines the interface for database schema management.
// It uses GORM AutoMigrate to handle both initial schema creation and migrations.
// Schema management is idempotent - safe to run multiple times.
type SchemaManager interface {
	// Create creates tables of stored runs.
	Create(ctx context.Context) error

	// Migrate updates tables of stored runs to the latest version.
	Migrate(ctx context.Context) error
}
