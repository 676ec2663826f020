// Package ioschema implements SchemaManager with GORM AutoMigrate.
package ioschema

import (
	"context"
	"log/slog"

	"github.com/gnames/gnnutri/pkg/config"
	"github.com/gnames/gnnutri/pkg/db"
	"github.com/gnames/gnnutri/pkg/lifecycle"
	"github.com/gnames/gnnutri/pkg/schema"
	"github.com/jackc/pgx/v5/stdlib"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// manager implements the lifecycle.SchemaManager interface
// using GORM AutoMigrate.
type manager struct {
	cfg      *config.Config
	operator db.Operator
}

// New creates a new SchemaManager.
func New(cfg *config.Config, op db.Operator) lifecycle.SchemaManager {
	return &manager{cfg: cfg, operator: op}
}

// Create creates tables of stored runs.
func (m *manager) Create(ctx context.Context) error {
	gormDB, err := m.gorm(ctx)
	if err != nil {
		return err
	}

	if err = schema.Migrate(gormDB); err != nil {
		return CreateSchemaError(err)
	}
	slog.Info("Schema created", "tables", schema.TableNames())
	return nil
}

// Migrate updates tables of stored runs to the current models.
func (m *manager) Migrate(ctx context.Context) error {
	gormDB, err := m.gorm(ctx)
	if err != nil {
		return err
	}

	if err = schema.Migrate(gormDB); err != nil {
		return MigrateSchemaError(err)
	}
	slog.Info("Schema migrated", "tables", schema.TableNames())
	return nil
}

func (m *manager) gorm(ctx context.Context) (*gorm.DB, error) {
	if m.operator == nil || m.operator.Pool() == nil {
		return nil, NotConnectedError()
	}

	sqlDB := stdlib.OpenDBFromPool(m.operator.Pool())
	gormDB, err := gorm.Open(
		postgres.New(postgres.Config{Conn: sqlDB}),
		&gorm.Config{Logger: logger.Default.LogMode(logger.Silent)},
	)
	if err != nil {
		return nil, GORMConnectionError(err)
	}
	return gormDB.WithContext(ctx), nil
}
