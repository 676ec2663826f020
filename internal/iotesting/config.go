// Package iotesting provides shared utilities for tests that need
// PostgreSQL.
package iotesting

import (
	"context"
	"os"
	"strconv"
	"testing"
	"time"

	"github.com/gnames/gnnutri/internal/iodb"
	"github.com/gnames/gnnutri/pkg/config"
	"github.com/gnames/gnnutri/pkg/db"
)

const (
	// TestDatabaseName is the database name used by all database tests.
	// Tests never run against a production database.
	TestDatabaseName = "gnnutri_test"
)

// GetTestConfig returns a configuration for database tests. Connection
// settings can be changed with GNNUTRI_DATABASE_* environment variables,
// the database name is always TestDatabaseName.
func GetTestConfig(t *testing.T) *config.Config {
	t.Helper()
	cfg := config.New()
	cfg.Update([]config.Option{config.OptHomeDir(t.TempDir())})

	var opts []config.Option
	if s := os.Getenv("GNNUTRI_DATABASE_HOST"); s != "" {
		opts = append(opts, config.OptDatabaseHost(s))
	}
	if s := os.Getenv("GNNUTRI_DATABASE_PORT"); s != "" {
		if i, err := strconv.Atoi(s); err == nil {
			opts = append(opts, config.OptDatabasePort(i))
		}
	}
	if s := os.Getenv("GNNUTRI_DATABASE_USER"); s != "" {
		opts = append(opts, config.OptDatabaseUser(s))
	}
	if s := os.Getenv("GNNUTRI_DATABASE_PASSWORD"); s != "" {
		opts = append(opts, config.OptDatabasePassword(s))
	}
	opts = append(opts, config.OptDatabaseDatabase(TestDatabaseName))
	cfg.Update(opts)
	return cfg
}

// Connect returns a connected operator for the test database. The test
// is skipped in short mode or when the database cannot be reached.
//
// Usage:
//
//	func TestSomething(t *testing.T) {
//	    cfg, op := iotesting.Connect(t)
//	    // ... use op.Pool()
//	}
func Connect(t *testing.T) (*config.Config, db.Operator) {
	t.Helper()
	if testing.Short() {
		t.Skip("skipping database test in short mode")
	}
	cfg := GetTestConfig(t)

	ctx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
	defer cancel()

	op := iodb.NewPgxOperator()
	if err := op.Connect(ctx, &cfg.Database); err != nil {
		t.Skipf("skipping database test, %s is not reachable",
			TestDatabaseName)
	}
	t.Cleanup(func() { _ = op.Close() })
	return cfg, op
}
