package ioschema

import (
	"fmt"

	"github.com/gnames/gn"
	"github.com/gnames/gnnutri/pkg/errcode"
)

// NotConnectedError is returned when schema operation is attempted
// without database connection.
func NotConnectedError() error {
	return &gn.Error{
		Code: errcode.DBNotConnectedError,
		Msg:  "Schema operation attempted without database connection",
		Err:  fmt.Errorf("not connected to database"),
	}
}

// GORMConnectionError is returned when GORM cannot use the connection
// pool.
func GORMConnectionError(err error) error {
	msg := `Cannot open database with GORM

<em>How to fix:</em>
  Check database section of config.yaml`

	return &gn.Error{
		Code: errcode.SchemaGORMConnectionError,
		Msg:  msg,
		Err:  fmt.Errorf("failed to connect with GORM: %w", err),
	}
}

// CreateSchemaError is returned when tables of stored runs cannot be
// created.
func CreateSchemaError(err error) error {
	msg := `Cannot create tables for stored runs

<em>How to fix:</em>
  1. Check that database user has CREATE permissions
  2. Check database logs for details`

	return &gn.Error{
		Code: errcode.SchemaCreateError,
		Msg:  msg,
		Err:  fmt.Errorf("failed to create schema: %w", err),
	}
}

// MigrateSchemaError is returned when tables of stored runs cannot be
// updated.
func MigrateSchemaError(err error) error {
	msg := `Cannot update tables for stored runs

<em>How to fix:</em>
  1. Check that database user has ALTER permissions
  2. Recreate tables with <em>gnnutri create --force</em>
     (stored runs will be lost)`

	return &gn.Error{
		Code: errcode.SchemaMigrateError,
		Msg:  msg,
		Err:  fmt.Errorf("failed to migrate schema: %w", err),
	}
}
