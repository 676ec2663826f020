package errcode

import (
	"github.com/gnames/gn"
)

const (
	UnknownError gn.ErrorCode = iota

	// File System errors
	CreateDirError
	CopyFileError
	ReadFileError

	// Logging errors
	CreateLogFileError

	// Input errors
	InputNotSetError
	MissingSourceFileError
	UnsupportedFormatError
	EmptyInputError
	LayoutConfigError

	// Engine errors
	SchemaError
	UnknownNutrientError
	JoinCardinalityError
	InvalidRationsError
	UnknownRecipeError

	// Output errors
	ExportError
	OutputFormatError

	// Database errors
	DBConnectionError
	DBTableCheckError
	DBNotConnectedError
	DBTableExistsCheckError
	DBQueryTablesError
	DBScanTableError
	DBDropTableError
	DBEmptyDatabaseError

	// Schema errors
	SchemaGORMConnectionError
	SchemaCreateError
	SchemaMigrateError

	// Store errors
	StoreRunError
	StoreRowsError
)
