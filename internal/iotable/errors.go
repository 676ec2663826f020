package iotable

import (
	"fmt"
	"runtime"

	"github.com/gnames/gn"
	"github.com/gnames/gnnutri/pkg/errcode"
)

// MissingSourceFileError is returned when an input file does not exist.
func MissingSourceFileError(kind, path string) error {
	msg := `Cannot find %s table

<em>Expected path:</em> %s

<em>How to fix:</em>
  1. Check the path given with a flag or in config.yaml
  2. Use an absolute path if the file is outside the current directory`

	vars := []any{kind, path}
	return &gn.Error{
		Code: errcode.MissingSourceFileError,
		Msg:  msg,
		Vars: vars,
		Err:  fmt.Errorf("%s file %s does not exist", kind, path),
	}
}

// InputNotSetError is returned when a path to an input table is not
// given.
func InputNotSetError(kind, flag, key string) error {
	msg := `Path to %s table is not set

<em>How to fix:</em>
  Use <em>%s</em> flag, or set <em>%s</em> in config.yaml`

	vars := []any{kind, flag, key}
	return &gn.Error{
		Code: errcode.InputNotSetError,
		Msg:  msg,
		Vars: vars,
		Err:  fmt.Errorf("%s table path is empty", kind),
	}
}

// EmptyInputError is returned when a table has no data rows.
func EmptyInputError(kind, source string) error {
	msg := "The %s table <em>%s</em> has no data rows"
	vars := []any{kind, source}
	return &gn.Error{
		Code: errcode.EmptyInputError,
		Msg:  msg,
		Vars: vars,
		Err:  fmt.Errorf("%s table %s is empty", kind, source),
	}
}

// UnsupportedFormatError is returned for files with unknown extension.
func UnsupportedFormatError(path, ext string) error {
	msg := `Unsupported file format <em>%s</em> of %s

<em>Supported formats:</em> .xlsx, .csv, .tsv, .txt, .sqlite, .sqlite3, .db`

	vars := []any{ext, path}
	return &gn.Error{
		Code: errcode.UnsupportedFormatError,
		Msg:  msg,
		Vars: vars,
		Err:  fmt.Errorf("unsupported format %q of %s", ext, path),
	}
}

// ReadFileError is returned when a file exists but cannot be read or
// parsed.
func ReadFileError(path string, err error) error {
	msg := "Cannot read <em>%s</em>"
	vars := []any{path}
	pc, _, _, _ := runtime.Caller(1)
	fn := runtime.FuncForPC(pc)
	return &gn.Error{
		Code: errcode.ReadFileError,
		Msg:  msg,
		Vars: vars,
		Err:  fmt.Errorf("from %s: cannot read %s: %w", fn.Name(), path, err),
	}
}
