package ioprint

import (
	"fmt"
	"runtime"

	"github.com/gnames/gn"
	"github.com/gnames/gnnutri/pkg/errcode"
)

// OutputFormatError is returned for an unknown output format.
func OutputFormatError(format string) error {
	msg := `Unknown output format <em>%s</em>

<em>How to fix:</em>
  Use one of: table, csv, json`

	vars := []any{format}
	return &gn.Error{
		Code: errcode.OutputFormatError,
		Msg:  msg,
		Vars: vars,
		Err:  fmt.Errorf("unknown output format %q", format),
	}
}

// WriteError is returned when output cannot be written.
func WriteError(err error) error {
	msg := "Cannot write output"
	pc, _, _, _ := runtime.Caller(1)
	fn := runtime.FuncForPC(pc)
	return &gn.Error{
		Code: errcode.OutputFormatError,
		Msg:  msg,
		Err:  fmt.Errorf("from %s: %w", fn.Name(), err),
	}
}
