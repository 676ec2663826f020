package ioexport

import (
	"fmt"
	"runtime"

	"github.com/gnames/gn"
	"github.com/gnames/gnnutri/pkg/errcode"
)

// ExportError is returned when a workbook cannot be built or saved.
func ExportError(path string, err error) error {
	msg := `Cannot write workbook <em>%s</em>

<em>How to fix:</em>
  1. Check that the reports directory is writable
  2. Close the workbook if it is open in a spreadsheet program`

	vars := []any{path}
	pc, _, _, _ := runtime.Caller(1)
	fn := runtime.FuncForPC(pc)
	return &gn.Error{
		Code: errcode.ExportError,
		Msg:  msg,
		Vars: vars,
		Err: fmt.Errorf("from %s: cannot export %s: %w",
			fn.Name(), path, err),
	}
}
