package iostore

import (
	"fmt"
	"runtime"

	"github.com/gnames/gn"
	"github.com/gnames/gnnutri/pkg/errcode"
)

// NotConnectedError is returned when Save is called without a database
// connection.
func NotConnectedError() error {
	return &gn.Error{
		Code: errcode.DBNotConnectedError,
		Msg:  "Cannot store a run without database connection",
		Err:  fmt.Errorf("not connected to database"),
	}
}

// StoreRunError is returned when a run cannot be stored as a whole.
func StoreRunError(err error) error {
	msg := `Cannot store the run

<em>How to fix:</em>
  1. Make sure tables exist: <em>gnnutri create</em>
  2. Check database logs for details`

	pc, _, _, _ := runtime.Caller(1)
	fn := runtime.FuncForPC(pc)
	return &gn.Error{
		Code: errcode.StoreRunError,
		Msg:  msg,
		Err:  fmt.Errorf("from %s: %w", fn.Name(), err),
	}
}

// StoreRowsError is returned when rows of a table cannot be copied.
func StoreRowsError(table string, err error) error {
	msg := "Cannot save rows to <em>%s</em>"
	return &gn.Error{
		Code: errcode.StoreRowsError,
		Msg:  msg,
		Vars: []any{table},
		Err:  fmt.Errorf("copy to %s: %w", table, err),
	}
}
