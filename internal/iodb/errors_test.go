package iodb_test

import (
	"errors"
	"testing"

	"github.com/gnames/gn"
	"github.com/gnames/gnnutri/internal/iodb"
	"github.com/gnames/gnnutri/pkg/errcode"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestErrors(t *testing.T) {
	cause := errors.New("boom")
	tests := []struct {
		msg  string
		err  error
		code gn.ErrorCode
		vars int
	}{
		{"connection",
			iodb.ConnectionError("localhost", 5432, "gnnutri", "postgres", cause),
			errcode.DBConnectionError, 8},
		{"not connected", iodb.NotConnectedError(),
			errcode.DBNotConnectedError, 0},
		{"table check", iodb.TableCheckError(cause),
			errcode.DBTableCheckError, 0},
		{"exists", iodb.TableExistsCheckError("runs", cause),
			errcode.DBTableExistsCheckError, 1},
		{"query", iodb.QueryTablesError(cause),
			errcode.DBQueryTablesError, 0},
		{"scan", iodb.ScanTableError(cause),
			errcode.DBScanTableError, 0},
		{"drop", iodb.DropTableError("runs", cause),
			errcode.DBDropTableError, 1},
	}

	for _, v := range tests {
		t.Run(v.msg, func(t *testing.T) {
			var gnErr *gn.Error
			require.True(t, errors.As(v.err, &gnErr))
			assert.Equal(t, v.code, gnErr.Code)
			assert.Len(t, gnErr.Vars, v.vars)
			assert.NotEmpty(t, gnErr.Msg)
		})
	}
}
