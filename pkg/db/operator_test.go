package db_test

import (
	"testing"

	"github.com/gnames/gnnutri/internal/iodb"
	"github.com/gnames/gnnutri/pkg/db"
	"github.com/stretchr/testify/assert"
)

// TestOperatorContract checks that iodb implements db.Operator.
func TestOperatorContract(t *testing.T) {
	var op db.Operator = iodb.NewPgxOperator()
	assert.Nil(t, op.Pool())
	assert.NoError(t, op.Close())
}
