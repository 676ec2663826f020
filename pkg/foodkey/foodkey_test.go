package foodkey_test

import (
	"testing"

	"github.com/gnames/gnnutri/pkg/foodkey"
	"github.com/stretchr/testify/assert"
)

func TestNormalizeCode(t *testing.T) {
	tests := []struct {
		msg, input, res string
	}{
		{"integer", "38", "38"},
		{"float with zero", "38.0", "38"},
		{"float with zeros", "38.00", "38"},
		{"trailing dot", "38.", "38"},
		{"leading zeros", "0038", "38"},
		{"zero", "0.0", "0"},
		{"spaces", "  38.0 ", "38"},
		{"non integral", "38.5", "38.5"},
		{"letters", " a12b ", "A12B"},
		{"empty", "", ""},
		{"blank", "   ", ""},
		{"nan", "nan", ""},
		{"null", "NULL", ""},
		{"pandas NA", "<NA>", ""},
		{"exponent", "1e3", "1000"},
		{"exponent with fraction", "3.8e1", "38"},
		{"zero exponent", "38.0E0", "38"},
		{"negative", "-38.0", "-38"},
		{"plus sign", "+38", "38"},
		{"negative zero", "-0.0", "0"},
		{"non integral exponent", "3.85e1", "3.85E1"},
		{"too large stays", "1e20", "1E20"},
		{"hex stays", "0x1p3", "0X1P3"},
		{"infinity stays", "inf", "INF"},
	}

	for _, v := range tests {
		assert.Equal(t, v.res, foodkey.NormalizeCode(v.input), v.msg)
	}
}

func TestNormalizeCodeIdempotent(t *testing.T) {
	inputs := []string{
		"38", "38.0", "0038", "38.5", " x-1 ", "", "nan", "000", "12.000",
		"1e3", "A.0", "7.", "-38.0", "+38", "3.8e1", "38.0E0", "-0.0",
		"3.85e1", "1e20",
	}
	for _, v := range inputs {
		once := foodkey.NormalizeCode(v)
		assert.Equal(t, once, foodkey.NormalizeCode(once), v)
	}
}

func TestNormalizeCodeEquivalence(t *testing.T) {
	assert.Equal(t, "38", foodkey.NormalizeCode("38.0"))
	assert.Equal(t, foodkey.NormalizeCode("38"), foodkey.NormalizeCode("38.0"))
	for _, v := range []string{"+38", "3.8e1", "38.0E0", " 038 "} {
		assert.Equal(t, "38", foodkey.NormalizeCode(v), v)
	}
}

func TestNormalizeGroup(t *testing.T) {
	tests := []struct {
		msg, input, res string
	}{
		{"lower case", "cereales", "CEREALES"},
		{"spaces", "  Cereales y derivados ", "CEREALES Y DERIVADOS"},
		{"numeric stays", "12.0", "12.0"},
		{"empty", "", ""},
		{"nan", "NaN", ""},
	}

	for _, v := range tests {
		assert.Equal(t, v.res, foodkey.NormalizeGroup(v.input), v.msg)
		assert.Equal(t, v.res, foodkey.NormalizeGroup(v.res), v.msg)
	}
}

func TestNew(t *testing.T) {
	k1 := foodkey.New("12", "cereales")
	k2 := foodkey.New(" 12.0", "CEREALES ")
	assert.Equal(t, k1, k2)
	assert.Equal(t, "12|CEREALES", k1.String())

	k3 := foodkey.New("12", "LACTEOS")
	assert.NotEqual(t, k1, k3)
}
