package nutrition

import (
	"math"
	"strconv"
	"strings"
)

// Amount is a nutrient quantity that may be missing.
type Amount struct {
	Value float64
	Valid bool
}

// Valid creates a valid Amount.
func Valid(v float64) Amount {
	return Amount{Value: v, Valid: true}
}

// Or0 returns the value, or 0 for a missing amount.
func (a Amount) Or0() float64 {
	if !a.Valid {
		return 0
	}
	return a.Value
}

// ParseAmount converts a cell to an Amount. Empty, non-numeric and
// non-finite cells give an invalid Amount.
func ParseAmount(s string) Amount {
	v, ok := parseFloat(s)
	if !ok {
		return Amount{}
	}
	return Valid(v)
}

// ParseWeight converts a portion weight cell to grams. Missing,
// unparseable, non-finite and negative weights become 0 and are reported
// as not valid.
func ParseWeight(s string) (float64, bool) {
	v, ok := parseFloat(s)
	if !ok || v < 0 {
		return 0, false
	}
	return v, true
}

// Round1 rounds a value to one decimal place, halves to even. It is meant
// for presentation only.
func Round1(v float64) float64 {
	return math.RoundToEven(v*10) / 10
}

func parseFloat(s string) (float64, bool) {
	s = strings.TrimSpace(s)
	if s == "" {
		return 0, false
	}
	v, err := strconv.ParseFloat(s, 64)
	if err != nil || math.IsNaN(v) || math.IsInf(v, 0) {
		return 0, false
	}
	return v, true
}
