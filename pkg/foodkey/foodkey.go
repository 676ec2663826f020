// Package foodkey provides the composite key that links recipe ingredients
// to the reference food-composition table.
//
// Recipe spreadsheets and the reference table are edited by different
// people and go through different tools, so the same food code shows up
// as "38", "38.0" or " 38 ", and groups differ in case. Both tables go
// through the same normalization before any comparison.
package foodkey

import (
	"fmt"
	"math"
	"regexp"
	"strconv"
	"strings"
)

// integral matches codes like "38", "0038", "38.", "38.0", "38.000".
var integral = regexp.MustCompile(`^([0-9]+)(\.0*)?$`)

// maxExact is the largest magnitude at which every integer is exactly
// representable as float64.
const maxExact = 1 << 53

// nullMarkers are the textual forms of missing cells produced by
// spreadsheet and dataframe exports.
var nullMarkers = map[string]struct{}{
	"NAN":  {},
	"NULL": {},
	"NONE": {},
	"<NA>": {},
}

// Key is a normalized (code, group) pair. Key values are comparable and
// their equality is the join predicate.
type Key struct {
	Code  string
	Group string
}

// New creates a Key from raw code and group cells.
func New(code, group string) Key {
	return Key{Code: NormalizeCode(code), Group: NormalizeGroup(group)}
}

// String returns "code|group" representation of the key.
func (k Key) String() string {
	return fmt.Sprintf("%s|%s", k.Code, k.Group)
}

// NormalizeCode trims and upper-cases a food code. Codes that parse as
// floats with an integral value become plain integer strings
// ("38.0" -> "38", "-38.0" -> "-38", "3.8E1" -> "38"). Other codes,
// including non-integral numbers, keep their trimmed upper-case form.
// Missing values become an empty string. The function is idempotent.
func NormalizeCode(raw string) string {
	s := clean(raw)
	if m := integral.FindStringSubmatch(s); m != nil {
		digits := strings.TrimLeft(m[1], "0")
		if digits == "" {
			return "0"
		}
		return digits
	}
	if i, ok := integralFloat(s); ok {
		return strconv.FormatInt(i, 10)
	}
	return s
}

// integralFloat parses signed and exponent forms. Hex floats, digit
// separators and values too large to be exact are not numbers here.
func integralFloat(s string) (int64, bool) {
	if s == "" || strings.ContainsAny(s, "XP_") {
		return 0, false
	}
	v, err := strconv.ParseFloat(s, 64)
	if err != nil || math.IsInf(v, 0) || math.IsNaN(v) {
		return 0, false
	}
	if v != math.Trunc(v) || math.Abs(v) >= maxExact {
		return 0, false
	}
	return int64(v), true
}

// NormalizeGroup trims and upper-cases a food group label. Missing values
// become an empty string. The function is idempotent.
func NormalizeGroup(raw string) string {
	return clean(raw)
}

func clean(raw string) string {
	s := strings.ToUpper(strings.TrimSpace(raw))
	if _, ok := nullMarkers[s]; ok {
		return ""
	}
	return s
}
