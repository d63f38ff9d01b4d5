/*
Package stdtypes provides converters for a standard set of type tags.

	int      →  int          (base 10)
	float    →  float64      (including exponent notation, "1e5")
	str      →  string
	bool     →  bool         (as accepted by strconv.ParseBool)
	decimal  →  decimal.Decimal (github.com/shopspring/decimal)

Arrays are stored as slices of the scalar type, e.g. "float[]" as []float64.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2021 Norbert Pillmayer <norbert@pillmayer.com>

*/
package stdtypes

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/npillmayer/edat/convert"
	"github.com/shopspring/decimal"
)

// Type tags of the standard converters.
const (
	Int     = "int"
	Float   = "float"
	Str     = "str"
	Bool    = "bool"
	Decimal = "decimal"
)

// Load registers the standard converters with suite. Converters already
// present for one of the standard tags are replaced.
func Load(suite *convert.Suite) *convert.Suite {
	convert.AddFunc(suite, Int, ParseInt)
	convert.AddFunc(suite, Float, ParseFloat)
	convert.AddFunc(suite, Str, ParseStr)
	convert.AddFunc(suite, Bool, ParseBool)
	convert.AddFunc(suite, Decimal, ParseDecimal)
	return suite
}

// NewSuite creates a converter suite with all standard converters loaded.
func NewSuite() *convert.Suite {
	return Load(convert.NewSuite())
}

// ParseInt converts decimal integer text, with optional sign.
func ParseInt(s string) (int, error) {
	n, err := strconv.Atoi(strings.TrimSpace(s))
	if err != nil {
		return 0, fmt.Errorf("not an int: %q", s)
	}
	return n, nil
}

// ParseFloat converts floating point text.
func ParseFloat(s string) (float64, error) {
	f, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
	if err != nil {
		return 0, fmt.Errorf("not a float: %q", s)
	}
	return f, nil
}

// ParseStr returns a copy of s, detached from the input buffer.
func ParseStr(s string) (string, error) {
	return strings.Clone(s), nil
}

// ParseBool converts "true", "false", "1", "0" etc.
func ParseBool(s string) (bool, error) {
	b, err := strconv.ParseBool(strings.TrimSpace(s))
	if err != nil {
		return false, fmt.Errorf("not a bool: %q", s)
	}
	return b, nil
}

// ParseDecimal converts text to an arbitrary precision decimal.
func ParseDecimal(s string) (decimal.Decimal, error) {
	d, err := decimal.NewFromString(strings.TrimSpace(s))
	if err != nil {
		return decimal.Zero, fmt.Errorf("not a decimal: %q", s)
	}
	return d, nil
}
