/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

package formatter

import (
	"math"
	"strconv"

	"bennypowers.dev/tokencss/token"
)

// Decimals is the number of fractional digits kept in emitted numbers.
const Decimals = 3

// UnitFunc maps a token unit to a CSS unit suffix.
type UnitFunc func(token.Unit) string

// FormatNumber rounds v to Decimals places and drops trailing zeros.
func FormatNumber(v float64) string {
	scale := math.Pow(10, Decimals)
	rounded := math.Round(v*scale) / scale
	if rounded == 0 {
		rounded = 0 // drop negative zero
	}
	return strconv.FormatFloat(rounded, 'f', -1, 64)
}

// DimensionUnit maps every unit the token source reports.
func DimensionUnit(u token.Unit) string {
	switch u {
	case token.UnitPixels:
		return "px"
	case token.UnitRem:
		return "rem"
	case token.UnitEm:
		return "em"
	case token.UnitPercent:
		return "%"
	case token.UnitPoints:
		return "pt"
	case token.UnitMilliseconds:
		return "ms"
	case token.UnitSeconds:
		return "s"
	default:
		return ""
	}
}

// TypographyUnit maps pixels and percentages; every other unit is unitless.
func TypographyUnit(u token.Unit) string {
	switch u {
	case token.UnitPixels:
		return "px"
	case token.UnitPercent:
		return "%"
	default:
		return ""
	}
}

func (f *Formatter) measure(m token.Measure, unit UnitFunc) (string, error) {
	if m.ReferencedTokenID != "" {
		return f.Reference(m.ReferencedTokenID)
	}
	return FormatNumber(m.Measure) + unit(m.Unit), nil
}
