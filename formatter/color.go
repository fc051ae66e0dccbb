/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

package formatter

import (
	"fmt"
	"math"

	"github.com/lucasb-eyer/go-colorful"

	"bennypowers.dev/tokencss/token"
)

// ColorFormat selects how colors are written.
type ColorFormat int

const (
	// SmartHex picks the shortest of #rgb, #rgba, #rrggbb, #rrggbbaa that
	// represents the color exactly.
	SmartHex ColorFormat = iota

	// Hex8 always writes #rrggbbaa.
	Hex8
)

// HexColor renders an sRGB color with alpha as a hex literal.
func HexColor(rgb token.RGB, alpha float64, format ColorFormat) string {
	c := colorful.Color{
		R: float64(rgb.R) / 255,
		G: float64(rgb.G) / 255,
		B: float64(rgb.B) / 255,
	}
	hex := c.Hex()
	a := uint8(math.Round(min(max(alpha, 0), 1) * 255))

	if format == Hex8 {
		return fmt.Sprintf("%s%02x", hex, a)
	}

	if a == 255 {
		if short, ok := shorten(hex[1:]); ok {
			return "#" + short
		}
		return hex
	}

	full := fmt.Sprintf("%s%02x", hex[1:], a)
	if short, ok := shorten(full); ok {
		return "#" + short
	}
	return "#" + full
}

// shorten collapses "aabbcc" to "abc" when every channel repeats its digit.
func shorten(digits string) (string, bool) {
	short := make([]byte, 0, len(digits)/2)
	for i := 0; i+1 < len(digits); i += 2 {
		if digits[i] != digits[i+1] {
			return "", false
		}
		short = append(short, digits[i])
	}
	return string(short), true
}

func (f *Formatter) color(c token.ColorValue, format ColorFormat) (string, error) {
	if c.ReferencedTokenID != "" {
		return f.Reference(c.ReferencedTokenID)
	}
	return HexColor(c.Color, c.Alpha(), format), nil
}
