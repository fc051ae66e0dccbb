/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

package formatter

import (
	"math"
	"strings"

	"bennypowers.dev/tokencss/token"
)

func (f *Formatter) gradient(v *token.GradientValue) (string, error) {
	if v.ReferencedTokenID != "" {
		return f.Reference(v.ReferencedTokenID)
	}

	layers := make([]string, 0, len(v.Layers))
	for _, layer := range v.Layers {
		css, err := f.gradientLayer(layer)
		if err != nil {
			return "", err
		}
		layers = append(layers, css)
	}
	return strings.Join(layers, ", "), nil
}

func (f *Formatter) gradientLayer(layer token.GradientLayer) (string, error) {
	if layer.ReferencedTokenID != "" {
		return f.Reference(layer.ReferencedTokenID)
	}

	stops := make([]string, 0, len(layer.Stops))
	for _, stop := range layer.Stops {
		color, err := f.color(stop.Color, SmartHex)
		if err != nil {
			return "", err
		}
		stops = append(stops, color+" "+FormatNumber(stop.Position*100)+"%")
	}
	stopList := strings.Join(stops, ", ")

	switch layer.Type {
	case token.GradientRadial:
		return "radial-gradient(circle, " + stopList + ")", nil
	case token.GradientAngular:
		return "conic-gradient(from " + FormatNumber(GradientAngle(layer.From, layer.To)) + "deg, " + stopList + ")", nil
	default:
		return "linear-gradient(" + FormatNumber(GradientAngle(layer.From, layer.To)) + "deg, " + stopList + ")", nil
	}
}

// GradientAngle converts a from/to vector in box coordinates (y down) to a
// CSS gradient angle in [0, 360), where 0deg points up.
func GradientAngle(from, to token.Point) float64 {
	deg := math.Atan2(to.Y-from.Y, to.X-from.X)*180/math.Pi + 90
	deg = math.Mod(deg, 360)
	if deg < 0 {
		deg += 360
	}
	return deg
}

func (f *Formatter) shadow(v *token.ShadowValue) (string, error) {
	if v.ReferencedTokenID != "" {
		return f.Reference(v.ReferencedTokenID)
	}

	layers := make([]string, 0, len(v.Layers))
	for _, layer := range v.Layers {
		if layer.ReferencedTokenID != "" {
			ref, err := f.Reference(layer.ReferencedTokenID)
			if err != nil {
				return "", err
			}
			layers = append(layers, ref)
			continue
		}

		color, err := f.color(layer.Color, Hex8)
		if err != nil {
			return "", err
		}

		var sb strings.Builder
		if layer.Type == token.ShadowInner {
			sb.WriteString("inset ")
		}
		for _, n := range []float64{layer.X, layer.Y, layer.Radius, layer.Spread} {
			sb.WriteString(FormatNumber(n))
			sb.WriteString("px ")
		}
		sb.WriteString(color)
		layers = append(layers, sb.String())
	}
	return strings.Join(layers, ", "), nil
}

func (f *Formatter) blur(v *token.BlurValue) (string, error) {
	if v.ReferencedTokenID != "" {
		return f.Reference(v.ReferencedTokenID)
	}
	radius, err := f.measure(v.Radius, blurUnit)
	if err != nil {
		return "", err
	}
	return "blur(" + radius + ")", nil
}

// blurUnit treats a missing unit as pixels.
func blurUnit(u token.Unit) string {
	if u == "" {
		return "px"
	}
	return DimensionUnit(u)
}
