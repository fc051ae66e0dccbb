/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

package formatter_test

import (
	"errors"
	"regexp"
	"strings"
	"testing"

	"github.com/mazznoer/csscolorparser"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"bennypowers.dev/tokencss/formatter"
	"bennypowers.dev/tokencss/naming"
	"bennypowers.dev/tokencss/token"
)

func groups() []*token.Group {
	return []*token.Group{
		{ID: "root", Name: "Tokens", IsRoot: true},
		{ID: "brand", Name: "Brand", ParentGroupID: "root"},
		{ID: "palette", Name: "Palette", ParentGroupID: "root"},
		{ID: "effects", Name: "Effects", ParentGroupID: "root"},
		{ID: "heading", Name: "Display XL", ParentGroupID: "root"},
	}
}

func newFormatter(tokens []*token.Token, opts formatter.Options) *formatter.Formatter {
	return formatter.New(naming.NewResolver(groups(), ""), token.NewIndex(tokens), opts)
}

func colorToken(id, name, group string, rgb token.RGB, alpha float64) *token.Token {
	return &token.Token{
		ID:            id,
		Name:          name,
		Kind:          token.KindColor,
		ParentGroupID: group,
		Value:         &token.ColorValue{Color: rgb, Opacity: token.Measure{Measure: alpha}},
	}
}

func TestHexColor(t *testing.T) {
	tests := []struct {
		name     string
		rgb      token.RGB
		alpha    float64
		format   formatter.ColorFormat
		expected string
	}{
		{"short opaque", token.RGB{R: 255, G: 102, B: 0}, 1, formatter.SmartHex, "#f60"},
		{"long opaque", token.RGB{R: 18, G: 52, B: 86}, 1, formatter.SmartHex, "#123456"},
		{"short translucent", token.RGB{R: 255, G: 255, B: 255}, 0, formatter.SmartHex, "#fff0"},
		{"long translucent", token.RGB{R: 255}, 0.5, formatter.SmartHex, "#ff000080"},
		{"hex8 opaque", token.RGB{}, 1, formatter.Hex8, "#000000ff"},
		{"hex8 shortenable", token.RGB{R: 255, G: 255, B: 255}, 1, formatter.Hex8, "#ffffffff"},
		{"alpha clamped", token.RGB{}, 3, formatter.SmartHex, "#000"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, formatter.HexColor(tt.rgb, tt.alpha, tt.format))
		})
	}
}

func TestHexColor_RoundTrip(t *testing.T) {
	samples := []struct {
		rgb   token.RGB
		alpha float64
	}{
		{token.RGB{R: 255, G: 102}, 1},
		{token.RGB{R: 17, G: 34, B: 51}, 1},
		{token.RGB{R: 1, G: 2, B: 3}, 0.5},
		{token.RGB{R: 200, G: 100, B: 50}, 0.333},
		{token.RGB{R: 255, G: 255, B: 255}, 0},
	}

	for _, format := range []formatter.ColorFormat{formatter.SmartHex, formatter.Hex8} {
		for _, s := range samples {
			hex := formatter.HexColor(s.rgb, s.alpha, format)
			parsed, err := csscolorparser.Parse(hex)
			require.NoError(t, err, hex)

			r, g, b, _ := parsed.RGBA255()
			assert.Equal(t, s.rgb, token.RGB{R: r, G: g, B: b}, hex)
			assert.InDelta(t, s.alpha, parsed.A, 0.002, hex)
		}
	}
}

func TestFormatNumber(t *testing.T) {
	tests := []struct {
		input    float64
		expected string
	}{
		{16, "16"},
		{1.5, "1.5"},
		{0.1 + 0.2, "0.3"},
		{1.69387755, "1.694"},
		{-0.0001, "0"},
		{-2.25, "-2.25"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.expected, formatter.FormatNumber(tt.input))
	}
}

func TestDimensionUnit(t *testing.T) {
	tests := map[token.Unit]string{
		token.UnitPixels:       "px",
		token.UnitRem:          "rem",
		token.UnitEm:           "em",
		token.UnitPercent:      "%",
		token.UnitPoints:       "pt",
		token.UnitMilliseconds: "ms",
		token.UnitSeconds:      "s",
		token.UnitRaw:          "",
		"":                     "",
	}
	for unit, expected := range tests {
		assert.Equal(t, expected, formatter.DimensionUnit(unit), string(unit))
	}

	assert.Equal(t, "px", formatter.TypographyUnit(token.UnitPixels))
	assert.Equal(t, "%", formatter.TypographyUnit(token.UnitPercent))
	assert.Equal(t, "", formatter.TypographyUnit(token.UnitRem))
}

func TestDeclaration_Reference(t *testing.T) {
	blue := colorToken("blue", "Blue-500", "palette", token.RGB{B: 255}, 1)
	primary := &token.Token{
		ID:            "primary",
		Name:          "Primary",
		Kind:          token.KindColor,
		ParentGroupID: "brand",
		Value:         &token.ColorValue{ReferencedTokenID: "blue"},
	}
	f := newFormatter([]*token.Token{blue, primary}, formatter.Options{})

	got, err := f.Declaration(primary, "")
	require.NoError(t, err)
	assert.Equal(t, "  --brand-primary: var(--palette-blue-500);", got)

	got, err = f.Color(blue, "")
	require.NoError(t, err)
	assert.Equal(t, "  --palette-blue-500: #00f;", got)
}

func TestDeclaration_UnresolvedReference(t *testing.T) {
	primary := &token.Token{
		ID:            "primary",
		Name:          "Primary",
		Kind:          token.KindColor,
		ParentGroupID: "brand",
		Value:         &token.ColorValue{ReferencedTokenID: "gone"},
	}
	f := newFormatter([]*token.Token{primary}, formatter.Options{})

	_, err := f.Declaration(primary, "")
	assert.True(t, errors.Is(err, formatter.ErrUnresolvedReference), "got %v", err)
}

func TestDeclaration_MissingGroup(t *testing.T) {
	orphan := colorToken("o", "Orphan", "nowhere", token.RGB{}, 1)
	f := newFormatter([]*token.Token{orphan}, formatter.Options{})

	_, err := f.Declaration(orphan, "")
	assert.ErrorIs(t, err, naming.ErrMissingGroup)
}

func TestDimension(t *testing.T) {
	tok := &token.Token{
		ID:            "space",
		Name:          "Space 2",
		Kind:          token.KindDimension,
		ParentGroupID: "brand",
		Value:         &token.MeasureValue{Measure: token.Measure{Measure: 0.3333333, Unit: token.UnitRem}},
	}
	f := newFormatter([]*token.Token{tok}, formatter.Options{})

	got, err := f.Dimension(tok, "semantic")
	require.NoError(t, err)
	assert.Equal(t, "  --semantic-brand-space-2: 0.333rem;", got)

	_, err = f.Color(tok, "")
	assert.ErrorIs(t, err, formatter.ErrUnsupportedValue)
}

func TestGradient(t *testing.T) {
	black := colorToken("black", "Black", "palette", token.RGB{}, 1)
	tok := &token.Token{
		ID:            "fade",
		Name:          "Fade",
		Kind:          token.KindGradient,
		ParentGroupID: "effects",
		Value: &token.GradientValue{Layers: []token.GradientLayer{{
			Type: token.GradientLinear,
			From: token.Point{X: 0, Y: 0.5},
			To:   token.Point{X: 1, Y: 0.5},
			Stops: []token.GradientStop{
				{Position: 0, Color: token.ColorValue{Color: token.RGB{R: 255, G: 255, B: 255}, Opacity: token.Measure{Measure: 1}}},
				{Position: 0.5, Color: token.ColorValue{ReferencedTokenID: "black"}},
			},
		}}},
	}
	f := newFormatter([]*token.Token{black, tok}, formatter.Options{})

	got, err := f.Gradient(tok, "")
	require.NoError(t, err)
	assert.Equal(t, "  --effects-fade: linear-gradient(90deg, #fff 0%, var(--palette-black) 50%);", got)
}

func TestGradientAngle(t *testing.T) {
	tests := []struct {
		name     string
		from, to token.Point
		expected float64
	}{
		{"to right", token.Point{X: 0, Y: 0.5}, token.Point{X: 1, Y: 0.5}, 90},
		{"to bottom", token.Point{X: 0.5, Y: 0}, token.Point{X: 0.5, Y: 1}, 180},
		{"to top", token.Point{X: 0.5, Y: 1}, token.Point{X: 0.5, Y: 0}, 0},
		{"to left", token.Point{X: 1, Y: 0.5}, token.Point{X: 0, Y: 0.5}, 270},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.InDelta(t, tt.expected, formatter.GradientAngle(tt.from, tt.to), 1e-9)
		})
	}
}

func TestShadowAndBlur(t *testing.T) {
	shadow := &token.Token{
		ID:            "elevation",
		Name:          "Elevation 1",
		Kind:          token.KindShadow,
		ParentGroupID: "effects",
		Value: &token.ShadowValue{Layers: []token.ShadowLayer{
			{Type: token.ShadowDrop, Y: 4, Radius: 8, Color: token.ColorValue{Opacity: token.Measure{Measure: 0.25}}},
			{Type: token.ShadowInner, X: 1, Y: 1, Color: token.ColorValue{Color: token.RGB{R: 255, G: 255, B: 255}, Opacity: token.Measure{Measure: 1}}},
		}},
	}
	blur := &token.Token{
		ID:            "frost",
		Name:          "Frost",
		Kind:          token.KindBlur,
		ParentGroupID: "effects",
		Value:         &token.BlurValue{Type: token.BlurBackground, Radius: token.Measure{Measure: 4}},
	}
	f := newFormatter([]*token.Token{shadow, blur}, formatter.Options{})

	got, err := f.Shadow(shadow, "")
	require.NoError(t, err)
	assert.Equal(t, "  --effects-elevation-1: 0px 4px 8px 0px #00000040, inset 1px 1px 0px 0px #ffffffff;", got)

	got, err = f.Blur(blur, "")
	require.NoError(t, err)
	assert.Equal(t, "  --effects-frost: blur(4px);", got)
}

func TestString(t *testing.T) {
	tok := &token.Token{
		ID:            "family",
		Name:          "Font Family",
		Kind:          token.KindString,
		ParentGroupID: "brand",
		Value:         &token.TextValue{Text: `"Inter", sans-serif`},
	}
	f := newFormatter([]*token.Token{tok}, formatter.Options{})

	got, err := f.String(tok, "")
	require.NoError(t, err)
	assert.Equal(t, `  --brand-font-family: "Inter", sans-serif;`, got)
}

func TestString_LineBreak(t *testing.T) {
	for _, text := range []string{"Inter,\nsans-serif", "Inter,\r\nsans-serif"} {
		tok := &token.Token{
			ID: "family", Name: "Font Family", Kind: token.KindString, ParentGroupID: "brand",
			Value: &token.TextValue{Text: text},
		}
		f := newFormatter([]*token.Token{tok}, formatter.Options{})

		_, err := f.String(tok, "")
		assert.ErrorIs(t, err, formatter.ErrUnsupportedValue, text)
	}
}

func typographyToken() *token.Token {
	return &token.Token{
		ID:            "h1",
		Name:          "Display Large",
		Kind:          token.KindTypography,
		ParentGroupID: "heading",
		Value: &token.TypographyValue{
			FontFamily:    token.TextValue{Text: "Inter"},
			FontWeight:    token.TextValue{Text: "600"},
			FontSize:      token.Measure{Measure: 48, Unit: token.UnitPixels},
			LineHeight:    &token.Measure{Measure: 120, Unit: token.UnitPercent},
			LetterSpacing: token.Measure{Measure: -0.5, Unit: token.UnitPixels},
		},
	}
}

func TestTypography(t *testing.T) {
	tok := typographyToken()
	f := newFormatter([]*token.Token{tok}, formatter.Options{})

	got, err := f.Typography(tok, "typography")
	require.NoError(t, err)
	expected := strings.Join([]string{
		"  --typography-display-xl-display-large-size: 48px;",
		"  --typography-display-xl-display-large-weight: 600;",
		"  --typography-display-xl-display-large-line-height: 120%;",
		"  --typography-display-xl-display-large-letter-spacing: -0.5%;",
	}, "\n")
	assert.Equal(t, expected, got)

	viaDeclaration, err := f.Declaration(tok, "typography")
	require.NoError(t, err)
	assert.Equal(t, got, viaDeclaration)
}

func TestTypography_NormalLineHeight(t *testing.T) {
	tok := typographyToken()
	tok.Value.(*token.TypographyValue).LineHeight = nil
	f := newFormatter([]*token.Token{tok}, formatter.Options{})

	got, err := f.Typography(tok, "")
	require.NoError(t, err)
	assert.Contains(t, got, "  --display-xl-display-large-line-height: normal;")
}

func TestHeadingTypography(t *testing.T) {
	tok := typographyToken()
	f := newFormatter([]*token.Token{tok}, formatter.Options{
		HeadingRewrite: formatter.Rewrite{Pattern: regexp.MustCompile(`display-`), Replacement: ""},
	})

	got, err := f.HeadingTypography(tok, "typography-heading")
	require.NoError(t, err)
	assert.Contains(t, got, "  --typography-heading-xl-large-size: 48px;")

	plain, err := f.Typography(tok, "typography-heading")
	require.NoError(t, err)
	assert.Contains(t, plain, "  --typography-heading-display-xl-display-large-size: 48px;")
}

func TestTypography_Reference(t *testing.T) {
	base := typographyToken()
	alias := &token.Token{
		ID:            "title",
		Name:          "Title",
		Kind:          token.KindTypography,
		ParentGroupID: "brand",
		Value:         &token.TypographyValue{ReferencedTokenID: "h1"},
	}
	f := newFormatter([]*token.Token{base, alias}, formatter.Options{})

	got, err := f.Typography(alias, "")
	require.NoError(t, err)
	assert.Equal(t, strings.Join([]string{
		"  --brand-title-size: var(--display-xl-display-large-size);",
		"  --brand-title-weight: var(--display-xl-display-large-weight);",
		"  --brand-title-line-height: var(--display-xl-display-large-line-height);",
		"  --brand-title-letter-spacing: var(--display-xl-display-large-letter-spacing);",
	}, "\n"), got)
}

func TestTypography_ReferenceUsesSectionPrefix(t *testing.T) {
	base := typographyToken()
	alias := &token.Token{
		ID:            "title",
		Name:          "Title",
		Kind:          token.KindTypography,
		ParentGroupID: "heading",
		Value:         &token.TypographyValue{ReferencedTokenID: "h1"},
	}
	f := newFormatter([]*token.Token{base, alias}, formatter.Options{
		HeadingRewrite: formatter.Rewrite{Pattern: regexp.MustCompile(`display-`), Replacement: ""},
	})

	got, err := f.Typography(alias, "typography")
	require.NoError(t, err)
	assert.Contains(t, got, "  --typography-display-xl-title-size: var(--typography-display-xl-display-large-size);")

	got, err = f.HeadingTypography(alias, "typography-heading")
	require.NoError(t, err)
	assert.Contains(t, got, "  --typography-heading-xl-title-size: var(--typography-heading-xl-large-size);")
}
