/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

package token

// Value is the typed payload of a token. The set of implementations is
// closed: ColorValue, MeasureValue, GradientValue, ShadowValue, BlurValue,
// TextValue and TypographyValue.
type Value interface {
	// References returns the ids of tokens this value points at.
	References() []string

	sealed()
}

// Unit is the unit of a Measure as reported by the token source.
type Unit string

const (
	UnitPixels       Unit = "Pixels"
	UnitRem          Unit = "Rem"
	UnitEm           Unit = "Em"
	UnitPercent      Unit = "Percent"
	UnitPoints       Unit = "Points"
	UnitMilliseconds Unit = "Ms"
	UnitSeconds      Unit = "S"
	UnitRaw          Unit = "Raw"
)

// Measure is a number with a unit, or a reference to another measure token.
type Measure struct {
	Measure           float64 `json:"measure"`
	Unit              Unit    `json:"unit,omitempty"`
	ReferencedTokenID string  `json:"referencedTokenId,omitempty"`
}

// IsReference reports whether the measure points at another token.
func (m Measure) IsReference() bool {
	return m.ReferencedTokenID != ""
}

// RGB is an 8-bit-per-channel sRGB color.
type RGB struct {
	R uint8 `json:"r"`
	G uint8 `json:"g"`
	B uint8 `json:"b"`
}

// ColorValue is the value of a color token.
type ColorValue struct {
	Color RGB `json:"color"`

	// Opacity is the alpha channel in the 0-1 range.
	Opacity Measure `json:"opacity"`

	ReferencedTokenID string `json:"referencedTokenId,omitempty"`
}

// Alpha returns the opacity in the 0-1 range, honoring percent units.
func (c ColorValue) Alpha() float64 {
	a := c.Opacity.Measure
	if c.Opacity.Unit == UnitPercent {
		a /= 100
	}
	return min(max(a, 0), 1)
}

// References implements Value.
func (c *ColorValue) References() []string {
	return appendRef(nil, c.ReferencedTokenID)
}

func (*ColorValue) sealed() {}

// MeasureValue is the value of dimension, size, radius and font size tokens.
type MeasureValue struct {
	Measure
}

// References implements Value.
func (m *MeasureValue) References() []string {
	return appendRef(nil, m.ReferencedTokenID)
}

func (*MeasureValue) sealed() {}

// GradientType is the shape of a gradient layer.
type GradientType string

const (
	GradientLinear  GradientType = "Linear"
	GradientRadial  GradientType = "Radial"
	GradientAngular GradientType = "Angular"
)

// Point is a normalized 0-1 coordinate within the painted box.
type Point struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
}

// GradientStop is a color at a normalized 0-1 position.
type GradientStop struct {
	Position float64    `json:"position"`
	Color    ColorValue `json:"color"`
}

// GradientLayer is one gradient painted in a stack.
type GradientLayer struct {
	Type              GradientType   `json:"type"`
	From              Point          `json:"from"`
	To                Point          `json:"to"`
	Stops             []GradientStop `json:"stops"`
	ReferencedTokenID string         `json:"referencedTokenId,omitempty"`
}

// GradientValue is the value of a gradient token.
type GradientValue struct {
	Layers            []GradientLayer `json:"layers"`
	ReferencedTokenID string          `json:"referencedTokenId,omitempty"`
}

// References implements Value.
func (g *GradientValue) References() []string {
	refs := appendRef(nil, g.ReferencedTokenID)
	for _, layer := range g.Layers {
		refs = appendRef(refs, layer.ReferencedTokenID)
		for _, stop := range layer.Stops {
			refs = appendRef(refs, stop.Color.ReferencedTokenID)
		}
	}
	return refs
}

func (*GradientValue) sealed() {}

// ShadowType distinguishes drop shadows from inner shadows.
type ShadowType string

const (
	ShadowDrop  ShadowType = "Drop"
	ShadowInner ShadowType = "Inner"
)

// ShadowLayer is one shadow in a stack. Offsets, radius and spread are pixels.
type ShadowLayer struct {
	Type              ShadowType `json:"type"`
	X                 float64    `json:"x"`
	Y                 float64    `json:"y"`
	Radius            float64    `json:"radius"`
	Spread            float64    `json:"spread"`
	Color             ColorValue `json:"color"`
	ReferencedTokenID string     `json:"referencedTokenId,omitempty"`
}

// ShadowValue is the value of a shadow token.
type ShadowValue struct {
	Layers            []ShadowLayer `json:"layers"`
	ReferencedTokenID string        `json:"referencedTokenId,omitempty"`
}

// References implements Value.
func (s *ShadowValue) References() []string {
	refs := appendRef(nil, s.ReferencedTokenID)
	for _, layer := range s.Layers {
		refs = appendRef(refs, layer.ReferencedTokenID)
		refs = appendRef(refs, layer.Color.ReferencedTokenID)
	}
	return refs
}

func (*ShadowValue) sealed() {}

// BlurType distinguishes layer blurs from backdrop blurs.
type BlurType string

const (
	BlurLayer      BlurType = "Layer"
	BlurBackground BlurType = "Background"
)

// BlurValue is the value of a blur token.
type BlurValue struct {
	Type              BlurType `json:"type"`
	Radius            Measure  `json:"radius"`
	ReferencedTokenID string   `json:"referencedTokenId,omitempty"`
}

// References implements Value.
func (b *BlurValue) References() []string {
	refs := appendRef(nil, b.ReferencedTokenID)
	return appendRef(refs, b.Radius.ReferencedTokenID)
}

func (*BlurValue) sealed() {}

// TextValue is the value of string and font weight tokens.
type TextValue struct {
	Text              string `json:"text"`
	ReferencedTokenID string `json:"referencedTokenId,omitempty"`
}

// References implements Value.
func (t *TextValue) References() []string {
	return appendRef(nil, t.ReferencedTokenID)
}

func (*TextValue) sealed() {}

// TypographyValue is the value of a composite typography token.
type TypographyValue struct {
	FontFamily        TextValue `json:"fontFamily"`
	FontWeight        TextValue `json:"fontWeight"`
	FontSize          Measure   `json:"fontSize"`
	LineHeight        *Measure  `json:"lineHeight,omitempty"`
	LetterSpacing     Measure   `json:"letterSpacing"`
	ReferencedTokenID string    `json:"referencedTokenId,omitempty"`
}

// References implements Value.
func (t *TypographyValue) References() []string {
	refs := appendRef(nil, t.ReferencedTokenID)
	refs = appendRef(refs, t.FontFamily.ReferencedTokenID)
	refs = appendRef(refs, t.FontWeight.ReferencedTokenID)
	refs = appendRef(refs, t.FontSize.ReferencedTokenID)
	if t.LineHeight != nil {
		refs = appendRef(refs, t.LineHeight.ReferencedTokenID)
	}
	return appendRef(refs, t.LetterSpacing.ReferencedTokenID)
}

func (*TypographyValue) sealed() {}

func appendRef(refs []string, id string) []string {
	if id == "" {
		return refs
	}
	return append(refs, id)
}
