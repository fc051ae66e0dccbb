/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

package token

import (
	"bytes"
	"encoding/json"
	"fmt"

	"github.com/mazznoer/csscolorparser"
)

// UnmarshalJSON decodes a token, choosing the concrete Value from tokenType.
func (t *Token) UnmarshalJSON(data []byte) error {
	type rawToken Token
	aux := struct {
		*rawToken
		Value json.RawMessage `json:"value"`
	}{rawToken: (*rawToken)(t)}

	if err := json.Unmarshal(data, &aux); err != nil {
		return err
	}

	kind, err := ParseKind(string(t.Kind))
	if err != nil {
		return fmt.Errorf("token %q: %w", t.ID, err)
	}
	t.Kind = kind

	value, err := DecodeValue(kind, aux.Value)
	if err != nil {
		return fmt.Errorf("token %q: %w", t.ID, err)
	}
	t.Value = value
	return nil
}

// DecodeValue decodes a raw JSON value payload for the given kind.
func DecodeValue(kind Kind, raw json.RawMessage) (Value, error) {
	raw = bytes.TrimSpace(raw)
	if len(raw) == 0 || bytes.Equal(raw, []byte("null")) {
		return nil, fmt.Errorf("%w: missing value for %s token", ErrInvalidValue, kind)
	}

	var (
		value Value
		err   error
	)
	switch kind {
	case KindColor:
		v := &ColorValue{}
		err = json.Unmarshal(raw, v)
		value = v
	case KindDimension, KindSize, KindRadius, KindFontSize:
		v := &MeasureValue{}
		err = json.Unmarshal(raw, v)
		value = v
	case KindGradient:
		v := &GradientValue{}
		if raw[0] == '[' {
			err = json.Unmarshal(raw, &v.Layers)
		} else {
			err = json.Unmarshal(raw, v)
		}
		value = v
	case KindShadow:
		v := &ShadowValue{}
		if raw[0] == '[' {
			err = json.Unmarshal(raw, &v.Layers)
		} else {
			err = json.Unmarshal(raw, v)
		}
		value = v
	case KindBlur:
		v := &BlurValue{}
		err = json.Unmarshal(raw, v)
		value = v
	case KindString, KindFontWeight:
		v := &TextValue{}
		err = json.Unmarshal(raw, v)
		value = v
	case KindTypography:
		v := &TypographyValue{}
		err = json.Unmarshal(raw, v)
		value = v
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownKind, kind)
	}

	if err != nil {
		return nil, fmt.Errorf("%w: %s: %w", ErrInvalidValue, kind, err)
	}
	return value, nil
}

// UnmarshalJSON accepts either a bare number or a {measure, unit} object.
func (m *Measure) UnmarshalJSON(data []byte) error {
	var n float64
	if err := json.Unmarshal(data, &n); err == nil {
		*m = Measure{Measure: n}
		return nil
	}
	type rawMeasure Measure
	return json.Unmarshal(data, (*rawMeasure)(m))
}

// UnmarshalJSON accepts either a bare string or a {text} object.
func (t *TextValue) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err == nil {
		*t = TextValue{Text: s}
		return nil
	}
	type rawText TextValue
	return json.Unmarshal(data, (*rawText)(t))
}

// UnmarshalJSON decodes a color value. The color may be an {r, g, b} object
// or any CSS color string; a string's alpha multiplies the opacity, which
// defaults to 1 when absent.
func (c *ColorValue) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err == nil {
		rgb, alpha, err := parseCSSColor(s)
		if err != nil {
			return err
		}
		*c = ColorValue{Color: rgb, Opacity: Measure{Measure: alpha}}
		return nil
	}

	var aux struct {
		Color             json.RawMessage `json:"color"`
		Opacity           *Measure        `json:"opacity"`
		ReferencedTokenID string          `json:"referencedTokenId"`
	}
	if err := json.Unmarshal(data, &aux); err != nil {
		return err
	}

	result := ColorValue{
		Opacity:           Measure{Measure: 1},
		ReferencedTokenID: aux.ReferencedTokenID,
	}
	if aux.Opacity != nil {
		result.Opacity = *aux.Opacity
	}

	alpha := 1.0
	if len(aux.Color) > 0 && !bytes.Equal(aux.Color, []byte("null")) {
		var colorStr string
		if err := json.Unmarshal(aux.Color, &colorStr); err == nil {
			rgb, a, err := parseCSSColor(colorStr)
			if err != nil {
				return err
			}
			result.Color = rgb
			alpha = a
		} else if err := json.Unmarshal(aux.Color, &result.Color); err != nil {
			return fmt.Errorf("invalid color: %w", err)
		}
	} else if aux.ReferencedTokenID == "" {
		return fmt.Errorf("color value has neither color nor referencedTokenId")
	}

	if alpha < 1 {
		result.Opacity.Measure *= alpha
	}
	*c = result
	return nil
}

// parseCSSColor parses a CSS color string into 8-bit RGB and a 0-1 alpha.
func parseCSSColor(s string) (RGB, float64, error) {
	parsed, err := csscolorparser.Parse(s)
	if err != nil {
		return RGB{}, 0, fmt.Errorf("invalid color %q: %w", s, err)
	}
	r, g, b, _ := parsed.RGBA255()
	return RGB{R: r, G: g, B: b}, parsed.A, nil
}
