/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

package formatter

import (
	"fmt"

	"bennypowers.dev/tokencss/token"
)

// Color formats a color token declaration with smart hex.
func (f *Formatter) Color(tok *token.Token, prefix string) (string, error) {
	v, ok := tok.Value.(*token.ColorValue)
	if !ok {
		return "", mismatch(tok, "color")
	}
	return f.declare(tok, prefix, func() (string, error) { return f.color(*v, SmartHex) })
}

// Dimension formats a dimension, size, radius or font size token declaration.
func (f *Formatter) Dimension(tok *token.Token, prefix string) (string, error) {
	v, ok := tok.Value.(*token.MeasureValue)
	if !ok {
		return "", mismatch(tok, "measure")
	}
	return f.declare(tok, prefix, func() (string, error) { return f.measure(v.Measure, DimensionUnit) })
}

// Gradient formats a gradient token declaration.
func (f *Formatter) Gradient(tok *token.Token, prefix string) (string, error) {
	v, ok := tok.Value.(*token.GradientValue)
	if !ok {
		return "", mismatch(tok, "gradient")
	}
	return f.declare(tok, prefix, func() (string, error) { return f.gradient(v) })
}

// Shadow formats a shadow token declaration. Colors are always 8-digit hex.
func (f *Formatter) Shadow(tok *token.Token, prefix string) (string, error) {
	v, ok := tok.Value.(*token.ShadowValue)
	if !ok {
		return "", mismatch(tok, "shadow")
	}
	return f.declare(tok, prefix, func() (string, error) { return f.shadow(v) })
}

// Blur formats a blur token declaration.
func (f *Formatter) Blur(tok *token.Token, prefix string) (string, error) {
	v, ok := tok.Value.(*token.BlurValue)
	if !ok {
		return "", mismatch(tok, "blur")
	}
	return f.declare(tok, prefix, func() (string, error) { return f.blur(v) })
}

// String formats a string or font weight token declaration verbatim.
func (f *Formatter) String(tok *token.Token, prefix string) (string, error) {
	v, ok := tok.Value.(*token.TextValue)
	if !ok {
		return "", mismatch(tok, "text")
	}
	return f.declare(tok, prefix, func() (string, error) { return f.text(*v) })
}

func (f *Formatter) declare(tok *token.Token, prefix string, value func() (string, error)) (string, error) {
	name, err := f.names.Name(tok, prefix)
	if err != nil {
		return "", err
	}
	v, err := value()
	if err != nil {
		return "", fmt.Errorf("formatting %q: %w", name, err)
	}
	return Declare(name, v), nil
}

func mismatch(tok *token.Token, want string) error {
	return fmt.Errorf("%w: %s token %q does not carry a %s value", ErrUnsupportedValue, tok.Kind, tok.ID, want)
}
