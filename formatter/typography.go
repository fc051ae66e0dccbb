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

// Typography property suffixes, in emission order.
const (
	SuffixSize          = "size"
	SuffixWeight        = "weight"
	SuffixLineHeight    = "line-height"
	SuffixLetterSpacing = "letter-spacing"
)

var typographySuffixes = []string{SuffixSize, SuffixWeight, SuffixLineHeight, SuffixLetterSpacing}

// Typography formats a typography token as four declarations.
func (f *Formatter) Typography(tok *token.Token, prefix string) (string, error) {
	tv, ok := tok.Value.(*token.TypographyValue)
	if !ok {
		return "", fmt.Errorf("%w: %s is not a typography token", ErrUnsupportedValue, tok.ID)
	}
	name, err := f.names.Name(tok, prefix)
	if err != nil {
		return "", err
	}
	return f.typography(name, tv, prefix, false)
}

// HeadingTypography formats a heading typography token, applying the
// configured heading rewrite to its name first.
func (f *Formatter) HeadingTypography(tok *token.Token, prefix string) (string, error) {
	tv, ok := tok.Value.(*token.TypographyValue)
	if !ok {
		return "", fmt.Errorf("%w: %s is not a typography token", ErrUnsupportedValue, tok.ID)
	}
	name, err := f.names.Name(tok, prefix)
	if err != nil {
		return "", err
	}
	return f.typography(f.opts.HeadingRewrite.Apply(name), tv, prefix, true)
}

// TypographyNames returns the four variable names a typography token named
// name expands to.
func TypographyNames(name string) []string {
	names := make([]string, len(typographySuffixes))
	for i, suffix := range typographySuffixes {
		names[i] = name + "-" + suffix
	}
	return names
}

// typography renders the four declarations for name. prefix and heading
// describe the section, so references name their target as that section
// emits it.
func (f *Formatter) typography(name string, v *token.TypographyValue, prefix string, heading bool) (string, error) {
	if v.ReferencedTokenID != "" {
		return f.typographyReference(name, v.ReferencedTokenID, prefix, heading)
	}

	size, err := f.measure(v.FontSize, TypographyUnit)
	if err != nil {
		return "", fmt.Errorf("formatting %q font size: %w", name, err)
	}
	weight, err := f.text(v.FontWeight)
	if err != nil {
		return "", fmt.Errorf("formatting %q font weight: %w", name, err)
	}
	lineHeight := "normal"
	if v.LineHeight != nil {
		lineHeight, err = f.measure(*v.LineHeight, TypographyUnit)
		if err != nil {
			return "", fmt.Errorf("formatting %q line height: %w", name, err)
		}
	}
	// Letter spacing is always a percentage, whatever unit the source reports.
	letterSpacing, err := f.measure(v.LetterSpacing, percentUnit)
	if err != nil {
		return "", fmt.Errorf("formatting %q letter spacing: %w", name, err)
	}

	values := []string{size, weight, lineHeight, letterSpacing}
	lines := make([]string, len(values))
	for i, n := range TypographyNames(name) {
		lines[i] = Declare(n, values[i])
	}
	return joinLines(lines), nil
}

// typographyReference points each property at the referenced token's
// matching property, named with the same section prefix as the alias.
func (f *Formatter) typographyReference(name, id, prefix string, heading bool) (string, error) {
	tok, ok := f.tokens.Get(id)
	if !ok {
		return "", fmt.Errorf("formatting %q: %w: %q", name, ErrUnresolvedReference, id)
	}
	target, err := f.names.Name(tok, prefix)
	if err != nil {
		return "", fmt.Errorf("formatting %q: %w", name, err)
	}
	if heading {
		target = f.opts.HeadingRewrite.Apply(target)
	}
	targets := TypographyNames(target)
	lines := make([]string, len(targets))
	for i, n := range TypographyNames(name) {
		lines[i] = Declare(n, "var(--"+targets[i]+")")
	}
	return joinLines(lines), nil
}

func percentUnit(token.Unit) string {
	return "%"
}
