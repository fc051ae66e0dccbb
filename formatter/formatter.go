/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

// Package formatter converts token values into CSS custom property
// declarations.
package formatter

import (
	"errors"
	"fmt"
	"regexp"
	"strings"

	"bennypowers.dev/tokencss/naming"
	"bennypowers.dev/tokencss/resolver"
	"bennypowers.dev/tokencss/token"
)

var (
	// ErrUnresolvedReference indicates a value that points at a token id
	// missing from the snapshot.
	ErrUnresolvedReference = resolver.ErrUnresolvedReference

	// ErrUnsupportedValue indicates a value type the formatter cannot emit.
	ErrUnsupportedValue = errors.New("unsupported token value")
)

// Indent precedes every declaration inside a rule block.
const Indent = "  "

// Rewrite is a regular expression replacement applied to variable names.
type Rewrite struct {
	Pattern     *regexp.Regexp
	Replacement string
}

// Apply rewrites name. A zero Rewrite returns name unchanged.
func (rw Rewrite) Apply(name string) string {
	if rw.Pattern == nil {
		return name
	}
	return rw.Pattern.ReplaceAllString(name, rw.Replacement)
}

// Options configures formatter behavior.
type Options struct {
	// HeadingRewrite is applied to the computed name of heading
	// typography tokens before emission.
	HeadingRewrite Rewrite
}

// Formatter emits declarations for tokens of one snapshot.
type Formatter struct {
	names  *naming.Resolver
	tokens *token.Index
	opts   Options
}

// New creates a formatter. names derives variable names and tokens resolves
// referenced token ids.
func New(names *naming.Resolver, tokens *token.Index, opts Options) *Formatter {
	return &Formatter{names: names, tokens: tokens, opts: opts}
}

// Declaration formats tok as one declaration, or as a block of four for
// typography tokens.
func (f *Formatter) Declaration(tok *token.Token, prefix string) (string, error) {
	if tv, ok := tok.Value.(*token.TypographyValue); ok {
		name, err := f.names.Name(tok, prefix)
		if err != nil {
			return "", err
		}
		return f.typography(name, tv, prefix, false)
	}

	return f.declare(tok, prefix, func() (string, error) { return f.Value(tok) })
}

// Value returns the CSS value of a single-valued token.
func (f *Formatter) Value(tok *token.Token) (string, error) {
	switch v := tok.Value.(type) {
	case *token.ColorValue:
		return f.color(*v, SmartHex)
	case *token.MeasureValue:
		return f.measure(v.Measure, DimensionUnit)
	case *token.GradientValue:
		return f.gradient(v)
	case *token.ShadowValue:
		return f.shadow(v)
	case *token.BlurValue:
		return f.blur(v)
	case *token.TextValue:
		return f.text(*v)
	case *token.TypographyValue:
		return "", fmt.Errorf("%w: typography tokens expand to several declarations", ErrUnsupportedValue)
	default:
		return "", fmt.Errorf("%w: %T", ErrUnsupportedValue, tok.Value)
	}
}

// Reference returns var(--name) for the token with the given id.
func (f *Formatter) Reference(id string) (string, error) {
	name, err := f.referenceName(id)
	if err != nil {
		return "", err
	}
	return "var(--" + name + ")", nil
}

func (f *Formatter) referenceName(id string) (string, error) {
	target, ok := f.tokens.Get(id)
	if !ok {
		return "", fmt.Errorf("%w: %q", ErrUnresolvedReference, id)
	}
	return f.names.Name(target, "")
}

// Declare renders one indented custom property declaration.
func Declare(name, value string) string {
	return Indent + "--" + name + ": " + value + ";"
}

// text emits a literal text value. Line breaks are rejected since every
// declaration occupies exactly one line of the document.
func (f *Formatter) text(v token.TextValue) (string, error) {
	if v.ReferencedTokenID != "" {
		return f.Reference(v.ReferencedTokenID)
	}
	if strings.ContainsAny(v.Text, "\r\n") {
		return "", fmt.Errorf("%w: text %q contains a line break", ErrUnsupportedValue, v.Text)
	}
	return v.Text, nil
}

func joinLines(lines []string) string {
	return strings.Join(lines, "\n")
}
