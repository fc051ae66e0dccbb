/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

// Package token provides the design token snapshot types consumed by the
// CSS exporter: tokens, groups, themes and their typed values.
package token

import (
	"fmt"
	"strings"
)

// Kind is the type of value a token carries.
type Kind string

const (
	KindColor      Kind = "Color"
	KindDimension  Kind = "Dimension"
	KindSize       Kind = "Size"
	KindRadius     Kind = "Radius"
	KindFontSize   Kind = "FontSize"
	KindGradient   Kind = "Gradient"
	KindShadow     Kind = "Shadow"
	KindBlur       Kind = "Blur"
	KindString     Kind = "String"
	KindFontWeight Kind = "FontWeight"
	KindTypography Kind = "Typography"
)

// Kinds returns every supported token kind.
func Kinds() []Kind {
	return []Kind{
		KindColor,
		KindDimension,
		KindSize,
		KindRadius,
		KindFontSize,
		KindGradient,
		KindShadow,
		KindBlur,
		KindString,
		KindFontWeight,
		KindTypography,
	}
}

// ParseKind converts a string to a Kind, accepting any letter case and
// dashed spellings such as "font-weight".
func ParseKind(s string) (Kind, error) {
	normalized := strings.ToLower(strings.NewReplacer("-", "", "_", "", " ", "").Replace(s))
	for _, k := range Kinds() {
		if strings.ToLower(string(k)) == normalized {
			return k, nil
		}
	}
	return "", fmt.Errorf("%w: %q", ErrUnknownKind, s)
}

// IsMeasure reports whether tokens of this kind carry a MeasureValue.
func (k Kind) IsMeasure() bool {
	switch k {
	case KindDimension, KindSize, KindRadius, KindFontSize:
		return true
	}
	return false
}

// Origin describes where a token was authored (e.g. a Figma variable).
type Origin struct {
	ID   string `json:"id,omitempty"`
	Name string `json:"name,omitempty"`
}

// Token is a named, typed design value.
type Token struct {
	// ID uniquely identifies the token within a snapshot.
	ID string `json:"id"`

	// Name is the human-readable token name (e.g. "Primary").
	Name string `json:"name"`

	// Description is optional documentation for the token.
	Description string `json:"description,omitempty"`

	// Kind is the token type; it determines the concrete Value.
	Kind Kind `json:"tokenType"`

	// ParentGroupID is the identifier of the owning group.
	ParentGroupID string `json:"parentGroupId"`

	// BrandID associates the token with a brand.
	BrandID string `json:"brandId,omitempty"`

	// Origin is the original authoring source, used for marker matching.
	Origin *Origin `json:"origin,omitempty"`

	// Properties declares the custom properties available on the token.
	Properties []Property `json:"properties,omitempty"`

	// PropertyValues holds the values of custom properties keyed by code name.
	PropertyValues map[string]any `json:"propertyValues,omitempty"`

	// Value is the typed payload.
	Value Value `json:"value"`
}

// OriginName returns the authoring name, or "" when the token has no origin.
func (t *Token) OriginName() string {
	if t.Origin == nil {
		return ""
	}
	return t.Origin.Name
}

// OriginContains reports whether the origin name contains substr.
// Tokens without an origin never match.
func (t *Token) OriginContains(substr string) bool {
	if t.Origin == nil {
		return false
	}
	return strings.Contains(t.Origin.Name, substr)
}

// WithValue returns a shallow copy of the token carrying v.
func (t *Token) WithValue(v Value) *Token {
	clone := *t
	clone.Value = v
	return &clone
}

// References returns the ids of every token referenced by this token's value.
func (t *Token) References() []string {
	if t.Value == nil {
		return nil
	}
	return t.Value.References()
}

// FilterByKind returns the tokens of the given kinds, preserving order.
func FilterByKind(tokens []*Token, kinds ...Kind) []*Token {
	var result []*Token
	for _, tok := range tokens {
		for _, k := range kinds {
			if tok.Kind == k {
				result = append(result, tok)
				break
			}
		}
	}
	return result
}
