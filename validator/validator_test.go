/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

package validator_test

import (
	"strings"
	"testing"

	"bennypowers.dev/tokencss/config"
	"bennypowers.dev/tokencss/token"
	"bennypowers.dev/tokencss/validator"
)

func measure(v float64) *token.MeasureValue {
	return &token.MeasureValue{Measure: token.Measure{Measure: v, Unit: token.UnitPixels}}
}

func color() *token.ColorValue {
	return &token.ColorValue{Opacity: token.Measure{Measure: 1}}
}

func baseGroups() []*token.Group {
	return []*token.Group{
		{ID: "root", Name: "Color", IsRoot: true},
		{ID: "brand", Name: "Brand", ParentGroupID: "root"},
		{ID: "h1", Name: "H1"},
		{ID: "fluid", Name: "Fluid"},
	}
}

func findMessage(errs []validator.ValidationError, substr string) *validator.ValidationError {
	for i := range errs {
		if strings.Contains(errs[i].Message, substr) {
			return &errs[i]
		}
	}
	return nil
}

func TestValidate_Valid(t *testing.T) {
	tokens := []*token.Token{
		{ID: "a", Name: "Primary", Kind: token.KindColor, ParentGroupID: "brand", Value: color()},
		{ID: "b", Name: "Accent", Kind: token.KindColor, ParentGroupID: "brand", Value: &token.ColorValue{ReferencedTokenID: "a"}},
		{ID: "min", Name: "Min Size", Kind: token.KindFontSize, ParentGroupID: "h1", Origin: &token.Origin{Name: "Heading/H1/Min Size"}, Value: measure(24)},
		{ID: "max", Name: "Max Size", Kind: token.KindFontSize, ParentGroupID: "h1", Origin: &token.Origin{Name: "Heading/H1/Max Size"}, Value: measure(40)},
	}

	errs := validator.Validate(tokens, baseGroups(), config.Default())
	if len(errs) != 0 {
		t.Errorf("expected no errors, got %d: %v", len(errs), errs)
	}
}

func TestValidate_Problems(t *testing.T) {
	tests := []struct {
		name    string
		tokens  []*token.Token
		groups  []*token.Group
		cfg     func(*config.Config)
		message string
		id      string
	}{
		{
			name:    "dangling group parent",
			groups:  append(baseGroups(), &token.Group{ID: "orphan", Name: "Orphan", ParentGroupID: "gone"}),
			message: `parent group "gone" not found`,
			id:      "orphan",
		},
		{
			name: "dangling token parent",
			tokens: []*token.Token{
				{ID: "a", Name: "Primary", Kind: token.KindColor, ParentGroupID: "gone", Value: color()},
			},
			message: `parent group "gone" not found`,
			id:      "a",
		},
		{
			name: "group cycle",
			groups: append(baseGroups(),
				&token.Group{ID: "x", Name: "X", ParentGroupID: "y"},
				&token.Group{ID: "y", Name: "Y", ParentGroupID: "x"},
			),
			message: "cycle",
			id:      "x",
		},
		{
			name: "unresolved reference",
			tokens: []*token.Token{
				{ID: "a", Name: "Primary", Kind: token.KindColor, ParentGroupID: "brand", Value: &token.ColorValue{ReferencedTokenID: "nope"}},
			},
			message: `missing token "nope"`,
			id:      "a",
		},
		{
			name: "reference cycle",
			tokens: []*token.Token{
				{ID: "a", Name: "A", Kind: token.KindColor, ParentGroupID: "brand", Value: &token.ColorValue{ReferencedTokenID: "b"}},
				{ID: "b", Name: "B", Kind: token.KindColor, ParentGroupID: "brand", Value: &token.ColorValue{ReferencedTokenID: "a"}},
			},
			message: "circular reference",
			id:      "a",
		},
		{
			name: "duplicate name",
			tokens: []*token.Token{
				{ID: "a", Name: "Primary", Kind: token.KindColor, ParentGroupID: "brand", Value: color()},
				{ID: "b", Name: "primary", Kind: token.KindColor, ParentGroupID: "brand", Value: color()},
			},
			message: `shares its name with "a"`,
			id:      "b",
		},
		{
			name: "semantic and component",
			tokens: []*token.Token{{
				ID: "a", Name: "Primary", Kind: token.KindColor, ParentGroupID: "brand", Value: color(),
				Properties: []token.Property{{
					CodeName: "Collection",
					Options:  []token.PropertyOption{{ID: "opt", Name: "Shared"}},
				}},
				PropertyValues: map[string]any{"Collection": "opt"},
			}},
			cfg: func(c *config.Config) {
				c.SemanticCollectionNames = []string{"Shared"}
				c.ComponentCollectionNames = []string{"Shared"}
			},
			message: "both semantic and component",
			id:      "a",
		},
		{
			name: "incomplete fluid pair",
			tokens: []*token.Token{
				{ID: "max", Name: "Max Size", Kind: token.KindFontSize, ParentGroupID: "h1", Origin: &token.Origin{Name: "Heading/H1/Max Size"}, Value: measure(40)},
			},
			message: "fluid heading needs both",
			id:      "h1",
		},
		{
			name: "degenerate screen range",
			tokens: []*token.Token{
				{ID: "smax", Name: "Screen Max", Kind: token.KindDimension, ParentGroupID: "fluid", Origin: &token.Origin{Name: "Fluid/Screen Max"}, Value: measure(400)},
				{ID: "smin", Name: "Screen Min", Kind: token.KindDimension, ParentGroupID: "fluid", Origin: &token.Origin{Name: "Fluid/Screen Min"}, Value: measure(800)},
			},
			message: "is empty",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			groups := tt.groups
			if groups == nil {
				groups = baseGroups()
			}
			cfg := config.Default()
			if tt.cfg != nil {
				tt.cfg(cfg)
			}

			errs := validator.Validate(tt.tokens, groups, cfg)
			found := findMessage(errs, tt.message)
			if found == nil {
				t.Fatalf("expected error containing %q, got: %v", tt.message, errs)
			}
			if found.ID != tt.id {
				t.Errorf("ID = %q, want %q", found.ID, tt.id)
			}
		})
	}
}

func TestValidationError_Error(t *testing.T) {
	tests := []struct {
		name     string
		err      validator.ValidationError
		expected string
	}{
		{
			name:     "message only",
			err:      validator.ValidationError{Message: "something wrong"},
			expected: "something wrong",
		},
		{
			name:     "with id",
			err:      validator.ValidationError{ID: "tok-1", Message: "something wrong"},
			expected: "tok-1: something wrong",
		},
		{
			name:     "with id and path",
			err:      validator.ValidationError{ID: "tok-1", Path: "--brand-primary", Message: "something wrong"},
			expected: "tok-1: --brand-primary: something wrong",
		},
		{
			name: "with suggestion",
			err: validator.ValidationError{
				ID:         "tok-1",
				Path:       "--brand-primary",
				Message:    "something wrong",
				Suggestion: "fix it",
			},
			expected: "tok-1: --brand-primary: something wrong (fix it)",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := tt.err.Error()
			if got != tt.expected {
				t.Errorf("Error() = %q, want %q", got, tt.expected)
			}
		})
	}
}
