/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

package naming_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"bennypowers.dev/tokencss/naming"
	"bennypowers.dev/tokencss/token"
)

func TestParamCase(t *testing.T) {
	tests := []struct {
		input    string
		expected string
	}{
		{"Primary", "primary"},
		{"Blue-500", "blue-500"},
		{"Brand Primary", "brand-primary"},
		{"  Leading and trailing  ", "leading-and-trailing"},
		{"fontSize", "font-size"},
		{"XLarge", "x-large"},
		{"Heading/Display XL", "heading-display-xl"},
		{"spacing_2x", "spacing-2x"},
		{"Max Size", "max-size"},
		{"---", ""},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			assert.Equal(t, tt.expected, naming.ParamCase(tt.input))
		})
	}
}

func fixtureGroups() []*token.Group {
	return []*token.Group{
		{ID: "root-color", Name: "Color", IsRoot: true},
		{ID: "brand", Name: "Brand", ParentGroupID: "root-color"},
		{ID: "palette", Name: "Palette", ParentGroupID: "root-color"},
		{ID: "blue", Name: "Blue Shades", ParentGroupID: "palette"},
	}
}

func TestResolver_Name(t *testing.T) {
	r := naming.NewResolver(fixtureGroups(), "")

	tests := []struct {
		name     string
		token    *token.Token
		prefix   string
		expected string
	}{
		{
			name:     "group and token",
			token:    &token.Token{ID: "t1", Name: "Primary", ParentGroupID: "brand"},
			expected: "brand-primary",
		},
		{
			name:     "nested groups",
			token:    &token.Token{ID: "t2", Name: "500", ParentGroupID: "blue"},
			expected: "palette-blue-shades-500",
		},
		{
			name:     "with prefix",
			token:    &token.Token{ID: "t1", Name: "Primary", ParentGroupID: "brand"},
			prefix:   "color",
			expected: "color-brand-primary",
		},
		{
			name:     "directly under root",
			token:    &token.Token{ID: "t3", Name: "White", ParentGroupID: "root-color"},
			expected: "white",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := r.Name(tt.token, tt.prefix)
			require.NoError(t, err)
			assert.Equal(t, tt.expected, got)
		})
	}
}

func TestResolver_GlobalPrefix(t *testing.T) {
	r := naming.NewResolver(fixtureGroups(), "ds")
	tok := &token.Token{ID: "t1", Name: "Primary", ParentGroupID: "brand"}

	got, err := r.Name(tok, "color")
	require.NoError(t, err)
	assert.Equal(t, "ds-color-brand-primary", got)
}

func TestResolver_Deterministic(t *testing.T) {
	tok := &token.Token{ID: "t1", Name: "Primary Hover", ParentGroupID: "blue"}

	first, err := naming.NewResolver(fixtureGroups(), "").Name(tok, "x")
	require.NoError(t, err)
	for range 5 {
		again, err := naming.NewResolver(fixtureGroups(), "").Name(tok, "x")
		require.NoError(t, err)
		assert.Equal(t, first, again)
	}
}

func TestResolver_MissingGroup(t *testing.T) {
	r := naming.NewResolver(fixtureGroups(), "")

	_, err := r.Name(&token.Token{ID: "t", Name: "Orphan", ParentGroupID: "nope"}, "")
	assert.ErrorIs(t, err, naming.ErrMissingGroup)

	broken := append(fixtureGroups(), &token.Group{ID: "dangling", Name: "Dangling", ParentGroupID: "gone"})
	_, err = naming.NewResolver(broken, "").Name(&token.Token{ID: "t", Name: "X", ParentGroupID: "dangling"}, "")
	assert.ErrorIs(t, err, naming.ErrMissingGroup)
}

func TestResolver_GroupCycle(t *testing.T) {
	groups := []*token.Group{
		{ID: "a", Name: "A", ParentGroupID: "b"},
		{ID: "b", Name: "B", ParentGroupID: "a"},
	}
	_, err := naming.NewResolver(groups, "").Name(&token.Token{ID: "t", Name: "X", ParentGroupID: "a"}, "")
	assert.ErrorIs(t, err, naming.ErrGroupCycle)
}
