/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

// Package naming derives CSS custom property names from a token's group
// hierarchy.
package naming

import (
	"errors"
	"fmt"
	"strings"
	"unicode"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"bennypowers.dev/tokencss/token"
)

var (
	// ErrMissingGroup indicates a token or group whose parent id does not
	// resolve within the group collection.
	ErrMissingGroup = errors.New("parent group not found")

	// ErrGroupCycle indicates a group that is its own ancestor.
	ErrGroupCycle = errors.New("group hierarchy contains a cycle")
)

var lower = cases.Lower(language.Und)

// Resolver names tokens from a fixed group collection.
type Resolver struct {
	groups map[string]*token.Group
	prefix string
}

// NewResolver creates a resolver over groups. The global prefix, if any,
// leads every name the resolver produces.
func NewResolver(groups []*token.Group, prefix string) *Resolver {
	return &Resolver{
		groups: token.GroupsByID(groups),
		prefix: prefix,
	}
}

// Group returns the group with the given id.
func (r *Resolver) Group(id string) (*token.Group, bool) {
	g, ok := r.groups[id]
	return g, ok
}

// Name returns the param-case variable name for tok, without the leading
// "--". A non-empty prefix is placed after the global prefix.
func (r *Resolver) Name(tok *token.Token, prefix string) (string, error) {
	path, err := r.GroupPath(tok.ParentGroupID)
	if err != nil {
		return "", fmt.Errorf("naming token %q (%s): %w", tok.Name, tok.ID, err)
	}

	fragments := make([]string, 0, len(path)+3)
	if r.prefix != "" {
		fragments = append(fragments, r.prefix)
	}
	if prefix != "" {
		fragments = append(fragments, prefix)
	}
	fragments = append(fragments, path...)
	fragments = append(fragments, tok.Name)

	return ParamCase(strings.Join(fragments, " ")), nil
}

// GroupPath returns the names of the group and its ancestors, outermost
// first. Root groups are skipped.
func (r *Resolver) GroupPath(groupID string) ([]string, error) {
	var path []string
	seen := make(map[string]bool)

	for id := groupID; id != ""; {
		if seen[id] {
			return nil, fmt.Errorf("%w at %q", ErrGroupCycle, id)
		}
		seen[id] = true

		g, ok := r.groups[id]
		if !ok {
			return nil, fmt.Errorf("%w: %q", ErrMissingGroup, id)
		}
		if !g.IsRoot {
			path = append(path, g.Name)
		}
		id = g.ParentGroupID
	}

	for i, j := 0, len(path)-1; i < j; i, j = i+1, j-1 {
		path[i], path[j] = path[j], path[i]
	}
	return path, nil
}

// ParamCase converts s to lowercase words joined by single dashes.
// Any rune that is not a letter or digit separates words, as do
// lower-to-upper camelCase transitions and the end of an acronym.
func ParamCase(s string) string {
	return lower.String(strings.Join(SplitWords(s), "-"))
}

// SplitWords splits s into words on separators and camelCase boundaries.
func SplitWords(s string) []string {
	runes := []rune(s)
	var words []string
	var current []rune

	flush := func() {
		if len(current) > 0 {
			words = append(words, string(current))
			current = current[:0]
		}
	}

	for i, r := range runes {
		if !unicode.IsLetter(r) && !unicode.IsDigit(r) {
			flush()
			continue
		}
		if unicode.IsUpper(r) && len(current) > 0 {
			prev := current[len(current)-1]
			nextLower := i+1 < len(runes) && unicode.IsLower(runes[i+1])
			if unicode.IsLower(prev) || unicode.IsDigit(prev) || (unicode.IsUpper(prev) && nextLower) {
				flush()
			}
		}
		current = append(current, r)
	}
	flush()

	return words
}
