/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

// Package classify sorts tokens into the semantic and component buckets.
//
// A token's explicit "tokensSet" property wins when it is set; otherwise the
// display name of its "Collection" option is looked up in the configured
// collection name sets. The two predicates are computed independently, so a
// misconfigured token may be both or neither.
package classify

import (
	"bennypowers.dev/tokencss/token"
)

const (
	// TokenSetProperty is the property code name of the explicit tag.
	TokenSetProperty = "tokensSet"

	// CollectionProperty is the property code name of the collection select.
	CollectionProperty = "Collection"

	// SemanticTokenSet tags a token as semantic.
	SemanticTokenSet = "token-set-semantic"

	// ComponentTokenSet tags a token as component scoped.
	ComponentTokenSet = "token-set-component"
)

// Tag is the derived classification of a token.
type Tag struct {
	Semantic  bool
	Component bool
}

// Classifier decides bucket membership from configured collection names.
type Classifier struct {
	semantic  map[string]bool
	component map[string]bool
}

// New creates a classifier over the given collection display names.
func New(semanticCollections, componentCollections []string) *Classifier {
	return &Classifier{
		semantic:  toSet(semanticCollections),
		component: toSet(componentCollections),
	}
}

// IsSemantic reports whether tok belongs in the semantic bucket.
func (c *Classifier) IsSemantic(tok *token.Token) bool {
	return c.matches(tok, SemanticTokenSet, c.semantic)
}

// IsComponent reports whether tok belongs in the component bucket.
func (c *Classifier) IsComponent(tok *token.Token) bool {
	return c.matches(tok, ComponentTokenSet, c.component)
}

// Classify computes both predicates.
func (c *Classifier) Classify(tok *token.Token) Tag {
	return Tag{
		Semantic:  c.IsSemantic(tok),
		Component: c.IsComponent(tok),
	}
}

// CollectionName returns the display name of the token's selected
// collection option, or "" when it cannot be resolved.
func CollectionName(tok *token.Token) string {
	value, ok := tok.PropertyValue(CollectionProperty)
	if !ok {
		return ""
	}
	prop, ok := tok.Property(CollectionProperty)
	if !ok {
		return ""
	}
	option, ok := prop.Option(token.PropertyString(value))
	if !ok {
		return ""
	}
	return option.Name
}

func (c *Classifier) matches(tok *token.Token, sentinel string, collections map[string]bool) bool {
	if set, ok := tok.PropertyValue(TokenSetProperty); ok {
		return token.PropertyString(set) == sentinel
	}
	if _, ok := tok.PropertyValue(CollectionProperty); ok {
		name := CollectionName(tok)
		return name != "" && collections[name]
	}
	return false
}

func toSet(names []string) map[string]bool {
	set := make(map[string]bool, len(names))
	for _, n := range names {
		set[n] = true
	}
	return set
}
