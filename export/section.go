/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

package export

import (
	"slices"

	"golang.org/x/text/collate"
	"golang.org/x/text/language"

	"bennypowers.dev/tokencss/classify"
	"bennypowers.dev/tokencss/token"
)

// Bucket selects tokens by classification.
type Bucket int

const (
	// BucketNone keeps every token of the section's kind.
	BucketNone Bucket = iota
	BucketSemantic
	BucketComponent
)

func (b Bucket) String() string {
	switch b {
	case BucketSemantic:
		return "semantic"
	case BucketComponent:
		return "component"
	default:
		return "none"
	}
}

// ParseBucket accepts "semantic", "component" and "none".
func ParseBucket(s string) (Bucket, bool) {
	for _, b := range []Bucket{BucketNone, BucketSemantic, BucketComponent} {
		if b.String() == s {
			return b, true
		}
	}
	return BucketNone, false
}

// Section is one filter, sort and format pipeline within a document.
type Section struct {
	Kind   token.Kind
	Bucket Bucket

	// Prefix follows the global prefix in every name of the section.
	Prefix string

	// SortByName orders tokens by name instead of snapshot order.
	SortByName bool
}

// Select returns the tokens of the section's kind and bucket.
func (s Section) Select(tokens []*token.Token, c *classify.Classifier) []*token.Token {
	selected := token.FilterByKind(tokens, s.Kind)
	selected = slices.DeleteFunc(selected, func(tok *token.Token) bool {
		return !InBucket(c, tok, s.Bucket)
	})
	if s.SortByName {
		SortByName(selected)
	}
	return selected
}

// InBucket reports whether tok is selected by b.
func InBucket(c *classify.Classifier, tok *token.Token, b Bucket) bool {
	switch b {
	case BucketSemantic:
		return c.IsSemantic(tok)
	case BucketComponent:
		return c.IsComponent(tok)
	default:
		return true
	}
}

// SortByName stably sorts tokens by name with locale-aware collation.
func SortByName(tokens []*token.Token) {
	col := collate.New(language.Und)
	slices.SortStableFunc(tokens, func(a, b *token.Token) int {
		return col.CompareString(a.Name, b.Name)
	})
}

// SemanticSections lists the semantics document pipelines. Kinds in
// unfiltered skip classification.
func SemanticSections(unfiltered []token.Kind) []Section {
	bucket := func(k token.Kind) Bucket {
		if slices.Contains(unfiltered, k) {
			return BucketNone
		}
		return BucketSemantic
	}
	return []Section{
		{Kind: token.KindColor, Bucket: bucket(token.KindColor)},
		{Kind: token.KindDimension, Bucket: bucket(token.KindDimension), SortByName: true},
		{Kind: token.KindGradient, Bucket: bucket(token.KindGradient)},
		{Kind: token.KindShadow, Bucket: bucket(token.KindShadow)},
		{Kind: token.KindBlur, Bucket: bucket(token.KindBlur)},
		{Kind: token.KindRadius, Bucket: bucket(token.KindRadius)},
	}
}

// ComponentSections lists the components document pipelines.
func ComponentSections() []Section {
	return []Section{
		{Kind: token.KindColor, Bucket: BucketComponent},
		{Kind: token.KindDimension, Bucket: BucketComponent},
		{Kind: token.KindRadius, Bucket: BucketComponent},
		{Kind: token.KindFontWeight, Bucket: BucketComponent},
		{Kind: token.KindString, Bucket: BucketComponent},
		{Kind: token.KindSize, Bucket: BucketComponent},
	}
}
