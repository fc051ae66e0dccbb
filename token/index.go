/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

package token

// Index provides id lookup over a token collection.
type Index struct {
	byID  map[string]*Token
	order []*Token
}

// NewIndex creates an index over tokens. Later duplicates of an id win.
func NewIndex(tokens []*Token) *Index {
	idx := &Index{
		byID:  make(map[string]*Token, len(tokens)),
		order: tokens,
	}
	for _, tok := range tokens {
		idx.byID[tok.ID] = tok
	}
	return idx
}

// Get returns the token with the given id.
func (idx *Index) Get(id string) (*Token, bool) {
	tok, ok := idx.byID[id]
	return tok, ok
}

// Len returns the number of distinct token ids.
func (idx *Index) Len() int {
	return len(idx.byID)
}

// All returns the indexed tokens in their original order.
func (idx *Index) All() []*Token {
	return idx.order
}
