/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

package token

import "encoding/json"

// Theme overrides the values of a subset of tokens.
type Theme struct {
	ID        string     `json:"id"`
	Name      string     `json:"name"`
	BrandID   string     `json:"brandId,omitempty"`
	Overrides []Override `json:"overriddenTokens,omitempty"`
}

// Override replaces the value of one token. Value is kept raw until the
// target token's kind is known.
type Override struct {
	TokenID string          `json:"id"`
	Value   json.RawMessage `json:"value"`
}
