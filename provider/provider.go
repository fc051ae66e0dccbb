/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

// Package provider defines the source of token, group and theme snapshots.
package provider

import (
	"context"

	"bennypowers.dev/tokencss/token"
)

// VersionRef identifies one version of a design system.
type VersionRef struct {
	DesignSystemID string `json:"designSystemId"`
	VersionID      string `json:"versionId"`
}

// Provider supplies tokens, groups and themes, and applies themes.
// Implementations must not mutate the slices they are given.
type Provider interface {
	Tokens(ctx context.Context, ref VersionRef) ([]*token.Token, error)
	TokenGroups(ctx context.Context, ref VersionRef) ([]*token.Group, error)
	TokenThemes(ctx context.Context, ref VersionRef) ([]*token.Theme, error)

	// ApplyThemes returns tokens with theme overrides applied in order;
	// later themes win.
	ApplyThemes(ctx context.Context, tokens []*token.Token, themes []*token.Theme) ([]*token.Token, error)
}
