/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

// Package load provides a high-level API for loading the token snapshot an
// export runs over: opening a provider, filtering by brand and applying
// themes.
package load

import (
	"context"
	"errors"
	"fmt"
	"slices"
	"time"

	"bennypowers.dev/tokencss/fs"
	"bennypowers.dev/tokencss/provider"
	"bennypowers.dev/tokencss/provider/snapshot"
	"bennypowers.dev/tokencss/token"
)

var (
	// ErrThemeNotFound indicates a requested theme the design system does
	// not define.
	ErrThemeNotFound = errors.New("unable to apply theme which doesn't exist in the system")

	// ErrNoSource indicates neither snapshot paths nor a URL were given.
	ErrNoSource = errors.New("no snapshot source given")
)

// Invocation selects what to load.
type Invocation struct {
	Ref provider.VersionRef

	// BrandID, when set, keeps only tokens and groups of that brand.
	BrandID string

	// ThemeIDs are applied in order.
	ThemeIDs []string
}

// Result is the snapshot an export runs over.
type Result struct {
	Tokens []*token.Token
	Groups []*token.Group
}

// Load fetches tokens and groups from p, filters them by brand and applies
// the requested themes.
func Load(ctx context.Context, p provider.Provider, inv Invocation) (*Result, error) {
	tokens, err := p.Tokens(ctx, inv.Ref)
	if err != nil {
		return nil, fmt.Errorf("fetching tokens: %w", err)
	}
	groups, err := p.TokenGroups(ctx, inv.Ref)
	if err != nil {
		return nil, fmt.Errorf("fetching token groups: %w", err)
	}

	if inv.BrandID != "" {
		tokens = slices.DeleteFunc(slices.Clone(tokens), func(t *token.Token) bool {
			return len(t.Properties) == 0 || t.BrandID != inv.BrandID
		})
		groups = slices.DeleteFunc(slices.Clone(groups), func(g *token.Group) bool {
			return g.BrandID != inv.BrandID
		})
	}

	if len(inv.ThemeIDs) > 0 {
		available, err := p.TokenThemes(ctx, inv.Ref)
		if err != nil {
			return nil, fmt.Errorf("fetching token themes: %w", err)
		}
		themes, err := selectThemes(available, inv.ThemeIDs)
		if err != nil {
			return nil, err
		}
		tokens, err = p.ApplyThemes(ctx, tokens, themes)
		if err != nil {
			return nil, fmt.Errorf("applying themes: %w", err)
		}
	}

	return &Result{Tokens: tokens, Groups: groups}, nil
}

func selectThemes(available []*token.Theme, ids []string) ([]*token.Theme, error) {
	byID := make(map[string]*token.Theme, len(available))
	for _, th := range available {
		byID[th.ID] = th
	}
	themes := make([]*token.Theme, 0, len(ids))
	for _, id := range ids {
		th, ok := byID[id]
		if !ok {
			return nil, fmt.Errorf("%w: %q", ErrThemeNotFound, id)
		}
		themes = append(themes, th)
	}
	return themes, nil
}

// Source locates snapshot documents.
type Source struct {
	// FS reads Paths. Defaults to the OS filesystem.
	FS fs.FileSystem

	// Paths are local snapshot files, merged in order.
	Paths []string

	// URL is a remote snapshot; it takes precedence over Paths.
	URL string

	// Fetcher retrieves URL. Defaults to an HTTPFetcher.
	Fetcher snapshot.Fetcher

	// FetchTimeout bounds the fetch. Defaults to snapshot.DefaultTimeout.
	FetchTimeout time.Duration
}

// Open returns a snapshot provider for src.
func Open(ctx context.Context, src Source) (*snapshot.Provider, error) {
	if src.URL != "" {
		fetcher := src.Fetcher
		if fetcher == nil {
			fetcher = snapshot.NewHTTPFetcher(snapshot.DefaultMaxSize)
		}
		timeout := src.FetchTimeout
		if timeout == 0 {
			timeout = snapshot.DefaultTimeout
		}
		ctx, cancel := context.WithTimeout(ctx, timeout)
		defer cancel()
		return snapshot.Fetch(ctx, fetcher, src.URL)
	}

	if len(src.Paths) == 0 {
		return nil, ErrNoSource
	}
	filesystem := src.FS
	if filesystem == nil {
		filesystem = fs.NewOSFileSystem()
	}
	return snapshot.Open(filesystem, src.Paths...)
}
