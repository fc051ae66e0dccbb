/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

// Package snapshot provides a token provider backed by exported snapshot
// documents in JSON, JSON with comments, or YAML.
package snapshot

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"path/filepath"
	"strings"

	"github.com/tidwall/jsonc"
	"gopkg.in/yaml.v3"

	tcfs "bennypowers.dev/tokencss/fs"
	"bennypowers.dev/tokencss/provider"
	"bennypowers.dev/tokencss/token"
)

// Format is the encoding of a snapshot document.
type Format int

const (
	FormatJSON Format = iota
	FormatJSONC
	FormatYAML
)

// FormatFromPath infers the format from a file extension or URL path.
// Unknown extensions are treated as JSON.
func FormatFromPath(path string) Format {
	if i := strings.IndexAny(path, "?#"); i >= 0 {
		path = path[:i]
	}
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return FormatYAML
	case ".jsonc":
		return FormatJSONC
	default:
		return FormatJSON
	}
}

// Document is one exported snapshot of a design system version.
type Document struct {
	DesignSystemID string         `json:"designSystemId,omitempty"`
	VersionID      string         `json:"versionId,omitempty"`
	Tokens         []*token.Token `json:"tokens"`
	Groups         []*token.Group `json:"groups"`
	Themes         []*token.Theme `json:"themes,omitempty"`
}

// Ref returns the version this document describes.
func (d *Document) Ref() provider.VersionRef {
	return provider.VersionRef{DesignSystemID: d.DesignSystemID, VersionID: d.VersionID}
}

// Parse decodes a snapshot document.
func Parse(data []byte, format Format) (*Document, error) {
	switch format {
	case FormatJSONC:
		data = jsonc.ToJSON(data)
	case FormatYAML:
		converted, err := yamlToJSON(data)
		if err != nil {
			return nil, fmt.Errorf("%w: %w", ErrInvalidSnapshot, err)
		}
		data = converted
	}

	doc := &Document{}
	if err := json.Unmarshal(data, doc); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidSnapshot, err)
	}
	return doc, nil
}

// yamlToJSON re-encodes YAML as JSON so that token values share one decoder.
func yamlToJSON(data []byte) ([]byte, error) {
	var v any
	if err := yaml.Unmarshal(data, &v); err != nil {
		return nil, err
	}
	return json.Marshal(normalizeYAML(v))
}

func normalizeYAML(v any) any {
	switch t := v.(type) {
	case map[string]any:
		for k, val := range t {
			t[k] = normalizeYAML(val)
		}
		return t
	case map[any]any:
		m := make(map[string]any, len(t))
		for k, val := range t {
			m[fmt.Sprint(k)] = normalizeYAML(val)
		}
		return m
	case []any:
		for i, val := range t {
			t[i] = normalizeYAML(val)
		}
		return t
	default:
		return v
	}
}

// Provider serves tokens from one or more merged snapshot documents.
type Provider struct {
	doc *Document
}

var _ provider.Provider = (*Provider)(nil)

// New merges docs in order. Every document that names a design system or
// version must agree with the others.
func New(docs ...*Document) (*Provider, error) {
	merged := &Document{}
	for _, doc := range docs {
		if err := mergeRef(merged, doc); err != nil {
			return nil, err
		}
		merged.Tokens = append(merged.Tokens, doc.Tokens...)
		merged.Groups = append(merged.Groups, doc.Groups...)
		merged.Themes = append(merged.Themes, doc.Themes...)
	}
	return &Provider{doc: merged}, nil
}

func mergeRef(dst, src *Document) error {
	if src.DesignSystemID != "" {
		if dst.DesignSystemID != "" && dst.DesignSystemID != src.DesignSystemID {
			return fmt.Errorf("%w: design systems %q and %q", ErrVersionMismatch, dst.DesignSystemID, src.DesignSystemID)
		}
		dst.DesignSystemID = src.DesignSystemID
	}
	if src.VersionID != "" {
		if dst.VersionID != "" && dst.VersionID != src.VersionID {
			return fmt.Errorf("%w: versions %q and %q", ErrVersionMismatch, dst.VersionID, src.VersionID)
		}
		dst.VersionID = src.VersionID
	}
	return nil
}

// Open reads and merges snapshot files.
func Open(filesystem tcfs.FileSystem, paths ...string) (*Provider, error) {
	docs := make([]*Document, 0, len(paths))
	for _, path := range paths {
		data, err := filesystem.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("reading snapshot %s: %w", path, err)
		}
		doc, err := Parse(data, FormatFromPath(path))
		if err != nil {
			return nil, fmt.Errorf("%s: %w", path, err)
		}
		docs = append(docs, doc)
	}
	return New(docs...)
}

// Fetch retrieves and parses a remote snapshot.
func Fetch(ctx context.Context, fetcher Fetcher, url string) (*Provider, error) {
	data, err := fetcher.Fetch(ctx, url)
	if err != nil {
		return nil, err
	}
	format := FormatFromPath(url)
	if format == FormatJSON && !looksLikeJSON(data) {
		format = FormatYAML
	}
	doc, err := Parse(data, format)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", url, err)
	}
	return New(doc)
}

func looksLikeJSON(data []byte) bool {
	trimmed := bytes.TrimSpace(data)
	return len(trimmed) > 0 && (trimmed[0] == '{' || trimmed[0] == '[')
}

// Document returns the merged snapshot.
func (p *Provider) Document() *Document {
	return p.doc
}

func (p *Provider) check(ref provider.VersionRef) error {
	if ref.DesignSystemID != "" && p.doc.DesignSystemID != "" && ref.DesignSystemID != p.doc.DesignSystemID {
		return fmt.Errorf("%w: requested design system %q, snapshot has %q", ErrVersionMismatch, ref.DesignSystemID, p.doc.DesignSystemID)
	}
	if ref.VersionID != "" && p.doc.VersionID != "" && ref.VersionID != p.doc.VersionID {
		return fmt.Errorf("%w: requested version %q, snapshot has %q", ErrVersionMismatch, ref.VersionID, p.doc.VersionID)
	}
	return nil
}

// Tokens implements provider.Provider.
func (p *Provider) Tokens(ctx context.Context, ref provider.VersionRef) ([]*token.Token, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if err := p.check(ref); err != nil {
		return nil, err
	}
	return append([]*token.Token(nil), p.doc.Tokens...), nil
}

// TokenGroups implements provider.Provider.
func (p *Provider) TokenGroups(ctx context.Context, ref provider.VersionRef) ([]*token.Group, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if err := p.check(ref); err != nil {
		return nil, err
	}
	return append([]*token.Group(nil), p.doc.Groups...), nil
}

// TokenThemes implements provider.Provider.
func (p *Provider) TokenThemes(ctx context.Context, ref provider.VersionRef) ([]*token.Theme, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if err := p.check(ref); err != nil {
		return nil, err
	}
	return append([]*token.Theme(nil), p.doc.Themes...), nil
}

// ApplyThemes implements provider.Provider. Overridden tokens are copied;
// the input tokens are left untouched. Overrides for tokens not in the
// input are ignored.
func (p *Provider) ApplyThemes(ctx context.Context, tokens []*token.Token, themes []*token.Theme) ([]*token.Token, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	result := append([]*token.Token(nil), tokens...)
	position := make(map[string]int, len(result))
	for i, tok := range result {
		position[tok.ID] = i
	}

	for _, theme := range themes {
		for _, o := range theme.Overrides {
			i, ok := position[o.TokenID]
			if !ok {
				continue
			}
			tok := result[i]
			value, err := token.DecodeValue(tok.Kind, o.Value)
			if err != nil {
				return nil, fmt.Errorf("theme %q overriding %q: %w", theme.ID, tok.ID, err)
			}
			result[i] = tok.WithValue(value)
		}
	}
	return result, nil
}
