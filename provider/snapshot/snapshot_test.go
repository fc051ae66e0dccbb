/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

package snapshot_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"bennypowers.dev/tokencss/internal/mapfs"
	"bennypowers.dev/tokencss/provider"
	"bennypowers.dev/tokencss/provider/snapshot"
	"bennypowers.dev/tokencss/token"
)

const jsonSnapshot = `{
	"designSystemId": "ds",
	"versionId": "v1",
	"groups": [{"id": "g1", "name": "Brand"}],
	"tokens": [
		{"id": "t1", "name": "Primary", "tokenType": "Color", "parentGroupId": "g1",
		 "value": {"color": {"r": 255, "g": 0, "b": 0}}}
	],
	"themes": [
		{"id": "dark", "name": "Dark", "overriddenTokens": [
			{"id": "t1", "value": {"color": "#000"}},
			{"id": "elsewhere", "value": {"color": "#fff"}}
		]}
	]
}`

const jsoncSnapshot = `{
	// comments are allowed
	"designSystemId": "ds",
	"groups": [{"id": "g2", "name": "Spacing",},],
	"tokens": [
		/* trailing commas too */
		{"id": "t2", "name": "Small", "tokenType": "Dimension", "parentGroupId": "g2",
		 "value": {"measure": 4, "unit": "Pixels"},},
	],
}`

const yamlSnapshot = `
designSystemId: ds
versionId: v1
groups:
  - id: g3
    name: Type
tokens:
  - id: t3
    name: Weight
    tokenType: FontWeight
    parentGroupId: g3
    value:
      text: "600"
`

func TestFormatFromPath(t *testing.T) {
	assert.Equal(t, snapshot.FormatJSON, snapshot.FormatFromPath("a/b.json"))
	assert.Equal(t, snapshot.FormatJSONC, snapshot.FormatFromPath("b.jsonc"))
	assert.Equal(t, snapshot.FormatYAML, snapshot.FormatFromPath("b.YML"))
	assert.Equal(t, snapshot.FormatYAML, snapshot.FormatFromPath("https://x.test/s.yaml?token=1"))
	assert.Equal(t, snapshot.FormatJSON, snapshot.FormatFromPath("snapshot"))
}

func TestOpen_MergesFormats(t *testing.T) {
	mfs := mapfs.New()
	mfs.AddFile("/s/a.json", jsonSnapshot, 0644)
	mfs.AddFile("/s/b.jsonc", jsoncSnapshot, 0644)
	mfs.AddFile("/s/c.yaml", yamlSnapshot, 0644)

	p, err := snapshot.Open(mfs, "/s/a.json", "/s/b.jsonc", "/s/c.yaml")
	require.NoError(t, err)

	ctx := context.Background()
	ref := provider.VersionRef{DesignSystemID: "ds", VersionID: "v1"}

	tokens, err := p.Tokens(ctx, ref)
	require.NoError(t, err)
	require.Len(t, tokens, 3)
	assert.Equal(t, token.KindColor, tokens[0].Kind)
	assert.Equal(t, 4.0, tokens[1].Value.(*token.MeasureValue).Measure.Measure)
	assert.Equal(t, "600", tokens[2].Value.(*token.TextValue).Text)

	groups, err := p.TokenGroups(ctx, ref)
	require.NoError(t, err)
	assert.Len(t, groups, 3)

	themes, err := p.TokenThemes(ctx, ref)
	require.NoError(t, err)
	require.Len(t, themes, 1)
	assert.Equal(t, "dark", themes[0].ID)
}

func TestOpen_VersionConflict(t *testing.T) {
	mfs := mapfs.New()
	mfs.AddFile("/a.json", `{"designSystemId": "one", "tokens": [], "groups": []}`, 0644)
	mfs.AddFile("/b.json", `{"designSystemId": "two", "tokens": [], "groups": []}`, 0644)

	_, err := snapshot.Open(mfs, "/a.json", "/b.json")
	assert.ErrorIs(t, err, snapshot.ErrVersionMismatch)
}

func TestOpen_Invalid(t *testing.T) {
	mfs := mapfs.New()
	mfs.AddFile("/bad.json", `{"tokens": [{"id": "x", "tokenType": "Nope", "value": 1}]}`, 0644)

	_, err := snapshot.Open(mfs, "/bad.json")
	assert.ErrorIs(t, err, snapshot.ErrInvalidSnapshot)

	_, err = snapshot.Open(mfs, "/missing.json")
	assert.Error(t, err)
}

func TestProvider_RefMismatch(t *testing.T) {
	doc, err := snapshot.Parse([]byte(jsonSnapshot), snapshot.FormatJSON)
	require.NoError(t, err)
	p, err := snapshot.New(doc)
	require.NoError(t, err)

	_, err = p.Tokens(context.Background(), provider.VersionRef{DesignSystemID: "other"})
	assert.ErrorIs(t, err, snapshot.ErrVersionMismatch)

	_, err = p.Tokens(context.Background(), provider.VersionRef{})
	assert.NoError(t, err)
}

func TestApplyThemes(t *testing.T) {
	doc, err := snapshot.Parse([]byte(jsonSnapshot), snapshot.FormatJSON)
	require.NoError(t, err)
	p, err := snapshot.New(doc)
	require.NoError(t, err)

	ctx := context.Background()
	tokens, err := p.Tokens(ctx, provider.VersionRef{})
	require.NoError(t, err)
	themes, err := p.TokenThemes(ctx, provider.VersionRef{})
	require.NoError(t, err)

	themed, err := p.ApplyThemes(ctx, tokens, themes)
	require.NoError(t, err)
	require.Len(t, themed, 1)

	assert.Equal(t, token.RGB{}, themed[0].Value.(*token.ColorValue).Color)
	assert.Equal(t, token.RGB{R: 255}, tokens[0].Value.(*token.ColorValue).Color, "input must not be mutated")
	assert.Equal(t, tokens[0].Name, themed[0].Name)
}

func TestApplyThemes_InvalidOverride(t *testing.T) {
	p, err := snapshot.New()
	require.NoError(t, err)

	tokens := []*token.Token{{ID: "t", Kind: token.KindColor, Value: &token.ColorValue{}}}
	themes := []*token.Theme{{ID: "broken", Overrides: []token.Override{{TokenID: "t", Value: json.RawMessage(`{"opacity": 1}`)}}}}

	_, err = p.ApplyThemes(context.Background(), tokens, themes)
	assert.ErrorIs(t, err, token.ErrInvalidValue)
}

func TestFetch(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/snapshot":
			_, _ = w.Write([]byte(yamlSnapshot))
		default:
			_, _ = w.Write([]byte(jsonSnapshot))
		}
	}))
	defer srv.Close()

	fetcher := snapshot.NewHTTPFetcher(snapshot.DefaultMaxSize)

	p, err := snapshot.Fetch(context.Background(), fetcher, srv.URL+"/snapshot.json")
	require.NoError(t, err)
	assert.Equal(t, "ds", p.Document().DesignSystemID)
	assert.Len(t, p.Document().Tokens, 1)

	// No extension and a non-JSON body is read as YAML.
	p, err = snapshot.Fetch(context.Background(), fetcher, srv.URL+"/snapshot")
	require.NoError(t, err)
	assert.Equal(t, "t3", p.Document().Tokens[0].ID)
}
