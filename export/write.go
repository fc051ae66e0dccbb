/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

package export

import (
	"encoding/json"
	"fmt"
	"path/filepath"

	"bennypowers.dev/tokencss/fs"
	"bennypowers.dev/tokencss/token"
)

// Debug document names.
const (
	TypographyTokensFile = "typographyTokens.json"
	TokenGroupsFile      = "tokenGroups.json"
)

// File is one output document.
type File struct {
	Name    string
	Content []byte
}

// Files returns the stylesheets, followed by the debug documents when debug
// output is enabled.
func (r *Result) Files() ([]File, error) {
	files := []File{
		{Name: r.files.Semantics, Content: []byte(r.Semantics)},
		{Name: r.files.Components, Content: []byte(r.Components)},
		{Name: r.files.Typography, Content: []byte(r.Typography)},
	}
	if !r.debug {
		return files, nil
	}

	tokens := r.TypographyTokens
	if tokens == nil {
		tokens = []*token.Token{}
	}
	typo, err := json.MarshalIndent(tokens, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("encoding %s: %w", TypographyTokensFile, err)
	}
	groups := r.Groups
	if groups == nil {
		groups = []*token.Group{}
	}
	grp, err := json.MarshalIndent(groups, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("encoding %s: %w", TokenGroupsFile, err)
	}

	return append(files,
		File{Name: TypographyTokensFile, Content: append(typo, '\n')},
		File{Name: TokenGroupsFile, Content: append(grp, '\n')},
	), nil
}

// WriteFiles writes every document of r into dir and returns the written
// paths.
func WriteFiles(filesystem fs.FileSystem, dir string, r *Result) ([]string, error) {
	files, err := r.Files()
	if err != nil {
		return nil, err
	}
	if err := filesystem.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("creating %s: %w", dir, err)
	}

	paths := make([]string, 0, len(files))
	for _, f := range files {
		path := filepath.Join(dir, f.Name)
		if err := filesystem.WriteFile(path, f.Content, 0o644); err != nil {
			return nil, fmt.Errorf("writing %s: %w", path, err)
		}
		paths = append(paths, path)
	}
	return paths, nil
}
