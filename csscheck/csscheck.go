/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

// Package csscheck parses generated stylesheets and reports syntax errors.
package csscheck

import (
	"errors"
	"fmt"

	tree_sitter "github.com/tree-sitter/go-tree-sitter"
	tree_sitter_css "github.com/tree-sitter/tree-sitter-css/bindings/go"
)

// ErrSyntax indicates a document tree-sitter-css could not parse cleanly.
var ErrSyntax = errors.New("css syntax error")

// Check parses doc and returns ErrSyntax with the 1-based line and column
// of the first error or missing node.
func Check(doc string) error {
	parser := tree_sitter.NewParser()
	defer parser.Close()

	if err := parser.SetLanguage(tree_sitter.NewLanguage(tree_sitter_css.Language())); err != nil {
		return fmt.Errorf("loading css grammar: %w", err)
	}

	tree := parser.Parse([]byte(doc), nil)
	if tree == nil {
		return fmt.Errorf("%w: parser returned no tree", ErrSyntax)
	}
	defer tree.Close()

	root := tree.RootNode()
	if !root.HasError() {
		return nil
	}

	if bad := firstError(root); bad != nil {
		pos := bad.StartPosition()
		what := "unexpected input"
		if bad.IsMissing() {
			what = "missing " + bad.Kind()
		}
		return fmt.Errorf("%w: %s at line %d, column %d", ErrSyntax, what, pos.Row+1, pos.Column+1)
	}
	return ErrSyntax
}

// firstError returns the first error or missing node in document order.
func firstError(n *tree_sitter.Node) *tree_sitter.Node {
	if n.IsError() || n.IsMissing() {
		return n
	}
	if !n.HasError() {
		return nil
	}
	for i := uint(0); i < n.ChildCount(); i++ {
		if bad := firstError(n.Child(i)); bad != nil {
			return bad
		}
	}
	return nil
}
