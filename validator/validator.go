/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

// Package validator reports consistency problems in a token snapshot before
// it is exported.
package validator

import (
	"errors"
	"fmt"
	"strings"

	"bennypowers.dev/tokencss/classify"
	"bennypowers.dev/tokencss/config"
	"bennypowers.dev/tokencss/fluid"
	"bennypowers.dev/tokencss/naming"
	"bennypowers.dev/tokencss/resolver"
	"bennypowers.dev/tokencss/token"
)

// ValidationError represents a snapshot consistency error.
type ValidationError struct {
	// ID is the token or group the error is about.
	ID string
	// Path is the variable name or group path of the problematic element.
	Path string
	// Message describes what's wrong.
	Message string
	// Suggestion provides an actionable fix.
	Suggestion string
}

// Error implements the error interface.
func (e *ValidationError) Error() string {
	var sb strings.Builder
	if e.ID != "" {
		sb.WriteString(e.ID)
		sb.WriteString(": ")
	}
	if e.Path != "" {
		sb.WriteString(e.Path)
		sb.WriteString(": ")
	}
	sb.WriteString(e.Message)
	if e.Suggestion != "" {
		sb.WriteString(" (")
		sb.WriteString(e.Suggestion)
		sb.WriteString(")")
	}
	return sb.String()
}

// Validate checks tokens and groups against cfg. Errors are reported for:
//   - groups or tokens whose parent group is missing
//   - cycles in the group hierarchy
//   - references to missing tokens, and reference cycles
//   - tokens of one kind that share a variable name
//   - tokens classified as both semantic and component
//   - fluid heading groups missing a min or max size
//   - a fluid screen range whose minimum is not below its maximum
func Validate(tokens []*token.Token, groups []*token.Group, cfg *config.Config) []ValidationError {
	var errs []ValidationError
	errs = append(errs, validateGroups(groups)...)
	errs = append(errs, validateReferences(tokens)...)
	errs = append(errs, validateNames(tokens, groups, cfg.Prefix)...)
	errs = append(errs, validateClassification(tokens, cfg)...)
	errs = append(errs, validateFluid(tokens, groups, cfg.Fluid)...)
	return errs
}

func validateGroups(groups []*token.Group) []ValidationError {
	var errs []ValidationError
	byID := token.GroupsByID(groups)
	names := naming.NewResolver(groups, "")

	for _, g := range groups {
		if g.ParentGroupID != "" {
			if _, ok := byID[g.ParentGroupID]; !ok {
				errs = append(errs, ValidationError{
					ID:         g.ID,
					Path:       g.Name,
					Message:    fmt.Sprintf("parent group %q not found", g.ParentGroupID),
					Suggestion: "re-export the snapshot or remove the group",
				})
				continue
			}
		}
		if _, err := names.GroupPath(g.ID); errors.Is(err, naming.ErrGroupCycle) {
			errs = append(errs, ValidationError{
				ID:      g.ID,
				Path:    g.Name,
				Message: "group hierarchy contains a cycle",
			})
		}
	}
	return errs
}

func validateReferences(tokens []*token.Token) []ValidationError {
	var errs []ValidationError
	graph := resolver.BuildDependencyGraph(tokens)

	missing := make(map[string]bool)
	for _, id := range graph.Missing() {
		missing[id] = true
	}
	for _, tok := range tokens {
		for _, ref := range tok.References() {
			if missing[ref] {
				errs = append(errs, ValidationError{
					ID:         tok.ID,
					Path:       tok.Name,
					Message:    fmt.Sprintf("references missing token %q", ref),
					Suggestion: "include the referenced token's snapshot",
				})
			}
		}
	}

	if cycle := graph.FindCycle(); cycle != nil {
		errs = append(errs, ValidationError{
			ID:      cycle[0],
			Message: "circular reference: " + strings.Join(cycle, " -> "),
		})
	}
	return errs
}

func validateNames(tokens []*token.Token, groups []*token.Group, prefix string) []ValidationError {
	var errs []ValidationError
	names := naming.NewResolver(groups, prefix)
	byKind := make(map[token.Kind]map[string]string)

	for _, tok := range tokens {
		name, err := names.Name(tok, "")
		if err != nil {
			if errors.Is(err, naming.ErrMissingGroup) {
				errs = append(errs, ValidationError{
					ID:         tok.ID,
					Path:       tok.Name,
					Message:    fmt.Sprintf("parent group %q not found", tok.ParentGroupID),
					Suggestion: "include the group in the snapshot",
				})
			}
			continue
		}

		seen, ok := byKind[tok.Kind]
		if !ok {
			seen = make(map[string]string)
			byKind[tok.Kind] = seen
		}
		if first, dup := seen[name]; dup {
			errs = append(errs, ValidationError{
				ID:         tok.ID,
				Path:       "--" + name,
				Message:    fmt.Sprintf("%s token shares its name with %q", tok.Kind, first),
				Suggestion: "rename one of the tokens",
			})
			continue
		}
		seen[name] = tok.ID
	}
	return errs
}

func validateClassification(tokens []*token.Token, cfg *config.Config) []ValidationError {
	var errs []ValidationError
	c := classify.New(cfg.SemanticCollectionNames, cfg.ComponentCollectionNames)
	for _, tok := range tokens {
		if tag := c.Classify(tok); tag.Semantic && tag.Component {
			errs = append(errs, ValidationError{
				ID:         tok.ID,
				Path:       tok.Name,
				Message:    fmt.Sprintf("collection %q is both semantic and component", classify.CollectionName(tok)),
				Suggestion: "list the collection in only one of semanticCollectionNames and componentCollectionNames",
			})
		}
	}
	return errs
}

func validateFluid(tokens []*token.Token, groups []*token.Group, cfg config.FluidConfig) []ValidationError {
	var errs []ValidationError
	for _, p := range fluid.CollectPairs(tokens, groups, cfg.HeadlineMarker) {
		if p.Complete() {
			continue
		}
		errs = append(errs, ValidationError{
			ID:         p.GroupID,
			Path:       p.Name,
			Message:    fmt.Sprintf("fluid heading needs both %q and %q tokens", fluid.MinSizeName, fluid.MaxSizeName),
			Suggestion: "add the missing size token",
		})
	}

	bounds, found := fluid.ScreenBounds(tokens, cfg.ScreenMaxTokenMarker, cfg.ScreenMinTokenMarker)
	if found && bounds.Min >= bounds.Max {
		errs = append(errs, ValidationError{
			Message:    fmt.Sprintf("fluid screen range %gpx to %gpx is empty", bounds.Min, bounds.Max),
			Suggestion: fmt.Sprintf("make %q smaller than %q", cfg.ScreenMinTokenMarker, cfg.ScreenMaxTokenMarker),
		})
	}
	return errs
}
