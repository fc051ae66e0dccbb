/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

// Package export assembles the semantics, components and typography
// stylesheets from a token snapshot.
package export

import (
	"fmt"
	"time"

	"bennypowers.dev/tokencss/classify"
	"bennypowers.dev/tokencss/config"
	"bennypowers.dev/tokencss/fluid"
	"bennypowers.dev/tokencss/formatter"
	"bennypowers.dev/tokencss/internal/logger"
	"bennypowers.dev/tokencss/naming"
	"bennypowers.dev/tokencss/resolver"
	"bennypowers.dev/tokencss/token"
)

// Typography section prefixes.
const (
	HeadingPrefix = "typography-heading"
	BodyPrefix    = "typography"
)

// Options configures an Exporter beyond its config.
type Options struct {
	// Now stamps the disclaimer. Defaults to time.Now.
	Now func() time.Time

	// Warn reports recoverable data problems. Defaults to logger.Warn.
	Warn func(format string, args ...any)
}

// Exporter turns token snapshots into stylesheets. It holds no state
// between runs.
type Exporter struct {
	cfg        *config.Config
	classifier *classify.Classifier
	fluid      *fluid.Calculator
	semantic   []Section
	component  []Section
	rewrite    formatter.Rewrite
	now        func() time.Time
	warn       func(format string, args ...any)
}

// New validates cfg and creates an Exporter.
func New(cfg *config.Config, opts Options) (*Exporter, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	calc, err := fluid.New(fluid.Options{
		Template:     cfg.Fluid.CSSVariableTemplate,
		Prefix:       cfg.Prefix,
		RootFontSize: cfg.Fluid.RootFontSize,
	})
	if err != nil {
		return nil, fmt.Errorf("%w: %w", config.ErrInvalidConfig, err)
	}
	unfiltered, err := cfg.UnfilteredTokenKinds()
	if err != nil {
		return nil, err
	}
	pattern, err := cfg.HeadingRewrite()
	if err != nil {
		return nil, err
	}

	e := &Exporter{
		cfg:        cfg,
		classifier: classify.New(cfg.SemanticCollectionNames, cfg.ComponentCollectionNames),
		fluid:      calc,
		semantic:   SemanticSections(unfiltered),
		component:  ComponentSections(),
		rewrite:    formatter.Rewrite{Pattern: pattern, Replacement: cfg.Typography.HeadingRewrite.Replacement},
		now:        opts.Now,
		warn:       opts.Warn,
	}
	if e.now == nil {
		e.now = time.Now
	}
	if e.warn == nil {
		e.warn = logger.Warn
	}
	return e, nil
}

// Classifier returns the classifier built from the config.
func (e *Exporter) Classifier() *classify.Classifier {
	return e.classifier
}

// Result holds the three generated documents. Either all are produced or
// Export fails.
type Result struct {
	Semantics  string
	Components string
	Typography string

	// TypographyTokens and Groups back the debug documents.
	TypographyTokens []*token.Token
	Groups           []*token.Group

	files config.FilesConfig
	debug bool
}

// run carries the per-export collaborators.
type run struct {
	*Exporter
	tokens []*token.Token
	groups []*token.Group
	format *formatter.Formatter
}

// Export renders tokens and groups. Unresolved references, reference
// cycles, dangling parent groups and duplicate names abort the export.
func (e *Exporter) Export(tokens []*token.Token, groups []*token.Group) (*Result, error) {
	if err := resolver.Check(tokens); err != nil {
		return nil, err
	}

	names := naming.NewResolver(groups, e.cfg.Prefix)
	r := &run{
		Exporter: e,
		tokens:   tokens,
		groups:   groups,
		format:   formatter.New(names, token.NewIndex(tokens), formatter.Options{HeadingRewrite: e.rewrite}),
	}
	r.warnUnknownCollections()

	header := ""
	if e.cfg.GenerateDisclaimer {
		header = Disclaimer(e.cfg.Disclaimer, e.now())
	}

	semantics, err := r.sections(e.cfg.Files.Semantics, e.semantic)
	if err != nil {
		return nil, err
	}
	components, err := r.sections(e.cfg.Files.Components, e.component)
	if err != nil {
		return nil, err
	}
	typography, body, err := r.typography()
	if err != nil {
		return nil, err
	}

	return &Result{
		Semantics:        semantics.render(header),
		Components:       components.render(header),
		Typography:       typography.render(header),
		TypographyTokens: body,
		Groups:           groups,
		files:            e.cfg.Files,
		debug:            e.cfg.Debug,
	}, nil
}

func (r *run) sections(name string, sections []Section) (*document, error) {
	doc := newDocument(name)
	for _, s := range sections {
		for _, tok := range s.Select(r.tokens, r.classifier) {
			block, err := r.format.Declaration(tok, s.Prefix)
			if err != nil {
				return nil, fmt.Errorf("%s: %w", name, err)
			}
			if err := doc.add(block); err != nil {
				return nil, err
			}
		}
	}
	return doc, nil
}

// typography renders fluid headings, fixed headings and body typography,
// and returns the body tokens for the debug output.
func (r *run) typography() (*document, []*token.Token, error) {
	name := r.cfg.Files.Typography
	doc := newDocument(name)

	lines, err := r.fluidLines()
	if err != nil {
		return nil, nil, fmt.Errorf("%s: %w", name, err)
	}
	for _, line := range lines {
		if err := doc.add(line); err != nil {
			return nil, nil, err
		}
	}

	typo := token.FilterByKind(r.tokens, token.KindTypography)

	for _, tok := range typo {
		if !r.isFixedHeading(tok) {
			continue
		}
		block, err := r.format.HeadingTypography(tok, HeadingPrefix)
		if err != nil {
			return nil, nil, fmt.Errorf("%s: %w", name, err)
		}
		if err := doc.add(block); err != nil {
			return nil, nil, err
		}
	}

	var body []*token.Token
	for _, tok := range typo {
		if marker := r.cfg.Typography.DisplayOriginMarker; marker != "" && tok.OriginContains(marker) {
			continue
		}
		body = append(body, tok)
		block, err := r.format.Typography(tok, BodyPrefix)
		if err != nil {
			return nil, nil, fmt.Errorf("%s: %w", name, err)
		}
		if err := doc.add(block); err != nil {
			return nil, nil, err
		}
	}

	return doc, body, nil
}

func (r *run) fluidLines() ([]string, error) {
	f := r.cfg.Fluid
	pairs := fluid.CollectPairs(r.tokens, r.groups, f.HeadlineMarker)
	if len(pairs) == 0 {
		return nil, nil
	}

	bounds, found := fluid.ScreenBounds(r.tokens, f.ScreenMaxTokenMarker, f.ScreenMinTokenMarker)
	if !found {
		r.warn("fluid screen markers %q/%q not found, using %gpx to %gpx",
			f.ScreenMinTokenMarker, f.ScreenMaxTokenMarker, bounds.Min, bounds.Max)
	}
	for _, p := range pairs {
		if !p.Complete() {
			r.warn("fluid heading %q has no %s or %s token, skipping", p.Name, fluid.MinSizeName, fluid.MaxSizeName)
		}
	}
	return r.fluid.Declarations(pairs, bounds)
}

// isFixedHeading reports whether the origin contains every fixed heading
// marker. With no markers configured nothing matches.
func (r *run) isFixedHeading(tok *token.Token) bool {
	markers := r.cfg.Typography.FixedHeadingOriginMarkers
	if len(markers) == 0 {
		return false
	}
	for _, m := range markers {
		if !tok.OriginContains(m) {
			return false
		}
	}
	return true
}

func (r *run) warnUnknownCollections() {
	for _, tok := range r.tokens {
		if _, tagged := tok.PropertyValue(classify.TokenSetProperty); tagged {
			continue
		}
		value, ok := tok.PropertyValue(classify.CollectionProperty)
		if ok && classify.CollectionName(tok) == "" {
			r.warn("token %q (%s) selects unknown collection option %v", tok.Name, tok.ID, value)
		}
	}
}
