/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

// Package config provides configuration loading for the CSS exporter.
package config

import (
	"errors"
	"fmt"
	"regexp"
	"strings"

	"bennypowers.dev/tokencss/token"
)

// ErrInvalidConfig indicates a configuration value that cannot be used.
var ErrInvalidConfig = errors.New("invalid configuration")

// DefaultDisclaimer is the header text written when disclaimers are enabled.
const DefaultDisclaimer = "This file was generated by tokencss, don't change by hand"

// Config represents the exporter configuration.
type Config struct {
	// Prefix is the global CSS variable prefix.
	Prefix string `yaml:"prefix" json:"prefix" toml:"prefix"`

	// Snapshots lists token snapshot files (paths or globs).
	Snapshots []string `yaml:"snapshots" json:"snapshots" toml:"snapshots"`

	// URL is a remote snapshot fetched over HTTP instead of Snapshots.
	URL string `yaml:"url" json:"url" toml:"url"`

	// Brand restricts the export to tokens and groups of one brand.
	Brand string `yaml:"brand" json:"brand" toml:"brand"`

	// Themes are applied in order before export.
	Themes []string `yaml:"themes" json:"themes" toml:"themes"`

	// OutDir is where the CSS documents are written.
	OutDir string `yaml:"outDir" json:"outDir" toml:"outDir"`

	// GenerateDisclaimer prefixes every document with a generated-file header.
	GenerateDisclaimer bool `yaml:"generateDisclaimer" json:"generateDisclaimer" toml:"generateDisclaimer"`

	// Disclaimer is the header text.
	Disclaimer string `yaml:"disclaimer" json:"disclaimer" toml:"disclaimer"`

	// SemanticCollectionNames are Collection option names treated as semantic.
	SemanticCollectionNames []string `yaml:"semanticCollectionNames" json:"semanticCollectionNames" toml:"semanticCollectionNames"`

	// ComponentCollectionNames are Collection option names treated as component.
	ComponentCollectionNames []string `yaml:"componentCollectionNames" json:"componentCollectionNames" toml:"componentCollectionNames"`

	// UnfilteredKinds are emitted into the semantics document without
	// classification.
	UnfilteredKinds []string `yaml:"unfilteredKinds" json:"unfilteredKinds" toml:"unfilteredKinds"`

	Fluid      FluidConfig      `yaml:"fluid" json:"fluid" toml:"fluid"`
	Typography TypographyConfig `yaml:"typography" json:"typography" toml:"typography"`
	Files      FilesConfig      `yaml:"files" json:"files" toml:"files"`

	// Debug also writes the JSON debug documents.
	Debug bool `yaml:"debug" json:"debug" toml:"debug"`
}

// FluidConfig configures fluid heading sizes.
type FluidConfig struct {
	ScreenMaxTokenMarker string  `yaml:"screenMaxTokenMarker" json:"screenMaxTokenMarker" toml:"screenMaxTokenMarker"`
	ScreenMinTokenMarker string  `yaml:"screenMinTokenMarker" json:"screenMinTokenMarker" toml:"screenMinTokenMarker"`
	HeadlineMarker       string  `yaml:"headlineMarker" json:"headlineMarker" toml:"headlineMarker"`
	CSSVariableTemplate  string  `yaml:"cssVariableTemplate" json:"cssVariableTemplate" toml:"cssVariableTemplate"`
	RootFontSize         float64 `yaml:"rootFontSize" json:"rootFontSize" toml:"rootFontSize"`
}

// TypographyConfig configures heading and body typography selection.
type TypographyConfig struct {
	// HeadingRewrite is applied to fixed heading variable names.
	HeadingRewrite RewriteConfig `yaml:"headingRewrite" json:"headingRewrite" toml:"headingRewrite"`

	// FixedHeadingOriginMarkers must all appear in a fixed heading's origin.
	FixedHeadingOriginMarkers []string `yaml:"fixedHeadingOriginMarkers" json:"fixedHeadingOriginMarkers" toml:"fixedHeadingOriginMarkers"`

	// DisplayOriginMarker excludes tokens from body typography.
	DisplayOriginMarker string `yaml:"displayOriginMarker" json:"displayOriginMarker" toml:"displayOriginMarker"`
}

// RewriteConfig is a regular expression and its replacement.
type RewriteConfig struct {
	Pattern     string `yaml:"pattern" json:"pattern" toml:"pattern"`
	Replacement string `yaml:"replacement" json:"replacement" toml:"replacement"`
}

// FilesConfig names the output documents.
type FilesConfig struct {
	Semantics  string `yaml:"semantics" json:"semantics" toml:"semantics"`
	Components string `yaml:"components" json:"components" toml:"components"`
	Typography string `yaml:"typography" json:"typography" toml:"typography"`
}

// Default returns a config with default values.
func Default() *Config {
	return &Config{
		OutDir:     ".",
		Disclaimer: DefaultDisclaimer,
		SemanticCollectionNames: []string{
			"02 Number tokens",
			"03 Semantic colors",
			"04 Semantic tokens",
		},
		ComponentCollectionNames: []string{"05 Components"},
		UnfilteredKinds: []string{
			string(token.KindGradient),
			string(token.KindShadow),
			string(token.KindBlur),
			string(token.KindRadius),
		},
		Fluid: FluidConfig{
			ScreenMaxTokenMarker: "Fluid/Screen Max",
			ScreenMinTokenMarker: "Fluid/Screen Min",
			HeadlineMarker:       "Heading",
			CSSVariableTemplate:  "--typography-#NAME#-size-fluid",
			RootFontSize:         16,
		},
		Typography: TypographyConfig{
			HeadingRewrite:            RewriteConfig{Pattern: "display-", Replacement: ""},
			FixedHeadingOriginMarkers: []string{"Display", "Md"},
			DisplayOriginMarker:       "Display",
		},
		Files: FilesConfig{
			Semantics:  "semantics.css",
			Components: "components.css",
			Typography: "typography.css",
		},
	}
}

// Validate reports the first unusable value.
func (c *Config) Validate() error {
	if strings.Count(c.Fluid.CSSVariableTemplate, "#NAME#") != 1 {
		return fmt.Errorf("%w: fluid.cssVariableTemplate %q must contain #NAME# exactly once", ErrInvalidConfig, c.Fluid.CSSVariableTemplate)
	}
	if c.Fluid.RootFontSize <= 0 {
		return fmt.Errorf("%w: fluid.rootFontSize must be positive, got %g", ErrInvalidConfig, c.Fluid.RootFontSize)
	}
	if _, err := c.HeadingRewrite(); err != nil {
		return err
	}
	if _, err := c.UnfilteredTokenKinds(); err != nil {
		return err
	}
	for name, file := range map[string]string{
		"files.semantics":  c.Files.Semantics,
		"files.components": c.Files.Components,
		"files.typography": c.Files.Typography,
	} {
		if file == "" {
			return fmt.Errorf("%w: %s is empty", ErrInvalidConfig, name)
		}
	}
	return nil
}

// HeadingRewrite compiles the heading rewrite pattern. An empty pattern
// yields a nil regexp.
func (c *Config) HeadingRewrite() (*regexp.Regexp, error) {
	if c.Typography.HeadingRewrite.Pattern == "" {
		return nil, nil
	}
	re, err := regexp.Compile(c.Typography.HeadingRewrite.Pattern)
	if err != nil {
		return nil, fmt.Errorf("%w: typography.headingRewrite.pattern: %w", ErrInvalidConfig, err)
	}
	return re, nil
}

// UnfilteredTokenKinds parses UnfilteredKinds.
func (c *Config) UnfilteredTokenKinds() ([]token.Kind, error) {
	kinds := make([]token.Kind, 0, len(c.UnfilteredKinds))
	for _, s := range c.UnfilteredKinds {
		k, err := token.ParseKind(s)
		if err != nil {
			return nil, fmt.Errorf("%w: unfilteredKinds: %w", ErrInvalidConfig, err)
		}
		kinds = append(kinds, k)
	}
	return kinds, nil
}
