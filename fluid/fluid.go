/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

// Package fluid computes fluid typography clamp() expressions that scale a
// font size linearly between two viewport widths.
package fluid

import (
	"fmt"
	"math"
	"strings"

	"bennypowers.dev/tokencss/formatter"
	"bennypowers.dev/tokencss/naming"
	"bennypowers.dev/tokencss/token"
)

const (
	// Placeholder is replaced with the headline name in a variable template.
	Placeholder = "#NAME#"

	// MinSizeName and MaxSizeName identify the two members of a pair.
	MinSizeName = "Min Size"
	MaxSizeName = "Max Size"

	DefaultRootFontSize = 16
	DefaultScreenMin    = 450
	DefaultScreenMax    = 1920
)

// Pair holds the pixel font sizes of one headline group.
type Pair struct {
	// GroupID is the parent group shared by both members.
	GroupID string

	// Name is the param-cased group name substituted into the template.
	Name string

	Min *float64
	Max *float64
}

// Complete reports whether both members were found.
func (p Pair) Complete() bool {
	return p.Min != nil && p.Max != nil
}

// Bounds is the viewport range in pixels over which sizes interpolate.
type Bounds struct {
	Min float64
	Max float64
}

// DefaultBounds returns the fallback viewport range.
func DefaultBounds() Bounds {
	return Bounds{Min: DefaultScreenMin, Max: DefaultScreenMax}
}

// Clamp returns clamp(minRem, intercept + slope vw, maxRem) for a complete
// pair. A viewport range whose max does not exceed its min yields
// ErrDegenerateRange.
func Clamp(p Pair, b Bounds, rootFontSize float64) (string, error) {
	if !p.Complete() {
		return "", fmt.Errorf("%w: %q", ErrIncompletePair, p.Name)
	}
	if rootFontSize <= 0 {
		rootFontSize = DefaultRootFontSize
	}

	minVW := b.Min / rootFontSize
	maxVW := b.Max / rootFontSize
	if maxVW <= minVW {
		return "", fmt.Errorf("%w: screen range %gpx to %gpx is empty", ErrDegenerateRange, b.Min, b.Max)
	}

	minRem := *p.Min / rootFontSize
	maxRem := *p.Max / rootFontSize
	slope := (maxRem - minRem) / (maxVW - minVW)
	intercept := minRem - minVW*slope

	for _, v := range []float64{minRem, maxRem, slope, intercept} {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return "", fmt.Errorf("%w: non-finite interpolation for %q", ErrDegenerateRange, p.Name)
		}
	}

	return fmt.Sprintf("clamp(%srem, %srem + %svw, %srem)",
		formatter.FormatNumber(minRem),
		formatter.FormatNumber(intercept),
		formatter.FormatNumber(slope*100),
		formatter.FormatNumber(maxRem),
	), nil
}

// CollectPairs pairs the "Min Size" and "Max Size" font size tokens whose
// origin contains marker, keyed by parent group. Pairs are returned in the
// order their groups are first encountered; encounter order within a group
// does not matter. Tokens whose group is unknown or unnamed are ignored.
func CollectPairs(tokens []*token.Token, groups []*token.Group, marker string) []Pair {
	byID := token.GroupsByID(groups)
	index := make(map[string]int)
	var pairs []Pair

	for _, tok := range tokens {
		if !isSizeKind(tok.Kind) || !tok.OriginContains(marker) {
			continue
		}
		if tok.Name != MinSizeName && tok.Name != MaxSizeName {
			continue
		}
		measure, ok := tok.Value.(*token.MeasureValue)
		if !ok || measure.IsReference() {
			continue
		}
		group, ok := byID[tok.ParentGroupID]
		if !ok || group.Name == "" {
			continue
		}

		i, seen := index[group.ID]
		if !seen {
			i = len(pairs)
			index[group.ID] = i
			pairs = append(pairs, Pair{GroupID: group.ID, Name: naming.ParamCase(group.Name)})
		}

		v := measure.Measure.Measure
		if tok.Name == MinSizeName {
			pairs[i].Min = &v
		} else {
			pairs[i].Max = &v
		}
	}
	return pairs
}

// ScreenBounds reads the viewport range from the first tokens whose origin
// contains maxMarker and minMarker. Missing markers fall back to
// DefaultBounds; found reports whether both were present.
func ScreenBounds(tokens []*token.Token, maxMarker, minMarker string) (b Bounds, found bool) {
	b = DefaultBounds()
	maxV, maxOK := markerValue(tokens, maxMarker)
	minV, minOK := markerValue(tokens, minMarker)
	if maxOK {
		b.Max = maxV
	}
	if minOK {
		b.Min = minV
	}
	return b, maxOK && minOK
}

func markerValue(tokens []*token.Token, marker string) (float64, bool) {
	if marker == "" {
		return 0, false
	}
	for _, tok := range tokens {
		if !isSizeKind(tok.Kind) || !tok.OriginContains(marker) {
			continue
		}
		if m, ok := tok.Value.(*token.MeasureValue); ok && !m.IsReference() {
			return m.Measure.Measure, true
		}
	}
	return 0, false
}

// isSizeKind matches the kinds fluid markers are authored as.
func isSizeKind(k token.Kind) bool {
	return k == token.KindFontSize || k == token.KindDimension
}

// Options configures a Calculator.
type Options struct {
	// Template names each variable and contains Placeholder exactly once,
	// e.g. "--typography-#NAME#-size-fluid".
	Template string

	// Prefix is the global prefix placed before the templated name.
	Prefix string

	RootFontSize float64
}

// Calculator renders fluid declarations with a fixed template.
type Calculator struct {
	opts Options
}

// New validates opts and returns a Calculator.
func New(opts Options) (*Calculator, error) {
	if strings.Count(opts.Template, Placeholder) != 1 {
		return nil, fmt.Errorf("%w: %q must contain %s exactly once", ErrInvalidTemplate, opts.Template, Placeholder)
	}
	if opts.RootFontSize == 0 {
		opts.RootFontSize = DefaultRootFontSize
	}
	if opts.RootFontSize < 0 {
		return nil, fmt.Errorf("%w: root font size %g", ErrDegenerateRange, opts.RootFontSize)
	}
	return &Calculator{opts: opts}, nil
}

// Name returns the variable name for a pair, without the leading "--".
func (c *Calculator) Name(p Pair) string {
	name := strings.TrimPrefix(strings.Replace(c.opts.Template, Placeholder, p.Name, 1), "--")
	if c.opts.Prefix == "" {
		return name
	}
	return naming.ParamCase(c.opts.Prefix) + "-" + name
}

// Declaration renders one indented declaration for a complete pair.
func (c *Calculator) Declaration(p Pair, b Bounds) (string, error) {
	value, err := Clamp(p, b, c.opts.RootFontSize)
	if err != nil {
		return "", err
	}
	return formatter.Declare(c.Name(p), value), nil
}

// Declarations renders every complete pair in order. Incomplete pairs are
// skipped; callers that want to report them check Pair.Complete.
func (c *Calculator) Declarations(pairs []Pair, b Bounds) ([]string, error) {
	var lines []string
	for _, p := range pairs {
		if !p.Complete() {
			continue
		}
		line, err := c.Declaration(p, b)
		if err != nil {
			return nil, err
		}
		lines = append(lines, line)
	}
	return lines, nil
}
