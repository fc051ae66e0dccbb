/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

package export

import (
	"fmt"
	"strings"
	"time"

	"github.com/muesli/reflow/wordwrap"
)

// DisclaimerWidth is the column limit of disclaimer comment lines.
const DisclaimerWidth = 80

// document accumulates the declarations of one :root block and rejects
// repeated variable names.
type document struct {
	name  string
	lines []string
	seen  map[string]bool
}

func newDocument(name string) *document {
	return &document{name: name, seen: make(map[string]bool)}
}

// add appends a block of one or more declaration lines.
func (d *document) add(block string) error {
	if block == "" {
		return nil
	}
	for _, line := range strings.Split(block, "\n") {
		if strings.TrimSpace(line) == "" {
			continue
		}
		name := declaredName(line)
		if name != "" {
			if d.seen[name] {
				return fmt.Errorf("%w: --%s in %s", ErrDuplicateName, name, d.name)
			}
			d.seen[name] = true
		}
		d.lines = append(d.lines, line)
	}
	return nil
}

// render wraps the declarations in :root, after the optional header.
func (d *document) render(header string) string {
	var sb strings.Builder
	sb.WriteString(header)
	sb.WriteString(":root {\n")
	for _, line := range d.lines {
		sb.WriteString(line)
		sb.WriteByte('\n')
	}
	sb.WriteString("}\n")
	return sb.String()
}

// declaredName extracts "name" from "  --name: value;".
func declaredName(line string) string {
	line = strings.TrimSpace(line)
	if !strings.HasPrefix(line, "--") {
		return ""
	}
	name, _, ok := strings.Cut(line[2:], ":")
	if !ok {
		return ""
	}
	return strings.TrimSpace(name)
}

// Disclaimer renders the generated-file header: text wrapped into comment
// lines, then the generation time in UTC.
func Disclaimer(text string, at time.Time) string {
	var sb strings.Builder
	// "/* " and " */" take six columns.
	wrapped := wordwrap.String(strings.Join(strings.Fields(text), " "), DisclaimerWidth-6)
	for _, line := range strings.Split(wrapped, "\n") {
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		sb.WriteString("/* ")
		sb.WriteString(strings.ReplaceAll(line, "*/", "* /"))
		sb.WriteString(" */\n")
	}
	fmt.Fprintf(&sb, "/* Generated at %s */\n", at.UTC().Format(time.RFC3339))
	return sb.String()
}
