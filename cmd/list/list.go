/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

// Package list provides the list command for tokencss.
package list

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"bennypowers.dev/tokencss/classify"
	"bennypowers.dev/tokencss/config"
	"bennypowers.dev/tokencss/export"
	"bennypowers.dev/tokencss/formatter"
	"bennypowers.dev/tokencss/fs"
	"bennypowers.dev/tokencss/internal/cli"
	"bennypowers.dev/tokencss/load"
	"bennypowers.dev/tokencss/naming"
	"bennypowers.dev/tokencss/token"
)

// Cmd is the list cobra command.
var Cmd = &cobra.Command{
	Use:   "list [snapshots...]",
	Short: "List the tokens of a snapshot",
	Long:  `List every token of a snapshot with its CSS variable name, bucket and value.`,
	Args:  cobra.ArbitraryArgs,
	RunE:  run,
}

func init() {
	Cmd.Flags().String("kind", "", "Filter by token kind (e.g. color, font-weight)")
	Cmd.Flags().String("bucket", "", "Filter by bucket: semantic, component, none")
	Cmd.Flags().String("format", "table", "Output format: table, json")
	Cmd.Flags().String(cli.KeyURL, "", "Fetch the snapshot from URL")
	Cmd.Flags().String(cli.KeyBrand, "", "List only tokens of this brand")
	Cmd.Flags().StringSlice(cli.KeyTheme, nil, "Apply theme by id (repeatable, applied in order)")
	Cmd.Flags().String(cli.KeyPrefix, "", "Global CSS variable prefix")
}

// Entry is one listed token.
type Entry struct {
	ID     string     `json:"id"`
	Name   string     `json:"name"`
	Kind   token.Kind `json:"kind"`
	Bucket string     `json:"bucket"`
	Value  string     `json:"value"`
}

func run(cmd *cobra.Command, args []string) error {
	kindFlag, _ := cmd.Flags().GetString("kind")
	bucketFlag, _ := cmd.Flags().GetString("bucket")
	format, _ := cmd.Flags().GetString("format")

	var kind token.Kind
	if kindFlag != "" {
		k, err := token.ParseKind(kindFlag)
		if err != nil {
			return err
		}
		kind = k
	}
	if bucketFlag != "" {
		if _, ok := export.ParseBucket(bucketFlag); !ok {
			return fmt.Errorf("invalid bucket %q: want semantic, component or none", bucketFlag)
		}
	}

	filesystem := fs.NewOSFileSystem()
	cfg, err := cli.LoadConfig(filesystem, ".", viper.GetViper())
	if err != nil {
		return err
	}
	snap, err := cli.Snapshot(cmd.Context(), filesystem, ".", cfg, args)
	if err != nil {
		return err
	}

	entries, err := buildEntries(snap, cfg)
	if err != nil {
		return err
	}
	entries = filterEntries(entries, kind, bucketFlag)

	switch format {
	case "json":
		return outputJSON(cmd.OutOrStdout(), entries)
	case "table":
		return outputTable(cmd.OutOrStdout(), entries)
	default:
		return fmt.Errorf("invalid format %q: want table or json", format)
	}
}

// buildEntries names, classifies and formats every token in snapshot order.
func buildEntries(snap *load.Result, cfg *config.Config) ([]Entry, error) {
	names := naming.NewResolver(snap.Groups, cfg.Prefix)
	format := formatter.New(names, token.NewIndex(snap.Tokens), formatter.Options{})
	classifier := classify.New(cfg.SemanticCollectionNames, cfg.ComponentCollectionNames)

	entries := make([]Entry, 0, len(snap.Tokens))
	for _, tok := range snap.Tokens {
		name, err := names.Name(tok, "")
		if err != nil {
			return nil, err
		}
		value := "(typography)"
		if tok.Kind != token.KindTypography {
			value, err = format.Value(tok)
			if err != nil {
				return nil, fmt.Errorf("%s: %w", tok.ID, err)
			}
		}
		entries = append(entries, Entry{
			ID:     tok.ID,
			Name:   "--" + name,
			Kind:   tok.Kind,
			Bucket: bucketOf(classifier.Classify(tok)).String(),
			Value:  value,
		})
	}
	return entries, nil
}

func bucketOf(tag classify.Tag) export.Bucket {
	switch {
	case tag.Semantic:
		return export.BucketSemantic
	case tag.Component:
		return export.BucketComponent
	default:
		return export.BucketNone
	}
}

func filterEntries(entries []Entry, kind token.Kind, bucket string) []Entry {
	filtered := make([]Entry, 0, len(entries))
	for _, e := range entries {
		if kind != "" && e.Kind != kind {
			continue
		}
		if bucket != "" && e.Bucket != bucket {
			continue
		}
		filtered = append(filtered, e)
	}
	return filtered
}

var title = cases.Title(language.Und)

// kindTitle spells a kind for humans, e.g. "Font Weight".
func kindTitle(k token.Kind) string {
	return title.String(strings.Join(naming.SplitWords(string(k)), " "))
}

// outputTable prints entries grouped by kind, in order of first appearance.
func outputTable(w io.Writer, entries []Entry) error {
	var order []token.Kind
	byKind := make(map[token.Kind][]Entry)
	for _, e := range entries {
		if _, ok := byKind[e.Kind]; !ok {
			order = append(order, e.Kind)
		}
		byKind[e.Kind] = append(byKind[e.Kind], e)
	}

	for i, k := range order {
		if i > 0 {
			fmt.Fprintln(w)
		}
		fmt.Fprintf(w, "%s (%d)\n", kindTitle(k), len(byKind[k]))
		for _, e := range byKind[k] {
			fmt.Fprintf(w, "  %-40s %-10s %s\n", e.Name, e.Bucket, e.Value)
		}
	}
	return nil
}

func outputJSON(w io.Writer, entries []Entry) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(entries)
}
