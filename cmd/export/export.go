/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

// Package export provides the export command for tokencss.
package export

import (
	"context"
	"fmt"
	"io"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"bennypowers.dev/tokencss/csscheck"
	cssexport "bennypowers.dev/tokencss/export"
	"bennypowers.dev/tokencss/fs"
	"bennypowers.dev/tokencss/internal/cli"
	"bennypowers.dev/tokencss/internal/logger"
)

// Cmd is the export cobra command.
var Cmd = &cobra.Command{
	Use:   "export [snapshots...]",
	Short: "Write CSS custom property stylesheets from a token snapshot",
	Long: `Export a token snapshot as semantics, components and typography
stylesheets.

Snapshots are read from the given files, from --url, or from the snapshots
listed in the config file. Several files are merged in order.`,
	Args: cobra.ArbitraryArgs,
	RunE: run,
}

func init() {
	Cmd.Flags().StringP(cli.KeyOutDir, "o", "", "Output directory (default: config outDir)")
	Cmd.Flags().String(cli.KeyURL, "", "Fetch the snapshot from URL")
	Cmd.Flags().String(cli.KeyBrand, "", "Export only tokens and groups of this brand")
	Cmd.Flags().StringSlice(cli.KeyTheme, nil, "Apply theme by id (repeatable, applied in order)")
	Cmd.Flags().String(cli.KeyPrefix, "", "Global CSS variable prefix")
	Cmd.Flags().Bool(cli.KeyDisclaimer, false, "Prefix documents with a generated-file header")
	Cmd.Flags().Float64(cli.KeyRootFontSize, 0, "Root font size in px for fluid headings")
	Cmd.Flags().Bool("verify", false, "Parse the generated CSS and fail on syntax errors")
	Cmd.Flags().Bool(cli.KeyDebug, false, "Also write typographyTokens.json and tokenGroups.json")
}

func run(cmd *cobra.Command, args []string) error {
	return exportSnapshots(cmd.Context(), fs.NewOSFileSystem(), ".", viper.GetViper(), args, cmd.OutOrStdout())
}

// exportSnapshots loads the snapshot, renders it and writes the documents,
// printing one status line per written file.
func exportSnapshots(ctx context.Context, filesystem fs.FileSystem, root string, v *viper.Viper, args []string, out io.Writer) error {
	cfg, err := cli.LoadConfig(filesystem, root, v)
	if err != nil {
		return err
	}

	snap, err := cli.Snapshot(ctx, filesystem, root, cfg, args)
	if err != nil {
		return err
	}
	logger.Debug("loaded %d tokens in %d groups", len(snap.Tokens), len(snap.Groups))

	exporter, err := cssexport.New(cfg, cssexport.Options{})
	if err != nil {
		return err
	}
	result, err := exporter.Export(snap.Tokens, snap.Groups)
	if err != nil {
		return fmt.Errorf("export failed: %w", err)
	}

	if v.GetBool("verify") {
		for name, doc := range map[string]string{
			cfg.Files.Semantics:  result.Semantics,
			cfg.Files.Components: result.Components,
			cfg.Files.Typography: result.Typography,
		} {
			if err := csscheck.Check(doc); err != nil {
				return fmt.Errorf("%s: %w", name, err)
			}
		}
	}

	paths, err := cssexport.WriteFiles(filesystem, cli.OutDir(root, cfg), result)
	if err != nil {
		return err
	}

	wrote := color.New(color.FgGreen).SprintFunc()
	for _, p := range paths {
		fmt.Fprintf(out, "%s %s\n", wrote("wrote"), p)
	}
	return nil
}
