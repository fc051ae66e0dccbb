/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

// Package validate provides the validate command for tokencss.
package validate

import (
	"context"
	"errors"
	"fmt"
	"io"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"bennypowers.dev/tokencss/fs"
	"bennypowers.dev/tokencss/internal/cli"
	"bennypowers.dev/tokencss/validator"
)

// ErrInvalidSnapshot is returned when validation finds problems.
var ErrInvalidSnapshot = errors.New("validation failed")

// Cmd is the validate cobra command.
var Cmd = &cobra.Command{
	Use:   "validate [snapshots...]",
	Short: "Check a token snapshot for problems that would break the export",
	Long: `Validate a token snapshot: dangling and cyclic groups, unresolved and
circular references, clashing variable names, conflicting classification and
incomplete fluid headings.`,
	Args: cobra.ArbitraryArgs,
	RunE: run,
}

func init() {
	Cmd.Flags().Bool("quiet", false, "Only output errors")
	Cmd.Flags().String(cli.KeyURL, "", "Fetch the snapshot from URL")
	Cmd.Flags().String(cli.KeyBrand, "", "Validate only tokens of this brand")
	Cmd.Flags().StringSlice(cli.KeyTheme, nil, "Apply theme by id (repeatable, applied in order)")
}

func run(cmd *cobra.Command, args []string) error {
	quiet, _ := cmd.Flags().GetBool("quiet")
	return validateSnapshots(cmd.Context(), fs.NewOSFileSystem(), ".", viper.GetViper(), args, quiet, cmd.OutOrStdout(), cmd.ErrOrStderr())
}

func validateSnapshots(ctx context.Context, filesystem fs.FileSystem, root string, v *viper.Viper, args []string, quiet bool, out, errOut io.Writer) error {
	cfg, err := cli.LoadConfig(filesystem, root, v)
	if err != nil {
		return err
	}
	snap, err := cli.Snapshot(ctx, filesystem, root, cfg, args)
	if err != nil {
		return err
	}

	if !quiet {
		fmt.Fprintf(out, "Validating %d tokens in %d groups...\n", len(snap.Tokens), len(snap.Groups))
	}

	problems := validator.Validate(snap.Tokens, snap.Groups, cfg)
	if len(problems) > 0 {
		red := color.New(color.FgRed).SprintFunc()
		for _, p := range problems {
			fmt.Fprintf(errOut, "%s %s\n", red("error:"), p.Error())
		}
		return fmt.Errorf("%w: %d problems", ErrInvalidSnapshot, len(problems))
	}

	if !quiet {
		fmt.Fprintln(out, "Snapshot valid.")
	}
	return nil
}
