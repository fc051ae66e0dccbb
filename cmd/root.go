/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

// Package cmd provides CLI commands for tokencss.
package cmd

import (
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"bennypowers.dev/tokencss/cmd/export"
	"bennypowers.dev/tokencss/cmd/list"
	"bennypowers.dev/tokencss/cmd/mcp"
	"bennypowers.dev/tokencss/cmd/validate"
	"bennypowers.dev/tokencss/cmd/version"
	"bennypowers.dev/tokencss/internal/cli"
	"bennypowers.dev/tokencss/internal/logger"
)

var rootCmd = &cobra.Command{
	Use:   "tokencss",
	Short: "Export design token snapshots as CSS custom properties",
	Long: `tokencss turns a design system's token snapshot into three stylesheets of
CSS custom properties: semantics, components and typography.

Settings are read from .config/tokencss.{yaml,yml,json,toml}. Flags and
TOKENCSS_* environment variables override the file.`,
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		if err := cli.Bind(viper.GetViper(), cmd.Flags()); err != nil {
			return err
		}
		logger.SetVerbose(viper.GetBool(cli.KeyVerbose))
		return nil
	},
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().BoolP(cli.KeyVerbose, "v", false, "Print progress details")

	rootCmd.AddCommand(export.Cmd)
	rootCmd.AddCommand(list.Cmd)
	rootCmd.AddCommand(validate.Cmd)
	rootCmd.AddCommand(mcp.Cmd)
	rootCmd.AddCommand(version.Cmd)
}
