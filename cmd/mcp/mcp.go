/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

// Package mcp provides the mcp command, which serves tokencss tools to
// Model Context Protocol clients over stdio.
package mcp

import (
	"context"
	"fmt"
	"io"

	"github.com/modelcontextprotocol/go-sdk/mcp"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"bennypowers.dev/tokencss/config"
	"bennypowers.dev/tokencss/export"
	"bennypowers.dev/tokencss/fs"
	"bennypowers.dev/tokencss/internal/cli"
	"bennypowers.dev/tokencss/internal/logger"
	"bennypowers.dev/tokencss/internal/version"
	"bennypowers.dev/tokencss/validator"
)

// Cmd is the mcp cobra command.
var Cmd = &cobra.Command{
	Use:   "mcp",
	Short: "Serve export tools over the Model Context Protocol (stdio)",
	Args:  cobra.NoArgs,
	RunE:  run,
}

func run(cmd *cobra.Command, args []string) error {
	// stdout carries the protocol; warnings would only be noise.
	logger.SetOutput(io.Discard)

	t := &tools{fs: fs.NewOSFileSystem(), root: ".", viper: viper.GetViper()}
	return newServer(t).Run(cmd.Context(), &mcp.StdioTransport{})
}

// newServer registers the export_css and validate_snapshot tools.
func newServer(t *tools) *mcp.Server {
	server := mcp.NewServer(&mcp.Implementation{Name: "tokencss", Version: version.Get()}, nil)
	mcp.AddTool(server, &mcp.Tool{
		Name:        "export_css",
		Description: "Export a design token snapshot as semantics, components and typography CSS custom properties",
	}, t.exportCSS)
	mcp.AddTool(server, &mcp.Tool{
		Name:        "validate_snapshot",
		Description: "Report problems in a design token snapshot that would break the CSS export",
	}, t.validateSnapshot)
	return server
}

// SnapshotInput selects the snapshot a tool works on.
type SnapshotInput struct {
	Snapshot string   `json:"snapshot" jsonschema:"path of the token snapshot file (JSON, JSONC or YAML)"`
	Brand    string   `json:"brand,omitempty" jsonschema:"only include tokens and groups of this brand id"`
	Themes   []string `json:"themes,omitempty" jsonschema:"theme ids to apply, in order"`
}

// ExportOutput holds the three generated stylesheets.
type ExportOutput struct {
	Semantics  string `json:"semantics"`
	Components string `json:"components"`
	Typography string `json:"typography"`
}

// ValidateOutput lists validation problems; it is empty for a valid snapshot.
type ValidateOutput struct {
	Problems []string `json:"problems"`
}

type tools struct {
	fs    fs.FileSystem
	root  string
	viper *viper.Viper
}

func (t *tools) config(in SnapshotInput) (*config.Config, error) {
	cfg, err := cli.LoadConfig(t.fs, t.root, t.viper)
	if err != nil {
		return nil, err
	}
	if in.Brand != "" {
		cfg.Brand = in.Brand
	}
	if len(in.Themes) > 0 {
		cfg.Themes = in.Themes
	}
	return cfg, nil
}

func (t *tools) exportCSS(ctx context.Context, _ *mcp.CallToolRequest, in SnapshotInput) (*mcp.CallToolResult, ExportOutput, error) {
	if in.Snapshot == "" {
		return nil, ExportOutput{}, fmt.Errorf("snapshot is required")
	}
	cfg, err := t.config(in)
	if err != nil {
		return nil, ExportOutput{}, err
	}
	snap, err := cli.Snapshot(ctx, t.fs, t.root, cfg, []string{in.Snapshot})
	if err != nil {
		return nil, ExportOutput{}, err
	}
	exporter, err := export.New(cfg, export.Options{Warn: logger.Warn})
	if err != nil {
		return nil, ExportOutput{}, err
	}
	result, err := exporter.Export(snap.Tokens, snap.Groups)
	if err != nil {
		return nil, ExportOutput{}, err
	}
	return nil, ExportOutput{
		Semantics:  result.Semantics,
		Components: result.Components,
		Typography: result.Typography,
	}, nil
}

func (t *tools) validateSnapshot(ctx context.Context, _ *mcp.CallToolRequest, in SnapshotInput) (*mcp.CallToolResult, ValidateOutput, error) {
	if in.Snapshot == "" {
		return nil, ValidateOutput{}, fmt.Errorf("snapshot is required")
	}
	cfg, err := t.config(in)
	if err != nil {
		return nil, ValidateOutput{}, err
	}
	snap, err := cli.Snapshot(ctx, t.fs, t.root, cfg, []string{in.Snapshot})
	if err != nil {
		return nil, ValidateOutput{}, err
	}
	out := ValidateOutput{Problems: []string{}}
	for _, p := range validator.Validate(snap.Tokens, snap.Groups, cfg) {
		out.Problems = append(out.Problems, p.Error())
	}
	return nil, out, nil
}
