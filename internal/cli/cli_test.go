/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

package cli_test

import (
	"context"
	"testing"

	"github.com/spf13/pflag"
	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"bennypowers.dev/tokencss/config"
	"bennypowers.dev/tokencss/internal/cli"
	"bennypowers.dev/tokencss/internal/mapfs"
	"bennypowers.dev/tokencss/load"
	"bennypowers.dev/tokencss/testutil"
)

func flagSet(t *testing.T, args ...string) *pflag.FlagSet {
	t.Helper()
	flags := pflag.NewFlagSet("test", pflag.ContinueOnError)
	flags.String(cli.KeyPrefix, "", "")
	flags.String(cli.KeyBrand, "", "")
	flags.StringSlice(cli.KeyTheme, nil, "")
	flags.String(cli.KeyOutDir, "", "")
	flags.Bool(cli.KeyDisclaimer, false, "")
	flags.Float64(cli.KeyRootFontSize, 0, "")
	require.NoError(t, flags.Parse(args))
	return flags
}

func TestOverlay_Flags(t *testing.T) {
	v := viper.New()
	require.NoError(t, cli.Bind(v, flagSet(t,
		"--prefix", "ds",
		"--theme", "dark,contrast",
		"--disclaimer",
		"--root-font-size", "10",
	)))

	cfg := config.Default()
	cli.Overlay(cfg, v)

	assert.Equal(t, "ds", cfg.Prefix)
	assert.Equal(t, []string{"dark", "contrast"}, cfg.Themes)
	assert.True(t, cfg.GenerateDisclaimer)
	assert.Equal(t, 10.0, cfg.Fluid.RootFontSize)
	assert.Equal(t, ".", cfg.OutDir, "unset flags keep config values")
}

func TestOverlay_Environment(t *testing.T) {
	t.Setenv("TOKENCSS_BRAND", "brand-a")
	t.Setenv("TOKENCSS_OUT_DIR", "dist/css")

	v := viper.New()
	require.NoError(t, cli.Bind(v, flagSet(t)))

	cfg := config.Default()
	cli.Overlay(cfg, v)

	assert.Equal(t, "brand-a", cfg.Brand)
	assert.Equal(t, "dist/css", cfg.OutDir)
	assert.Empty(t, cfg.Prefix)
}

func TestLoadConfig(t *testing.T) {
	mfs := testutil.NewFixtureFS(t, "fixtures/config/yaml", "/work")

	v := viper.New()
	require.NoError(t, cli.Bind(v, flagSet(t, "--prefix", "override")))

	cfg, err := cli.LoadConfig(mfs, "/work", v)
	require.NoError(t, err)
	assert.Equal(t, "override", cfg.Prefix)
	assert.Equal(t, []string{"Semantic"}, cfg.SemanticCollectionNames)
}

func TestLoadConfig_Invalid(t *testing.T) {
	v := viper.New()
	require.NoError(t, cli.Bind(v, flagSet(t, "--root-font-size", "-1")))

	_, err := cli.LoadConfig(mapfs.New(), "/work", v)
	assert.ErrorIs(t, err, config.ErrInvalidConfig)
}

func TestSource(t *testing.T) {
	mfs := mapfs.New()
	mfs.AddFile("/work/tokens/a.json", "{}", 0o644)
	mfs.AddFile("/work/tokens/b.json", "{}", 0o644)

	cfg := config.Default()
	cfg.Snapshots = []string{"tokens/*.json"}

	t.Run("explicit paths", func(t *testing.T) {
		src, err := cli.Source(mfs, "/work", cfg, []string{"other.json"})
		require.NoError(t, err)
		assert.Equal(t, []string{"/work/other.json"}, src.Paths)
		assert.Empty(t, src.URL)
	})

	t.Run("config globs", func(t *testing.T) {
		src, err := cli.Source(mfs, "/work", cfg, nil)
		require.NoError(t, err)
		assert.Equal(t, []string{"/work/tokens/a.json", "/work/tokens/b.json"}, src.Paths)
	})

	t.Run("url", func(t *testing.T) {
		withURL := *cfg
		withURL.URL = "https://example.com/snapshot.json"
		src, err := cli.Source(mfs, "/work", &withURL, nil)
		require.NoError(t, err)
		assert.Equal(t, withURL.URL, src.URL)
		assert.Empty(t, src.Paths)
	})
}

func TestSnapshot(t *testing.T) {
	mfs := testutil.NewFixtureFS(t, "fixtures/export", "/work")

	res, err := cli.Snapshot(context.Background(), mfs, "/work", config.Default(), []string{"snapshot.json"})
	require.NoError(t, err)
	assert.NotEmpty(t, res.Tokens)
	assert.NotEmpty(t, res.Groups)

	_, err = cli.Snapshot(context.Background(), mfs, "/work", config.Default(), nil)
	assert.ErrorIs(t, err, load.ErrNoSource)
}
