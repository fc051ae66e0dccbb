/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

// Package cli holds the pieces shared by tokencss commands: flag and
// environment overlays onto the config file, and snapshot loading.
package cli

import (
	"context"
	"fmt"
	"path/filepath"
	"strings"

	"github.com/spf13/pflag"
	"github.com/spf13/viper"

	"bennypowers.dev/tokencss/config"
	"bennypowers.dev/tokencss/fs"
	"bennypowers.dev/tokencss/load"
)

// EnvPrefix prefixes environment overrides, e.g. TOKENCSS_PREFIX.
const EnvPrefix = "TOKENCSS"

// Keys of the flags and environment variables that override config values.
const (
	KeyPrefix       = "prefix"
	KeyURL          = "url"
	KeyBrand        = "brand"
	KeyTheme        = "theme"
	KeyOutDir       = "out-dir"
	KeyDisclaimer   = "disclaimer"
	KeyRootFontSize = "root-font-size"
	KeyDebug        = "debug"
	KeyVerbose      = "verbose"
)

// Bind makes v read flags and TOKENCSS_* environment variables. Dashes in
// flag names become underscores in variable names.
func Bind(v *viper.Viper, flags *pflag.FlagSet) error {
	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()
	return v.BindPFlags(flags)
}

// LoadConfig reads the config file under root, falling back to defaults,
// then applies the overrides set in v.
func LoadConfig(filesystem fs.FileSystem, root string, v *viper.Viper) (*config.Config, error) {
	cfg, err := config.Load(filesystem, root)
	if err != nil {
		return nil, err
	}
	if cfg == nil {
		cfg = config.Default()
	}
	Overlay(cfg, v)
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Overlay copies every value explicitly set in v onto cfg.
func Overlay(cfg *config.Config, v *viper.Viper) {
	if v.IsSet(KeyPrefix) {
		cfg.Prefix = v.GetString(KeyPrefix)
	}
	if v.IsSet(KeyURL) {
		cfg.URL = v.GetString(KeyURL)
	}
	if v.IsSet(KeyBrand) {
		cfg.Brand = v.GetString(KeyBrand)
	}
	if v.IsSet(KeyTheme) {
		cfg.Themes = v.GetStringSlice(KeyTheme)
	}
	if v.IsSet(KeyOutDir) {
		cfg.OutDir = v.GetString(KeyOutDir)
	}
	if v.IsSet(KeyDisclaimer) {
		cfg.GenerateDisclaimer = v.GetBool(KeyDisclaimer)
	}
	if v.IsSet(KeyRootFontSize) {
		cfg.Fluid.RootFontSize = v.GetFloat64(KeyRootFontSize)
	}
	if v.IsSet(KeyDebug) {
		cfg.Debug = v.GetBool(KeyDebug)
	}
}

// Source locates the snapshot for an invocation. Explicit paths win over
// the config's URL, which wins over its snapshot globs.
func Source(filesystem fs.FileSystem, root string, cfg *config.Config, paths []string) (load.Source, error) {
	src := load.Source{FS: filesystem}
	switch {
	case len(paths) > 0:
		for _, p := range paths {
			src.Paths = append(src.Paths, resolve(root, p))
		}
	case cfg.URL != "":
		src.URL = cfg.URL
	default:
		expanded, err := cfg.ExpandSnapshots(filesystem, root)
		if err != nil {
			return src, fmt.Errorf("expanding snapshots: %w", err)
		}
		src.Paths = expanded
	}
	return src, nil
}

// Snapshot opens the invocation's snapshot and loads it with the config's
// brand and themes.
func Snapshot(ctx context.Context, filesystem fs.FileSystem, root string, cfg *config.Config, paths []string) (*load.Result, error) {
	src, err := Source(filesystem, root, cfg, paths)
	if err != nil {
		return nil, err
	}
	p, err := load.Open(ctx, src)
	if err != nil {
		return nil, err
	}
	return load.Load(ctx, p, load.Invocation{
		Ref:      p.Document().Ref(),
		BrandID:  cfg.Brand,
		ThemeIDs: cfg.Themes,
	})
}

// OutDir returns the config's output directory relative to root.
func OutDir(root string, cfg *config.Config) string {
	return resolve(root, cfg.OutDir)
}

func resolve(root, p string) string {
	if filepath.IsAbs(p) {
		return p
	}
	return filepath.Join(root, p)
}
