/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

// Package testutil provides testing utilities for tokencss: fixture
// filesystems, snapshot fixtures and golden files.
package testutil

import (
	"flag"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"bennypowers.dev/tokencss/internal/mapfs"
)

// updateGolden enables updating golden files with actual output when -update flag is set.
var updateGolden = flag.Bool("update", false, "update golden files with actual output")

// testdataRoots are tried in order; tests run from their package directory,
// which sits one or two levels below the module root.
var testdataRoots = []string{
	"testdata",
	filepath.Join("..", "testdata"),
	filepath.Join("..", "..", "testdata"),
}

// findTestdata returns the first existing testdata path for rel.
func findTestdata(rel string) (string, bool) {
	for _, root := range testdataRoots {
		p := filepath.Join(root, rel)
		if _, err := os.Stat(p); err == nil {
			return p, true
		}
	}
	return "", false
}

// NewFixtureFS loads the files under testdata/fixtureDir into an in-memory
// filesystem, rooted at rootPath.
func NewFixtureFS(t *testing.T, fixtureDir string, rootPath string) *mapfs.MapFileSystem {
	t.Helper()

	fixturePath, ok := findTestdata(fixtureDir)
	if !ok {
		t.Fatalf("Could not find fixtures at %s (tried all paths)", fixtureDir)
	}

	mfs := mapfs.New()
	err := filepath.WalkDir(fixturePath, func(p string, d fs.DirEntry, err error) error {
		if err != nil || d.IsDir() {
			return err
		}
		content, err := os.ReadFile(p)
		if err != nil {
			return err
		}
		rel, err := filepath.Rel(fixturePath, p)
		if err != nil {
			return err
		}
		mfs.AddFile(filepath.ToSlash(filepath.Join(rootPath, rel)), string(content), 0o644)
		return nil
	})
	if err != nil {
		t.Fatalf("Failed to load fixtures from %s: %v", fixtureDir, err)
	}

	return mfs
}

// LoadFixtureFile reads a single file under testdata.
func LoadFixtureFile(t *testing.T, fixturePath string) []byte {
	t.Helper()

	p, ok := findTestdata(fixturePath)
	if !ok {
		t.Fatalf("Failed to read fixture %s (tried all paths)", fixturePath)
	}
	content, err := os.ReadFile(p)
	if err != nil {
		t.Fatalf("Failed to read fixture %s: %v", fixturePath, err)
	}
	return content
}

// UpdateGoldenFile writes actual output to the golden file when -update flag is set.
func UpdateGoldenFile(t *testing.T, goldenPath string, actual []byte) {
	t.Helper()
	if !*updateGolden {
		return
	}

	targetPath := filepath.Join(testdataRoots[0], goldenPath)
	for _, root := range testdataRoots {
		if _, err := os.Stat(root); err == nil {
			targetPath = filepath.Join(root, goldenPath)
			break
		}
	}

	if err := os.MkdirAll(filepath.Dir(targetPath), 0o755); err != nil {
		t.Fatalf("Failed to create directory for golden file %s: %v", goldenPath, err)
	}
	if err := os.WriteFile(targetPath, actual, 0o644); err != nil {
		t.Fatalf("Failed to write golden file %s: %v", goldenPath, err)
	}

	t.Logf("Updated golden file: %s", targetPath)
}

// AssertGolden compares a generated document with its golden file,
// reporting the first differing line. With -update the golden file is
// rewritten first.
func AssertGolden(t *testing.T, goldenPath string, actual string) {
	t.Helper()
	UpdateGoldenFile(t, goldenPath, []byte(actual))

	expected := string(LoadFixtureFile(t, goldenPath))
	if expected == actual {
		return
	}

	want := strings.Split(expected, "\n")
	got := strings.Split(actual, "\n")
	for i := range max(len(want), len(got)) {
		var w, g string
		if i < len(want) {
			w = want[i]
		}
		if i < len(got) {
			g = got[i]
		}
		if w != g {
			t.Errorf("%s differs at line %d:\n  want: %q\n  got:  %q\n(run with -update to accept)", goldenPath, i+1, w, g)
			return
		}
	}
	t.Errorf("%s differs (run with -update to accept)", goldenPath)
}
