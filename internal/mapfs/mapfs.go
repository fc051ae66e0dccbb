/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

// Package mapfs provides an in-memory filesystem for tests that load
// snapshots and write generated documents.
package mapfs

import (
	"errors"
	"io/fs"
	"path"
	"slices"
	"strings"
	"sync"
	"testing/fstest"
	"time"
)

var errNotDir = errors.New("not a directory")

// modTime stamps every entry so directory listings are reproducible.
var modTime = time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)

// MapFileSystem implements fs.FileSystem over an fstest.MapFS. Paths are
// slash separated; a leading slash is optional. Parent directories of
// files exist implicitly.
type MapFileSystem struct {
	mu      sync.RWMutex
	files   fstest.MapFS
	written []string
}

// New creates an empty filesystem.
func New() *MapFileSystem {
	return &MapFileSystem{files: make(fstest.MapFS)}
}

// AddFile seeds a file. Seeded files are not reported by Written.
func (mfs *MapFileSystem) AddFile(p string, content string, mode fs.FileMode) {
	mfs.mu.Lock()
	defer mfs.mu.Unlock()

	mfs.files[key(p)] = &fstest.MapFile{Data: []byte(content), Mode: mode, ModTime: modTime}
}

// Written returns the absolute paths passed to WriteFile, in call order.
// A path written twice appears twice.
func (mfs *MapFileSystem) Written() []string {
	mfs.mu.RLock()
	defer mfs.mu.RUnlock()

	return slices.Clone(mfs.written)
}

// WriteFile implements FileSystem.
func (mfs *MapFileSystem) WriteFile(name string, data []byte, perm fs.FileMode) error {
	mfs.mu.Lock()
	defer mfs.mu.Unlock()

	k := key(name)
	if err := mfs.checkParentsLocked("open", k); err != nil {
		return err
	}
	mfs.files[k] = &fstest.MapFile{Data: slices.Clone(data), Mode: perm, ModTime: modTime}
	mfs.written = append(mfs.written, "/"+k)
	return nil
}

// ReadFile implements FileSystem.
func (mfs *MapFileSystem) ReadFile(name string) ([]byte, error) {
	mfs.mu.RLock()
	defer mfs.mu.RUnlock()

	return fs.ReadFile(mfs.files, key(name))
}

// MkdirAll implements FileSystem.
func (mfs *MapFileSystem) MkdirAll(p string, perm fs.FileMode) error {
	mfs.mu.Lock()
	defer mfs.mu.Unlock()

	k := key(p)
	if k == "." {
		return nil
	}
	if err := mfs.checkParentsLocked("mkdir", k); err != nil {
		return err
	}
	if f, ok := mfs.files[k]; ok {
		if !f.Mode.IsDir() {
			return &fs.PathError{Op: "mkdir", Path: p, Err: errNotDir}
		}
		return nil
	}
	mfs.files[k] = &fstest.MapFile{Mode: fs.ModeDir | perm.Perm(), ModTime: modTime}
	return nil
}

// Stat implements FileSystem.
func (mfs *MapFileSystem) Stat(name string) (fs.FileInfo, error) {
	mfs.mu.RLock()
	defer mfs.mu.RUnlock()

	return fs.Stat(mfs.files, key(name))
}

// Exists implements FileSystem.
func (mfs *MapFileSystem) Exists(p string) bool {
	_, err := mfs.Stat(p)
	return err == nil
}

// ReadDir implements FileSystem.
func (mfs *MapFileSystem) ReadDir(name string) ([]fs.DirEntry, error) {
	mfs.mu.RLock()
	defer mfs.mu.RUnlock()

	return fs.ReadDir(mfs.files, key(name))
}

// Open implements FileSystem.
func (mfs *MapFileSystem) Open(name string) (fs.File, error) {
	mfs.mu.RLock()
	defer mfs.mu.RUnlock()

	return mfs.files.Open(key(name))
}

// checkParentsLocked fails when an ancestor of k is a regular file.
func (mfs *MapFileSystem) checkParentsLocked(op, k string) error {
	for dir := path.Dir(k); dir != "." && dir != "/"; dir = path.Dir(dir) {
		if f, ok := mfs.files[dir]; ok && !f.Mode.IsDir() {
			return &fs.PathError{Op: op, Path: "/" + k, Err: errNotDir}
		}
	}
	return nil
}

// key maps a path to its MapFS key: cleaned, without the leading slash.
// The root is ".".
func key(p string) string {
	k := strings.TrimPrefix(path.Clean("/"+p), "/")
	if k == "" {
		return "."
	}
	return k
}
