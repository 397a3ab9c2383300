/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

// Package load provides a high-level API for loading token documents.
package load

import (
	"errors"
	"fmt"

	"bennypowers.dev/tokentheme/fs"
	"bennypowers.dev/tokentheme/parser"
	"bennypowers.dev/tokentheme/token"
)

// ErrInputNotFound indicates that an input document does not exist.
var ErrInputNotFound = errors.New("input file not found")

// ErrNoInput indicates that no input documents were given.
var ErrNoInput = errors.New("no input files")

// Options configures how token documents are loaded.
type Options struct {
	// FS is the filesystem to use. Defaults to OS filesystem if nil.
	FS fs.FileSystem

	// OnSkip receives entries that are neither tokens nor groups.
	OnSkip func(file string, path []string, reason string)
}

// Load reads each document in order and deep-merges them into one tree.
// Groups merge; a later token replaces an earlier one at the same key.
func Load(paths []string, opts Options) (*token.Tree, error) {
	if len(paths) == 0 {
		return nil, ErrNoInput
	}

	filesystem := opts.FS
	if filesystem == nil {
		filesystem = fs.NewOSFileSystem()
	}

	merged := token.NewTree()
	for _, path := range paths {
		tree, err := File(filesystem, path, opts)
		if err != nil {
			return nil, err
		}
		merged.Merge(tree)
	}
	return merged, nil
}

// File reads a single token document.
func File(filesystem fs.FileSystem, path string, opts Options) (*token.Tree, error) {
	if !filesystem.Exists(path) {
		return nil, fmt.Errorf("%w: %s", ErrInputNotFound, path)
	}

	var parseOpts parser.Options
	if opts.OnSkip != nil {
		parseOpts.OnSkip = func(p []string, reason string) {
			opts.OnSkip(path, p, reason)
		}
	}

	tree, err := parser.ParseFile(filesystem, path, parseOpts)
	if err != nil {
		return nil, fmt.Errorf("failed to parse tokens: %w", err)
	}
	return tree, nil
}
