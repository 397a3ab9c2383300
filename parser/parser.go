/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

// Package parser reads design token documents into token trees.
package parser

import (
	"errors"
	"fmt"

	"bennypowers.dev/tokentheme/fs"
	"bennypowers.dev/tokentheme/token"
)

// ErrNotObject is returned when a document's root is not a JSON object.
var ErrNotObject = errors.New("token document root must be an object")

// Options configures token parsing.
type Options struct {
	// OnSkip is called for every entry that is neither a token nor a group.
	// Optional.
	OnSkip func(path []string, reason string)
}

func (o Options) skip(path []string, reason string) {
	if o.OnSkip != nil {
		o.OnSkip(path, reason)
	}
}

// ParseFile reads and parses a token document.
func ParseFile(filesystem fs.FileSystem, path string, opts Options) (*token.Tree, error) {
	data, err := filesystem.ReadFile(path)
	if err != nil {
		return nil, err
	}
	tree, err := Parse(data, opts)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return tree, nil
}
