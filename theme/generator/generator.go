/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

// Package generator provides the interface and common utilities for the
// stylesheet generators.
package generator

import (
	"strings"

	"bennypowers.dev/tokentheme/names"
	"bennypowers.dev/tokentheme/token"
)

// DefaultFontURLBase is where @font-face sources point when no base is configured.
const DefaultFontURLBase = "../assets/font"

// BaseFontSize is the root font size in px used for rem conversion.
const BaseFontSize = 16

// Generator renders one stylesheet from a token tree. Implementations are
// pure: the same tree and options always give the same output.
type Generator interface {
	// Name is the stylesheet's base name, e.g. "palette".
	Name() string

	// Generate renders the stylesheet.
	Generate(tree *token.Tree, opts Options) string
}

// Options configures generator output.
type Options struct {
	// FontURLBase is the directory @font-face sources are resolved against.
	// Defaults to DefaultFontURLBase.
	FontURLBase string

	// SourceDir is the component directory registered with @source in
	// globals.css. Empty omits the directive.
	SourceDir string
}

// FontBase returns the configured font URL base without a trailing slash.
func (o Options) FontBase() string {
	if o.FontURLBase == "" {
		return DefaultFontURLBase
	}
	return strings.TrimRight(o.FontURLBase, "/")
}

// PxToRem converts a px value to rem. Values without a leading number,
// such as "normal", are returned unchanged.
func PxToRem(n token.Number) string {
	f, ok := n.Float()
	if !ok {
		return n.String()
	}
	return token.FormatNumber(f/BaseFontSize) + "rem"
}

// Decl formats a custom property declaration without indentation or
// terminator: "--name: value".
func Decl(name, value string) string {
	return "--" + name + ": " + value
}

// ThemeBlock renders declarations inside an @theme block.
func ThemeBlock(decls []string) string {
	var b strings.Builder
	b.WriteString("@theme {\n")
	for _, d := range decls {
		b.WriteString("  ")
		b.WriteString(d)
		b.WriteString(";\n")
	}
	b.WriteString("}\n")
	return b.String()
}

// Utility renders a named @utility block.
func Utility(name string, decls ...string) string {
	var b strings.Builder
	b.WriteString("@utility ")
	b.WriteString(name)
	b.WriteString(" {\n")
	for _, d := range decls {
		b.WriteString("  ")
		b.WriteString(d)
		b.WriteString(";\n")
	}
	b.WriteString("}\n")
	return b.String()
}

// Blocks joins rendered blocks with one blank line between them.
func Blocks(blocks ...string) string {
	var nonEmpty []string
	for _, b := range blocks {
		if b != "" {
			nonEmpty = append(nonEmpty, b)
		}
	}
	return strings.Join(nonEmpty, "\n")
}

// Branches flattens the named top-level branches of tree, in order, into a
// single map keyed relative to each branch. Keys match by sanitized form,
// so "Fonts" and "font" name the same branch.
func Branches(tree *token.Tree, keys ...string) *token.Map {
	m := token.NewMap()
	for _, key := range keys {
		want := names.Sanitize(key)
		for _, n := range tree.Nodes() {
			if n.IsLeaf() || names.Sanitize(n.Key) != want {
				continue
			}
			for _, e := range token.Flatten(n.Children).Entries() {
				m.Set(e.Path, e.Token)
			}
		}
	}
	return m
}
