/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

// Package grid renders layout-grid tokens as column and spacing theme
// variables plus one grid utility per token.
package grid

import (
	"slices"
	"strings"

	"bennypowers.dev/tokentheme/names"
	"bennypowers.dev/tokentheme/theme/generator"
	"bennypowers.dev/tokentheme/token"
)

// Generator renders spacing.css.
type Generator struct{}

// New creates a grid generator.
func New() *Generator {
	return &Generator{}
}

// Name implements generator.Generator.
func (g *Generator) Name() string { return "spacing" }

// Vars holds the custom property names derived for one grid token.
type Vars struct {
	Columns string
	Gutter  string
	Column  string
}

// VarsFor derives the variable names for the grid token at path.
func VarsFor(path string) Vars {
	return Vars{
		Columns: names.Prefixed("grid", path+"-columns"),
		Gutter:  names.Prefixed("spacing", path),
		Column:  names.Prefixed("grid", path+"-column"),
	}
}

// Generate implements generator.Generator. Theme declarations are sorted
// as whole lines, so variables of different grids may interleave.
func (g *Generator) Generate(tree *token.Tree, _ generator.Options) string {
	var (
		decls     []string
		utilities []string
	)
	for _, e := range token.Flatten(tree).OfKind(token.KindGrid) {
		grid := e.Token.Value.(token.Grid)
		decls = append(decls, Decls(e.Path, grid)...)
		utilities = append(utilities, Utility(e.Path, grid))
	}
	slices.Sort(decls)

	return generator.Blocks(generator.ThemeBlock(decls), generator.Blocks(utilities...))
}

// Decls returns the zero to three theme declarations of a grid token,
// one per field present.
func Decls(path string, grid token.Grid) []string {
	vars := VarsFor(path)
	var decls []string
	if grid.Count.IsSet() {
		decls = append(decls, generator.Decl(vars.Columns, grid.Count.String()))
	}
	if grid.GutterSize.IsSet() {
		decls = append(decls, generator.Decl(vars.Gutter, generator.PxToRem(grid.GutterSize)))
	}
	if grid.SectionSize.IsSet() {
		decls = append(decls, generator.Decl(vars.Column, generator.PxToRem(grid.SectionSize)))
	}
	return decls
}

// Utility returns the layout utility of a grid token. A section size fixes
// the column width and centres the grid; otherwise columns share the space.
func Utility(path string, grid token.Grid) string {
	vars := VarsFor(path)
	fixed := grid.SectionSize.IsSet()

	classes := []string{"grid", "min-h-0", "gap-" + strings.TrimPrefix(vars.Gutter, "spacing-")}
	if fixed {
		classes = append(classes, "w-max", "mx-auto")
	}
	decls := []string{"@apply " + strings.Join(classes, " ")}

	if grid.Count.IsSet() {
		width := "minmax(0, 1fr)"
		if fixed {
			width = "var(--" + vars.Column + ")"
		}
		decls = append(decls, "grid-template-columns: repeat(var(--"+vars.Columns+"), "+width+")")
	}

	return generator.Utility(names.Sanitize(path), decls...)
}
