/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

// Package palette renders colour tokens as an @theme block and gradient
// tokens as background utilities.
package palette

import (
	"math"
	"slices"
	"strings"

	"bennypowers.dev/tokentheme/names"
	"bennypowers.dev/tokentheme/theme/generator"
	"bennypowers.dev/tokentheme/token"
)

// resetDecl clears the framework's default colour scale.
const resetDecl = "--color-*: initial"

// Generator renders palette.css.
type Generator struct{}

// New creates a palette generator.
func New() *Generator {
	return &Generator{}
}

// Name implements generator.Generator.
func (g *Generator) Name() string { return "palette" }

// Generate implements generator.Generator.
func (g *Generator) Generate(tree *token.Tree, _ generator.Options) string {
	flat := token.Flatten(tree)

	var decls []string
	for _, e := range flat.OfKind(token.KindColor) {
		decls = append(decls, ColorDecl(e.Path, e.Token.Value.(token.Color)))
	}
	SortDecls(decls)

	var utilities []string
	for _, e := range flat.OfKind(token.KindGradient) {
		utilities = append(utilities, GradientUtility(e.Path, e.Token.Value.(token.Gradient)))
	}

	theme := generator.ThemeBlock(append([]string{resetDecl}, decls...))
	return generator.Blocks(theme, generator.Blocks(utilities...))
}

// ColorDecl returns the theme declaration for one colour token.
func ColorDecl(path string, c token.Color) string {
	return generator.Decl(names.Prefixed(token.PrefixColor, path), c.Render(token.PrefixColor))
}

// SortDecls orders declarations so that literal colours come before
// aliases of other colours, each group sorted lexicographically.
func SortDecls(decls []string) {
	slices.SortStableFunc(decls, func(a, b string) int {
		aRef, bRef := isAlias(a), isAlias(b)
		switch {
		case aRef && !bRef:
			return 1
		case !aRef && bRef:
			return -1
		}
		return strings.Compare(a, b)
	})
}

func isAlias(decl string) bool {
	return strings.Contains(decl, "var(--color-")
}

// GradientUtility returns the bg-<name> utility for a gradient token.
func GradientUtility(path string, g token.Gradient) string {
	return generator.Utility(names.Prefixed(token.PrefixBackground, path), "background: "+LinearGradient(g))
}

// LinearGradient renders g as a linear-gradient() with the rotation rounded
// to whole degrees and stop positions as percentages. Values that do not
// parse as numbers are passed through as written.
func LinearGradient(g token.Gradient) string {
	stops := make([]string, 0, len(g.Stops))
	for _, stop := range g.Stops {
		stops = append(stops, stop.Color.Render(token.PrefixColor)+" "+stopPosition(stop.Position))
	}
	value := "linear-gradient(" + angle(g.Rotation)
	if len(stops) > 0 {
		value += ", " + strings.Join(stops, ", ")
	}
	return value + ")"
}

func stopPosition(n token.Number) string {
	pos, ok := n.Float()
	if !ok && n.IsSet() {
		return n.String()
	}
	return token.FormatNumber(pos*100) + "%"
}

func angle(n token.Number) string {
	rotation, ok := n.Float()
	if !ok && n.IsSet() {
		return n.String()
	}
	return token.FormatNumber(math.Floor(rotation+0.5)) + "deg"
}
