/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

// Package effects renders shadow tokens as --shadow-* theme variables.
package effects

import (
	"strings"

	"bennypowers.dev/tokentheme/names"
	"bennypowers.dev/tokentheme/theme/generator"
	"bennypowers.dev/tokentheme/token"
)

const (
	// Branch is the top-level tree key holding effect tokens.
	Branch = "effect"

	// Prefix starts every shadow variable name.
	Prefix = "shadow"
)

// Generator renders shadows.css.
type Generator struct{}

// New creates an effects generator.
func New() *Generator {
	return &Generator{}
}

// Name implements generator.Generator.
func (g *Generator) Name() string { return "shadows" }

// Generate implements generator.Generator. Each direct child of the effect
// branch is either a shadow or a group whose direct shadow children are
// layers of one composite shadow. Anything else is skipped.
func (g *Generator) Generate(tree *token.Tree, _ generator.Options) string {
	var decls []string
	for _, n := range tree.Branch(Branch).Nodes() {
		layers := Layers(n)
		if len(layers) == 0 {
			continue
		}
		values := make([]string, 0, len(layers))
		for _, s := range layers {
			values = append(values, BoxShadow(s))
		}
		decls = append(decls, generator.Decl(VarName(n.Key), strings.Join(values, ", ")))
	}
	return generator.ThemeBlock(decls)
}

// VarName returns the shadow variable for an effect key, without "--". The
// prefix is added after sanitizing, so a "shadow" segment in the key is kept.
func VarName(key string) string {
	return names.Join(Prefix, names.Sanitize(key))
}

// Layers returns the shadows an effect node contributes, in order.
func Layers(n *token.Node) []token.Shadow {
	if n.IsLeaf() {
		if s, ok := n.Token.Value.(token.Shadow); ok {
			return []token.Shadow{s}
		}
		return nil
	}
	var layers []token.Shadow
	for _, child := range n.Children.Nodes() {
		if !child.IsLeaf() {
			continue
		}
		if s, ok := child.Token.Value.(token.Shadow); ok {
			layers = append(layers, s)
		}
	}
	return layers
}

// BoxShadow renders one shadow in box-shadow syntax. Missing offsets,
// radius and spread render as 0.
func BoxShadow(s token.Shadow) string {
	parts := []string{
		px(s.OffsetX),
		px(s.OffsetY),
		px(s.Radius),
		px(s.Spread),
		s.Color.Render(token.PrefixColor),
	}
	value := strings.Join(parts, " ")
	if s.Inset() {
		value = "inset " + value
	}
	return value
}

func px(n token.Number) string {
	if !n.IsSet() {
		return "0px"
	}
	return n.String() + "px"
}
