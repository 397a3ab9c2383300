/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

// Package component renders the typed React Text component whose variants
// are the typography utilities of a token tree.
package component

import (
	_ "embed"
	"slices"
	"strings"
	"text/template"

	"bennypowers.dev/tokentheme/theme/generator/typography"
	"bennypowers.dev/tokentheme/token"
)

// Path is the component's location relative to the component directory.
const Path = "Text/index.tsx"

//go:embed text.tsx.tmpl
var textTemplate string

var tmpl = template.Must(template.New("text").Parse(textTemplate))

type data struct {
	Variants      []string
	Fallback      string
	FallbackClass string
}

// Variants returns the sorted, deduplicated typography token names.
func Variants(tree *token.Tree) []string {
	var variants []string
	for _, e := range typography.Tokens(tree) {
		variants = append(variants, e.Path)
	}
	slices.Sort(variants)
	return slices.Compact(variants)
}

// Text renders the Text component source. The first variant is the default;
// with no variants the component accepts any string and applies no class.
func Text(tree *token.Tree) string {
	d := data{Variants: Variants(tree)}
	if len(d.Variants) > 0 {
		d.Fallback = d.Variants[0]
		d.FallbackClass = "font-" + d.Fallback
	}

	var b strings.Builder
	if err := tmpl.Execute(&b, d); err != nil {
		// static template over plain strings
		panic(err)
	}
	return b.String()
}
