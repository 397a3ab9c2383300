/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

package typography

import (
	"slices"
	"strconv"
	"strings"

	"bennypowers.dev/tokentheme/names"
	"bennypowers.dev/tokentheme/theme/generator"
	"bennypowers.dev/tokentheme/token"
)

// FontFaces renders font.css: one @font-face per distinct family and
// weight. Styles without a family are skipped.
type FontFaces struct{}

// NewFontFaces creates a font-face generator.
func NewFontFaces() *FontFaces {
	return &FontFaces{}
}

// Name implements generator.Generator.
func (g *FontFaces) Name() string { return "font" }

// Generate implements generator.Generator.
func (g *FontFaces) Generate(tree *token.Tree, opts generator.Options) string {
	seen := make(map[string]bool)
	var faces []string
	for _, e := range Tokens(tree) {
		s := Resolve(e.Path, e.Token.Value.(token.FontStyle))
		face := s.Family + "|" + s.Weight
		if !seen[face] {
			seen[face] = true
			faces = append(faces, face)
		}
	}
	slices.Sort(faces)

	blocks := make([]string, 0, len(faces))
	for _, face := range faces {
		family, weight, _ := strings.Cut(face, "|")
		blocks = append(blocks, fontFace(opts.FontBase(), family, weight))
	}
	return generator.Blocks(blocks...)
}

func fontFace(base, family, weight string) string {
	src := base + "/" + names.Sanitize(family) + "-" + weight + ".woff2"
	var b strings.Builder
	b.WriteString("@font-face {\n")
	b.WriteString("  font-family: " + strconv.Quote(family) + ";\n")
	b.WriteString("  src: url(" + strconv.Quote(src) + ") format(\"woff2\");\n")
	b.WriteString("  font-weight: " + weight + ";\n")
	b.WriteString("}\n")
	return b.String()
}
