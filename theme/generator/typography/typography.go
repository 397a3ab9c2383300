/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

// Package typography renders font-style tokens as @font-face rules, an
// @theme block of font variables, and one font-<name> utility per style.
package typography

import (
	"math"
	"slices"
	"strconv"
	"strings"

	"bennypowers.dev/tokentheme/names"
	"bennypowers.dev/tokentheme/theme/generator"
	"bennypowers.dev/tokentheme/token"
)

// Branches are the top-level tree keys holding font styles.
var Branches = []string{"font", "typography"}

var (
	defaultWeight        = token.NewNumber(400)
	defaultSize          = token.NewNumber(generator.BaseFontSize)
	defaultLineHeight    = token.NewNumber(100)
	defaultLetterSpacing = token.Literal("normal")
)

// Tokens returns the font-style tokens of tree keyed by sanitized path
// relative to their branch, in document order.
func Tokens(tree *token.Tree) []token.Entry {
	return generator.Branches(tree, Branches...).OfKind(token.KindFontStyle)
}

// Style holds the derived names and values for one font-style token.
type Style struct {
	Key        string
	FamilyName string
	Family     string
	Weight     string
	Leading    string
	TextSize   string
	Tracking   string
	Uppercase  bool
}

// Resolve applies defaults to a font style: weight 400, size 16px,
// line height 100% and letter spacing "normal".
func Resolve(key string, f token.FontStyle) Style {
	family := f.Family
	if family == "" {
		family = "unknown"
	}
	lineHeight, _ := f.LineHeightPercent.Or(defaultLineHeight).Float()
	return Style{
		Key:        key,
		FamilyName: names.Sanitize(family),
		Family:     family,
		Weight:     f.Weight.Or(defaultWeight).String(),
		Leading:    formatLeading(lineHeight / 100),
		TextSize:   generator.PxToRem(f.Size.Or(defaultSize)),
		Tracking:   generator.PxToRem(f.LetterSpacing.Or(defaultLetterSpacing)),
		Uppercase:  f.Uppercase(),
	}
}

// Classes returns the utility classes a style applies.
func (s Style) Classes() []string {
	classes := []string{
		"font-" + s.FamilyName,
		"font-weight-" + s.Weight,
		"leading-" + s.Key,
		"text-size-" + s.Key,
		"tracking-" + s.Key,
	}
	if s.Uppercase {
		classes = append(classes, "uppercase")
	}
	return classes
}

// formatLeading renders whole numbers as integers and anything else
// with two decimals. Zero and NaN fall back to 1.
func formatLeading(v float64) string {
	if v == 0 || math.IsNaN(v) {
		v = 1
	}
	if v == math.Trunc(v) {
		return token.FormatNumber(v)
	}
	sign := ""
	if v < 0 {
		sign, v = "-", -v
	}
	return sign + strconv.FormatFloat(math.Floor(v*100+0.5)/100, 'f', 2, 64)
}

// Generator renders typography.css.
type Generator struct{}

// New creates a typography generator.
func New() *Generator {
	return &Generator{}
}

// Name implements generator.Generator.
func (g *Generator) Name() string { return "typography" }

// Generate implements generator.Generator.
func (g *Generator) Generate(tree *token.Tree, _ generator.Options) string {
	vars := make(map[string]string)
	var utilities []string

	for _, e := range Tokens(tree) {
		s := Resolve(e.Path, e.Token.Value.(token.FontStyle))

		vars["font-"+s.FamilyName] = strconv.Quote(s.Family)
		vars["font-weight-"+s.Weight] = s.Weight
		vars["leading-"+s.Key] = s.Leading
		vars["text-size-"+s.Key] = s.TextSize
		vars["tracking-"+s.Key] = s.Tracking

		utilities = append(utilities, generator.Utility("font-"+s.Key, "@apply "+strings.Join(s.Classes(), " ")))
	}

	keys := make([]string, 0, len(vars))
	for k := range vars {
		keys = append(keys, k)
	}
	slices.Sort(keys)

	decls := make([]string, 0, len(keys))
	for _, k := range keys {
		decls = append(decls, generator.Decl(k, vars[k]))
	}

	return generator.Blocks(generator.ThemeBlock(decls), generator.Blocks(utilities...))
}
