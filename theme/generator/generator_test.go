/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

package generator_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"bennypowers.dev/tokentheme/theme/generator"
	"bennypowers.dev/tokentheme/token"
)

func TestPxToRem(t *testing.T) {
	tests := []struct {
		name     string
		input    token.Number
		expected string
	}{
		{"whole", token.NewNumber(32), "2rem"},
		{"fraction", token.NewNumber(0.5), "0.03125rem"},
		{"zero", token.NewNumber(0), "0rem"},
		{"negative", token.NewNumber(-8), "-0.5rem"},
		{"px string", token.Literal("24px"), "1.5rem"},
		{"keyword passes through", token.Literal("normal"), "normal"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, generator.PxToRem(tt.input))
		})
	}
}

func TestThemeBlock(t *testing.T) {
	got := generator.ThemeBlock([]string{generator.Decl("color-primary", "#f00")})
	assert.Equal(t, "@theme {\n  --color-primary: #f00;\n}\n", got)
	assert.Equal(t, "@theme {\n}\n", generator.ThemeBlock(nil))
}

func TestUtilityAndBlocks(t *testing.T) {
	a := generator.Utility("font-body", "@apply font-inter")
	b := generator.Utility("bg-sunset", "background: red")
	assert.Equal(t,
		"@utility font-body {\n  @apply font-inter;\n}\n\n@utility bg-sunset {\n  background: red;\n}\n",
		generator.Blocks(a, "", b))
}

func TestOptions_FontBase(t *testing.T) {
	assert.Equal(t, "../assets/font", generator.Options{}.FontBase())
	assert.Equal(t, "/fonts", generator.Options{FontURLBase: "/fonts/"}.FontBase())
}

func TestBranches(t *testing.T) {
	tree := token.NewTree()
	font := token.NewTree()
	font.SetToken("body", &token.Token{Type: token.TypeFontStyle, Value: token.FontStyle{Family: "Inter"}})
	tree.SetBranch("font", font)
	typography := token.NewTree()
	typography.SetToken("caption", &token.Token{Type: token.TypeFontStyle, Value: token.FontStyle{Family: "Inter"}})
	tree.SetBranch("typography", typography)

	m := generator.Branches(tree, "font", "typography", "missing")
	var paths []string
	for _, e := range m.Entries() {
		paths = append(paths, e.Path)
	}
	assert.Equal(t, []string{"body", "caption"}, paths)
}

func TestBranches_MatchSanitizedKeys(t *testing.T) {
	tree := token.NewTree()
	fonts := token.NewTree()
	fonts.SetToken("body", &token.Token{Type: token.TypeFontStyle, Value: token.FontStyle{Family: "Inter"}})
	tree.SetBranch("Fonts", fonts)
	typography := token.NewTree()
	typography.SetToken("caption", &token.Token{Type: token.TypeFontStyle, Value: token.FontStyle{Family: "Inter"}})
	tree.SetBranch("Typography", typography)
	tree.SetToken("font", &token.Token{Type: token.TypeFontStyle, Value: token.FontStyle{Family: "Inter"}})

	m := generator.Branches(tree, "font", "typography")
	var paths []string
	for _, e := range m.Entries() {
		paths = append(paths, e.Path)
	}
	assert.Equal(t, []string{"body", "caption"}, paths)
}
