/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

// Package globals renders the globals.css entry stylesheet.
package globals

import (
	"strconv"
	"strings"

	"bennypowers.dev/tokentheme/theme/generator"
	"bennypowers.dev/tokentheme/token"
)

// StylesDir is the directory, relative to globals.css, holding the sheets.
const StylesDir = "styles"

// Sheets are the imported stylesheets in import order.
var Sheets = []string{"font", "palette", "shadows", "spacing", "typography"}

const baseLayer = `@layer base {
  * {
    @apply antialiased;
  }

  button:not(:disabled),
  select:not(:disabled),
  [role="button"] {
    @apply cursor-pointer;
  }
}
`

// Generator renders globals.css. It ignores the token tree.
type Generator struct{}

// New creates a globals generator.
func New() *Generator {
	return &Generator{}
}

// Name implements generator.Generator.
func (g *Generator) Name() string { return "globals" }

// Generate implements generator.Generator.
func (g *Generator) Generate(_ *token.Tree, opts generator.Options) string {
	var b strings.Builder
	b.WriteString("@import \"tailwindcss\";\n\n")
	for _, sheet := range Sheets {
		b.WriteString("@import " + strconv.Quote("./"+StylesDir+"/"+sheet+".css") + ";\n")
	}
	b.WriteString("\n")
	if opts.SourceDir != "" {
		b.WriteString("@source " + strconv.Quote(opts.SourceDir) + ";\n\n")
	}
	b.WriteString(baseLayer)
	return b.String()
}
