/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

// Package render provides shared rendering functions for CLI output.
package render

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/mazznoer/csscolorparser"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"bennypowers.dev/tokentheme/resolver"
	"bennypowers.dev/tokentheme/theme/generator/effects"
	"bennypowers.dev/tokentheme/theme/generator/palette"
	"bennypowers.dev/tokentheme/token"
)

// Row holds computed display values for a single token.
type Row struct {
	Name        string `json:"name"`                  // Flattened token path
	Kind        string `json:"kind"`                  // Kind name, "unknown" for skipped tokens
	Type        string `json:"type"`                  // Type tag as written in the document
	Value       string `json:"value"`                 // Display value
	CSS         string `json:"css,omitempty"`         // var() lookup for colour references
	Resolved    string `json:"resolved,omitempty"`    // Literal a reference resolves to
	Description string `json:"description,omitempty"` // Token description
	IsColor     bool   `json:"-"`                     // Whether Value is a parseable colour
}

// ComputeRows transforms flattened tokens into display rows. When graph is
// non-nil, colour references are followed to the literal they stand for.
func ComputeRows(entries []token.Entry, graph *resolver.Graph) []Row {
	rows := make([]Row, 0, len(entries))
	for _, e := range entries {
		row := Row{
			Name:        e.Path,
			Kind:        e.Token.Kind().String(),
			Type:        e.Token.Type,
			Value:       DisplayValue(e.Token),
			Description: e.Token.Description,
		}
		if c, ok := e.Token.Value.(token.Color); ok {
			if c.IsReference() {
				row.CSS = c.Render(token.PrefixColor)
				if graph != nil {
					row.Resolved = resolved(graph, c)
				}
			} else if _, err := csscolorparser.Parse(string(c)); err == nil {
				row.IsColor = true
			}
		}
		rows = append(rows, row)
	}
	return rows
}

func resolved(graph *resolver.Graph, c token.Color) string {
	value, err := graph.ResolveValue(c)
	if err != nil {
		return "(" + err.Error() + ")"
	}
	return value
}

// DisplayValue renders a token value on one line.
func DisplayValue(tok *token.Token) string {
	switch v := tok.Value.(type) {
	case token.Color:
		return string(v)
	case token.Gradient:
		return palette.LinearGradient(v)
	case token.Shadow:
		return effects.BoxShadow(v)
	case token.FontStyle:
		parts := []string{v.Family}
		if v.Weight.IsSet() {
			parts = append(parts, v.Weight.String())
		}
		if v.Size.IsSet() {
			parts = append(parts, v.Size.String()+"px")
		}
		if v.Uppercase() {
			parts = append(parts, "uppercase")
		}
		return strings.Join(parts, " ")
	case token.Grid:
		var parts []string
		if v.Count.IsSet() {
			parts = append(parts, v.Count.String()+" columns")
		}
		if v.GutterSize.IsSet() {
			parts = append(parts, "gutter "+v.GutterSize.String()+"px")
		}
		if v.SectionSize.IsSet() {
			parts = append(parts, "section "+v.SectionSize.String()+"px")
		}
		return strings.Join(parts, ", ")
	default:
		return "(" + tok.Problem + ")"
	}
}

// ColumnWidths calculates the max width needed for each column.
func ColumnWidths(rows []Row) (name, kind int) {
	name, kind = 4, 4 // minimums for headers
	for _, r := range rows {
		name = max(name, len(r.Name))
		kind = max(kind, len(r.Kind))
	}
	return
}

// ColorSwatch returns a 24-bit ANSI color block for the given color value.
func ColorSwatch(value string) string {
	c, err := csscolorparser.Parse(value)
	if err != nil {
		return ""
	}
	r, g, b, _ := c.RGBA255()
	return fmt.Sprintf("\x1b[48;2;%d;%d;%dm  \x1b[0m ", r, g, b)
}

// Table renders rows as an aligned table. Swatches are drawn only when
// colors is set.
func Table(w io.Writer, rows []Row, colors bool) error {
	nameW, kindW := ColumnWidths(rows)
	for _, r := range rows {
		swatch := ""
		if colors && r.IsColor {
			swatch = ColorSwatch(r.Value)
		}
		ref := ""
		if r.CSS != "" {
			ref = " → " + r.CSS
		}
		if r.Resolved != "" {
			ref += " → " + r.Resolved
		}
		if _, err := fmt.Fprintf(w, "%-*s  %-*s  %s%s%s\n", nameW, r.Name, kindW, r.Kind, swatch, r.Value, ref); err != nil {
			return err
		}
	}
	return nil
}

// Markdown renders rows as markdown tables grouped by kind.
func Markdown(w io.Writer, rows []Row) error {
	kindOrder := make([]string, 0)
	byKind := make(map[string][]Row)
	for _, r := range rows {
		if _, exists := byKind[r.Kind]; !exists {
			kindOrder = append(kindOrder, r.Kind)
		}
		byKind[r.Kind] = append(byKind[r.Kind], r)
	}

	var sb strings.Builder
	for i, kind := range kindOrder {
		if i > 0 {
			sb.WriteString("\n")
		}
		sb.WriteString("## " + toTitleCase(kind) + "\n\n")
		sb.WriteString("| Name | Value | Description |\n")
		sb.WriteString("|------|-------|-------------|\n")
		for _, r := range byKind[kind] {
			fmt.Fprintf(&sb, "| `%s` | `%s` | %s |\n", r.Name, escapePipes(r.Value), escapePipes(r.Description))
		}
	}
	_, err := io.WriteString(w, sb.String())
	return err
}

// JSON renders rows as an indented JSON array.
func JSON(w io.Writer, rows []Row) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(rows)
}

func escapePipes(s string) string {
	return strings.ReplaceAll(s, "|", `\|`)
}

// toTitleCase converts a string to title case.
func toTitleCase(s string) string {
	return cases.Title(language.English).String(s)
}
