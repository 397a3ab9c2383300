/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

// Package validator reports what theme generation would silently skip or
// get wrong in a token document.
package validator

import (
	"fmt"
	"slices"
	"strings"

	"github.com/mazznoer/csscolorparser"

	"bennypowers.dev/tokentheme/fs"
	"bennypowers.dev/tokentheme/names"
	"bennypowers.dev/tokentheme/parser"
	"bennypowers.dev/tokentheme/resolver"
	"bennypowers.dev/tokentheme/token"
)

// supportedTypes lists the type tags shown in suggestions.
var supportedTypes = []string{
	token.TypeColor,
	token.TypeGradient,
	token.TypeFontStyle,
	token.TypeShadow,
	token.TypeGrid,
}

// ValidationError represents one problem in a token document.
type ValidationError struct {
	// FilePath is the path to the file containing the error.
	FilePath string
	// Path is the dotted document path to the problematic element.
	Path string
	// Message describes what's wrong.
	Message string
	// Suggestion provides an actionable fix.
	Suggestion string
}

// Error implements the error interface.
func (e *ValidationError) Error() string {
	var sb strings.Builder
	if e.FilePath != "" {
		sb.WriteString(e.FilePath)
		sb.WriteString(": ")
	}
	if e.Path != "" {
		sb.WriteString(e.Path)
		sb.WriteString(": ")
	}
	sb.WriteString(e.Message)
	if e.Suggestion != "" {
		sb.WriteString(" (")
		sb.WriteString(e.Suggestion)
		sb.WriteString(")")
	}
	return sb.String()
}

// leaf is a token with its document path and flattened path.
type leaf struct {
	source []string
	path   string
	token  *token.Token
}

func (l leaf) dotted() string {
	return strings.Join(l.source, ".")
}

// ValidateFile parses and validates a token document. Entries the parser
// skips are reported along with everything Validate finds.
func ValidateFile(filesystem fs.FileSystem, filePath string) []ValidationError {
	var errs []ValidationError
	tree, err := parser.ParseFile(filesystem, filePath, parser.Options{
		OnSkip: func(path []string, reason string) {
			errs = append(errs, ValidationError{
				FilePath:   filePath,
				Path:       strings.Join(path, "."),
				Message:    "skipped: " + reason,
				Suggestion: "tokens are objects with a string \"type\" and a \"value\"",
			})
		},
	})
	if err != nil {
		return []ValidationError{{
			FilePath: filePath,
			Message:  fmt.Sprintf("failed to parse content: %v", err),
		}}
	}

	for _, e := range Validate(tree) {
		e.FilePath = filePath
		errs = append(errs, e)
	}
	return errs
}

// Validate checks a parsed token tree. It reports tokens that could not be
// decoded, unparseable colour literals, font styles without a family, paths
// that collide after sanitizing, dangling references and reference cycles.
func Validate(tree *token.Tree) []ValidationError {
	leaves := collect(tree, nil, "")

	var errs []ValidationError
	for _, l := range leaves {
		errs = append(errs, validateLeaf(l)...)
	}
	errs = append(errs, collisions(leaves)...)
	errs = append(errs, references(leaves)...)
	return errs
}

func collect(tree *token.Tree, source []string, prefix string) []leaf {
	var leaves []leaf
	for _, n := range tree.Nodes() {
		src := append(slices.Clip(source), n.Key)
		path := names.Join(prefix, names.Sanitize(n.Key))
		if n.IsLeaf() {
			leaves = append(leaves, leaf{source: src, path: names.Sanitize(path), token: n.Token})
			continue
		}
		leaves = append(leaves, collect(n.Children, src, path)...)
	}
	return leaves
}

func validateLeaf(l leaf) []ValidationError {
	tok := l.token
	if tok.Problem != "" {
		e := ValidationError{Path: l.dotted(), Message: tok.Problem}
		if token.KindForType(tok.Type) == token.KindUnknown {
			e.Suggestion = "supported types: " + strings.Join(supportedTypes, ", ")
		}
		return []ValidationError{e}
	}

	var errs []ValidationError
	for _, c := range literalColors(tok) {
		if _, err := csscolorparser.Parse(c); err != nil {
			errs = append(errs, ValidationError{
				Path:       l.dotted(),
				Message:    fmt.Sprintf("invalid color %q", c),
				Suggestion: "use a CSS color such as \"#ff0000\" or a {reference}",
			})
		}
	}

	if f, ok := tok.Value.(token.FontStyle); ok && f.Family == "" {
		errs = append(errs, ValidationError{
			Path:       l.dotted(),
			Message:    "font style has no fontFamily",
			Suggestion: "the family renders as \"unknown\" and gets no @font-face",
		})
	}
	return errs
}

// literalColors returns the non-reference colours of a token's value.
func literalColors(tok *token.Token) []string {
	var colors []token.Color
	switch v := tok.Value.(type) {
	case token.Color:
		colors = append(colors, v)
	case token.Gradient:
		for _, stop := range v.Stops {
			colors = append(colors, stop.Color)
		}
	case token.Shadow:
		if v.Color != "" {
			colors = append(colors, v.Color)
		}
	}

	var literals []string
	for _, c := range colors {
		if !c.IsReference() {
			literals = append(literals, string(c))
		}
	}
	return literals
}

// renderedName is the name a leaf is emitted under. Colour tokens collide
// on their variable name, so "palette.primary" and "color.primary" clash.
func renderedName(l leaf) string {
	if l.token.Kind() == token.KindColor {
		return resolver.VarName(l.path)
	}
	return l.path
}

func collisions(leaves []leaf) []ValidationError {
	var (
		order   []string
		sources = make(map[string][]string)
	)
	for _, l := range leaves {
		name := renderedName(l)
		if _, ok := sources[name]; !ok {
			order = append(order, name)
		}
		sources[name] = append(sources[name], l.dotted())
	}

	var errs []ValidationError
	for _, name := range order {
		src := sources[name]
		if len(src) < 2 {
			continue
		}
		errs = append(errs, ValidationError{
			Path:       src[len(src)-1],
			Message:    fmt.Sprintf("%s all render as %q", strings.Join(src, ", "), name),
			Suggestion: "the last one wins; rename the others",
		})
	}
	return errs
}

func references(leaves []leaf) []ValidationError {
	m := token.NewMap()
	sourceOf := make(map[string]string)
	for _, l := range leaves {
		m.Set(l.path, l.token)
		sourceOf[l.path] = l.dotted()
	}
	graph := resolver.Build(m)

	var errs []ValidationError
	for _, ref := range graph.Dangling() {
		errs = append(errs, ValidationError{
			Path:       sourceOf[ref.Path],
			Message:    fmt.Sprintf("reference %s does not match any color token", ref.Raw),
			Suggestion: fmt.Sprintf("it renders as var(--%s)", ref.Target),
		})
	}
	if cycle := graph.FindCycle(); cycle != nil {
		errs = append(errs, ValidationError{
			Message: "circular reference: " + strings.Join(cycle, " -> "),
		})
	}
	return errs
}
