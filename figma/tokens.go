/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

package figma

import (
	"gopkg.in/yaml.v3"

	"bennypowers.dev/tokentheme/names"
	"bennypowers.dev/tokentheme/token"
)

const (
	resolvedColor = "COLOR"
	variableAlias = "VARIABLE_ALIAS"
)

// Bundle branch keys.
const (
	BranchPalette = "palette"
	BranchFont    = "font"
)

// Bundle assembles a token document from palette and font branches.
// Nil branches are empty.
func Bundle(palette, font *token.Tree) *token.Tree {
	if palette == nil {
		palette = token.NewTree()
	}
	if font == nil {
		font = token.NewTree()
	}
	tree := token.NewTree()
	tree.SetBranch(BranchPalette, palette)
	tree.SetBranch(BranchFont, font)
	return tree
}

// Empty returns a bundle with no tokens.
func Empty() *token.Tree {
	return Bundle(nil, nil)
}

// PaletteVariables converts colour variables to COLOR tokens keyed by
// sanitized variable name. Only each variable's first mode is read.
func PaletteVariables(vars Ordered[Variable]) *token.Tree {
	tree := token.NewTree()
	for _, m := range vars {
		v := m.Value
		if v.ResolvedType != resolvedColor || len(v.ValuesByMode) == 0 {
			continue
		}
		value := v.ValuesByMode[0].Value
		tree.SetToken(names.Sanitize(v.Name), &token.Token{
			Type:        token.TypeFigmaColor,
			Description: v.Description,
			Value:       token.Color(paletteValue(&value, vars)),
		})
	}
	return tree
}

// paletteValue renders a variable mode value: strings pass through,
// aliases become {references} and RGBA objects become rgb() colours.
func paletteValue(node *yaml.Node, vars Ordered[Variable]) string {
	switch node.Kind {
	case yaml.ScalarNode:
		if node.ShortTag() == "!!str" {
			return node.Value
		}
		return ""
	case yaml.MappingNode:
	default:
		return ""
	}

	var alias struct {
		Type string `yaml:"type"`
		ID   string `yaml:"id"`
	}
	if err := node.Decode(&alias); err == nil && alias.Type == variableAlias {
		name := alias.ID
		if target, ok := vars.Get(alias.ID); ok && target.Name != "" {
			name = target.Name
		}
		return "{" + names.Sanitize(name) + "}"
	}

	var rgba token.RGBA
	if err := node.Decode(&rgba); err == nil && hasMember(node, "r") {
		return rgba.CSS()
	}
	return ""
}

func hasMember(node *yaml.Node, key string) bool {
	for i := 0; i+1 < len(node.Content); i += 2 {
		if node.Content[i].Value == key {
			return true
		}
	}
	return false
}

// LibraryTextStyles converts published TEXT styles to font style tokens
// keyed by the name of the node that defines them.
func LibraryTextStyles(styles []PublishedStyle, nodes Ordered[*NodeEntry]) *token.Tree {
	tree := token.NewTree()
	for _, s := range styles {
		if s.StyleType != StyleText {
			continue
		}
		entry, ok := nodes.Get(s.NodeID)
		if !ok || entry == nil || entry.Document.Style == nil {
			continue
		}
		tree.SetToken(entry.Document.Name, &token.Token{
			Type:  token.TypeFigmaText,
			Value: entry.Document.Style.FontStyle(),
		})
	}
	return tree
}

// DocumentFillStyles derives COLOR tokens from FILL styles, using the
// first fill of the first node that applies each style.
func DocumentFillStyles(file *FileResponse) *token.Tree {
	tree := token.NewTree()
	for _, m := range file.Styles {
		if m.Value.StyleType != StyleFill {
			continue
		}
		node := FindStyle(&file.Document, m.Key, "fill")
		if node == nil || len(node.Fills) == 0 {
			continue
		}
		rgba := token.RGBA{}
		if c := node.Fills[0].Color; c != nil {
			rgba = *c
		}
		tree.SetToken(names.Sanitize(m.Value.Name), &token.Token{
			Type:        token.TypeFigmaColor,
			Description: m.Value.Description,
			Value:       token.Color(rgba.CSS()),
		})
	}
	return tree
}

// DocumentTextStyles derives font style tokens from TEXT styles, using the
// text style of the first node that applies each style.
func DocumentTextStyles(file *FileResponse) *token.Tree {
	tree := token.NewTree()
	for _, m := range file.Styles {
		if m.Value.StyleType != StyleText {
			continue
		}
		node := FindStyle(&file.Document, m.Key, "text")
		if node == nil || node.Style == nil {
			continue
		}
		tree.SetToken(names.Sanitize(m.Value.Name), &token.Token{
			Type:        token.TypeFigmaText,
			Description: m.Value.Description,
			Value:       node.Style.FontStyle(),
		})
	}
	return tree
}

// FindStyle searches the tree depth-first for the first leaf node whose
// styles map styleKey ("fill" or "text") to styleID.
func FindStyle(node *Node, styleID, styleKey string) *Node {
	if node.IsLeaf() {
		if node.Styles[styleKey] == styleID {
			return node
		}
		return nil
	}
	for i := range node.Children {
		if found := FindStyle(&node.Children[i], styleID, styleKey); found != nil {
			return found
		}
	}
	return nil
}
