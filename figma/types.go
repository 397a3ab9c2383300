/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

package figma

import (
	"fmt"

	"gopkg.in/yaml.v3"

	"bennypowers.dev/tokentheme/token"
)

// Member is one key/value pair of a JSON object.
type Member[T any] struct {
	Key   string
	Value T
}

// Ordered is a JSON object decoded with its key order intact. Token
// output follows API response order, which a Go map would lose.
type Ordered[T any] []Member[T]

// UnmarshalYAML decodes a mapping node member by member.
func (o *Ordered[T]) UnmarshalYAML(node *yaml.Node) error {
	if node.Kind != yaml.MappingNode {
		return fmt.Errorf("line %d: expected an object", node.Line)
	}
	members := make(Ordered[T], 0, len(node.Content)/2)
	for i := 0; i+1 < len(node.Content); i += 2 {
		var v T
		if err := node.Content[i+1].Decode(&v); err != nil {
			return err
		}
		members = append(members, Member[T]{Key: node.Content[i].Value, Value: v})
	}
	*o = members
	return nil
}

// Get returns the value stored under key.
func (o Ordered[T]) Get(key string) (T, bool) {
	for _, m := range o {
		if m.Key == key {
			return m.Value, true
		}
	}
	var zero T
	return zero, false
}

// StylesResponse is the body of GET /v1/files/:key/styles.
type StylesResponse struct {
	Meta struct {
		Styles []PublishedStyle `yaml:"styles"`
	} `yaml:"meta"`
}

// PublishedStyle is a style published from the file's library.
type PublishedStyle struct {
	Key       string `yaml:"key"`
	NodeID    string `yaml:"node_id"`
	Name      string `yaml:"name"`
	StyleType string `yaml:"style_type"`
}

// NodesResponse is the body of GET /v1/files/:key/nodes.
type NodesResponse struct {
	Nodes Ordered[*NodeEntry] `yaml:"nodes"`
}

// NodeEntry wraps a requested node. Unknown ids come back as null.
type NodeEntry struct {
	Document Node `yaml:"document"`
}

// VariablesResponse is the body of GET /v1/files/:key/variables/local.
type VariablesResponse struct {
	Meta struct {
		Variables Ordered[Variable] `yaml:"variables"`
	} `yaml:"meta"`
}

// Variable is a local variable. Values are keyed by mode id.
type Variable struct {
	ID           string             `yaml:"id"`
	Name         string             `yaml:"name"`
	Description  string             `yaml:"description"`
	ResolvedType string             `yaml:"resolvedType"`
	ValuesByMode Ordered[yaml.Node] `yaml:"valuesByMode"`
}

// FileResponse is the body of GET /v1/files/:key.
type FileResponse struct {
	Document Node           `yaml:"document"`
	Styles   Ordered[Style] `yaml:"styles"`
}

// Style is a document style definition, keyed by style id.
type Style struct {
	Key         string `yaml:"key"`
	Name        string `yaml:"name"`
	StyleType   string `yaml:"styleType"`
	Description string `yaml:"description"`
}

// Style types.
const (
	StyleFill = "FILL"
	StyleText = "TEXT"
)

// Node is a document tree node. Only the fields token extraction reads
// are decoded.
type Node struct {
	ID       string            `yaml:"id"`
	Name     string            `yaml:"name"`
	Type     string            `yaml:"type"`
	Children []Node            `yaml:"children"`
	Styles   map[string]string `yaml:"styles"`
	Fills    []Paint           `yaml:"fills"`
	Style    *TypeStyle        `yaml:"style"`
}

// IsLeaf reports whether the node has no children.
func (n *Node) IsLeaf() bool {
	return len(n.Children) == 0
}

// Paint is a node fill.
type Paint struct {
	Type  string      `yaml:"type"`
	Color *token.RGBA `yaml:"color"`
}

// TypeStyle is the text style of a TEXT node.
type TypeStyle struct {
	FontFamily                string       `yaml:"fontFamily"`
	Italic                    bool         `yaml:"italic"`
	FontWeight                token.Number `yaml:"fontWeight"`
	FontSize                  token.Number `yaml:"fontSize"`
	TextCase                  string       `yaml:"textCase"`
	TextDecoration            string       `yaml:"textDecoration"`
	LetterSpacing             token.Number `yaml:"letterSpacing"`
	LineHeightPx              token.Number `yaml:"lineHeightPx"`
	LineHeightPercentFontSize token.Number `yaml:"lineHeightPercentFontSize"`
}

// FontStyle converts the text style to a font style token value.
func (s TypeStyle) FontStyle() token.FontStyle {
	f := token.FontStyle{
		Family:            s.FontFamily,
		Weight:            s.FontWeight,
		Size:              s.FontSize,
		LineHeight:        s.LineHeightPx,
		LineHeightPercent: s.LineHeightPercentFontSize,
		LetterSpacing:     s.LetterSpacing,
		TextCase:          s.TextCase,
		Decoration:        s.TextDecoration,
	}
	if s.Italic {
		f.Style = "italic"
	}
	return f
}
