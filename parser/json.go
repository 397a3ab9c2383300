/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

package parser

import (
	"fmt"
	"slices"

	"github.com/tidwall/jsonc"
	"gopkg.in/yaml.v3"

	"bennypowers.dev/tokentheme/token"
)

// Parse parses JSON (comments and trailing commas allowed) or YAML token
// data. Key order is preserved. An object whose "type" member is a string
// is a token; any other object is a group.
func Parse(data []byte, opts Options) (*token.Tree, error) {
	if isLikelyJSON(data) {
		data = jsonc.ToJSON(data)
	}

	var doc yaml.Node
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("failed to parse token document: %w", err)
	}
	if len(doc.Content) == 0 {
		return nil, ErrNotObject
	}
	root := resolveAlias(doc.Content[0])
	if root.Kind != yaml.MappingNode {
		return nil, ErrNotObject
	}

	return decodeGroup(root, nil, opts), nil
}

// isLikelyJSON checks if data appears to be JSON rather than YAML.
func isLikelyJSON(data []byte) bool {
	for _, b := range data {
		switch b {
		case ' ', '\t', '\n', '\r':
			continue
		case 0xEF, 0xBB, 0xBF: // UTF-8 BOM
			continue
		case '{', '[':
			return true
		default:
			return false
		}
	}
	return false
}

func decodeGroup(node *yaml.Node, path []string, opts Options) *token.Tree {
	tree := token.NewTree()
	for i := 0; i+1 < len(node.Content); i += 2 {
		key := node.Content[i].Value
		child := resolveAlias(node.Content[i+1])
		childPath := append(slices.Clip(path), key)

		if child.Kind != yaml.MappingNode {
			opts.skip(childPath, "not an object")
			continue
		}
		if tag, ok := scalarMember(child, "type"); ok {
			tree.SetToken(key, decodeToken(child, tag))
			continue
		}
		tree.SetBranch(key, decodeGroup(child, childPath, opts))
	}
	return tree
}

func decodeToken(node *yaml.Node, tag string) *token.Token {
	tok := &token.Token{Type: tag}
	if desc, ok := scalarMember(node, "description"); ok {
		tok.Description = desc
	}

	kind := token.KindForType(tag)
	if kind == token.KindUnknown {
		tok.Problem = fmt.Sprintf("unsupported type %q", tag)
		return tok
	}

	raw := member(node, "value")
	if raw == nil {
		tok.Problem = "missing value"
		return tok
	}

	value, err := decodeValue(kind, raw)
	if err != nil {
		tok.Problem = err.Error()
		return tok
	}
	tok.Value = value
	return tok
}

func decodeValue(kind token.Kind, node *yaml.Node) (token.Value, error) {
	if node.ShortTag() == "!!null" {
		return nil, fmt.Errorf("line %d: value is null", node.Line)
	}
	if kind != token.KindColor && node.Kind != yaml.MappingNode {
		return nil, fmt.Errorf("line %d: expected an object value for %s token", node.Line, kind)
	}

	switch kind {
	case token.KindColor:
		var v token.Color
		err := node.Decode(&v)
		return v, err
	case token.KindGradient:
		var v token.Gradient
		err := node.Decode(&v)
		return v, err
	case token.KindFontStyle:
		var v token.FontStyle
		err := node.Decode(&v)
		return v, err
	case token.KindShadow:
		var v token.Shadow
		err := node.Decode(&v)
		return v, err
	case token.KindGrid:
		var v token.Grid
		err := node.Decode(&v)
		return v, err
	}
	return nil, fmt.Errorf("unsupported kind %s", kind)
}

// member returns the value node for key in a mapping node.
func member(node *yaml.Node, key string) *yaml.Node {
	for i := 0; i+1 < len(node.Content); i += 2 {
		if node.Content[i].Value == key {
			return resolveAlias(node.Content[i+1])
		}
	}
	return nil
}

// scalarMember returns the string value of key when it is a string scalar.
func scalarMember(node *yaml.Node, key string) (string, bool) {
	v := member(node, key)
	if v == nil || v.Kind != yaml.ScalarNode || v.ShortTag() != "!!str" {
		return "", false
	}
	return v.Value, true
}

func resolveAlias(node *yaml.Node) *yaml.Node {
	for node.Kind == yaml.AliasNode && node.Alias != nil {
		node = node.Alias
	}
	return node
}
