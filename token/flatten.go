/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

package token

import "bennypowers.dev/tokentheme/names"

// Entry is one flattened token with its sanitized, hyphen-joined path.
type Entry struct {
	Path  string
	Token *Token
}

// Map is a flat, insertion-ordered view of a token tree.
type Map struct {
	paths  []string
	tokens map[string]*Token
}

// NewMap returns an empty Map.
func NewMap() *Map {
	return &Map{tokens: make(map[string]*Token)}
}

// Set stores tok under path. A path that already exists keeps its position
// and takes the new token.
func (m *Map) Set(path string, tok *Token) {
	if _, ok := m.tokens[path]; !ok {
		m.paths = append(m.paths, path)
	}
	m.tokens[path] = tok
}

// Get returns the token stored under path.
func (m *Map) Get(path string) (*Token, bool) {
	tok, ok := m.tokens[path]
	return tok, ok
}

// Len returns the number of tokens.
func (m *Map) Len() int {
	return len(m.paths)
}

// Entries returns the tokens in insertion order.
func (m *Map) Entries() []Entry {
	entries := make([]Entry, 0, len(m.paths))
	for _, p := range m.paths {
		entries = append(entries, Entry{Path: p, Token: m.tokens[p]})
	}
	return entries
}

// OfKind returns the entries whose token has the given kind, in order.
func (m *Map) OfKind(kind Kind) []Entry {
	var entries []Entry
	for _, e := range m.Entries() {
		if e.Token.Kind() == kind {
			entries = append(entries, e)
		}
	}
	return entries
}

// Flatten walks the tree depth-first in document order and returns every
// leaf keyed by its sanitized path. Later duplicates overwrite earlier ones.
func Flatten(tree *Tree) *Map {
	m := NewMap()
	flattenInto(m, tree, "")
	return m
}

func flattenInto(m *Map, tree *Tree, prefix string) {
	for _, n := range tree.Nodes() {
		path := names.Join(prefix, names.Sanitize(n.Key))
		if n.IsLeaf() {
			m.Set(names.Sanitize(path), n.Token)
			continue
		}
		flattenInto(m, n.Children, path)
	}
}
