/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

package token

import (
	"bytes"
	"encoding/json"
)

// Node is one entry of a Tree: either a token leaf or a nested branch.
type Node struct {
	Key      string
	Token    *Token
	Children *Tree
}

// IsLeaf reports whether the node holds a token.
func (n *Node) IsLeaf() bool {
	return n.Token != nil
}

// Tree is an ordered mapping from keys to nodes. Keys keep the order in
// which they were first set.
type Tree struct {
	nodes []*Node
	index map[string]int
}

// NewTree returns an empty tree.
func NewTree() *Tree {
	return &Tree{index: make(map[string]int)}
}

// Len returns the number of direct children.
func (t *Tree) Len() int {
	if t == nil {
		return 0
	}
	return len(t.nodes)
}

// Nodes returns the direct children in document order.
func (t *Tree) Nodes() []*Node {
	if t == nil {
		return nil
	}
	return t.nodes
}

// Get returns the direct child with the given key.
func (t *Tree) Get(key string) (*Node, bool) {
	if t == nil {
		return nil, false
	}
	i, ok := t.index[key]
	if !ok {
		return nil, false
	}
	return t.nodes[i], true
}

// Branch returns the subtree under key, or nil if key is absent or a leaf.
func (t *Tree) Branch(key string) *Tree {
	n, ok := t.Get(key)
	if !ok || n.IsLeaf() {
		return nil
	}
	return n.Children
}

// SetToken stores a leaf under key.
func (t *Tree) SetToken(key string, tok *Token) {
	t.set(&Node{Key: key, Token: tok})
}

// SetBranch stores a subtree under key.
func (t *Tree) SetBranch(key string, child *Tree) {
	t.set(&Node{Key: key, Children: child})
}

// set replaces an existing key in place or appends a new one.
func (t *Tree) set(n *Node) {
	if i, ok := t.index[n.Key]; ok {
		t.nodes[i] = n
		return
	}
	t.index[n.Key] = len(t.nodes)
	t.nodes = append(t.nodes, n)
}

// Merge deep-merges other into t. Branches present in both are merged
// recursively; any other collision is won by other.
func (t *Tree) Merge(other *Tree) {
	for _, n := range other.Nodes() {
		existing, ok := t.Get(n.Key)
		if ok && !existing.IsLeaf() && !n.IsLeaf() {
			existing.Children.Merge(n.Children)
			continue
		}
		t.set(n)
	}
}

// MarshalJSON writes the tree as a JSON object in document order.
func (t *Tree) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteByte('{')
	for i, n := range t.Nodes() {
		if i > 0 {
			buf.WriteByte(',')
		}
		key, err := json.Marshal(n.Key)
		if err != nil {
			return nil, err
		}
		buf.Write(key)
		buf.WriteByte(':')
		var child []byte
		if n.IsLeaf() {
			child, err = json.Marshal(n.Token)
		} else {
			child, err = n.Children.MarshalJSON()
		}
		if err != nil {
			return nil, err
		}
		buf.Write(child)
	}
	buf.WriteByte('}')
	return buf.Bytes(), nil
}

type tokenJSON struct {
	Type        string `json:"type"`
	Description string `json:"description,omitempty"`
	Value       any    `json:"value"`
}

// MarshalJSON writes the token in its document form.
func (t *Token) MarshalJSON() ([]byte, error) {
	out := tokenJSON{Type: t.Type, Description: t.Description}
	if t.Value != nil {
		out.Value = t.Value
	}
	return json.Marshal(out)
}
