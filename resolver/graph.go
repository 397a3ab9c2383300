/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

// Package resolver checks colour references between tokens. Generators
// render references as var() lookups without following them; the resolver
// follows them to report dangling and circular references and to recover
// literal values for display.
package resolver

import (
	"fmt"

	"bennypowers.dev/tokentheme/names"
	"bennypowers.dev/tokentheme/token"
)

// Reference is one colour reference made by a token.
type Reference struct {
	// Path is the flattened path of the referring token.
	Path string

	// Raw is the reference as written, e.g. "{brand.primary}".
	Raw string

	// Target is the colour variable the reference renders to, without "--".
	Target string
}

// Graph is a directed graph from declared colour variables to the colour
// variables their values reference.
type Graph struct {
	nodes        []string
	values       map[string]token.Color
	dependencies map[string][]string
	dependents   map[string][]string
	refs         []Reference
}

// Build builds the reference graph of a flattened token map. Colour
// tokens declare variables; gradients and shadows only reference them.
func Build(m *token.Map) *Graph {
	g := &Graph{
		values:       make(map[string]token.Color),
		dependencies: make(map[string][]string),
		dependents:   make(map[string][]string),
	}

	for _, e := range m.OfKind(token.KindColor) {
		name := VarName(e.Path)
		if _, seen := g.values[name]; !seen {
			g.nodes = append(g.nodes, name)
		}
		g.values[name] = e.Token.Value.(token.Color)
	}

	for _, e := range m.Entries() {
		for _, raw := range References(e.Token) {
			ref := Reference{Path: e.Path, Raw: raw, Target: token.VarName(token.PrefixColor, raw)}
			g.refs = append(g.refs, ref)
			if e.Token.Kind() != token.KindColor {
				continue
			}
			from := VarName(e.Path)
			g.dependencies[from] = append(g.dependencies[from], ref.Target)
			g.dependents[ref.Target] = append(g.dependents[ref.Target], from)
		}
	}

	return g
}

// VarName returns the colour variable a colour token at path declares.
func VarName(path string) string {
	return names.Prefixed(token.PrefixColor, path)
}

// References returns the colour references in a token's value, in value order.
func References(tok *token.Token) []string {
	var colors []token.Color
	switch v := tok.Value.(type) {
	case token.Color:
		colors = append(colors, v)
	case token.Gradient:
		for _, stop := range v.Stops {
			colors = append(colors, stop.Color)
		}
	case token.Shadow:
		colors = append(colors, v.Color)
	}

	var refs []string
	for _, c := range colors {
		if c.IsReference() {
			refs = append(refs, string(c))
		}
	}
	return refs
}

// Has reports whether a colour token declares the variable.
func (g *Graph) Has(name string) bool {
	_, ok := g.values[name]
	return ok
}

// Nodes returns the declared colour variables in document order.
func (g *Graph) Nodes() []string {
	return g.nodes
}

// Dependencies returns the variables the given variable references.
func (g *Graph) Dependencies(name string) []string {
	if deps, ok := g.dependencies[name]; ok {
		return deps
	}
	return []string{}
}

// Dependents returns the variables that reference the given variable.
func (g *Graph) Dependents(name string) []string {
	if deps, ok := g.dependents[name]; ok {
		return deps
	}
	return []string{}
}

// References returns every colour reference in document order.
func (g *Graph) References() []Reference {
	return g.refs
}

// Dangling returns the references whose target no colour token declares.
func (g *Graph) Dangling() []Reference {
	var dangling []Reference
	for _, ref := range g.refs {
		if !g.Has(ref.Target) {
			dangling = append(dangling, ref)
		}
	}
	return dangling
}

// HasCycle returns true if the graph contains a circular reference.
func (g *Graph) HasCycle() bool {
	return g.FindCycle() != nil
}

// FindCycle returns the first cycle in document order, starting and ending
// at the same variable, or nil if there is none.
func (g *Graph) FindCycle() []string {
	visited := make(map[string]bool)
	recStack := make(map[string]bool)

	for _, node := range g.nodes {
		if cycle := g.findCycleDFS(node, visited, recStack, nil); cycle != nil {
			return cycle
		}
	}
	return nil
}

func (g *Graph) findCycleDFS(node string, visited, recStack map[string]bool, path []string) []string {
	if recStack[node] {
		cycleStart := -1
		for i, n := range path {
			if n == node {
				cycleStart = i
				break
			}
		}
		if cycleStart == -1 {
			panic(fmt.Sprintf("cycle detection invariant violated: node %q in recStack but not in path %v", node, path))
		}
		return append(path[cycleStart:], node)
	}
	if visited[node] {
		return nil
	}

	visited[node] = true
	recStack[node] = true
	path = append(path, node)

	for _, dep := range g.dependencies[node] {
		if cycle := g.findCycleDFS(dep, visited, recStack, path); cycle != nil {
			return cycle
		}
	}

	recStack[node] = false
	return nil
}
