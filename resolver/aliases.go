/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

package resolver

import (
	"fmt"
	"strings"

	"bennypowers.dev/tokentheme/token"
)

// Resolve follows references from the named colour variable until it
// reaches a literal colour.
func (g *Graph) Resolve(name string) (string, error) {
	seen := make(map[string]bool)
	chain := []string{}
	for {
		value, ok := g.values[name]
		if !ok {
			return "", fmt.Errorf("%w: %s", ErrUnresolvedReference, name)
		}
		if seen[name] {
			return "", fmt.Errorf("%w: %s", ErrCircularReference, strings.Join(append(chain, name), " -> "))
		}
		seen[name] = true
		chain = append(chain, name)

		if !value.IsReference() {
			return string(value), nil
		}
		name = token.VarName(token.PrefixColor, string(value))
	}
}

// ResolveValue resolves a colour as written in a token. Literals are
// returned unchanged.
func (g *Graph) ResolveValue(c token.Color) (string, error) {
	if !c.IsReference() {
		return string(c), nil
	}
	return g.Resolve(token.VarName(token.PrefixColor, string(c)))
}
