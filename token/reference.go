/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

package token

import (
	"strings"

	"bennypowers.dev/tokentheme/names"
)

// Category prefixes for reference rendering.
const (
	PrefixColor      = "color"
	PrefixBackground = "bg"
)

// IsReference reports whether value is a curly-brace reference such as
// "{brand.primary}". "{}" counts; "{foo" does not.
func IsReference(value string) bool {
	return strings.HasPrefix(value, "{") && strings.HasSuffix(value, "}")
}

// ReferenceName returns the text between the braces of a reference.
func ReferenceName(value string) (string, bool) {
	if !IsReference(value) {
		return "", false
	}
	return value[1 : len(value)-1], true
}

// VarName returns the CSS custom property name (without "--") a reference
// points at under the given category prefix.
func VarName(prefix, value string) string {
	inner, ok := ReferenceName(value)
	if !ok {
		inner = value
	}
	return names.Prefixed(prefix, inner)
}

// RenderValue returns value unchanged unless it is a reference, in which
// case it becomes var(--<prefix>-<name>).
func RenderValue(value, prefix string) string {
	if !IsReference(value) {
		return value
	}
	return "var(--" + VarName(prefix, value) + ")"
}
