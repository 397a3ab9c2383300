/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

// Package names turns arbitrary token path strings into canonical,
// hyphenated, lowercase identifiers for CSS custom properties and utilities.
package names

import (
	"regexp"
	"strings"
)

var (
	camelBoundary = regexp.MustCompile(`([a-z])([A-Z])`)

	// colorSynonyms keeps names short by folding spelling variants into "color".
	colorSynonyms = regexp.MustCompile(`(colour|palette)`)

	// pluralThemeWord matches common theme words with a trailing "s".
	pluralThemeWord = regexp.MustCompile(`(?i)\b(color|gradient|token|font|border|shadow|spacing|size|background|text|surface|neutral|accent)s\b`)

	nonAlphanumeric = regexp.MustCompile(`[^a-zA-Z0-9]`)
	repeatedHyphens = regexp.MustCompile(`-+`)
)

// Sanitize converts a raw token name or path into a CSS identifier.
//
// The steps run in order, each on the previous output:
//
//	"brandColors/Primary"   -> "brand-color-primary"
//	"palette.colors.accent" -> "color-accent"
//	"Spacings"              -> "spacing"
//
// Sanitize is total: the empty string maps to the empty string.
func Sanitize(raw string) string {
	s := camelBoundary.ReplaceAllString(raw, "${1}-${2}")
	s = colorSynonyms.ReplaceAllString(s, "color")
	s = pluralThemeWord.ReplaceAllString(s, "${1}")
	s = nonAlphanumeric.ReplaceAllString(s, "-")
	s = repeatedHyphens.ReplaceAllString(s, "-")
	s = strings.Trim(s, "-")
	s = strings.ToLower(s)
	return Deduplicate(s)
}

// Deduplicate keeps only the first occurrence of each hyphen-separated
// segment, so prefixing "color-" onto "color-primary" stays "color-primary".
func Deduplicate(name string) string {
	parts := strings.Split(name, "-")
	seen := make(map[string]bool, len(parts))
	kept := parts[:0:0]
	for _, part := range parts {
		if seen[part] {
			continue
		}
		seen[part] = true
		kept = append(kept, part)
	}
	return strings.Join(kept, "-")
}

// Join joins a prefix and a name with a hyphen, omitting the hyphen when
// either side is empty.
func Join(prefix, name string) string {
	switch {
	case prefix == "":
		return name
	case name == "":
		return prefix
	default:
		return prefix + "-" + name
	}
}

// Prefixed sanitizes name with a category prefix, e.g. Prefixed("color", "Brand/Primary")
// returns "color-brand-primary".
func Prefixed(prefix, name string) string {
	return Sanitize(Join(prefix, name))
}
