/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

package names_test

import (
	"regexp"
	"testing"

	"bennypowers.dev/tokentheme/names"
)

var identifierPattern = regexp.MustCompile(`^[a-z0-9]([a-z0-9-]*[a-z0-9])?$`)

func TestSanitize(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{"empty", "", ""},
		{"camel case", "headerLarge", "header-large"},
		{"slash path", "Header/Large", "header-large"},
		{"british spelling", "colour-primary", "color-primary"},
		{"palette synonym", "brand palette", "brand-color"},
		{"synonym is case sensitive", "Colour", "colour"},
		{"plural theme word", "Colors", "color"},
		{"plural after camel split", "textColors", "text-color"},
		{"plural inside word is kept", "colorsx", "colorsx"},
		{"plural shadows", "shadows/elevation-1", "shadow-elevation-1"},
		{"plural borders", "Borders", "border"},
		{"punctuation collapses", "--Primary__Blue--", "primary-blue"},
		{"non ascii", "😀 Emoji", "emoji"},
		{"repeated segments", "color-color-primary", "color-primary"},
		{"non adjacent repeats", "grid-layout-grid-columns", "grid-layout-columns"},
		{"palette prefix folds into color", "color-palette-primary", "color-primary"},
		{"dotted", "palette.colors.accent", "color-accent"},
		{"digits", "Heading 1", "heading-1"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := names.Sanitize(tt.input); got != tt.expected {
				t.Errorf("Sanitize(%q) = %q, want %q", tt.input, got, tt.expected)
			}
		})
	}
}

func TestSanitize_Idempotent(t *testing.T) {
	inputs := []string{
		"headerLarge",
		"Header/Large",
		"brandColors/Primary",
		"palette.colors.accent",
		"Typography/Body/Small",
		"shadows/elevation-1",
		"Grid - Desktop (12 col)",
		"Neutrals/900",
		"spacing-spacing-4",
	}
	for _, in := range inputs {
		once := names.Sanitize(in)
		twice := names.Sanitize(once)
		if once != twice {
			t.Errorf("Sanitize not idempotent for %q: %q then %q", in, once, twice)
		}
	}
}

func FuzzSanitize(f *testing.F) {
	for _, seed := range []string{"", "-", "{}", "Header/Large", "ÄÖÜ", "a--b", "Colour_Palettes", "x😀y"} {
		f.Add(seed)
	}
	f.Fuzz(func(t *testing.T, in string) {
		got := names.Sanitize(in)
		if got != "" && !identifierPattern.MatchString(got) {
			t.Errorf("Sanitize(%q) = %q, not a canonical identifier", in, got)
		}
	})
}

func TestDeduplicate(t *testing.T) {
	tests := []struct {
		input    string
		expected string
	}{
		{"", ""},
		{"a", "a"},
		{"a-b-a-c", "a-b-c"},
		{"color-color-primary", "color-primary"},
		{"text-size-text", "text-size"},
	}
	for _, tt := range tests {
		if got := names.Deduplicate(tt.input); got != tt.expected {
			t.Errorf("Deduplicate(%q) = %q, want %q", tt.input, got, tt.expected)
		}
	}
}

func TestJoinAndPrefixed(t *testing.T) {
	if got := names.Join("", "primary"); got != "primary" {
		t.Errorf("Join with empty prefix = %q", got)
	}
	if got := names.Join("color", ""); got != "color" {
		t.Errorf("Join with empty name = %q", got)
	}
	if got := names.Join("color", "primary"); got != "color-primary" {
		t.Errorf("Join = %q", got)
	}
	if got := names.Prefixed("color", "color-primary"); got != "color-primary" {
		t.Errorf("Prefixed(color, color-primary) = %q", got)
	}
	if got := names.Prefixed("grid", "Desktop/Main"); got != "grid-desktop-main" {
		t.Errorf("Prefixed(grid, Desktop/Main) = %q", got)
	}
}
