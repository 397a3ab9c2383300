/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

package theme_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"bennypowers.dev/tokentheme/internal/mapfs"
	"bennypowers.dev/tokentheme/parser"
	"bennypowers.dev/tokentheme/testutil"
	"bennypowers.dev/tokentheme/theme"
	"bennypowers.dev/tokentheme/token"
)

func loadFixture(t *testing.T) *token.Tree {
	t.Helper()
	tree, err := parser.Parse(testutil.LoadFixtureFile(t, "fixtures/tokens/figma-export.json"), parser.Options{})
	require.NoError(t, err)
	return tree
}

func paths(artifacts []theme.Artifact) []string {
	var out []string
	for _, a := range artifacts {
		out = append(out, a.Path)
	}
	return out
}

func TestGenerate_Layout(t *testing.T) {
	artifacts := theme.Generate(loadFixture(t), theme.Options{
		OutputDir:    "/out",
		ComponentDir: "/src/components",
	})

	assert.Equal(t, []string{
		"/out/styles/font.css",
		"/out/styles/palette.css",
		"/out/styles/shadows.css",
		"/out/styles/spacing.css",
		"/out/styles/typography.css",
		"/out/globals.css",
		"/src/components/Text/index.tsx",
	}, paths(artifacts))
}

func TestGenerate_WithoutComponent(t *testing.T) {
	artifacts := theme.Generate(loadFixture(t), theme.Options{OutputDir: "/out"})

	require.Len(t, artifacts, 6)
	globals := artifacts[5]
	assert.Equal(t, "/out/globals.css", globals.Path)
	assert.NotContains(t, globals.Content, "@source")
}

func TestGenerate_StylesheetsAreBalanced(t *testing.T) {
	artifacts := theme.Generate(loadFixture(t), theme.Options{
		OutputDir:    "/out",
		ComponentDir: "/src/components",
	})

	for _, a := range artifacts {
		if !strings.HasSuffix(a.Path, ".css") {
			continue
		}
		t.Run(a.Path, func(t *testing.T) {
			assert.NotEmpty(t, a.Content)
			testutil.AssertBalancedCSS(t, a.Content)
		})
	}
}

func TestGenerate_Content(t *testing.T) {
	artifacts := theme.Generate(loadFixture(t), theme.Options{
		OutputDir:    "/out",
		ComponentDir: "/src/components",
		FontURLBase:  "/fonts/",
	})
	byPath := make(map[string]string)
	for _, a := range artifacts {
		byPath[a.Path] = a.Content
	}

	assert.Contains(t, byPath["/out/styles/palette.css"], "--color-accent: var(--color-primary);")
	assert.Contains(t, byPath["/out/styles/font.css"], `src: url("/fonts/inter-700.woff2") format("woff2");`)
	assert.Contains(t, byPath["/out/styles/shadows.css"], "--shadow-elevated: ")
	assert.Contains(t, byPath["/out/styles/spacing.css"], "@utility grid-desktop {")
	assert.Contains(t, byPath["/out/styles/typography.css"], "@utility font-header-large {")
	assert.Contains(t, byPath["/out/globals.css"], `@source "../src/components";`)
	assert.Contains(t, byPath["/src/components/Text/index.tsx"], `"header-large"`)
}

func TestGenerate_EmptyTree(t *testing.T) {
	artifacts := theme.Generate(token.NewTree(), theme.Options{OutputDir: "/out"})

	require.Len(t, artifacts, 6)
	for _, a := range artifacts {
		testutil.AssertBalancedCSS(t, a.Content)
	}
}

func TestWrite(t *testing.T) {
	mfs := mapfs.New()
	artifacts := theme.Generate(loadFixture(t), theme.Options{
		OutputDir:    "/project/theme",
		ComponentDir: "/project/src/components",
	})

	require.NoError(t, theme.Write(mfs, artifacts))

	assert.Equal(t, []string{
		"/project/src/components/Text/index.tsx",
		"/project/theme/globals.css",
		"/project/theme/styles/font.css",
		"/project/theme/styles/palette.css",
		"/project/theme/styles/shadows.css",
		"/project/theme/styles/spacing.css",
		"/project/theme/styles/typography.css",
	}, mfs.Files())

	content, err := mfs.ReadFile("/project/theme/globals.css")
	require.NoError(t, err)
	assert.Equal(t, artifacts[5].Content, string(content))
}

func TestWrite_NotADirectory(t *testing.T) {
	mfs := mapfs.New()
	mfs.AddFile("/project/theme", "a file", 0644)

	err := theme.Write(mfs, []theme.Artifact{{Path: "/project/theme/globals.css", Content: "x"}})
	assert.Error(t, err)
}

func TestSourceDir(t *testing.T) {
	tests := []struct {
		name      string
		outputDir string
		component string
		expected  string
	}{
		{"sibling", "/project/theme", "/project/src/components", "../src/components"},
		{"nested", "/project/src", "/project/src/components", "./components"},
		{"same", "/project/theme", "/project/theme", "./"},
		{"relative", "theme", "src/components", "../src/components"},
		{"mixed", "/project/theme", "components", "components"},
		{"none", "/project/theme", "", ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, theme.SourceDir(tt.outputDir, tt.component))
		})
	}
}
