/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

// Package theme assembles the generated stylesheets and component into
// output files.
package theme

import (
	"fmt"
	"path/filepath"
	"strings"
	"sync"

	"bennypowers.dev/tokentheme/component"
	"bennypowers.dev/tokentheme/fs"
	"bennypowers.dev/tokentheme/theme/generator"
	"bennypowers.dev/tokentheme/theme/generator/effects"
	"bennypowers.dev/tokentheme/theme/generator/globals"
	"bennypowers.dev/tokentheme/theme/generator/grid"
	"bennypowers.dev/tokentheme/theme/generator/palette"
	"bennypowers.dev/tokentheme/theme/generator/typography"
	"bennypowers.dev/tokentheme/token"
)

// GlobalsFile is the entry stylesheet's file name.
const GlobalsFile = "globals.css"

// Artifact is one generated output file.
type Artifact struct {
	Path    string
	Content string
}

// Options configures theme generation.
type Options struct {
	// OutputDir receives globals.css and the styles directory.
	OutputDir string

	// ComponentDir receives Text/index.tsx. Empty skips the component.
	ComponentDir string

	// FontURLBase is the directory @font-face sources point at.
	FontURLBase string
}

// Generators returns the stylesheet generators in globals.css import order.
func Generators() []generator.Generator {
	return []generator.Generator{
		typography.NewFontFaces(),
		palette.New(),
		effects.New(),
		grid.New(),
		typography.New(),
	}
}

// Generate renders every artifact for tree. Stylesheets come first in
// import order, then globals.css, then the component when requested.
func Generate(tree *token.Tree, opts Options) []Artifact {
	genOpts := generator.Options{
		FontURLBase: opts.FontURLBase,
		SourceDir:   SourceDir(opts.OutputDir, opts.ComponentDir),
	}

	gens := Generators()
	sheets := make([]Artifact, len(gens))

	var wg sync.WaitGroup
	for i, g := range gens {
		wg.Add(1)
		go func() {
			defer wg.Done()
			sheets[i] = Artifact{
				Path:    filepath.Join(opts.OutputDir, globals.StylesDir, g.Name()+".css"),
				Content: g.Generate(tree, genOpts),
			}
		}()
	}
	wg.Wait()

	artifacts := append(sheets, Artifact{
		Path:    filepath.Join(opts.OutputDir, GlobalsFile),
		Content: globals.New().Generate(tree, genOpts),
	})

	if opts.ComponentDir != "" {
		artifacts = append(artifacts, Artifact{
			Path:    filepath.Join(opts.ComponentDir, filepath.FromSlash(component.Path)),
			Content: component.Text(tree),
		})
	}
	return artifacts
}

// SourceDir returns componentDir as globals.css in outputDir should refer
// to it: relative to outputDir and slash-separated. It falls back to
// componentDir as given when no relative path exists.
func SourceDir(outputDir, componentDir string) string {
	if componentDir == "" {
		return ""
	}
	rel, err := filepath.Rel(outputDir, componentDir)
	if err != nil {
		return filepath.ToSlash(componentDir)
	}
	rel = filepath.ToSlash(rel)
	switch {
	case rel == ".":
		return "./"
	case rel == "..", strings.HasPrefix(rel, "../"):
		return rel
	default:
		return "./" + rel
	}
}

// Write writes artifacts, creating parent directories as needed.
func Write(filesystem fs.FileSystem, artifacts []Artifact) error {
	for _, a := range artifacts {
		if err := filesystem.MkdirAll(filepath.Dir(a.Path), 0755); err != nil {
			return fmt.Errorf("failed to create directory for %s: %w", a.Path, err)
		}
		if err := filesystem.WriteFile(a.Path, []byte(a.Content), 0644); err != nil {
			return fmt.Errorf("failed to write %s: %w", a.Path, err)
		}
	}
	return nil
}
