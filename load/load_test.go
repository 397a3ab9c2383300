/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

package load_test

import (
	"errors"
	"testing"

	"bennypowers.dev/tokentheme/load"
	"bennypowers.dev/tokentheme/testutil"
	"bennypowers.dev/tokentheme/token"
)

func TestLoad_SingleFile(t *testing.T) {
	mfs := testutil.NewFixtureFS(t, "fixtures/tokens", "/work")

	tree, err := load.Load([]string{"/work/figma-export.json"}, load.Options{FS: mfs})
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}

	palette := tree.Branch("palette")
	if palette == nil {
		t.Fatal("expected palette branch")
	}
	node, ok := palette.Get("primary")
	if !ok || !node.IsLeaf() {
		t.Fatal("expected palette.primary token")
	}
	if node.Token.Value != token.Color("#ff0000") {
		t.Errorf("primary = %v, want #ff0000", node.Token.Value)
	}
}

func TestLoad_MergesInOrder(t *testing.T) {
	mfs := testutil.NewFixtureFS(t, "fixtures/project", "/project")

	tree, err := load.Load([]string{
		"/project/tokens/base.json",
		"/project/tokens/overrides.json",
	}, load.Options{FS: mfs})
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}

	palette := tree.Branch("palette")
	accent, ok := palette.Get("accent")
	if !ok {
		t.Fatal("expected palette.accent")
	}
	if accent.Token.Value != token.Color("#00ff00") {
		t.Errorf("accent = %v, want override #00ff00", accent.Token.Value)
	}
	if _, ok := palette.Get("primary"); !ok {
		t.Error("expected palette.primary from base document to survive merge")
	}
	if tree.Branch("font") == nil {
		t.Error("expected font branch from base document")
	}
}

func TestLoad_MissingInput(t *testing.T) {
	mfs := testutil.NewFixtureFS(t, "fixtures/tokens", "/work")

	_, err := load.Load([]string{"/work/nope.json"}, load.Options{FS: mfs})
	if !errors.Is(err, load.ErrInputNotFound) {
		t.Fatalf("expected ErrInputNotFound, got %v", err)
	}
}

func TestLoad_NoInput(t *testing.T) {
	_, err := load.Load(nil, load.Options{})
	if !errors.Is(err, load.ErrNoInput) {
		t.Fatalf("expected ErrNoInput, got %v", err)
	}
}

func TestLoad_ReportsSkipsWithFile(t *testing.T) {
	mfs := testutil.NewFixtureFS(t, "fixtures/tokens", "/work")

	var files []string
	_, err := load.Load([]string{"/work/figma-export.json"}, load.Options{
		FS: mfs,
		OnSkip: func(file string, path []string, reason string) {
			files = append(files, file)
		},
	})
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if len(files) == 0 {
		t.Fatal("expected at least one skipped entry")
	}
	for _, f := range files {
		if f != "/work/figma-export.json" {
			t.Errorf("skip reported for %q", f)
		}
	}
}
