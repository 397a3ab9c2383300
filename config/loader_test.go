/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

package config

import (
	"errors"
	"slices"
	"testing"

	"bennypowers.dev/tokentheme/internal/mapfs"
	"bennypowers.dev/tokentheme/load"
	"bennypowers.dev/tokentheme/testutil"
)

func TestLoad_YAML(t *testing.T) {
	mfs := testutil.NewFixtureFS(t, "fixtures/project", "/project")

	cfg, err := Load(mfs, "/project")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg == nil {
		t.Fatal("expected config, got nil")
	}

	if !slices.Equal(cfg.Input, Inputs{"tokens/*.json"}) {
		t.Errorf("expected input [tokens/*.json], got %v", cfg.Input)
	}
	if cfg.Output != "./theme" {
		t.Errorf("expected output './theme', got %q", cfg.Output)
	}
	if cfg.ComponentOutput != "./src/components" {
		t.Errorf("expected componentOutput './src/components', got %q", cfg.ComponentOutput)
	}
	if cfg.CreateText == nil || !*cfg.CreateText {
		t.Errorf("expected createText true, got %v", cfg.CreateText)
	}
	if cfg.FontURLBase != "/fonts" {
		t.Errorf("expected fontUrlBase '/fonts', got %q", cfg.FontURLBase)
	}
}

func TestLoad_JSONStringInput(t *testing.T) {
	mfs := testutil.NewFixtureFS(t, "fixtures/config/json", "/project")

	cfg, err := Load(mfs, "/project")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg == nil {
		t.Fatal("expected config, got nil")
	}

	if !slices.Equal(cfg.Input, Inputs{"tokens/**/*.json"}) {
		t.Errorf("expected single input, got %v", cfg.Input)
	}
	if cfg.CreateText == nil || *cfg.CreateText {
		t.Errorf("expected createText false, got %v", cfg.CreateText)
	}
	if cfg.Document != "AbC123" {
		t.Errorf("expected document 'AbC123', got %q", cfg.Document)
	}
	if cfg.ComponentOutput != "" {
		t.Errorf("expected empty componentOutput, got %q", cfg.ComponentOutput)
	}
}

func TestLoad_ExtensionPriority(t *testing.T) {
	mfs := mapfs.New()
	mfs.AddFile("/project/.config/tokentheme.yml", "output: from-yml\n", 0644)
	mfs.AddFile("/project/.config/tokentheme.json", `{"output": "from-json"}`, 0644)

	cfg, err := Load(mfs, "/project")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.Output != "from-yml" {
		t.Errorf("expected yml to win, got %q", cfg.Output)
	}
}

func TestLoad_NoConfig(t *testing.T) {
	cfg, err := Load(mapfs.New(), "/project")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg != nil {
		t.Errorf("expected nil config, got %+v", cfg)
	}
}

func TestLoad_Invalid(t *testing.T) {
	mfs := mapfs.New()
	mfs.AddFile("/project/.config/tokentheme.yaml", "input: {nope: [\n", 0644)

	if _, err := Load(mfs, "/project"); err == nil {
		t.Fatal("expected error for malformed config")
	}
	if cfg := LoadOrDefault(mfs, "/project"); cfg.Output != "" || cfg.Input != nil {
		t.Errorf("expected default config, got %+v", cfg)
	}
}

func TestExpandInputs(t *testing.T) {
	tests := []struct {
		name    string
		fixture string
		want    []string
	}{
		{
			name:    "single star",
			fixture: "fixtures/project",
			want:    []string{"/project/tokens/base.json", "/project/tokens/overrides.json"},
		},
		{
			name:    "double star skips other extensions",
			fixture: "fixtures/config/json",
			want:    []string{"/project/tokens/nested/effects.json", "/project/tokens/palette.json"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mfs := testutil.NewFixtureFS(t, tt.fixture, "/project")
			cfg := LoadOrDefault(mfs, "/project")

			got, err := cfg.ExpandInputs(mfs, "/project")
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if !slices.Equal(got, tt.want) {
				t.Errorf("ExpandInputs() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestExpand(t *testing.T) {
	mfs := mapfs.New()
	mfs.AddFile("/work/a.json", "{}", 0644)

	t.Run("plain paths pass through", func(t *testing.T) {
		got, err := Expand(mfs, "/work", []string{"a.json", "/elsewhere/missing.json"})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		want := []string{"/work/a.json", "/elsewhere/missing.json"}
		if !slices.Equal(got, want) {
			t.Errorf("Expand() = %v, want %v", got, want)
		}
	})

	t.Run("unmatched glob", func(t *testing.T) {
		_, err := Expand(mfs, "/work", []string{"tokens/*.yaml"})
		if !errors.Is(err, load.ErrInputNotFound) {
			t.Errorf("expected ErrInputNotFound, got %v", err)
		}
	})
}
