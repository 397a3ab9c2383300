/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

// Package config provides project configuration for theme generation.
package config

import (
	"encoding/json"

	"gopkg.in/yaml.v3"
)

// Config represents the project configuration.
type Config struct {
	// Input lists token files to load. Globs are expanded.
	Input Inputs `yaml:"input" json:"input"`

	// Output is the theme output directory.
	Output string `yaml:"output" json:"output"`

	// ComponentOutput is the directory the Text component is written under.
	ComponentOutput string `yaml:"componentOutput" json:"componentOutput"`

	// CreateText controls whether the Text component is generated.
	// Nil means ask.
	CreateText *bool `yaml:"createText" json:"createText"`

	// Document is a Figma document id to fetch tokens from instead of Input.
	Document string `yaml:"document" json:"document"`

	// FontURLBase is the URL prefix of generated @font-face sources.
	FontURLBase string `yaml:"fontUrlBase" json:"fontUrlBase"`
}

// Inputs is a list of input paths, written as a single string or a list.
type Inputs []string

// UnmarshalYAML handles both string and list forms.
func (in *Inputs) UnmarshalYAML(node *yaml.Node) error {
	if node.Kind == yaml.ScalarNode {
		*in = Inputs{node.Value}
		return nil
	}

	var list []string
	if err := node.Decode(&list); err != nil {
		return err
	}
	*in = list
	return nil
}

// UnmarshalJSON handles both string and list forms.
func (in *Inputs) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err == nil {
		*in = Inputs{s}
		return nil
	}

	var list []string
	if err := json.Unmarshal(data, &list); err != nil {
		return err
	}
	*in = list
	return nil
}

// Default returns a config with default values.
func Default() *Config {
	return &Config{}
}
