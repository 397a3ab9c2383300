/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

// Package settings layers command flags, environment variables and the
// project config file into one lookup.
package settings

import (
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"bennypowers.dev/tokentheme/config"
	"bennypowers.dev/tokentheme/figma"
)

// EnvPrefix prefixes environment variables, e.g. TOKENTHEME_OUTPUT.
const EnvPrefix = "TOKENTHEME"

// Setting keys. Flags use the same names.
const (
	Output          = "output"
	ComponentOutput = "component-output"
	CreateText      = "create-text"
	Document        = "document"
	FontURLBase     = "font-url-base"
	FigmaToken      = "figma-token"
)

// New returns a viper instance bound to cmd's flags. Precedence is
// flag, then environment, then config file.
func New(cmd *cobra.Command, cfg *config.Config) (*viper.Viper, error) {
	v := viper.New()
	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()

	if err := v.BindEnv(FigmaToken, figma.TokenEnv); err != nil {
		return nil, err
	}
	if err := v.BindPFlags(cmd.Flags()); err != nil {
		return nil, err
	}

	if cfg != nil {
		setDefault(v, Output, cfg.Output)
		setDefault(v, ComponentOutput, cfg.ComponentOutput)
		setDefault(v, Document, cfg.Document)
		setDefault(v, FontURLBase, cfg.FontURLBase)
		if cfg.CreateText != nil {
			v.SetDefault(CreateText, *cfg.CreateText)
		}
	}
	return v, nil
}

func setDefault(v *viper.Viper, key, value string) {
	if value != "" {
		v.SetDefault(key, value)
	}
}
