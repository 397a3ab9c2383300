/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

// Package generate provides the generate command for tokentheme.
package generate

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"bennypowers.dev/tokentheme/component"
	"bennypowers.dev/tokentheme/config"
	"bennypowers.dev/tokentheme/figma"
	"bennypowers.dev/tokentheme/fs"
	"bennypowers.dev/tokentheme/internal/logger"
	"bennypowers.dev/tokentheme/internal/prompt"
	"bennypowers.dev/tokentheme/internal/settings"
	"bennypowers.dev/tokentheme/load"
	"bennypowers.dev/tokentheme/theme"
	"bennypowers.dev/tokentheme/token"
)

// Cmd is the generate cobra command.
var Cmd = &cobra.Command{
	Use:   "generate [input]",
	Short: "Generate Tailwind theme files from design tokens",
	Long: `Generate a Tailwind CSS theme (globals.css plus styles/*.css) and an optional
typed Text component from a design token document.

The input may be a file, a glob, or omitted to use the project config
(.config/tokentheme.yaml) or an interactive prompt. With --document, tokens
are fetched from the Figma REST API instead (token in FIGMA_PA_TOKEN).

Examples:
  # Generate from a Figma export
  tokentheme generate tokens.json -o ./theme -t -c ./src/components

  # Merge several token files
  tokentheme generate 'tokens/**/*.json' -o ./theme --create-text=false

  # Fetch tokens from a Figma document
  FIGMA_PA_TOKEN=... tokentheme generate --document AbC123 -o ./theme`,
	Args: cobra.MaximumNArgs(1),
	RunE: run,
}

func init() {
	AddFlags(Cmd)
}

// AddFlags registers the generate flags on cmd.
func AddFlags(cmd *cobra.Command) {
	cmd.Flags().StringP(settings.Output, "o", "", "Path for the CSS output directory")
	cmd.Flags().StringP(settings.ComponentOutput, "c", "", "Path for the generated component")
	cmd.Flags().BoolP(settings.CreateText, "t", false, "Create a React-based Text component")
	cmd.Flags().String(settings.Document, "", "Figma document id to fetch tokens from")
	cmd.Flags().String(settings.FontURLBase, "", "URL prefix for @font-face sources (default ../assets/font)")
}

// Options configures a generation run.
type Options struct {
	// Inputs are token documents, merged in order.
	Inputs []string

	// Document is a Figma document id. When set, Inputs is ignored.
	Document string

	// Figma fetches Document. Defaults to a client using FigmaToken.
	Figma *figma.Client

	// FigmaToken is the Figma personal access token.
	FigmaToken string

	OutputDir    string
	ComponentDir string
	FontURLBase  string
}

func run(cmd *cobra.Command, args []string) error {
	filesystem := fs.NewOSFileSystem()
	cfg := config.LoadOrDefault(filesystem, ".")

	v, err := settings.New(cmd, cfg)
	if err != nil {
		return err
	}

	opts, err := Resolve(v, cfg, args, prompt.New(os.Stdin, cmd.OutOrStdout()))
	if err != nil {
		return err
	}

	if len(opts.Inputs) > 0 {
		if opts.Inputs, err = config.Expand(filesystem, ".", opts.Inputs); err != nil {
			return err
		}
	}
	opts.OutputDir = absPath(opts.OutputDir)
	if opts.ComponentDir != "" {
		opts.ComponentDir = absPath(opts.ComponentDir)
	}
	logger.Debug("generating %s", opts)

	return Generate(cmd.Context(), filesystem, opts)
}

// Resolve fills Options from settings, the config file's inputs, positional
// arguments, and finally prompts for whatever is still missing.
func Resolve(v *viper.Viper, cfg *config.Config, args []string, p prompt.Prompter) (Options, error) {
	opts := Options{
		Document:    v.GetString(settings.Document),
		FigmaToken:  v.GetString(settings.FigmaToken),
		FontURLBase: v.GetString(settings.FontURLBase),
	}

	if opts.Document == "" {
		switch {
		case len(args) > 0:
			opts.Inputs = args
		case len(cfg.Input) > 0:
			opts.Inputs = cfg.Input
		default:
			input, err := p.Input(prompt.InputPath)
			if err != nil {
				return opts, err
			}
			opts.Inputs = []string{input}
		}
	}

	if v.IsSet(settings.Output) {
		opts.OutputDir = v.GetString(settings.Output)
	} else {
		out, err := p.Input(prompt.OutputDir)
		if err != nil {
			return opts, err
		}
		opts.OutputDir = out
	}

	var createText bool
	if v.IsSet(settings.CreateText) {
		createText = v.GetBool(settings.CreateText)
	} else {
		ok, err := p.Confirm(prompt.CreateText, true)
		if err != nil {
			return opts, err
		}
		createText = ok
	}

	if createText {
		if v.IsSet(settings.ComponentOutput) {
			opts.ComponentDir = v.GetString(settings.ComponentOutput)
		} else {
			dir, err := p.Input(prompt.ComponentDir)
			if err != nil {
				return opts, err
			}
			opts.ComponentDir = dir
		}
	}

	return opts, nil
}

// Generate reads tokens, renders every artifact and writes them.
func Generate(ctx context.Context, filesystem fs.FileSystem, opts Options) error {
	tree, err := tokens(ctx, filesystem, opts)
	if err != nil {
		return err
	}

	artifacts := theme.Generate(tree, theme.Options{
		OutputDir:    opts.OutputDir,
		ComponentDir: opts.ComponentDir,
		FontURLBase:  opts.FontURLBase,
	})
	if err := theme.Write(filesystem, artifacts); err != nil {
		return err
	}

	logger.Success("Successfully generated theme files in %s", opts.OutputDir)
	if opts.ComponentDir != "" {
		logger.Success("Successfully generated Text/index.tsx in %s",
			filepath.Join(opts.ComponentDir, filepath.FromSlash(component.Path)))
	}
	return nil
}

func tokens(ctx context.Context, filesystem fs.FileSystem, opts Options) (*token.Tree, error) {
	if opts.Document != "" {
		client := opts.Figma
		if client == nil {
			if opts.FigmaToken == "" {
				logger.Warn("%s is not set; Figma requests will be unauthenticated", figma.TokenEnv)
			}
			client = figma.New(opts.FigmaToken)
		}
		return client.FetchDocument(ctx, opts.Document), nil
	}

	return load.Load(opts.Inputs, load.Options{
		FS: filesystem,
		OnSkip: func(file string, path []string, reason string) {
			logger.Debug("%s: skipped %s: %s", file, strings.Join(path, "."), reason)
		},
	})
}

func absPath(p string) string {
	abs, err := filepath.Abs(p)
	if err != nil {
		return p
	}
	return abs
}

// String describes the run for verbose logging.
func (o Options) String() string {
	source := strings.Join(o.Inputs, ", ")
	if o.Document != "" {
		source = "figma:" + o.Document
	}
	return fmt.Sprintf("%s -> %s", source, o.OutputDir)
}
