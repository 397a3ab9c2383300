/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

// Package fetch provides the fetch command for tokentheme.
package fetch

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"bennypowers.dev/tokentheme/config"
	"bennypowers.dev/tokentheme/figma"
	"bennypowers.dev/tokentheme/fs"
	"bennypowers.dev/tokentheme/internal/logger"
	"bennypowers.dev/tokentheme/internal/prompt"
	"bennypowers.dev/tokentheme/internal/settings"
)

// Cmd is the fetch cobra command.
var Cmd = &cobra.Command{
	Use:   "fetch [document-id]",
	Short: "Fetch design tokens from a Figma document",
	Long: `Fetch colour variables and text styles from a Figma document and write them
as a token document that generate can read.

The personal access token is read from FIGMA_PA_TOKEN.

Examples:
  FIGMA_PA_TOKEN=... tokentheme fetch AbC123 -o tokens.json`,
	Args: cobra.MaximumNArgs(1),
	RunE: run,
}

func init() {
	Cmd.Flags().StringP(settings.Output, "o", "", "Output file (default: stdout)")
}

func run(cmd *cobra.Command, args []string) error {
	filesystem := fs.NewOSFileSystem()
	cfg := config.LoadOrDefault(filesystem, ".")

	// output here is a file, not the theme directory from the config
	v, err := settings.New(cmd, nil)
	if err != nil {
		return err
	}

	document := cfg.Document
	if len(args) > 0 {
		document = args[0]
	}
	if document == "" {
		if document, err = prompt.New(os.Stdin, cmd.ErrOrStderr()).Input(prompt.DocumentID); err != nil {
			return err
		}
	}

	token := v.GetString(settings.FigmaToken)
	if token == "" {
		logger.Warn("%s is not set; Figma requests will be unauthenticated", figma.TokenEnv)
	}

	return Fetch(cmd.Context(), figma.New(token), filesystem, document, v.GetString(settings.Output), cmd.OutOrStdout())
}

// Fetch writes the document's token bundle to output, or to w when output
// is empty.
func Fetch(ctx context.Context, client *figma.Client, filesystem fs.FileSystem, document, output string, w io.Writer) error {
	bundle := client.FetchDocument(ctx, document)

	data, err := json.MarshalIndent(bundle, "", "  ")
	if err != nil {
		return fmt.Errorf("error serializing tokens: %w", err)
	}
	data = append(data, '\n')

	if output == "" {
		_, err := w.Write(data)
		return err
	}

	if dir := filepath.Dir(output); dir != "." {
		if err := filesystem.MkdirAll(dir, 0755); err != nil {
			return fmt.Errorf("error creating directory for %s: %w", output, err)
		}
	}
	if err := filesystem.WriteFile(output, data, 0644); err != nil {
		return fmt.Errorf("error writing to %s: %w", output, err)
	}
	logger.Success("Wrote %s", output)
	return nil
}
