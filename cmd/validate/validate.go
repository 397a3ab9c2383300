/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

// Package validate provides the validate command for tokentheme.
package validate

import (
	"errors"
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"bennypowers.dev/tokentheme/config"
	"bennypowers.dev/tokentheme/fs"
	"bennypowers.dev/tokentheme/validator"
)

// ErrInvalid is returned when any file has findings.
var ErrInvalid = errors.New("validation failed")

// Cmd is the validate cobra command.
var Cmd = &cobra.Command{
	Use:   "validate [files...]",
	Short: "Validate design token files",
	Long: `Report everything the theme generators would silently skip: malformed
entries, unsupported token types, unparseable colours, font styles without a
family, paths that collide after sanitizing, dangling references and
reference cycles.`,
	Args: cobra.ArbitraryArgs,
	RunE: run,
}

func init() {
	Cmd.Flags().Bool("quiet", false, "Only output findings")
}

func run(cmd *cobra.Command, args []string) error {
	quiet, _ := cmd.Flags().GetBool("quiet")

	filesystem := fs.NewOSFileSystem()
	cfg := config.LoadOrDefault(filesystem, ".")

	patterns := args
	if len(patterns) == 0 {
		patterns = cfg.Input
	}
	files, err := config.Expand(filesystem, ".", patterns)
	if err != nil {
		return fmt.Errorf("error expanding inputs: %w", err)
	}
	if len(files) == 0 {
		return fmt.Errorf("no files specified and no files found in config")
	}

	return Files(filesystem, files, cmd.OutOrStdout(), quiet)
}

// Files validates each file and prints its findings.
func Files(filesystem fs.FileSystem, files []string, w io.Writer, quiet bool) error {
	var findings int
	for _, file := range files {
		if !quiet {
			fmt.Fprintf(w, "Validating %s...\n", file)
		}
		errs := validator.ValidateFile(filesystem, file)
		for _, e := range errs {
			fmt.Fprintf(w, "  %s\n", e.Error())
		}
		findings += len(errs)
	}

	if findings > 0 {
		return fmt.Errorf("%w: %d issue(s)", ErrInvalid, findings)
	}
	if !quiet {
		fmt.Fprintln(w, "All files valid.")
	}
	return nil
}
