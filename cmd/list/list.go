/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

// Package list provides the list command for tokentheme.
package list

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"bennypowers.dev/tokentheme/cmd/render"
	"bennypowers.dev/tokentheme/config"
	"bennypowers.dev/tokentheme/fs"
	"bennypowers.dev/tokentheme/load"
	"bennypowers.dev/tokentheme/resolver"
	"bennypowers.dev/tokentheme/token"
)

// Cmd is the list cobra command.
var Cmd = &cobra.Command{
	Use:   "list [files...]",
	Short: "List tokens from design token files",
	Long: `List the flattened tokens of one or more token documents, as the theme
generators see them. Files are merged in order; with no files the project
config inputs are used.`,
	Args: cobra.ArbitraryArgs,
	RunE: run,
}

func init() {
	Cmd.Flags().String("kind", "", "Filter by kind: color, gradient, font, shadow, grid, unknown")
	Cmd.Flags().String("format", "table", "Output format: table, markdown, json")
	Cmd.Flags().Bool("resolved", false, "Follow colour references to their literal values")
}

func run(cmd *cobra.Command, args []string) error {
	kindFilter, _ := cmd.Flags().GetString("kind")
	format, _ := cmd.Flags().GetString("format")
	resolve, _ := cmd.Flags().GetBool("resolved")

	filesystem := fs.NewOSFileSystem()
	cfg := config.LoadOrDefault(filesystem, ".")

	patterns := args
	if len(patterns) == 0 {
		patterns = cfg.Input
	}
	files, err := config.Expand(filesystem, ".", patterns)
	if err != nil {
		return err
	}

	tree, err := load.Load(files, load.Options{FS: filesystem})
	if err != nil {
		return err
	}

	flat := token.Flatten(tree)
	entries, err := filterEntries(flat.Entries(), kindFilter)
	if err != nil {
		return err
	}
	var graph *resolver.Graph
	if resolve {
		graph = resolver.Build(flat)
	}
	rows := render.ComputeRows(entries, graph)

	out := cmd.OutOrStdout()
	switch format {
	case "json":
		return render.JSON(out, rows)
	case "markdown", "md":
		return render.Markdown(out, rows)
	case "table":
		return render.Table(out, rows, isTerminal(out))
	default:
		return fmt.Errorf("unknown format %q", format)
	}
}

// kindFlags maps --kind values to kinds.
var kindFlags = map[string]token.Kind{
	"color":    token.KindColor,
	"gradient": token.KindGradient,
	"font":     token.KindFontStyle,
	"shadow":   token.KindShadow,
	"grid":     token.KindGrid,
	"unknown":  token.KindUnknown,
}

// filterEntries keeps the entries of one kind. An empty filter keeps all.
func filterEntries(entries []token.Entry, kind string) ([]token.Entry, error) {
	if kind == "" {
		return entries, nil
	}
	want, ok := kindFlags[strings.ToLower(kind)]
	if !ok {
		return nil, fmt.Errorf("unknown kind %q", kind)
	}
	filtered := make([]token.Entry, 0, len(entries))
	for _, e := range entries {
		if e.Token.Kind() == want {
			filtered = append(filtered, e)
		}
	}
	return filtered, nil
}

func isTerminal(w any) bool {
	f, ok := w.(*os.File)
	return ok && term.IsTerminal(int(f.Fd()))
}
