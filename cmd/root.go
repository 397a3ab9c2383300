/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

// Package cmd provides CLI commands for tokentheme.
package cmd

import (
	"github.com/spf13/cobra"

	"bennypowers.dev/tokentheme/cmd/fetch"
	"bennypowers.dev/tokentheme/cmd/generate"
	"bennypowers.dev/tokentheme/cmd/list"
	"bennypowers.dev/tokentheme/cmd/validate"
	"bennypowers.dev/tokentheme/cmd/version"
	"bennypowers.dev/tokentheme/internal/logger"
)

var rootCmd = &cobra.Command{
	Use:   "tokentheme [input]",
	Short: "Convert design tokens to a Tailwind CSS theme",
	Long: `tokentheme converts a design token document (for example a Figma export)
into Tailwind CSS v4 theme files and an optional typed Text component.

Running tokentheme without a subcommand is the same as tokentheme generate.`,
	Args:          cobra.MaximumNArgs(1),
	RunE:          generate.Cmd.RunE,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		verbose, _ := cmd.Flags().GetBool("verbose")
		logger.SetVerbose(verbose)
	},
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().BoolP("verbose", "v", false, "Log skipped tokens and other details")
	generate.AddFlags(rootCmd)

	rootCmd.AddCommand(generate.Cmd)
	rootCmd.AddCommand(fetch.Cmd)
	rootCmd.AddCommand(list.Cmd)
	rootCmd.AddCommand(validate.Cmd)
	rootCmd.AddCommand(version.Cmd)
}
