/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

// Command tokentheme converts design tokens to a Tailwind CSS theme.
package main

import (
	"os"

	"bennypowers.dev/tokentheme/cmd"
	"bennypowers.dev/tokentheme/internal/logger"
)

func main() {
	if err := cmd.Execute(); err != nil {
		logger.Error("An error occurred during theme generation:\n%v", err)
		os.Exit(1)
	}
}
