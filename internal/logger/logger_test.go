/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

package logger_test

import (
	"bytes"
	"io"
	"os"
	"testing"

	"bennypowers.dev/tokentheme/internal/logger"
)

func TestLogger_Levels(t *testing.T) {
	var buf bytes.Buffer
	logger.SetOutput(&buf)
	t.Cleanup(func() {
		logger.SetOutput(os.Stderr)
		logger.SetVerbose(false)
	})

	logger.Warn("No color variables found in %s", "abc")
	logger.Error("boom")
	logger.Success("Successfully generated theme files in %s", "./theme")
	logger.Info("plain")
	logger.Debug("hidden")
	logger.SetVerbose(true)
	logger.Debug("shown")

	expected := "warning: No color variables found in abc\n" +
		"error: boom\n" +
		"✓ Successfully generated theme files in ./theme\n" +
		"plain\n" +
		"debug: shown\n"
	if buf.String() != expected {
		t.Errorf("output =\n%q\nwant\n%q", buf.String(), expected)
	}
}

func TestLogger_Discard(t *testing.T) {
	logger.SetOutput(io.Discard)
	t.Cleanup(func() { logger.SetOutput(os.Stderr) })
	logger.Warn("silenced")
}
