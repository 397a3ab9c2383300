/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

package generate

import (
	"bytes"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"os"
	"strings"
	"testing"

	"github.com/spf13/cobra"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"bennypowers.dev/tokentheme/config"
	"bennypowers.dev/tokentheme/figma"
	"bennypowers.dev/tokentheme/internal/logger"
	"bennypowers.dev/tokentheme/internal/prompt"
	"bennypowers.dev/tokentheme/internal/settings"
	"bennypowers.dev/tokentheme/load"
	"bennypowers.dev/tokentheme/testutil"
)

// scripted answers prompts in order and records what was asked.
type scripted struct {
	inputs   []string
	confirms []bool
	asked    []string
}

func (s *scripted) Input(q prompt.Question) (string, error) {
	s.asked = append(s.asked, q.Label)
	if len(s.inputs) == 0 {
		return "", prompt.ErrNoAnswer
	}
	v := s.inputs[0]
	s.inputs = s.inputs[1:]
	return v, nil
}

func (s *scripted) Confirm(q prompt.Question, def bool) (bool, error) {
	s.asked = append(s.asked, q.Label)
	if len(s.confirms) == 0 {
		return def, nil
	}
	v := s.confirms[0]
	s.confirms = s.confirms[1:]
	return v, nil
}

func resolve(t *testing.T, cfg *config.Config, p prompt.Prompter, args ...string) (Options, error) {
	t.Helper()
	cmd := &cobra.Command{Use: "generate"}
	AddFlags(cmd)
	require.NoError(t, cmd.ParseFlags(args))
	v, err := settings.New(cmd, cfg)
	require.NoError(t, err)
	return Resolve(v, cfg, cmd.Flags().Args(), p)
}

func silence(t *testing.T) *bytes.Buffer {
	t.Helper()
	var buf bytes.Buffer
	logger.SetOutput(&buf)
	t.Cleanup(func() { logger.SetOutput(os.Stderr) })
	return &buf
}

func TestResolve_PromptsForOmittedValues(t *testing.T) {
	p := &scripted{inputs: []string{"./tokens.json", "./theme", "./components/"}}

	opts, err := resolve(t, config.Default(), p)
	require.NoError(t, err)

	assert.Equal(t, []string{"Input path:", "Output path:", "Add Text component:", "Output path:"}, p.asked)
	assert.Equal(t, []string{"./tokens.json"}, opts.Inputs)
	assert.Equal(t, "./theme", opts.OutputDir)
	assert.Equal(t, "./components/", opts.ComponentDir)
}

func TestResolve_FlagsSkipPrompts(t *testing.T) {
	p := &scripted{}

	opts, err := resolve(t, config.Default(), p, "tokens.json", "-o", "out", "-t", "-c", "src/components")
	require.NoError(t, err)

	assert.Empty(t, p.asked)
	assert.Equal(t, []string{"tokens.json"}, opts.Inputs)
	assert.Equal(t, "out", opts.OutputDir)
	assert.Equal(t, "src/components", opts.ComponentDir)
}

func TestResolve_DeclinedComponentSkipsDirectory(t *testing.T) {
	p := &scripted{confirms: []bool{false}}

	opts, err := resolve(t, config.Default(), p, "tokens.json", "-o", "out")
	require.NoError(t, err)

	assert.Equal(t, []string{"Add Text component:"}, p.asked)
	assert.Empty(t, opts.ComponentDir)
}

func TestResolve_ConfigFile(t *testing.T) {
	mfs := testutil.NewFixtureFS(t, "fixtures/project", "/project")
	cfg := config.LoadOrDefault(mfs, "/project")
	p := &scripted{}

	opts, err := resolve(t, cfg, p)
	require.NoError(t, err)

	assert.Empty(t, p.asked)
	assert.Equal(t, []string{"tokens/*.json"}, opts.Inputs)
	assert.Equal(t, "./theme", opts.OutputDir)
	assert.Equal(t, "./src/components", opts.ComponentDir)
	assert.Equal(t, "/fonts", opts.FontURLBase)
}

func TestResolve_DocumentNeedsNoInput(t *testing.T) {
	p := &scripted{}

	opts, err := resolve(t, config.Default(), p, "--document", "AbC123", "-o", "out", "-t=false")
	require.NoError(t, err)

	assert.Empty(t, p.asked)
	assert.Nil(t, opts.Inputs)
	assert.Equal(t, "AbC123", opts.Document)
}

func TestResolve_PromptError(t *testing.T) {
	_, err := resolve(t, config.Default(), prompt.Defaults{}, "-o", "out", "--document", "")
	require.NoError(t, err, "input path has a default")

	_, err = resolve(t, config.Default(), &scripted{})
	assert.True(t, errors.Is(err, prompt.ErrNoAnswer))
}

func TestGenerate_WritesLayout(t *testing.T) {
	logs := silence(t)
	mfs := testutil.NewFixtureFS(t, "fixtures/project", "/project")

	err := Generate(t.Context(), mfs, Options{
		Inputs:       []string{"/project/tokens/base.json", "/project/tokens/overrides.json"},
		OutputDir:    "/project/theme",
		ComponentDir: "/project/src/components",
	})
	require.NoError(t, err)

	for _, want := range []string{
		"/project/theme/globals.css",
		"/project/theme/styles/font.css",
		"/project/theme/styles/palette.css",
		"/project/theme/styles/shadows.css",
		"/project/theme/styles/spacing.css",
		"/project/theme/styles/typography.css",
		"/project/src/components/Text/index.tsx",
	} {
		assert.Contains(t, mfs.Files(), want)
	}

	palette, err := mfs.ReadFile("/project/theme/styles/palette.css")
	require.NoError(t, err)
	assert.Contains(t, string(palette), "--color-accent: #00ff00;")

	globalsCSS, err := mfs.ReadFile("/project/theme/globals.css")
	require.NoError(t, err)
	assert.Contains(t, string(globalsCSS), "@source \"../src/components\";\n")
	assert.NotContains(t, string(globalsCSS), "/project/")

	assert.Contains(t, logs.String(), "Successfully generated theme files in /project/theme")
	assert.Contains(t, logs.String(), "Successfully generated Text/index.tsx in /project/src/components/Text/index.tsx")
}

func TestGenerate_MissingInput(t *testing.T) {
	silence(t)
	mfs := testutil.NewFixtureFS(t, "fixtures/project", "/project")

	err := Generate(t.Context(), mfs, Options{
		Inputs:    []string{"/project/nope.json"},
		OutputDir: "/project/theme",
	})
	assert.True(t, errors.Is(err, load.ErrInputNotFound))
	assert.NotContains(t, mfs.Files(), "/project/theme/globals.css")
}

func TestGenerate_FigmaDocument(t *testing.T) {
	logs := silence(t)
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusForbidden)
		_, _ = io.WriteString(w, `{"status": 403, "err": "Invalid token"}`)
	}))
	t.Cleanup(srv.Close)

	mfs := testutil.NewFixtureFS(t, "fixtures/project", "/project")
	client := figma.NewClient(load.NewHTTPFetcher(load.DefaultMaxSize), srv.URL)

	err := Generate(t.Context(), mfs, Options{
		Document:  "AbC123",
		Figma:     client,
		OutputDir: "/project/theme",
	})
	require.NoError(t, err, "fetch failures degrade to an empty theme")

	palette, err := mfs.ReadFile("/project/theme/styles/palette.css")
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(string(palette), "@theme {\n  --color-*: initial;\n"))
	assert.Contains(t, logs.String(), "failed to fetch Figma document AbC123")
}
