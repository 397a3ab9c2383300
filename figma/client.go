/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

// Package figma fetches colour and text tokens from the Figma REST API.
package figma

import (
	"context"
	"fmt"
	"net/url"
	"strings"

	"gopkg.in/yaml.v3"

	"bennypowers.dev/tokentheme/internal/logger"
	"bennypowers.dev/tokentheme/load"
	"bennypowers.dev/tokentheme/token"
)

// DefaultBaseURL is the Figma REST API origin.
const DefaultBaseURL = "https://api.figma.com"

// TokenEnv is the environment variable holding the personal access token.
const TokenEnv = "FIGMA_PA_TOKEN"

// Client fetches Figma documents.
type Client struct {
	fetcher load.Fetcher
	baseURL string
}

// New creates a client that authenticates with a personal access token.
func New(accessToken string) *Client {
	fetcher := load.NewHTTPFetcher(load.DefaultMaxSize).WithHeader("X-Figma-Token", accessToken)
	return NewClient(fetcher, DefaultBaseURL)
}

// NewClient creates a client over any fetcher and API origin.
func NewClient(fetcher load.Fetcher, baseURL string) *Client {
	return &Client{
		fetcher: fetcher,
		baseURL: strings.TrimRight(baseURL, "/"),
	}
}

// FetchDocument returns the palette and font tokens of a Figma file.
// Colour variables and published text styles are preferred; when either
// is missing, tokens come from the document's own styles instead. It never
// fails: errors are logged and an empty bundle is returned.
func (c *Client) FetchDocument(ctx context.Context, key string) *token.Tree {
	tree, err := c.fetch(ctx, key)
	if err != nil {
		logger.Error("failed to fetch Figma document %s: %v", key, err)
		return Empty()
	}
	return tree
}

func (c *Client) fetch(ctx context.Context, key string) (*token.Tree, error) {
	file := "/v1/files/" + url.PathEscape(key)

	var styles StylesResponse
	if err := c.get(ctx, file+"/styles", &styles); err != nil {
		return nil, err
	}

	var ids []string
	for _, s := range styles.Meta.Styles {
		ids = append(ids, s.NodeID)
	}

	var nodes NodesResponse
	if len(ids) > 0 {
		query := url.Values{"ids": {strings.Join(ids, ",")}}
		if err := c.get(ctx, file+"/nodes?"+query.Encode(), &nodes); err != nil {
			return nil, err
		}
	}

	var variables VariablesResponse
	if err := c.get(ctx, file+"/variables/local", &variables); err != nil {
		return nil, err
	}

	palette := PaletteVariables(variables.Meta.Variables)
	if palette.Len() == 0 {
		logger.Warn("No color variables found! Ensure your Figma file has local variables defined.")
		logger.Info("   You can add them in Figma's Design mode from the Variable settings icon in the right-side panel.")
	}
	if len(ids) == 0 {
		logger.Warn("No text styles found in file library! Ensure your Figma file has text styles in a published library.")
		logger.Info("   Learn more at https://help.figma.com/hc/en-us/articles/360039957034-Create-and-apply-text-styles")
	}

	if palette.Len() == 0 || len(ids) == 0 {
		logger.Warn("Falling back to document styles…")

		var doc FileResponse
		if err := c.get(ctx, file, &doc); err != nil {
			return nil, err
		}
		return Bundle(DocumentFillStyles(&doc), DocumentTextStyles(&doc)), nil
	}

	return Bundle(palette, LibraryTextStyles(styles.Meta.Styles, nodes.Nodes)), nil
}

// get fetches an API path and decodes the JSON body. Decoding goes through
// yaml.v3 so object key order is kept.
func (c *Client) get(ctx context.Context, path string, out any) error {
	data, err := c.fetcher.Fetch(ctx, c.baseURL+path)
	if err != nil {
		return err
	}
	if err := yaml.Unmarshal(data, out); err != nil {
		return fmt.Errorf("decoding %s: %w", path, err)
	}
	return nil
}
