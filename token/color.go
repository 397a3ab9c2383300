/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

package token

import (
	"fmt"
	"math"

	"github.com/lucasb-eyer/go-colorful"
	"gopkg.in/yaml.v3"
)

// RGBA is a color as an object of channel fractions, as found in Figma
// exports and API responses. A is optional.
type RGBA struct {
	R float64  `yaml:"r" json:"r"`
	G float64  `yaml:"g" json:"g"`
	B float64  `yaml:"b" json:"b"`
	A *float64 `yaml:"a" json:"a,omitempty"`
}

// CSS returns the color as "rgb(R G B / A)" with 8-bit channels and alpha
// rounded to two decimals. Missing alpha is 1.
func (c RGBA) CSS() string {
	r, g, b := colorful.Color{R: c.R, G: c.G, B: c.B}.Clamped().RGB255()
	alpha := 1.0
	if c.A != nil {
		alpha = math.Round(*c.A*100) / 100
	}
	return fmt.Sprintf("rgb(%d %d %d / %s)", r, g, b, FormatNumber(alpha))
}

// UnmarshalYAML accepts a color string, a reference, or an RGBA object.
func (c *Color) UnmarshalYAML(node *yaml.Node) error {
	switch {
	case node.Kind == yaml.ScalarNode && node.ShortTag() != "!!null":
		*c = Color(node.Value)
		return nil
	case node.Kind == yaml.MappingNode:
		var rgba RGBA
		if err := node.Decode(&rgba); err != nil {
			return err
		}
		*c = Color(rgba.CSS())
		return nil
	}
	return fmt.Errorf("line %d: expected a color string or {r, g, b, a} object", node.Line)
}
