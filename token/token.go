/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

// Package token provides the design token model: typed token values, the
// nested token tree, and its flattened, path-keyed view.
package token

import "strings"

// Kind identifies which Value variant a token carries.
type Kind int

const (
	// KindUnknown marks tokens whose type tag is not recognized or whose
	// value could not be decoded. Generators skip them.
	KindUnknown Kind = iota
	KindColor
	KindGradient
	KindFontStyle
	KindShadow
	KindGrid
)

// String returns the kind name used in listings.
func (k Kind) String() string {
	switch k {
	case KindColor:
		return "color"
	case KindGradient:
		return "gradient"
	case KindFontStyle:
		return "font style"
	case KindShadow:
		return "shadow"
	case KindGrid:
		return "grid"
	default:
		return "unknown"
	}
}

// Type tags as written by design-tool exporters.
const (
	TypeColor     = "color"
	TypeGradient  = "custom-gradient"
	TypeFontStyle = "custom-fontStyle"
	TypeShadow    = "custom-shadow"
	TypeGrid      = "custom-grid"

	// TypeFigmaColor and TypeFigmaText are used by tokens built from the Figma REST API.
	TypeFigmaColor = "COLOR"
	TypeFigmaText  = "TEXT"
)

// typeTags maps lowercased type tags to kinds. Both "color" and "COLOR" are
// seen in exported documents, so matching is case-insensitive.
var typeTags = map[string]Kind{
	"color":            KindColor,
	"custom-gradient":  KindGradient,
	"gradient":         KindGradient,
	"custom-fontstyle": KindFontStyle,
	"text":             KindFontStyle,
	"custom-shadow":    KindShadow,
	"custom-grid":      KindGrid,
}

// KindForType returns the kind for a type tag, or KindUnknown.
func KindForType(tag string) Kind {
	return typeTags[strings.ToLower(tag)]
}

// Token is a single named design value.
type Token struct {
	// Type is the type tag exactly as found in the source document.
	Type string

	// Description is optional documentation for the token.
	Description string

	// Value is the decoded payload. Nil when the type tag is unknown or
	// the payload did not match the type.
	Value Value

	// Problem records why Value is nil, for diagnostics.
	Problem string
}

// Kind returns the kind of the token's value.
func (t *Token) Kind() Kind {
	if t == nil || t.Value == nil {
		return KindUnknown
	}
	return t.Value.Kind()
}

// Value is the sealed set of token payloads: Color, Gradient, FontStyle,
// Shadow and Grid.
type Value interface {
	Kind() Kind
	isValue()
}

// Color is a literal CSS color or a {reference} to another color token.
type Color string

// Kind implements Value.
func (Color) Kind() Kind { return KindColor }
func (Color) isValue()   {}

// IsReference reports whether the color points at another token.
func (c Color) IsReference() bool {
	return IsReference(string(c))
}

// Render returns the CSS form of the color, turning references into var()
// lookups under the given category prefix.
func (c Color) Render(prefix string) string {
	return RenderValue(string(c), prefix)
}

// GradientStop is one color stop of a gradient.
type GradientStop struct {
	// Position is a fraction between 0 and 1.
	Position Number `yaml:"position" json:"position,omitzero"`
	Color    Color  `yaml:"color" json:"color"`
}

// Gradient is a linear gradient.
type Gradient struct {
	GradientType string         `yaml:"gradientType" json:"gradientType,omitempty"`
	Rotation     Number         `yaml:"rotation" json:"rotation,omitzero"`
	Stops        []GradientStop `yaml:"stops" json:"stops"`
}

// Kind implements Value.
func (Gradient) Kind() Kind { return KindGradient }
func (Gradient) isValue()   {}

// FontStyle is a typographic style.
type FontStyle struct {
	Family            string `yaml:"fontFamily" json:"fontFamily,omitempty"`
	Weight            Number `yaml:"fontWeight" json:"fontWeight,omitzero"`
	Size              Number `yaml:"fontSize" json:"fontSize,omitzero"`
	LineHeight        Number `yaml:"lineHeight" json:"lineHeight,omitzero"`
	LineHeightPercent Number `yaml:"lineHeightPercentFontSize" json:"lineHeightPercentFontSize,omitzero"`
	LetterSpacing     Number `yaml:"letterSpacing" json:"letterSpacing,omitzero"`
	TextCase          string `yaml:"textCase" json:"textCase,omitempty"`
	Style             string `yaml:"fontStyle" json:"fontStyle,omitempty"`
	Stretch           string `yaml:"fontStretch" json:"fontStretch,omitempty"`
	Decoration        string `yaml:"textDecoration" json:"textDecoration,omitempty"`
}

// Kind implements Value.
func (FontStyle) Kind() Kind { return KindFontStyle }
func (FontStyle) isValue()   {}

// Uppercase reports whether the style renders upper-case text.
func (f FontStyle) Uppercase() bool {
	return f.TextCase == "UPPER"
}

// Shadow is a single drop or inner shadow.
type Shadow struct {
	Color      Color  `yaml:"color" json:"color"`
	OffsetX    Number `yaml:"offsetX" json:"offsetX,omitzero"`
	OffsetY    Number `yaml:"offsetY" json:"offsetY,omitzero"`
	Radius     Number `yaml:"radius" json:"radius,omitzero"`
	Spread     Number `yaml:"spread" json:"spread,omitzero"`
	ShadowType string `yaml:"shadowType" json:"shadowType,omitempty"`
}

// Kind implements Value.
func (Shadow) Kind() Kind { return KindShadow }
func (Shadow) isValue()   {}

// Inset reports whether the shadow is an inner shadow.
func (s Shadow) Inset() bool {
	switch s.ShadowType {
	case "innerShadow", "INNER_SHADOW":
		return true
	}
	return false
}

// Grid is a layout grid. Count, GutterSize and SectionSize are optional.
type Grid struct {
	Alignment   Number `yaml:"alignment" json:"alignment,omitzero"`
	Count       Number `yaml:"count" json:"count,omitzero"`
	GutterSize  Number `yaml:"gutterSize" json:"gutterSize,omitzero"`
	Offset      Number `yaml:"offset" json:"offset,omitzero"`
	Pattern     string `yaml:"pattern" json:"pattern,omitempty"`
	SectionSize Number `yaml:"sectionSize" json:"sectionSize,omitzero"`
}

// Kind implements Value.
func (Grid) Kind() Kind { return KindGrid }
func (Grid) isValue()   {}
