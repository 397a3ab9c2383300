/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

package token

import (
	"encoding/json"
	"fmt"
	"math"
	"regexp"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"
)

// leadingNumber matches the numeric prefix of strings such as "16px" or "-0.5em".
var leadingNumber = regexp.MustCompile(`^\s*[+-]?(\d+\.?\d*|\.\d+)([eE][+-]?\d+)?`)

// Number is a numeric token field. Exported documents sometimes carry
// strings ("normal", "16px") where numbers are expected, so the raw literal
// is kept alongside the parsed value.
type Number struct {
	raw     string
	value   float64
	numeric bool
	set     bool
}

// NewNumber returns a numeric Number.
func NewNumber(v float64) Number {
	return Number{value: v, numeric: true, set: true}
}

// Literal returns a non-numeric Number holding s verbatim.
func Literal(s string) Number {
	return Number{raw: s, set: true}
}

// IsSet reports whether the field was present and not null.
func (n Number) IsSet() bool { return n.set }

// IsZero reports whether the field is absent. Used by omitzero/omitempty.
func (n Number) IsZero() bool { return !n.set }

// IsNumeric reports whether the field held a JSON number.
func (n Number) IsNumeric() bool { return n.numeric }

// Float returns the numeric value. For literals it parses the leading
// number the way browsers do ("16px" is 16); ok is false when there is none.
func (n Number) Float() (float64, bool) {
	if !n.set {
		return 0, false
	}
	if n.numeric {
		return n.value, true
	}
	m := leadingNumber.FindString(n.raw)
	if m == "" {
		return 0, false
	}
	f, err := strconv.ParseFloat(strings.TrimSpace(m), 64)
	if err != nil {
		return 0, false
	}
	return f, true
}

// Truthy reports whether the field counts as present for defaulting:
// unset, zero, NaN and empty literals are not.
func (n Number) Truthy() bool {
	switch {
	case !n.set:
		return false
	case n.numeric:
		return n.value != 0 && !math.IsNaN(n.value)
	default:
		return n.raw != ""
	}
}

// Or returns n when truthy, otherwise fallback.
func (n Number) Or(fallback Number) Number {
	if n.Truthy() {
		return n
	}
	return fallback
}

// String formats numbers in shortest form and returns literals verbatim.
func (n Number) String() string {
	switch {
	case !n.set:
		return ""
	case n.numeric:
		return FormatNumber(n.value)
	default:
		return n.raw
	}
}

// FormatNumber formats f in its shortest decimal form, without exponent.
func FormatNumber(f float64) string {
	if f == 0 {
		return "0"
	}
	return strconv.FormatFloat(f, 'f', -1, 64)
}

// UnmarshalYAML implements yaml.Unmarshaler.
func (n *Number) UnmarshalYAML(node *yaml.Node) error {
	if node.Kind != yaml.ScalarNode {
		return fmt.Errorf("expected a scalar at line %d", node.Line)
	}
	switch node.ShortTag() {
	case "!!null":
		*n = Number{}
	case "!!int", "!!float":
		var f float64
		if err := node.Decode(&f); err != nil {
			return err
		}
		*n = NewNumber(f)
	default:
		*n = Literal(node.Value)
	}
	return nil
}

// MarshalJSON implements json.Marshaler.
func (n Number) MarshalJSON() ([]byte, error) {
	switch {
	case !n.set:
		return []byte("null"), nil
	case n.numeric:
		return []byte(FormatNumber(n.value)), nil
	default:
		return json.Marshal(n.raw)
	}
}

// UnmarshalJSON implements json.Unmarshaler.
func (n *Number) UnmarshalJSON(data []byte) error {
	var v any
	if err := json.Unmarshal(data, &v); err != nil {
		return err
	}
	switch t := v.(type) {
	case nil:
		*n = Number{}
	case float64:
		*n = NewNumber(t)
	case string:
		*n = Literal(t)
	default:
		*n = Literal(string(data))
	}
	return nil
}
