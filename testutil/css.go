/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

package testutil

import (
	"errors"
	"io"
	"strings"
	"testing"

	"github.com/tdewolff/parse/v2"
	"github.com/tdewolff/parse/v2/css"
)

// AssertBalancedCSS lexes content and fails the test when braces or
// parentheses do not balance, or the lexer stops before EOF.
func AssertBalancedCSS(t *testing.T, content string) {
	t.Helper()

	lexer := css.NewLexer(parse.NewInputString(content))
	braces, parens := 0, 0
	for {
		tt, text := lexer.Next()
		switch tt {
		case css.ErrorToken:
			if err := lexer.Err(); !errors.Is(err, io.EOF) {
				t.Fatalf("CSS lexer error: %v", err)
			}
			if braces != 0 || parens != 0 {
				t.Fatalf("unbalanced CSS: %d open braces, %d open parentheses\n%s", braces, parens, content)
			}
			return
		case css.BadStringToken, css.BadURLToken:
			t.Fatalf("malformed CSS token %q\n%s", text, content)
		case css.LeftBraceToken:
			braces++
		case css.RightBraceToken:
			braces--
		case css.FunctionToken, css.LeftParenthesisToken:
			parens++
		case css.RightParenthesisToken:
			parens--
		}
		if braces < 0 || parens < 0 {
			t.Fatalf("unexpected closing %q\n%s", text, content)
		}
	}
}

// AtRules returns the at-rules of content in order, each with its prelude
// collapsed to single spaces, e.g. "@utility font-body".
func AtRules(content string) []string {
	lexer := css.NewLexer(parse.NewInputString(content))
	var (
		rules   []string
		current []string
		inRule  bool
	)
	for {
		tt, text := lexer.Next()
		switch tt {
		case css.ErrorToken:
			return rules
		case css.AtKeywordToken:
			inRule = true
			current = []string{string(text)}
		case css.LeftBraceToken, css.SemicolonToken:
			if inRule {
				rules = append(rules, strings.Join(current, " "))
				inRule = false
			}
		case css.WhitespaceToken, css.CommentToken:
		default:
			if inRule {
				current = append(current, string(text))
			}
		}
	}
}
