// Project:   liferay-frontend-source-formatter
// File:      internal/adapter/checks.go
// Purpose:   Builtin grammar-aware checks backed by tdewolff/parse
// Language:  Go
//
// License:   MIT
// Copyright: (c) 2026 the csf authors

package adapter

import (
	"fmt"
	"io"
	"path/filepath"
	"strings"

	"github.com/tdewolff/parse/v2"
	"github.com/tdewolff/parse/v2/css"
	"github.com/tdewolff/parse/v2/js"
)

func registerBuiltins(r *Registry) {
	r.Register("csf-js-syntax", jsSyntaxCheck)
	r.Register("csf-css-syntax", cssSyntaxCheck)
}

func isJS(path string) bool {
	return filepath.Ext(path) == ".js"
}

func isCSS(path string) bool {
	ext := filepath.Ext(path)
	return ext == ".css" || ext == ".scss"
}

// jsSyntaxCheck parses the whole file so fixes and hand edits that break
// the grammar are caught even when no line rule matches.
func jsSyntaxCheck(path, content string) []Diagnostic {
	if !isJS(path) {
		return nil
	}
	if err := parseJS(content); err != nil {
		return []Diagnostic{{
			Line:     1,
			Column:   1,
			Message:  fmt.Sprintf("JavaScript syntax error: %v", err),
			Severity: SeverityError,
		}}
	}
	return nil
}

func cssSyntaxCheck(path, content string) []Diagnostic {
	if !isCSS(path) {
		return nil
	}
	if err := lexCSS(content); err != nil {
		return []Diagnostic{{
			Line:     1,
			Column:   1,
			Message:  fmt.Sprintf("CSS syntax error: %v", err),
			Severity: SeverityError,
		}}
	}
	return nil
}

func parseJS(content string) error {
	_, err := js.Parse(parse.NewInputString(content), js.Options{})
	return err
}

func lexCSS(content string) error {
	l := css.NewLexer(parse.NewInputString(content))
	for {
		tt, _ := l.Next()
		if tt == css.ErrorToken {
			if err := l.Err(); err != nil && err != io.EOF {
				return err
			}
			return nil
		}
	}
}

// ValidateSyntax reports whether content is still parseable for its
// language. The fixer calls this before writing fixed output back, the way
// a full-language parser vets generated code.
func ValidateSyntax(path, content string) error {
	switch {
	case isJS(path):
		return parseJS(content)
	case isCSS(path):
		return lexCSS(content)
	default:
		return nil
	}
}

// TokenClass selects which lexical tokens a declarative token rule
// inspects.
type TokenClass string

// Token classes understood by declarative token rules.
const (
	TokenComment    TokenClass = "comment"
	TokenString     TokenClass = "string"
	TokenIdentifier TokenClass = "identifier"
	TokenNumber     TokenClass = "number"
)

func (tc TokenClass) matches(tt js.TokenType) bool {
	switch tc {
	case TokenComment:
		return tt == js.CommentToken
	case TokenString:
		return tt == js.StringToken
	case TokenIdentifier:
		return tt == js.IdentifierToken
	case TokenNumber:
		return tt == js.NumericToken
	default:
		return false
	}
}

// scanTokens walks the JS token stream and calls visit with every token of
// class tc and the 1-based line it starts on.
func scanTokens(content string, tc TokenClass, visit func(line int, text string)) {
	l := js.NewLexer(parse.NewInputString(content))
	line := 1
	for {
		tt, data := l.Next()
		if tt == js.ErrorToken {
			return
		}
		if tc.matches(tt) {
			visit(line, string(data))
		}
		line += strings.Count(string(data), "\n")
	}
}
