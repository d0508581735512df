// Project:   liferay-frontend-source-formatter
// File:      internal/rules/context.go
// Purpose:   Per-pass evaluation context
// Language:  Go
//
// License:   MIT
// Copyright: (c) 2026 the csf authors

package rules

import "regexp"

// Context is the per-pass state threaded through rule evaluation. One
// Context is built per scan pass (typically per source line) and discarded
// afterwards. Contexts must not be shared across concurrent passes; the
// rule store may be.
type Context struct {
	// Item is the current line text.
	Item string

	// FullItem is the unit of text being accumulated and replaced. It may
	// equal Item or span multiple lines; every successful replacement
	// re-assigns it before the next rule runs.
	FullItem string

	// LineNum is the 1-based line number.
	LineNum int

	// HasShebang is true when the source begins with an interpreter
	// directive line.
	HasShebang bool

	// CustomIgnore is an additional ignore pattern layered on top of the
	// rule-set-level IGNORE pattern.
	CustomIgnore *regexp.Regexp

	// Logger receives one call per triggered, non-suppressed rule.
	Logger func(lineNum int, warning string)

	// FormatItem, when set, runs after every replacement so a caller can
	// re-normalize formatting of the new full item.
	FormatItem func(fullItem string, ctx *Context) string
}
