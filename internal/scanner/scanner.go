// Project:   liferay-frontend-source-formatter
// File:      internal/scanner/scanner.go
// Purpose:   Scan files line by line through the rule engine
// Language:  Go
//
// License:   MIT
// Copyright: (c) 2026 the csf authors

package scanner

import (
	"path/filepath"
	"regexp"
	"strings"

	"github.com/hhuijser/liferay-frontend-source-formatter/internal/engine"
	"github.com/hhuijser/liferay-frontend-source-formatter/internal/rules"
)

// Warning is one logged rule trigger.
type Warning struct {
	File string
	Line int
	Text string
}

// Result is the outcome of one file pass.
type Result struct {
	File     string
	Content  string
	Changed  bool
	Warnings []Warning
}

// Options tune a scanner shared across files. The scanner itself holds no
// per-pass state; each line gets its own Context.
type Options struct {
	// CustomIgnore is layered on top of rule-set-level IGNORE patterns.
	CustomIgnore *regexp.Regexp

	// CheckMetadata also runs the metadata rule-set against the file's
	// leading comment block.
	CheckMetadata bool
}

// Scanner applies the appropriate rule-set to each line of a file.
type Scanner struct {
	engine *engine.Engine
	opts   Options
}

// New returns a scanner evaluating rule-sets from store.
func New(store *rules.Store, opts Options) *Scanner {
	return &Scanner{engine: engine.New(store), opts: opts}
}

// setForPath maps a file to the dotted name of its rule-set. Unknown
// extensions get no rule-set, which makes the pass a no-op.
func setForPath(path string) string {
	switch filepath.Ext(path) {
	case ".js":
		return "js"
	case ".css":
		return "css"
	case ".scss":
		return "scss"
	case ".html", ".jsp":
		return "html"
	default:
		return ""
	}
}

// Scan runs the line rules (and optionally the metadata rules) over
// content. The returned Result carries the possibly fixed content, whether
// it differs from the input, and every warning logged during the pass.
func (s *Scanner) Scan(path, content string) (*Result, error) {
	res := &Result{File: path, Content: content}

	setName := setForPath(path)
	if setName == "" {
		return res, nil
	}
	ref := rules.Name(setName)

	// Whole-file skip when the rule-set's IGNORE (or the custom ignore)
	// matches the file path.
	if !s.engine.Applicable(ref, path) {
		return res, nil
	}
	if s.opts.CustomIgnore != nil && s.opts.CustomIgnore.MatchString(path) {
		return res, nil
	}

	hasShebang := strings.HasPrefix(content, "#!")

	trailingNewline := strings.HasSuffix(content, "\n")
	body := content
	if trailingNewline {
		body = strings.TrimSuffix(content, "\n")
	}

	lines := strings.Split(body, "\n")
	for i, line := range lines {
		ctx := &rules.Context{
			Item:         line,
			FullItem:     line,
			LineNum:      i + 1,
			HasShebang:   hasShebang,
			CustomIgnore: s.opts.CustomIgnore,
			Logger: func(lineNum int, warning string) {
				res.Warnings = append(res.Warnings, Warning{File: path, Line: lineNum, Text: warning})
			},
		}
		if setName == "html" {
			// Replacements inside markup can leave dangling attribute
			// whitespace behind; re-trim after every fix.
			ctx.FormatItem = trimTrailing
		}

		fixed, err := s.engine.ApplyRuleSet(ref, ctx)
		if err != nil {
			return nil, err
		}
		lines[i] = fixed
	}

	fixedContent := strings.Join(lines, "\n")
	if trailingNewline {
		fixedContent += "\n"
	}

	if s.opts.CheckMetadata {
		var err error
		fixedContent, err = s.checkMetadata(path, fixedContent, hasShebang, res)
		if err != nil {
			return nil, err
		}
	}

	res.Content = fixedContent
	res.Changed = fixedContent != content

	return res, nil
}

func trimTrailing(fullItem string, _ *rules.Context) string {
	return strings.TrimRight(fullItem, " \t")
}

// checkMetadata applies the metadata rule-set once, with the leading
// comment block as the full item.
func (s *Scanner) checkMetadata(path, content string, hasShebang bool, res *Result) (string, error) {
	block, start := leadingCommentBlock(content)

	ctx := &rules.Context{
		Item:         block,
		FullItem:     block,
		LineNum:      start,
		HasShebang:   hasShebang,
		CustomIgnore: s.opts.CustomIgnore,
		Logger: func(lineNum int, warning string) {
			res.Warnings = append(res.Warnings, Warning{File: path, Line: lineNum, Text: warning})
		},
	}

	fixed, err := s.engine.ApplyRuleSet(rules.Name("metadata"), ctx)
	if err != nil {
		return content, err
	}
	if fixed == block || block == "" {
		return content, nil
	}
	return strings.Replace(content, block, fixed, 1), nil
}

// leadingCommentBlock returns the comment lines at the top of the file
// (skipping a shebang) and the 1-based line the block starts on.
func leadingCommentBlock(content string) (string, int) {
	lines := strings.Split(content, "\n")
	start := 0
	if len(lines) > 0 && strings.HasPrefix(lines[0], "#!") {
		start = 1
	}

	var block []string
	for _, line := range lines[start:] {
		trimmed := strings.TrimSpace(line)
		if strings.HasPrefix(trimmed, "//") || strings.HasPrefix(trimmed, "/*") ||
			strings.HasPrefix(trimmed, "*") || strings.HasPrefix(trimmed, "*/") ||
			strings.HasPrefix(trimmed, "<!--") {
			block = append(block, line)
			continue
		}
		break
	}

	return strings.Join(block, "\n"), start + 1
}
