// Project:   liferay-frontend-source-formatter
// File:      internal/rules/builtin.go
// Purpose:   Builtin rule-sets for JS, CSS, and HTML-embedded code
// Language:  Go
//
// License:   MIT
// Copyright: (c) 2026 the csf authors

package rules

import (
	"fmt"
	"regexp"
	"strings"
)

// Builtin constructs the rule-set store shipped with csf: the Go-defined
// sets below, the declarative overlays embedded next to this package, and
// the extension aliases. When ecmaVersion is 6 or later the extended-syntax
// overlay is nested into the js set so it folds in during evaluation.
//
// The returned store must be treated as read-only.
func Builtin(ecmaVersion int) (*Store, error) {
	js := jsRules()
	if ecmaVersion >= 6 {
		js.AddSet("es", esRules())
	}

	store := NewStore().
		Register("js", js).
		Register("css", cssRules()).
		Register("html", htmlRules()).
		Register("metadata", metadataRules()).
		Alias("scss", "css").
		Alias("jsp", "html")

	overlays, err := LoadBuiltinOverlays()
	if err != nil {
		return nil, err
	}
	for _, ns := range overlays {
		dst := store.Lookup(ns.Name)
		if dst == nil {
			store.Register(ns.Name, ns.Set)
			continue
		}
		Merge(dst, ns.Set)
	}

	return store, nil
}

func jsRules() *RuleSet {
	return NewRuleSet().
		SetIgnore(regexp.MustCompile(`(\.min\.js|-min\.js)$`)).
		Add("no-tabs", &Rule{
			Regex:       regexp.MustCompile(`\t`),
			Replacer:    ReplaceWith("    "),
			Message:     NoMessage(),
			Description: "tabs are normalized to four spaces without a warning",
		}).
		Add("function-spacing", &Rule{
			Regex:    regexp.MustCompile(`function\s*\(\)\{`),
			Message:  Template("Line {0}: Missing space between parentheses and brace: {1}"),
			Replacer: ReplaceWith("function() {"),
		}).
		Add("trailing-whitespace", &Rule{
			Regex:    regexp.MustCompile(`[ \t]+$`),
			Message:  Template("Line {0}: Trailing whitespace: {1}"),
			Replacer: ReplaceWith(""),
		}).
		Add("no-console", &Rule{
			Regex:   regexp.MustCompile(`\bconsole\.(log|info|debug)\(`),
			Message: Template("Line {0}: Do not use console.log: {1}"),
			Ignore:  IgnoreShebang,
		}).
		Add("double-quotes", &Rule{
			Regex: regexp.MustCompile(`"(?:[^"\\]|\\.)*"`),
			Test:  MatchTest(),
			Message: Messagef(func(lineNum int, _ string, result Result, _ *Rule, _ *Context) string {
				return fmt.Sprintf("Line %d: Use single quotes instead of %s", lineNum, result[0])
			}),
		}).
		Add("no-loose-equality", &Rule{
			Regex:   regexp.MustCompile(`[^=!<>]==[^=]|[^=!]!=[^=]`),
			Message: Template("Line {0}: Use === or !== instead: {1}"),
		})
}

// esRules is the extended-syntax overlay merged in for ecmaVersion >= 6.
func esRules() *RuleSet {
	return NewRuleSet().
		Add("arrow-spacing", &Rule{
			Regex:    regexp.MustCompile(`\)=>`),
			Message:  Template("Line {0}: Missing space before arrow: {1}"),
			Replacer: ReplaceWith(") =>"),
		}).
		Add("no-var", &Rule{
			Regex:   regexp.MustCompile(`\bvar `),
			Message: Template("Line {0}: Use const or let instead of var: {1}"),
			Ignore:  IgnoreShebang,
		})
}

func cssRules() *RuleSet {
	hexUpper := regexp.MustCompile(`#[0-9a-f]*[A-F][0-9a-fA-F]*\b`)

	return NewRuleSet().
		SetIgnore(regexp.MustCompile(`\.min\.css$`)).
		Add("hex-lowercase", &Rule{
			Regex:   hexUpper,
			Test:    MatchTest(),
			Message: Template("Line {0}: Hex colors should be lowercase: {1}"),
			Replacer: ReplaceFunc(func(fullItem string, _ Result, r *Rule, _ *Context) string {
				return r.Regex.ReplaceAllStringFunc(fullItem, strings.ToLower)
			}),
		}).
		Add("zero-units", &Rule{
			Regex:    regexp.MustCompile(`\b0(px|em|rem|pt)\b`),
			Message:  Template("Line {0}: Zero values need no unit: {1}"),
			Replacer: ReplaceWith("0"),
		}).
		Add("colon-spacing", &Rule{
			Regex:    regexp.MustCompile(`^(\s*[\w-]+):(\S)`),
			Message:  Template("Line {0}: Missing space after colon: {1}"),
			Replacer: ReplaceWith("$1: $2"),
		}).
		Add("no-important", &Rule{
			Regex:   regexp.MustCompile(`!important`),
			Message: Template("Line {0}: Avoid !important: {1}"),
		})
}

func htmlRules() *RuleSet {
	return NewRuleSet().
		Add("inline-handlers", &Rule{
			Regex:   regexp.MustCompile(`\son[a-z]+="`),
			Message: Template("Line {0}: Avoid inline event handlers: {1}"),
		}).
		Add("script-tabs", &Rule{
			Regex:    regexp.MustCompile(`\t`),
			Message:  NoMessage(),
			Replacer: ReplaceWith("    "),
		}).
		Add("style-attribute", &Rule{
			Regex:   regexp.MustCompile(`\sstyle="`),
			Message: Template("Line {0}: Move inline styles into a stylesheet: {1}"),
		})
}

// metadataRules runs against the file's leading comment block when
// --check-metadata is set.
func metadataRules() *RuleSet {
	licenseRe := regexp.MustCompile(`Copyright|SPDX-License-Identifier`)

	return NewRuleSet().
		Add("license-header", &Rule{
			Regex:        licenseRe,
			TestFullItem: true,
			Test: CustomTest(func(item string, re *regexp.Regexp, _ *Rule, _ *Context) Result {
				if re.MatchString(item) {
					return nil
				}
				return Result{item}
			}),
			Message: Messagef(func(lineNum int, _ string, _ Result, _ *Rule, _ *Context) string {
				return fmt.Sprintf("Line %d: Missing license header", lineNum)
			}),
		}).
		Add("no-crlf", &Rule{
			Regex:        regexp.MustCompile(`\r\n`),
			TestFullItem: true,
			Message:      Template("Line {0}: CRLF line endings"),
			Replacer:     ReplaceWith("\n"),
		})
}
