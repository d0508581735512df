// Project:   liferay-frontend-source-formatter
// File:      internal/rules/types.go
// Purpose:   Rule type definitions
// Language:  Go
//
// License:   MIT
// Copyright: (c) 2026 the csf authors

package rules

import "regexp"

// IgnoreShebang marks a rule that must be skipped when the scanned file
// starts with an interpreter directive line ("#!").
const IgnoreShebang = "node"

// Result is what a rule test produced. A nil Result means the rule did not
// match. Match-mode and custom tests carry submatches so message functions
// and replacers can use the captured text.
type Result []string

// TestFunc is a custom test strategy. It receives the item under test (the
// current line, or the full item when the rule sets TestFullItem), the
// rule's compiled pattern (may be nil for pattern-less custom tests), the
// rule itself, and the pass context. Returning nil means "no match".
type TestFunc func(item string, re *regexp.Regexp, rule *Rule, ctx *Context) Result

// MessageFunc builds the warning text for a triggered rule. Returning an
// empty string suppresses the log line for this trigger.
type MessageFunc func(lineNum int, item string, result Result, rule *Rule, ctx *Context) string

// ReplacerFunc computes the replacement for the full item after a rule
// triggered. It must return the complete new full item.
type ReplacerFunc func(fullItem string, result Result, rule *Rule, ctx *Context) string

// TestKind selects a rule's test strategy.
type TestKind int

const (
	// TestBool is the default strategy: the rule matches when its regex
	// matches the item.
	TestBool TestKind = iota
	// TestMatch captures the regex submatches and passes them downstream.
	TestMatch
	// TestCustom delegates to a user-supplied TestFunc.
	TestCustom
)

// Test is the tagged test-strategy field of a rule. The zero value is the
// default boolean regex test.
type Test struct {
	kind TestKind
	fn   TestFunc
}

// MatchTest returns the capture-mode test strategy.
func MatchTest() Test { return Test{kind: TestMatch} }

// CustomTest wraps a user-supplied test function.
func CustomTest(fn TestFunc) Test { return Test{kind: TestCustom, fn: fn} }

// Kind reports the test strategy.
func (t Test) Kind() TestKind { return t.kind }

// Fn returns the custom test function, nil unless Kind is TestCustom.
func (t Test) Fn() TestFunc { return t.fn }

// MessageKind selects how a rule's warning text is produced.
type MessageKind int

const (
	// MessageDefault means the rule did not specify a message; the engine
	// falls back to its default message function.
	MessageDefault MessageKind = iota
	// MessageSuppressed forces the rule silent ("message: false").
	MessageSuppressed
	// MessageTemplate is a string template with positional tokens
	// {0} (line number) and {1} (item).
	MessageTemplate
	// MessageCallback delegates to a MessageFunc.
	MessageCallback
)

// Message is the tagged message field of a rule. The zero value falls back
// to the engine default message.
type Message struct {
	kind     MessageKind
	template string
	fn       MessageFunc
}

// NoMessage forces a rule silent regardless of replacer behavior.
func NoMessage() Message { return Message{kind: MessageSuppressed} }

// Template builds a positional-token message ({0}=line number, {1}=item).
func Template(s string) Message { return Message{kind: MessageTemplate, template: s} }

// Messagef wraps a message-generating function.
func Messagef(fn MessageFunc) Message { return Message{kind: MessageCallback, fn: fn} }

// Kind reports how the message is produced.
func (m Message) Kind() MessageKind { return m.kind }

// TemplateText returns the template string, empty unless Kind is MessageTemplate.
func (m Message) TemplateText() string { return m.template }

// Fn returns the message function, nil unless Kind is MessageCallback.
func (m Message) Fn() MessageFunc { return m.fn }

// ReplacerKind selects a rule's auto-fix strategy.
type ReplacerKind int

const (
	// ReplacerNone marks a diagnostic-only rule.
	ReplacerNone ReplacerKind = iota
	// ReplacerString substitutes the rule's regex matches with a literal
	// replacement (capture references like $1 are expanded).
	ReplacerString
	// ReplacerCallback delegates to a ReplacerFunc.
	ReplacerCallback
)

// Replacer is the tagged auto-fix field of a rule. The zero value means the
// rule is diagnostic-only.
type Replacer struct {
	kind ReplacerKind
	str  string
	fn   ReplacerFunc
}

// ReplaceWith substitutes regex matches in the full item with s.
func ReplaceWith(s string) Replacer { return Replacer{kind: ReplacerString, str: s} }

// ReplaceFunc wraps a replacement function.
func ReplaceFunc(fn ReplacerFunc) Replacer { return Replacer{kind: ReplacerCallback, fn: fn} }

// Kind reports the auto-fix strategy.
func (r Replacer) Kind() ReplacerKind { return r.kind }

// Text returns the literal replacement, empty unless Kind is ReplacerString.
func (r Replacer) Text() string { return r.str }

// Fn returns the replacement function, nil unless Kind is ReplacerCallback.
func (r Replacer) Fn() ReplacerFunc { return r.fn }

// Rule is a single line-oriented check: a pattern, a test strategy, a
// message, and an optional auto-fix.
type Rule struct {
	// Regex is the rule's pattern. Required unless Test is custom.
	Regex *regexp.Regexp

	// Test selects the test strategy; the zero value is the boolean regex test.
	Test Test

	// TestFullItem runs the test against the accumulated full item instead
	// of the current line.
	TestFullItem bool

	// Message produces the warning text; the zero value uses the engine default.
	Message Message

	// Replacer is the optional auto-fix; the zero value is diagnostic-only.
	Replacer Replacer

	// Ignore holds a context-sensitive exception; IgnoreShebang skips the
	// rule for files with an interpreter directive line.
	Ignore string

	// Description is informational only.
	Description string
}
