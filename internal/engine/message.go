// Project:   liferay-frontend-source-formatter
// File:      internal/engine/message.go
// Purpose:   Warning message formatting
// Language:  Go
//
// License:   MIT
// Copyright: (c) 2026 the csf authors

package engine

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/hhuijser/liferay-frontend-source-formatter/internal/rules"
)

// buildMessage turns a triggered rule into its warning text. An empty
// return means the trigger is silent: either the rule is suppressed
// ("message: false"), or its message function chose to say nothing.
func buildMessage(r *rules.Rule, lineNum int, item string, result rules.Result, ctx *rules.Context) string {
	switch r.Message.Kind() {
	case rules.MessageSuppressed:
		return ""
	case rules.MessageTemplate:
		return expandTemplate(r.Message.TemplateText(), lineNum, item)
	case rules.MessageCallback:
		return r.Message.Fn()(lineNum, item, result, r, ctx)
	default:
		return defaultMessage(lineNum, item, result, r, ctx)
	}
}

// expandTemplate substitutes the positional tokens {0} (line number) and
// {1} (item). Substitution is index-based, not named.
func expandTemplate(tmpl string, lineNum int, item string) string {
	out := strings.ReplaceAll(tmpl, "{0}", strconv.Itoa(lineNum))
	return strings.ReplaceAll(out, "{1}", strings.TrimSpace(item))
}

// defaultMessage covers rules that carry no message of their own.
func defaultMessage(lineNum int, item string, _ rules.Result, _ *rules.Rule, _ *rules.Context) string {
	return fmt.Sprintf("Line %d: %s", lineNum, strings.TrimSpace(item))
}
