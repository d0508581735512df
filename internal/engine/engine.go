// Project:   liferay-frontend-source-formatter
// File:      internal/engine/engine.go
// Purpose:   Rule evaluation engine
// Language:  Go
//
// License:   MIT
// Copyright: (c) 2026 the csf authors

// Package engine evaluates rule-sets against source lines: it runs each
// applicable rule's test in insertion order, logs one warning per
// triggered, non-suppressed rule, and applies auto-fix replacements so that
// later rules observe the output of earlier ones.
package engine

import (
	"fmt"

	"github.com/hhuijser/liferay-frontend-source-formatter/internal/rules"
)

// Engine applies rule-sets from a read-only store. It is synchronous and
// stateless between calls; concurrent passes only need their own Context.
type Engine struct {
	store *rules.Store
}

// New returns an engine reading from store.
func New(store *rules.Store) *Engine {
	return &Engine{store: store}
}

// ApplyRuleSet resolves ref, evaluates its rules in insertion order against
// ctx, and returns the updated full item. An unresolved reference or an
// ignored item is a no-op returning ctx.FullItem unchanged. Malformed rules
// and failures inside rule callbacks surface as errors naming the rule.
func (e *Engine) ApplyRuleSet(ref rules.Ref, ctx *rules.Context) (string, error) {
	return e.apply(ref, ctx, make(map[*rules.RuleSet]bool))
}

func (e *Engine) apply(ref rules.Ref, ctx *rules.Context, active map[*rules.RuleSet]bool) (string, error) {
	name, set := e.resolve(ref)
	if set == nil || active[set] {
		return ctx.FullItem, nil
	}
	if !e.applicable(set, ctx) {
		return ctx.FullItem, nil
	}

	active[set] = true
	defer delete(active, set)

	for _, ent := range set.Entries() {
		if rules.Reserved(ent.Name) {
			continue
		}

		switch {
		case ent.Set != nil:
			// Nested rule-sets fold in with the same context.
			if _, err := e.apply(ent.Set, ctx, active); err != nil {
				return ctx.FullItem, err
			}
		case ent.Alias != "":
			// Alias references resolve lazily, at evaluation time.
			if _, err := e.apply(rules.Name(ent.Alias), ctx, active); err != nil {
				return ctx.FullItem, err
			}
		case ent.Rule != nil:
			if err := e.applyRule(name, ent.Name, ent.Rule, ctx); err != nil {
				return ctx.FullItem, err
			}
		}
	}

	return ctx.FullItem, nil
}

// Applicable reports whether ref resolves to a rule-set that is not ignored
// for the given identifying path. Callers use it to skip whole files before
// any per-line pass.
func (e *Engine) Applicable(ref rules.Ref, path string) bool {
	_, set := e.resolve(ref)
	if set == nil {
		return false
	}
	if ig := set.Ignore(); ig != nil && ig.MatchString(path) {
		return false
	}
	return true
}

func (e *Engine) resolve(ref rules.Ref) (string, *rules.RuleSet) {
	switch r := ref.(type) {
	case rules.Name:
		return string(r), e.store.Lookup(string(r))
	case *rules.RuleSet:
		return "", r
	default:
		return "", nil
	}
}

func (e *Engine) applicable(set *rules.RuleSet, ctx *rules.Context) bool {
	if ig := set.Ignore(); ig != nil && ig.MatchString(ctx.FullItem) {
		return false
	}
	if ctx.CustomIgnore != nil && ctx.CustomIgnore.MatchString(ctx.FullItem) {
		return false
	}
	return true
}

func (e *Engine) applyRule(setName, name string, r *rules.Rule, ctx *rules.Context) error {
	if r.Ignore == rules.IgnoreShebang && ctx.HasShebang {
		return nil
	}

	item := ctx.Item
	if r.TestFullItem {
		item = ctx.FullItem
	}

	result, err := runTest(setName, name, r, item, ctx)
	if err != nil {
		return err
	}
	if result == nil {
		return nil
	}

	if msg := buildMessage(r, ctx.LineNum, item, result, ctx); msg != "" && ctx.Logger != nil {
		ctx.Logger(ctx.LineNum, msg)
	}

	return replace(setName, name, r, result, ctx)
}

// runTest is the single dispatch point over the rule's test strategy.
func runTest(setName, name string, r *rules.Rule, item string, ctx *rules.Context) (rules.Result, error) {
	switch r.Test.Kind() {
	case rules.TestCustom:
		return r.Test.Fn()(item, r.Regex, r, ctx), nil
	case rules.TestMatch:
		if r.Regex == nil {
			return nil, malformed(setName, name, "match test without regex")
		}
		return r.Regex.FindStringSubmatch(item), nil
	default:
		if r.Regex == nil {
			return nil, malformed(setName, name, "missing regex")
		}
		if !r.Regex.MatchString(item) {
			return nil, nil
		}
		return rules.Result{}, nil
	}
}

// replace is the single dispatch point over the rule's replacer strategy.
// It re-assigns ctx.FullItem so later rules in the same pass observe the
// fix, and keeps ctx.Item in step when the pass is over a single line.
func replace(setName, name string, r *rules.Rule, result rules.Result, ctx *rules.Context) error {
	prev := ctx.FullItem

	switch r.Replacer.Kind() {
	case rules.ReplacerNone:
		return nil
	case rules.ReplacerString:
		if r.Regex == nil {
			return malformed(setName, name, "string replacer without regex")
		}
		ctx.FullItem = r.Regex.ReplaceAllString(prev, r.Replacer.Text())
	case rules.ReplacerCallback:
		ctx.FullItem = r.Replacer.Fn()(prev, result, r, ctx)
	}

	if ctx.FormatItem != nil {
		ctx.FullItem = ctx.FormatItem(ctx.FullItem, ctx)
	}
	if ctx.Item == prev {
		ctx.Item = ctx.FullItem
	}

	return nil
}

func malformed(setName, name, why string) error {
	if setName == "" {
		return fmt.Errorf("malformed rule %q: %s", name, why)
	}
	return fmt.Errorf("malformed rule %q in rule-set %q: %s", name, setName, why)
}
