// Project:   liferay-frontend-source-formatter
// File:      internal/engine/engine_test.go
// Purpose:   Tests for the rule evaluation engine
// Language:  Go
//
// License:   MIT
// Copyright: (c) 2026 the csf authors

package engine

import (
	"regexp"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hhuijser/liferay-frontend-source-formatter/internal/rules"
)

func lineContext(line string) *rules.Context {
	return &rules.Context{Item: line, FullItem: line, LineNum: 1}
}

func countingLogger(ctx *rules.Context) *[]string {
	logged := &[]string{}
	ctx.Logger = func(_ int, warning string) {
		*logged = append(*logged, warning)
	}
	return logged
}

func TestApplyRuleSet_NoMatchIsNoOp(t *testing.T) {
	set := rules.NewRuleSet().Add("no-foo", &rules.Rule{
		Regex:    regexp.MustCompile(`foo`),
		Replacer: rules.ReplaceWith("bar"),
	})

	e := New(rules.NewStore())
	ctx := lineContext("nothing to see here")
	logged := countingLogger(ctx)

	out, err := e.ApplyRuleSet(set, ctx)
	require.NoError(t, err)
	assert.Equal(t, "nothing to see here", out)
	assert.Empty(t, *logged)
}

func TestApplyRuleSet_UnresolvedReferenceIsNoOp(t *testing.T) {
	e := New(rules.NewStore())
	ctx := lineContext("var x = 1;")

	out, err := e.ApplyRuleSet(rules.Name("does.not.exist"), ctx)
	require.NoError(t, err)
	assert.Equal(t, "var x = 1;", out)
}

func TestApplyRuleSet_Idempotence(t *testing.T) {
	set := rules.NewRuleSet().Add("function-spacing", &rules.Rule{
		Regex:    regexp.MustCompile(`function\s*\(\)\{`),
		Replacer: rules.ReplaceWith("function() {"),
	})
	e := New(rules.NewStore())

	ctx := lineContext("function(){")
	out, err := e.ApplyRuleSet(set, ctx)
	require.NoError(t, err)
	assert.Equal(t, "function() {", out)

	ctx = lineContext(out)
	logged := countingLogger(ctx)
	again, err := e.ApplyRuleSet(set, ctx)
	require.NoError(t, err)
	assert.Equal(t, out, again, "a satisfied rule must not re-trigger")
	assert.Empty(t, *logged)
}

func TestApplyRuleSet_SuppressedMessageStillReplaces(t *testing.T) {
	set := rules.NewRuleSet().Add("no-tabs", &rules.Rule{
		Regex:    regexp.MustCompile(`\t`),
		Replacer: rules.ReplaceWith("    "),
		Message:  rules.NoMessage(),
	})
	e := New(rules.NewStore())

	ctx := lineContext("\tx")
	logged := countingLogger(ctx)

	out, err := e.ApplyRuleSet(set, ctx)
	require.NoError(t, err)
	assert.Equal(t, "    x", out)
	assert.Empty(t, *logged, "message: false must never reach the logger")
}

func TestApplyRuleSet_IgnoreShebang(t *testing.T) {
	set := rules.NewRuleSet().Add("no-var", &rules.Rule{
		Regex:    regexp.MustCompile(`var `),
		Ignore:   rules.IgnoreShebang,
		Replacer: rules.ReplaceWith("let "),
	})
	e := New(rules.NewStore())

	ctx := lineContext("var x = 1;")
	ctx.HasShebang = true
	logged := countingLogger(ctx)

	out, err := e.ApplyRuleSet(set, ctx)
	require.NoError(t, err)
	assert.Equal(t, "var x = 1;", out, "shebang files must skip the rule entirely")
	assert.Empty(t, *logged)

	ctx = lineContext("var x = 1;")
	logged = countingLogger(ctx)
	out, err = e.ApplyRuleSet(set, ctx)
	require.NoError(t, err)
	assert.Equal(t, "let x = 1;", out)
	assert.Len(t, *logged, 1)
}

func TestApplyRuleSet_SetLevelIgnore(t *testing.T) {
	set := rules.NewRuleSet().
		SetIgnore(regexp.MustCompile(`\.min\.js$`)).
		Add("anything", &rules.Rule{
			Regex:    regexp.MustCompile(`.`),
			Replacer: rules.ReplaceWith("clobbered"),
		})
	e := New(rules.NewStore())

	ctx := lineContext("app.min.js")
	logged := countingLogger(ctx)

	out, err := e.ApplyRuleSet(set, ctx)
	require.NoError(t, err)
	assert.Equal(t, "app.min.js", out)
	assert.Empty(t, *logged)
}

func TestApplyRuleSet_CustomIgnore(t *testing.T) {
	set := rules.NewRuleSet().Add("anything", &rules.Rule{
		Regex:    regexp.MustCompile(`.`),
		Replacer: rules.ReplaceWith("clobbered"),
	})
	e := New(rules.NewStore())

	ctx := lineContext("generated output")
	ctx.CustomIgnore = regexp.MustCompile(`generated`)

	out, err := e.ApplyRuleSet(set, ctx)
	require.NoError(t, err)
	assert.Equal(t, "generated output", out)
}

func TestApplyRuleSet_OrderingDependency(t *testing.T) {
	set := rules.NewRuleSet().
		Add("a", &rules.Rule{
			Regex:    regexp.MustCompile(`foo`),
			Replacer: rules.ReplaceWith("bar"),
		}).
		Add("b", &rules.Rule{
			Regex:    regexp.MustCompile(`bar`),
			Replacer: rules.ReplaceWith("baz"),
		})
	e := New(rules.NewStore())

	out, err := e.ApplyRuleSet(set, lineContext("foo"))
	require.NoError(t, err)
	assert.Equal(t, "baz", out, "rule b must observe rule a's replacement")
}

func TestApplyRuleSet_MatchModePassesCaptures(t *testing.T) {
	var msgResult, replResult rules.Result

	set := rules.NewRuleSet().Add("capture", &rules.Rule{
		Regex: regexp.MustCompile(`name=(\w+)`),
		Test:  rules.MatchTest(),
		Message: rules.Messagef(func(_ int, _ string, result rules.Result, _ *rules.Rule, _ *rules.Context) string {
			msgResult = result
			return "captured " + result[1]
		}),
		Replacer: rules.ReplaceFunc(func(fullItem string, result rules.Result, _ *rules.Rule, _ *rules.Context) string {
			replResult = result
			return fullItem
		}),
	})
	e := New(rules.NewStore())

	ctx := lineContext("name=value")
	logged := countingLogger(ctx)

	_, err := e.ApplyRuleSet(set, ctx)
	require.NoError(t, err)
	require.Len(t, *logged, 1)
	assert.Equal(t, "captured value", (*logged)[0])
	assert.Equal(t, rules.Result{"name=value", "value"}, msgResult)
	assert.Equal(t, msgResult, replResult, "message and replacer must see the same result")
}

func TestApplyRuleSet_CustomTest(t *testing.T) {
	set := rules.NewRuleSet().Add("must-contain-header", &rules.Rule{
		Regex: regexp.MustCompile(`Copyright`),
		Test: rules.CustomTest(func(item string, re *regexp.Regexp, _ *rules.Rule, _ *rules.Context) rules.Result {
			if re.MatchString(item) {
				return nil
			}
			return rules.Result{item}
		}),
		Message: rules.Template("Line {0}: Missing header"),
	})
	e := New(rules.NewStore())

	ctx := lineContext("no header here")
	logged := countingLogger(ctx)
	_, err := e.ApplyRuleSet(set, ctx)
	require.NoError(t, err)
	require.Len(t, *logged, 1)
	assert.Equal(t, "Line 1: Missing header", (*logged)[0])

	ctx = lineContext("Copyright 2026")
	logged = countingLogger(ctx)
	_, err = e.ApplyRuleSet(set, ctx)
	require.NoError(t, err)
	assert.Empty(t, *logged)
}

func TestApplyRuleSet_EmptyMessageFromFuncIsSilent(t *testing.T) {
	replaced := false

	set := rules.NewRuleSet().Add("fix-only", &rules.Rule{
		Regex: regexp.MustCompile(`x`),
		Message: rules.Messagef(func(_ int, _ string, _ rules.Result, _ *rules.Rule, _ *rules.Context) string {
			return ""
		}),
		Replacer: rules.ReplaceFunc(func(fullItem string, _ rules.Result, _ *rules.Rule, _ *rules.Context) string {
			replaced = true
			return fullItem
		}),
	})
	e := New(rules.NewStore())

	ctx := lineContext("x")
	logged := countingLogger(ctx)

	_, err := e.ApplyRuleSet(set, ctx)
	require.NoError(t, err)
	assert.Empty(t, *logged)
	assert.True(t, replaced, "silent rules still fix")
}

func TestApplyRuleSet_DefaultMessage(t *testing.T) {
	set := rules.NewRuleSet().Add("bare", &rules.Rule{
		Regex: regexp.MustCompile(`oops`),
	})
	e := New(rules.NewStore())

	ctx := lineContext("  oops  ")
	ctx.LineNum = 7
	logged := countingLogger(ctx)

	_, err := e.ApplyRuleSet(set, ctx)
	require.NoError(t, err)
	require.Len(t, *logged, 1)
	assert.Equal(t, "Line 7: oops", (*logged)[0])
}

func TestApplyRuleSet_FormatItemRunsAfterEveryReplacement(t *testing.T) {
	calls := 0

	set := rules.NewRuleSet().
		Add("a", &rules.Rule{Regex: regexp.MustCompile(`foo`), Replacer: rules.ReplaceWith("bar")}).
		Add("b", &rules.Rule{Regex: regexp.MustCompile(`bar`), Replacer: rules.ReplaceWith("baz")})
	e := New(rules.NewStore())

	ctx := lineContext("foo")
	ctx.FormatItem = func(fullItem string, _ *rules.Context) string {
		calls++
		return fullItem + "|"
	}

	out, err := e.ApplyRuleSet(set, ctx)
	require.NoError(t, err)
	assert.Equal(t, 2, calls)
	assert.Equal(t, "baz||", out)
}

func TestApplyRuleSet_ReservedNamesSkipped(t *testing.T) {
	set := rules.NewRuleSet().
		Add("IGNORE", &rules.Rule{Regex: regexp.MustCompile(`.`), Replacer: rules.ReplaceWith("clobbered")}).
		Add("_internal", &rules.Rule{Regex: regexp.MustCompile(`.`), Replacer: rules.ReplaceWith("clobbered")})
	e := New(rules.NewStore())

	out, err := e.ApplyRuleSet(set, lineContext("untouched"))
	require.NoError(t, err)
	assert.Equal(t, "untouched", out)
}

func TestApplyRuleSet_NestedSetsFold(t *testing.T) {
	child := rules.NewRuleSet().Add("inner", &rules.Rule{
		Regex:    regexp.MustCompile(`foo`),
		Replacer: rules.ReplaceWith("bar"),
	})
	parent := rules.NewRuleSet().
		AddSet("child", child).
		Add("outer", &rules.Rule{
			Regex:    regexp.MustCompile(`bar`),
			Replacer: rules.ReplaceWith("baz"),
		})
	e := New(rules.NewStore())

	out, err := e.ApplyRuleSet(parent, lineContext("foo"))
	require.NoError(t, err)
	assert.Equal(t, "baz", out, "outer rule must see the nested set's replacement")
}

func TestApplyRuleSet_AliasResolvesLazily(t *testing.T) {
	store := rules.NewStore()
	holder := rules.NewRuleSet().AddAlias("late", "target")
	store.Register("holder", holder)

	// The alias target is registered after the alias itself.
	store.Register("target", rules.NewRuleSet().Add("fix", &rules.Rule{
		Regex:    regexp.MustCompile(`foo`),
		Replacer: rules.ReplaceWith("bar"),
	}))

	e := New(store)
	out, err := e.ApplyRuleSet(rules.Name("holder"), lineContext("foo"))
	require.NoError(t, err)
	assert.Equal(t, "bar", out)
}

func TestApplyRuleSet_AliasCycleIsNoOp(t *testing.T) {
	store := rules.NewStore()
	store.Register("a", rules.NewRuleSet().AddAlias("next", "b"))
	store.Register("b", rules.NewRuleSet().AddAlias("next", "a"))

	e := New(store)
	out, err := e.ApplyRuleSet(rules.Name("a"), lineContext("unchanged"))
	require.NoError(t, err)
	assert.Equal(t, "unchanged", out)
}

func TestApplyRuleSet_MalformedRule(t *testing.T) {
	store := rules.NewStore()
	store.Register("broken", rules.NewRuleSet().Add("no-regex", &rules.Rule{
		Message: rules.Template("Line {0}: {1}"),
	}))

	e := New(store)
	_, err := e.ApplyRuleSet(rules.Name("broken"), lineContext("anything"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), `"no-regex"`)
	assert.Contains(t, err.Error(), `"broken"`)
}

func TestExpandTemplate(t *testing.T) {
	assert.Equal(t, "Line 3: var x", expandTemplate("Line {0}: {1}", 3, "  var x  "))
	assert.Equal(t, "no tokens", expandTemplate("no tokens", 3, "item"))
}
