// Project:   liferay-frontend-source-formatter
// File:      internal/rules/ruleset_test.go
// Purpose:   Tests for rule-set ordering and the dotted-path store
// Language:  Go
//
// License:   MIT
// Copyright: (c) 2026 the csf authors

package rules

import (
	"regexp"
	"testing"
)

func TestRuleSet_InsertionOrder(t *testing.T) {
	rs := NewRuleSet().
		Add("first", &Rule{Regex: regexp.MustCompile(`a`)}).
		Add("second", &Rule{Regex: regexp.MustCompile(`b`)}).
		Add("third", &Rule{Regex: regexp.MustCompile(`c`)})

	want := []string{"first", "second", "third"}
	entries := rs.Entries()
	if len(entries) != len(want) {
		t.Fatalf("expected %d entries, got %d", len(want), len(entries))
	}
	for i, name := range want {
		if entries[i].Name != name {
			t.Errorf("entry %d: expected %q, got %q", i, name, entries[i].Name)
		}
	}
}

func TestRuleSet_OverrideKeepsPosition(t *testing.T) {
	original := &Rule{Regex: regexp.MustCompile(`a`)}
	override := &Rule{Regex: regexp.MustCompile(`z`)}

	rs := NewRuleSet().
		Add("first", &Rule{Regex: regexp.MustCompile(`x`)}).
		Add("target", original).
		Add("last", &Rule{Regex: regexp.MustCompile(`y`)}).
		Add("target", override)

	if rs.Len() != 3 {
		t.Fatalf("expected 3 entries after override, got %d", rs.Len())
	}
	if rs.Entries()[1].Name != "target" {
		t.Errorf("override moved the entry: got %q at position 1", rs.Entries()[1].Name)
	}
	got, ok := rs.Get("target")
	if !ok || got != override {
		t.Error("expected the later registration to win")
	}
}

func TestStore_DottedLookup(t *testing.T) {
	inner := NewRuleSet().Add("r", &Rule{Regex: regexp.MustCompile(`a`)})
	outer := NewRuleSet().AddSet("inner", inner)

	store := NewStore().Register("outer", outer)

	tests := []struct {
		name string
		ref  string
		want *RuleSet
	}{
		{"top level", "outer", outer},
		{"nested", "outer.inner", inner},
		{"missing top", "nope", nil},
		{"missing nested", "outer.nope", nil},
		{"path through rule", "outer.inner.r", nil},
		{"empty", "", nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := store.Lookup(tt.ref); got != tt.want {
				t.Errorf("Lookup(%q) = %v, want %v", tt.ref, got, tt.want)
			}
		})
	}
}

func TestStore_AliasResolution(t *testing.T) {
	inner := NewRuleSet().Add("r", &Rule{Regex: regexp.MustCompile(`a`)})
	outer := NewRuleSet().AddSet("inner", inner)

	store := NewStore().
		Register("outer", outer).
		Alias("alias", "outer").
		Alias("alias2", "alias").
		Alias("deep", "alias.inner")

	if got := store.Lookup("alias"); got != outer {
		t.Error("one-hop alias did not resolve")
	}
	if got := store.Lookup("alias2"); got != outer {
		t.Error("alias-of-alias did not resolve")
	}
	if got := store.Lookup("alias.inner"); got != inner {
		t.Error("dotted path through an alias did not resolve")
	}
	if got := store.Lookup("deep"); got != inner {
		t.Error("alias targeting a dotted path did not resolve")
	}
}

func TestStore_AliasCycle(t *testing.T) {
	store := NewStore().
		Alias("a", "b").
		Alias("b", "a")

	if got := store.Lookup("a"); got != nil {
		t.Errorf("alias cycle should resolve to nil, got %v", got)
	}
}

func TestStore_RegisterOverrides(t *testing.T) {
	first := NewRuleSet()
	second := NewRuleSet()

	store := NewStore().
		Register("js", first).
		Register("js", second)

	if got := store.Lookup("js"); got != second {
		t.Error("later registration must win")
	}
}

func TestReserved(t *testing.T) {
	tests := []struct {
		name string
		want bool
	}{
		{"IGNORE", true},
		{"_private", true},
		{"_", true},
		{"no-tabs", false},
		{"ignore", false},
	}

	for _, tt := range tests {
		if got := Reserved(tt.name); got != tt.want {
			t.Errorf("Reserved(%q) = %v, want %v", tt.name, got, tt.want)
		}
	}
}
