// Project:   liferay-frontend-source-formatter
// File:      internal/rules/ruleset.go
// Purpose:   Ordered rule-sets and the dotted-path rule-set store
// Language:  Go
//
// License:   MIT
// Copyright: (c) 2026 the csf authors

package rules

import (
	"regexp"
	"strings"
)

// ReservedIgnoreKey is the rule-set entry name reserved for the set-level
// ignore pattern.
const ReservedIgnoreKey = "IGNORE"

// ReservedPrefix marks entries that are stored but never evaluated.
const ReservedPrefix = "_"

// Reserved reports whether a rule name must never be evaluated as a rule.
func Reserved(name string) bool {
	return name == ReservedIgnoreKey || strings.HasPrefix(name, ReservedPrefix)
}

// Entry is one named member of a rule-set: a rule, a nested rule-set, or an
// alias referencing another rule-set by dotted name. Exactly one of Rule,
// Set, and Alias is populated.
type Entry struct {
	Name  string
	Rule  *Rule
	Set   *RuleSet
	Alias string
}

// RuleSet is an insertion-ordered mapping from rule name to rule. Entries
// may also be nested rule-sets or aliases; the evaluation engine folds over
// those recursively. A later Add under an existing name overrides the entry
// in place, keeping its original position.
type RuleSet struct {
	ignore  *regexp.Regexp
	entries []Entry
	index   map[string]int
}

// NewRuleSet returns an empty rule-set.
func NewRuleSet() *RuleSet {
	return &RuleSet{index: make(map[string]int)}
}

// SetIgnore installs the set-level ignore pattern, tested against the full
// item's identifying path. A match skips the whole set.
func (rs *RuleSet) SetIgnore(re *regexp.Regexp) *RuleSet {
	rs.ignore = re
	return rs
}

// Ignore returns the set-level ignore pattern, nil when unset.
func (rs *RuleSet) Ignore() *regexp.Regexp { return rs.ignore }

// Add registers a rule under name. Last write wins, in place.
func (rs *RuleSet) Add(name string, r *Rule) *RuleSet {
	return rs.put(Entry{Name: name, Rule: r})
}

// AddSet nests a child rule-set under name.
func (rs *RuleSet) AddSet(name string, child *RuleSet) *RuleSet {
	return rs.put(Entry{Name: name, Set: child})
}

// AddAlias registers an alias entry resolving to another rule-set's dotted
// name. Aliases resolve lazily, at evaluation time.
func (rs *RuleSet) AddAlias(name, target string) *RuleSet {
	return rs.put(Entry{Name: name, Alias: target})
}

func (rs *RuleSet) put(e Entry) *RuleSet {
	if i, ok := rs.index[e.Name]; ok {
		rs.entries[i] = e
		return rs
	}
	rs.index[e.Name] = len(rs.entries)
	rs.entries = append(rs.entries, e)
	return rs
}

// Entries returns the members in insertion order. The slice is shared;
// callers must not modify it.
func (rs *RuleSet) Entries() []Entry { return rs.entries }

// Get returns the rule registered under name.
func (rs *RuleSet) Get(name string) (*Rule, bool) {
	if i, ok := rs.index[name]; ok && rs.entries[i].Rule != nil {
		return rs.entries[i].Rule, true
	}
	return nil, false
}

// Len reports the number of entries, including nested sets and aliases.
func (rs *RuleSet) Len() int { return len(rs.entries) }

func (rs *RuleSet) entry(name string) (Entry, bool) {
	if i, ok := rs.index[name]; ok {
		return rs.entries[i], true
	}
	return Entry{}, false
}

// Ref identifies a rule-set passed to the evaluation engine: either a
// dotted Name resolved through the store, or an already-resolved *RuleSet.
type Ref interface{ ruleSetRef() }

// Name references a rule-set by dotted path.
type Name string

func (Name) ruleSetRef() {}

func (*RuleSet) ruleSetRef() {}

// Store is an immutable-after-construction mapping from rule-set name to
// rule-set. Names resolve through dotted-path traversal into nested sets;
// alias entries resolve fully, with a visited guard so reference cycles
// degrade to "no rule-set" instead of looping.
type Store struct {
	root *RuleSet
}

// NewStore returns an empty store. Populate it with Register/Alias during
// startup; it must be treated as read-only afterwards (rebuild rather than
// mutate when rule-sets change).
func NewStore() *Store {
	return &Store{root: NewRuleSet()}
}

// Register installs a top-level rule-set. Later registrations under the
// same name override earlier ones.
func (s *Store) Register(name string, rs *RuleSet) *Store {
	s.root.AddSet(name, rs)
	return s
}

// Alias installs a top-level alias to another rule-set's dotted name.
func (s *Store) Alias(name, target string) *Store {
	s.root.AddAlias(name, target)
	return s
}

// Lookup resolves a dotted rule-set reference. It never fails: an
// unresolved name, a path through a plain rule, or an alias cycle all
// return nil.
func (s *Store) Lookup(ref string) *RuleSet {
	return s.lookup(ref, make(map[string]bool))
}

func (s *Store) lookup(ref string, visited map[string]bool) *RuleSet {
	if ref == "" || visited[ref] {
		return nil
	}
	visited[ref] = true

	cur := s.root
	parts := strings.Split(ref, ".")
	for i, part := range parts {
		e, ok := cur.entry(part)
		if !ok {
			return nil
		}
		switch {
		case e.Set != nil:
			cur = e.Set
		case e.Alias != "":
			target := s.lookup(e.Alias, visited)
			if target == nil {
				return nil
			}
			if rest := parts[i+1:]; len(rest) > 0 {
				return s.lookupIn(target, rest, visited)
			}
			return target
		default:
			// A plain rule cannot be traversed or returned as a set.
			return nil
		}
	}
	if cur == s.root {
		return nil
	}
	return cur
}

func (s *Store) lookupIn(rs *RuleSet, parts []string, visited map[string]bool) *RuleSet {
	cur := rs
	for i, part := range parts {
		e, ok := cur.entry(part)
		if !ok {
			return nil
		}
		switch {
		case e.Set != nil:
			cur = e.Set
		case e.Alias != "":
			target := s.lookup(e.Alias, visited)
			if target == nil {
				return nil
			}
			if rest := parts[i+1:]; len(rest) > 0 {
				return s.lookupIn(target, rest, visited)
			}
			return target
		default:
			return nil
		}
	}
	return cur
}
