// Project:   liferay-frontend-source-formatter
// File:      internal/adapter/adapter.go
// Purpose:   Token-based linter adapter and its rule vocabulary
// Language:  Go
//
// License:   MIT
// Copyright: (c) 2026 the csf authors

// Package adapter runs grammar-aware checks over whole files, complementing
// the line-oriented rule engine. Checks are registered in an extensible
// vocabulary keyed by csf- identifiers; the last registration per
// identifier wins.
package adapter

import (
	"sort"
	"sync"
)

// Severity levels for adapter diagnostics.
const (
	SeverityError   = "error"
	SeverityWarning = "warning"
	SeverityInfo    = "info"
)

// Diagnostic is one grammar-aware finding.
type Diagnostic struct {
	Line     int    `json:"line"`
	Column   int    `json:"column"`
	Message  string `json:"message"`
	Severity string `json:"severity"`
}

// CheckFunc inspects a whole file and reports diagnostics. A check decides
// for itself whether the file (by path/extension) is in scope.
type CheckFunc func(path, content string) []Diagnostic

// Registry is the extensible rule vocabulary consumed by the token linter.
// Registration is idempotent: re-registering an identifier replaces the
// previous check.
type Registry struct {
	mu     sync.RWMutex
	checks map[string]CheckFunc
}

// NewRegistry returns a registry pre-populated with the builtin checks.
func NewRegistry() *Registry {
	r := &Registry{checks: make(map[string]CheckFunc)}
	registerBuiltins(r)
	return r
}

// Register installs fn under id. Last write wins.
func (r *Registry) Register(id string, fn CheckFunc) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.checks[id] = fn
}

// IDs returns the registered identifiers, sorted.
func (r *Registry) IDs() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()

	ids := make([]string, 0, len(r.checks))
	for id := range r.checks {
		ids = append(ids, id)
	}
	sort.Strings(ids)
	return ids
}

// Run executes every registered check against the file and returns the
// combined diagnostics, ordered by identifier for stable output.
func (r *Registry) Run(path, content string) []Diagnostic {
	var out []Diagnostic
	for _, id := range r.IDs() {
		r.mu.RLock()
		fn := r.checks[id]
		r.mu.RUnlock()
		out = append(out, fn(path, content)...)
	}
	return out
}
