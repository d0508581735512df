// Project:   liferay-frontend-source-formatter
// File:      internal/rules/loader.go
// Purpose:   Load declarative rule-sets from YAML files
// Language:  Go
//
// License:   MIT
// Copyright: (c) 2026 the csf authors

package rules

import (
	"embed"
	"fmt"
	"regexp"

	"github.com/spf13/afero"
	"gopkg.in/yaml.v3"
)

// Declarative rules cover the regex/template subset of the rule model.
// Rules that need custom test, message, or replacement functions are
// defined in Go (see builtin.go).

//go:embed builtin/*.yaml
var builtinOverlays embed.FS

// NamedSet pairs a rule-set with its registration name.
type NamedSet struct {
	Name string
	Set  *RuleSet
}

type fileYAML struct {
	Version string    `yaml:"version"`
	Sets    []setYAML `yaml:"sets"`
}

type setYAML struct {
	Name   string     `yaml:"name"`
	Ignore string     `yaml:"ignore,omitempty"`
	Rules  []ruleYAML `yaml:"rules"`
}

type ruleYAML struct {
	ID           string    `yaml:"id"`
	Description  string    `yaml:"description,omitempty"`
	Regex        string    `yaml:"regex"`
	Test         string    `yaml:"test,omitempty"`
	TestFullItem bool      `yaml:"test_full_item,omitempty"`
	Message      yaml.Node `yaml:"message,omitempty"`
	Replacer     *string   `yaml:"replacer,omitempty"`
	Ignore       string    `yaml:"ignore,omitempty"`
}

// LoadFromFile reads declarative rule-sets from a YAML file.
func LoadFromFile(fsys afero.Fs, path string) ([]NamedSet, error) {
	data, err := afero.ReadFile(fsys, path)
	if err != nil {
		return nil, fmt.Errorf("reading rules file %s: %w", path, err)
	}

	return parseSets(data, path)
}

// LoadBuiltinOverlays reads the declarative rule-sets shipped with the
// binary. They are merged over the Go-defined builtin sets.
func LoadBuiltinOverlays() ([]NamedSet, error) {
	entries, err := builtinOverlays.ReadDir("builtin")
	if err != nil {
		return nil, fmt.Errorf("reading builtin rules directory: %w", err)
	}

	var combined []NamedSet
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}

		data, err := builtinOverlays.ReadFile("builtin/" + entry.Name())
		if err != nil {
			return nil, fmt.Errorf("reading builtin rule file %s: %w", entry.Name(), err)
		}

		sets, err := parseSets(data, entry.Name())
		if err != nil {
			return nil, fmt.Errorf("parsing builtin rule file %s: %w", entry.Name(), err)
		}

		combined = append(combined, sets...)
	}

	return combined, nil
}

func parseSets(data []byte, source string) ([]NamedSet, error) {
	var f fileYAML
	if err := yaml.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("parsing YAML from %s: %w", source, err)
	}

	var out []NamedSet
	for _, sy := range f.Sets {
		if sy.Name == "" {
			return nil, fmt.Errorf("%s: rule-set missing name", source)
		}

		rs := NewRuleSet()
		if sy.Ignore != "" {
			re, err := regexp.Compile(sy.Ignore)
			if err != nil {
				return nil, fmt.Errorf("%s: rule-set %s has invalid ignore pattern: %w", source, sy.Name, err)
			}
			rs.SetIgnore(re)
		}

		for i, ry := range sy.Rules {
			r, err := buildRule(&ry)
			if err != nil {
				return nil, fmt.Errorf("%s: invalid rule %d (%s) in rule-set %s: %w", source, i, ry.ID, sy.Name, err)
			}
			rs.Add(ry.ID, r)
		}

		out = append(out, NamedSet{Name: sy.Name, Set: rs})
	}

	return out, nil
}

func buildRule(ry *ruleYAML) (*Rule, error) {
	if ry.ID == "" {
		return nil, fmt.Errorf("rule missing id")
	}
	if ry.Regex == "" {
		return nil, fmt.Errorf("rule missing regex")
	}

	re, err := regexp.Compile(ry.Regex)
	if err != nil {
		return nil, fmt.Errorf("invalid regex: %w", err)
	}

	r := &Rule{
		Regex:        re,
		TestFullItem: ry.TestFullItem,
		Description:  ry.Description,
	}

	switch ry.Test {
	case "", "bool":
	case "match":
		r.Test = MatchTest()
	default:
		return nil, fmt.Errorf("invalid test %q (want bool or match)", ry.Test)
	}

	switch ry.Ignore {
	case "", IgnoreShebang:
		r.Ignore = ry.Ignore
	default:
		return nil, fmt.Errorf("invalid ignore %q (want %q)", ry.Ignore, IgnoreShebang)
	}

	msg, err := decodeMessage(&ry.Message)
	if err != nil {
		return nil, err
	}
	r.Message = msg

	if ry.Replacer != nil {
		r.Replacer = ReplaceWith(*ry.Replacer)
	}

	return r, nil
}

func decodeMessage(node *yaml.Node) (Message, error) {
	if node.IsZero() {
		return Message{}, nil
	}
	if node.Tag == "!!bool" {
		var b bool
		if err := node.Decode(&b); err != nil {
			return Message{}, fmt.Errorf("invalid message: %w", err)
		}
		if b {
			return Message{}, fmt.Errorf("invalid message: true (use a template string, or false to suppress)")
		}
		return NoMessage(), nil
	}

	var s string
	if err := node.Decode(&s); err != nil {
		return Message{}, fmt.Errorf("invalid message: %w", err)
	}
	return Template(s), nil
}

// Merge folds src's ignore pattern and entries into dst. Same-name entries
// override in place, keeping their original position, so overlay files can
// replace builtin rules without reordering them.
func Merge(dst, src *RuleSet) {
	if src.Ignore() != nil {
		dst.SetIgnore(src.Ignore())
	}
	for _, e := range src.Entries() {
		dst.put(e)
	}
}
