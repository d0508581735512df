// Project:   liferay-frontend-source-formatter
// File:      internal/config/config.go
// Purpose:   Configuration discovery and merging
// Language:  Go
//
// License:   MIT
// Copyright: (c) 2026 the csf authors

// Package config resolves the tool configuration before any engine
// invocation: built-in defaults, then the nearest project csf.yaml, then
// CLI flags (applied by the cli package).
package config

import (
	"fmt"
	"path/filepath"

	"github.com/spf13/afero"
	"gopkg.in/yaml.v3"
)

// FileName is the project configuration file searched upward from the
// working directory.
const FileName = "csf.yaml"

// ParserOptions mirror the options of the token-based linter.
type ParserOptions struct {
	// EcmaVersion 6 or later merges the extended-syntax rule overlay into
	// the js rule-set.
	EcmaVersion int `yaml:"ecmaVersion"`
}

// Config is the resolved configuration handed to the scanner and engine.
type Config struct {
	ParserOptions ParserOptions `yaml:"parserOptions"`

	// CustomIgnore is an extra ignore pattern layered over rule-set IGNOREs.
	CustomIgnore string `yaml:"customIgnore,omitempty"`

	// RuleFiles are YAML rule-set files merged over the builtins.
	RuleFiles []string `yaml:"ruleFiles,omitempty"`

	// PluginDir holds token-rule plugins for the linter adapter.
	PluginDir string `yaml:"pluginDir,omitempty"`
}

// Default returns the built-in configuration.
func Default() *Config {
	return &Config{ParserOptions: ParserOptions{EcmaVersion: 5}}
}

// Load resolves the configuration. With an explicit path the file must
// exist; otherwise the nearest csf.yaml upward from cwd is merged over the
// defaults, and no file at all just yields the defaults.
func Load(fsys afero.Fs, explicit, cwd string) (*Config, error) {
	cfg := Default()

	path := explicit
	if path == "" {
		path = discover(fsys, cwd)
		if path == "" {
			return cfg, nil
		}
	}

	data, err := afero.ReadFile(fsys, path)
	if err != nil {
		return nil, fmt.Errorf("reading config %s: %w", path, err)
	}

	var file Config
	if err := yaml.Unmarshal(data, &file); err != nil {
		return nil, fmt.Errorf("parsing config %s: %w", path, err)
	}

	merge(cfg, &file)
	return cfg, nil
}

func discover(fsys afero.Fs, cwd string) string {
	dir := cwd
	for {
		candidate := filepath.Join(dir, FileName)
		if ok, _ := afero.Exists(fsys, candidate); ok {
			return candidate
		}
		parent := filepath.Dir(dir)
		if parent == dir {
			return ""
		}
		dir = parent
	}
}

func merge(dst, src *Config) {
	if src.ParserOptions.EcmaVersion != 0 {
		dst.ParserOptions.EcmaVersion = src.ParserOptions.EcmaVersion
	}
	if src.CustomIgnore != "" {
		dst.CustomIgnore = src.CustomIgnore
	}
	if len(src.RuleFiles) > 0 {
		dst.RuleFiles = append(dst.RuleFiles, src.RuleFiles...)
	}
	if src.PluginDir != "" {
		dst.PluginDir = src.PluginDir
	}
}
