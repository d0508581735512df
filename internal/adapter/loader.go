// Project:   liferay-frontend-source-formatter
// File:      internal/adapter/loader.go
// Purpose:   Discover and register custom token-rule plugins
// Language:  Go
//
// License:   MIT
// Copyright: (c) 2026 the csf authors

package adapter

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/spf13/afero"
	"gopkg.in/yaml.v3"
)

// Namespace prefixes every identifier derived from a plugin filename.
const Namespace = "csf-"

// DeriveID turns a plugin filename into its stable rule identifier: strip
// the extension, replace underscores with hyphens, prepend the namespace.
// no_todo_comments.yaml becomes csf-no-todo-comments.
func DeriveID(filename string) string {
	name := filename
	if i := strings.LastIndex(name, "."); i >= 0 {
		name = name[:i]
	}
	return Namespace + strings.ReplaceAll(name, "_", "-")
}

type pluginYAML struct {
	Token    string `yaml:"token"`
	Pattern  string `yaml:"pattern"`
	Message  string `yaml:"message"`
	Severity string `yaml:"severity,omitempty"`
}

// LoadDir discovers token-rule plugins (*.yaml) under dir and registers
// each under its derived identifier. Re-running the loader re-reads the
// directory; registration is idempotent with last write winning per
// identifier. A missing directory registers nothing.
func LoadDir(fsys afero.Fs, dir string, reg *Registry) error {
	exists, err := afero.DirExists(fsys, dir)
	if err != nil {
		return fmt.Errorf("checking plugin directory %s: %w", dir, err)
	}
	if !exists {
		return nil
	}

	entries, err := afero.ReadDir(fsys, dir)
	if err != nil {
		return fmt.Errorf("reading plugin directory %s: %w", dir, err)
	}

	for _, entry := range entries {
		if entry.IsDir() || !strings.HasSuffix(entry.Name(), ".yaml") {
			continue
		}

		data, err := afero.ReadFile(fsys, dir+"/"+entry.Name())
		if err != nil {
			return fmt.Errorf("reading plugin %s: %w", entry.Name(), err)
		}

		check, err := compilePlugin(data, entry.Name())
		if err != nil {
			return err
		}

		reg.Register(DeriveID(entry.Name()), check)
	}

	return nil
}

func compilePlugin(data []byte, source string) (CheckFunc, error) {
	var p pluginYAML
	if err := yaml.Unmarshal(data, &p); err != nil {
		return nil, fmt.Errorf("parsing plugin %s: %w", source, err)
	}

	tc := TokenClass(p.Token)
	switch tc {
	case TokenComment, TokenString, TokenIdentifier, TokenNumber:
	default:
		return nil, fmt.Errorf("plugin %s: invalid token class %q", source, p.Token)
	}

	if p.Pattern == "" {
		return nil, fmt.Errorf("plugin %s: missing pattern", source)
	}
	re, err := regexp.Compile(p.Pattern)
	if err != nil {
		return nil, fmt.Errorf("plugin %s: invalid pattern: %w", source, err)
	}

	message := p.Message
	if message == "" {
		message = "matched " + p.Pattern
	}
	severity := p.Severity
	switch severity {
	case "":
		severity = SeverityWarning
	case SeverityError, SeverityWarning, SeverityInfo:
	default:
		return nil, fmt.Errorf("plugin %s: invalid severity %q", source, p.Severity)
	}

	return func(path, content string) []Diagnostic {
		if !isJS(path) {
			return nil
		}
		var out []Diagnostic
		scanTokens(content, tc, func(line int, text string) {
			if re.MatchString(text) {
				out = append(out, Diagnostic{
					Line:     line,
					Column:   1,
					Message:  message,
					Severity: severity,
				})
			}
		})
		return out
	}, nil
}
