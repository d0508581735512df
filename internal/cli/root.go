// Project:   liferay-frontend-source-formatter
// File:      internal/cli/root.go
// Purpose:   Root CLI command definition
// Language:  Go
//
// License:   MIT
// Copyright: (c) 2026 the csf authors

package cli

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"regexp"

	"github.com/pkg/browser"
	"github.com/spf13/afero"
	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"

	"github.com/hhuijser/liferay-frontend-source-formatter/internal/adapter"
	"github.com/hhuijser/liferay-frontend-source-formatter/internal/config"
	"github.com/hhuijser/liferay-frontend-source-formatter/internal/fixer"
	"github.com/hhuijser/liferay-frontend-source-formatter/internal/output"
	"github.com/hhuijser/liferay-frontend-source-formatter/internal/rules"
	"github.com/hhuijser/liferay-frontend-source-formatter/internal/scanner"
)

var (
	configFile    string
	inlineEdit    bool
	verbose       bool
	quiet         bool
	filenames     bool
	relative      bool
	checkMetadata bool
	openFiles     bool
	junitPath     string
	lint          bool
	format        string
	showVersion   bool

	appVersion   string
	appCommit    string
	appBuildTime string
)

func newRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "csf [files...]",
		Short: "Check source formatting of JS, CSS, and HTML files",
		Long: `csf scans JavaScript, CSS, and HTML-embedded code line by line against a
set of formatting rules, reports violations, and can fix them in place.

Examples:
  # Check files
  csf main.js styles.css

  # Fix violations in-place
  csf -i main.js

  # Also run the token-based linter pass
  csf -l main.js

  # Check the leading comment block for required metadata
  csf -m main.js

  # Write a JUnit report for CI
  csf --junit report.xml src/*.js

  # Print only the names of offending files
  csf --filenames src/*.js

Exit Codes:
  0 - No violations (or every violation was fixed with -i)
  1 - Unresolved violations remain`,
		RunE:          runCheck,
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	cmd.Flags().StringVarP(&configFile, "config", "c", "", "Path to a csf.yaml config file")
	cmd.Flags().BoolVarP(&inlineEdit, "inline-edit", "i", false, "Fix violations and overwrite files in-place")
	cmd.Flags().BoolVarP(&verbose, "verbose", "v", false, "Show skipped files and extra detail")
	cmd.Flags().BoolVarP(&quiet, "quiet", "q", false, "Suppress the summary line")
	cmd.Flags().BoolVar(&filenames, "filenames", false, "Print only the names of offending files")
	cmd.Flags().BoolVarP(&relative, "relative", "r", false, "Report paths relative to the working directory")
	cmd.Flags().BoolVarP(&checkMetadata, "check-metadata", "m", false, "Also check the leading comment block metadata")
	cmd.Flags().BoolVarP(&openFiles, "open", "o", false, "Open offending files after the run")
	cmd.Flags().StringVar(&junitPath, "junit", "", "Write a JUnit XML report to the given path")
	cmd.Flags().BoolVarP(&lint, "lint", "l", false, "Also run the token-based linter pass")
	cmd.Flags().StringVar(&format, "format", "text", "Output format: text, json")
	cmd.Flags().BoolVar(&showVersion, "version", false, "Show version information")

	return cmd
}

func runCheck(cmd *cobra.Command, args []string) error {
	if showVersion {
		fmt.Printf("csf %s\n", appVersion)
		fmt.Printf("  commit:  %s\n", appCommit)
		fmt.Printf("  built:   %s\n", appBuildTime)
		return nil
	}

	if len(args) == 0 {
		return fmt.Errorf("no files specified. Use 'csf --help' for usage")
	}

	if format != "text" && format != "json" {
		return fmt.Errorf("invalid format %q: must be text or json", format)
	}

	fsys := afero.NewOsFs()

	cwd, err := os.Getwd()
	if err != nil {
		return fmt.Errorf("resolving working directory: %w", err)
	}

	cfg, err := config.Load(fsys, configFile, cwd)
	if err != nil {
		return err
	}

	s, fx, registry, err := buildPipeline(fsys, cfg)
	if err != nil {
		return err
	}

	reports := make([]output.FileReport, len(args))

	var g errgroup.Group
	for i, path := range args {
		i, path := i, path
		g.Go(func() error {
			report, err := checkFile(s, fx, registry, path)
			if err != nil {
				return err
			}
			reports[i] = *report
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return err
	}

	if relative {
		for i := range reports {
			if rel, err := filepath.Rel(cwd, reports[i].File); err == nil {
				reports[i].File = rel
			}
		}
	}

	if junitPath != "" {
		if err := writeJUnitReport(fsys, junitPath, reports); err != nil {
			return err
		}
	}

	formatter := output.New(os.Stdout)
	switch format {
	case "json":
		if err := formatter.JSON(reports); err != nil {
			return fmt.Errorf("outputting JSON: %w", err)
		}
	default:
		formatter.Text(reports, output.Options{
			Quiet:     quiet,
			Filenames: filenames,
			Verbose:   verbose,
		})
	}

	unresolved := 0
	for i := range reports {
		issues := reports[i].Issues()
		unresolved += issues
		if openFiles && issues > 0 {
			if err := browser.OpenFile(args[i]); err != nil {
				fmt.Fprintf(os.Stderr, "Warning: could not open %s: %v\n", args[i], err)
			}
		}
	}

	if unresolved > 0 {
		os.Exit(1)
	}

	return nil
}

// buildPipeline wires the rule store, scanner, fixer, and token-linter
// registry from the resolved configuration.
func buildPipeline(fsys afero.Fs, cfg *config.Config) (*scanner.Scanner, *fixer.Fixer, *adapter.Registry, error) {
	store, err := rules.Builtin(cfg.ParserOptions.EcmaVersion)
	if err != nil {
		return nil, nil, nil, fmt.Errorf("loading builtin rules: %w", err)
	}

	for _, ruleFile := range cfg.RuleFiles {
		sets, err := rules.LoadFromFile(fsys, ruleFile)
		if err != nil {
			return nil, nil, nil, fmt.Errorf("loading custom rules: %w", err)
		}
		for _, ns := range sets {
			if dst := store.Lookup(ns.Name); dst != nil {
				rules.Merge(dst, ns.Set)
				continue
			}
			store.Register(ns.Name, ns.Set)
		}
	}

	var customIgnore *regexp.Regexp
	if cfg.CustomIgnore != "" {
		customIgnore, err = regexp.Compile(cfg.CustomIgnore)
		if err != nil {
			return nil, nil, nil, fmt.Errorf("invalid customIgnore pattern: %w", err)
		}
	}

	registry := adapter.NewRegistry()
	if cfg.PluginDir != "" {
		if err := adapter.LoadDir(fsys, cfg.PluginDir, registry); err != nil {
			return nil, nil, nil, err
		}
	}

	s := scanner.New(store, scanner.Options{
		CustomIgnore:  customIgnore,
		CheckMetadata: checkMetadata,
	})

	return s, fixer.New(fsys), registry, nil
}

// checkFile runs one full pass over one file: read, scan, optionally write
// fixes back, optionally run the token linter. With --inline-edit the fixed
// content is re-scanned so only violations that survived the fixes count as
// unresolved.
func checkFile(s *scanner.Scanner, fx *fixer.Fixer, registry *adapter.Registry, path string) (*output.FileReport, error) {
	report := &output.FileReport{File: path}

	content, err := fx.Read(path)
	if err != nil {
		if errors.Is(err, fixer.ErrNotFound) || errors.Is(err, fixer.ErrIsDirectory) || errors.Is(err, fixer.ErrPermission) {
			report.Skipped = err.Error()
			return report, nil
		}
		return nil, err
	}

	res, err := s.Scan(path, content)
	if err != nil {
		return nil, err
	}
	report.Warnings = res.Warnings
	finalContent := content

	if inlineEdit && res.Changed {
		written, err := fx.Write(path, content, res.Content)
		if err != nil {
			report.Diagnostics = append(report.Diagnostics, adapter.Diagnostic{
				Line:     1,
				Column:   1,
				Message:  err.Error(),
				Severity: adapter.SeverityError,
			})
		}
		if written {
			report.Written = true
			finalContent = res.Content

			// Violations that the fixes resolved no longer count.
			rescan, err := s.Scan(path, res.Content)
			if err != nil {
				return nil, err
			}
			report.Warnings = rescan.Warnings
		}
	}

	if lint {
		report.Diagnostics = append(report.Diagnostics, registry.Run(path, finalContent)...)
	}

	return report, nil
}

func writeJUnitReport(fsys afero.Fs, path string, reports []output.FileReport) error {
	f, err := fsys.Create(path)
	if err != nil {
		return fmt.Errorf("creating JUnit report %s: %w", path, err)
	}
	defer f.Close()

	if err := output.New(f).JUnit(reports); err != nil {
		return fmt.Errorf("writing JUnit report %s: %w", path, err)
	}
	return nil
}

func Execute(version, commit, buildTime string) error {
	appVersion = version
	appCommit = commit
	appBuildTime = buildTime

	return newRootCmd().Execute()
}
