// Project:   liferay-frontend-source-formatter
// File:      internal/output/output.go
// Purpose:   Format and display check results
// Language:  Go
//
// License:   MIT
// Copyright: (c) 2026 the csf authors

package output

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/hhuijser/liferay-frontend-source-formatter/internal/adapter"
	"github.com/hhuijser/liferay-frontend-source-formatter/internal/scanner"
)

// FileReport aggregates everything found for one file: line-rule warnings,
// token-linter diagnostics, and whether an inline edit was written.
type FileReport struct {
	File        string               `json:"file"`
	Warnings    []scanner.Warning    `json:"warnings,omitempty"`
	Diagnostics []adapter.Diagnostic `json:"diagnostics,omitempty"`
	Written     bool                 `json:"written,omitempty"`
	Skipped     string               `json:"skipped,omitempty"`
}

// Issues reports the number of findings in the file.
func (r *FileReport) Issues() int {
	return len(r.Warnings) + len(r.Diagnostics)
}

// Options tune the text renderer.
type Options struct {
	// Quiet suppresses the per-run summary and clean files.
	Quiet bool

	// Filenames prints only the names of offending files.
	Filenames bool

	// Verbose includes token-linter diagnostics identifiers and skip notes.
	Verbose bool
}

type Formatter struct {
	writer    io.Writer
	useColors bool
}

const (
	colorReset  = "\033[0m"
	colorRed    = "\033[31m"
	colorYellow = "\033[33m"
	colorBlue   = "\033[34m"
	colorGray   = "\033[90m"
	colorBold   = "\033[1m"
)

func New(w io.Writer) *Formatter {
	useColors := false
	if f, ok := w.(*os.File); ok {
		stat, _ := f.Stat()
		useColors = (stat.Mode() & os.ModeCharDevice) != 0
	}

	return &Formatter{
		writer:    w,
		useColors: useColors,
	}
}

func (f *Formatter) Text(reports []FileReport, opts Options) {
	total := 0
	offending := 0

	if opts.Filenames {
		for _, r := range reports {
			if r.Issues() > 0 {
				fmt.Fprintln(f.writer, r.File)
			}
		}
		return
	}

	for _, r := range reports {
		if r.Skipped != "" {
			if opts.Verbose {
				fmt.Fprintf(f.writer, "%s %s\n", f.color(colorGray, "skipped:"), r.File)
				fmt.Fprintf(f.writer, "  %s\n", r.Skipped)
			}
			continue
		}

		if r.Issues() == 0 {
			continue
		}

		offending++
		total += r.Issues()

		fmt.Fprintf(f.writer, "\n%s\n", f.color(colorBold, r.File))
		for _, w := range r.Warnings {
			fmt.Fprintf(f.writer, "  %s\n", w.Text)
		}
		for _, d := range r.Diagnostics {
			severity := f.color(f.severityColor(d.Severity), d.Severity)
			fmt.Fprintf(f.writer, "  Line %d, column %d: %s [%s]\n", d.Line, d.Column, d.Message, severity)
		}
		if r.Written {
			fmt.Fprintf(f.writer, "  %s\n", f.color(colorBlue, "fixes written"))
		}
	}

	if opts.Quiet {
		return
	}

	fmt.Fprintln(f.writer)
	if total == 0 {
		fmt.Fprintln(f.writer, f.color(colorBlue, "No issues found."))
		return
	}
	fmt.Fprintf(f.writer, "Found %s in %d file(s)\n",
		f.color(colorYellow, fmt.Sprintf("%d issue(s)", total)),
		offending,
	)
}

func (f *Formatter) JSON(reports []FileReport) error {
	type jsonOutput struct {
		TotalIssues int          `json:"total_issues"`
		Files       []FileReport `json:"files"`
	}

	out := jsonOutput{Files: reports}
	for _, r := range reports {
		out.TotalIssues += r.Issues()
	}

	encoder := json.NewEncoder(f.writer)
	encoder.SetIndent("", "  ")
	return encoder.Encode(out)
}

func (f *Formatter) color(code, text string) string {
	if !f.useColors {
		return text
	}
	return code + text + colorReset
}

func (f *Formatter) severityColor(s string) string {
	switch s {
	case adapter.SeverityError:
		return colorRed
	case adapter.SeverityWarning:
		return colorYellow
	case adapter.SeverityInfo:
		return colorBlue
	default:
		return colorReset
	}
}
