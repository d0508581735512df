// Project:   liferay-frontend-source-formatter
// File:      internal/output/output_test.go
// Purpose:   Tests for the text and JSON renderers
// Language:  Go
//
// License:   MIT
// Copyright: (c) 2026 the csf authors

package output

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hhuijser/liferay-frontend-source-formatter/internal/scanner"
)

func sampleReports() []FileReport {
	return []FileReport{
		{
			File: "src/app.js",
			Warnings: []scanner.Warning{
				{File: "src/app.js", Line: 2, Text: "Line 2: Use of console.log: console.log('x');"},
			},
			Written: true,
		},
		{File: "src/clean.js"},
		{File: "src/gone.js", Skipped: "file not found"},
	}
}

func TestText(t *testing.T) {
	var buf bytes.Buffer
	New(&buf).Text(sampleReports(), Options{})
	out := buf.String()

	assert.Contains(t, out, "src/app.js")
	assert.Contains(t, out, "Use of console.log")
	assert.Contains(t, out, "fixes written")
	assert.Contains(t, out, "Found 1 issue(s) in 1 file(s)")
	assert.NotContains(t, out, "src/clean.js")
	assert.NotContains(t, out, "src/gone.js", "skipped files only show up with --verbose")
	assert.NotContains(t, out, "\033[", "colors must be off for non-TTY writers")
}

func TestText_Verbose(t *testing.T) {
	var buf bytes.Buffer
	New(&buf).Text(sampleReports(), Options{Verbose: true})
	out := buf.String()

	assert.Contains(t, out, "src/gone.js")
	assert.Contains(t, out, "file not found")
}

func TestText_Quiet(t *testing.T) {
	var buf bytes.Buffer
	New(&buf).Text(sampleReports(), Options{Quiet: true})

	assert.NotContains(t, buf.String(), "Found")
}

func TestText_Filenames(t *testing.T) {
	var buf bytes.Buffer
	New(&buf).Text(sampleReports(), Options{Filenames: true})

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	assert.Equal(t, []string{"src/app.js"}, lines)
}

func TestText_NoIssues(t *testing.T) {
	var buf bytes.Buffer
	New(&buf).Text([]FileReport{{File: "src/clean.js"}}, Options{})

	assert.Contains(t, buf.String(), "No issues found.")
}

func TestJSON(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, New(&buf).JSON(sampleReports()))

	var out struct {
		TotalIssues int          `json:"total_issues"`
		Files       []FileReport `json:"files"`
	}
	require.NoError(t, json.Unmarshal(buf.Bytes(), &out))

	assert.Equal(t, 1, out.TotalIssues)
	require.Len(t, out.Files, 3)
	assert.Equal(t, "src/app.js", out.Files[0].File)
	assert.True(t, out.Files[0].Written)
	assert.Equal(t, "file not found", out.Files[2].Skipped)
}
