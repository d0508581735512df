// Project:   liferay-frontend-source-formatter
// File:      internal/output/junit.go
// Purpose:   JUnit XML report for CI integration
// Language:  Go
//
// License:   MIT
// Copyright: (c) 2026 the csf authors

package output

import (
	"encoding/xml"
	"fmt"
	"io"
)

type junitFailure struct {
	Message string `xml:"message,attr"`
	Type    string `xml:"type,attr"`
}

type junitTestCase struct {
	Name      string          `xml:"name,attr"`
	ClassName string          `xml:"classname,attr"`
	Failures  []junitFailure  `xml:"failure"`
	Skipped   *struct{}       `xml:"skipped,omitempty"`
}

type junitTestSuite struct {
	Name     string          `xml:"name,attr"`
	Tests    int             `xml:"tests,attr"`
	Failures int             `xml:"failures,attr"`
	Cases    []junitTestCase `xml:"testcase"`
}

type junitTestSuites struct {
	XMLName  xml.Name         `xml:"testsuites"`
	Tests    int              `xml:"tests,attr"`
	Failures int              `xml:"failures,attr"`
	Suites   []junitTestSuite `xml:"testsuite"`
}

// JUnit writes one testsuite per checked file, with one failure entry per
// finding, so CI systems can surface style violations as test failures.
func (f *Formatter) JUnit(reports []FileReport) error {
	return writeJUnit(f.writer, reports)
}

func writeJUnit(w io.Writer, reports []FileReport) error {
	doc := junitTestSuites{}

	for _, r := range reports {
		tc := junitTestCase{Name: r.File, ClassName: "csf"}
		if r.Skipped != "" {
			tc.Skipped = &struct{}{}
		}

		for _, warning := range r.Warnings {
			tc.Failures = append(tc.Failures, junitFailure{
				Message: warning.Text,
				Type:    "warning",
			})
		}
		for _, d := range r.Diagnostics {
			tc.Failures = append(tc.Failures, junitFailure{
				Message: fmt.Sprintf("Line %d, column %d: %s", d.Line, d.Column, d.Message),
				Type:    d.Severity,
			})
		}

		suite := junitTestSuite{
			Name:     r.File,
			Tests:    1,
			Failures: len(tc.Failures),
			Cases:    []junitTestCase{tc},
		}

		doc.Tests++
		doc.Failures += suite.Failures
		doc.Suites = append(doc.Suites, suite)
	}

	if _, err := io.WriteString(w, xml.Header); err != nil {
		return err
	}
	enc := xml.NewEncoder(w)
	enc.Indent("", "  ")
	if err := enc.Encode(doc); err != nil {
		return err
	}
	_, err := io.WriteString(w, "\n")
	return err
}
