// Project:   liferay-frontend-source-formatter
// File:      cmd/csf/main.go
// Purpose:   CLI entry point
// Language:  Go
//
// License:   MIT
// Copyright: (c) 2026 the csf authors

package main

import (
	"fmt"
	"os"

	"github.com/hhuijser/liferay-frontend-source-formatter/internal/cli"
)

var (
	version   = "dev"
	commit    = "unknown"
	buildTime = "unknown"
)

func main() {
	if err := cli.Execute(version, commit, buildTime); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
