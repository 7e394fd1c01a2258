// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 The Easy Travel Authors

package main

import (
	"fmt"
	"os"

	"github.com/linguangsen637-crypto/an-easy-travel-website/internal/client"
	"github.com/linguangsen637-crypto/an-easy-travel-website/models"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	root := client.NewRootCommand(os.Stdout)
	root.Version = models.NewAppBuildInfo(buildVersion, buildDate, buildCommit).String()

	if err := root.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}
