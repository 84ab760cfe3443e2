// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import (
	"fmt"
	"io"
)

const notAvailable = "N/A"

// BuildInfo carries build-time metadata injected by linker flags and shown
// by "confq version".
type BuildInfo struct {
	Version string
	Date    string
	Commit  string
}

// NewBuildInfo constructs a [BuildInfo]; empty values become "N/A".
func NewBuildInfo(version, date, commit string) BuildInfo {
	return BuildInfo{
		Version: orNotAvailable(version),
		Date:    orNotAvailable(date),
		Commit:  orNotAvailable(commit),
	}
}

// Print writes one line per field to w.
func (b BuildInfo) Print(w io.Writer) error {
	_, err := fmt.Fprintf(w, "Build version: %s\nBuild date: %s\nBuild commit: %s\n", b.Version, b.Date, b.Commit)
	return err
}

func orNotAvailable(s string) string {
	if s == "" {
		return notAvailable
	}
	return s
}
