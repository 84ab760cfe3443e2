// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package app runs one confq query: it turns [config.Settings] into an
// aggregator, resolves the requested path and renders the result.
//
// All Msg* constants are the log messages written by the command, kept in
// one place so the wording stays consistent.
package app

const (
	// MsgSettingsLoaded is logged once the settings have been merged.
	MsgSettingsLoaded = "settings loaded"

	// MsgInvalidSettings is logged when the settings fail validation.
	MsgInvalidSettings = "invalid settings"

	// MsgSourceRegistered is logged for every source added to the aggregator.
	MsgSourceRegistered = "source registered"

	// MsgBuildFailed is logged when the aggregator cannot merge the sources.
	MsgBuildFailed = "error building config"

	// MsgLookupFailed is logged when the requested path cannot be read.
	MsgLookupFailed = "error looking up path"

	// MsgPathNotFound is logged when the requested path does not exist.
	MsgPathNotFound = "path not found"

	// MsgRenderFailed is logged when the value cannot be written out.
	MsgRenderFailed = "error rendering value"
)
