// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

// EnvPrefix is prepended to every environment variable read by [GetSettings].
const EnvPrefix = "CONFQ_"

// Output formats accepted by [Settings.Output].
const (
	OutputJSON = "json"
	OutputYAML = "yaml"
)

// Settings is the configuration of one confq invocation. It is populated
// by merging defaults, environment variables and command-line flags.
//
// Struct tags:
//   - env          — environment variable name, read with [EnvPrefix].
//   - envSeparator — separator between list items in one variable.
type Settings struct {
	// Sources are the configuration sources to aggregate, applied in order.
	// Env: CONFQ_SOURCES (e.g. "yaml=app.yaml;env@env")
	Sources []Source `env:"SOURCES" envSeparator:";"`

	// Nesting expands FOO__BAR keys of env and dotenv sources into nested
	// mappings.
	// Env: CONFQ_NESTING
	Nesting bool `env:"NESTING"`

	// NestingDelimiter separates path segments in flat keys. Default "__".
	// Env: CONFQ_NESTING_DELIMITER
	NestingDelimiter string `env:"NESTING_DELIMITER"`

	// CaseSensitiveKeys disables case folding on lookups.
	// Env: CONFQ_CASE_SENSITIVE_KEYS
	CaseSensitiveKeys bool `env:"CASE_SENSITIVE_KEYS"`

	// RemoveKeyUnderscores strips the first "_" of every key.
	// Env: CONFQ_REMOVE_KEY_UNDERSCORES
	RemoveKeyUnderscores bool `env:"REMOVE_KEY_UNDERSCORES"`

	// RemoveKeyHyphens strips the first "-" of every key.
	// Env: CONFQ_REMOVE_KEY_HYPHENS
	RemoveKeyHyphens bool `env:"REMOVE_KEY_HYPHENS"`

	// Output is the rendering of the looked up value: "json" or "yaml".
	// Env: CONFQ_OUTPUT
	Output string `env:"OUTPUT"`

	// Flat renders mappings as delimiter-joined keys instead of trees.
	// Env: CONFQ_FLAT
	Flat bool `env:"FLAT"`

	// LogLevel is the minimum level written to stderr (e.g. "debug").
	// Env: CONFQ_LOG_LEVEL
	LogLevel string `env:"LOG_LEVEL"`
}

// Defaults returns the settings used when no other layer sets a field.
func Defaults() *Settings {
	return &Settings{
		NestingDelimiter: "__",
		Output:           OutputJSON,
		LogLevel:         "warn",
	}
}

// Override sets fields after the layers are merged. It carries values that
// must win even when they are zero, such as a flag explicitly set to false.
type Override func(*Settings)

// GetSettings loads, merges, and validates the confq settings from all
// layers in the following priority order (last layer wins for non-zero
// fields):
//  1. [Defaults]
//  2. Environment variables
//  3. flags, as bound by the command line parser (may be nil)
//
// overrides run last, before validation.
func GetSettings(flags *Settings, overrides ...Override) (*Settings, error) {
	return newSettingsBuilder().
		withDefaults().
		withEnv().
		withFlags(flags).
		withOverrides(overrides...).
		build()
}
