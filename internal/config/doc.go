// Package config loads the settings of the confq command.
//
// Settings are assembled from several layers in the following priority
// order (later layers override earlier non-zero fields):
//  1. Built-in defaults
//  2. CONFQ_* environment variables
//  3. Command-line flags
//
// The main entry point is [GetSettings].
package config
