// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package keypath implements the key handling of a configuration tree:
// dot-path resolution with optional case folding, recursive key renaming,
// expansion of delimiter-encoded flat keys into nested mappings, and the
// deep merge used to combine sources.
//
// Every function returns new mappings and leaves its inputs untouched.
package keypath
