// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package models holds the types shared by every layer of confmerge: the
// untyped configuration [Mapping], the explicit [Shape] schema a lookup can
// be materialised into, and the [Violation] records produced when a shape's
// rules reject the data.
package models

// Mapping is an arbitrarily nested configuration tree.
//
// Values are scalars, nested map[string]any values or []any sequences.
// A Mapping produced by merging literal data never contains cycles.
type Mapping = map[string]any

// AsMapping reports whether v is a nested mapping and returns it.
func AsMapping(v any) (Mapping, bool) {
	m, ok := v.(map[string]any)
	return m, ok
}
