// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package store exposes lookups against a merged configuration mapping.
//
// [Store] resolves dotted, by default case-insensitive, paths and can
// materialise the result into a declared [models.Shape], validating it on
// the way. [CachedStore] wraps any [Getter] and memoises every distinct
// (path, shape) lookup, so repeated calls return the identical value; this
// is what makes a shape instance usable as a process-wide singleton.
//
// Absence is never an error: a missing path yields a nil value.
package store

//go:generate mockgen -source=interfaces.go -destination=../internal/mock/getter_mock.go -package=mock
