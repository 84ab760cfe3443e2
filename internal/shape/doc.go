// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package shape turns a resolved configuration mapping into an instance of
// a declared [models.Shape].
//
// The work happens in three steps:
//  1. [Reconcile] renames source keys (FOO_BAR, foobar ...) to the shape's
//     declared property names and drops everything undeclared.
//  2. [Coerce] converts each value to the Kind of its field.
//  3. [Instantiate] decodes the coerced values into a fresh shape instance.
package shape
