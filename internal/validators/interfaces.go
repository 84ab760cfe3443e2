// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package validators evaluates the rules a [models.Shape] declares for its
// properties.
//
// Core concepts:
//   - Validator: evaluates every field's rule string against the value the
//     property will hold and reports failures as [models.Violation] records,
//     never as errors.
//   - RuleValidator: the default implementation backed by
//     go-playground/validator.
//
// Rule strings use the go-playground/validator tag syntax, for example
// "required,min=3" or "oneof=debug info warn".
package validators

//go:generate mockgen -source=interfaces.go -destination=../mock/validator_mock.go -package=mock

import (
	"context"

	"github.com/MKhiriev/confmerge/models"
)

// Validator checks property values against the rules of a shape.
type Validator interface {

	// Validate evaluates the rules of every field of shape against
	// values[field.Name] and returns the failures. An empty result means
	// the values are valid.
	Validate(ctx context.Context, shape *models.Shape, values models.Mapping) []models.Violation
}
