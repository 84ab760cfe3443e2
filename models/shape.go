// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

// Field declares one property of a [Shape].
type Field struct {
	// Name is the property name as the shape spells it (e.g. "fooBar").
	// Source keys are matched against it case-insensitively.
	Name string

	// Kind is the type the raw value is coerced to before instantiation.
	Kind Kind

	// Rules is a go-playground/validator rule string such as
	// "required,min=3". Empty means the property is never validated.
	Rules string
}

// Shape is a named, instantiable target for a configuration lookup.
//
// A Shape is an explicit schema: the set of property names is the list of
// declared fields, so no reflection over the Go type is needed to discover
// it. Shapes are compared by pointer identity, which is what the cached
// store keys its entries by.
type Shape struct {
	// Name identifies the shape in error messages.
	Name string

	// Fields lists the declared properties in declaration order.
	Fields []Field

	newInstance func() any
}

// NewShape declares a shape whose instances are *T.
//
// The exported fields of T are populated by property name, or by the
// `config` struct tag when present.
func NewShape[T any](name string, fields ...Field) *Shape {
	return &Shape{
		Name:        name,
		Fields:      fields,
		newInstance: func() any { return new(T) },
	}
}

// New returns a fresh zero instance of the shape. A shape built without
// [NewShape] instantiates into a plain [Mapping].
func (s *Shape) New() any {
	if s.newInstance == nil {
		return &map[string]any{}
	}
	return s.newInstance()
}

// PropertyNames returns the declared property names in declaration order.
func (s *Shape) PropertyNames() []string {
	names := make([]string, 0, len(s.Fields))
	for _, f := range s.Fields {
		names = append(names, f.Name)
	}
	return names
}
