package models

import "fmt"

// Violation is a single rule failure reported for a shape property.
type Violation struct {
	// Rule is the failed rule tag ("required", "min", "type" ...).
	Rule string `json:"rule"`
	// Property is the declared field name the rule was evaluated on.
	Property string `json:"property"`
	// Message is a human readable description of the failure.
	Message string `json:"message"`
}

func (v Violation) String() string {
	return fmt.Sprintf("%s: %s (%s)", v.Property, v.Message, v.Rule)
}
