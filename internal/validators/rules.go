package validators

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"

	"github.com/MKhiriev/confmerge/models"
)

// messages maps validation tags to friendly messages. Templates with a
// second %s receive the rule parameter.
var messages = map[string]string{
	"required": "the property '%s' is required",
	"email":    "the property '%s' must be a valid email address",
	"url":      "the property '%s' must be a valid URL",
	"min":      "the property '%s' must be at least %s",
	"max":      "the property '%s' must be at most %s",
	"len":      "the property '%s' must have length %s",
	"lte":      "the property '%s' must be less than or equal to %s",
	"gte":      "the property '%s' must be greater than or equal to %s",
	"gt":       "the property '%s' must be greater than %s",
	"lt":       "the property '%s' must be less than %s",
	"oneof":    "the property '%s' must be one of [%s]",
	"hostname": "the property '%s' must be a valid hostname",
}

// RuleValidator implements [Validator] with go-playground/validator,
// evaluating each field's rule string on its own value.
type RuleValidator struct {
	validate *validator.Validate
}

// NewRuleValidator constructs a RuleValidator and returns it as the
// Validator interface.
func NewRuleValidator() Validator {
	return &RuleValidator{validate: validator.New(validator.WithRequiredStructEnabled())}
}

// Validate evaluates the fields of shape in declaration order. Fields with
// an empty rule string are skipped. A missing value is validated as nil and
// fails every rule unless the rule string starts with "omitempty".
func (v *RuleValidator) Validate(_ context.Context, shape *models.Shape, values models.Mapping) []models.Violation {
	var violations []models.Violation

	for _, field := range shape.Fields {
		if strings.TrimSpace(field.Rules) == "" {
			continue
		}

		err := v.validate.Var(values[field.Name], field.Rules)
		if err == nil {
			continue
		}

		var fieldErrs validator.ValidationErrors
		if !errors.As(err, &fieldErrs) {
			violations = append(violations, models.Violation{
				Rule:     field.Rules,
				Property: field.Name,
				Message:  err.Error(),
			})
			continue
		}

		for _, fe := range fieldErrs {
			violations = append(violations, models.Violation{
				Rule:     fe.Tag(),
				Property: field.Name,
				Message:  message(field.Name, fe),
			})
		}
	}

	return violations
}

func message(property string, fe validator.FieldError) string {
	if tmpl, ok := messages[fe.Tag()]; ok {
		if strings.Count(tmpl, "%s") == 2 {
			return fmt.Sprintf(tmpl, property, fe.Param())
		}
		return fmt.Sprintf(tmpl, property)
	}
	return fmt.Sprintf("the property '%s' is invalid: %s", property, fe.Tag())
}
