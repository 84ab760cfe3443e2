package shape

import (
	"fmt"
	"strings"

	"github.com/spf13/cast"

	"github.com/MKhiriev/confmerge/models"
)

// RuleType is the rule name reported when a value cannot be converted to
// the Kind of its field.
const RuleType = "type"

// Coerce converts every non-nil value of reconciled to the Kind declared
// by its field.
//
// The returned mapping holds only the values that converted cleanly (and
// the nil ones); every failed conversion is reported as a [RuleType]
// violation instead.
func Coerce(reconciled models.Mapping, s *models.Shape) (models.Mapping, []models.Violation) {
	out := make(models.Mapping, len(reconciled))
	var violations []models.Violation

	for _, field := range s.Fields {
		raw, ok := reconciled[field.Name]
		if !ok {
			continue
		}
		if raw == nil {
			out[field.Name] = nil
			continue
		}

		value, err := convert(raw, field.Kind)
		if err != nil {
			violations = append(violations, models.Violation{
				Rule:     RuleType,
				Property: field.Name,
				Message:  fmt.Sprintf("must be of type %s", field.Kind),
			})
			continue
		}
		out[field.Name] = value
	}

	return out, violations
}

func convert(raw any, kind models.Kind) (any, error) {
	switch kind {
	case models.KindAny:
		return raw, nil
	case models.KindString:
		return cast.ToStringE(raw)
	case models.KindInt:
		return cast.ToIntE(raw)
	case models.KindFloat:
		return cast.ToFloat64E(raw)
	case models.KindBool:
		return cast.ToBoolE(raw)
	case models.KindDuration:
		return cast.ToDurationE(raw)
	case models.KindStringSlice:
		if s, ok := raw.(string); ok {
			return splitList(s), nil
		}
		return cast.ToStringSliceE(raw)
	case models.KindMap:
		if _, ok := raw.(map[string]any); !ok {
			return nil, fmt.Errorf("%w: %T is not a mapping", ErrConversion, raw)
		}
		return raw, nil
	default:
		return nil, fmt.Errorf("%w: unknown kind %d", ErrConversion, kind)
	}
}

// splitList splits "a, b,c" into [a b c]; an empty string is an empty list.
func splitList(s string) []string {
	if strings.TrimSpace(s) == "" {
		return []string{}
	}
	parts := strings.Split(s, ",")
	for i := range parts {
		parts[i] = strings.TrimSpace(parts[i])
	}
	return parts
}
