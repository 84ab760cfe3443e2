package shape

import (
	"fmt"
	"time"

	"github.com/go-viper/mapstructure/v2"

	"github.com/MKhiriev/confmerge/models"
)

// TagName is the struct tag used to map a property onto a differently
// named Go field.
const TagName = "config"

// Instantiate decodes values into a fresh instance of s and returns it.
//
// Properties are matched to struct fields by name, case-insensitively, or
// by the `config` tag. Nil values leave the field at its zero value.
func Instantiate(values models.Mapping, s *models.Shape) (any, error) {
	instance := s.New()

	decoder, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		TagName:          TagName,
		WeaklyTypedInput: true,
		Result:           instance,
		DecodeHook: mapstructure.ComposeDecodeHookFunc(
			mapstructure.StringToTimeDurationHookFunc(),
			mapstructure.StringToSliceHookFunc(","),
			mapstructure.StringToTimeHookFunc(time.RFC3339),
		),
	})
	if err != nil {
		return nil, fmt.Errorf("%w: failed to create decoder: %w", ErrInstantiate, err)
	}

	if err := decoder.Decode(values); err != nil {
		return nil, fmt.Errorf("%w: shape %q: %w", ErrInstantiate, s.Name, err)
	}

	return instance, nil
}
