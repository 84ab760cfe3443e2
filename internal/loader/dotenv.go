package loader

import (
	"bytes"
	"fmt"

	"github.com/joho/godotenv"

	"github.com/MKhiriev/confmerge/models"
)

// DotEnv loads a KEY=VALUE file into a flat mapping of strings. The
// process environment is neither read nor modified.
func DotEnv(path string) (models.Mapping, error) {
	data, err := readFile(path)
	if err != nil {
		return nil, err
	}

	vars, err := godotenv.Parse(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("%w: %q: %w", ErrParse, path, err)
	}

	return fromStrings(vars), nil
}
