package loader

import (
	"encoding/json"
	"fmt"

	"github.com/tidwall/jsonc"

	"github.com/MKhiriev/confmerge/models"
)

// JSON loads a JSON file. Comments and trailing commas are accepted.
func JSON(path string) (models.Mapping, error) {
	data, err := readFile(path)
	if err != nil {
		return nil, err
	}

	var doc any
	if err := json.Unmarshal(jsonc.ToJSON(data), &doc); err != nil {
		return nil, fmt.Errorf("%w: %q: %w", ErrParse, path, err)
	}

	return toMapping(path, doc)
}
