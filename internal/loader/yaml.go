package loader

import (
	"fmt"

	"gopkg.in/yaml.v3"

	"github.com/MKhiriev/confmerge/models"
)

// YAML loads the first document of a YAML file.
func YAML(path string) (models.Mapping, error) {
	data, err := readFile(path)
	if err != nil {
		return nil, err
	}

	var doc any
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("%w: %q: %w", ErrParse, path, err)
	}

	return toMapping(path, doc)
}
