// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package loader

import (
	"os"

	"github.com/caarlos0/env/v11"

	"github.com/MKhiriev/confmerge/models"
)

// Env snapshots the process environment as a flat mapping of strings.
func Env() models.Mapping {
	return EnvFrom(os.Environ())
}

// EnvFrom converts KEY=VALUE pairs, as returned by [os.Environ], into a
// flat mapping of strings.
func EnvFrom(environ []string) models.Mapping {
	return fromStrings(env.ToMap(environ))
}
