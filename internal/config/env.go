// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"fmt"

	"github.com/caarlos0/env/v11"
)

// parseEnv populates settings from CONFQ_* environment variables using the
// caarlos0/env library. Fields are mapped via their `env` tags on
// [Settings].
//
// Returns a wrapped error if env.Parse fails (e.g. a malformed source entry
// or a non-boolean flag value).
func parseEnv(settings *Settings) error {
	err := env.ParseWithOptions(settings, env.Options{Prefix: EnvPrefix})
	if err != nil {
		return fmt.Errorf("error getting env settings: %w", err)
	}

	return nil
}
