// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"fmt"

	"github.com/rs/zerolog"
)

// validate checks that the merged [Settings] describe a runnable query.
//
// Returns nil if the settings are valid, or an error wrapping one of the
// package sentinels otherwise.
func (s *Settings) validate() error {
	if len(s.Sources) == 0 {
		return ErrNoSources
	}
	for _, src := range s.Sources {
		if err := src.validate(); err != nil {
			return err
		}
	}

	if s.Output != OutputJSON && s.Output != OutputYAML {
		return fmt.Errorf("%w: %q", ErrInvalidOutput, s.Output)
	}

	if s.LogLevel != "" {
		if _, err := zerolog.ParseLevel(s.LogLevel); err != nil {
			return fmt.Errorf("%w: %q", ErrInvalidLogLevel, s.LogLevel)
		}
	}

	return nil
}
