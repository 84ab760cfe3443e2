package config

import (
	"errors"
	"fmt"

	"dario.cat/mergo"
)

type settingsBuilder struct {
	layers    []*Settings
	overrides []Override
	err       error
}

func newSettingsBuilder() *settingsBuilder {
	return &settingsBuilder{
		layers: make([]*Settings, 0, 3),
	}
}

func (b *settingsBuilder) build() (*Settings, error) {
	if b.err != nil {
		return nil, fmt.Errorf("error occurred during building settings: %w", b.err)
	}

	settings := new(Settings)
	for _, layer := range b.layers {
		if err := mergo.Merge(settings, layer, mergo.WithOverride); err != nil {
			return nil, fmt.Errorf("error merging settings: %w", err)
		}
	}

	for _, override := range b.overrides {
		override(settings)
	}

	if err := settings.validate(); err != nil {
		return nil, err
	}
	return settings, nil
}

func (b *settingsBuilder) withDefaults() *settingsBuilder {
	b.layers = append(b.layers, Defaults())
	return b
}

func (b *settingsBuilder) withEnv() *settingsBuilder {
	envSettings := &Settings{}
	if err := parseEnv(envSettings); err != nil {
		b.err = errors.Join(b.err, err)
		return b
	}

	b.layers = append(b.layers, envSettings)
	return b
}

func (b *settingsBuilder) withFlags(flags *Settings) *settingsBuilder {
	if flags != nil {
		b.layers = append(b.layers, flags)
	}
	return b
}

func (b *settingsBuilder) withOverrides(overrides ...Override) *settingsBuilder {
	b.overrides = append(b.overrides, overrides...)
	return b
}
