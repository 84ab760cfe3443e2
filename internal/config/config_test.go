package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// ── settingsBuilder ───────────────────────────────────────────────────────────

// TestNewSettingsBuilder_InitialState verifies that a freshly created builder
// has no error and no layers.
func TestNewSettingsBuilder_InitialState(t *testing.T) {
	b := newSettingsBuilder()
	require.NotNil(t, b)
	assert.NoError(t, b.err)
	assert.Empty(t, b.layers)
}

// TestBuild_PropagatesBuilderError verifies that a pre-set b.err is wrapped
// and returned, with nil settings.
func TestBuild_PropagatesBuilderError(t *testing.T) {
	b := newSettingsBuilder()
	b.err = assert.AnError

	s, err := b.build()
	assert.Nil(t, s)
	assert.ErrorIs(t, err, assert.AnError)
}

// TestBuild_LaterLayerWins verifies that later non-zero fields override
// earlier ones and zero fields do not.
func TestBuild_LaterLayerWins(t *testing.T) {
	b := newSettingsBuilder().withDefaults()
	b.layers = append(b.layers,
		&Settings{Sources: []Source{{Kind: SourceEnv}}, Output: OutputYAML, Nesting: true},
		&Settings{Sources: []Source{{Kind: SourceJSON, Path: "a.json"}}, LogLevel: "debug"},
	)

	s, err := b.build()
	require.NoError(t, err)

	assert.Equal(t, []Source{{Kind: SourceJSON, Path: "a.json"}}, s.Sources)
	assert.Equal(t, OutputYAML, s.Output)
	assert.Equal(t, "debug", s.LogLevel)
	assert.Equal(t, "__", s.NestingDelimiter)
	assert.True(t, s.Nesting)
}

// TestBuild_Validates verifies that the merged settings are validated.
func TestBuild_Validates(t *testing.T) {
	_, err := newSettingsBuilder().withDefaults().build()
	assert.ErrorIs(t, err, ErrNoSources)
}

// TestWithFlags_Nil verifies that a nil flag layer is skipped.
func TestWithFlags_Nil(t *testing.T) {
	b := newSettingsBuilder()
	assert.Same(t, b, b.withFlags(nil))
	assert.Empty(t, b.layers)
}

// ── GetSettings ───────────────────────────────────────────────────────────────

// TestGetSettings_FlagsOverrideEnv verifies the full layering.
func TestGetSettings_FlagsOverrideEnv(t *testing.T) {
	t.Setenv("CONFQ_SOURCES", "yaml=app.yaml;env@env")
	t.Setenv("CONFQ_OUTPUT", "yaml")
	t.Setenv("CONFQ_NESTING", "true")

	flags := &Settings{Output: OutputJSON, Flat: true}

	s, err := GetSettings(flags)
	require.NoError(t, err)

	assert.Equal(t, []Source{
		{Kind: SourceYAML, Path: "app.yaml"},
		{Kind: SourceEnv, Namespace: "env"},
	}, s.Sources)
	assert.Equal(t, OutputJSON, s.Output)
	assert.True(t, s.Nesting)
	assert.True(t, s.Flat)
	assert.Equal(t, "warn", s.LogLevel)
}

// TestGetSettings_OverrideTurnsEnvBoolOff verifies that an override can reset
// a field to its zero value, which a merged layer cannot.
func TestGetSettings_OverrideTurnsEnvBoolOff(t *testing.T) {
	t.Setenv("CONFQ_SOURCES", "env")
	t.Setenv("CONFQ_NESTING", "true")
	t.Setenv("CONFQ_FLAT", "true")

	flags := &Settings{Nesting: false}
	off := func(s *Settings) { s.Nesting = false }

	s, err := GetSettings(flags, off)
	require.NoError(t, err)

	assert.False(t, s.Nesting)
	assert.True(t, s.Flat)
}

// TestBuild_OverridesRunBeforeValidation verifies that overrides are validated.
func TestBuild_OverridesRunBeforeValidation(t *testing.T) {
	b := newSettingsBuilder().withDefaults()
	b.layers = append(b.layers, &Settings{Sources: []Source{{Kind: SourceEnv}}})
	b.withOverrides(func(s *Settings) { s.Output = "xml" })

	_, err := b.build()
	assert.ErrorIs(t, err, ErrInvalidOutput)
}

// TestGetSettings_InvalidEnv verifies that a malformed env value fails.
func TestGetSettings_InvalidEnv(t *testing.T) {
	t.Setenv("CONFQ_SOURCES", "toml=app.toml")

	_, err := GetSettings(nil)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "env")
}

// ── parseEnv ──────────────────────────────────────────────────────────────────

// TestParseEnv_AllFields verifies every CONFQ_* variable.
func TestParseEnv_AllFields(t *testing.T) {
	vars := map[string]string{
		"CONFQ_SOURCES":                "json=a.json;dotenv@secrets=.env",
		"CONFQ_NESTING":                "true",
		"CONFQ_NESTING_DELIMITER":      ".",
		"CONFQ_CASE_SENSITIVE_KEYS":    "true",
		"CONFQ_REMOVE_KEY_UNDERSCORES": "true",
		"CONFQ_REMOVE_KEY_HYPHENS":     "true",
		"CONFQ_OUTPUT":                 "yaml",
		"CONFQ_FLAT":                   "true",
		"CONFQ_LOG_LEVEL":              "debug",
	}
	for k, v := range vars {
		t.Setenv(k, v)
	}

	s := &Settings{}
	require.NoError(t, parseEnv(s))

	assert.Equal(t, &Settings{
		Sources: []Source{
			{Kind: SourceJSON, Path: "a.json"},
			{Kind: SourceDotEnv, Namespace: "secrets", Path: ".env"},
		},
		Nesting:              true,
		NestingDelimiter:     ".",
		CaseSensitiveKeys:    true,
		RemoveKeyUnderscores: true,
		RemoveKeyHyphens:     true,
		Output:               OutputYAML,
		Flat:                 true,
		LogLevel:             "debug",
	}, s)
}

// TestParseEnv_InvalidBool verifies that conversion failures are reported.
func TestParseEnv_InvalidBool(t *testing.T) {
	t.Setenv("CONFQ_NESTING", "maybe")

	err := parseEnv(&Settings{})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "env")
}

// ── validate ──────────────────────────────────────────────────────────────────

func TestSettings_Validate(t *testing.T) {
	valid := func() *Settings {
		s := Defaults()
		s.Sources = []Source{{Kind: SourceEnv}}
		return s
	}

	tests := []struct {
		name    string
		mutate  func(*Settings)
		wantErr error
	}{
		{name: "defaults with one source", mutate: func(*Settings) {}},
		{name: "yaml output", mutate: func(s *Settings) { s.Output = OutputYAML }},
		{name: "empty log level", mutate: func(s *Settings) { s.LogLevel = "" }},
		{name: "no sources", mutate: func(s *Settings) { s.Sources = nil }, wantErr: ErrNoSources},
		{name: "unknown output", mutate: func(s *Settings) { s.Output = "xml" }, wantErr: ErrInvalidOutput},
		{name: "unknown log level", mutate: func(s *Settings) { s.LogLevel = "loud" }, wantErr: ErrInvalidLogLevel},
		{
			name:    "file source without path",
			mutate:  func(s *Settings) { s.Sources = []Source{{Kind: SourceYAML}} },
			wantErr: ErrInvalidSource,
		},
		{
			name:    "unsupported kind",
			mutate:  func(s *Settings) { s.Sources = []Source{{Kind: "toml", Path: "a.toml"}} },
			wantErr: ErrUnsupportedSourceKind,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := valid()
			tt.mutate(s)

			err := s.validate()
			if tt.wantErr == nil {
				assert.NoError(t, err)
				return
			}
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}
