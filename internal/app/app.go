package app

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"

	"gopkg.in/yaml.v3"

	"github.com/MKhiriev/confmerge/aggregator"
	"github.com/MKhiriev/confmerge/internal/config"
	"github.com/MKhiriev/confmerge/internal/keypath"
	"github.com/MKhiriev/confmerge/internal/logger"
	"github.com/MKhiriev/confmerge/models"
	"github.com/MKhiriev/confmerge/store"
)

// ErrNotFound is returned by [App.Run] when the path resolves to nothing.
var ErrNotFound = errors.New("path not found")

// App executes queries against the sources named by its settings.
type App struct {
	settings *config.Settings
	log      *logger.Logger
}

// New returns an App for settings. A nil logger discards output.
func New(settings *config.Settings, log *logger.Logger) *App {
	if log == nil {
		log = logger.Nop()
	}
	return &App{settings: settings, log: log}
}

// Aggregator registers every configured source, in order.
func (a *App) Aggregator() *aggregator.Aggregator {
	agg := aggregator.New(aggregator.WithLogger(a.log))

	for _, src := range a.settings.Sources {
		var opts []aggregator.SourceOption
		if src.Namespace != "" {
			opts = append(opts, aggregator.WithNamespace(src.Namespace))
		}
		if a.settings.Nesting {
			opts = append(opts, aggregator.WithNestingDelimiter(a.settings.NestingDelimiter))
		}

		switch src.Kind {
		case config.SourceEnv:
			agg.AddEnvVars(opts...)
		case config.SourceJSON:
			agg.AddJSONFile(src.Path, opts...)
		case config.SourceYAML:
			agg.AddYAMLFile(src.Path, opts...)
		case config.SourceDotEnv:
			agg.AddDotEnvFile(src.Path, opts...)
		}

		a.log.Debug().Str("source", src.String()).Msg(MsgSourceRegistered)
	}

	return agg
}

// StoreOptions translates the lookup settings into store options.
func (a *App) StoreOptions() []store.Option {
	var opts []store.Option
	if a.settings.CaseSensitiveKeys {
		opts = append(opts, store.WithCaseSensitiveKeys())
	}
	if a.settings.RemoveKeyUnderscores {
		opts = append(opts, store.WithRemoveKeyUnderscores())
	}
	if a.settings.RemoveKeyHyphens {
		opts = append(opts, store.WithRemoveKeyHyphens())
	}
	return opts
}

// Query builds the aggregated configuration and returns the value at path.
// A missing path yields [ErrNotFound].
func (a *App) Query(ctx context.Context, path string) (any, error) {
	cfg, err := a.Aggregator().Build(a.StoreOptions()...)
	if err != nil {
		a.log.Error().Err(err).Msg(MsgBuildFailed)
		return nil, err
	}

	value, err := cfg.Get(ctx, path, nil)
	if err != nil {
		a.log.Error().Err(err).Str("path", path).Msg(MsgLookupFailed)
		return nil, err
	}
	if value == nil {
		a.log.Warn().Str("path", path).Msg(MsgPathNotFound)
		return nil, fmt.Errorf("%w: %q", ErrNotFound, path)
	}
	return value, nil
}

// Run queries path and renders the value to w.
func (a *App) Run(ctx context.Context, path string, w io.Writer) error {
	value, err := a.Query(ctx, path)
	if err != nil {
		return err
	}

	if err = Render(w, value, a.settings); err != nil {
		a.log.Error().Err(err).Msg(MsgRenderFailed)
		return err
	}
	return nil
}

// Render writes value in the configured output format. With Flat set,
// mappings are collapsed into delimiter-joined keys first.
func Render(w io.Writer, value any, settings *config.Settings) error {
	if m, ok := models.AsMapping(value); ok && settings.Flat {
		value = keypath.Flatten(m, settings.NestingDelimiter)
	}

	switch settings.Output {
	case config.OutputYAML:
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(value); err != nil {
			return fmt.Errorf("error encoding yaml: %w", err)
		}
		return enc.Close()
	default:
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		if err := enc.Encode(value); err != nil {
			return fmt.Errorf("error encoding json: %w", err)
		}
		return nil
	}
}
