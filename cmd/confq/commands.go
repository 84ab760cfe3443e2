package main

import (
	"fmt"
	"io"
	"os"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/MKhiriev/confmerge/internal/app"
	"github.com/MKhiriev/confmerge/internal/config"
	"github.com/MKhiriev/confmerge/internal/logger"
	"github.com/MKhiriev/confmerge/models"
)

// newRootCommand creates the confq command tree.
func newRootCommand() *cobra.Command {
	root := &cobra.Command{
		Use:          "confq",
		Short:        "Merge configuration sources and query the result",
		SilenceUsage: true,
	}

	root.AddCommand(
		newGetCommand(os.Stdout, os.Stderr),
		newVersionCommand(os.Stdout),
	)
	return root
}

// newGetCommand creates the get command. Values go to stdout, logs to stderr.
func newGetCommand(stdout, stderr io.Writer) *cobra.Command {
	flags := &config.Settings{}

	cmd := &cobra.Command{
		Use:   "get [path]",
		Short: "Print the value at a dot-separated path",
		Example: `  confq get server.port --source yaml=config.yaml --source env@env --nesting
  confq get --source dotenv=.env --flat --output yaml`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			settings, err := config.GetSettings(flags, explicitBools(cmd.Flags().Changed, flags)...)
			if err != nil {
				return fmt.Errorf("failed to load settings: %w", err)
			}

			log := logger.NewLogger("confq", stderr, logger.ParseLevel(settings.LogLevel, zerolog.WarnLevel))
			log.Debug().Any("settings", settings).Msg(app.MsgSettingsLoaded)

			var path string
			if len(args) == 1 {
				path = args[0]
			}

			return app.New(settings, log).Run(cmd.Context(), path, stdout)
		},
	}

	f := cmd.Flags()
	f.VarP(config.SourcesFlag{Sources: &flags.Sources}, "source", "s", "source as kind[@namespace][=path]; kinds: json, yaml, dotenv, env (repeatable, applied in order)")
	f.BoolVar(&flags.Nesting, "nesting", false, "expand FOO__BAR keys of env and dotenv sources")
	f.StringVar(&flags.NestingDelimiter, "delimiter", "", "nesting delimiter (default \"__\")")
	f.BoolVar(&flags.CaseSensitiveKeys, "case-sensitive", false, "match keys case-sensitively")
	f.BoolVar(&flags.RemoveKeyUnderscores, "remove-underscores", false, "remove the first underscore of every key")
	f.BoolVar(&flags.RemoveKeyHyphens, "remove-hyphens", false, "remove the first hyphen of every key")
	f.StringVarP(&flags.Output, "output", "o", "", "output format: json or yaml (default json)")
	f.BoolVar(&flags.Flat, "flat", false, "print mappings as delimiter-joined keys")
	f.StringVar(&flags.LogLevel, "log-level", "", "log level written to stderr (default warn)")

	return cmd
}

// boolFlags maps boolean flag names to their settings field.
var boolFlags = map[string]func(*config.Settings) *bool{
	"nesting":            func(s *config.Settings) *bool { return &s.Nesting },
	"case-sensitive":     func(s *config.Settings) *bool { return &s.CaseSensitiveKeys },
	"remove-underscores": func(s *config.Settings) *bool { return &s.RemoveKeyUnderscores },
	"remove-hyphens":     func(s *config.Settings) *bool { return &s.RemoveKeyHyphens },
	"flat":               func(s *config.Settings) *bool { return &s.Flat },
}

// explicitBools turns every boolean flag given on the command line into an
// override, so --nesting=false beats CONFQ_NESTING=true.
func explicitBools(changed func(name string) bool, flags *config.Settings) []config.Override {
	var overrides []config.Override
	for name, field := range boolFlags {
		if !changed(name) {
			continue
		}
		field := field // per-iteration copy; go directive is 1.21 (pre-1.22 loopvar semantics)
		value := *field(flags)
		overrides = append(overrides, func(s *config.Settings) { *field(s) = value })
	}
	return overrides
}

// newVersionCommand creates the version command.
func newVersionCommand(stdout io.Writer) *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print build information",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return models.NewBuildInfo(buildVersion, buildDate, buildCommit).Print(stdout)
		},
	}
}
