// Package cli implements the formstate command tree.
package cli

import (
	"context"
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/goliatone/go-formstate/internal/config"
	"github.com/goliatone/go-formstate/internal/logging"
	"github.com/goliatone/go-formstate/pkg/schema"
	"github.com/goliatone/go-formstate/pkg/tui"
)

// RootOptions holds global flags shared by all commands.
type RootOptions struct {
	LogLevel  string
	LogFormat string
	Output    string

	// Driver overrides the terminal prompt driver; nil uses survey.
	Driver tui.PromptDriver

	logger *slog.Logger
	format tui.OutputFormat
}

// SourceOptions selects where a form definition comes from.
type SourceOptions struct {
	Definition string
	OpenAPI    string
	Operation  string
}

// NewRootCommand creates the root command. cfg provides flag defaults.
func NewRootCommand(cfg config.Config, rootOpts *RootOptions) *cobra.Command {
	if rootOpts == nil {
		rootOpts = &RootOptions{}
	}

	cmd := &cobra.Command{
		Use:   "formstate",
		Short: "Fill and check forms from declarative definitions",
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			format, err := tui.ParseOutputFormat(rootOpts.Output)
			if err != nil {
				return err
			}
			rootOpts.format = format

			logger, err := logging.New(cmd.ErrOrStderr(), rootOpts.LogLevel, rootOpts.LogFormat)
			if err != nil {
				return err
			}
			rootOpts.logger = logger
			return nil
		},
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	cmd.PersistentFlags().StringVar(&rootOpts.LogLevel, "log-level", cfg.LogLevel, "log level (debug|info|warn|error)")
	cmd.PersistentFlags().StringVar(&rootOpts.LogFormat, "log-format", cfg.LogFormat, "log format (text|json)")
	cmd.PersistentFlags().StringVarP(&rootOpts.Output, "output", "o", cfg.Output, "output format (json|form|pretty)")

	cmd.AddCommand(NewRunCommand(rootOpts, cfg))
	cmd.AddCommand(NewCheckCommand(rootOpts))

	return cmd
}

func (s *SourceOptions) bind(cmd *cobra.Command) {
	cmd.Flags().StringVarP(&s.Definition, "definition", "d", "", "form definition file (YAML or JSON)")
	cmd.Flags().StringVar(&s.OpenAPI, "openapi", "", "OpenAPI document to derive the form from")
	cmd.Flags().StringVar(&s.Operation, "operation", "", "operation id used with --openapi")
	cmd.MarkFlagsMutuallyExclusive("definition", "openapi")
	cmd.MarkFlagsOneRequired("definition", "openapi")
	cmd.MarkFlagsRequiredTogether("openapi", "operation")
}

func (s *SourceOptions) load(ctx context.Context) (schema.Definition, error) {
	if s.Definition != "" {
		return schema.Load(s.Definition)
	}
	raw, err := os.ReadFile(s.OpenAPI)
	if err != nil {
		return schema.Definition{}, fmt.Errorf("read %s: %w", s.OpenAPI, err)
	}
	return schema.FromOpenAPI(ctx, raw, s.Operation)
}
