package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/goliatone/go-formstate/internal/config"
	"github.com/goliatone/go-formstate/pkg/form"
	"github.com/goliatone/go-formstate/pkg/tui"
	"github.com/goliatone/go-formstate/pkg/validation"
)

// RunOptions holds flags for the run command.
type RunOptions struct {
	Source       SourceOptions
	MaxAttempts  int
	ConfirmRetry bool
	StripMarkup  bool
}

// NewRunCommand creates the interactive run command.
func NewRunCommand(rootOpts *RootOptions, cfg config.Config) *cobra.Command {
	opts := &RunOptions{}

	cmd := &cobra.Command{
		Use:   "run",
		Short: "Fill a form interactively and print the submitted values",
		Long: `Prompt for every field of a form definition, validating as you go.
Fields that are still invalid when the form is submitted are prompted again.
The submitted values are written to stdout in the selected output format.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runInteractive(cmd, rootOpts, opts)
		},
	}

	opts.Source.bind(cmd)
	cmd.Flags().IntVar(&opts.MaxAttempts, "max-attempts", cfg.MaxAttempts, "give up after this many submit attempts (0 = unlimited)")
	cmd.Flags().BoolVar(&opts.ConfirmRetry, "confirm-retry", false, "ask before re-prompting invalid fields")
	cmd.Flags().BoolVar(&opts.StripMarkup, "strip-markup", false, "remove HTML markup from answers")

	return cmd
}

func runInteractive(cmd *cobra.Command, rootOpts *RootOptions, opts *RunOptions) error {
	ctx := cmd.Context()
	logger := rootOpts.logger

	def, err := opts.Source.load(ctx)
	if err != nil {
		return err
	}

	engineOpts := []form.Option{form.WithLogger(logger)}
	if opts.StripMarkup {
		engineOpts = append(engineOpts, form.WithInputFilter(validation.StripMarkup))
	}
	engine, err := def.NewEngine(nil, engineOpts...)
	if err != nil {
		return err
	}

	if def.Title != "" {
		fmt.Fprintln(cmd.ErrOrStderr(), def.Title)
	}

	session := tui.New(
		tui.WithPromptDriver(rootOpts.Driver),
		tui.WithMaxAttempts(opts.MaxAttempts),
		tui.WithLogger(logger),
		confirmOption(opts.ConfirmRetry),
	)
	res, err := session.Run(ctx, def, engine)
	if err != nil {
		return err
	}

	out, err := tui.Encode(res.Values, rootOpts.format, def.Order())
	if err != nil {
		return err
	}
	return writeOutput(cmd, out)
}

func confirmOption(enabled bool) tui.Option {
	if !enabled {
		return nil
	}
	return tui.WithConfirmRetry()
}

func writeOutput(cmd *cobra.Command, out []byte) error {
	w := cmd.OutOrStdout()
	if _, err := w.Write(out); err != nil {
		return err
	}
	if len(out) > 0 && out[len(out)-1] != '\n' {
		_, err := fmt.Fprintln(w)
		return err
	}
	return nil
}
