package cli

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/goliatone/go-formstate/pkg/form"
	"github.com/goliatone/go-formstate/pkg/schema"
	"github.com/goliatone/go-formstate/pkg/tui"
)

// ErrInvalid is returned by the check command when the values do not pass
// validation.
var ErrInvalid = errors.New("form is invalid")

// CheckOptions holds flags for the check command.
type CheckOptions struct {
	Source SourceOptions
	Values string
}

// CheckReport is the JSON document printed for invalid forms.
type CheckReport struct {
	Valid  bool              `json:"valid"`
	Errors map[string]string `json:"errors,omitempty"`
}

// NewCheckCommand creates the non-interactive check command.
func NewCheckCommand(rootOpts *RootOptions) *cobra.Command {
	opts := &CheckOptions{}

	cmd := &cobra.Command{
		Use:   "check",
		Short: "Validate a values file against a form definition",
		Long: `Load a flat YAML or JSON mapping of field values, apply it to the form
and submit. Valid forms print the values in the selected output format;
invalid forms print every field error and exit non-zero.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runCheck(cmd, rootOpts, opts)
		},
	}

	opts.Source.bind(cmd)
	cmd.Flags().StringVar(&opts.Values, "values", "", "values file (YAML or JSON)")
	_ = cmd.MarkFlagRequired("values")

	return cmd
}

func runCheck(cmd *cobra.Command, rootOpts *RootOptions, opts *CheckOptions) error {
	ctx := cmd.Context()

	def, err := opts.Source.load(ctx)
	if err != nil {
		return err
	}
	raw, err := os.ReadFile(opts.Values)
	if err != nil {
		return fmt.Errorf("read %s: %w", opts.Values, err)
	}
	values, err := schema.ParseValues(raw)
	if err != nil {
		return err
	}

	engine, err := def.NewEngine(nil, form.WithLogger(rootOpts.logger))
	if err != nil {
		return err
	}
	for _, name := range sortedKeys(values) {
		if err := engine.SetField(name, values[name]); err != nil {
			return err
		}
	}

	res, err := engine.Submit(ctx).Wait(ctx)
	if err != nil {
		return err
	}
	if res.Outcome == form.OutcomeSubmitted {
		out, err := tui.Encode(res.Values, rootOpts.format, def.Order())
		if err != nil {
			return err
		}
		return writeOutput(cmd, out)
	}

	visible := engine.State().VisibleErrors()
	if rootOpts.format == tui.OutputFormatJSON {
		out, err := json.Marshal(CheckReport{Valid: false, Errors: visible})
		if err != nil {
			return err
		}
		if err := writeOutput(cmd, out); err != nil {
			return err
		}
		return ErrInvalid
	}

	var b strings.Builder
	for _, name := range def.Order() {
		if msg, ok := visible[name]; ok {
			field, _ := def.Field(name)
			fmt.Fprintf(&b, "%s: %s\n", field.DisplayLabel(), msg)
		}
	}
	if err := writeOutput(cmd, []byte(b.String())); err != nil {
		return err
	}
	return ErrInvalid
}

func sortedKeys(values map[string]string) []string {
	return form.Values(values).Keys()
}
