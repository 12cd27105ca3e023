package cli

import (
	"context"
	"fmt"
	"strings"

	"github.com/shkomig/Engineered-prompt/internal/cli/formatter"
	"github.com/shkomig/Engineered-prompt/internal/domain"
	"github.com/shkomig/Engineered-prompt/internal/synthesis"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
)

// generateFlags holds the flag values of the generate command.
type generateFlags struct {
	context       string
	instructions  string
	category      string
	noSave        bool
	showVariables bool
	interactive   bool
}

func (f *generateFlags) register(fs *pflag.FlagSet) {
	fs.StringVarP(&f.context, "context", "c", "", "additional context for the request")
	fs.StringVarP(&f.instructions, "instructions", "i", "", "special instructions or constraints")
	fs.StringVar(&f.category, "category", "", "override the detected category (visual|textual|technical)")
	fs.BoolVar(&f.noSave, "no-save", false, "do not persist the generated prompt")
	fs.BoolVar(&f.showVariables, "show-variables", false, "print the extracted variable map")
	fs.BoolVar(&f.interactive, "interactive", false, "collect the request through a guided form")
}

func newGenerateCmd(app *App) *cobra.Command {
	var flags generateFlags

	cmd := &cobra.Command{
		Use:   "generate [TEXT]",
		Short: "Generate a structured prompt from a Hebrew request",
		Args:  cobra.ArbitraryArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			req := synthesis.Request{
				Text:         strings.Join(args, " "),
				Context:      flags.context,
				Instructions: flags.instructions,
				Override:     domain.Category(flags.category),
			}

			// With no text and a terminal attached, fall back to the
			// guided form instead of synthesizing the empty string.
			if flags.interactive || (req.Text == "" && app.IsInteractive != nil && app.IsInteractive()) {
				if err := runGenerateForm(&req); err != nil {
					return err
				}
			}
			if strings.TrimSpace(req.Text) == "" {
				return fmt.Errorf("no request text given")
			}

			return runGenerate(cmd.Context(), app, req, &flags)
		},
	}

	flags.register(cmd.Flags())
	return cmd
}

func runGenerate(ctx context.Context, app *App, req synthesis.Request, flags *generateFlags) error {
	result, err := app.Synth.Synthesize(ctx, req)
	if err != nil {
		return err
	}

	fmt.Println(formatter.FormatSynthesis(result))

	if flags.showVariables {
		fmt.Println(formatter.Header("Variables"))
		fmt.Print(formatter.FormatVariables(result.Variables))
		fmt.Println()
	}

	if flags.noSave {
		return nil
	}

	record, err := synthesis.NewRecord(result)
	if err != nil {
		return err
	}
	if err := app.Records.Save(ctx, record); err != nil {
		return fmt.Errorf("saving prompt record: %w", err)
	}

	fmt.Println(formatter.Dim(fmt.Sprintf("Saved as %s (rate it with: engprompt feedback %s --kind good --rating 5)",
		formatter.ShortID(record.ID), formatter.ShortID(record.ID))))
	return nil
}
