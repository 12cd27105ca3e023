package cli

import (
	"github.com/shkomig/Engineered-prompt/internal/repository"
	"github.com/shkomig/Engineered-prompt/internal/synthesis"
	"github.com/spf13/cobra"
)

// App holds references to the services used by CLI commands.
type App struct {
	Synth   synthesis.Service
	Records repository.PromptRecordRepo

	// IsInteractive reports whether stdin is an interactive terminal.
	IsInteractive func() bool
}

// NewRootCmd creates the top-level "engprompt" command and registers
// all subcommands against the provided App.
func NewRootCmd(app *App) *cobra.Command {
	root := &cobra.Command{
		Use:   "engprompt",
		Short: "Convert Hebrew requests into structured generation prompts",
		Long: `engprompt classifies a free-form Hebrew request into a task category,
detects the desired style, extracts template variables and renders a
finished, category-specific prompt. Every generated prompt can be saved,
rated and queried later.`,
	}

	root.AddCommand(
		newGenerateCmd(app),
		newHistoryCmd(app),
		newBestCmd(app),
		newFeedbackCmd(app),
		newStatsCmd(app),
		newTemplateCmd(app),
		newShellCmd(app),
	)

	return root
}
