package cli

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"
)

func newShellCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "shell",
		Short: "Interactive prompt generation loop",
		Long: `Start an interactive shell. Each line you enter is synthesized into a
prompt and saved; shell commands start with a colon (:help lists them).`,
		RunE: func(cmd *cobra.Command, args []string) error {
			if app.IsInteractive != nil && !app.IsInteractive() {
				return fmt.Errorf("shell requires an interactive terminal")
			}

			p := tea.NewProgram(newShellModel(app))
			_, err := p.Run()
			return err
		},
	}
}
