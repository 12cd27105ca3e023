package cli

import (
	"fmt"
	"strings"

	"github.com/shkomig/Engineered-prompt/internal/cli/formatter"
	"github.com/shkomig/Engineered-prompt/internal/domain"
	"github.com/shkomig/Engineered-prompt/internal/render"
	"github.com/spf13/cobra"
)

func newTemplateCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "template",
		Short: "Browse the loaded prompt templates",
	}

	cmd.AddCommand(
		newTemplateListCmd(app),
		newTemplateShowCmd(app),
	)

	return cmd
}

func newTemplateListCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List available templates",
		RunE: func(cmd *cobra.Command, args []string) error {
			templates := app.Synth.Templates(cmd.Context())

			headers := []string{"Category", "Name", "Description"}
			rows := make([][]string, 0, len(templates))
			for _, t := range templates {
				rows = append(rows, []string{
					formatter.CategoryBadge(t.Category),
					t.Name,
					t.Description,
				})
			}

			fmt.Print(formatter.RenderTable(headers, rows))
			return nil
		},
	}
}

func newTemplateShowCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "show CATEGORY",
		Short: "Show a template body and its slots",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			var tmpl *domain.Template
			for _, t := range app.Synth.Templates(cmd.Context()) {
				if t.Category == domain.Category(args[0]) {
					tmpl = &t
					break
				}
			}
			if tmpl == nil {
				return fmt.Errorf("no template loaded for category %q", args[0])
			}

			fmt.Println(formatter.Header("Template"))
			fmt.Printf("  Category:     %s\n", formatter.CategoryBadge(tmpl.Category))
			fmt.Printf("  Name:         %s\n", formatter.Bold(tmpl.Name))
			fmt.Printf("  Description:  %s\n", tmpl.Description)
			fmt.Printf("  Slots:        %s\n", strings.Join(render.Slots(tmpl.Body), ", "))
			fmt.Println()
			fmt.Println(formatter.Header("Body"))
			fmt.Println(tmpl.Body)

			return nil
		},
	}
}
