package cli

import (
	"fmt"

	"github.com/shkomig/Engineered-prompt/internal/cli/formatter"
	"github.com/shkomig/Engineered-prompt/internal/domain"
	"github.com/spf13/cobra"
)

func newHistoryCmd(app *App) *cobra.Command {
	var limit int
	var category string
	var full bool

	cmd := &cobra.Command{
		Use:   "history",
		Short: "List previously generated prompts",
		RunE: func(cmd *cobra.Command, args []string) error {
			records, err := app.Records.History(cmd.Context(), limit, domain.Category(category))
			if err != nil {
				return err
			}

			if len(records) == 0 {
				fmt.Println("No prompts generated yet.")
				return nil
			}

			if full {
				for _, r := range records {
					fmt.Println(formatter.FormatRecord(r))
				}
				return nil
			}

			fmt.Print(formatter.FormatHistoryTable(records))
			return nil
		},
	}

	cmd.Flags().IntVar(&limit, "limit", 20, "maximum number of records to list")
	cmd.Flags().StringVar(&category, "category", "", "only show records for this category")
	cmd.Flags().BoolVar(&full, "full", false, "print full records instead of a table")
	return cmd
}

func newBestCmd(app *App) *cobra.Command {
	var minRating float64
	var limit int

	cmd := &cobra.Command{
		Use:   "best CATEGORY",
		Short: "List the highest-rated prompts for a category",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			category := domain.Category(args[0])
			if !domain.IsValidCategory(category) {
				return fmt.Errorf("unknown category %q", args[0])
			}

			records, err := app.Records.Best(cmd.Context(), category, minRating, limit)
			if err != nil {
				return err
			}

			if len(records) == 0 {
				fmt.Printf("No prompts rated %.1f or higher for %s.\n", minRating, category)
				return nil
			}

			fmt.Print(formatter.FormatHistoryTable(records))
			return nil
		},
	}

	cmd.Flags().Float64Var(&minRating, "min-rating", 4.0, "minimum rating to include")
	cmd.Flags().IntVar(&limit, "limit", 10, "maximum number of records to list")
	return cmd
}
