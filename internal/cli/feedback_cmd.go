package cli

import (
	"fmt"

	"github.com/shkomig/Engineered-prompt/internal/cli/formatter"
	"github.com/shkomig/Engineered-prompt/internal/domain"
	"github.com/spf13/cobra"
)

func newFeedbackCmd(app *App) *cobra.Command {
	var kind string
	var rating float64

	cmd := &cobra.Command{
		Use:   "feedback ID",
		Short: "Rate a previously generated prompt",
		Long: `Record feedback on a stored prompt. ID may be the full record ID or
the short prefix shown by generate and history.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			feedback := domain.Feedback(kind)
			if !domain.ValidFeedback[feedback] {
				return fmt.Errorf("invalid feedback kind %q (good|bad|neutral)", kind)
			}

			var ratingPtr *float64
			if cmd.Flags().Changed("rating") {
				if rating < 1 || rating > 5 {
					return fmt.Errorf("rating must be between 1 and 5")
				}
				ratingPtr = &rating
			}

			ctx := cmd.Context()
			id, err := app.Records.ResolveID(ctx, args[0])
			if err != nil {
				return err
			}
			if err := app.Records.UpdateFeedback(ctx, id, feedback, ratingPtr); err != nil {
				return err
			}

			fmt.Printf("Feedback recorded for %s.\n", formatter.ShortID(id))
			return nil
		},
	}

	cmd.Flags().StringVar(&kind, "kind", "", "feedback kind: good, bad or neutral")
	cmd.Flags().Float64Var(&rating, "rating", 0, "rating from 1 to 5")
	_ = cmd.MarkFlagRequired("kind")
	return cmd
}

func newStatsCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "stats",
		Short: "Show aggregate statistics over the prompt history",
		RunE: func(cmd *cobra.Command, args []string) error {
			stats, err := app.Records.Statistics(cmd.Context())
			if err != nil {
				return err
			}
			fmt.Println(formatter.FormatStatistics(stats))
			return nil
		},
	}
}
