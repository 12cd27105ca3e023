package formatter

import (
	"fmt"
	"strings"

	"github.com/shkomig/Engineered-prompt/internal/domain"
)

// FormatHistoryTable renders stored prompt records as a table.
func FormatHistoryTable(records []*domain.PromptRecord) string {
	headers := []string{"ID", "Created", "Category", "Rating", "Input"}
	rows := make([][]string, 0, len(records))
	for _, r := range records {
		rows = append(rows, []string{
			ShortID(r.ID),
			r.CreatedAt.Format("2006-01-02 15:04"),
			CategoryBadge(r.Category),
			formatRating(r),
			Truncate(r.InputText, 40),
		})
	}
	return RenderTable(headers, rows)
}

// FormatRecord renders one stored record in full.
func FormatRecord(r *domain.PromptRecord) string {
	var b strings.Builder

	b.WriteString(Header("Prompt Record"))
	b.WriteString("\n")
	b.WriteString(fmt.Sprintf("  ID:        %s\n", Bold(r.ID)))
	b.WriteString(fmt.Sprintf("  Created:   %s\n", r.CreatedAt.Format("2006-01-02 15:04:05")))
	b.WriteString(fmt.Sprintf("  Category:  %s\n", CategoryBadge(r.Category)))
	b.WriteString(fmt.Sprintf("  Style:     %s\n", FormatStyle(r.Style)))
	b.WriteString(fmt.Sprintf("  Rating:    %s\n", formatRating(r)))
	b.WriteString("\n")
	b.WriteString(Header("Input"))
	b.WriteString("\n" + r.InputText + "\n\n")
	b.WriteString(Header("Generated Prompt"))
	b.WriteString("\n" + r.Prompt + "\n")

	return b.String()
}

// FormatStatistics renders the aggregate history statistics.
func FormatStatistics(stats *domain.Statistics) string {
	var b strings.Builder

	b.WriteString(Header("Statistics"))
	b.WriteString("\n")
	b.WriteString(fmt.Sprintf("  Total prompts:   %s\n", Bold(fmt.Sprintf("%d", stats.TotalPrompts))))
	b.WriteString(fmt.Sprintf("  Average rating:  %s\n", Bold(fmt.Sprintf("%.1f/5.0", stats.AverageRating))))

	if len(stats.Categories) > 0 {
		badges := make([]string, 0, len(stats.Categories))
		for _, c := range stats.Categories {
			badges = append(badges, CategoryBadge(c))
		}
		b.WriteString(fmt.Sprintf("  Categories:      %s\n", strings.Join(badges, "  ")))
	}

	return b.String()
}

func formatRating(r *domain.PromptRecord) string {
	if r.Rating == nil {
		return Dim("unrated")
	}
	s := fmt.Sprintf("%.1f", *r.Rating)
	switch r.Feedback {
	case domain.FeedbackGood:
		return StyleGreen.Render(s)
	case domain.FeedbackBad:
		return StyleRed.Render(s)
	default:
		return StyleYellow.Render(s)
	}
}

// ShortID returns the first 8 characters of a record ID for display.
func ShortID(id string) string {
	if len(id) <= 8 {
		return id
	}
	return id[:8]
}

// Truncate shortens s to max runes, appending an ellipsis when cut.
func Truncate(s string, max int) string {
	runes := []rune(s)
	if len(runes) <= max {
		return s
	}
	return string(runes[:max-1]) + "…"
}
