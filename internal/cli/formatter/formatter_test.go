package formatter

import (
	"strings"
	"testing"

	"github.com/shkomig/Engineered-prompt/internal/domain"
	"github.com/shkomig/Engineered-prompt/internal/testutil"
	"github.com/stretchr/testify/assert"
)

func TestShortID(t *testing.T) {
	assert.Equal(t, "deadbeef", ShortID("deadbeef-0000-0000-0000-000000000000"))
	assert.Equal(t, "short", ShortID("short"))
}

func TestTruncate(t *testing.T) {
	assert.Equal(t, "hello", Truncate("hello", 10))
	assert.Equal(t, "hell…", Truncate("hello world", 5))
	// Hebrew is multi-byte; truncation must count runes, not bytes.
	assert.Equal(t, "כתוב…", Truncate("כתוב מייל רשמי", 5))
}

func TestRenderTable_AlignsColumns(t *testing.T) {
	out := RenderTable(
		[]string{"ID", "Input"},
		[][]string{
			{"a1", "short"},
			{"b2", "a much longer input"},
		},
	)

	lines := strings.Split(strings.TrimRight(out, "\n"), "\n")
	assert.Len(t, lines, 4, "header, separator and two rows")
	assert.Contains(t, lines[0], "ID")
	assert.Contains(t, lines[1], "─")
	assert.Contains(t, out, "a much longer input")
}

func TestFormatHistoryTable_IncludesRecords(t *testing.T) {
	records := []*domain.PromptRecord{
		testutil.NewTestRecord("כתוב מייל"),
		testutil.NewTestRecord("image", testutil.WithCategory(domain.CategoryVisual)),
	}

	out := FormatHistoryTable(records)

	assert.Contains(t, out, ShortID(records[0].ID))
	assert.Contains(t, out, "כתוב מייל")
	assert.Contains(t, out, "VISUAL")
	assert.Contains(t, out, "unrated")
}

func TestFormatStatistics(t *testing.T) {
	out := FormatStatistics(&domain.Statistics{
		TotalPrompts:  7,
		AverageRating: 4.25,
		Categories:    []domain.Category{domain.CategoryTextual},
	})

	assert.Contains(t, out, "7")
	assert.Contains(t, out, "4.2/5.0")
	assert.Contains(t, out, "TEXTUAL")
}

func TestFormatSynthesis_ShowsPromptAndProvenance(t *testing.T) {
	s := &domain.Synthesis{
		Prompt:          "Write a text.",
		TemplateUsed:    "Textual Writing Template",
		Label:           domain.CategoryTextual,
		Confidence:      0.6,
		Style:           domain.NeutralStyle(),
		MatchedKeywords: []string{"כתוב"},
	}

	out := FormatSynthesis(s)

	assert.Contains(t, out, "Write a text.")
	assert.Contains(t, out, "Textual Writing Template")
	assert.Contains(t, out, "60%")
	assert.Contains(t, out, "כתוב")
}
