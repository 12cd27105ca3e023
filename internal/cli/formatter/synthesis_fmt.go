package formatter

import (
	"fmt"
	"sort"
	"strings"

	"github.com/shkomig/Engineered-prompt/internal/domain"
)

// FormatSynthesis renders a synthesis result: the classification
// provenance block followed by the finished prompt.
func FormatSynthesis(s *domain.Synthesis) string {
	var b strings.Builder

	b.WriteString(Header("Classification"))
	b.WriteString("\n")
	b.WriteString(fmt.Sprintf("  Category:    %s\n", CategoryBadge(s.Label)))
	b.WriteString(fmt.Sprintf("  Confidence:  %s\n", Confidence(s.Confidence)))
	b.WriteString(fmt.Sprintf("  Template:    %s\n", Bold(s.TemplateUsed)))
	b.WriteString(fmt.Sprintf("  Style:       %s\n", FormatStyle(s.Style)))

	if len(s.MatchedKeywords) > 0 {
		b.WriteString(fmt.Sprintf("  Keywords:    %s\n", Dim(strings.Join(s.MatchedKeywords, ", "))))
	}
	if s.OverrideRejected {
		b.WriteString("  " + StyleYellow.Render("Requested category has no template; used the default instead.") + "\n")
	}

	b.WriteString("\n")
	b.WriteString(Header("Prompt"))
	b.WriteString("\n")
	b.WriteString(s.Prompt)
	b.WriteString("\n")

	return b.String()
}

// FormatStyle renders style attributes as "formality/tone/length".
func FormatStyle(s domain.StyleAttributes) string {
	return fmt.Sprintf("%s/%s/%s", s.Formality, s.Tone, s.Length)
}

// FormatVariables renders the extracted variable map, unspecified slots
// dimmed, sorted by slot name for stable output.
func FormatVariables(vars domain.PromptVariables) string {
	names := make([]string, 0, len(vars))
	for name := range vars {
		names = append(names, name)
	}
	sort.Strings(names)

	var b strings.Builder
	for _, name := range names {
		value := vars[name]
		if value == domain.Unspecified {
			value = Dim(value)
		}
		b.WriteString(fmt.Sprintf("  %-14s %s\n", name+":", value))
	}
	return b.String()
}
