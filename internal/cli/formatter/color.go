package formatter

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/shkomig/Engineered-prompt/internal/domain"
)

// Gruvbox-inspired color palette.
var (
	ColorGreen  = lipgloss.Color("#8ec07c")
	ColorYellow = lipgloss.Color("#fabd2f")
	ColorRed    = lipgloss.Color("#fb4934")
	ColorBlue   = lipgloss.Color("#83a598")
	ColorPurple = lipgloss.Color("#d3869b")
	ColorDim    = lipgloss.Color("#928374")
	ColorFg     = lipgloss.Color("#ebdbb2")
	ColorHeader = lipgloss.Color("#fe8019")
)

// Predefined lipgloss styles.
var (
	StyleGreen  = lipgloss.NewStyle().Foreground(ColorGreen)
	StyleYellow = lipgloss.NewStyle().Foreground(ColorYellow)
	StyleRed    = lipgloss.NewStyle().Foreground(ColorRed)
	StyleBlue   = lipgloss.NewStyle().Foreground(ColorBlue)
	StylePurple = lipgloss.NewStyle().Foreground(ColorPurple)
	StyleDim    = lipgloss.NewStyle().Foreground(ColorDim)
	StyleFg     = lipgloss.NewStyle().Foreground(ColorFg)
	StyleHeader = lipgloss.NewStyle().Foreground(ColorHeader).Bold(true)
	StyleBold   = lipgloss.NewStyle().Foreground(ColorFg).Bold(true)
)

// CategoryColor returns the lipgloss style for a task category.
func CategoryColor(c domain.Category) lipgloss.Style {
	switch c {
	case domain.CategoryVisual:
		return StylePurple
	case domain.CategoryTechnical:
		return StyleBlue
	case domain.CategoryTextual:
		return StyleGreen
	default:
		return StyleDim
	}
}

// CategoryBadge returns a colored category label such as "● VISUAL".
func CategoryBadge(c domain.Category) string {
	return CategoryColor(c).Render("● " + strings.ToUpper(string(c)))
}

// ConfidenceColor maps a classification confidence to a traffic-light
// style: green above 0.7, yellow above 0.4, red below.
func ConfidenceColor(confidence float64) lipgloss.Style {
	switch {
	case confidence >= 0.7:
		return StyleGreen
	case confidence >= 0.4:
		return StyleYellow
	default:
		return StyleRed
	}
}

// Confidence renders a confidence value as a colored percentage.
func Confidence(confidence float64) string {
	return ConfidenceColor(confidence).Render(fmt.Sprintf("%.0f%%", confidence*100))
}

// Header renders a section header with the orange header style and an underline.
func Header(text string) string {
	upper := strings.ToUpper(text)
	line := strings.Repeat("─", len(upper))
	return fmt.Sprintf("%s\n%s", StyleHeader.Render(upper), StyleDim.Render(line))
}

// Dim renders text in the muted/dim color.
func Dim(text string) string {
	return StyleDim.Render(text)
}

// Bold renders text in bold with the foreground color.
func Bold(text string) string {
	return StyleBold.Render(text)
}
