package cli

import (
	"errors"
	"strings"

	"github.com/charmbracelet/huh"
	"github.com/charmbracelet/lipgloss"
	"github.com/shkomig/Engineered-prompt/internal/cli/formatter"
	"github.com/shkomig/Engineered-prompt/internal/domain"
	"github.com/shkomig/Engineered-prompt/internal/synthesis"
)

// runGenerateForm collects a synthesis request through a guided huh
// form, pre-filled with whatever flags already supplied.
func runGenerateForm(req *synthesis.Request) error {
	category := string(req.Override)

	form := huh.NewForm(
		huh.NewGroup(
			huh.NewText().
				Title("Request").
				Description("Describe in Hebrew what you want to create").
				Placeholder("כתוב מייל רשמי למנהל לבקש חופשה").
				Value(&req.Text).
				Validate(validateNotBlank),
			huh.NewSelect[string]().
				Title("Category").
				Description("Leave on automatic to use the classifier").
				Options(
					huh.NewOption("Automatic", ""),
					huh.NewOption("Visual", string(domain.CategoryVisual)),
					huh.NewOption("Textual", string(domain.CategoryTextual)),
					huh.NewOption("Technical", string(domain.CategoryTechnical)),
				).
				Value(&category),
			huh.NewText().
				Title("Context (optional)").
				Placeholder("Background information for the task").
				Value(&req.Context),
			huh.NewText().
				Title("Special instructions (optional)").
				Placeholder("Constraints or specific requirements").
				Value(&req.Instructions),
		),
	).WithTheme(promptHuhTheme()).WithShowHelp(false)

	if err := form.Run(); err != nil {
		return err
	}

	req.Override = domain.Category(category)
	return nil
}

func validateNotBlank(s string) error {
	if strings.TrimSpace(s) == "" {
		return errBlankInput
	}
	return nil
}

var errBlankInput = errors.New("request text is required")

// promptHuhTheme matches the formatter palette: orange accents on
// focused fields, dimmed blurred state.
func promptHuhTheme() *huh.Theme {
	t := huh.ThemeBase()

	t.Focused.Title = lipgloss.NewStyle().Foreground(formatter.ColorHeader).Bold(true)
	t.Focused.SelectSelector = lipgloss.NewStyle().Foreground(formatter.ColorHeader)
	t.Focused.SelectedOption = lipgloss.NewStyle().Foreground(formatter.ColorGreen)
	t.Focused.UnselectedOption = lipgloss.NewStyle().Foreground(formatter.ColorFg)
	t.Focused.FocusedButton = lipgloss.NewStyle().Foreground(formatter.ColorFg).Background(formatter.ColorHeader).Padding(0, 1)
	t.Focused.BlurredButton = lipgloss.NewStyle().Foreground(formatter.ColorDim).Padding(0, 1)
	t.Focused.TextInput.Cursor = lipgloss.NewStyle().Foreground(formatter.ColorHeader)
	t.Focused.TextInput.Prompt = lipgloss.NewStyle().Foreground(formatter.ColorHeader)
	t.Focused.TextInput.Text = lipgloss.NewStyle().Foreground(formatter.ColorFg)
	t.Focused.TextInput.Placeholder = lipgloss.NewStyle().Foreground(formatter.ColorDim)
	t.Focused.Description = lipgloss.NewStyle().Foreground(formatter.ColorDim)

	t.Blurred.Title = lipgloss.NewStyle().Foreground(formatter.ColorDim)
	t.Blurred.SelectSelector = lipgloss.NewStyle().Foreground(formatter.ColorDim)
	t.Blurred.SelectedOption = lipgloss.NewStyle().Foreground(formatter.ColorDim)
	t.Blurred.UnselectedOption = lipgloss.NewStyle().Foreground(formatter.ColorDim)
	t.Blurred.TextInput.Prompt = lipgloss.NewStyle().Foreground(formatter.ColorDim)
	t.Blurred.TextInput.Text = lipgloss.NewStyle().Foreground(formatter.ColorDim)

	return t
}
