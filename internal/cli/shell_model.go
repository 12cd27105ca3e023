package cli

import (
	"context"
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/shkomig/Engineered-prompt/internal/cli/formatter"
	"github.com/shkomig/Engineered-prompt/internal/domain"
	"github.com/shkomig/Engineered-prompt/internal/synthesis"
)

// shellModel is the bubbletea Model for the interactive shell REPL.
type shellModel struct {
	input textinput.Model
	width int

	app *App

	// override set through the :category command, empty for automatic.
	override domain.Category

	// input history, navigated with Up/Down.
	history    []string
	historyIdx int

	quitting bool
}

// newShellModel creates a new bubbletea shell model.
func newShellModel(app *App) shellModel {
	ti := textinput.New()
	ti.Focus()
	ti.Prompt = ""
	ti.CharLimit = 500

	return shellModel{
		input: ti,
		app:   app,
	}
}

func (m shellModel) Init() tea.Cmd {
	return tea.Batch(
		textinput.Blink,
		tea.Println(shellWelcome()),
	)
}

func (m shellModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.input.Width = msg.Width - len(m.promptPrefix()) - 1
		return m, nil

	case tea.KeyMsg:
		switch msg.Type {
		case tea.KeyCtrlC:
			m.quitting = true
			return m, tea.Quit

		case tea.KeyUp:
			if m.historyIdx > 0 {
				m.historyIdx--
				m.input.SetValue(m.history[m.historyIdx])
				m.input.CursorEnd()
			}
			return m, nil

		case tea.KeyDown:
			if m.historyIdx < len(m.history)-1 {
				m.historyIdx++
				m.input.SetValue(m.history[m.historyIdx])
				m.input.CursorEnd()
			} else {
				m.historyIdx = len(m.history)
				m.input.SetValue("")
			}
			return m, nil

		case tea.KeyEnter:
			line := strings.TrimSpace(m.input.Value())
			m.input.SetValue("")
			if line == "" {
				return m, nil
			}

			m.history = append(m.history, line)
			m.historyIdx = len(m.history)

			echo := tea.Println(m.promptPrefix() + line)
			if strings.HasPrefix(line, ":") {
				model, cmd := m.handleCommand(line)
				return model, tea.Sequence(echo, cmd)
			}
			return m, tea.Sequence(echo, m.synthesizeCmd(line))
		}
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

func (m shellModel) View() string {
	if m.quitting {
		return ""
	}
	return m.promptPrefix() + m.input.View()
}

func (m shellModel) promptPrefix() string {
	if m.override != "" {
		return formatter.StyleHeader.Render(string(m.override) + "> ")
	}
	return formatter.StyleHeader.Render("> ")
}

// handleCommand dispatches a colon command.
func (m shellModel) handleCommand(line string) (tea.Model, tea.Cmd) {
	fields := strings.Fields(line)
	switch fields[0] {
	case ":quit", ":q", ":exit":
		m.quitting = true
		return m, tea.Quit

	case ":help", ":h":
		return m, tea.Println(shellHelp())

	case ":stats":
		return m, m.statsCmd()

	case ":history":
		return m, m.historyCmd()

	case ":category":
		if len(fields) < 2 || fields[1] == "auto" {
			m.override = ""
			return m, tea.Println(formatter.Dim("Category detection set to automatic."))
		}
		c := domain.Category(fields[1])
		if !domain.IsValidCategory(c) {
			return m, tea.Println(formatter.StyleRed.Render(fmt.Sprintf("Unknown category %q.", fields[1])))
		}
		m.override = c
		return m, tea.Println(formatter.Dim("Forcing category " + string(c) + "."))

	default:
		return m, tea.Println(formatter.StyleRed.Render(fmt.Sprintf("Unknown command %s (try :help).", fields[0])))
	}
}

// synthesizeCmd generates, saves and prints a prompt for the line.
func (m shellModel) synthesizeCmd(line string) tea.Cmd {
	app, override := m.app, m.override
	return func() tea.Msg {
		ctx := context.Background()

		result, err := app.Synth.Synthesize(ctx, synthesis.Request{Text: line, Override: override})
		if err != nil {
			return tea.Println(formatter.StyleRed.Render("Error: " + err.Error()))()
		}

		out := formatter.FormatSynthesis(result)

		record, err := synthesis.NewRecord(result)
		if err == nil {
			err = app.Records.Save(ctx, record)
		}
		if err != nil {
			out += formatter.StyleRed.Render("Not saved: "+err.Error()) + "\n"
		} else {
			out += formatter.Dim("Saved as "+formatter.ShortID(record.ID)) + "\n"
		}

		return tea.Println(out)()
	}
}

func (m shellModel) statsCmd() tea.Cmd {
	app := m.app
	return func() tea.Msg {
		stats, err := app.Records.Statistics(context.Background())
		if err != nil {
			return tea.Println(formatter.StyleRed.Render("Error: " + err.Error()))()
		}
		return tea.Println(formatter.FormatStatistics(stats))()
	}
}

func (m shellModel) historyCmd() tea.Cmd {
	app := m.app
	return func() tea.Msg {
		records, err := app.Records.History(context.Background(), 10, "")
		if err != nil {
			return tea.Println(formatter.StyleRed.Render("Error: " + err.Error()))()
		}
		if len(records) == 0 {
			return tea.Println(formatter.Dim("No prompts generated yet."))()
		}
		return tea.Println(formatter.FormatHistoryTable(records))()
	}
}

func shellWelcome() string {
	var b strings.Builder
	b.WriteString(formatter.Header("engprompt shell"))
	b.WriteString("\n")
	b.WriteString("Type a Hebrew request and press Enter to generate a prompt.\n")
	b.WriteString(formatter.Dim("Commands: :category :history :stats :help :quit"))
	return b.String()
}

func shellHelp() string {
	var b strings.Builder
	b.WriteString(formatter.Header("Commands"))
	b.WriteString("\n")
	b.WriteString("  :category NAME   force a category (visual|textual|technical|auto)\n")
	b.WriteString("  :history         show the last 10 generated prompts\n")
	b.WriteString("  :stats           show aggregate statistics\n")
	b.WriteString("  :help            show this help\n")
	b.WriteString("  :quit            leave the shell\n")
	return b.String()
}
