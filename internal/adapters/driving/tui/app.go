// Package tui provides a small interactive terminal UI: type a line of
// transliteration, see the cuneiform rendering underneath.
package tui

import (
	"context"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/tpgillam/cuneifyplus/internal/core/domain"
	"github.com/tpgillam/cuneifyplus/internal/core/ports/driving"
)

var (
	titleStyle   = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("12"))
	glyphStyle   = lipgloss.NewStyle().Padding(1, 2)
	warnStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("11"))
	errStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color("9"))
	helpStyle    = lipgloss.NewStyle().Faint(true)
	historyStyle = lipgloss.NewStyle().Faint(true).PaddingLeft(2)
)

// renderedMsg carries a completed conversion back into the update loop.
type renderedMsg struct {
	input  string
	result *domain.RenderResult
	err    error
}

// App is the bubbletea model for the interactive converter.
type App struct {
	input    textinput.Model
	renderer driving.CuneifyService
	ctx      context.Context
	opts     domain.RenderOptions

	current string
	warns   []string
	err     error
	history []string
	width   int
}

// NewApp creates the interactive converter UI.
func NewApp(renderer driving.CuneifyService) *App {
	ti := textinput.New()
	ti.Placeholder = "lugal-a-ni"
	ti.Prompt = "> "
	ti.Focus()

	return &App{
		input:    ti,
		renderer: renderer,
		ctx:      context.Background(),
		opts:     domain.DefaultRenderOptions(),
		width:    80,
	}
}

// WithContext sets the context used for conversions.
func (a *App) WithContext(ctx context.Context) *App {
	a.ctx = ctx
	return a
}

// Init initialises the model.
func (a *App) Init() tea.Cmd {
	return textinput.Blink
}

// Update handles messages.
func (a *App) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		a.width = msg.Width
		a.input.Width = msg.Width - 4
		return a, nil

	case tea.KeyMsg:
		switch msg.Type {
		case tea.KeyCtrlC, tea.KeyEsc:
			return a, tea.Quit
		case tea.KeyEnter:
			line := strings.TrimSpace(a.input.Value())
			if line == "" {
				return a, nil
			}
			return a, a.render(line)
		}

	case renderedMsg:
		if msg.err != nil {
			a.err = msg.err
			return a, nil
		}
		a.err = nil
		if a.current != "" {
			a.history = append(a.history, a.current)
		}
		a.current = msg.result.Output
		a.warns = msg.result.Unrecognised
		a.input.SetValue("")
		return a, nil
	}

	var cmd tea.Cmd
	a.input, cmd = a.input.Update(msg)
	return a, cmd
}

// render converts one line off the update loop.
func (a *App) render(line string) tea.Cmd {
	return func() tea.Msg {
		res, err := a.renderer.RenderLine(a.ctx, line, a.opts)
		return renderedMsg{input: line, result: res, err: err}
	}
}

// View draws the UI.
func (a *App) View() string {
	var b strings.Builder

	b.WriteString(titleStyle.Render("cuneify"))
	b.WriteString("\n\n")
	b.WriteString(a.input.View())
	b.WriteString("\n")

	switch {
	case a.err != nil:
		b.WriteString(errStyle.Render("error: " + a.err.Error()))
		b.WriteString("\n")
	case a.current != "":
		b.WriteString(glyphStyle.Render(a.current))
		b.WriteString("\n")
		if len(a.warns) > 0 {
			b.WriteString(warnStyle.Render("unrecognised: " + strings.Join(a.warns, ", ")))
			b.WriteString("\n")
		}
	}

	// A few previous conversions for context.
	if n := len(a.history); n > 0 {
		start := n - 3
		if start < 0 {
			start = 0
		}
		b.WriteString("\n")
		for _, h := range a.history[start:] {
			b.WriteString(historyStyle.Render(h))
			b.WriteString("\n")
		}
	}

	b.WriteString("\n")
	b.WriteString(helpStyle.Render("enter convert · esc quit"))
	b.WriteString("\n")
	return b.String()
}
