package ui

import (
	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// spinnerStopMsg is sent to stop the spinner.
type spinnerStopMsg struct{}

// spinnerModel is the bubbletea Model for the animated spinner.
type spinnerModel struct {
	spinner spinner.Model
	title   string
	done    bool
}

func newSpinnerModel(theme *Theme, title string) spinnerModel {
	s := spinner.New(spinner.WithSpinner(spinner.Dot))
	if !theme.NoColor {
		s.Style = lipgloss.NewStyle().Foreground(lipgloss.Color(theme.Colors.Primary))
	}
	return spinnerModel{spinner: s, title: title}
}

func (m spinnerModel) Init() tea.Cmd {
	return m.spinner.Tick
}

func (m spinnerModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case spinnerStopMsg:
		m.done = true
		return m, tea.Quit
	case spinner.TickMsg:
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd
	case tea.KeyMsg:
		if msg.Type == tea.KeyCtrlC {
			m.done = true
			return m, tea.Quit
		}
	}
	return m, nil
}

func (m spinnerModel) View() string {
	if m.done {
		return ""
	}
	return m.spinner.View() + " " + m.title + "\n"
}

// runSpinner shows an animated spinner while fn runs, then tears the
// spinner program down and returns fn's error.
func runSpinner(theme *Theme, title string, fn func() error) error {
	p := tea.NewProgram(newSpinnerModel(theme, title))

	go func() {
		_, _ = p.Run()
	}()

	err := fn()

	p.Send(spinnerStopMsg{})
	p.Wait()

	return err
}
