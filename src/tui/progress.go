package tui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// Spinner frames for the loading screen
var spinnerFrames = []string{"⠋", "⠙", "⠹", "⠸", "⠼", "⠴", "⠦", "⠧", "⠇", "⠏"}

// SpinnerTickMsg advances the spinner.
type SpinnerTickMsg time.Time

// ProgressModel is the loading indicator shown while the log is extracted.
type ProgressModel struct {
	stage        string
	done         bool
	spinnerFrame int
}

// NewProgressModel creates a progress indicator for stage.
func NewProgressModel(stage string) ProgressModel {
	return ProgressModel{stage: stage}
}

// SpinnerTick returns a command that sends SpinnerTickMsg after a delay
func SpinnerTick() tea.Cmd {
	return tea.Tick(80*time.Millisecond, func(t time.Time) tea.Msg {
		return SpinnerTickMsg(t)
	})
}

// Done stops the spinner.
func (m ProgressModel) Done() ProgressModel {
	m.done = true
	return m
}

func (m ProgressModel) Update(msg tea.Msg) (ProgressModel, tea.Cmd) {
	if _, ok := msg.(SpinnerTickMsg); ok {
		m.spinnerFrame = (m.spinnerFrame + 1) % len(spinnerFrames)
		if !m.done {
			return m, SpinnerTick()
		}
	}
	return m, nil
}

func (m ProgressModel) View() string {
	spinner := lipgloss.NewStyle().
		Foreground(lipgloss.Color("#FFD700")).
		Render(spinnerFrames[m.spinnerFrame])
	return spinner + " " + m.stage + "..."
}
