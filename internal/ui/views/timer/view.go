package timer

import (
	"fmt"
	"strings"
	"time"

	"focusd/internal/ui/theme"
)

// Model renders the foreground control surface: countdown, phase label, and
// the last action's status line.
type Model struct {
	phase     string
	remaining time.Duration
	running   bool
	status    string
	width     int
}

func New(configuredWork time.Duration) Model {
	return Model{
		phase:     "work",
		remaining: configuredWork,
		status:    "Ready to focus",
	}
}

func (m *Model) SetSize(width int) {
	m.width = width
}

func (m *Model) SetState(phase string, remaining time.Duration, running bool) {
	m.phase = phase
	m.remaining = remaining
	m.running = running
}

func (m *Model) SetStatus(status string) {
	m.status = status
}

func (m Model) View() string {
	var sb strings.Builder
	sb.WriteString(theme.Title.Render("Focus Timer") + "\n\n")
	sb.WriteString(theme.Digits.Render(Clock(m.remaining)) + "\n\n")
	switch {
	case m.running && m.phase == "break":
		sb.WriteString(theme.Hot.Render("Break Time") + "\n")
	case m.running:
		sb.WriteString(theme.Title.Render("Work Session") + "\n")
	default:
		sb.WriteString(theme.Muted.Render("Idle") + "\n")
	}
	if m.status != "" {
		sb.WriteString(theme.Muted.Render(m.status) + "\n")
	}
	sb.WriteString("\n")
	sb.WriteString(theme.Muted.Render("s start  ") + theme.Danger.Render("x emergency stop") + theme.Muted.Render("  : palette  q quit"))

	width := m.width
	if width <= 0 {
		width = 48
	}
	return theme.Pane.Width(width).Render(sb.String())
}

// Clock formats a countdown as MM:SS, matching the break overlay display.
func Clock(d time.Duration) string {
	if d < 0 {
		d = 0
	}
	total := int(d / time.Second)
	return fmt.Sprintf("%02d:%02d", total/60, total%60)
}
