package app

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	enforcedto "focusd/internal/modules/enforce/dto"
	nightdto "focusd/internal/modules/nightwatch/dto"
	sessiondto "focusd/internal/modules/session/dto"
	timesyncdto "focusd/internal/modules/timesync/dto"
	"focusd/internal/ui/components"
	"focusd/internal/ui/presenter"
	"focusd/internal/ui/theme"
	overlayview "focusd/internal/ui/views/overlay"
	timerview "focusd/internal/ui/views/timer"
)

// ─── ports ───────────────────────────────────────────────────────────────────
// Each port is the minimal interface this orchestration layer requires.

type sessionPort interface {
	Start(ctx context.Context, work, brk time.Duration) (sessiondto.StateOutput, error)
	Stop(ctx context.Context) sessiondto.StateOutput
	Status(ctx context.Context) sessiondto.StateOutput
}

type nightPort interface {
	Check(ctx context.Context) nightdto.StatusOutput
}

type syncPort interface {
	Sync(ctx context.Context) timesyncdto.SyncOutput
}

type enforcePort interface {
	Doctor(ctx context.Context) (enforcedto.DoctorOutput, error)
}

// ─── async messages ──────────────────────────────────────────────────────────

type sessionActionMsg struct {
	state sessiondto.StateOutput
	err   error
}

type syncDoneMsg struct {
	out timesyncdto.SyncOutput
}

type nightCheckedMsg struct {
	out nightdto.StatusOutput
}

type doctorDoneMsg struct {
	out enforcedto.DoctorOutput
	err error
}

// ─── key bindings ────────────────────────────────────────────────────────────

type keyMap struct {
	Start   key.Binding
	Stop    key.Binding
	Palette key.Binding
	Help    key.Binding
	Quit    key.Binding
}

func defaultKeys() keyMap {
	return keyMap{
		Start:   key.NewBinding(key.WithKeys("s"), key.WithHelp("s", "start session")),
		Stop:    key.NewBinding(key.WithKeys("x"), key.WithHelp("x", "emergency stop")),
		Palette: key.NewBinding(key.WithKeys(":"), key.WithHelp(":", "palette")),
		Help:    key.NewBinding(key.WithKeys("?"), key.WithHelp("?", "help")),
		Quit:    key.NewBinding(key.WithKeys("ctrl+c", "q"), key.WithHelp("q", "quit")),
	}
}

func (k keyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Start, k.Stop, k.Palette, k.Quit}
}

func (k keyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Start, k.Stop},
		{k.Help, k.Palette, k.Quit},
	}
}

// ─── model ───────────────────────────────────────────────────────────────────

// Model is the root Bubble Tea model. It renders one of three surfaces: the
// timer pane, the fullscreen break overlay, or the fullscreen night notice
// (which wins over everything else). State arrives as pushes through the
// presenter bridge; actions go out through port interfaces.
type Model struct {
	session  sessionPort
	night    nightPort
	timesync syncPort
	enforce  enforcePort

	cfgWork  time.Duration
	cfgBreak time.Duration

	timerView timerview.Model
	keys      keyMap
	help      help.Model
	showHelp  bool
	palette   components.Palette

	phase       string
	remaining   time.Duration
	running     bool
	breakText   string
	nightActive bool
	nightLabel  string
	nightNow    time.Time

	width  int
	height int
}

func NewModel(session sessionPort, night nightPort, timesync syncPort, enforce enforcePort, work, brk time.Duration) Model {
	return Model{
		session:   session,
		night:     night,
		timesync:  timesync,
		enforce:   enforce,
		cfgWork:   work,
		cfgBreak:  brk,
		timerView: timerview.New(work),
		keys:      defaultKeys(),
		help:      help.New(),
		palette:   components.NewPalette(),
		phase:     "work",
		remaining: work,
	}
}

func (m Model) Init() tea.Cmd {
	return m.checkNightCmd()
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.timerView.SetSize(min(msg.Width-4, 60))
		m.palette.SetWidth(min(msg.Width-8, 60))
		return m, nil

	case presenter.SessionStateMsg:
		m.phase = msg.Phase
		m.remaining = msg.Remaining
		m.running = msg.Running
		m.timerView.SetState(msg.Phase, msg.Remaining, msg.Running)
		return m, nil

	case presenter.BreakMessageMsg:
		m.breakText = msg.Text
		return m, nil

	case presenter.NightStatusMsg:
		m.nightActive = msg.Active
		m.nightNow = msg.Now
		return m, nil

	case presenter.NightTimeMsg:
		m.nightNow = msg.Now
		return m, nil

	case sessionActionMsg:
		if msg.err != nil {
			m.timerView.SetStatus(msg.err.Error())
			return m, nil
		}
		if msg.state.Running {
			m.timerView.SetStatus("Session running")
		} else {
			m.timerView.SetStatus("Ready to focus")
		}
		return m, nil

	case syncDoneMsg:
		if msg.out.Synced {
			m.timerView.SetStatus(fmt.Sprintf("synced with %s (offset %s)", msg.out.Server, msg.out.Offset))
		} else {
			m.timerView.SetStatus("time sync failed, using local clock")
		}
		return m, nil

	case nightCheckedMsg:
		m.nightLabel = fmt.Sprintf("%s - %s", hourLabel(msg.out.StartHour), hourLabel(msg.out.EndHour))
		return m, nil

	case doctorDoneMsg:
		if msg.err != nil {
			m.timerView.SetStatus("enforcer unreachable: " + msg.err.Error())
		} else {
			m.timerView.SetStatus(fmt.Sprintf("enforcer %s %s (%s)", msg.out.Name, msg.out.Version, msg.out.Platform))
		}
		return m, nil

	case components.PaletteSubmitMsg:
		return m, m.executePalette(msg.Input)

	case components.PaletteCancelMsg:
		return m, nil

	case tea.KeyMsg:
		if m.palette.Visible() {
			var cmd tea.Cmd
			m.palette, cmd = m.palette.Update(msg)
			return m, cmd
		}
		switch {
		case key.Matches(msg, m.keys.Quit):
			return m, tea.Quit
		case key.Matches(msg, m.keys.Start):
			return m, m.startCmd(m.cfgWork, m.cfgBreak)
		case key.Matches(msg, m.keys.Stop):
			return m, m.stopCmd()
		case key.Matches(msg, m.keys.Palette):
			return m, m.palette.Open()
		case key.Matches(msg, m.keys.Help):
			m.showHelp = !m.showHelp
			return m, nil
		}
	}

	var cmd tea.Cmd
	m.palette, cmd = m.palette.Update(msg)
	return m, cmd
}

func (m Model) View() string {
	if m.nightActive {
		label := m.nightLabel
		if label == "" {
			label = "12 AM - 6 AM"
		}
		return overlayview.Night(m.width, m.height, label, m.nightNow)
	}
	if m.running && m.phase == "break" {
		return overlayview.Break(m.width, m.height, m.breakText, m.remaining)
	}

	var sb strings.Builder
	sb.WriteString(m.timerView.View())
	if m.palette.Visible() {
		sb.WriteString("\n" + m.palette.View())
	}
	if m.showHelp {
		sb.WriteString("\n" + m.help.FullHelpView(m.keys.FullHelp()))
	}
	content := theme.App.Render(sb.String())
	if m.width > 0 && m.height > 0 {
		return lipgloss.Place(m.width, m.height, lipgloss.Center, lipgloss.Center, content)
	}
	return content
}

// ─── commands ────────────────────────────────────────────────────────────────

func (m Model) startCmd(work, brk time.Duration) tea.Cmd {
	return func() tea.Msg {
		state, err := m.session.Start(context.Background(), work, brk)
		return sessionActionMsg{state: state, err: err}
	}
}

func (m Model) stopCmd() tea.Cmd {
	return func() tea.Msg {
		return sessionActionMsg{state: m.session.Stop(context.Background())}
	}
}

func (m Model) syncCmd() tea.Cmd {
	return func() tea.Msg {
		return syncDoneMsg{out: m.timesync.Sync(context.Background())}
	}
}

func (m Model) checkNightCmd() tea.Cmd {
	return func() tea.Msg {
		return nightCheckedMsg{out: m.night.Check(context.Background())}
	}
}

func (m Model) doctorCmd() tea.Cmd {
	return func() tea.Msg {
		out, err := m.enforce.Doctor(context.Background())
		return doctorDoneMsg{out: out, err: err}
	}
}

func (m Model) executePalette(input string) tea.Cmd {
	if input == "" {
		return nil
	}
	fields := strings.Fields(input)
	switch fields[0] {
	case "session:start":
		work, brk := m.cfgWork, m.cfgBreak
		if len(fields) > 1 {
			if d, err := time.ParseDuration(fields[1]); err == nil {
				work = d
			}
		}
		if len(fields) > 2 {
			if d, err := time.ParseDuration(fields[2]); err == nil {
				brk = d
			}
		}
		return m.startCmd(work, brk)
	case "session:stop":
		return m.stopCmd()
	case "sync:now":
		return m.syncCmd()
	case "night:status":
		return m.checkNightCmd()
	case "enforce:doctor":
		return m.doctorCmd()
	}
	return func() tea.Msg {
		return sessionActionMsg{err: fmt.Errorf("unknown command: %s", fields[0])}
	}
}

func hourLabel(hour int) string {
	switch {
	case hour == 0 || hour == 24:
		return "12 AM"
	case hour < 12:
		return fmt.Sprintf("%d AM", hour)
	case hour == 12:
		return "12 PM"
	default:
		return fmt.Sprintf("%d PM", hour-12)
	}
}
