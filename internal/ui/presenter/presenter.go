package presenter

import (
	"sync"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	nightwatchout "focusd/internal/modules/nightwatch/port/out"
	sessiondomain "focusd/internal/modules/session/domain"
	sessionout "focusd/internal/modules/session/port/out"
)

// Messages delivered into the Bubble Tea program. One push per channel per
// second at most; the program's mailbox absorbs them without blocking the
// core.

type SessionStateMsg struct {
	Phase     string
	Remaining time.Duration
	Running   bool
}

type BreakMessageMsg struct {
	Text string
}

type NightStatusMsg struct {
	Active bool
	Now    time.Time
}

type NightTimeMsg struct {
	Now time.Time
}

// Bridge adapts the core's presenter ports onto a running Bubble Tea
// program. Pushes arriving before Attach are dropped; presentation is
// fire-and-forget by contract.
type Bridge struct {
	mu      sync.RWMutex
	program *tea.Program
}

func NewBridge() *Bridge {
	return &Bridge{}
}

func (b *Bridge) Attach(program *tea.Program) {
	b.mu.Lock()
	b.program = program
	b.mu.Unlock()
}

func (b *Bridge) send(msg tea.Msg) {
	b.mu.RLock()
	program := b.program
	b.mu.RUnlock()
	if program != nil {
		program.Send(msg)
	}
}

func (b *Bridge) SessionChanged(state sessiondomain.State) {
	b.send(SessionStateMsg{Phase: state.Phase.String(), Remaining: state.Remaining, Running: state.Running})
}

func (b *Bridge) BreakMessage(text string) {
	b.send(BreakMessageMsg{Text: text})
}

func (b *Bridge) NightStatusChanged(active bool, now time.Time) {
	b.send(NightStatusMsg{Active: active, Now: now})
}

func (b *Bridge) NightTime(now time.Time) {
	b.send(NightTimeMsg{Now: now})
}

var (
	_ sessionout.Presenter    = (*Bridge)(nil)
	_ nightwatchout.Presenter = (*Bridge)(nil)
)
