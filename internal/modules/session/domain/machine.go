package domain

import "time"

type Transition int

const (
	TransitionNone Transition = iota
	TransitionToBreak
	TransitionToWork
)

// Machine is the pure work/break state machine. One Tick is one elapsed
// second of countdown. Phases alternate strictly: a transition always flips
// to the opposite phase and reloads that phase's duration.
type Machine struct {
	cfg   Config
	state State
}

// Start begins (or restarts) a session in the work phase. A zero or negative
// duration is a configuration error and leaves the machine untouched.
func (m *Machine) Start(cfg Config) (State, error) {
	if err := cfg.Validate(); err != nil {
		return m.state, err
	}
	m.cfg = cfg
	m.state = State{Phase: PhaseWork, Remaining: cfg.Work, Running: true}
	return m.state, nil
}

// Tick advances the countdown by one second. When the countdown reaches zero
// the phase flips and the remaining time reloads for the new phase. Ticking
// an idle machine is a no-op.
func (m *Machine) Tick() (State, Transition) {
	if !m.state.Running {
		return m.state, TransitionNone
	}
	m.state.Remaining -= time.Second
	if m.state.Remaining > 0 {
		return m.state, TransitionNone
	}
	next := m.state.Phase.Next()
	m.state.Phase = next
	m.state.Remaining = m.cfg.DurationFor(next)
	if next == PhaseBreak {
		return m.state, TransitionToBreak
	}
	return m.state, TransitionToWork
}

// Stop returns the machine to idle from any state. The displayed remaining
// time resets to the configured work duration.
func (m *Machine) Stop() State {
	m.state = State{Phase: PhaseWork, Remaining: m.cfg.Work, Running: false}
	return m.state
}

func (m *Machine) State() State {
	return m.state
}
