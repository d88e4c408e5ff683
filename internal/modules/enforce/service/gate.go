package service

import (
	"context"
	"sync"

	hclog "github.com/hashicorp/go-hclog"

	"focusd/internal/modules/enforce/domain"
	enforceout "focusd/internal/modules/enforce/port/out"
)

// Gate is the single critical section in front of the enforcement adapter.
// It merges two requesters — the session scheduler and the night monitor —
// into one effective state: input is blocked when either asks for it, audio
// follows the session alone. Adapter calls happen only on a delta, adapter
// failures are logged and swallowed, and the lock is never held across a
// sleep.
type Gate struct {
	enforcer enforceout.Enforcer
	logger   hclog.Logger

	mu        sync.Mutex
	session   domain.State
	nightHold bool
	applied   domain.State
}

func NewGate(enforcer enforceout.Enforcer, logger hclog.Logger) *Gate {
	return &Gate{enforcer: enforcer, logger: logger}
}

func (g *Gate) SetSession(ctx context.Context, desired domain.State) {
	g.mu.Lock()
	defer g.mu.Unlock()
	g.session = desired
	g.apply(ctx)
}

func (g *Gate) SetNightHold(ctx context.Context, hold bool) {
	g.mu.Lock()
	defer g.mu.Unlock()
	g.nightHold = hold
	g.apply(ctx)
}

// Reset clears both requesters and forces the unrestricted state through the
// adapter unconditionally, even if the tracked state already looks clear.
// If the night window is still active the monitor re-asserts its hold on the
// next poll.
func (g *Gate) Reset(ctx context.Context) {
	g.mu.Lock()
	defer g.mu.Unlock()
	g.session = domain.Unrestricted()
	g.nightHold = false
	if err := g.enforcer.UnblockInput(ctx); err != nil {
		g.logger.Warn("unblock input failed", "error", err)
	}
	if err := g.enforcer.UnmuteAudio(ctx); err != nil {
		g.logger.Warn("unmute audio failed", "error", err)
	}
	g.applied = domain.Unrestricted()
}

func (g *Gate) State() domain.State {
	g.mu.Lock()
	defer g.mu.Unlock()
	return g.applied
}

func (g *Gate) Doctor(ctx context.Context) (domain.Info, error) {
	return g.enforcer.Describe(ctx)
}

// apply reconciles the effective state against what was last applied.
// Callers hold g.mu.
func (g *Gate) apply(ctx context.Context) {
	effective := domain.State{
		InputBlocked: g.nightHold || g.session.InputBlocked,
		AudioMuted:   g.session.AudioMuted,
	}
	if effective.InputBlocked != g.applied.InputBlocked {
		var err error
		if effective.InputBlocked {
			err = g.enforcer.BlockInput(ctx)
		} else {
			err = g.enforcer.UnblockInput(ctx)
		}
		if err != nil {
			g.logger.Warn("input enforcement failed", "blocked", effective.InputBlocked, "error", err)
		} else {
			g.applied.InputBlocked = effective.InputBlocked
		}
	}
	if effective.AudioMuted != g.applied.AudioMuted {
		var err error
		if effective.AudioMuted {
			err = g.enforcer.MuteAudio(ctx)
		} else {
			err = g.enforcer.UnmuteAudio(ctx)
		}
		if err != nil {
			g.logger.Warn("audio enforcement failed", "muted", effective.AudioMuted, "error", err)
		} else {
			g.applied.AudioMuted = effective.AudioMuted
		}
	}
}
