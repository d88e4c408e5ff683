package domain

import (
	"fmt"
	"time"

	apperrors "focusd/internal/platform/errors"
)

type Phase int

const (
	PhaseWork Phase = iota
	PhaseBreak
)

func (p Phase) String() string {
	if p == PhaseBreak {
		return "break"
	}
	return "work"
}

func (p Phase) Next() Phase {
	if p == PhaseWork {
		return PhaseBreak
	}
	return PhaseWork
}

// Config is immutable once a session starts.
type Config struct {
	Work  time.Duration
	Break time.Duration
}

func (c Config) Validate() error {
	if c.Work <= 0 {
		return fmt.Errorf("work: %w", apperrors.ErrInvalidDuration)
	}
	if c.Break <= 0 {
		return fmt.Errorf("break: %w", apperrors.ErrInvalidDuration)
	}
	return nil
}

func (c Config) DurationFor(p Phase) time.Duration {
	if p == PhaseBreak {
		return c.Break
	}
	return c.Work
}

// State is what the presentation layer renders. Remaining is meaningless
// while Running is false, except that a stopped machine keeps the configured
// work duration on display.
type State struct {
	Phase     Phase
	Remaining time.Duration
	Running   bool
}
