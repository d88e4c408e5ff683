package service

import (
	"context"
	"sync"
	"time"

	hclog "github.com/hashicorp/go-hclog"

	enforcein "focusd/internal/modules/enforce/port/in"
	"focusd/internal/modules/nightwatch/domain"
	nightwatchout "focusd/internal/modules/nightwatch/port/out"
	timesyncin "focusd/internal/modules/timesync/port/in"
)

// Monitor polls accurate time against the night window and holds the
// enforcement gate's night block while the window is active. Transitions are
// edge-triggered: the hold is asserted once when night begins and released
// once when it ends, no matter how many polls land in between.
type Monitor struct {
	window     domain.Window
	timesrc    timesyncin.Usecase
	enforce    enforcein.Usecase
	presenter  nightwatchout.Presenter
	logger     hclog.Logger
	pollEvery  time.Duration
	clockEvery time.Duration

	mu       sync.Mutex
	blocking bool
}

func NewMonitor(window domain.Window, timesrc timesyncin.Usecase, enforce enforcein.Usecase, presenter nightwatchout.Presenter, logger hclog.Logger, pollEvery, clockEvery time.Duration) (*Monitor, error) {
	if err := window.Validate(); err != nil {
		return nil, err
	}
	return &Monitor{
		window:     window,
		timesrc:    timesrc,
		enforce:    enforce,
		presenter:  presenter,
		logger:     logger,
		pollEvery:  pollEvery,
		clockEvery: clockEvery,
	}, nil
}

func (m *Monitor) Window() domain.Window {
	return m.window
}

func (m *Monitor) Active() bool {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.blocking
}

// Run checks immediately, so a process started during the night window
// blocks before the first poll interval elapses, then polls until ctx is
// done.
func (m *Monitor) Run(ctx context.Context) {
	active := m.check(ctx)

	ticker := time.NewTicker(m.pollEvery)
	defer ticker.Stop()

	var clockTicker *time.Ticker
	var clockC <-chan time.Time
	setClock := func(on bool) {
		if on && clockTicker == nil {
			clockTicker = time.NewTicker(m.clockEvery)
			clockC = clockTicker.C
		}
		if !on && clockTicker != nil {
			clockTicker.Stop()
			clockTicker = nil
			clockC = nil
		}
	}
	defer setClock(false)
	setClock(active)

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			setClock(m.check(ctx))
		case <-clockC:
			m.presenter.NightTime(m.timesrc.Now())
		}
	}
}

// check evaluates the window once and fires block/unblock only on the edge.
func (m *Monitor) check(ctx context.Context) bool {
	now := m.timesrc.Now()
	night := m.window.Contains(now)

	m.mu.Lock()
	changed := night != m.blocking
	m.blocking = night
	m.mu.Unlock()

	if !changed {
		return night
	}
	if night {
		m.logger.Info("night window began", "hour", now.Hour())
	} else {
		m.logger.Info("night window ended", "hour", now.Hour())
	}
	m.enforce.SetNightBlock(ctx, night)
	m.presenter.NightStatusChanged(night, now)
	return night
}
