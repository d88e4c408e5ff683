package service

import (
	"context"
	"sync"
	"time"

	hclog "github.com/hashicorp/go-hclog"

	enforcedto "focusd/internal/modules/enforce/dto"
	enforcein "focusd/internal/modules/enforce/port/in"
	"focusd/internal/modules/session/domain"
	sessionout "focusd/internal/modules/session/port/out"
)

// Scheduler drives the work/break cycle on its own goroutine. Each tick it
// advances the machine; phase transitions push a new enforcement policy
// through the gate and a new state to the presenter. During breaks a second
// ticker re-rolls the activity message independently of the countdown.
type Scheduler struct {
	enforce   enforcein.Usecase
	presenter sessionout.Presenter
	picker    sessionout.ActivityPicker
	logger    hclog.Logger
	tickEvery time.Duration
	msgEvery  time.Duration

	mu      sync.Mutex
	machine domain.Machine
	stop    chan struct{}
}

func NewScheduler(enforce enforcein.Usecase, presenter sessionout.Presenter, picker sessionout.ActivityPicker, logger hclog.Logger, tickEvery, msgEvery time.Duration) *Scheduler {
	return &Scheduler{
		enforce:   enforce,
		presenter: presenter,
		picker:    picker,
		logger:    logger,
		tickEvery: tickEvery,
		msgEvery:  msgEvery,
	}
}

// Start begins a session in the work phase, superseding any in-flight one.
func (s *Scheduler) Start(ctx context.Context, cfg domain.Config) (domain.State, error) {
	s.mu.Lock()
	state, err := s.machine.Start(cfg)
	if err != nil {
		s.mu.Unlock()
		return state, err
	}
	if s.stop != nil {
		close(s.stop)
	}
	s.stop = make(chan struct{})
	stop := s.stop
	s.mu.Unlock()

	s.logger.Info("session started", "work", cfg.Work, "break", cfg.Break)
	s.enforce.SetSessionPolicy(ctx, enforcedto.SessionPolicyInput{})
	s.presenter.SessionChanged(state)
	go s.run(stop)
	return state, nil
}

// Stop is the emergency stop. It signals the loop, idles the machine, and
// forces the enforcement gate back to unrestricted. If the night window is
// active the monitor re-asserts its hold on the next poll.
func (s *Scheduler) Stop(ctx context.Context) domain.State {
	s.mu.Lock()
	if s.stop != nil {
		close(s.stop)
		s.stop = nil
	}
	state := s.machine.Stop()
	s.mu.Unlock()

	s.logger.Info("session stopped")
	s.enforce.Reset(ctx)
	s.presenter.SessionChanged(state)
	return state
}

func (s *Scheduler) State() domain.State {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.machine.State()
}

func (s *Scheduler) run(stop chan struct{}) {
	ctx := context.Background()
	ticker := time.NewTicker(s.tickEvery)
	defer ticker.Stop()

	var msgTicker *time.Ticker
	var msgC <-chan time.Time
	stopMessages := func() {
		if msgTicker != nil {
			msgTicker.Stop()
			msgTicker = nil
			msgC = nil
		}
	}
	defer stopMessages()

	for {
		select {
		case <-stop:
			return
		case <-ticker.C:
			// A stop observed at the same instant as a tick wins: no
			// further phase transition may fire after it.
			select {
			case <-stop:
				return
			default:
			}
			state, transition := s.tick()
			switch transition {
			case domain.TransitionToBreak:
				s.enforce.SetSessionPolicy(ctx, enforcedto.SessionPolicyInput{BlockInput: true, MuteAudio: true})
				s.presenter.BreakMessage(s.picker.Pick())
				stopMessages()
				msgTicker = time.NewTicker(s.msgEvery)
				msgC = msgTicker.C
			case domain.TransitionToWork:
				s.enforce.SetSessionPolicy(ctx, enforcedto.SessionPolicyInput{})
				stopMessages()
			}
			s.presenter.SessionChanged(state)
		case <-msgC:
			s.presenter.BreakMessage(s.picker.Pick())
		}
	}
}

func (s *Scheduler) tick() (domain.State, domain.Transition) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.machine.Tick()
}
