package service_test

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	hclog "github.com/hashicorp/go-hclog"

	enforcedto "focusd/internal/modules/enforce/dto"
	"focusd/internal/modules/session/domain"
	"focusd/internal/modules/session/service"
	apperrors "focusd/internal/platform/errors"
)

const (
	testTick = 5 * time.Millisecond
	testMsg  = 8 * time.Millisecond
)

type fakeEnforce struct {
	mu       sync.Mutex
	policies []enforcedto.SessionPolicyInput
	resets   int
}

func (f *fakeEnforce) SetSessionPolicy(_ context.Context, input enforcedto.SessionPolicyInput) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.policies = append(f.policies, input)
}

func (f *fakeEnforce) SetNightBlock(context.Context, bool) {}

func (f *fakeEnforce) Reset(context.Context) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.resets = f.resets + 1
	f.policies = append(f.policies, enforcedto.SessionPolicyInput{})
}

func (f *fakeEnforce) State(context.Context) enforcedto.StateOutput {
	return enforcedto.StateOutput{}
}

func (f *fakeEnforce) Doctor(context.Context) (enforcedto.DoctorOutput, error) {
	return enforcedto.DoctorOutput{}, nil
}

func (f *fakeEnforce) resetCount() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.resets
}

func (f *fakeEnforce) lastPolicy() (enforcedto.SessionPolicyInput, bool) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if len(f.policies) == 0 {
		return enforcedto.SessionPolicyInput{}, false
	}
	return f.policies[len(f.policies)-1], true
}

type fakePresenter struct {
	mu       sync.Mutex
	states   []domain.State
	messages []string
}

func (f *fakePresenter) SessionChanged(state domain.State) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.states = append(f.states, state)
}

func (f *fakePresenter) BreakMessage(text string) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.messages = append(f.messages, text)
}

func (f *fakePresenter) stateCount() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return len(f.states)
}

func (f *fakePresenter) messageCount() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return len(f.messages)
}

func (f *fakePresenter) sawPhase(phase domain.Phase) bool {
	f.mu.Lock()
	defer f.mu.Unlock()
	for _, s := range f.states {
		if s.Running && s.Phase == phase {
			return true
		}
	}
	return false
}

func (f *fakePresenter) last() (domain.State, bool) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if len(f.states) == 0 {
		return domain.State{}, false
	}
	return f.states[len(f.states)-1], true
}

type fakePicker struct{}

func (fakePicker) Pick() string { return "stretch" }

func waitFor(t *testing.T, what string, cond func() bool) {
	t.Helper()
	deadline := time.Now().Add(3 * time.Second)
	for time.Now().Before(deadline) {
		if cond() {
			return
		}
		time.Sleep(2 * time.Millisecond)
	}
	t.Fatalf("timed out waiting for %s", what)
}

func newScheduler(enforce *fakeEnforce, presenter *fakePresenter) *service.Scheduler {
	return service.NewScheduler(enforce, presenter, fakePicker{}, hclog.NewNullLogger(), testTick, testMsg)
}

func TestSchedulerRunsFullWorkBreakWorkCycle(t *testing.T) {
	t.Parallel()
	enforce := &fakeEnforce{}
	presenter := &fakePresenter{}
	scheduler := newScheduler(enforce, presenter)
	defer scheduler.Stop(context.Background())

	state, err := scheduler.Start(context.Background(), domain.Config{Work: 2 * time.Second, Break: time.Second})
	if err != nil {
		t.Fatalf("start: %v", err)
	}
	if state.Phase != domain.PhaseWork || state.Remaining != 2*time.Second {
		t.Fatalf("unexpected start state %+v", state)
	}

	waitFor(t, "break phase", func() bool { return presenter.sawPhase(domain.PhaseBreak) })
	waitFor(t, "break enforcement", func() bool {
		policy, ok := enforce.lastPolicy()
		return ok && policy.BlockInput && policy.MuteAudio
	})
	waitFor(t, "break message", func() bool { return presenter.messageCount() > 0 })

	waitFor(t, "return to work", func() bool {
		last, ok := presenter.last()
		return ok && last.Running && last.Phase == domain.PhaseWork
	})
	waitFor(t, "work enforcement", func() bool {
		policy, ok := enforce.lastPolicy()
		return ok && !policy.BlockInput && !policy.MuteAudio
	})
}

func TestStopIsEffectiveWithinOneTick(t *testing.T) {
	t.Parallel()
	enforce := &fakeEnforce{}
	presenter := &fakePresenter{}
	scheduler := newScheduler(enforce, presenter)

	if _, err := scheduler.Start(context.Background(), domain.Config{Work: time.Hour, Break: time.Minute}); err != nil {
		t.Fatalf("start: %v", err)
	}
	waitFor(t, "first tick", func() bool { return presenter.stateCount() > 1 })

	state := scheduler.Stop(context.Background())
	if state.Running {
		t.Fatalf("stop must idle the session, got %+v", state)
	}
	if state.Remaining != time.Hour {
		t.Fatalf("stop must reset the display to the work duration, got %s", state.Remaining)
	}
	if enforce.resetCount() != 1 {
		t.Fatalf("stop must reset the enforcement gate exactly once, got %d", enforce.resetCount())
	}

	// The loop must be gone: no further presenter pushes after one tick of
	// settle time.
	settled := presenter.stateCount()
	time.Sleep(10 * testTick)
	if presenter.stateCount() != settled {
		t.Fatalf("loop still pushing after stop: %d -> %d", settled, presenter.stateCount())
	}
}

func TestBreakMessagesRotateIndependently(t *testing.T) {
	t.Parallel()
	enforce := &fakeEnforce{}
	presenter := &fakePresenter{}
	scheduler := newScheduler(enforce, presenter)
	defer scheduler.Stop(context.Background())

	if _, err := scheduler.Start(context.Background(), domain.Config{Work: time.Second, Break: time.Hour}); err != nil {
		t.Fatalf("start: %v", err)
	}
	waitFor(t, "rotating break messages", func() bool { return presenter.messageCount() >= 3 })
}

func TestStartSupersedesRunningSession(t *testing.T) {
	t.Parallel()
	enforce := &fakeEnforce{}
	presenter := &fakePresenter{}
	scheduler := newScheduler(enforce, presenter)
	defer scheduler.Stop(context.Background())

	if _, err := scheduler.Start(context.Background(), domain.Config{Work: time.Hour, Break: time.Minute}); err != nil {
		t.Fatalf("first start: %v", err)
	}
	state, err := scheduler.Start(context.Background(), domain.Config{Work: 30 * time.Minute, Break: time.Minute})
	if err != nil {
		t.Fatalf("restart: %v", err)
	}
	if state.Remaining != 30*time.Minute || state.Phase != domain.PhaseWork {
		t.Fatalf("restart must begin the new work phase, got %+v", state)
	}
}

func TestStartRejectsInvalidConfig(t *testing.T) {
	t.Parallel()
	enforce := &fakeEnforce{}
	presenter := &fakePresenter{}
	scheduler := newScheduler(enforce, presenter)

	if _, err := scheduler.Start(context.Background(), domain.Config{Work: 0, Break: time.Second}); !errors.Is(err, apperrors.ErrInvalidDuration) {
		t.Fatalf("expected ErrInvalidDuration, got %v", err)
	}
	if state := scheduler.State(); state.Running {
		t.Fatalf("rejected start must not run, got %+v", state)
	}
	if presenter.stateCount() != 0 {
		t.Fatalf("rejected start must not push state, got %d pushes", presenter.stateCount())
	}
}
