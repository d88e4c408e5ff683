package out

import (
	"context"
	"runtime"

	hclog "github.com/hashicorp/go-hclog"

	"focusd/internal/modules/enforce/domain"
	enforceout "focusd/internal/modules/enforce/port/out"
)

// LogEnforcer stands in when no helper binary is configured. Transitions are
// only logged; nothing on the machine is actually blocked or muted.
type LogEnforcer struct {
	logger hclog.Logger
}

func NewLogEnforcer(logger hclog.Logger) enforceout.Enforcer {
	return &LogEnforcer{logger: logger}
}

func (e *LogEnforcer) BlockInput(_ context.Context) error {
	e.logger.Info("enforcement: block input")
	return nil
}

func (e *LogEnforcer) UnblockInput(_ context.Context) error {
	e.logger.Info("enforcement: unblock input")
	return nil
}

func (e *LogEnforcer) MuteAudio(_ context.Context) error {
	e.logger.Info("enforcement: mute audio")
	return nil
}

func (e *LogEnforcer) UnmuteAudio(_ context.Context) error {
	e.logger.Info("enforcement: unmute audio")
	return nil
}

func (e *LogEnforcer) Describe(_ context.Context) (domain.Info, error) {
	return domain.Info{Name: "log", Version: "dev", Platform: runtime.GOOS}, nil
}
