package out

import (
	"context"

	"focusd/internal/modules/enforce/domain"
)

// Enforcer is the privileged platform capability set. Every operation must be
// idempotent on the platform side; errors are reported so the caller can log
// them, but enforcement is best effort and callers never propagate them into
// session logic.
type Enforcer interface {
	BlockInput(ctx context.Context) error
	UnblockInput(ctx context.Context) error
	MuteAudio(ctx context.Context) error
	UnmuteAudio(ctx context.Context) error
	Describe(ctx context.Context) (domain.Info, error)
}
