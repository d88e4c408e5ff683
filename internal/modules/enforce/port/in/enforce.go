package in

import (
	"context"

	"focusd/internal/modules/enforce/dto"
)

type Usecase interface {
	// SetSessionPolicy records what the session scheduler wants. It is
	// superseded by an active night block for input.
	SetSessionPolicy(ctx context.Context, input dto.SessionPolicyInput)
	// SetNightBlock asserts or releases the night input hold. While held,
	// input stays blocked regardless of session policy.
	SetNightBlock(ctx context.Context, hold bool)
	// Reset clears both policies and forces the unrestricted state. It is the
	// emergency-stop backstop and must succeed from any state.
	Reset(ctx context.Context)
	State(ctx context.Context) dto.StateOutput
	Doctor(ctx context.Context) (dto.DoctorOutput, error)
}
