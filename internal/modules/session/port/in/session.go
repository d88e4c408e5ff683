package in

import (
	"context"

	"focusd/internal/modules/session/dto"
)

type Usecase interface {
	// Start begins a session, restarting any in-flight one.
	Start(ctx context.Context, input dto.StartInput) (dto.StateOutput, error)
	// Stop is the emergency stop: always succeeds, always ends unrestricted.
	Stop(ctx context.Context) dto.StateOutput
	Status(ctx context.Context) dto.StateOutput
}
