package in

import (
	"context"

	"focusd/internal/modules/nightwatch/dto"
)

type Usecase interface {
	// Check evaluates the window against accurate now without side effects.
	Check(ctx context.Context) dto.StatusOutput
}
