package in

import (
	"context"
	"time"

	"focusd/internal/modules/timesync/dto"
	timesyncin "focusd/internal/modules/timesync/port/in"
)

type CLIHandler struct {
	usecase timesyncin.Usecase
}

func NewCLIHandler(usecase timesyncin.Usecase) CLIHandler {
	return CLIHandler{usecase: usecase}
}

func (h CLIHandler) Sync(ctx context.Context) dto.SyncOutput {
	return h.usecase.Sync(ctx)
}

func (h CLIHandler) Now() time.Time {
	return h.usecase.Now()
}
