package in

import (
	"context"
	"time"

	"focusd/internal/modules/session/dto"
	sessionin "focusd/internal/modules/session/port/in"
)

type CLIHandler struct {
	usecase sessionin.Usecase
}

func NewCLIHandler(usecase sessionin.Usecase) CLIHandler {
	return CLIHandler{usecase: usecase}
}

func (h CLIHandler) Start(ctx context.Context, work, brk time.Duration) (dto.StateOutput, error) {
	return h.usecase.Start(ctx, dto.StartInput{Work: work, Break: brk})
}

func (h CLIHandler) Stop(ctx context.Context) dto.StateOutput {
	return h.usecase.Stop(ctx)
}

func (h CLIHandler) Status(ctx context.Context) dto.StateOutput {
	return h.usecase.Status(ctx)
}
