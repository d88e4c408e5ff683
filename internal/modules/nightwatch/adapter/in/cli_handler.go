package in

import (
	"context"

	"focusd/internal/modules/nightwatch/dto"
	nightwatchin "focusd/internal/modules/nightwatch/port/in"
)

type CLIHandler struct {
	usecase nightwatchin.Usecase
}

func NewCLIHandler(usecase nightwatchin.Usecase) CLIHandler {
	return CLIHandler{usecase: usecase}
}

func (h CLIHandler) Check(ctx context.Context) dto.StatusOutput {
	return h.usecase.Check(ctx)
}
