package in

import (
	"context"

	"focusd/internal/modules/enforce/dto"
	enforcein "focusd/internal/modules/enforce/port/in"
)

type CLIHandler struct {
	usecase enforcein.Usecase
}

func NewCLIHandler(usecase enforcein.Usecase) CLIHandler {
	return CLIHandler{usecase: usecase}
}

func (h CLIHandler) Doctor(ctx context.Context) (dto.DoctorOutput, error) {
	return h.usecase.Doctor(ctx)
}

func (h CLIHandler) State(ctx context.Context) dto.StateOutput {
	return h.usecase.State(ctx)
}
