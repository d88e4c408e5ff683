package usecase

import (
	"context"

	"focusd/internal/modules/session/domain"
	"focusd/internal/modules/session/dto"
	sessionin "focusd/internal/modules/session/port/in"
	"focusd/internal/modules/session/service"
)

type Interactor struct {
	svc *service.Scheduler
}

func NewInteractor(svc *service.Scheduler) sessionin.Usecase {
	return &Interactor{svc: svc}
}

func (i *Interactor) Start(ctx context.Context, input dto.StartInput) (dto.StateOutput, error) {
	state, err := i.svc.Start(ctx, domain.Config{Work: input.Work, Break: input.Break})
	if err != nil {
		return dto.StateOutput{}, err
	}
	return toOutput(state), nil
}

func (i *Interactor) Stop(ctx context.Context) dto.StateOutput {
	return toOutput(i.svc.Stop(ctx))
}

func (i *Interactor) Status(_ context.Context) dto.StateOutput {
	return toOutput(i.svc.State())
}

func toOutput(state domain.State) dto.StateOutput {
	return dto.StateOutput{
		Phase:     state.Phase.String(),
		Remaining: state.Remaining,
		Running:   state.Running,
	}
}
