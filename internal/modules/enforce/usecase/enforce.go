package usecase

import (
	"context"

	"focusd/internal/modules/enforce/domain"
	"focusd/internal/modules/enforce/dto"
	enforcein "focusd/internal/modules/enforce/port/in"
	"focusd/internal/modules/enforce/service"
)

type Interactor struct {
	gate *service.Gate
}

func NewInteractor(gate *service.Gate) enforcein.Usecase {
	return &Interactor{gate: gate}
}

func (i *Interactor) SetSessionPolicy(ctx context.Context, input dto.SessionPolicyInput) {
	i.gate.SetSession(ctx, domain.State{InputBlocked: input.BlockInput, AudioMuted: input.MuteAudio})
}

func (i *Interactor) SetNightBlock(ctx context.Context, hold bool) {
	i.gate.SetNightHold(ctx, hold)
}

func (i *Interactor) Reset(ctx context.Context) {
	i.gate.Reset(ctx)
}

func (i *Interactor) State(_ context.Context) dto.StateOutput {
	state := i.gate.State()
	return dto.StateOutput{InputBlocked: state.InputBlocked, AudioMuted: state.AudioMuted}
}

func (i *Interactor) Doctor(ctx context.Context) (dto.DoctorOutput, error) {
	info, err := i.gate.Doctor(ctx)
	if err != nil {
		return dto.DoctorOutput{}, err
	}
	return dto.DoctorOutput{Name: info.Name, Version: info.Version, Platform: info.Platform}, nil
}
