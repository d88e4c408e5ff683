package usecase

import (
	"context"

	"focusd/internal/modules/nightwatch/dto"
	nightwatchin "focusd/internal/modules/nightwatch/port/in"
	"focusd/internal/modules/nightwatch/service"
	timesyncin "focusd/internal/modules/timesync/port/in"
)

type Interactor struct {
	svc     *service.Monitor
	timesrc timesyncin.Usecase
}

func NewInteractor(svc *service.Monitor, timesrc timesyncin.Usecase) nightwatchin.Usecase {
	return &Interactor{svc: svc, timesrc: timesrc}
}

func (i *Interactor) Check(_ context.Context) dto.StatusOutput {
	now := i.timesrc.Now()
	window := i.svc.Window()
	return dto.StatusOutput{
		Night:     window.Contains(now),
		Now:       now,
		StartHour: window.StartHour,
		EndHour:   window.EndHour,
	}
}
