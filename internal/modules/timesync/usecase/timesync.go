package usecase

import (
	"context"
	"time"

	"focusd/internal/modules/timesync/dto"
	timesyncin "focusd/internal/modules/timesync/port/in"
	"focusd/internal/modules/timesync/service"
)

type Interactor struct {
	svc *service.TimeService
}

func NewInteractor(svc *service.TimeService) timesyncin.Usecase {
	return &Interactor{svc: svc}
}

func (i *Interactor) Sync(ctx context.Context) dto.SyncOutput {
	sample := i.svc.Sync(ctx)
	return dto.SyncOutput{
		Server:   sample.Server,
		Offset:   sample.Offset,
		Synced:   sample.Synced(),
		LocalNow: sample.LocalNow,
	}
}

func (i *Interactor) Now() time.Time {
	return i.svc.Now()
}

func (i *Interactor) Sample() dto.SampleOutput {
	sample := i.svc.Sample()
	return dto.SampleOutput{
		Server:   sample.Server,
		Offset:   sample.Offset,
		Synced:   sample.Synced(),
		LocalNow: sample.LocalNow,
	}
}
