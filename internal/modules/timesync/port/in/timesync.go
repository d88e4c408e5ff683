package in

import (
	"context"
	"time"

	"focusd/internal/modules/timesync/dto"
)

type Usecase interface {
	// Sync attempts reconciliation against the configured servers. It fails
	// soft: an unreachable fleet degrades to the local clock and is reported
	// through Synced=false, never as an error.
	Sync(ctx context.Context) dto.SyncOutput
	// Now is local clock time plus the held offset. It never performs I/O.
	Now() time.Time
	Sample() dto.SampleOutput
}
