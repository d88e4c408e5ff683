package out

import "time"

// Presenter receives night-state pushes. NightTime fires at one-second
// granularity while the night notice is up, so the display can show a live
// clock.
type Presenter interface {
	NightStatusChanged(active bool, now time.Time)
	NightTime(now time.Time)
}
