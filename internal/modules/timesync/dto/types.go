package dto

import "time"

type SyncOutput struct {
	Server   string
	Offset   time.Duration
	Synced   bool
	LocalNow time.Time
}

type SampleOutput struct {
	Server   string
	Offset   time.Duration
	Synced   bool
	LocalNow time.Time
}
