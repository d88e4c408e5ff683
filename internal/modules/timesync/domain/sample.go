package domain

import "time"

// Sample is one reconciliation of the local clock against a reference server.
// Server is empty when no server answered; local time is then trusted as-is.
type Sample struct {
	LocalNow time.Time
	Offset   time.Duration
	Server   string
}

func (s Sample) Synced() bool {
	return s.Server != ""
}

// Corrected is the best available approximation of true time for the moment
// the sample was taken.
func (s Sample) Corrected() time.Time {
	return s.LocalNow.Add(s.Offset)
}
