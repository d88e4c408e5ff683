package domain

import (
	"time"

	apperrors "focusd/internal/platform/errors"
)

// Window is a half-open [StartHour, EndHour) interval of local calendar
// hours during which the device is forced into a blocked state.
type Window struct {
	StartHour int
	EndHour   int
}

// Default is midnight to six in the morning.
func Default() Window {
	return Window{StartHour: 0, EndHour: 6}
}

func (w Window) Validate() error {
	if w.StartHour < 0 || w.StartHour >= w.EndHour || w.EndHour > 24 {
		return apperrors.ErrInvalidWindow
	}
	return nil
}

// Contains is pure and total: every instant has an answer. The end bound is
// exclusive, so a [0,6) window releases at exactly six o'clock.
func (w Window) Contains(t time.Time) bool {
	hour := t.Hour()
	return hour >= w.StartHour && hour < w.EndHour
}
