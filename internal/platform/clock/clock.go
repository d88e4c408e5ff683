package clock

import "time"

// Clock abstracts wall-clock time to keep services deterministic in tests.
type Clock interface {
	Now() time.Time
}

// SystemClock returns local time; the night window is defined in the
// machine's local timezone.
type SystemClock struct{}

func (SystemClock) Now() time.Time {
	return time.Now()
}
