package out

import (
	"math/rand"

	sessionout "focusd/internal/modules/session/port/out"
)

// RandomActivityPicker draws uniformly from a configured activity list.
type RandomActivityPicker struct {
	activities []string
}

func NewRandomActivityPicker(activities []string) sessionout.ActivityPicker {
	return &RandomActivityPicker{activities: activities}
}

func (p *RandomActivityPicker) Pick() string {
	if len(p.activities) == 0 {
		return ""
	}
	return p.activities[rand.Intn(len(p.activities))]
}
