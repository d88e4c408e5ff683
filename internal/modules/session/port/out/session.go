package out

import "focusd/internal/modules/session/domain"

// Presenter receives one-directional pushes from the scheduler. Implementors
// own rendering and must not block the caller.
type Presenter interface {
	SessionChanged(state domain.State)
	BreakMessage(text string)
}

// ActivityPicker supplies the rotating break-activity text. Content only, no
// correctness surface.
type ActivityPicker interface {
	Pick() string
}
