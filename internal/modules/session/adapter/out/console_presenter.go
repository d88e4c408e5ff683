package out

import (
	"fmt"
	"io"

	"focusd/internal/modules/session/domain"
	sessionout "focusd/internal/modules/session/port/out"
)

// ConsolePresenter renders session pushes as plain lines for headless mode.
type ConsolePresenter struct {
	w io.Writer
}

func NewConsolePresenter(w io.Writer) sessionout.Presenter {
	return &ConsolePresenter{w: w}
}

func (p *ConsolePresenter) SessionChanged(state domain.State) {
	if !state.Running {
		_, _ = fmt.Fprintf(p.w, "ready to focus (%s)\n", formatClock(state.Remaining))
		return
	}
	_, _ = fmt.Fprintf(p.w, "\r%s %s   ", state.Phase, formatClock(state.Remaining))
}

func (p *ConsolePresenter) BreakMessage(text string) {
	_, _ = fmt.Fprintf(p.w, "\n%s\n", text)
}
