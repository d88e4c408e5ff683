package out

import (
	"fmt"
	"io"
	"time"

	nightwatchout "focusd/internal/modules/nightwatch/port/out"
)

// ConsolePresenter renders night-state pushes as plain lines for headless
// mode.
type ConsolePresenter struct {
	w io.Writer
}

func NewConsolePresenter(w io.Writer) nightwatchout.Presenter {
	return &ConsolePresenter{w: w}
}

func (p *ConsolePresenter) NightStatusChanged(active bool, now time.Time) {
	if active {
		_, _ = fmt.Fprintf(p.w, "\nnight hours: device blocked, please get some rest (%s)\n", now.Format("03:04:05 PM"))
		return
	}
	_, _ = fmt.Fprintf(p.w, "\nnight hours over: device unblocked (%s)\n", now.Format("03:04:05 PM"))
}

func (p *ConsolePresenter) NightTime(now time.Time) {
	_, _ = fmt.Fprintf(p.w, "\rcurrent time: %s   ", now.Format("03:04:05 PM"))
}
