package overlay

import (
	"fmt"
	"time"

	"focusd/internal/ui/theme"
	"focusd/internal/ui/views/timer"
)

// Break renders the fullscreen break screen: the current activity suggestion
// and the remaining break time.
func Break(width, height int, message string, remaining time.Duration) string {
	body := theme.OverlayTitle.Render(message) + "\n\n" +
		theme.OverlayMuted.Render(fmt.Sprintf("Break time remaining: %s", timer.Clock(remaining)))
	return render(width, height, body)
}

// Night renders the fullscreen night notice with a live clock.
func Night(width, height int, window string, now time.Time) string {
	body := theme.OverlayTitle.Render(fmt.Sprintf("It's late night hours (%s).\nPlease get some rest.", window)) + "\n\n" +
		theme.OverlayMuted.Render("Current time: "+now.Format("03:04:05 PM"))
	return render(width, height, body)
}

func render(width, height int, body string) string {
	if width <= 0 {
		width = 80
	}
	if height <= 0 {
		height = 24
	}
	return theme.Overlay.Width(width).Height(height).Render(body)
}
