package theme

import "github.com/charmbracelet/lipgloss"

var (
	Base     = lipgloss.Color("#1e1e2e")
	Mantle   = lipgloss.Color("#181825")
	Crust    = lipgloss.Color("#11111b")
	Surface1 = lipgloss.Color("#45475a")
	Text     = lipgloss.Color("#cdd6f4")
	Subtext0 = lipgloss.Color("#a6adc8")
	Lavender = lipgloss.Color("#b4befe")
	Sapphire = lipgloss.Color("#74c7ec")
	Green    = lipgloss.Color("#a6e3a1")
	Peach    = lipgloss.Color("#fab387")
	Red      = lipgloss.Color("#f38ba8")

	App = lipgloss.NewStyle().
		Background(Base).
		Foreground(Text).
		Padding(1, 2)

	Pane = lipgloss.NewStyle().
		BorderStyle(lipgloss.RoundedBorder()).
		BorderForeground(Surface1).
		Background(Mantle).
		Foreground(Text).
		Padding(1)

	Title = lipgloss.NewStyle().Foreground(Sapphire).Bold(true)
	Muted = lipgloss.NewStyle().Foreground(Subtext0)
	Hot   = lipgloss.NewStyle().Foreground(Peach).Bold(true)

	// Digits renders the countdown clock.
	Digits = lipgloss.NewStyle().Foreground(Lavender).Bold(true)

	// Danger marks the emergency-stop affordance.
	Danger = lipgloss.NewStyle().Foreground(Red).Bold(true)

	// Overlay is the fullscreen break/night screen: near-black, centered.
	Overlay = lipgloss.NewStyle().
		Background(Crust).
		Foreground(Text).
		Align(lipgloss.Center, lipgloss.Center)

	OverlayTitle = lipgloss.NewStyle().Foreground(Text).Bold(true)
	OverlayMuted = lipgloss.NewStyle().Foreground(Subtext0)
)
