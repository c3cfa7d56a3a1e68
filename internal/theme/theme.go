// Package theme holds the light/dark color tokens used across the UI.
package theme

import (
	"fmt"

	"github.com/charmbracelet/lipgloss"
)

// Mode selects how adaptive colors resolve
type Mode string

const (
	ModeAuto  Mode = "auto"
	ModeLight Mode = "light"
	ModeDark  Mode = "dark"
)

// ParseMode converts a user-supplied string into a Mode
func ParseMode(s string) (Mode, error) {
	switch Mode(s) {
	case ModeAuto, "":
		return ModeAuto, nil
	case ModeLight:
		return ModeLight, nil
	case ModeDark:
		return ModeDark, nil
	default:
		return "", fmt.Errorf("unknown theme mode %q", s)
	}
}

// Apply forces lipgloss to resolve adaptive colors for the given mode.
// ModeAuto leaves terminal background detection in place.
func Apply(mode Mode) {
	switch mode {
	case ModeLight:
		lipgloss.SetHasDarkBackground(false)
	case ModeDark:
		lipgloss.SetHasDarkBackground(true)
	}
}

// Color tokens. Each resolves against the terminal background.
var (
	Background = lipgloss.AdaptiveColor{Light: "#fafafa", Dark: "#1b1c22"}
	Text       = lipgloss.AdaptiveColor{Light: "#262626", Dark: "#EFFFFA"}

	Card       = lipgloss.AdaptiveColor{Light: "#FFFFFF", Dark: "#25262c"}
	SubCard    = lipgloss.AdaptiveColor{Light: "#FFFFFF", Dark: "#1b1c22"}
	// Terminals have no transparent border, so the dark border is a gray
	// that still separates the card from the background
	CardBorder = lipgloss.AdaptiveColor{Light: "#f5f5f5", Dark: "#383838"}

	// Progress colors are mode independent except for the track. The track
	// is 5% black over white in light mode and opaque black in dark mode,
	// flattened to hex since terminal colors carry no alpha.
	ProgressBackground = lipgloss.AdaptiveColor{Light: "#f2f2f2", Dark: "#000000"}
	ProgressFirst      = lipgloss.AdaptiveColor{Light: "#ffa940", Dark: "#ffa940"}
	ProgressSecond     = lipgloss.AdaptiveColor{Light: "#1890ff", Dark: "#1890ff"}

	IconButton      = lipgloss.AdaptiveColor{Light: "#000000", Dark: "#FFFFFF"}
	IconButtonHover = lipgloss.AdaptiveColor{Light: "#e8e8e8", Dark: "#e8e8e8"}
	IconButtonBack  = lipgloss.AdaptiveColor{Light: "#f5f5f5", Dark: "#0D0C1D"}

	SmallLink         = lipgloss.AdaptiveColor{Light: "#9254de", Dark: "#adc6ff"}
	ChartLink         = lipgloss.AdaptiveColor{Light: "#595959", Dark: "#8c8c8c"}
	ChartSelectedLink = lipgloss.AdaptiveColor{Light: "#43DDE2", Dark: "#43DDE2"}
	ChartAxis         = lipgloss.AdaptiveColor{Light: "#1b1c22", Dark: "#FFFFFF"}

	// Semantic colors for notifications
	Success = lipgloss.AdaptiveColor{Light: "#04B575", Dark: "#00FF87"}
	Danger  = lipgloss.AdaptiveColor{Light: "#D7263D", Dark: "#FF5F87"}
)
