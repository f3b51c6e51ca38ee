// Package theme provides color themes for the lazysvn TUI.
package theme

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/unijfdev/lazysvn/internal/models"
)

// Theme defines all colors used in the application UI.
type Theme struct {
	Background lipgloss.Color
	Accent     lipgloss.Color
	AccentFg   lipgloss.Color // Foreground color for text on Accent background
	AccentDim  lipgloss.Color
	Border     lipgloss.Color
	BorderDim  lipgloss.Color
	MutedFg    lipgloss.Color
	TextFg     lipgloss.Color
	SuccessFg  lipgloss.Color
	WarnFg     lipgloss.Color
	ErrorFg    lipgloss.Color
	Cyan       lipgloss.Color
	Pink       lipgloss.Color
	Blue       lipgloss.Color
	Yellow     lipgloss.Color
}

// Theme names.
const (
	DraculaName    = "dracula"
	NordName       = "nord"
	CleanLightName = "clean-light"
)

// Dracula returns the Dracula theme (dark background, vibrant colors).
func Dracula() *Theme {
	return &Theme{
		Background: lipgloss.Color("#282A36"),
		Accent:     lipgloss.Color("#BD93F9"), // Purple (primary accent)
		AccentFg:   lipgloss.Color("#282A36"), // Dark text on accent
		AccentDim:  lipgloss.Color("#44475A"), // Current line / selection
		Border:     lipgloss.Color("#6272A4"),
		BorderDim:  lipgloss.Color("#44475A"),
		MutedFg:    lipgloss.Color("#6272A4"),
		TextFg:     lipgloss.Color("#F8F8F2"),
		SuccessFg:  lipgloss.Color("#50FA7B"),
		WarnFg:     lipgloss.Color("#FFB86C"),
		ErrorFg:    lipgloss.Color("#FF5555"),
		Cyan:       lipgloss.Color("#8BE9FD"),
		Pink:       lipgloss.Color("#FF79C6"),
		Blue:       lipgloss.Color("#6272A4"),
		Yellow:     lipgloss.Color("#F1FA8C"),
	}
}

// Nord returns the Nord theme.
func Nord() *Theme {
	return &Theme{
		Background: lipgloss.Color("#2E3440"),
		Accent:     lipgloss.Color("#88C0D0"),
		AccentFg:   lipgloss.Color("#2E3440"),
		AccentDim:  lipgloss.Color("#3B4252"),
		Border:     lipgloss.Color("#4C566A"),
		BorderDim:  lipgloss.Color("#434C5E"),
		MutedFg:    lipgloss.Color("#81A1C1"),
		TextFg:     lipgloss.Color("#E5E9F0"),
		SuccessFg:  lipgloss.Color("#A3BE8C"),
		WarnFg:     lipgloss.Color("#EBCB8B"),
		ErrorFg:    lipgloss.Color("#BF616A"),
		Cyan:       lipgloss.Color("#88C0D0"),
		Pink:       lipgloss.Color("#B48EAD"),
		Blue:       lipgloss.Color("#5E81AC"),
		Yellow:     lipgloss.Color("#EBCB8B"),
	}
}

// CleanLight returns a minimal light theme for bright terminals.
func CleanLight() *Theme {
	return &Theme{
		Background: lipgloss.Color("#FFFFFF"),
		Accent:     lipgloss.Color("#0550AE"),
		AccentFg:   lipgloss.Color("#FFFFFF"),
		AccentDim:  lipgloss.Color("#DDF4FF"),
		Border:     lipgloss.Color("#D0D7DE"),
		BorderDim:  lipgloss.Color("#EAEEF2"),
		MutedFg:    lipgloss.Color("#656D76"),
		TextFg:     lipgloss.Color("#1F2328"),
		SuccessFg:  lipgloss.Color("#1A7F37"),
		WarnFg:     lipgloss.Color("#9A6700"),
		ErrorFg:    lipgloss.Color("#CF222E"),
		Cyan:       lipgloss.Color("#0969DA"),
		Pink:       lipgloss.Color("#BF3989"),
		Blue:       lipgloss.Color("#0550AE"),
		Yellow:     lipgloss.Color("#9A6700"),
	}
}

// GetTheme returns the theme for the given name, defaulting to Dracula.
func GetTheme(name string) *Theme {
	switch name {
	case NordName:
		return Nord()
	case CleanLightName:
		return CleanLight()
	default:
		return Dracula()
	}
}

// Default returns the default theme name.
func Default() string {
	return DraculaName
}

// AvailableThemes returns the list of known theme names.
func AvailableThemes() []string {
	return []string{DraculaName, NordName, CleanLightName}
}

// IsKnown reports whether name resolves to a theme.
func IsKnown(name string) bool {
	for _, known := range AvailableThemes() {
		if name == known {
			return true
		}
	}
	return false
}

// StatusColor maps a one-character svn status code to its display color.
// Unknown codes fall back to the primary text color.
func (t *Theme) StatusColor(state string) lipgloss.Color {
	switch state {
	case models.StateModified:
		return t.Blue
	case models.StateAdded:
		return t.SuccessFg
	case models.StateDeleted, models.StateConflicted, models.StateMissing:
		return t.ErrorFg
	case models.StateUntracked:
		return t.Yellow
	case models.StateIgnored:
		return t.MutedFg
	case models.StateReplaced:
		return t.Cyan
	case models.StateExternal, models.StateObstructed:
		return t.Pink
	default:
		return t.TextFg
	}
}
