package screen

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/reflow/wordwrap"

	"github.com/unijfdev/lazysvn/internal/theme"
)

// Severity classifies a message modal and selects its border color.
type Severity int

// Message severities.
const (
	SeverityInfo Severity = iota
	SeverityWarning
	SeverityError
)

// MessageScreen displays a modal message with an OK button. The border
// color reflects the severity.
type MessageScreen struct {
	Title    string
	Message  string
	Severity Severity
	Thm      *theme.Theme

	width  int
	height int

	// Callback
	OnClose func() tea.Cmd
}

// NewMessageScreen creates a message modal with the given severity.
func NewMessageScreen(title, message string, severity Severity, thm *theme.Theme) *MessageScreen {
	return &MessageScreen{
		Title:    title,
		Message:  message,
		Severity: severity,
		Thm:      thm,
	}
}

// Type returns the screen type.
func (s *MessageScreen) Type() Type {
	return TypeMessage
}

// Resize sets the outer dimensions of the dialog box.
func (s *MessageScreen) Resize(width, height int) {
	s.width = width
	s.height = height
}

// Update processes keyboard events for the message dialog.
// Returns nil to signal that the screen should be closed.
func (s *MessageScreen) Update(msg tea.KeyMsg) (Screen, tea.Cmd) {
	switch msg.String() {
	case keyEnter, keyEsc, keyQ, keyCtrlC, "o":
		if s.OnClose != nil {
			return nil, s.OnClose()
		}
		return nil, nil
	}
	return s, nil
}

// borderColor maps the severity to a theme color.
func (s *MessageScreen) borderColor() lipgloss.Color {
	switch s.Severity {
	case SeverityWarning:
		return s.Thm.WarnFg
	case SeverityError:
		return s.Thm.ErrorFg
	default:
		return s.Thm.Accent
	}
}

// View renders the message box with a single OK button.
func (s *MessageScreen) View() string {
	width := s.width
	if width < 10 {
		width = 60
	}
	height := s.height
	if height < 5 {
		height = 10
	}
	innerWidth := width - 6

	boxStyle := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(s.borderColor()).
		Padding(1, 2).
		Width(width - 2).
		Height(height - 2)

	titleStyle := lipgloss.NewStyle().
		Width(innerWidth).
		Align(lipgloss.Center).
		Foreground(s.borderColor()).
		Bold(true)

	messageStyle := lipgloss.NewStyle().
		Width(innerWidth).
		Height(maxInt(1, height-8)).
		Align(lipgloss.Center, lipgloss.Center).
		Foreground(s.Thm.TextFg)

	okStyle := lipgloss.NewStyle().
		Width(innerWidth).
		Align(lipgloss.Center).
		Foreground(s.Thm.AccentFg).
		Background(s.borderColor()).
		Bold(true)

	content := fmt.Sprintf("%s\n%s\n%s",
		titleStyle.Render(s.Title),
		messageStyle.Render(wordwrap.String(s.Message, innerWidth)),
		okStyle.Render("[OK]"),
	)

	return boxStyle.Render(content)
}
