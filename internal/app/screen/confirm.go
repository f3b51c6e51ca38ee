package screen

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/reflow/wordwrap"

	"github.com/unijfdev/lazysvn/internal/theme"
)

// ConfirmScreen displays a modal confirmation prompt with Yes/No buttons.
type ConfirmScreen struct {
	Title          string
	Message        string
	SelectedButton int // 0 = Yes, 1 = No
	Thm            *theme.Theme

	width  int
	height int

	// Callbacks
	OnConfirm func() tea.Cmd
	OnCancel  func() tea.Cmd
}

// NewConfirmScreen creates a confirm screen preloaded with a message.
func NewConfirmScreen(title, message string, thm *theme.Theme) *ConfirmScreen {
	return &ConfirmScreen{
		Title:   title,
		Message: message,
		Thm:     thm,
	}
}

// Type returns the screen type.
func (s *ConfirmScreen) Type() Type {
	return TypeConfirm
}

// Resize sets the outer dimensions of the dialog box.
func (s *ConfirmScreen) Resize(width, height int) {
	s.width = width
	s.height = height
}

// Update processes keyboard events for the confirmation dialog.
// Returns nil to signal that the screen should be closed.
func (s *ConfirmScreen) Update(msg tea.KeyMsg) (Screen, tea.Cmd) {
	switch msg.String() {
	case keyTab, "right", "l":
		s.SelectedButton = (s.SelectedButton + 1) % 2
	case keyShiftTab, "left", "h":
		s.SelectedButton = (s.SelectedButton - 1 + 2) % 2
	case "y", "Y":
		if s.OnConfirm != nil {
			return nil, s.OnConfirm()
		}
		return nil, nil
	case "n", "N":
		if s.OnCancel != nil {
			return nil, s.OnCancel()
		}
		return nil, nil
	case keyEnter:
		if s.SelectedButton == 0 {
			if s.OnConfirm != nil {
				return nil, s.OnConfirm()
			}
		} else if s.OnCancel != nil {
			return nil, s.OnCancel()
		}
		return nil, nil
	case keyEsc, keyQ, keyCtrlC:
		if s.OnCancel != nil {
			return nil, s.OnCancel()
		}
		return nil, nil
	}
	return s, nil
}

// View renders the confirmation box with focused button highlighting.
func (s *ConfirmScreen) View() string {
	width := s.width
	if width < 10 {
		width = 60
	}
	height := s.height
	if height < 5 {
		height = 10
	}
	innerWidth := width - 6 // border + padding

	boxStyle := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(s.Thm.Accent).
		Padding(1, 2).
		Width(width - 2).
		Height(height - 2)

	titleStyle := lipgloss.NewStyle().
		Width(innerWidth).
		Align(lipgloss.Center).
		Foreground(s.Thm.Accent).
		Bold(true)

	messageStyle := lipgloss.NewStyle().
		Width(innerWidth).
		Height(maxInt(1, height-8)).
		Align(lipgloss.Center, lipgloss.Center).
		Foreground(s.Thm.TextFg)

	focusedStyle := lipgloss.NewStyle().
		Width(innerWidth / 2).
		Align(lipgloss.Center).
		Foreground(s.Thm.AccentFg).
		Background(s.Thm.Accent).
		Bold(true)

	unfocusedStyle := lipgloss.NewStyle().
		Width(innerWidth / 2).
		Align(lipgloss.Center).
		Foreground(s.Thm.MutedFg).
		Background(s.Thm.BorderDim)

	var yesButton, noButton string
	if s.SelectedButton == 0 {
		yesButton = focusedStyle.Render("Yes (y)")
		noButton = unfocusedStyle.Render("No (n)")
	} else {
		yesButton = unfocusedStyle.Render("Yes (y)")
		noButton = focusedStyle.Render("No (n)")
	}

	content := fmt.Sprintf("%s\n%s\n%s",
		titleStyle.Render(s.Title),
		messageStyle.Render(wordwrap.String(s.Message, innerWidth)),
		lipgloss.JoinHorizontal(lipgloss.Top, yesButton, noButton),
	)

	return boxStyle.Render(content)
}

func maxInt(a, b int) int {
	if a > b {
		return a
	}
	return b
}
