package app

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"
)

// View renders the full frame: the four panes, with the active modal
// overlaid on top.
func (m *AppModel) View() string {
	if m.quitting {
		return ""
	}

	if m.windowWidth == 0 || m.windowHeight == 0 {
		return "Loading..."
	}

	dims := computeLayout(m.windowWidth, m.windowHeight)

	header := m.renderHeaderPane(dims.header)
	status := m.renderStatusPane(dims.status)
	bottom := lipgloss.JoinHorizontal(
		lipgloss.Top,
		m.renderSelectedPane(dims.selected),
		m.renderCommitPane(dims.commit),
	)

	baseView := lipgloss.JoinVertical(lipgloss.Left, header, status, bottom)
	baseView = truncateToHeight(baseView, m.windowHeight)

	if m.screens.IsActive() {
		modal := m.modalRect()
		return overlayPopup(baseView, m.screens.Current().View(), modal.y)
	}

	return baseView
}

// overlayPopup overlays a popup on top of the base view, preserving the
// portions of the base that fall outside the popup bounds so box borders
// stay intact.
func overlayPopup(base, popup string, marginTop int) string {
	if base == "" || popup == "" {
		return base
	}

	baseLines := strings.Split(base, "\n")
	popupLines := strings.Split(popup, "\n")

	if len(baseLines) == 0 {
		return popup
	}

	baseWidth := lipgloss.Width(baseLines[0])
	popupWidth := lipgloss.Width(popupLines[0])

	leftPad := maxInt((baseWidth-popupWidth)/2, 0)

	for i, line := range popupLines {
		row := marginTop + i
		if row >= len(baseLines) {
			break
		}

		leftPart := ansi.Truncate(baseLines[row], leftPad, "")
		if w := lipgloss.Width(leftPart); w < leftPad {
			leftPart += strings.Repeat(" ", leftPad-w)
		}
		rightPart := ansi.TruncateLeft(baseLines[row], leftPad+popupWidth, "")

		newLine := leftPart + line + rightPart
		if w := lipgloss.Width(newLine); w < baseWidth {
			newLine += strings.Repeat(" ", baseWidth-w)
		}
		baseLines[row] = newLine
	}

	return strings.Join(baseLines, "\n")
}

// truncateToHeight ensures output doesn't exceed maxLines.
func truncateToHeight(s string, maxLines int) string {
	lines := strings.Split(s, "\n")
	if len(lines) > maxLines {
		lines = lines[:maxLines]
	}
	return strings.Join(lines, "\n")
}
