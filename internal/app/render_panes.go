package app

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"
)

// paneBorder builds the rounded border style for a pane. Error state wins
// over focus, matching the status/commit pane coloring rules.
func (m *AppModel) paneBorder(r rect, focused, isError bool) lipgloss.Style {
	borderColor := m.thm.Border
	switch {
	case isError:
		borderColor = m.thm.ErrorFg
	case focused:
		borderColor = m.thm.Blue
	}

	return lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(borderColor).
		Width(maxInt(0, r.width-2)).
		Height(maxInt(0, r.height-2))
}

// renderHeaderPane shows the working copy path, repository URL and
// revision in the fixed top band.
func (m *AppModel) renderHeaderPane(r rect) string {
	if r.height <= 0 {
		return ""
	}

	line := lipgloss.NewStyle().Foreground(m.thm.Blue).Render(m.info.Path)
	if m.info.URL != "" {
		line += lipgloss.NewStyle().Foreground(m.thm.MutedFg).
			Render(fmt.Sprintf("  %s @ r%s", m.info.URL, m.info.Revision))
	}

	box := m.paneBorder(r, false, false)
	return renderTitledBox(box, " Project info ", line, r.width)
}

// renderStatusPane shows the scrollable status list.
func (m *AppModel) renderStatusPane(r rect) string {
	if r.height <= 0 {
		return ""
	}

	m.statusViewport.Width = maxInt(1, r.width-2)
	m.statusViewport.Height = maxInt(1, r.height-2)

	box := m.paneBorder(r, m.focusedPane == paneStatus, false)
	return renderTitledBox(box, " Status ", m.statusViewport.View(), r.width)
}

// renderStatusRows renders one line per status entry. Selected entries are
// painted with the selection background; the cursor row gets the dim
// highlight.
func (m *AppModel) renderStatusRows() string {
	status := m.client.Status()
	entries := status.Entries()
	if len(entries) == 0 {
		return lipgloss.NewStyle().Foreground(m.thm.MutedFg).Render("Working copy is clean.")
	}

	selectedStyle := lipgloss.NewStyle().Background(m.thm.Blue).Foreground(m.thm.AccentFg)
	cursorStyle := lipgloss.NewStyle().Background(m.thm.AccentDim).Foreground(m.thm.TextFg)

	var b strings.Builder
	for i, entry := range entries {
		icon := ""
		if m.config.ShowIcons {
			icon = iconWithSpace(deviconForPath(entry.Path))
		}
		text := fmt.Sprintf("%s %s%s", entry.State, icon, entry.Path)

		var line string
		switch {
		case status.IsSelected(i):
			line = selectedStyle.Render(text)
		case i == m.cursor && m.focusedPane == paneStatus:
			line = cursorStyle.Render(text)
		default:
			stateStyle := lipgloss.NewStyle().Foreground(m.thm.StatusColor(entry.State))
			line = stateStyle.Render(entry.State) + " " + icon + entry.Path
		}

		b.WriteString(line)
		if i < len(entries)-1 {
			b.WriteString("\n")
		}
	}
	return b.String()
}

// renderSelectedPane shows the path-sorted projection of the selection.
func (m *AppModel) renderSelectedPane(r rect) string {
	if r.height <= 0 || r.width <= 0 {
		return ""
	}

	selected := m.client.Status().SelectedEntries()
	cursorStyle := lipgloss.NewStyle().Background(m.thm.AccentDim).Foreground(m.thm.TextFg)

	maxRows := maxInt(0, r.height-2)
	var lines []string
	for i, entry := range selected {
		if i >= maxRows {
			break
		}
		text := fmt.Sprintf("%s %s", entry.State, entry.Path)
		if i == m.selCursor && m.focusedPane == paneSelected {
			lines = append(lines, cursorStyle.Render(text))
			continue
		}
		stateStyle := lipgloss.NewStyle().Foreground(m.thm.StatusColor(entry.State))
		lines = append(lines, stateStyle.Render(entry.State)+" "+entry.Path)
	}
	if len(lines) == 0 {
		lines = []string{lipgloss.NewStyle().Foreground(m.thm.MutedFg).Render("Nothing selected.")}
	}

	box := m.paneBorder(r, m.focusedPane == paneSelected, false)
	return renderTitledBox(box, " Selected ", strings.Join(lines, "\n"), r.width)
}

// renderCommitPane shows the commit message input.
func (m *AppModel) renderCommitPane(r rect) string {
	if r.height <= 0 || r.width <= 0 {
		return ""
	}

	m.commitInput.Width = maxInt(1, r.width-4)

	box := m.paneBorder(r, m.focusedPane == paneCommit, m.commitError)
	return renderTitledBox(box, " Commit ", m.commitInput.View(), r.width)
}

// renderTitledBox renders content inside box with the title drawn into the
// top border row.
func renderTitledBox(box lipgloss.Style, title, content string, width int) string {
	rendered := box.Render(content)
	lines := strings.Split(rendered, "\n")
	if len(lines) == 0 || width < len(title)+4 {
		return rendered
	}

	top := lines[0]
	// Keep the corner, draw the title, keep the rest of the border run.
	prefixWidth := 2
	suffix := ansiTruncateLeft(top, prefixWidth+lipgloss.Width(title))
	prefix := ansiTruncate(top, prefixWidth)
	lines[0] = prefix + title + suffix
	return strings.Join(lines, "\n")
}

func ansiTruncate(s string, width int) string {
	return ansi.Truncate(s, width, "")
}

func ansiTruncateLeft(s string, width int) string {
	return ansi.TruncateLeft(s, width, "")
}
