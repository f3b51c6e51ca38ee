// Package app implements the interactive TUI for lazysvn.
package app

import (
	"context"
	"errors"
	"fmt"

	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/unijfdev/lazysvn/internal/app/screen"
	"github.com/unijfdev/lazysvn/internal/config"
	"github.com/unijfdev/lazysvn/internal/log"
	"github.com/unijfdev/lazysvn/internal/models"
	"github.com/unijfdev/lazysvn/internal/svn"
	"github.com/unijfdev/lazysvn/internal/theme"
)

// Focusable panes, cycled with tab.
const (
	paneStatus = iota
	paneSelected
	paneCommit
	paneCount
)

// AppModel is the main Bubble Tea model. Commands against the working copy
// run synchronously inside Update: every svn invocation blocks the event
// loop until the process exits, so the model never observes a
// partially-updated status list.
type AppModel struct {
	config *config.AppConfig
	thm    *theme.Theme
	client *svn.Client

	// UI components
	statusViewport viewport.Model
	commitInput    textinput.Model
	screens        *screen.Manager

	// State
	info         models.WorkingCopyInfo
	cursor       int // row in the status pane
	selCursor    int // row in the selected pane, ordinal into the sorted projection
	focusedPane  int
	commitError  bool
	windowWidth  int
	windowHeight int
	quitting     bool

	ctx    context.Context
	cancel context.CancelFunc
}

// NewAppModel creates the application model for one working copy.
func NewAppModel(cfg *config.AppConfig, workingCopy string) *AppModel {
	ctx, cancel := context.WithCancel(context.Background())

	commitInput := textinput.New()
	commitInput.Placeholder = "Commit message..."
	commitInput.Prompt = ""
	commitInput.Width = 40

	m := &AppModel{
		config:         cfg,
		thm:            theme.GetTheme(cfg.Theme),
		statusViewport: viewport.New(40, 10),
		commitInput:    commitInput,
		screens:        screen.NewManager(),
		focusedPane:    paneStatus,
		ctx:            ctx,
		cancel:         cancel,
	}

	client := svn.NewClient(workingCopy, func(message, severity string) {
		m.pushMessage("svn", message, severityFromString(severity))
	})
	client.SetBinary(cfg.SvnBin)
	m.client = client
	return m
}

// Client exposes the svn client, mainly so tests can swap the runner.
func (m *AppModel) Client() *svn.Client {
	return m.client
}

func severityFromString(severity string) screen.Severity {
	switch severity {
	case "error":
		return screen.SeverityError
	case "warning":
		return screen.SeverityWarning
	default:
		return screen.SeverityInfo
	}
}

// Init populates the status list and the working copy header.
func (m *AppModel) Init() tea.Cmd {
	m.client.Initialize(m.ctx)
	m.info = m.client.Info(m.ctx)
	m.syncStatusViewport()
	return textinput.Blink
}

// Update handles messages.
func (m *AppModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.setWindowSize(msg.Width, msg.Height)
		return m, nil

	case tea.KeyMsg:
		if m.screens.IsActive() {
			return m.updateScreen(msg)
		}
		return m.handleKey(msg)
	}
	return m, nil
}

// updateScreen routes a key to the active modal. A nil screen result means
// the modal closed.
func (m *AppModel) updateScreen(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	current := m.screens.Current()
	next, cmd := current.Update(msg)
	if next == nil {
		// The screen may have pushed a successor while handling the key,
		// so remove it specifically instead of popping the top.
		m.screens.Remove(current)
	}
	return m, cmd
}

func (m *AppModel) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	key := msg.String()

	// Keys that work regardless of focus.
	switch key {
	case "ctrl+c":
		m.quitting = true
		m.cancel()
		return m, tea.Quit
	case "tab":
		m.setFocus((m.focusedPane + 1) % paneCount)
		return m, nil
	case "shift+tab":
		m.setFocus((m.focusedPane + paneCount - 1) % paneCount)
		return m, nil
	}

	// The commit pane swallows everything else as text input, except enter
	// which starts the commit flow.
	if m.focusedPane == paneCommit {
		if key == "enter" {
			return m, m.confirmCommit()
		}
		var cmd tea.Cmd
		m.commitInput, cmd = m.commitInput.Update(msg)
		m.client.Status().SetCommitMessage(m.commitInput.Value())
		m.commitError = false
		return m, cmd
	}

	switch key {
	case "q":
		m.quitting = true
		m.cancel()
		return m, tea.Quit

	case "1":
		m.setFocus(paneStatus)
	case "2":
		m.setFocus(paneSelected)
	case "3":
		m.setFocus(paneCommit)

	case "j", "down":
		m.moveCursor(1)
	case "k", "up":
		m.moveCursor(-1)
	case "g", "home":
		m.moveCursorTo(0)
	case "G", "end":
		m.moveCursorTo(m.paneLength() - 1)

	case " ":
		m.toggleAtCursor()

	case "a":
		if m.focusedPane == paneStatus {
			m.client.Add(m.ctx, m.cursor)
			m.afterMutation()
		}

	case "r":
		if m.focusedPane == paneStatus {
			return m, m.confirmRevert()
		}

	case "c":
		return m, m.confirmCommit()

	case "R":
		m.client.Refresh(m.ctx)
		m.afterMutation()
	}

	return m, nil
}

// setFocus switches the focused pane and moves textinput focus with it.
func (m *AppModel) setFocus(pane int) {
	m.focusedPane = pane
	if pane == paneCommit {
		m.commitInput.Focus()
	} else {
		m.commitInput.Blur()
	}
}

// paneLength is the row count of the currently focused list pane.
func (m *AppModel) paneLength() int {
	if m.focusedPane == paneSelected {
		return m.client.Status().SelectionCount()
	}
	return m.client.Status().Len()
}

func (m *AppModel) moveCursor(delta int) {
	if m.focusedPane == paneSelected {
		m.selCursor = clamp(m.selCursor+delta, 0, m.client.Status().SelectionCount()-1)
		return
	}
	m.cursor = clamp(m.cursor+delta, 0, m.client.Status().Len()-1)
	m.syncStatusViewport()
}

func (m *AppModel) moveCursorTo(index int) {
	if m.focusedPane == paneSelected {
		m.selCursor = clamp(index, 0, m.client.Status().SelectionCount()-1)
		return
	}
	m.cursor = clamp(index, 0, m.client.Status().Len()-1)
	m.syncStatusViewport()
}

// toggleAtCursor flips the selection under the cursor. In the selected pane
// the cursor is an ordinal into the path-sorted projection, not an entry
// index.
func (m *AppModel) toggleAtCursor() {
	status := m.client.Status()
	switch m.focusedPane {
	case paneStatus:
		status.ToggleSelection(m.cursor)
	case paneSelected:
		status.ToggleSelectionByOrdinal(m.selCursor)
		m.selCursor = clamp(m.selCursor, 0, status.SelectionCount()-1)
	}
	m.commitError = false
	m.syncStatusViewport()
}

// confirmRevert opens the revert confirmation for the file under the
// cursor.
func (m *AppModel) confirmRevert() tea.Cmd {
	entry, ok := m.client.Status().Entry(m.cursor)
	if !ok {
		return nil
	}

	confirm := screen.NewConfirmScreen(
		"Revert",
		fmt.Sprintf("Revert local changes to %s?", entry.Path),
		m.thm,
	)
	confirm.OnConfirm = func() tea.Cmd {
		m.client.Revert(m.ctx, m.cursor)
		m.afterMutation()
		return nil
	}
	m.pushScreen(confirm)
	return nil
}

// confirmCommit opens the commit confirmation. Precondition failures are
// reported after the confirmation, when the commit actually runs.
func (m *AppModel) confirmCommit() tea.Cmd {
	status := m.client.Status()
	count := status.SelectionCount()

	confirm := screen.NewConfirmScreen(
		"Commit",
		fmt.Sprintf("Commit %d file(s)?", count),
		m.thm,
	)
	confirm.OnConfirm = func() tea.Cmd {
		m.runCommit()
		return nil
	}
	m.pushScreen(confirm)
	return nil
}

// runCommit performs the commit and maps its error model onto modals.
func (m *AppModel) runCommit() {
	err := m.client.Commit(m.ctx)
	m.afterMutation()

	switch {
	case err == nil:
		m.commitInput.SetValue("")
		m.client.Status().ClearCommitMessage()
		m.pushMessage("Commit", "Commit succeeded.", screen.SeverityInfo)
	case errors.Is(err, svn.ErrEmptyCommitMessage):
		m.commitError = true
		m.pushMessage("Commit", "The commit message is empty.", screen.SeverityWarning)
	case errors.Is(err, svn.ErrNoFilesSelected):
		m.commitError = true
		m.pushMessage("Commit", "No files are selected.", screen.SeverityWarning)
	default:
		log.Printf("commit failed: %v", err)
		m.pushMessage("Commit failed", err.Error(), screen.SeverityError)
	}
}

// afterMutation re-syncs UI state after the status list was rebuilt.
func (m *AppModel) afterMutation() {
	status := m.client.Status()
	m.cursor = clamp(m.cursor, 0, status.Len()-1)
	m.selCursor = clamp(m.selCursor, 0, status.SelectionCount()-1)
	m.commitInput.SetValue(status.CommitMessage())
	m.syncStatusViewport()
}

func (m *AppModel) pushScreen(s screen.Screen) {
	modal := m.modalRect()
	s.Resize(modal.width, modal.height)
	m.screens.Push(s)
}

func (m *AppModel) pushMessage(title, message string, severity screen.Severity) {
	m.pushScreen(screen.NewMessageScreen(title, message, severity, m.thm))
}

// modalRect places modals at 60% x 20% of the frame, floored to the modal
// minimums.
func (m *AppModel) modalRect() rect {
	frame := rect{width: m.windowWidth, height: m.windowHeight}
	if frame.width == 0 || frame.height == 0 {
		frame = rect{width: 80, height: 24}
	}
	return centeredRect(60, 20, frame)
}

func (m *AppModel) setWindowSize(width, height int) {
	m.windowWidth = width
	m.windowHeight = height

	dims := computeLayout(width, height)
	m.statusViewport.Width = maxInt(1, dims.status.width-2)
	m.statusViewport.Height = maxInt(1, dims.status.height-2)
	m.commitInput.Width = maxInt(1, dims.commit.width-4)

	if m.screens.IsActive() {
		modal := m.modalRect()
		m.screens.Current().Resize(modal.width, modal.height)
	}
	m.syncStatusViewport()
}

// syncStatusViewport refreshes the status pane content and keeps the
// cursor row visible.
func (m *AppModel) syncStatusViewport() {
	m.statusViewport.SetContent(m.renderStatusRows())
	if m.cursor < m.statusViewport.YOffset {
		m.statusViewport.SetYOffset(m.cursor)
	} else if bottom := m.statusViewport.YOffset + m.statusViewport.Height; m.cursor >= bottom {
		m.statusViewport.SetYOffset(m.cursor - m.statusViewport.Height + 1)
	}
}

func clamp(v, low, high int) int {
	if high < low {
		return low
	}
	if v < low {
		return low
	}
	if v > high {
		return high
	}
	return v
}
