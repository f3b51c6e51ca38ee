package screen

// Manager holds the stack of modal screens layered over the main view.
type Manager struct {
	current Screen
	stack   []Screen
}

// NewManager creates a new screen manager.
func NewManager() *Manager {
	return &Manager{
		stack: make([]Screen, 0),
	}
}

// Push adds a screen to the stack and makes it current.
func (m *Manager) Push(s Screen) {
	if s == nil {
		return
	}
	if m.current != nil {
		m.stack = append(m.stack, m.current)
	}
	m.current = s
}

// Pop removes the current screen and restores the previous one.
// Returns the screen that was removed, or nil if none was active.
func (m *Manager) Pop() Screen {
	removed := m.current
	if len(m.stack) > 0 {
		m.current = m.stack[len(m.stack)-1]
		m.stack = m.stack[:len(m.stack)-1]
	} else {
		m.current = nil
	}
	return removed
}

// Remove takes a specific screen out of the manager, wherever it sits.
// Needed when a screen closes after having pushed a successor, so the
// successor stays on top.
func (m *Manager) Remove(s Screen) {
	if s == nil {
		return
	}
	if m.current == s {
		m.Pop()
		return
	}
	for i, stacked := range m.stack {
		if stacked == s {
			m.stack = append(m.stack[:i], m.stack[i+1:]...)
			return
		}
	}
}

// Current returns the active screen, or nil if none.
func (m *Manager) Current() Screen {
	return m.current
}

// IsActive reports whether a screen is currently displayed.
func (m *Manager) IsActive() bool {
	return m.current != nil
}

// Type returns the type of the current screen, or TypeNone.
func (m *Manager) Type() Type {
	if m.current == nil {
		return TypeNone
	}
	return m.current.Type()
}

// Clear removes all screens from the stack.
func (m *Manager) Clear() {
	m.current = nil
	m.stack = m.stack[:0]
}
