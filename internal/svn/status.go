package svn

import (
	"sort"

	"github.com/unijfdev/lazysvn/internal/models"
)

// StatusList holds the ordered status entries, the user's file selection
// and the commit message buffer.
//
// Selection is keyed by path rather than by index: the entry slice is
// rebuilt wholesale on every refresh and indices do not survive that, but
// paths do. Index-based views are derived on demand for rendering.
type StatusList struct {
	entries       []models.StatusEntry
	selected      map[string]struct{}
	commitMessage string
}

// NewStatusList builds a StatusList from the given entries with nothing
// selected and an empty commit message. Entries are sorted by path and
// duplicate paths are collapsed.
func NewStatusList(entries []models.StatusEntry) *StatusList {
	sorted := make([]models.StatusEntry, len(entries))
	copy(sorted, entries)
	sort.Slice(sorted, func(i, j int) bool { return sorted[i].Path < sorted[j].Path })

	deduped := sorted[:0]
	for _, entry := range sorted {
		if len(deduped) > 0 && deduped[len(deduped)-1].Path == entry.Path {
			continue
		}
		deduped = append(deduped, entry)
	}

	return &StatusList{
		entries:  deduped,
		selected: make(map[string]struct{}),
	}
}

// Entries returns the ordered status entries.
func (l *StatusList) Entries() []models.StatusEntry {
	return l.entries
}

// Len returns the number of entries.
func (l *StatusList) Len() int {
	return len(l.entries)
}

// Entry returns the entry at index, reporting whether the index is valid.
func (l *StatusList) Entry(index int) (models.StatusEntry, bool) {
	if index < 0 || index >= len(l.entries) {
		return models.StatusEntry{}, false
	}
	return l.entries[index], true
}

// IsSelected reports whether the entry at index is selected. Out-of-range
// indices are unselected.
func (l *StatusList) IsSelected(index int) bool {
	entry, ok := l.Entry(index)
	if !ok {
		return false
	}
	_, sel := l.selected[entry.Path]
	return sel
}

// SelectionCount returns the number of selected entries.
func (l *StatusList) SelectionCount() int {
	return len(l.selected)
}

// ToggleSelection flips the selection of the entry at index. Passing a
// valid index is a caller precondition; invalid indices do nothing.
func (l *StatusList) ToggleSelection(index int) {
	entry, ok := l.Entry(index)
	if !ok {
		return
	}
	if _, sel := l.selected[entry.Path]; sel {
		delete(l.selected, entry.Path)
	} else {
		l.selected[entry.Path] = struct{}{}
	}
}

// ToggleSelectionByOrdinal deselects the ordinal-th entry of the selected
// projection sorted by path. The Selected pane displays that projection, so
// this maps a visual row back to the underlying file. Out-of-range ordinals
// are a no-op. The ordinal mapping is recomputed on every call.
func (l *StatusList) ToggleSelectionByOrdinal(ordinal int) {
	selected := l.SelectedEntries()
	if ordinal < 0 || ordinal >= len(selected) {
		return
	}
	delete(l.selected, selected[ordinal].Path)
}

// SelectedEntries returns the selected entries sorted by path. Entries are
// already path-sorted, so filtering preserves the order.
func (l *StatusList) SelectedEntries() []models.StatusEntry {
	result := make([]models.StatusEntry, 0, len(l.selected))
	for _, entry := range l.entries {
		if _, sel := l.selected[entry.Path]; sel {
			result = append(result, entry)
		}
	}
	return result
}

// SelectedPaths returns the selected file paths sorted by path order.
func (l *StatusList) SelectedPaths() []string {
	entries := l.SelectedEntries()
	paths := make([]string, 0, len(entries))
	for _, entry := range entries {
		if entry.Path == "" {
			continue
		}
		paths = append(paths, entry.Path)
	}
	return paths
}

// SelectionIndices returns the indices of the selected entries in entry
// order. Derived transiently for rendering, never stored.
func (l *StatusList) SelectionIndices() []int {
	indices := make([]int, 0, len(l.selected))
	for i, entry := range l.entries {
		if _, sel := l.selected[entry.Path]; sel {
			indices = append(indices, i)
		}
	}
	return indices
}

// selectPath selects the entry with the given path if it is present.
func (l *StatusList) selectPath(path string) {
	i := sort.Search(len(l.entries), func(i int) bool { return l.entries[i].Path >= path })
	if i < len(l.entries) && l.entries[i].Path == path {
		l.selected[path] = struct{}{}
	}
}

// CommitMessage returns the current commit message buffer.
func (l *StatusList) CommitMessage() string {
	return l.commitMessage
}

// SetCommitMessage replaces the commit message wholesale.
func (l *StatusList) SetCommitMessage(message string) {
	l.commitMessage = message
}

// PushRune appends a character to the commit message. No length limit is
// enforced at this layer.
func (l *StatusList) PushRune(r rune) {
	l.commitMessage += string(r)
}

// PopRune removes the last character from the commit message.
func (l *StatusList) PopRune() {
	if l.commitMessage == "" {
		return
	}
	runes := []rune(l.commitMessage)
	l.commitMessage = string(runes[:len(runes)-1])
}

// ClearCommitMessage empties the commit message buffer.
func (l *StatusList) ClearCommitMessage() {
	l.commitMessage = ""
}
