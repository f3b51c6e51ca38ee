package svn

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/unijfdev/lazysvn/internal/models"
)

func statusList(pathsAndStates ...string) *StatusList {
	entries := make([]models.StatusEntry, 0, len(pathsAndStates)/2)
	for i := 0; i+1 < len(pathsAndStates); i += 2 {
		entries = append(entries, models.StatusEntry{Path: pathsAndStates[i], State: pathsAndStates[i+1]})
	}
	return NewStatusList(entries)
}

func TestNewStatusListSortsAndDedupes(t *testing.T) {
	l := statusList("c.txt", "M", "a.txt", "?", "c.txt", "A", "b.txt", "D")

	require.Equal(t, 3, l.Len())
	assert.Equal(t, "a.txt", l.Entries()[0].Path)
	assert.Equal(t, "b.txt", l.Entries()[1].Path)
	assert.Equal(t, "c.txt", l.Entries()[2].Path)
}

func TestToggleSelection(t *testing.T) {
	l := statusList("a.txt", "M", "b.txt", "?")

	l.ToggleSelection(0)
	assert.True(t, l.IsSelected(0))
	assert.False(t, l.IsSelected(1))
	assert.Equal(t, 1, l.SelectionCount())

	l.ToggleSelection(0)
	assert.False(t, l.IsSelected(0))
	assert.Equal(t, 0, l.SelectionCount())

	// Invalid indices do nothing.
	l.ToggleSelection(-1)
	l.ToggleSelection(99)
	assert.Equal(t, 0, l.SelectionCount())
}

func TestToggleSelectionByOrdinal(t *testing.T) {
	l := statusList("a.txt", "M", "b.txt", "M", "c.txt", "M")
	l.ToggleSelection(0)
	l.ToggleSelection(2)

	t.Run("removes the ordinal-th selected path", func(t *testing.T) {
		l.ToggleSelectionByOrdinal(1) // second selected entry, sorted by path: c.txt
		assert.Equal(t, []string{"a.txt"}, l.SelectedPaths())
	})

	t.Run("out of range is a no-op", func(t *testing.T) {
		l.ToggleSelectionByOrdinal(5)
		l.ToggleSelectionByOrdinal(-1)
		assert.Equal(t, []string{"a.txt"}, l.SelectedPaths())
	})
}

func TestSelectedViewsAreSortedProjections(t *testing.T) {
	l := statusList("b.txt", "M", "d.txt", "?", "a.txt", "A", "c.txt", "D")
	l.ToggleSelection(3) // d.txt
	l.ToggleSelection(0) // a.txt

	selected := l.SelectedEntries()
	require.Len(t, selected, 2)
	assert.Equal(t, "a.txt", selected[0].Path)
	assert.Equal(t, "d.txt", selected[1].Path)
	assert.Equal(t, []int{0, 3}, l.SelectionIndices())
}

func TestCommitMessageBuffer(t *testing.T) {
	l := statusList("a.txt", "M")

	l.PushRune('f')
	l.PushRune('i')
	l.PushRune('x')
	assert.Equal(t, "fix", l.CommitMessage())

	l.PopRune()
	assert.Equal(t, "fi", l.CommitMessage())

	l.SetCommitMessage("réparé")
	l.PopRune()
	assert.Equal(t, "répar", l.CommitMessage(), "pop removes a rune, not a byte")

	l.ClearCommitMessage()
	assert.Empty(t, l.CommitMessage())
	l.PopRune() // empty buffer is a no-op
	assert.Empty(t, l.CommitMessage())
}

func TestEntryBounds(t *testing.T) {
	l := statusList("a.txt", "M")

	entry, ok := l.Entry(0)
	require.True(t, ok)
	assert.Equal(t, "a.txt", entry.Path)

	_, ok = l.Entry(1)
	assert.False(t, ok)
	_, ok = l.Entry(-1)
	assert.False(t, ok)
}
