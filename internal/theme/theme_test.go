package theme

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/unijfdev/lazysvn/internal/models"
)

func TestGetTheme(t *testing.T) {
	assert.Equal(t, Dracula(), GetTheme(DraculaName))
	assert.Equal(t, Nord(), GetTheme(NordName))
	assert.Equal(t, CleanLight(), GetTheme(CleanLightName))
	assert.Equal(t, Dracula(), GetTheme("no-such-theme"))
	assert.Equal(t, Dracula(), GetTheme(""))
}

func TestIsKnown(t *testing.T) {
	for _, name := range AvailableThemes() {
		assert.True(t, IsKnown(name), name)
	}
	assert.False(t, IsKnown("solarized"))
}

func TestStatusColor(t *testing.T) {
	thm := Dracula()

	assert.Equal(t, thm.Blue, thm.StatusColor(models.StateModified))
	assert.Equal(t, thm.SuccessFg, thm.StatusColor(models.StateAdded))
	assert.Equal(t, thm.ErrorFg, thm.StatusColor(models.StateDeleted))
	assert.Equal(t, thm.ErrorFg, thm.StatusColor(models.StateConflicted))
	assert.Equal(t, thm.ErrorFg, thm.StatusColor(models.StateMissing))
	assert.Equal(t, thm.Yellow, thm.StatusColor(models.StateUntracked))
	assert.Equal(t, thm.MutedFg, thm.StatusColor(models.StateIgnored))
	assert.Equal(t, thm.Cyan, thm.StatusColor(models.StateReplaced))
	assert.Equal(t, thm.Pink, thm.StatusColor(models.StateExternal))
	assert.Equal(t, thm.TextFg, thm.StatusColor("Z"))
}
