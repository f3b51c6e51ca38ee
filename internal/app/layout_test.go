package app

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestComputeLayoutBands(t *testing.T) {
	layout := computeLayout(100, 40)

	assert.Equal(t, 3, layout.header.height)
	assert.GreaterOrEqual(t, layout.status.height, minStatusRows)
	assert.GreaterOrEqual(t, layout.selected.height, minBottomRows)

	// Bands tile the frame top to bottom.
	assert.Equal(t, 0, layout.header.y)
	assert.Equal(t, layout.header.height, layout.status.y)
	assert.Equal(t, layout.status.y+layout.status.height, layout.selected.y)
	assert.Equal(t, 40, layout.selected.y+layout.selected.height)

	// Bottom band splits into two halves on the same row.
	assert.Equal(t, layout.selected.y, layout.commit.y)
	assert.Equal(t, layout.selected.height, layout.commit.height)
	assert.Equal(t, 100, layout.selected.width+layout.commit.width)
	assert.Equal(t, layout.selected.width, layout.commit.x)
}

func TestComputeLayoutExtraSpaceFavorsStatus(t *testing.T) {
	layout := computeLayout(80, 60)

	assert.GreaterOrEqual(t, layout.status.height, layout.selected.height)
	assert.Equal(t, 60, layout.header.height+layout.status.height+layout.selected.height)
}

func TestComputeLayoutTinyFrame(t *testing.T) {
	layout := computeLayout(20, 8)

	assert.Equal(t, 3, layout.header.height)
	assert.Equal(t, 5, layout.status.height, "status band absorbs what is left")
	assert.Equal(t, 0, layout.selected.height)

	// Even a zero-height frame must not go negative.
	layout = computeLayout(10, 0)
	assert.Equal(t, 0, layout.header.height)
	assert.Equal(t, 0, layout.status.height)
	assert.Equal(t, 0, layout.selected.height)
}

func TestCenteredRectWithinLargeContainer(t *testing.T) {
	container := rect{width: 200, height: 50}
	r := centeredRect(60, 20, container)

	assert.Equal(t, 120, r.width)
	assert.Equal(t, 10, r.height)
	assert.Equal(t, 40, r.x)
	assert.Equal(t, 20, r.y)
}

func TestCenteredRectEnforcesMinimumSize(t *testing.T) {
	tests := []struct {
		name      string
		container rect
		minWidth  int
		minHeight int
	}{
		{"wide but short", rect{width: 120, height: 6}, 40, 6},
		{"narrow but tall", rect{width: 30, height: 40}, 30, 8},
		{"tiny", rect{width: 24, height: 5}, 24, 5},
		{"just above floor", rect{width: 80, height: 24}, 40, 8},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := centeredRect(10, 10, tt.container)
			assert.GreaterOrEqual(t, r.width, tt.minWidth)
			assert.GreaterOrEqual(t, r.height, tt.minHeight)
			assert.LessOrEqual(t, r.width, tt.container.width)
			assert.LessOrEqual(t, r.height, tt.container.height)
		})
	}
}

func TestCenteredRectStaysCentered(t *testing.T) {
	container := rect{x: 5, y: 2, width: 100, height: 30}
	r := centeredRect(50, 50, container)

	leftGap := r.x - container.x
	rightGap := container.x + container.width - (r.x + r.width)
	assert.LessOrEqual(t, absInt(leftGap-rightGap), 1)

	topGap := r.y - container.y
	bottomGap := container.y + container.height - (r.y + r.height)
	assert.LessOrEqual(t, absInt(topGap-bottomGap), 1)
}

func TestCenteredRectZeroContainer(t *testing.T) {
	r := centeredRect(60, 20, rect{})
	assert.Equal(t, 0, r.width)
	assert.Equal(t, 0, r.height)
}

func absInt(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
