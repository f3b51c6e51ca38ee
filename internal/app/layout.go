package app

// rect is a bounded region of the terminal frame in cell coordinates.
type rect struct {
	x      int
	y      int
	width  int
	height int
}

// Modal floor: dialogs never render smaller than this, regardless of the
// requested percentages or how small the terminal is.
const (
	minModalWidth  = 40
	minModalHeight = 8
)

// Panel layout constants: fixed header, flexible middle and bottom bands.
const (
	headerRows    = 3
	minStatusRows = 10
	minBottomRows = 7
)

// layoutDims holds the computed panel rectangles for one frame size.
type layoutDims struct {
	frame    rect
	header   rect // working copy info, fixed 3 rows
	status   rect // status list, flexible middle band
	selected rect // bottom left half
	commit   rect // bottom right half
}

// computeLayout splits the frame top-to-bottom into the header, the status
// band and the bottom band, then splits the bottom band into equal halves.
// Extra space beyond the band minimums is distributed between the status
// and bottom bands, favoring the status band.
func computeLayout(width, height int) layoutDims {
	frame := rect{width: width, height: height}

	headerHeight := minInt(headerRows, maxInt(0, height))
	rest := maxInt(0, height-headerHeight)

	var statusHeight, bottomHeight int
	if extra := rest - minStatusRows - minBottomRows; extra >= 0 {
		bottomHeight = minBottomRows + extra/2
		statusHeight = rest - bottomHeight
	} else {
		// Frame is below the minimums: give the status band what is left
		// after the header and shrink the bottom band first.
		statusHeight = minInt(minStatusRows, rest)
		bottomHeight = rest - statusHeight
	}

	leftWidth := width / 2
	bottomY := headerHeight + statusHeight

	return layoutDims{
		frame:    frame,
		header:   rect{x: 0, y: 0, width: width, height: headerHeight},
		status:   rect{x: 0, y: headerHeight, width: width, height: statusHeight},
		selected: rect{x: 0, y: bottomY, width: leftWidth, height: bottomHeight},
		commit:   rect{x: leftWidth, y: bottomY, width: width - leftWidth, height: bottomHeight},
	}
}

// centeredRect computes a sub-rectangle centered within container covering
// the requested width/height percentages. The effective percentages are
// floored so the result is never smaller than minModalWidth x
// minModalHeight, capped at 100% of the container; on very small terminals
// the result may exceed the requested percentage.
func centeredRect(percentX, percentY int, container rect) rect {
	actualPercentX := maxInt(percentX, minInt(100, percentOf(minModalWidth, container.width)))
	actualPercentY := maxInt(percentY, minInt(100, percentOf(minModalHeight, container.height)))

	bands := splitCenteredVertical(container, actualPercentY)
	if len(bands) < 3 {
		// Defensive: a well-formed split always yields three bands.
		return rect{
			x:      container.x,
			y:      container.y,
			width:  maxInt(container.width, minModalWidth),
			height: maxInt(container.height, minModalHeight),
		}
	}

	return splitCenteredHorizontal(bands[1], actualPercentX)[1]
}

// percentOf converts an absolute cell count into a percentage of total,
// rounding up so the floor is never lost to integer division.
func percentOf(cells, total int) int {
	if total <= 0 {
		return 100
	}
	return (cells*100 + total - 1) / total
}

// splitCenteredVertical cuts r into top margin, a centered band covering
// percent of the height (rounded up), and bottom margin.
func splitCenteredVertical(r rect, percent int) []rect {
	band := minInt(r.height, (r.height*percent+99)/100)
	top := (r.height - band) / 2
	return []rect{
		{x: r.x, y: r.y, width: r.width, height: top},
		{x: r.x, y: r.y + top, width: r.width, height: band},
		{x: r.x, y: r.y + top + band, width: r.width, height: r.height - top - band},
	}
}

// splitCenteredHorizontal is the horizontal counterpart of
// splitCenteredVertical.
func splitCenteredHorizontal(r rect, percent int) []rect {
	band := minInt(r.width, (r.width*percent+99)/100)
	left := (r.width - band) / 2
	return []rect{
		{x: r.x, y: r.y, width: left, height: r.height},
		{x: r.x + left, y: r.y, width: band, height: r.height},
		{x: r.x + left + band, y: r.y, width: r.width - left - band, height: r.height},
	}
}

func maxInt(a, b int) int {
	if a > b {
		return a
	}
	return b
}

func minInt(a, b int) int {
	if a < b {
		return a
	}
	return b
}
