package tui

import "roomgrid/internal/schedule"

const (
	axisWidth   = 6 // "23:30 "
	headerLines = 2 // title line + day header
	footerLines = 2 // help line + status line
	minColWidth = 8
)

// Layout maps terminal coordinates to timetable cells. One terminal row
// is one half-hour slot, one column block is one weekday.
type Layout struct {
	Width  int
	Height int

	ColWidth int
	Offset   int // first visible slot row, for short terminals
}

// NewLayout computes grid geometry for a terminal size.
func NewLayout(width, height int) Layout {
	colWidth := (width - axisWidth) / schedule.DaysPerWeek
	if colWidth < minColWidth {
		colWidth = minColWidth
	}
	return Layout{Width: width, Height: height, ColWidth: colWidth}
}

// VisibleRows returns how many slot rows fit on screen.
func (l Layout) VisibleRows() int {
	rows := l.Height - headerLines - footerLines
	if rows < 0 {
		rows = 0
	}
	if rows > schedule.SlotsPerDay {
		rows = schedule.SlotsPerDay
	}
	return rows
}

// MaxOffset returns the largest valid scroll offset.
func (l Layout) MaxOffset() int {
	max := schedule.SlotsPerDay - l.VisibleRows()
	if max < 0 {
		return 0
	}
	return max
}

// Clamp keeps the scroll offset within range.
func (l *Layout) Clamp() {
	if l.Offset > l.MaxOffset() {
		l.Offset = l.MaxOffset()
	}
	if l.Offset < 0 {
		l.Offset = 0
	}
}

// CellAt resolves a terminal coordinate to a (day, slot index) cell.
// Returns ok=false for coordinates outside the grid body.
func (l Layout) CellAt(x, y int) (day, idx int, ok bool) {
	row := y - headerLines
	if row < 0 || row >= l.VisibleRows() {
		return 0, 0, false
	}
	idx = row + l.Offset
	if !schedule.ValidIndex(idx) {
		return 0, 0, false
	}

	col := x - axisWidth
	if col < 0 {
		return 0, 0, false
	}
	day = col / l.ColWidth
	if day >= schedule.DaysPerWeek {
		return 0, 0, false
	}
	return day, idx, true
}

// GridWidth returns the total width of the rendered grid.
func (l Layout) GridWidth() int {
	return axisWidth + l.ColWidth*schedule.DaysPerWeek
}
