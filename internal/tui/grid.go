package tui

import (
	"time"

	"roomgrid/internal/schedule"
)

// Grid composes the seven weekday columns over a fetched week and
// translates between slot indices and wall-clock ranges.
type Grid struct {
	week    *schedule.Week
	columns [schedule.DaysPerWeek]Column
}

// NewGrid builds a grid over a week of schedules.
func NewGrid(week *schedule.Week) *Grid {
	return &Grid{week: week}
}

// Week returns the week the grid renders.
func (g *Grid) Week() *schedule.Week { return g.week }

// SetWeek swaps in freshly fetched data. Any drag in progress is
// dropped since the indices may no longer be free.
func (g *Grid) SetWeek(week *schedule.Week) {
	g.week = week
	g.CancelDrag()
}

// DayDate returns the date of the given weekday column.
func (g *Grid) DayDate(day int) time.Time {
	return g.week.Day(day)
}

// RangeOf converts a half-open slot range in a column to wall-clock times.
func (g *Grid) RangeOf(day, from, to int) schedule.Range {
	date := g.DayDate(day)
	return schedule.Range{
		Start: schedule.ToTime(date, from),
		End:   schedule.ToTime(date, to),
	}
}

// ScheduleAt returns the fetched schedule covering the given cell, if any.
func (g *Grid) ScheduleAt(day, idx int) (schedule.Schedule, bool) {
	for _, s := range g.week.Days[day] {
		if idx >= s.StartIndex() && idx < s.EndIndex() {
			return s, true
		}
	}
	return schedule.Schedule{}, false
}

// DraggingDay returns the column with a drag in progress, if any.
func (g *Grid) DraggingDay() (int, bool) {
	for day := range g.columns {
		if g.columns[day].Dragging() {
			return day, true
		}
	}
	return 0, false
}

// Preview returns the in-progress drag range for a column.
func (g *Grid) Preview(day int) (from, to int, ok bool) {
	return g.columns[day].Preview()
}

// StartDrag begins a selection in a column. Starting on an occupied
// slot is a no-op; the press is a click on that block instead.
func (g *Grid) StartDrag(day, idx int) {
	if _, occupied := g.ScheduleAt(day, idx); occupied {
		return
	}
	g.columns[day].DragStart(idx)
}

// UpdateDrag extends the drag with a hovered cell. Hovering outside
// the starting column leaves the drag unchanged. Returns true when
// the covered range changed.
func (g *Grid) UpdateDrag(day, idx int) bool {
	if !g.columns[day].Dragging() {
		return false
	}
	return g.columns[day].DragUpdate(idx)
}

// EndDrag finishes a drag on a released cell. A release in a column
// that was not dragging cancels whatever drag is in progress, the
// same as a release outside the grid.
func (g *Grid) EndDrag(day, idx int) (schedule.Range, DragResult) {
	if !g.columns[day].Dragging() {
		g.CancelDrag()
		return schedule.Range{}, DragIgnored
	}
	from, to, result := g.columns[day].DragEnd(idx, g.week.Days[day])
	if result != DragDone {
		return schedule.Range{}, result
	}
	return g.RangeOf(day, from, to), DragDone
}

// CancelDrag aborts any drag in progress, in every column.
// Safe to call repeatedly.
func (g *Grid) CancelDrag() bool {
	cancelled := false
	for day := range g.columns {
		if g.columns[day].Cancel() {
			cancelled = true
		}
	}
	return cancelled
}
