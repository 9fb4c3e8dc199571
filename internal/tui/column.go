package tui

import "roomgrid/internal/schedule"

// DragResult describes what a finished drag produced.
type DragResult int

const (
	// DragIgnored means no drag was in progress in this column.
	DragIgnored DragResult = iota
	// DragRejected means the drag ended over an occupied range.
	DragRejected
	// DragDone means the drag produced a valid slot range.
	DragDone
)

// Column tracks one weekday's drag selection. Indices are raw slot
// indices as hovered; normalization into a half-open range happens
// when the drag ends.
type Column struct {
	dragging bool
	dragFrom int
	dragTo   int
}

// Dragging reports whether a drag is in progress.
func (c *Column) Dragging() bool { return c.dragging }

// Preview returns the half-open range the current drag covers,
// for rendering the in-progress block. ok is false when idle.
func (c *Column) Preview() (from, to int, ok bool) {
	if !c.dragging {
		return 0, 0, false
	}
	from, to = normalizeDrag(c.dragFrom, c.dragTo)
	return from, to, true
}

// DragStart begins a drag at the pressed slot.
func (c *Column) DragStart(idx int) {
	if !schedule.ValidIndex(idx) {
		return
	}
	c.dragging = true
	c.dragFrom = idx
	c.dragTo = idx
}

// DragUpdate extends the drag to the hovered slot. Returns true when
// the hover changed the covered range.
func (c *Column) DragUpdate(idx int) bool {
	if !c.dragging || !schedule.ValidIndex(idx) || idx == c.dragTo {
		return false
	}
	c.dragTo = idx
	return true
}

// DragEnd finishes the drag at the released slot and validates the
// normalized range against the day's existing schedules. On DragDone
// the returned range is half-open in slot indices.
func (c *Column) DragEnd(idx int, existing []schedule.Schedule) (from, to int, result DragResult) {
	if !c.dragging {
		return 0, 0, DragIgnored
	}
	if schedule.ValidIndex(idx) {
		c.dragTo = idx
	}
	from, to = normalizeDrag(c.dragFrom, c.dragTo)
	c.dragging = false

	if !schedule.RangeFree(existing, from, to) {
		return 0, 0, DragRejected
	}
	return from, to, DragDone
}

// Cancel aborts any drag in progress. Safe to call when idle.
// Returns true when a drag was actually cancelled.
func (c *Column) Cancel() bool {
	was := c.dragging
	c.dragging = false
	return was
}

// normalizeDrag turns raw pressed/hovered indices into a half-open
// range: reversed drags are flipped, and the endpoint slot is included.
func normalizeDrag(a, b int) (from, to int) {
	if a > b {
		a, b = b, a
	}
	return a, b + 1
}
