package schedule

import (
	"time"

	"roomgrid/internal/dateutil"
)

// DaysPerWeek is the number of columns on the timetable.
const DaysPerWeek = 7

// Week is one rendered week of schedules, bucketed per day.
type Week struct {
	StartDate time.Time
	Days      [DaysPerWeek][]Schedule
}

// NewWeek buckets the flat schedule list into per-day slices for the week
// starting at weekStart. The list must already be sorted by start time, so
// each day's slice is a contiguous range found by a linear scan. Schedules
// outside the window are dropped.
func NewWeek(weekStart time.Time, sorted []Schedule) *Week {
	w := &Week{StartDate: dateutil.TruncateToDay(weekStart)}

	next := 0
	for i := 0; i < DaysPerWeek; i++ {
		day := w.StartDate.AddDate(0, 0, i)

		for next < len(sorted) && sorted[next].Start.Before(day) {
			next++
		}
		first := next
		for next < len(sorted) && dateutil.SameDay(sorted[next].Start, day) {
			next++
		}
		if next > first {
			w.Days[i] = sorted[first:next]
		}
	}
	return w
}

// Day returns the date of column i.
func (w *Week) Day(i int) time.Time {
	return w.StartDate.AddDate(0, 0, i)
}

// DayIndex returns the column for t, or -1 when t is outside the week.
func (w *Week) DayIndex(t time.Time) int {
	for i := 0; i < DaysPerWeek; i++ {
		if dateutil.SameDay(t, w.Day(i)) {
			return i
		}
	}
	return -1
}

// WithSelection returns the schedules of column day plus, when the
// selection falls on that day, a synthetic block representing it. The
// synthetic block carries no IDs and is appended for rendering only; it is
// re-derived every frame and never enters the fetched list.
// pending selects TypeSelected (metadata form open) over TypeSelecting
// (drag still in progress).
func (w *Week) WithSelection(day int, sel *Range, pending bool) []Schedule {
	base := w.Days[day]
	if sel == nil || w.DayIndex(sel.Start) != day {
		return base
	}

	t := TypeSelecting
	if pending {
		t = TypeSelected
	}
	out := make([]Schedule, 0, len(base)+1)
	out = append(out, base...)
	out = append(out, Schedule{Start: sel.Start, End: sel.End, Type: t})
	SortByStart(out)
	return out
}
