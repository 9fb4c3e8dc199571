package schedule

import "time"

// Grid geometry. The timetable covers 08:00 to 23:00 in half-hour slots,
// giving indices 0..29.
const (
	DayStartHour = 8
	DayEndHour   = 23
	SlotMinutes  = 30
	SlotsPerDay  = (DayEndHour - DayStartHour) * 2
)

// ToIndex converts a wall-clock time to its grid index within its day.
// Minutes are truncated into the {0,30} bucket. Times outside 08:00-23:00
// map outside [0,SlotsPerDay) and must be clipped by the caller.
func ToIndex(t time.Time) int {
	hourIdx := t.Hour() - DayStartHour
	minuteIdx := 0
	if t.Minute() >= 30 {
		minuteIdx = 1
	}
	return hourIdx*2 + minuteIdx
}

// ToTime converts a grid index back to a wall-clock time on the given day.
// Seconds and smaller units are zeroed. Exact inverse of ToIndex on the
// valid domain.
func ToTime(day time.Time, idx int) time.Time {
	hour := DayStartHour + idx/2
	minute := (idx % 2) * SlotMinutes
	return time.Date(day.Year(), day.Month(), day.Day(), hour, minute, 0, 0, day.Location())
}

// ValidIndex reports whether idx is a renderable slot index.
func ValidIndex(idx int) bool {
	return idx >= 0 && idx < SlotsPerDay
}

// StartIndex returns the grid index of the schedule's first slot.
func (s Schedule) StartIndex() int {
	return ToIndex(s.Start)
}

// EndIndex returns the grid index one past the schedule's last slot.
func (s Schedule) EndIndex() int {
	return ToIndex(s.End)
}
