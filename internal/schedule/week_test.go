package schedule

import (
	"testing"
	"time"
)

func monday() time.Time {
	return time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC) // a Monday
}

func onDay(dayOffset, from, to int) Schedule {
	day := monday().AddDate(0, 0, dayOffset)
	return Schedule{
		Name:  "booking",
		Start: ToTime(day, from),
		End:   ToTime(day, to),
		Type:  TypeUpcoming,
	}
}

func TestNewWeek_Buckets(t *testing.T) {
	list := []Schedule{
		onDay(0, 0, 2),
		onDay(0, 4, 6),
		onDay(2, 10, 12),
		onDay(6, 28, 30),
	}
	SortByStart(list)

	w := NewWeek(monday(), list)

	counts := [DaysPerWeek]int{0: 2, 2: 1, 6: 1}
	for i := 0; i < DaysPerWeek; i++ {
		if len(w.Days[i]) != counts[i] {
			t.Errorf("day %d: got %d schedules, want %d", i, len(w.Days[i]), counts[i])
		}
	}
}

func TestNewWeek_DropsOutOfWindow(t *testing.T) {
	list := []Schedule{
		onDay(-1, 4, 6),
		onDay(3, 4, 6),
		onDay(7, 4, 6),
	}
	SortByStart(list)

	w := NewWeek(monday(), list)

	total := 0
	for i := range w.Days {
		total += len(w.Days[i])
	}
	if total != 1 {
		t.Errorf("expected only the in-window schedule, got %d", total)
	}
	if len(w.Days[3]) != 1 {
		t.Errorf("day 3: got %d schedules, want 1", len(w.Days[3]))
	}
}

func TestDayIndex(t *testing.T) {
	w := NewWeek(monday(), nil)

	if got := w.DayIndex(ToTime(monday().AddDate(0, 0, 4), 10)); got != 4 {
		t.Errorf("DayIndex = %d, want 4", got)
	}
	if got := w.DayIndex(monday().AddDate(0, 0, 9)); got != -1 {
		t.Errorf("DayIndex outside week = %d, want -1", got)
	}
}

func TestWithSelection(t *testing.T) {
	w := NewWeek(monday(), []Schedule{onDay(1, 4, 6)})
	sel := &Range{
		Start: ToTime(monday().AddDate(0, 0, 1), 8),
		End:   ToTime(monday().AddDate(0, 0, 1), 10),
	}

	got := w.WithSelection(1, sel, false)
	if len(got) != 2 {
		t.Fatalf("expected 2 schedules, got %d", len(got))
	}
	if got[1].Type != TypeSelecting {
		t.Errorf("synthetic block type = %v, want selecting", got[1].Type)
	}
	if got[1].Interactive() {
		t.Error("synthetic block must not be interactive")
	}

	got = w.WithSelection(1, sel, true)
	if got[1].Type != TypeSelected {
		t.Errorf("pending block type = %v, want selected", got[1].Type)
	}

	// Selection on another day leaves the column untouched.
	if got := w.WithSelection(2, sel, false); len(got) != 0 {
		t.Errorf("day 2 should have no schedules, got %d", len(got))
	}

	// The fetched list itself is never mutated.
	if len(w.Days[1]) != 1 {
		t.Errorf("underlying day slice grew to %d", len(w.Days[1]))
	}
}

func TestMetaValidate(t *testing.T) {
	valid := Meta{RepeatCount: 1, Name: "club", Email: "a@b.c", Comment: "meeting"}
	if err := valid.Validate(); err != nil {
		t.Errorf("unexpected error: %v", err)
	}

	tests := []struct {
		name string
		meta Meta
		want error
	}{
		{"missing name", Meta{RepeatCount: 1, Email: "a@b.c", Comment: "x"}, ErrEmptyName},
		{"missing email", Meta{RepeatCount: 1, Name: "club", Comment: "x"}, ErrEmptyEmail},
		{"missing comment", Meta{RepeatCount: 1, Name: "club", Email: "a@b.c"}, ErrEmptyComment},
		{"repeat too low", Meta{RepeatCount: 0, Name: "club", Email: "a@b.c", Comment: "x"}, ErrInvalidRepeatCount},
		{"repeat too high", Meta{RepeatCount: 16, Name: "club", Email: "a@b.c", Comment: "x"}, ErrInvalidRepeatCount},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if err := tt.meta.Validate(); err != tt.want {
				t.Errorf("Validate() = %v, want %v", err, tt.want)
			}
		})
	}
}

func TestNewMeta(t *testing.T) {
	m := NewMeta()
	if m.RepeatCount != MinRepeatCount {
		t.Errorf("RepeatCount = %d, want %d", m.RepeatCount, MinRepeatCount)
	}
	if m.Name != "" || m.Email != "" || m.PhoneNumber != "" || m.Comment != "" {
		t.Error("new meta should have empty fields")
	}
}
