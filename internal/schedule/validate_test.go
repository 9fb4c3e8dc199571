package schedule

import (
	"testing"
	"time"
)

// block builds an Upcoming schedule spanning [from, to) slot indices on the
// reference day.
func block(from, to int) Schedule {
	day := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	return Schedule{
		Name:  "existing",
		Start: ToTime(day, from),
		End:   ToTime(day, to),
		Type:  TypeUpcoming,
	}
}

func TestRangeFree(t *testing.T) {
	existing := []Schedule{block(4, 6), block(10, 14)}

	tests := []struct {
		name     string
		from, to int
		want     bool
	}{
		{"edge adjacent both sides", 6, 10, true},
		{"overlaps end of first", 5, 8, false},
		{"before everything", 2, 4, true},
		{"overlaps second from inside", 12, 16, false},
		{"starts inside first", 4, 5, false},
		{"covers a whole schedule", 8, 16, false},
		{"after everything", 14, 20, true},
		{"single slot in gap", 7, 8, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := RangeFree(existing, tt.from, tt.to); got != tt.want {
				t.Errorf("RangeFree([%d,%d)) = %v, want %v", tt.from, tt.to, got, tt.want)
			}
		})
	}
}

func TestRangeFree_Empty(t *testing.T) {
	if !RangeFree(nil, 0, SlotsPerDay) {
		t.Error("empty day should accept any range")
	}
}

func TestRangeFree_IgnoresSynthetic(t *testing.T) {
	// A pending selection overlapping the candidate must not reject it:
	// dragging over your own selection restarts it.
	selecting := block(4, 8)
	selecting.Type = TypeSelecting
	selected := block(10, 12)
	selected.Type = TypeSelected

	existing := []Schedule{selecting, selected}
	if !RangeFree(existing, 5, 11) {
		t.Error("synthetic selection blocks must be excluded from validation")
	}
}
