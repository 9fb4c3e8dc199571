package dateutil

import (
	"testing"
	"time"
)

func TestStartOfWeek(t *testing.T) {
	tests := []struct {
		name string
		in   time.Time
		want time.Time
	}{
		{
			name: "wednesday",
			in:   time.Date(2025, 1, 15, 14, 30, 0, 0, time.UTC),
			want: time.Date(2025, 1, 13, 0, 0, 0, 0, time.UTC),
		},
		{
			name: "monday stays",
			in:   time.Date(2025, 1, 13, 0, 0, 0, 0, time.UTC),
			want: time.Date(2025, 1, 13, 0, 0, 0, 0, time.UTC),
		},
		{
			name: "sunday belongs to previous monday",
			in:   time.Date(2025, 1, 19, 23, 59, 0, 0, time.UTC),
			want: time.Date(2025, 1, 13, 0, 0, 0, 0, time.UTC),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := StartOfWeek(tt.in)
			if !got.Equal(tt.want) {
				t.Errorf("StartOfWeek(%v) = %v, want %v", tt.in, got, tt.want)
			}
		})
	}
}

func TestParseDate(t *testing.T) {
	got, err := ParseDate("2024-01-01")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	want := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	if !got.Equal(want) {
		t.Errorf("ParseDate = %v, want %v", got, want)
	}

	if _, err := ParseDate("01/01/2024"); err != ErrInvalidDateFormat {
		t.Errorf("expected ErrInvalidDateFormat, got %v", err)
	}
}

func TestParseDate_EmptyIsToday(t *testing.T) {
	got, err := ParseDate("")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !SameDay(got, time.Now()) {
		t.Errorf("empty date should be today, got %v", got)
	}
	if got.Hour() != 0 || got.Minute() != 0 {
		t.Errorf("expected midnight, got %v", got)
	}
}

func TestSameDay(t *testing.T) {
	a := time.Date(2025, 3, 10, 8, 0, 0, 0, time.UTC)
	b := time.Date(2025, 3, 10, 22, 30, 0, 0, time.UTC)
	c := time.Date(2025, 3, 11, 0, 0, 0, 0, time.UTC)

	if !SameDay(a, b) {
		t.Error("expected same day for a and b")
	}
	if SameDay(a, c) {
		t.Error("expected different days for a and c")
	}
}
