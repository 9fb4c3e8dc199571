package tui

import (
	"testing"

	"roomgrid/internal/schedule"
)

func TestLayoutCellAt(t *testing.T) {
	l := NewLayout(120, 40) // tall enough for all 30 rows

	tests := []struct {
		name     string
		x, y     int
		wantDay  int
		wantIdx  int
		wantOK   bool
	}{
		{"first cell", axisWidth, headerLines, 0, 0, true},
		{"inside first column", axisWidth + 2, headerLines + 5, 0, 5, true},
		{"second column", axisWidth + l.ColWidth, headerLines, 1, 0, true},
		{"last column", axisWidth + 6*l.ColWidth, headerLines + 29, 6, 29, true},
		{"time axis", 0, headerLines + 3, 0, 0, false},
		{"header row", axisWidth, 0, 0, 0, false},
		{"below grid", axisWidth, headerLines + schedule.SlotsPerDay, 0, 0, false},
		{"past last column", axisWidth + 7*l.ColWidth, headerLines, 0, 0, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			day, idx, ok := l.CellAt(tt.x, tt.y)
			if ok != tt.wantOK {
				t.Fatalf("ok = %v, want %v", ok, tt.wantOK)
			}
			if ok && (day != tt.wantDay || idx != tt.wantIdx) {
				t.Errorf("cell = (%d,%d), want (%d,%d)", day, idx, tt.wantDay, tt.wantIdx)
			}
		})
	}
}

func TestLayoutScrollOffset(t *testing.T) {
	l := NewLayout(120, 14) // only 10 slot rows visible
	if got := l.VisibleRows(); got != 10 {
		t.Fatalf("VisibleRows = %d, want 10", got)
	}
	if got := l.MaxOffset(); got != schedule.SlotsPerDay-10 {
		t.Fatalf("MaxOffset = %d, want %d", got, schedule.SlotsPerDay-10)
	}

	l.Offset = 5
	_, idx, ok := l.CellAt(axisWidth, headerLines)
	if !ok || idx != 5 {
		t.Errorf("scrolled first row idx = %d ok=%v, want 5 true", idx, ok)
	}

	l.Offset = 100
	l.Clamp()
	if l.Offset != l.MaxOffset() {
		t.Errorf("Clamp left offset at %d, want %d", l.Offset, l.MaxOffset())
	}
}

func TestLayoutNarrowTerminalMinColumnWidth(t *testing.T) {
	l := NewLayout(30, 40)
	if l.ColWidth != minColWidth {
		t.Errorf("ColWidth = %d, want clamp to %d", l.ColWidth, minColWidth)
	}
}
