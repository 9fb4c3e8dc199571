package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"roomgrid/internal/dateutil"
	"roomgrid/internal/schedule"
)

// View renders the whole screen: header, timetable grid, footer, and
// any floating popup spliced on top.
func (m *Model) View() string {
	if m.width == 0 || m.height == 0 {
		return "loading..."
	}

	var b strings.Builder
	b.WriteString(m.titleLine())
	b.WriteString("\n")
	b.WriteString(m.dayHeaderLine())
	b.WriteString("\n")

	visible := m.layout.VisibleRows()
	for row := 0; row < visible; row++ {
		b.WriteString(m.gridRow(m.layout.Offset + row))
		if row < visible-1 {
			b.WriteString("\n")
		}
	}

	b.WriteString("\n")
	b.WriteString(m.helpLine())
	b.WriteString("\n")
	b.WriteString(m.statusLine())

	base := b.String()
	return m.withPopup(base)
}

func (m *Model) titleLine() string {
	title := m.styles.Title.Render("roomgrid")

	room := m.roomName
	if room == "" {
		room = fmt.Sprintf("room %d", m.roomID)
	}

	weekEnd := m.weekStart.AddDate(0, 0, schedule.DaysPerWeek-1)
	span := fmt.Sprintf("%s - %s", dateutil.FormatDay(m.weekStart), dateutil.FormatDay(weekEnd))

	login := "logged out"
	if m.token.LoggedIn() {
		login = "logged in as " + m.token.Payload.Username
	}

	return title + m.styles.Subtitle.Render("  "+room+"  ·  "+span+"  ·  "+login)
}

func (m *Model) dayHeaderLine() string {
	var b strings.Builder
	b.WriteString(strings.Repeat(" ", axisWidth))

	today := dateutil.TruncateToDay(m.now())
	for day := 0; day < schedule.DaysPerWeek; day++ {
		date := m.grid.DayDate(day)
		label := date.Format("Mon 02")

		style := m.styles.DayHeader
		if dateutil.SameDay(date, today) {
			style = m.styles.Today
		}
		b.WriteString(style.Width(m.layout.ColWidth).Render(label))
	}
	return b.String()
}

// gridRow renders one half-hour slot row across all seven columns.
func (m *Model) gridRow(idx int) string {
	var b strings.Builder

	// Hour labels only on the hour, matching the left axis of a paper
	// timetable.
	if idx%2 == 0 {
		b.WriteString(m.styles.TimeAxis.Render(fmt.Sprintf("%02d:00 ", schedule.DayStartHour+idx/2)))
	} else {
		b.WriteString(strings.Repeat(" ", axisWidth))
	}

	for day := 0; day < schedule.DaysPerWeek; day++ {
		b.WriteString(m.cell(day, idx))
	}
	return b.String()
}

// cell renders one timetable cell: a slice of a schedule block, the
// drag preview, or empty space.
func (m *Model) cell(day, idx int) string {
	cellW := m.layout.ColWidth - 1

	// Drag in progress paints over everything in its column.
	if from, to, ok := m.grid.Preview(day); ok && idx >= from && idx < to {
		label := ""
		if idx == from {
			label = clockSpan(m.grid.RangeOf(day, from, to))
		}
		return m.styles.BlockSelecting.Width(cellW).Render(truncate(label, cellW)) + " "
	}

	for _, s := range m.displayDay(day) {
		if idx < s.StartIndex() || idx >= s.EndIndex() {
			continue
		}
		label := ""
		if idx == s.StartIndex() {
			label = blockLabel(s, m.submitting)
		}
		return m.styles.Block(s.Type).Width(cellW).Render(truncate(label, cellW)) + " "
	}

	if idx%2 == 0 {
		return m.styles.HourLine.Render(strings.Repeat("┄", cellW)) + " "
	}
	return strings.Repeat(" ", m.layout.ColWidth)
}

// displayDay returns the schedules to draw in a column, including the
// synthetic block for a committed selection.
func (m *Model) displayDay(day int) []schedule.Schedule {
	return m.grid.Week().WithSelection(day, m.selection, true)
}

func blockLabel(s schedule.Schedule, submitting bool) string {
	switch s.Type {
	case schedule.TypeSelected:
		if submitting {
			return "reserving..."
		}
		return "new reservation"
	case schedule.TypeSelecting:
		return ""
	}
	return s.Name
}

func clockSpan(rng schedule.Range) string {
	return dateutil.FormatClock(rng.Start) + "-" + dateutil.FormatClock(rng.End)
}

func (m *Model) helpLine() string {
	help := "drag: reserve · click: details · h/l: week · t: today · p: rooms · r: reload · y: copy · q: quit"
	if m.form != nil {
		help = "tab: next field · enter: confirm · esc: cancel"
	}
	return m.styles.Help.Render(truncate(help, m.width))
}

func (m *Model) statusLine() string {
	switch {
	case m.statusMsg != "":
		style := m.styles.Status
		if m.statusWarn {
			style = m.styles.StatusWarn
		}
		return style.Render(truncate(m.statusMsg, m.width))
	case m.loading:
		return m.styles.Subtitle.Render("loading...")
	case m.infoWait:
		return m.styles.Subtitle.Render("fetching details...")
	}
	return ""
}

// withPopup splices the active popup over the base view, anchored next
// to what it describes.
func (m *Model) withPopup(base string) string {
	switch {
	case m.form != nil && m.selection != nil:
		popup := m.form.View(m.styles)
		anchorX := axisWidth + (m.selectionDay+1)*m.layout.ColWidth
		anchorY := headerLines + schedule.ToIndex(m.selection.Start) - m.layout.Offset
		return placePopup(base, m.width, m.height, popup, anchorX, anchorY)

	case m.info != nil:
		popup := infoPopupView(m.styles, *m.info)
		return placePopup(base, m.width, m.height, popup, m.infoAnchor[0]+1, m.infoAnchor[1])

	case m.picker != nil:
		popup := m.picker.View(m.styles, m.categories)
		return placePopup(base, m.width, m.height, popup, axisWidth+m.layout.ColWidth, headerLines+1)
	}
	return base
}

func truncate(s string, max int) string {
	if max <= 0 {
		return ""
	}
	if lipgloss.Width(s) <= max {
		return s
	}
	runes := []rune(s)
	if len(runes) <= max {
		return s
	}
	return string(runes[:max-1]) + "…"
}
