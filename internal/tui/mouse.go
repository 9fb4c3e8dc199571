package tui

import (
	tea "github.com/charmbracelet/bubbletea"

	"roomgrid/internal/schedule"
	"roomgrid/internal/tui/commands"
)

// handleMouse routes mouse events into the drag state machine. A left
// press on a free cell starts a drag, motion extends it, and release
// finishes it. A release anywhere outside the starting column acts as
// the global mouse-up: the drag is dropped without a selection.
func (m *Model) handleMouse(msg tea.MouseMsg) (tea.Model, tea.Cmd) {
	switch msg.Button {
	case tea.MouseButtonWheelUp:
		m.layout.Offset--
		m.layout.Clamp()
		return m, nil
	case tea.MouseButtonWheelDown:
		m.layout.Offset++
		m.layout.Clamp()
		return m, nil
	}

	if msg.Button != tea.MouseButtonLeft {
		return m, nil
	}

	switch msg.Action {
	case tea.MouseActionPress:
		return m.handleMousePress(msg.X, msg.Y)
	case tea.MouseActionMotion:
		return m.handleMouseMotion(msg.X, msg.Y)
	case tea.MouseActionRelease:
		return m.handleMouseRelease(msg.X, msg.Y)
	}
	return m, nil
}

func (m *Model) handleMousePress(x, y int) (tea.Model, tea.Cmd) {
	if m.info != nil {
		m.info = nil
		return m, nil
	}
	if m.picker != nil {
		m.picker = nil
		return m, nil
	}

	day, idx, ok := m.layout.CellAt(x, y)
	if !ok {
		return m, nil
	}

	// Logged out, the grid is read-only: no detail lookups (the
	// backend would reject the empty token) and no drags.
	if m.disabled() {
		return m, m.setStatus("log in to use the timetable", true)
	}

	if s, occupied := m.grid.ScheduleAt(day, idx); occupied {
		return m, m.openScheduleInfo(s, x, y)
	}

	if m.submitting {
		return m, nil
	}

	debugLog("drag start day=%d idx=%d", day, idx)
	m.grid.StartDrag(day, idx)
	return m, nil
}

func (m *Model) handleMouseMotion(x, y int) (tea.Model, tea.Cmd) {
	day, idx, ok := m.layout.CellAt(x, y)
	if !ok {
		return m, nil
	}
	m.grid.UpdateDrag(day, idx)
	return m, nil
}

func (m *Model) handleMouseRelease(x, y int) (tea.Model, tea.Cmd) {
	day, idx, ok := m.layout.CellAt(x, y)
	if !ok {
		// Released outside the grid body.
		m.grid.CancelDrag()
		return m, nil
	}

	rng, result := m.grid.EndDrag(day, idx)
	switch result {
	case DragRejected:
		return m, m.setStatus("overlaps an existing reservation", true)

	case DragDone:
		if rng.Start.Before(m.now()) {
			// Reservations cannot start in the past; drop silently.
			debugLog("drag into past cancelled: %s", rng.Start)
			return m, nil
		}
		debugLog("selection %s - %s", rng.Start, rng.End)
		m.selection = &rng
		m.selectionDay = day
		m.form = NewMetaForm(rng)
	}
	return m, nil
}

// openScheduleInfo fetches the details behind a clicked booking block.
// Synthetic blocks carry no group to look up.
func (m *Model) openScheduleInfo(s schedule.Schedule, x, y int) tea.Cmd {
	if !s.Interactive() || m.infoWait {
		return nil
	}
	m.infoWait = true
	m.infoAnchor = [2]int{x, y}
	return commands.LoadGroupInfo(m.svc, m.token.Token, s.GroupID)
}
