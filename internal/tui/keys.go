package tui

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"

	"roomgrid/internal/dateutil"
	"roomgrid/internal/tui/commands"
)

// handleKey routes key presses. The metadata form, when open, consumes
// everything except quit.
func (m *Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if msg.String() == "ctrl+c" {
		return m, tea.Quit
	}

	if m.info != nil {
		switch msg.String() {
		case "esc", "enter", "q":
			m.info = nil
		}
		return m, nil
	}

	if m.picker != nil {
		return m.handlePickerKey(msg)
	}

	if m.form != nil {
		return m.handleFormKey(msg)
	}

	switch msg.String() {
	case "q":
		return m, tea.Quit

	case "left", "h":
		return m, m.shiftWeek(-1)

	case "right", "l":
		return m, m.shiftWeek(1)

	case "t":
		m.weekStart = dateutil.StartOfWeek(m.now())
		return m, m.reload()

	case "r":
		return m, m.reload()

	case "p":
		if len(m.rooms) == 0 {
			return m, m.setStatus("room list not loaded yet", true)
		}
		m.picker = NewRoomPicker(m.rooms, m.roomID)
		return m, nil

	case "esc":
		if m.grid.CancelDrag() {
			return m, nil
		}
		if m.selection != nil && !m.submitting {
			m.clearSelection()
		}
		return m, nil

	case "up", "k":
		m.layout.Offset--
		m.layout.Clamp()
		return m, nil

	case "down", "j":
		m.layout.Offset++
		m.layout.Clamp()
		return m, nil

	case "y":
		if m.selection == nil {
			return m, nil
		}
		text := fmt.Sprintf("%s %s - %s",
			dateutil.FormatDay(m.selection.Start),
			dateutil.FormatClock(m.selection.Start),
			dateutil.FormatClock(m.selection.End))
		return m, commands.CopyText(text)
	}

	return m, nil
}

// handlePickerKey drives the room picker modal.
func (m *Model) handlePickerKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "esc", "q", "p":
		m.picker = nil

	case "up", "k":
		m.picker.Move(-1)

	case "down", "j":
		m.picker.Move(1)

	case "enter":
		room, ok := m.picker.Selected()
		m.picker = nil
		if !ok || room.ID == m.roomID {
			return m, nil
		}
		m.roomID = room.ID
		m.roomName = room.Name
		return m, m.reload()
	}
	return m, nil
}

// handleFormKey feeds a key to the metadata form and reacts to its
// outcome.
func (m *Model) handleFormKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	cmd, action := m.form.Update(msg)
	switch action {
	case FormCancel:
		m.clearSelection()
		return m, nil

	case FormSubmit:
		return m, m.submitSelection()
	}
	return m, cmd
}

// submitSelection turns the validated form into a reservation request.
// The selection block stays on the grid as an optimistic render until
// the server answers.
func (m *Model) submitSelection() tea.Cmd {
	if m.selection == nil || m.form == nil {
		return nil
	}
	meta := m.form.Meta()
	req := buildAddRequest(m.roomID, *m.selection, meta)

	m.form = nil
	m.submitting = true
	return commands.AddSchedule(m.svc, m.token.Token, req)
}
