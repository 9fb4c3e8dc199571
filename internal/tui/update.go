package tui

import (
	tea "github.com/charmbracelet/bubbletea"

	"roomgrid/internal/api"
	"roomgrid/internal/auth"
	"roomgrid/internal/schedule"
	"roomgrid/internal/tui/commands"
)

// Update handles all messages.
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		offset := m.layout.Offset
		m.layout = NewLayout(msg.Width, msg.Height)
		m.layout.Offset = offset
		m.layout.Clamp()
		return m, nil

	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.MouseMsg:
		return m.handleMouse(msg)

	case commands.WeekLoadedMsg:
		// A stale fetch from before a navigation must not clobber the
		// week on screen.
		if !msg.WeekStart.Equal(m.weekStart) {
			return m, nil
		}
		m.loading = false
		m.err = nil
		m.schedules = msg.Schedules
		m.grid.SetWeek(schedule.NewWeek(m.weekStart, m.schedules))
		return m, nil

	case commands.ScheduleAddedMsg:
		return m.handleScheduleAdded(msg)

	case commands.RoomsLoadedMsg:
		m.rooms = msg.Rooms
		m.categories = msg.Categories
		m.roomName = roomName(msg.Rooms, m.roomID)
		return m, nil

	case commands.TokenMsg:
		return m.handleToken(msg)

	case commands.TokenTickMsg:
		return m, tea.Batch(
			commands.RefreshToken(m.tokens),
			commands.TokenTick(tokenTickInterval),
		)

	case commands.GroupInfoMsg:
		m.infoWait = false
		if msg.Err != nil {
			return m, m.setStatus("details: "+msg.Err.Error(), true)
		}
		m.info = msg.Info
		return m, nil

	case commands.CopiedMsg:
		if msg.Err != nil {
			return m, m.setStatus("clipboard: "+msg.Err.Error(), true)
		}
		return m, m.setStatus("copied "+msg.Text, false)

	case commands.ClearStatusMsg:
		m.statusMsg = ""
		m.statusWarn = false
		return m, nil

	case commands.ErrMsg:
		m.loading = false
		m.err = msg.Err
		return m, m.setStatus(msg.Err.Error(), true)
	}

	// Remaining messages (cursor blink and friends) belong to the form.
	if m.form != nil {
		cmd, _ := m.form.Update(msg)
		return m, cmd
	}
	return m, nil
}

func (m *Model) handleScheduleAdded(msg commands.ScheduleAddedMsg) (tea.Model, tea.Cmd) {
	m.submitting = false
	if msg.Err != nil {
		// Roll the optimistic block back; the server rejected it.
		m.clearSelection()
		return m, m.setStatus("reservation failed: "+msg.Err.Error(), true)
	}
	m.clearSelection()
	m.loading = true
	return m, tea.Batch(
		m.setStatus("reserved", false),
		commands.LoadWeek(m.svc, m.roomID, m.weekStart),
	)
}

func (m *Model) handleToken(msg commands.TokenMsg) (tea.Model, tea.Cmd) {
	if msg.Err != nil {
		m.token = auth.State{}
		return m, m.setStatus("login check failed: "+msg.Err.Error(), true)
	}
	m.token = msg.State
	if !m.token.LoggedIn() && m.selection != nil && !m.submitting {
		// The session ended under a pending selection; it can no
		// longer be confirmed.
		m.clearSelection()
		return m, m.setStatus("logged out", true)
	}
	return m, nil
}

// shiftWeek navigates delta weeks away and refetches.
func (m *Model) shiftWeek(delta int) tea.Cmd {
	m.weekStart = m.weekStart.AddDate(0, 0, delta*schedule.DaysPerWeek)
	return m.reload()
}

// reload refetches the current week.
func (m *Model) reload() tea.Cmd {
	m.loading = true
	m.clearSelection()
	m.grid.SetWeek(schedule.NewWeek(m.weekStart, nil))
	m.info = nil
	return commands.LoadWeek(m.svc, m.roomID, m.weekStart)
}

// buildAddRequest maps a confirmed selection into the wire request.
func buildAddRequest(roomID int64, rng schedule.Range, meta schedule.Meta) api.AddScheduleReq {
	return api.AddScheduleReq{
		RoomID:         roomID,
		Reservee:       meta.Name,
		Email:          meta.Email,
		PhoneNumber:    meta.PhoneNumber,
		Reason:         meta.Comment,
		Repeats:        meta.RepeatCount,
		StartTimestamp: rng.Start.Unix(),
		EndTimestamp:   rng.End.Unix(),
	}
}

func roomName(rooms []api.Room, id int64) string {
	for _, r := range rooms {
		if r.ID == id {
			return r.Name
		}
	}
	return ""
}
