// Package commands provides TUI command constructors and message types.
package commands

import (
	"context"
	"fmt"
	"time"

	"github.com/atotto/clipboard"
	tea "github.com/charmbracelet/bubbletea"

	"roomgrid/internal/api"
	"roomgrid/internal/auth"
	"roomgrid/internal/schedule"
)

// WeekLoadedMsg is sent when a week of schedules is loaded.
type WeekLoadedMsg struct {
	WeekStart time.Time
	Schedules []schedule.Schedule
}

// ScheduleAddedMsg is sent when a reservation submit completes.
type ScheduleAddedMsg struct {
	Err error
}

// RoomsLoadedMsg is sent when the room list is loaded.
type RoomsLoadedMsg struct {
	Rooms      []api.Room
	Categories []api.Category
}

// TokenMsg is sent when the login token state is refreshed.
type TokenMsg struct {
	State auth.State
	Err   error
}

// GroupInfoMsg is sent when reservation group details arrive.
type GroupInfoMsg struct {
	Info *api.GroupInfo
	Err  error
}

// CopiedMsg is sent after a clipboard copy attempt.
type CopiedMsg struct {
	Text string
	Err  error
}

// ErrMsg is sent when an error occurs.
type ErrMsg struct {
	Err error
}

// ClearStatusMsg is sent to clear the status message.
type ClearStatusMsg struct{}

// TokenTickMsg asks the model to re-check token freshness.
type TokenTickMsg struct{}

// LoadWeek loads all schedules of one week for a room.
func LoadWeek(svc api.Service, roomID int64, weekStart time.Time) tea.Cmd {
	return func() tea.Msg {
		ctx := context.Background()
		end := weekStart.AddDate(0, 0, schedule.DaysPerWeek)

		schedules, err := svc.ListSchedules(ctx, roomID, weekStart, end)
		if err != nil {
			return ErrMsg{Err: fmt.Errorf("loading schedules: %w", err)}
		}

		return WeekLoadedMsg{WeekStart: weekStart, Schedules: schedules}
	}
}

// AddSchedule submits a reservation. The error, if any, travels in the
// message so the model can roll back its optimistic block.
func AddSchedule(svc api.Service, token string, req api.AddScheduleReq) tea.Cmd {
	return func() tea.Msg {
		err := svc.AddSchedule(context.Background(), token, req)
		return ScheduleAddedMsg{Err: err}
	}
}

// LoadRooms loads the room and category listing.
func LoadRooms(svc api.Service) tea.Cmd {
	return func() tea.Msg {
		rooms, categories, err := svc.ListRooms(context.Background())
		if err != nil {
			return ErrMsg{Err: fmt.Errorf("loading rooms: %w", err)}
		}
		return RoomsLoadedMsg{Rooms: rooms, Categories: categories}
	}
}

// RefreshToken refreshes the login token if it is near expiry.
func RefreshToken(src *auth.Source) tea.Cmd {
	return func() tea.Msg {
		state, err := src.Refresh(context.Background())
		return TokenMsg{State: state, Err: err}
	}
}

// LoadGroupInfo fetches the details behind a clicked reservation block.
func LoadGroupInfo(svc api.Service, token string, groupID int64) tea.Cmd {
	return func() tea.Msg {
		info, err := svc.ScheduleInfo(context.Background(), token, groupID)
		return GroupInfoMsg{Info: info, Err: err}
	}
}

// CopyText copies text to the system clipboard.
func CopyText(text string) tea.Cmd {
	return func() tea.Msg {
		return CopiedMsg{Text: text, Err: clipboard.WriteAll(text)}
	}
}

// ClearStatusAfter clears the status line after a delay.
func ClearStatusAfter(d time.Duration) tea.Cmd {
	return tea.Tick(d, func(time.Time) tea.Msg {
		return ClearStatusMsg{}
	})
}

// TokenTick schedules the next periodic token freshness check.
func TokenTick(d time.Duration) tea.Cmd {
	return tea.Tick(d, func(time.Time) tea.Msg {
		return TokenTickMsg{}
	})
}
