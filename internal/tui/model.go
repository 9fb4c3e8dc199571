// Package tui provides the terminal user interface for roomgrid.
package tui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"roomgrid/internal/api"
	"roomgrid/internal/auth"
	"roomgrid/internal/config"
	"roomgrid/internal/dateutil"
	"roomgrid/internal/schedule"
	"roomgrid/internal/tui/commands"
	"roomgrid/internal/tui/theme"
)

// How often the model re-checks token freshness.
const tokenTickInterval = 15 * time.Second

// How long transient status messages stay visible.
const statusTimeout = 4 * time.Second

// Model is the main TUI model.
type Model struct {
	// Dependencies
	svc    api.Service
	tokens *auth.Source
	config *config.Config

	// Theme and styles
	theme  *theme.Theme
	styles *Styles

	// Clock, swappable in tests
	now func() time.Time

	// Week state
	weekStart time.Time
	schedules []schedule.Schedule
	grid      *Grid
	loading   bool

	// Room state
	roomID     int64
	roomName   string
	rooms      []api.Room
	categories []api.Category

	// Selection state. selection is the committed range awaiting
	// confirmation; form collects its metadata. optimistic marks a
	// submitted block that the server has not acknowledged yet.
	selection    *schedule.Range
	selectionDay int
	form         *MetaForm
	submitting   bool

	// Info popup for a clicked booking
	info       *api.GroupInfo
	infoAnchor [2]int
	infoWait   bool

	// Room picker modal
	picker *RoomPicker

	// Login state
	token auth.State

	// Terminal dimensions and layout
	width  int
	height int
	layout Layout

	// Messages
	statusMsg  string
	statusWarn bool

	// Error state
	err error
}

// ModelOption configures optional model behavior.
type ModelOption func(*Model)

// WithWeek opens the timetable on the week containing t instead of the
// current one.
func WithWeek(t time.Time) ModelOption {
	return func(m *Model) {
		m.weekStart = dateutil.StartOfWeek(t)
		m.grid = NewGrid(schedule.NewWeek(m.weekStart, nil))
	}
}

// New creates a new TUI model.
func New(svc api.Service, tokens *auth.Source, cfg *config.Config, roomID int64, opts ...ModelOption) *Model {
	t, err := theme.Load(cfg.UI.Theme)
	if err != nil {
		t, _ = theme.Load("mocha")
	}

	now := time.Now
	weekStart := dateutil.StartOfWeek(now())

	m := &Model{
		svc:       svc,
		tokens:    tokens,
		config:    cfg,
		theme:     t,
		styles:    NewStyles(t),
		now:       now,
		weekStart: weekStart,
		grid:      NewGrid(schedule.NewWeek(weekStart, nil)),
		roomID:    roomID,
		loading:   true,
		layout:    NewLayout(0, 0),
	}

	for _, opt := range opts {
		opt(m)
	}
	return m
}

// Init initializes the model.
func (m *Model) Init() tea.Cmd {
	return tea.Batch(
		commands.LoadWeek(m.svc, m.roomID, m.weekStart),
		commands.LoadRooms(m.svc),
		commands.RefreshToken(m.tokens),
		commands.TokenTick(tokenTickInterval),
	)
}

// disabled reports whether grid interactions are off. Selections need
// a live login; viewing the week does not.
func (m *Model) disabled() bool {
	return !m.token.LoggedIn()
}

// clearSelection drops the pending selection and its form.
func (m *Model) clearSelection() {
	m.selection = nil
	m.form = nil
	m.submitting = false
}

// setStatus shows a transient status line message.
func (m *Model) setStatus(msg string, warn bool) tea.Cmd {
	m.statusMsg = msg
	m.statusWarn = warn
	return commands.ClearStatusAfter(statusTimeout)
}

// Run starts the TUI.
func Run(svc api.Service, tokens *auth.Source, cfg *config.Config, roomID int64, opts ...ModelOption) error {
	return RunWithDebug(svc, tokens, cfg, roomID, false, opts...)
}

// RunWithDebug starts the TUI with optional debug logging.
func RunWithDebug(svc api.Service, tokens *auth.Source, cfg *config.Config, roomID int64, debug bool, opts ...ModelOption) error {
	if err := InitDebugLogger(debug); err != nil {
		return err
	}
	defer CloseDebugLogger()

	model := New(svc, tokens, cfg, roomID, opts...)
	p := tea.NewProgram(model, tea.WithAltScreen(), tea.WithMouseCellMotion())
	_, err := p.Run()
	return err
}
