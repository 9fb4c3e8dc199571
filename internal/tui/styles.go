package tui

import (
	"github.com/charmbracelet/lipgloss"

	"roomgrid/internal/schedule"
	"roomgrid/internal/tui/theme"
)

// Styles holds all lipgloss styles used by the timetable view,
// derived from a theme.
type Styles struct {
	Title     lipgloss.Style
	Subtitle  lipgloss.Style
	TimeAxis  lipgloss.Style
	DayHeader lipgloss.Style
	Today     lipgloss.Style
	HourLine lipgloss.Style

	BlockPast      lipgloss.Style
	BlockBooked    lipgloss.Style
	BlockSelecting lipgloss.Style
	BlockSelected  lipgloss.Style

	Status     lipgloss.Style
	StatusWarn lipgloss.Style
	Help       lipgloss.Style

	Popup      lipgloss.Style
	PopupTitle lipgloss.Style
	Label      lipgloss.Style
	Value      lipgloss.Style
}

// NewStyles builds the style set for a theme.
func NewStyles(t *theme.Theme) *Styles {
	fill := lipgloss.Color(t.TextOnFill)

	return &Styles{
		Title:     lipgloss.NewStyle().Foreground(lipgloss.Color(t.Accent)).Bold(true),
		Subtitle:  lipgloss.NewStyle().Foreground(lipgloss.Color(t.FgMuted)),
		TimeAxis:  lipgloss.NewStyle().Foreground(lipgloss.Color(t.FgMuted)),
		DayHeader: lipgloss.NewStyle().Foreground(lipgloss.Color(t.Fg)).Bold(true).Align(lipgloss.Center),
		Today: lipgloss.NewStyle().Foreground(lipgloss.Color(t.Accent)).
			Background(lipgloss.Color(t.BgSelection)).Bold(true).Align(lipgloss.Center),
		HourLine: lipgloss.NewStyle().Foreground(lipgloss.Color(t.BgHighlight)),

		BlockPast:      lipgloss.NewStyle().Foreground(fill).Background(lipgloss.Color(t.Past)),
		BlockBooked:    lipgloss.NewStyle().Foreground(fill).Background(lipgloss.Color(t.Booked)),
		BlockSelecting: lipgloss.NewStyle().Foreground(fill).Background(lipgloss.Color(t.Selecting)),
		BlockSelected:  lipgloss.NewStyle().Foreground(fill).Background(lipgloss.Color(t.Selected)),

		Status:     lipgloss.NewStyle().Foreground(lipgloss.Color(t.Fg)),
		StatusWarn: lipgloss.NewStyle().Foreground(lipgloss.Color(t.Warning)).Bold(true),
		Help:       lipgloss.NewStyle().Foreground(lipgloss.Color(t.FgMuted)),

		Popup: lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color(t.Accent)).
			Background(lipgloss.Color(t.BgHighlight)).
			Padding(0, 1),
		PopupTitle: lipgloss.NewStyle().Foreground(lipgloss.Color(t.Accent)).Bold(true),
		Label:      lipgloss.NewStyle().Foreground(lipgloss.Color(t.FgMuted)),
		Value:      lipgloss.NewStyle().Foreground(lipgloss.Color(t.Fg)),
	}
}

// Block returns the style for a schedule block of the given type.
func (s *Styles) Block(t schedule.Type) lipgloss.Style {
	switch t {
	case schedule.TypePast:
		return s.BlockPast
	case schedule.TypeUnverified, schedule.TypeUpcoming:
		return s.BlockBooked
	case schedule.TypeSelecting:
		return s.BlockSelecting
	case schedule.TypeSelected:
		return s.BlockSelected
	}
	return s.BlockBooked
}
