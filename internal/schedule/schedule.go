// Package schedule defines the core domain types for roomgrid.
package schedule

import (
	"errors"
	"sort"
	"time"
)

// Validation errors.
var (
	ErrEndBeforeStart     = errors.New("end time must be after start time")
	ErrEmptyName          = errors.New("group name cannot be empty")
	ErrEmptyEmail         = errors.New("contact email cannot be empty")
	ErrEmptyComment       = errors.New("purpose cannot be empty")
	ErrInvalidRepeatCount = errors.New("repeat count must be between 1 and 15")
)

// Repeat count bounds for a reservation draft.
const (
	MinRepeatCount = 1
	MaxRepeatCount = 15
)

// Type classifies a schedule block on the timetable.
type Type int

const (
	// TypePast is a booking whose time has already passed.
	TypePast Type = iota
	// TypeUnverified is a booking awaiting confirmation.
	TypeUnverified
	// TypeUpcoming is a confirmed future booking.
	TypeUpcoming
	// TypeSelecting is the in-progress drag selection. Client-only.
	TypeSelecting
	// TypeSelected is the committed selection awaiting metadata. Client-only.
	TypeSelected
)

// String returns the type name for logs and debugging.
func (t Type) String() string {
	switch t {
	case TypePast:
		return "past"
	case TypeUnverified:
		return "unverified"
	case TypeUpcoming:
		return "upcoming"
	case TypeSelecting:
		return "selecting"
	case TypeSelected:
		return "selected"
	default:
		return "unknown"
	}
}

// Synthetic reports whether the type represents the client-side selection
// rather than a real booking. Synthetic blocks never reach the backend and
// never count as occupancy.
func (t Type) Synthetic() bool {
	return t == TypeSelecting || t == TypeSelected
}

// Schedule is one booking or placeholder block on the grid.
// Start < End always holds for well-formed schedules.
type Schedule struct {
	// ID and GroupID are zero for synthetic blocks; only server-originated
	// bookings carry them and only those respond to clicks.
	ID      int64
	GroupID int64

	Name  string
	Start time.Time
	End   time.Time
	Type  Type
}

// Interactive reports whether the block can be clicked for details.
func (s Schedule) Interactive() bool {
	return s.GroupID != 0 && !s.Type.Synthetic()
}

// Range is an absolute date-time selection, end exclusive.
type Range struct {
	Start time.Time
	End   time.Time
}

// Meta is the reservation form draft. It exists from the moment a drag
// completes on a valid future range until cancel or successful confirm.
type Meta struct {
	RepeatCount int
	Name        string
	Email       string
	PhoneNumber string
	Comment     string
}

// NewMeta returns a blank draft with the repeat count at its minimum.
func NewMeta() Meta {
	return Meta{RepeatCount: MinRepeatCount}
}

// Validate checks the draft for submission. Name, email and comment are
// required; the phone number is optional.
func (m Meta) Validate() error {
	if m.Name == "" {
		return ErrEmptyName
	}
	if m.Email == "" {
		return ErrEmptyEmail
	}
	if m.Comment == "" {
		return ErrEmptyComment
	}
	if m.RepeatCount < MinRepeatCount || m.RepeatCount > MaxRepeatCount {
		return ErrInvalidRepeatCount
	}
	return nil
}

// SortByStart sorts schedules ascending by start time, in place.
func SortByStart(list []Schedule) {
	sort.SliceStable(list, func(i, j int) bool {
		return list[i].Start.Before(list[j].Start)
	})
}
