package tui

import (
	"fmt"
	"strings"

	"roomgrid/internal/api"
)

// RoomPicker is the modal list for switching rooms without leaving the
// timetable.
type RoomPicker struct {
	rooms  []api.Room
	cursor int
}

// NewRoomPicker builds a picker over the fetched room list, starting on
// the room currently open.
func NewRoomPicker(rooms []api.Room, currentID int64) *RoomPicker {
	p := &RoomPicker{rooms: rooms}
	for i, r := range rooms {
		if r.ID == currentID {
			p.cursor = i
			break
		}
	}
	return p
}

// Move steps the cursor, clamped to the list.
func (p *RoomPicker) Move(delta int) {
	p.cursor += delta
	if p.cursor < 0 {
		p.cursor = 0
	}
	if p.cursor >= len(p.rooms) {
		p.cursor = len(p.rooms) - 1
	}
}

// Selected returns the room under the cursor.
func (p *RoomPicker) Selected() (api.Room, bool) {
	if len(p.rooms) == 0 {
		return api.Room{}, false
	}
	return p.rooms[p.cursor], true
}

// View renders the picker popup body. Category names come from the
// room listing; rooms keep their fetch order.
func (p *RoomPicker) View(s *Styles, categories []api.Category) string {
	var b strings.Builder
	b.WriteString(s.PopupTitle.Render("Rooms"))
	b.WriteString("\n\n")

	if len(p.rooms) == 0 {
		b.WriteString(s.Label.Render("no rooms"))
	}
	for i, r := range p.rooms {
		line := r.Name
		if c := categoryName(categories, r.CategoryID); c != "" {
			line += "  " + c
		}
		if r.Seats > 0 {
			line += fmt.Sprintf("  (%d seats)", r.Seats)
		}
		if i == p.cursor {
			b.WriteString(s.PopupTitle.Render("> " + line))
		} else {
			b.WriteString(s.Value.Render("  " + line))
		}
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(s.Help.Render("enter open · esc close"))
	return s.Popup.Render(b.String())
}

func categoryName(categories []api.Category, id int64) string {
	for _, c := range categories {
		if c.ID == id {
			return c.Name
		}
	}
	return ""
}
