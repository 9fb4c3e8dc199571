package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"roomgrid/internal/api"
	"roomgrid/internal/dateutil"
	"roomgrid/internal/schedule"
)

// FormAction is the result of feeding a key to the metadata form.
type FormAction int

const (
	FormContinue FormAction = iota
	FormSubmit
	FormCancel
)

const (
	fieldName = iota
	fieldEmail
	fieldPhone
	fieldComment
	fieldRepeat
	fieldCount
)

// MetaForm collects reservee details for a pending selection.
type MetaForm struct {
	inputs  [4]textinput.Model
	repeat  int
	focus   int
	rng     schedule.Range
	errText string
}

// NewMetaForm builds a blank form for the selected range.
func NewMetaForm(rng schedule.Range) *MetaForm {
	f := &MetaForm{rng: rng, repeat: schedule.MinRepeatCount}

	labels := [4]string{"name", "email", "phone", "purpose"}
	for i := range f.inputs {
		in := textinput.New()
		in.Placeholder = labels[i]
		in.CharLimit = 100
		in.Width = 28
		in.Prompt = ""
		f.inputs[i] = in
	}
	f.inputs[fieldName].Focus()
	return f
}

// Range returns the slot range the form is for.
func (f *MetaForm) Range() schedule.Range { return f.rng }

// Meta returns the collected metadata.
func (f *MetaForm) Meta() schedule.Meta {
	return schedule.Meta{
		RepeatCount: f.repeat,
		Name:        strings.TrimSpace(f.inputs[fieldName].Value()),
		Email:       strings.TrimSpace(f.inputs[fieldEmail].Value()),
		PhoneNumber: strings.TrimSpace(f.inputs[fieldPhone].Value()),
		Comment:     strings.TrimSpace(f.inputs[fieldComment].Value()),
	}
}

// Update feeds a message to the form and reports whether the form is
// done. On FormSubmit the metadata has already passed validation.
func (f *MetaForm) Update(msg tea.Msg) (tea.Cmd, FormAction) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return f.updateInputs(msg), FormContinue
	}

	switch keyMsg.String() {
	case "esc":
		return nil, FormCancel

	case "enter":
		meta := f.Meta()
		if err := meta.Validate(); err != nil {
			f.errText = err.Error()
			return nil, FormContinue
		}
		return nil, FormSubmit

	case "tab", "down":
		f.setFocus((f.focus + 1) % fieldCount)
		return nil, FormContinue

	case "shift+tab", "up":
		f.setFocus((f.focus + fieldCount - 1) % fieldCount)
		return nil, FormContinue
	}

	if f.focus == fieldRepeat {
		switch keyMsg.String() {
		case "left", "-":
			if f.repeat > schedule.MinRepeatCount {
				f.repeat--
			}
		case "right", "+":
			if f.repeat < schedule.MaxRepeatCount {
				f.repeat++
			}
		}
		return nil, FormContinue
	}

	f.errText = ""
	return f.updateInputs(msg), FormContinue
}

func (f *MetaForm) updateInputs(msg tea.Msg) tea.Cmd {
	if f.focus >= len(f.inputs) {
		return nil
	}
	var cmd tea.Cmd
	f.inputs[f.focus], cmd = f.inputs[f.focus].Update(msg)
	return cmd
}

func (f *MetaForm) setFocus(focus int) {
	f.focus = focus
	for i := range f.inputs {
		if i == focus {
			f.inputs[i].Focus()
		} else {
			f.inputs[i].Blur()
		}
	}
}

// View renders the form popup body.
func (f *MetaForm) View(s *Styles) string {
	var b strings.Builder

	b.WriteString(s.PopupTitle.Render("New reservation"))
	b.WriteString("\n")
	b.WriteString(s.Value.Render(fmt.Sprintf("%s  %s - %s",
		dateutil.FormatDay(f.rng.Start),
		dateutil.FormatClock(f.rng.Start),
		dateutil.FormatClock(f.rng.End))))
	b.WriteString("\n\n")

	labels := [4]string{"Name   ", "Email  ", "Phone  ", "Purpose"}
	for i, in := range f.inputs {
		b.WriteString(s.Label.Render(labels[i] + " "))
		b.WriteString(in.View())
		b.WriteString("\n")
	}

	repeat := fmt.Sprintf("< %d >", f.repeat)
	if f.focus == fieldRepeat {
		repeat = s.PopupTitle.Render(repeat)
	} else {
		repeat = s.Value.Render(repeat)
	}
	b.WriteString(s.Label.Render("Repeat  "))
	b.WriteString(repeat)
	b.WriteString(s.Label.Render(" weeks"))
	b.WriteString("\n")

	if f.errText != "" {
		b.WriteString(s.StatusWarn.Render(f.errText))
		b.WriteString("\n")
	}
	b.WriteString(s.Help.Render("enter confirm · esc cancel · tab next"))

	return s.Popup.Render(b.String())
}

// infoPopupView renders the details popup for a clicked reservation.
func infoPopupView(s *Styles, info api.GroupInfo) string {
	var b strings.Builder

	b.WriteString(s.PopupTitle.Render("Reservation"))
	b.WriteString("\n\n")

	rows := []struct{ label, value string }{
		{"Name   ", info.Reservee},
		{"Email  ", info.Email},
		{"Phone  ", info.PhoneNumber},
		{"Purpose", info.Reason},
	}
	for _, r := range rows {
		if r.value == "" {
			continue
		}
		b.WriteString(s.Label.Render(r.label + " "))
		b.WriteString(s.Value.Render(r.value))
		b.WriteString("\n")
	}
	b.WriteString("\n")
	b.WriteString(s.Help.Render("esc close"))

	return s.Popup.Render(b.String())
}
