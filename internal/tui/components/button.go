// Package components provides reusable TUI components for nullfill.
package components

import (
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/dbmrq/nullfill/internal/tui/styles"
)

// ButtonStyle represents the visual style of a button.
type ButtonStyle int

const (
	// ButtonStylePrimary is the default button style.
	ButtonStylePrimary ButtonStyle = iota
	// ButtonStyleSecondary is a less prominent button style.
	ButtonStyleSecondary
)

// Button is a focusable button component.
type Button struct {
	label    string
	focused  bool
	disabled bool
	id       string
	style    ButtonStyle
}

// NewButton creates a new Button component.
func NewButton(id, label string) *Button {
	return &Button{
		label: label,
		id:    id,
		style: ButtonStylePrimary,
	}
}

// ID returns the component's unique identifier.
func (b *Button) ID() string {
	return b.id
}

// Focus focuses the button.
func (b *Button) Focus() tea.Cmd {
	b.focused = true
	return nil
}

// Blur removes focus from the button.
func (b *Button) Blur() {
	b.focused = false
}

// Focused returns whether the button is focused.
func (b *Button) Focused() bool {
	return b.focused
}

// SetDisabled enables or disables activation.
func (b *Button) SetDisabled(disabled bool) {
	b.disabled = disabled
}

// Disabled reports whether the button ignores activation.
func (b *Button) Disabled() bool {
	return b.disabled
}

// SetStyle sets the button style.
func (b *Button) SetStyle(style ButtonStyle) {
	b.style = style
}

// SetLabel sets the button label.
func (b *Button) SetLabel(label string) {
	b.label = label
}

// Label returns the button label.
func (b *Button) Label() string {
	return b.label
}

// Update handles messages for the button.
// Returns true if the button was activated.
func (b *Button) Update(msg tea.Msg) (*Button, tea.Cmd, bool) {
	if !b.focused || b.disabled {
		return b, nil, false
	}

	activated := false
	if msg, ok := msg.(tea.KeyMsg); ok {
		switch msg.String() {
		case "enter", " ":
			activated = true
		}
	}

	return b, nil, activated
}

// View renders the button.
func (b *Button) View() string {
	var style lipgloss.Style

	switch {
	case b.disabled:
		style = styles.ButtonDisabledStyle
	case b.focused && b.style == ButtonStyleSecondary:
		style = styles.ButtonSecondaryStyle
	case b.focused:
		style = styles.ButtonPrimaryStyle
	case b.style == ButtonStyleSecondary:
		style = styles.ButtonSecondaryUnfocusedStyle
	default:
		style = styles.ButtonPrimaryUnfocusedStyle
	}

	return style.Render(b.label)
}

// ButtonRow lays out buttons horizontally and tracks which one has focus.
type ButtonRow struct {
	buttons []*Button
	focus   int
	gap     int
}

// NewButtonRow creates a row with the first button focused.
func NewButtonRow(buttons ...*Button) *ButtonRow {
	r := &ButtonRow{buttons: buttons, gap: 2}
	if len(buttons) > 0 {
		buttons[0].Focus()
	}
	return r
}

// Buttons returns the buttons in order.
func (r *ButtonRow) Buttons() []*Button {
	return r.buttons
}

// Focused returns the focused button, or nil for an empty row.
func (r *ButtonRow) Focused() *Button {
	if len(r.buttons) == 0 {
		return nil
	}
	return r.buttons[r.focus]
}

// FocusID moves focus to the button with the given ID.
func (r *ButtonRow) FocusID(id string) {
	for i, b := range r.buttons {
		if b.ID() == id {
			r.setFocus(i)
			return
		}
	}
}

// Next moves focus to the next button, wrapping around.
func (r *ButtonRow) Next() {
	if len(r.buttons) == 0 {
		return
	}
	r.setFocus((r.focus + 1) % len(r.buttons))
}

// Prev moves focus to the previous button, wrapping around.
func (r *ButtonRow) Prev() {
	if len(r.buttons) == 0 {
		return
	}
	r.setFocus((r.focus - 1 + len(r.buttons)) % len(r.buttons))
}

func (r *ButtonRow) setFocus(i int) {
	r.buttons[r.focus].Blur()
	r.focus = i
	r.buttons[r.focus].Focus()
}

// Update forwards msg to the focused button and returns the ID of the
// button that was activated, if any.
func (r *ButtonRow) Update(msg tea.Msg) (string, bool) {
	b := r.Focused()
	if b == nil {
		return "", false
	}
	_, _, activated := b.Update(msg)
	if !activated {
		return "", false
	}
	return b.ID(), true
}

// View renders the buttons side by side.
func (r *ButtonRow) View() string {
	parts := make([]string, 0, len(r.buttons)*2)
	for i, b := range r.buttons {
		if i > 0 {
			parts = append(parts, lipgloss.NewStyle().Width(r.gap).Render(""))
		}
		parts = append(parts, b.View())
	}
	return lipgloss.JoinHorizontal(lipgloss.Center, parts...)
}
