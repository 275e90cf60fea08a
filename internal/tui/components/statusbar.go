package components

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"

	"github.com/dbmrq/nullfill/internal/tui/styles"
)

// ToastLevel selects the toast color.
type ToastLevel int

const (
	ToastSuccess ToastLevel = iota
	ToastError
)

// DefaultToastDuration is used when a toast is set with a non-positive duration.
const DefaultToastDuration = 3 * time.Second

// StatusBarData contains the data to display in the status bar.
type StatusBarData struct {
	Fallbacks     int
	Malformed     int
	Busy          string // Shown while a clipboard call is in flight
	ShowShortcuts bool
	Shortcuts     []ShortcutDef
}

// StatusBar shows transform counters, the current toast and keyboard shortcuts.
type StatusBar struct {
	data  StatusBarData
	width int

	toastMessage string
	toastLevel   ToastLevel
	toastExpires time.Time
	toastID      int

	now func() time.Time
}

// NewStatusBar creates a new StatusBar component.
func NewStatusBar() *StatusBar {
	return &StatusBar{
		data: StatusBarData{
			ShowShortcuts: true,
			Shortcuts:     MainShortcuts,
		},
		now: time.Now,
	}
}

// SetData updates the status bar data.
func (s *StatusBar) SetData(data StatusBarData) {
	s.data = data
}

// SetCounts sets the fallback and malformed counters.
func (s *StatusBar) SetCounts(fallbacks, malformed int) {
	s.data.Fallbacks = fallbacks
	s.data.Malformed = malformed
}

// SetBusy shows msg until cleared with an empty string.
func (s *StatusBar) SetBusy(msg string) {
	s.data.Busy = msg
}

// SetShowShortcuts sets whether to show keyboard shortcuts.
func (s *StatusBar) SetShowShortcuts(show bool) {
	s.data.ShowShortcuts = show
}

// SetWidth sets the width of the status bar.
func (s *StatusBar) SetWidth(width int) {
	s.width = width
}

// SetToast shows msg for duration and returns an ID identifying this toast,
// so a later expiry message can tell whether it is still current.
// An empty msg clears the toast.
func (s *StatusBar) SetToast(msg string, level ToastLevel, duration time.Duration) int {
	s.toastID++
	trimmed := strings.TrimSpace(msg)
	if trimmed == "" {
		s.toastMessage = ""
		s.toastExpires = time.Time{}
		return s.toastID
	}
	if duration <= 0 {
		duration = DefaultToastDuration
	}
	s.toastMessage = trimmed
	s.toastLevel = level
	s.toastExpires = s.now().Add(duration)
	return s.toastID
}

// ExpireToast clears the toast if id is still the current one.
func (s *StatusBar) ExpireToast(id int) {
	if id == s.toastID {
		s.toastMessage = ""
		s.toastExpires = time.Time{}
	}
}

// ToastID returns the ID of the most recently set toast.
func (s *StatusBar) ToastID() int {
	return s.toastID
}

// Toast returns the visible toast message, or "" when none is showing.
func (s *StatusBar) Toast() string {
	if s.toastMessage == "" || s.now().After(s.toastExpires) {
		return ""
	}
	return s.toastMessage
}

// View renders the status bar.
func (s *StatusBar) View() string {
	sep := lipgloss.NewStyle().
		Foreground(styles.Muted).
		Render(" │ ")

	labelStyle := lipgloss.NewStyle().Foreground(styles.MutedLight)

	fallbackValue := lipgloss.NewStyle().
		Foreground(styles.Secondary).
		Render(fmt.Sprintf("%d", s.data.Fallbacks))

	malformedColor := styles.Muted
	if s.data.Malformed > 0 {
		malformedColor = styles.Error
	}
	malformedValue := lipgloss.NewStyle().
		Foreground(malformedColor).
		Render(fmt.Sprintf("%d", s.data.Malformed))

	leftContent := labelStyle.Render("Fallback: ") + fallbackValue +
		sep + labelStyle.Render("NaN: ") + malformedValue

	if s.data.Busy != "" {
		leftContent += sep + lipgloss.NewStyle().
			Foreground(styles.Warning).
			Render("◐ "+s.data.Busy)
	}

	if toast := s.Toast(); toast != "" {
		style := styles.ToastSuccessStyle
		if s.toastLevel == ToastError {
			style = styles.ToastErrorStyle
		}
		leftContent += sep + style.Render(toast)
	}

	rightContent := ""
	if s.data.ShowShortcuts {
		rightContent = NewShortcutBar(s.data.Shortcuts...).View()
	}

	containerStyle := lipgloss.NewStyle().
		Background(styles.Background).
		Padding(0, 1)

	if s.width > 0 {
		containerStyle = containerStyle.Width(s.width)

		leftWidth := lipgloss.Width(leftContent)
		rightWidth := lipgloss.Width(rightContent)
		padding := s.width - leftWidth - rightWidth - 2 // container padding
		if padding > 0 {
			return containerStyle.Render(leftContent + strings.Repeat(" ", padding) + rightContent)
		}
	}

	return containerStyle.Render(leftContent + "  " + rightContent)
}
