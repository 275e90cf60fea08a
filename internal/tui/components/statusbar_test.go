package components

import (
	"strings"
	"testing"
	"time"

	"github.com/charmbracelet/lipgloss"
)

// fakeClock returns a StatusBar whose clock is controlled by the test.
func fakeClock(sb *StatusBar) *time.Time {
	now := time.Date(2024, 1, 1, 12, 0, 0, 0, time.UTC)
	sb.now = func() time.Time { return now }
	return &now
}

func TestNewStatusBar(t *testing.T) {
	sb := NewStatusBar()
	if sb == nil {
		t.Fatal("expected non-nil StatusBar")
	}
	if !sb.data.ShowShortcuts {
		t.Error("expected ShowShortcuts to be true by default")
	}
	if len(sb.data.Shortcuts) != len(MainShortcuts) {
		t.Errorf("expected main shortcuts, got %d", len(sb.data.Shortcuts))
	}
	if sb.Toast() != "" {
		t.Error("expected no toast initially")
	}
}

func TestStatusBar_Counts(t *testing.T) {
	sb := NewStatusBar()
	sb.SetCounts(2, 5)

	view := sb.View()
	if !strings.Contains(view, "Fallback: 2") {
		t.Errorf("View should show fallback count, got %q", view)
	}
	if !strings.Contains(view, "NaN: 5") {
		t.Errorf("View should show malformed count, got %q", view)
	}
}

func TestStatusBar_Busy(t *testing.T) {
	sb := NewStatusBar()
	sb.SetBusy("reading clipboard")

	if !strings.Contains(sb.View(), "reading clipboard") {
		t.Error("View should show the busy message")
	}

	sb.SetBusy("")
	if strings.Contains(sb.View(), "reading clipboard") {
		t.Error("View should not show a cleared busy message")
	}
}

func TestStatusBar_Toast(t *testing.T) {
	sb := NewStatusBar()
	now := fakeClock(sb)

	sb.SetToast("  Skopirano!  ", ToastSuccess, 2*time.Second)
	if got := sb.Toast(); got != "Skopirano!" {
		t.Errorf("Toast() = %q, want trimmed message", got)
	}
	if !strings.Contains(sb.View(), "Skopirano!") {
		t.Error("View should show the toast")
	}

	*now = now.Add(3 * time.Second)
	if got := sb.Toast(); got != "" {
		t.Errorf("Toast() after expiry = %q, want empty", got)
	}
}

func TestStatusBar_ToastDefaultDuration(t *testing.T) {
	sb := NewStatusBar()
	now := fakeClock(sb)

	sb.SetToast("Novi podatki", ToastSuccess, 0)
	*now = now.Add(DefaultToastDuration - time.Millisecond)
	if sb.Toast() == "" {
		t.Error("toast should be visible before the default duration elapses")
	}
	*now = now.Add(2 * time.Millisecond)
	if sb.Toast() != "" {
		t.Error("toast should expire after the default duration")
	}
}

func TestStatusBar_ExpireToast(t *testing.T) {
	sb := NewStatusBar()
	fakeClock(sb)

	first := sb.SetToast("first", ToastSuccess, time.Minute)
	second := sb.SetToast("second", ToastError, time.Minute)
	if first == second {
		t.Fatal("toast IDs should differ")
	}

	sb.ExpireToast(first)
	if sb.Toast() != "second" {
		t.Errorf("expiring a stale ID should keep the current toast, got %q", sb.Toast())
	}

	sb.ExpireToast(second)
	if sb.Toast() != "" {
		t.Errorf("expiring the current ID should clear the toast, got %q", sb.Toast())
	}
}

func TestStatusBar_EmptyToastClears(t *testing.T) {
	sb := NewStatusBar()
	fakeClock(sb)

	sb.SetToast("hello", ToastSuccess, time.Minute)
	sb.SetToast("   ", ToastSuccess, time.Minute)
	if sb.Toast() != "" {
		t.Error("blank toast should clear the current one")
	}
}

func TestStatusBar_Shortcuts(t *testing.T) {
	sb := NewStatusBar()
	if !strings.Contains(sb.View(), "import") {
		t.Error("View should show shortcuts by default")
	}

	sb.SetShowShortcuts(false)
	if strings.Contains(sb.View(), "import") {
		t.Error("View should hide shortcuts")
	}

	sb.SetData(StatusBarData{ShowShortcuts: true, Shortcuts: []ShortcutDef{{"x", "custom"}}})
	if !strings.Contains(sb.View(), "custom") {
		t.Error("View should show custom shortcuts")
	}
}

func TestStatusBar_WithWidth(t *testing.T) {
	sb := NewStatusBar()
	sb.SetWidth(120)

	if w := lipgloss.Width(sb.View()); w != 120 {
		t.Errorf("rendered width = %d, want 120", w)
	}
}
