package components

import (
	"strings"
	"testing"

	"github.com/charmbracelet/lipgloss"
)

func TestNewHeader(t *testing.T) {
	h := NewHeader()
	if h == nil {
		t.Fatal("NewHeader returned nil")
	}
	if h.data.Mode != "numeric" {
		t.Errorf("Mode = %q, want numeric", h.data.Mode)
	}
}

func TestHeaderSetData(t *testing.T) {
	h := NewHeader()
	h.SetData(HeaderData{Mode: "text", Records: 12, Sentinels: 4, Version: "1.0.0"})

	view := h.View()
	for _, want := range []string{"NULLFILL", "text", "12", "4", "1.0.0"} {
		if !strings.Contains(view, want) {
			t.Errorf("View should contain %q, got %q", want, view)
		}
	}
}

func TestHeaderSetCounts(t *testing.T) {
	h := NewHeader()
	h.SetCounts(7, 3)

	if h.data.Records != 7 || h.data.Sentinels != 3 {
		t.Errorf("counts = (%d, %d), want (7, 3)", h.data.Records, h.data.Sentinels)
	}
	if h.data.Mode != "numeric" {
		t.Error("SetCounts should keep the mode")
	}

	view := h.View()
	if !strings.Contains(view, "Rows: 7") || !strings.Contains(view, "Filled: 3") {
		t.Errorf("View should show counts, got %q", view)
	}
}

func TestHeaderWithoutVersion(t *testing.T) {
	h := NewHeader()
	if strings.Count(h.View(), "│") != 3 {
		t.Errorf("expected three separators without a version, got %q", h.View())
	}
}

func TestHeaderSetWidth(t *testing.T) {
	h := NewHeader()
	h.SetWidth(80)

	if h.width != 80 {
		t.Errorf("width = %d, want 80", h.width)
	}
	if w := lipgloss.Width(h.View()); w != 80 {
		t.Errorf("rendered width = %d, want 80", w)
	}
}
