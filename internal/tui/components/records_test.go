package components

import (
	"strings"
	"testing"

	"github.com/dbmrq/nullfill/internal/fill"
)

func testRecords(t *testing.T, raw string) []fill.Record {
	t.Helper()
	records, err := fill.Transform(raw, fill.DefaultOptions(fill.KindNumeric))
	if err != nil {
		t.Fatalf("Transform() error = %v", err)
	}
	return records
}

func TestRecordTableEmpty(t *testing.T) {
	r := NewRecordTable("Stari", "Pretvorjeni")

	if r.Len() != 0 {
		t.Errorf("Len() = %d, want 0", r.Len())
	}
	if !strings.Contains(r.View(), "No data yet") {
		t.Errorf("View should show the empty hint, got %q", r.View())
	}
}

func TestRecordTableSetRecords(t *testing.T) {
	r := NewRecordTable("Stari", "Pretvorjeni")
	r.SetSize(80, 10)
	r.SetRecords(testRecords(t, "1\nnull\nabc"))

	if r.Len() != 3 {
		t.Fatalf("Len() = %d, want 3", r.Len())
	}

	view := r.View()
	for _, want := range []string{"Stari", "Pretvorjeni", "null", "abc", "NaN", markSentinel, markMalformed} {
		if !strings.Contains(view, want) {
			t.Errorf("View should contain %q, got:\n%s", want, view)
		}
	}
}

func TestRecordTableNavigation(t *testing.T) {
	r := NewRecordTable("Stari", "Pretvorjeni")
	r.SetSize(80, 10)
	r.SetRecords(testRecords(t, "1\n2\n3\n4"))

	if r.Cursor() != 0 {
		t.Fatalf("Cursor() = %d, want 0", r.Cursor())
	}

	r.MoveDown()
	r.MoveDown()
	if r.Cursor() != 2 {
		t.Errorf("Cursor() after two MoveDown = %d, want 2", r.Cursor())
	}

	r.MoveUp()
	if r.Cursor() != 1 {
		t.Errorf("Cursor() after MoveUp = %d, want 1", r.Cursor())
	}

	r.GoToBottom()
	if r.Cursor() != 3 {
		t.Errorf("Cursor() after GoToBottom = %d, want 3", r.Cursor())
	}

	r.GoToTop()
	if r.Cursor() != 0 {
		t.Errorf("Cursor() after GoToTop = %d, want 0", r.Cursor())
	}
}

func TestRecordTableReplaceResetsCursor(t *testing.T) {
	r := NewRecordTable("Stari", "Pretvorjeni")
	r.SetSize(80, 10)
	r.SetRecords(testRecords(t, "1\n2\n3"))
	r.GoToBottom()

	r.SetRecords(testRecords(t, "7\nnull"))
	if r.Cursor() != 0 {
		t.Errorf("Cursor() after replace = %d, want 0", r.Cursor())
	}
	if r.Len() != 2 {
		t.Errorf("Len() = %d, want 2", r.Len())
	}
}

func TestRecordTableNarrowWidth(t *testing.T) {
	r := NewRecordTable("Stari", "Pretvorjeni")
	r.SetSize(10, 5)

	for _, c := range r.columns() {
		if c.Title != "#" && c.Title != "" && c.Width < minValueWidth {
			t.Errorf("column %q width = %d, want at least %d", c.Title, c.Width, minValueWidth)
		}
	}
}
