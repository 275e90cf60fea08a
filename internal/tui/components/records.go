package components

import (
	"strconv"

	"github.com/charmbracelet/bubbles/table"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/dbmrq/nullfill/internal/fill"
	"github.com/dbmrq/nullfill/internal/tui/styles"
)

// Row markers in the last column.
const (
	markSentinel  = "↓"
	markMalformed = "!"
)

const (
	lineColumnWidth = 5
	markColumnWidth = 2
	minValueWidth   = 8
)

// RecordTable shows original and filled values side by side.
type RecordTable struct {
	table          table.Model
	records        []fill.Record
	originalHeader string
	filledHeader   string
	width          int
	height         int
}

// NewRecordTable creates an empty record table with the given column headers.
func NewRecordTable(originalHeader, filledHeader string) *RecordTable {
	ts := table.DefaultStyles()
	ts.Header = styles.TableHeaderStyle
	ts.Cell = styles.TableCellStyle
	ts.Selected = styles.TableSelectedStyle

	r := &RecordTable{
		originalHeader: originalHeader,
		filledHeader:   filledHeader,
		width:          60,
		height:         10,
	}
	r.table = table.New(
		table.WithColumns(r.columns()),
		table.WithFocused(true),
		table.WithHeight(r.height),
		table.WithStyles(ts),
	)
	return r
}

func (r *RecordTable) columns() []table.Column {
	// cell padding is 2 per column
	valueWidth := (r.width - lineColumnWidth - markColumnWidth - 8) / 2
	if valueWidth < minValueWidth {
		valueWidth = minValueWidth
	}
	return []table.Column{
		{Title: "#", Width: lineColumnWidth},
		{Title: r.originalHeader, Width: valueWidth},
		{Title: r.filledHeader, Width: valueWidth},
		{Title: "", Width: markColumnWidth},
	}
}

// SetRecords replaces the rows and moves the cursor to the top.
func (r *RecordTable) SetRecords(records []fill.Record) {
	r.records = records
	rows := make([]table.Row, len(records))
	for i, rec := range records {
		mark := ""
		switch {
		case rec.Malformed:
			mark = markMalformed
		case rec.Sentinel:
			mark = markSentinel
		}
		rows[i] = table.Row{strconv.Itoa(i + 1), rec.Original, rec.Filled.String(), mark}
	}
	r.table.SetRows(rows)
	r.table.GotoTop()
}

// Records returns the records currently shown.
func (r *RecordTable) Records() []fill.Record {
	return r.records
}

// Len returns the number of rows.
func (r *RecordTable) Len() int {
	return len(r.records)
}

// Cursor returns the selected row index.
func (r *RecordTable) Cursor() int {
	return r.table.Cursor()
}

// SetSize sets the table dimensions.
func (r *RecordTable) SetSize(width, height int) {
	r.width = width
	r.height = height
	r.table.SetColumns(r.columns())
	r.table.SetWidth(width)
	if height > 0 {
		r.table.SetHeight(height)
	}
}

// MoveDown moves the cursor down one row.
func (r *RecordTable) MoveDown() { r.table.MoveDown(1) }

// MoveUp moves the cursor up one row.
func (r *RecordTable) MoveUp() { r.table.MoveUp(1) }

// GoToTop moves the cursor to the first row.
func (r *RecordTable) GoToTop() { r.table.GotoTop() }

// GoToBottom moves the cursor to the last row.
func (r *RecordTable) GoToBottom() { r.table.GotoBottom() }

// Update passes navigation keys (pgup, pgdown, mouse) to the table.
func (r *RecordTable) Update(msg tea.Msg) tea.Cmd {
	var cmd tea.Cmd
	r.table, cmd = r.table.Update(msg)
	return cmd
}

// View renders the table, or a hint before the first import.
func (r *RecordTable) View() string {
	if len(r.records) == 0 {
		return styles.EmptyTableStyle.Render("No data yet. Copy a column of values and press i to import.")
	}
	return styles.TableStyle.Render(r.table.View())
}
