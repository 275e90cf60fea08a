// Package render writes transformed records for non-interactive use.
package render

import (
	"encoding/json"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"gopkg.in/yaml.v3"

	nferrors "github.com/dbmrq/nullfill/internal/errors"
	"github.com/dbmrq/nullfill/internal/fill"
	"github.com/dbmrq/nullfill/internal/tui/styles"
)

// Format selects how records are written.
type Format string

const (
	// FormatText writes the filled column, one value per line.
	FormatText Format = "text"
	// FormatTable writes original and filled values side by side.
	FormatTable Format = "table"
	// FormatJSON writes an array of record objects.
	FormatJSON Format = "json"
	// FormatYAML writes a sequence of record mappings.
	FormatYAML Format = "yaml"
)

// Formats lists every supported format.
var Formats = []Format{FormatText, FormatTable, FormatJSON, FormatYAML}

// ParseFormat converts a flag value to a Format.
func ParseFormat(s string) (Format, error) {
	f := Format(strings.ToLower(strings.TrimSpace(s)))
	for _, known := range Formats {
		if f == known {
			return f, nil
		}
	}
	names := make([]string, len(Formats))
	for i, known := range Formats {
		names[i] = string(known)
	}
	return "", nferrors.WithSuggestion(nferrors.ErrInput,
		fmt.Sprintf("unknown output format %q", s),
		"Use one of: "+strings.Join(names, ", "))
}

// Row is the serialized form of one record.
type Row struct {
	Original  string `json:"original"  yaml:"original"`
	Filled    string `json:"filled"    yaml:"filled"`
	Sentinel  bool   `json:"sentinel"  yaml:"sentinel"`
	Malformed bool   `json:"malformed" yaml:"malformed"`
}

// Rows converts records to their serialized form.
func Rows(records []fill.Record) []Row {
	rows := make([]Row, len(records))
	for i, r := range records {
		rows[i] = Row{
			Original:  r.Original,
			Filled:    r.Filled.String(),
			Sentinel:  r.Sentinel,
			Malformed: r.Malformed,
		}
	}
	return rows
}

// Renderer writes records in a chosen format.
type Renderer struct {
	// OriginalHeader and FilledHeader title the table columns.
	OriginalHeader string
	FilledHeader   string
}

// Default column headers.
const (
	DefaultOriginalHeader = "Stari"
	DefaultFilledHeader   = "Pretvorjeni"
)

// New returns a Renderer with the default headers.
func New() *Renderer {
	return &Renderer{
		OriginalHeader: DefaultOriginalHeader,
		FilledHeader:   DefaultFilledHeader,
	}
}

// Write renders records to w using the default headers.
func Write(w io.Writer, format Format, records []fill.Record) error {
	return New().Write(w, format, records)
}

// Write renders records to w.
func (r *Renderer) Write(w io.Writer, format Format, records []fill.Record) error {
	switch format {
	case FormatText, "":
		return writeText(w, records)
	case FormatTable:
		_, err := io.WriteString(w, r.Table(records)+"\n")
		return err
	case FormatJSON:
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(Rows(records))
	case FormatYAML:
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(Rows(records)); err != nil {
			return err
		}
		return enc.Close()
	default:
		_, err := ParseFormat(string(format))
		return err
	}
}

func writeText(w io.Writer, records []fill.Record) error {
	if len(records) == 0 {
		return nil
	}
	_, err := io.WriteString(w, fill.Join(records)+"\n")
	return err
}

// Table renders records as a bordered two-column table.
func (r *Renderer) Table(records []fill.Record) string {
	rows := make([][]string, len(records))
	for i, rec := range records {
		rows[i] = []string{strconv.Itoa(i + 1), rec.Original, rec.Filled.String()}
	}

	headerStyle := lipgloss.NewStyle().Bold(true).Foreground(styles.Primary).Padding(0, 1)
	cellStyle := lipgloss.NewStyle().Padding(0, 1)
	lineStyle := cellStyle.Foreground(styles.Muted).Align(lipgloss.Right)
	sentinelStyle := cellStyle.Foreground(styles.Secondary)
	malformedStyle := cellStyle.Foreground(styles.Error)

	t := table.New().
		Border(lipgloss.RoundedBorder()).
		BorderStyle(lipgloss.NewStyle().Foreground(styles.BorderColor)).
		Headers("#", r.OriginalHeader, r.FilledHeader).
		Rows(rows...).
		StyleFunc(func(row, col int) lipgloss.Style {
			if row == table.HeaderRow {
				return headerStyle
			}
			if col == 0 {
				return lineStyle
			}
			if row < 0 || row >= len(records) {
				return cellStyle
			}
			rec := records[row]
			switch {
			case rec.Malformed:
				return malformedStyle
			case rec.Sentinel && col == 2:
				return sentinelStyle
			}
			return cellStyle
		})

	return t.Render()
}
