package components

import (
	"fmt"

	"github.com/charmbracelet/lipgloss"

	"github.com/dbmrq/nullfill/internal/tui/styles"
)

// HeaderData contains the data to display in the header.
type HeaderData struct {
	Mode      string
	Records   int
	Sentinels int
	Version   string
}

// Header is a component that displays the value mode and record counts.
type Header struct {
	data  HeaderData
	width int
}

// NewHeader creates a new Header component.
func NewHeader() *Header {
	return &Header{
		data: HeaderData{
			Mode: "numeric",
		},
	}
}

// SetData updates the header data.
func (h *Header) SetData(data HeaderData) {
	h.data = data
}

// SetCounts sets the record and sentinel counts.
func (h *Header) SetCounts(records, sentinels int) {
	h.data.Records = records
	h.data.Sentinels = sentinels
}

// SetWidth sets the width for the header.
func (h *Header) SetWidth(width int) {
	h.width = width
}

// View renders the header.
func (h *Header) View() string {
	title := styles.TitleStyle.Render("NULLFILL")

	sep := lipgloss.NewStyle().
		Foreground(styles.MutedLight).
		Render(" │ ")

	modeLabel := styles.HeaderLabelStyle.Render("Mode: ")
	modeValue := styles.HeaderValueStyle.Render(h.data.Mode)

	recordsLabel := styles.HeaderLabelStyle.Render("Rows: ")
	recordsValue := styles.HeaderValueStyle.Render(fmt.Sprintf("%d", h.data.Records))

	filledLabel := styles.HeaderLabelStyle.Render("Filled: ")
	filledValue := styles.HeaderValueStyle.Render(fmt.Sprintf("%d", h.data.Sentinels))

	content := fmt.Sprintf("%s%s%s%s%s%s%s%s%s%s",
		title, sep,
		modeLabel, modeValue, sep,
		recordsLabel, recordsValue, sep,
		filledLabel, filledValue,
	)

	if h.data.Version != "" {
		content += sep + styles.HeaderLabelStyle.Render(h.data.Version)
	}

	headerStyle := lipgloss.NewStyle().
		Background(styles.Primary).
		Foreground(styles.Foreground).
		Padding(0, 1)

	if h.width > 0 {
		headerStyle = headerStyle.Width(h.width)
	}

	return headerStyle.Render(content)
}
