package tui

import (
	"context"
	"errors"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/dbmrq/nullfill/internal/app"
	"github.com/dbmrq/nullfill/internal/clipboard"
	"github.com/dbmrq/nullfill/internal/config"
	"github.com/dbmrq/nullfill/internal/fill"
	"github.com/dbmrq/nullfill/internal/logging"
	"github.com/dbmrq/nullfill/internal/tui/components"
)

// Button IDs.
const (
	ButtonImport = "import"
	ButtonExport = "export"
)

// Controller runs the clipboard actions behind the Import and Export buttons.
// *app.Controller implements it.
type Controller interface {
	Paste(ctx context.Context) ([]fill.Record, error)
	Copy(ctx context.Context) error
	Generation() uint64
}

// Options configures labels and timing of the TUI.
type Options struct {
	ImportLabel    string
	ExportLabel    string
	OriginalHeader string
	FilledHeader   string
	NoticeDuration time.Duration
	Mode           fill.ValueKind
	Version        string
}

// DefaultOptions returns the default labels and notice duration.
func DefaultOptions() Options {
	return Options{
		ImportLabel:    config.DefaultImportLabel,
		ExportLabel:    config.DefaultExportLabel,
		OriginalHeader: config.DefaultOriginalHeader,
		FilledHeader:   config.DefaultFilledHeader,
		NoticeDuration: config.DefaultNoticeDuration,
		Mode:           fill.KindNumeric,
	}
}

// OptionsFromConfig builds TUI options from the ui and fill config sections.
func OptionsFromConfig(cfg *config.Config) Options {
	return Options{
		ImportLabel:    cfg.UI.ImportLabel,
		ExportLabel:    cfg.UI.ExportLabel,
		OriginalHeader: cfg.UI.OriginalHeader,
		FilledHeader:   cfg.UI.FilledHeader,
		NoticeDuration: cfg.UI.NoticeDuration,
		Mode:           cfg.Fill.Mode,
	}
}

// Model is the Bubble Tea model for the nullfill window.
type Model struct {
	// Components
	header      *components.Header
	buttons     *components.ButtonRow
	table       *components.RecordTable
	statusBar   *components.StatusBar
	helpOverlay *components.HelpOverlay

	ctrl Controller
	ctx  context.Context
	opts Options
	log  *logging.Logger

	// State
	generation uint64
	busy       string

	// Window dimensions
	width  int
	height int

	quitting bool
}

// New creates a model driving ctrl. Empty option fields use DefaultOptions.
func New(ctrl Controller, opts Options) *Model {
	opts = withDefaults(opts)

	importBtn := components.NewButton(ButtonImport, opts.ImportLabel)
	exportBtn := components.NewButton(ButtonExport, opts.ExportLabel)
	exportBtn.SetStyle(components.ButtonStyleSecondary)

	header := components.NewHeader()
	header.SetData(components.HeaderData{Mode: string(opts.Mode), Version: opts.Version})

	return &Model{
		header:      header,
		buttons:     components.NewButtonRow(importBtn, exportBtn),
		table:       components.NewRecordTable(opts.OriginalHeader, opts.FilledHeader),
		statusBar:   components.NewStatusBar(),
		helpOverlay: components.NewHelpOverlay(),
		ctrl:        ctrl,
		ctx:         context.Background(),
		opts:        opts,
		log:         logging.With("component", "tui"),
	}
}

func withDefaults(opts Options) Options {
	d := DefaultOptions()
	if opts.ImportLabel == "" {
		opts.ImportLabel = d.ImportLabel
	}
	if opts.ExportLabel == "" {
		opts.ExportLabel = d.ExportLabel
	}
	if opts.OriginalHeader == "" {
		opts.OriginalHeader = d.OriginalHeader
	}
	if opts.FilledHeader == "" {
		opts.FilledHeader = d.FilledHeader
	}
	if opts.NoticeDuration <= 0 {
		opts.NoticeDuration = d.NoticeDuration
	}
	if opts.Mode == "" {
		opts.Mode = d.Mode
	}
	return opts
}

// WithContext sets the context passed to controller calls.
func (m *Model) WithContext(ctx context.Context) *Model {
	m.ctx = ctx
	return m
}

// Init is the Bubble Tea initialization function.
func (m *Model) Init() tea.Cmd {
	return nil
}

// Update handles messages and updates the model.
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if m.helpOverlay.IsVisible() {
		if _, ok := msg.(tea.KeyMsg); ok {
			return m, m.helpOverlay.Update(msg)
		}
	}

	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.layout()
		return m, nil

	case tea.KeyMsg:
		return m.handleKeyPress(msg)

	case tea.MouseMsg:
		return m, m.table.Update(msg)

	case PasteDoneMsg:
		m.setBusy("")
		if msg.Err != nil {
			m.log.Debug("import failed", "error", msg.Err)
			return m, nil
		}
		if msg.Generation < m.generation {
			return m, nil
		}
		m.generation = msg.Generation
		m.setRecords(msg.Records)
		return m, nil

	case CopyDoneMsg:
		m.setBusy("")
		if msg.Err != nil {
			m.log.Debug("export failed", "error", msg.Err)
		}
		return m, nil

	case NoticeMsg:
		return m, m.showNotice(msg.Notice)

	case ToastExpiredMsg:
		m.statusBar.ExpireToast(msg.ID)
		return m, nil

	case components.HelpClosedMsg:
		return m, nil
	}

	return m, nil
}

// handleKeyPress handles keyboard input.
func (m *Model) handleKeyPress(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "ctrl+c", "q":
		m.quitting = true
		return m, tea.Quit

	case "?":
		m.helpOverlay.Toggle()
		return m, nil

	case "i", "ctrl+v":
		return m, m.paste()

	case "e", "y":
		return m, m.copy()

	case "tab", "right", "l":
		m.buttons.Next()
		return m, nil

	case "shift+tab", "left", "h":
		m.buttons.Prev()
		return m, nil

	case "enter", " ":
		id, ok := m.buttons.Update(msg)
		if !ok {
			return m, nil
		}
		return m, m.activate(id)

	case "j", "down":
		m.table.MoveDown()
		return m, nil

	case "k", "up":
		m.table.MoveUp()
		return m, nil

	case "g", "home":
		m.table.GoToTop()
		return m, nil

	case "G", "end":
		m.table.GoToBottom()
		return m, nil
	}

	// pgup, pgdown and the rest of the table bindings
	return m, m.table.Update(msg)
}

func (m *Model) activate(id string) tea.Cmd {
	switch id {
	case ButtonImport:
		return m.paste()
	case ButtonExport:
		return m.copy()
	}
	return nil
}

// paste starts an import unless a clipboard call is already running.
func (m *Model) paste() tea.Cmd {
	if m.busy != "" || m.ctrl == nil {
		return nil
	}
	m.buttons.FocusID(ButtonImport)
	m.setBusy("reading clipboard")
	ctrl, ctx := m.ctrl, m.ctx
	return func() tea.Msg {
		records, err := ctrl.Paste(ctx)
		return PasteDoneMsg{Records: records, Generation: ctrl.Generation(), Err: err}
	}
}

// copy starts an export unless a clipboard call is already running.
func (m *Model) copy() tea.Cmd {
	if m.busy != "" || m.ctrl == nil {
		return nil
	}
	m.buttons.FocusID(ButtonExport)
	m.setBusy("writing clipboard")
	ctrl, ctx := m.ctrl, m.ctx
	return func() tea.Msg {
		return CopyDoneMsg{Err: ctrl.Copy(ctx)}
	}
}

func (m *Model) setBusy(msg string) {
	m.busy = msg
	m.statusBar.SetBusy(msg)
	for _, b := range m.buttons.Buttons() {
		b.SetDisabled(msg != "")
	}
}

func (m *Model) setRecords(records []fill.Record) {
	m.table.SetRecords(records)
	sum := fill.Summarize(records)
	m.header.SetCounts(sum.Lines, sum.Sentinels)
	m.statusBar.SetCounts(sum.Fallbacks, sum.Malformed)
}

func (m *Model) showNotice(n app.Notice) tea.Cmd {
	level := components.ToastSuccess
	if n.Level == app.NoticeError {
		level = components.ToastError
	}
	d := m.opts.NoticeDuration
	id := m.statusBar.SetToast(n.Message, level, d)
	return tea.Tick(d, func(time.Time) tea.Msg {
		return ToastExpiredMsg{ID: id}
	})
}

// layout sizes the table to whatever the header, buttons and status bar leave.
func (m *Model) layout() {
	m.header.SetWidth(m.width)
	m.statusBar.SetWidth(m.width)
	m.helpOverlay.SetSize(m.width, m.height)

	chrome := lipgloss.Height(m.header.View()) +
		2*lipgloss.Height(m.buttons.View()) +
		lipgloss.Height(m.statusBar.View()) +
		3 // table border and header row
	tableHeight := m.height - chrome
	if tableHeight < 1 {
		tableHeight = 1
	}
	m.table.SetSize(m.width-2, tableHeight)
}

// View renders the TUI.
func (m *Model) View() string {
	if m.quitting {
		return ""
	}

	if m.helpOverlay.IsVisible() && m.width > 0 {
		return lipgloss.Place(m.width, m.height, lipgloss.Center, lipgloss.Center, m.helpOverlay.View())
	}

	buttons := m.buttons.View()
	return lipgloss.JoinVertical(lipgloss.Left,
		m.header.View(),
		buttons,
		m.table.View(),
		buttons,
		m.statusBar.View(),
	)
}

// Records returns the records currently shown.
func (m *Model) Records() []fill.Record {
	return m.table.Records()
}

// Busy reports whether a clipboard call is in flight.
func (m *Model) Busy() bool {
	return m.busy != ""
}

// Toast returns the visible toast message.
func (m *Model) Toast() string {
	return m.statusBar.Toast()
}

// FocusedButton returns the ID of the focused button.
func (m *Model) FocusedButton() string {
	if b := m.buttons.Focused(); b != nil {
		return b.ID()
	}
	return ""
}

// Run opens the TUI on cb and blocks until the user quits or ctx is canceled.
func Run(ctx context.Context, cb clipboard.Clipboard, appOpts *app.Options, opts Options) error {
	notifier := NewProgramNotifier()
	ctrl := app.NewController(cb, notifier, appOpts)

	m := New(ctrl, opts).WithContext(ctx)
	p := tea.NewProgram(m, tea.WithAltScreen(), tea.WithMouseCellMotion(), tea.WithContext(ctx))
	notifier.SetProgram(p)

	logging.Info("tui started", "mode", string(m.opts.Mode))
	_, err := p.Run()
	if errors.Is(err, tea.ErrProgramKilled) && ctx.Err() != nil {
		return nil
	}
	return err
}
