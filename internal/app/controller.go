// Package app wires clipboard access, the forward-fill transform and user
// notices into the two actions nullfill offers: import (paste) and export (copy).
package app

import (
	"context"
	"errors"
	"sync"
	"time"

	"github.com/dbmrq/nullfill/internal/clipboard"
	nferrors "github.com/dbmrq/nullfill/internal/errors"
	"github.com/dbmrq/nullfill/internal/fill"
	"github.com/dbmrq/nullfill/internal/logging"
)

// Default notice texts.
const (
	DefaultPasteNotice = "Novi podatki"
	DefaultCopyNotice  = "Skopirano!"
)

// NoticeLevel classifies a notice.
type NoticeLevel string

const (
	NoticeSuccess NoticeLevel = "success"
	NoticeError   NoticeLevel = "error"
)

// Notice is a short message for the user, shown as a toast by the TUI.
type Notice struct {
	Level   NoticeLevel
	Message string
	// Err is set for error notices.
	Err       error
	Timestamp time.Time
}

// Notifier displays notices.
type Notifier interface {
	Notify(n Notice)
}

// NotifierFunc adapts a function to Notifier.
type NotifierFunc func(n Notice)

// Notify calls f(n).
func (f NotifierFunc) Notify(n Notice) { f(n) }

// Options configures a Controller.
type Options struct {
	// Fill configures the transform applied on paste.
	Fill fill.Options
	// PasteNotice is shown after a successful paste.
	PasteNotice string
	// CopyNotice is shown after a successful copy.
	CopyNotice string
	// Timeout bounds each clipboard call. Zero means no limit beyond ctx.
	Timeout time.Duration
	// Logger receives action logs (optional).
	Logger *logging.Logger
}

// DefaultOptions returns numeric-mode options with the default notices.
func DefaultOptions() *Options {
	return &Options{
		Fill:        fill.DefaultOptions(fill.KindNumeric),
		PasteNotice: DefaultPasteNotice,
		CopyNotice:  DefaultCopyNotice,
	}
}

// Controller owns the current record list.
// Paste replaces the list wholesale, and only after both the clipboard read
// and the transform succeeded; readers never see a partial list.
type Controller struct {
	clipboard clipboard.Clipboard
	notifier  Notifier
	opts      *Options
	log       *logging.Logger

	mu         sync.RWMutex
	records    []fill.Record
	generation uint64
}

// NewController creates a Controller. A nil notifier discards notices and
// nil opts means DefaultOptions.
func NewController(cb clipboard.Clipboard, notifier Notifier, opts *Options) *Controller {
	if opts == nil {
		opts = DefaultOptions()
	}
	if notifier == nil {
		notifier = NotifierFunc(func(Notice) {})
	}
	log := opts.Logger
	if log == nil {
		log = logging.Global()
	}
	return &Controller{
		clipboard: cb,
		notifier:  notifier,
		opts:      opts,
		log:       log.With("component", "controller"),
	}
}

// Options returns the controller's options.
func (c *Controller) Options() Options {
	return *c.opts
}

// Paste reads the clipboard, transforms it and replaces the current records.
// On failure the previous records are kept and an error notice is sent.
func (c *Controller) Paste(ctx context.Context) ([]fill.Record, error) {
	ctx = logging.WithOperation(ctx, "paste")
	log := c.log.WithContext(ctx)

	readCtx, cancel := c.withTimeout(ctx)
	raw, err := c.clipboard.ReadText(readCtx)
	cancel()
	if err != nil {
		log.Warn("clipboard read failed", "error", err)
		c.fail(err)
		return nil, err
	}

	records, err := fill.Transform(raw, c.opts.Fill)
	if err != nil {
		log.Warn("transform rejected input", "error", err)
		c.fail(err)
		return nil, err
	}

	gen := c.replace(records)

	s := fill.Summarize(records)
	log.Info("records replaced",
		"generation", gen,
		"lines", s.Lines,
		"sentinels", s.Sentinels,
		"fallbacks", s.Fallbacks,
		"malformed", s.Malformed)

	c.notify(NoticeSuccess, c.pasteNotice(), nil)
	return cloneRecords(records), nil
}

// Copy writes the filled column of the current records to the clipboard.
func (c *Controller) Copy(ctx context.Context) error {
	ctx = logging.WithOperation(ctx, "copy")

	c.mu.RLock()
	text := fill.Join(c.records)
	count := len(c.records)
	gen := c.generation
	c.mu.RUnlock()

	log := c.log.WithContext(logging.WithGeneration(ctx, gen))

	writeCtx, cancel := c.withTimeout(ctx)
	err := c.clipboard.WriteText(writeCtx, text)
	cancel()
	if err != nil {
		log.Warn("clipboard write failed", "error", err)
		c.fail(err)
		return err
	}

	log.Info("filled column copied", "lines", count, "bytes", len(text))
	c.notify(NoticeSuccess, c.copyNotice(), nil)
	return nil
}

// Records returns a copy of the current records.
func (c *Controller) Records() []fill.Record {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return cloneRecords(c.records)
}

// Generation returns the number of successful pastes so far.
func (c *Controller) Generation() uint64 {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.generation
}

// Summary summarizes the current records.
func (c *Controller) Summary() fill.Summary {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return fill.Summarize(c.records)
}

func (c *Controller) replace(records []fill.Record) uint64 {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.records = records
	c.generation++
	return c.generation
}

func (c *Controller) withTimeout(ctx context.Context) (context.Context, context.CancelFunc) {
	if c.opts.Timeout > 0 {
		return context.WithTimeout(ctx, c.opts.Timeout)
	}
	return context.WithCancel(ctx)
}

func (c *Controller) fail(err error) {
	c.notify(NoticeError, NoticeMessage(err), err)
}

func (c *Controller) notify(level NoticeLevel, msg string, err error) {
	c.notifier.Notify(Notice{
		Level:     level,
		Message:   msg,
		Err:       err,
		Timestamp: time.Now(),
	})
}

func (c *Controller) pasteNotice() string {
	if c.opts.PasteNotice != "" {
		return c.opts.PasteNotice
	}
	return DefaultPasteNotice
}

func (c *Controller) copyNotice() string {
	if c.opts.CopyNotice != "" {
		return c.opts.CopyNotice
	}
	return DefaultCopyNotice
}

// NoticeMessage renders err as a one-line notice: the message of a nullfill
// error without its cause chain, or the plain error text otherwise.
func NoticeMessage(err error) string {
	var nfErr *nferrors.Error
	if errors.As(err, &nfErr) {
		if errors.Is(err, context.DeadlineExceeded) {
			return nfErr.Message + " (timed out)"
		}
		return nfErr.Message
	}
	return err.Error()
}

func cloneRecords(records []fill.Record) []fill.Record {
	if records == nil {
		return nil
	}
	out := make([]fill.Record, len(records))
	copy(out, records)
	return out
}
