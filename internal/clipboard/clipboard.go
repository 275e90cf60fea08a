// Package clipboard provides access to the system clipboard for nullfill.
package clipboard

import (
	"context"
	"errors"
	"sync"

	"github.com/atotto/clipboard"

	nferrors "github.com/dbmrq/nullfill/internal/errors"
)

// Clipboard reads and writes plain text.
// Implementations return an error of kind errors.ErrClipboard on failure.
type Clipboard interface {
	ReadText(ctx context.Context) (string, error)
	WriteText(ctx context.Context, text string) error
}

// ErrUnsupported is the cause reported when no clipboard utility is available.
var ErrUnsupported = errors.New("no clipboard utility available")

// System is the clipboard of the host, accessed through the platform's
// clipboard utility (pbcopy, xclip, xsel, wl-clipboard, Windows API).
type System struct {
	readAll     func() (string, error)
	writeAll    func(string) error
	unsupported func() bool
}

// NewSystem returns the host clipboard.
func NewSystem() *System {
	return &System{
		readAll:     clipboard.ReadAll,
		writeAll:    clipboard.WriteAll,
		unsupported: func() bool { return clipboard.Unsupported },
	}
}

// Available reports whether a clipboard utility was found.
func (s *System) Available() bool {
	return !s.unsupported()
}

// ReadText returns the clipboard contents.
//
// The platform utility cannot be interrupted, so ctx is only checked before
// the call starts. Once started, the call's own result is returned.
func (s *System) ReadText(ctx context.Context) (string, error) {
	if !s.Available() {
		return "", nferrors.ClipboardAccessDenied(nferrors.ClipboardRead, ErrUnsupported)
	}
	if err := ctx.Err(); err != nil {
		return "", nferrors.ClipboardAccessDenied(nferrors.ClipboardRead, err)
	}

	text, err := s.readAll()
	if err != nil {
		return "", nferrors.ClipboardAccessDenied(nferrors.ClipboardRead, err)
	}
	return text, nil
}

// WriteText replaces the clipboard contents. A returned error means nothing
// was written.
func (s *System) WriteText(ctx context.Context, text string) error {
	if !s.Available() {
		return nferrors.ClipboardAccessDenied(nferrors.ClipboardWrite, ErrUnsupported)
	}
	if err := ctx.Err(); err != nil {
		return nferrors.ClipboardAccessDenied(nferrors.ClipboardWrite, err)
	}

	if err := s.writeAll(text); err != nil {
		return nferrors.ClipboardAccessDenied(nferrors.ClipboardWrite, err)
	}
	return nil
}

// Memory is an in-process clipboard. It backs tests and dry runs.
type Memory struct {
	mu       sync.Mutex
	text     string
	readErr  error
	writeErr error
	writes   int
}

// NewMemory returns a Memory clipboard holding text.
func NewMemory(text string) *Memory {
	return &Memory{text: text}
}

// SetText replaces the contents without counting as a write.
func (m *Memory) SetText(text string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.text = text
}

// Text returns the current contents.
func (m *Memory) Text() string {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.text
}

// Writes returns the number of successful writes.
func (m *Memory) Writes() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.writes
}

// FailReads makes subsequent reads fail with cause; nil restores reads.
func (m *Memory) FailReads(cause error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.readErr = cause
}

// FailWrites makes subsequent writes fail with cause; nil restores writes.
func (m *Memory) FailWrites(cause error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.writeErr = cause
}

// ReadText returns the contents.
func (m *Memory) ReadText(ctx context.Context) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", nferrors.ClipboardAccessDenied(nferrors.ClipboardRead, err)
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.readErr != nil {
		return "", nferrors.ClipboardAccessDenied(nferrors.ClipboardRead, m.readErr)
	}
	return m.text, nil
}

// WriteText replaces the contents.
func (m *Memory) WriteText(ctx context.Context, text string) error {
	if err := ctx.Err(); err != nil {
		return nferrors.ClipboardAccessDenied(nferrors.ClipboardWrite, err)
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.writeErr != nil {
		return nferrors.ClipboardAccessDenied(nferrors.ClipboardWrite, m.writeErr)
	}
	m.text = text
	m.writes++
	return nil
}
