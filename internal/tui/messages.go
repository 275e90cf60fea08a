// Package tui provides the terminal user interface for nullfill.
package tui

import (
	"sync"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/dbmrq/nullfill/internal/app"
	"github.com/dbmrq/nullfill/internal/fill"
)

// Message types for TUI state updates.

// PasteDoneMsg carries the result of an import.
type PasteDoneMsg struct {
	Records    []fill.Record
	Generation uint64
	Err        error
}

// CopyDoneMsg carries the result of an export.
type CopyDoneMsg struct {
	Err error
}

// NoticeMsg delivers a controller notice to the program.
type NoticeMsg struct {
	Notice app.Notice
}

// ToastExpiredMsg clears the toast with the given ID, if it is still showing.
type ToastExpiredMsg struct {
	ID int
}

// ProgramNotifier forwards controller notices to a running Bubble Tea program.
// Notices sent before SetProgram are dropped.
type ProgramNotifier struct {
	mu      sync.RWMutex
	program *tea.Program
}

// NewProgramNotifier creates a notifier with no program attached yet.
func NewProgramNotifier() *ProgramNotifier {
	return &ProgramNotifier{}
}

// SetProgram attaches the program that receives notices.
func (n *ProgramNotifier) SetProgram(p *tea.Program) {
	n.mu.Lock()
	defer n.mu.Unlock()
	n.program = p
}

// Notify implements app.Notifier.
func (n *ProgramNotifier) Notify(notice app.Notice) {
	n.mu.RLock()
	p := n.program
	n.mu.RUnlock()
	if p != nil {
		p.Send(NoticeMsg{Notice: notice})
	}
}
