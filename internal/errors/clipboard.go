// Package errors provides error types for nullfill.
// This file contains clipboard and input errors.
package errors

import (
	"fmt"
	"strconv"
)

// ClipboardOp names the clipboard operation that failed.
type ClipboardOp string

const (
	// ClipboardRead is a clipboard read (import).
	ClipboardRead ClipboardOp = "read"
	// ClipboardWrite is a clipboard write (export).
	ClipboardWrite ClipboardOp = "write"
)

// ClipboardAccessDenied creates an error for a refused clipboard read or write.
// The action that triggered it leaves the current records untouched.
func ClipboardAccessDenied(op ClipboardOp, cause error) *Error {
	return &Error{
		Kind:    ErrClipboard,
		Message: fmt.Sprintf("clipboard %s failed", op),
		Cause:   cause,
		Details: map[string]string{
			"operation": string(op),
		},
		Suggestion: `Make sure a clipboard is available to this terminal:
  - Linux/X11: install xclip or xsel
  - Linux/Wayland: install wl-clipboard
  - SSH sessions: run nullfill fill with stdin/stdout instead`,
	}
}

// MalformedNumericLine creates an error for a non-sentinel line that is not a
// number. It is only returned when malformed lines are configured to be
// rejected; otherwise the line passes through as NaN.
func MalformedNumericLine(line int, text string) *Error {
	return &Error{
		Kind:    ErrInput,
		Message: fmt.Sprintf("line %d is not a number: %q", line, text),
		Details: map[string]string{
			"line":  strconv.Itoa(line),
			"value": text,
		},
		Suggestion: `Fix the value or switch modes:
  - use text mode to keep values as they are (--mode text)
  - let malformed lines pass through as NaN (--on-malformed passthrough)`,
	}
}
