// Package fill implements the forward-fill transformation at the heart of
// nullfill: pasted lines in, (original, filled) records out.
package fill

import (
	"math"
	"math/big"
	"regexp"
	"strconv"
	"strings"
	"unicode"
)

// ValueKind selects how non-sentinel lines are interpreted.
type ValueKind string

const (
	// KindNumeric parses every non-sentinel line as a number.
	KindNumeric ValueKind = "numeric"
	// KindText keeps every non-sentinel line verbatim.
	KindText ValueKind = "text"
)

// ValidKinds lists the accepted value kinds.
var ValidKinds = []ValueKind{KindNumeric, KindText}

// Valid reports whether k is a known value kind.
func (k ValueKind) Valid() bool {
	return k == KindNumeric || k == KindText
}

// Value is a filled value: either text or a number.
type Value struct {
	Kind   ValueKind
	Text   string
	Number float64
}

// Text returns a text value.
func Text(s string) Value {
	return Value{Kind: KindText, Text: s}
}

// Number returns a numeric value.
func Number(f float64) Value {
	return Value{Kind: KindNumeric, Number: f}
}

// IsNaN reports whether v is a numeric NaN, the result of an unparsable line.
func (v Value) IsNaN() bool {
	return v.Kind == KindNumeric && math.IsNaN(v.Number)
}

// Equal reports whether two values are the same. NaN equals NaN so that
// propagated malformed values compare as expected.
func (v Value) Equal(other Value) bool {
	if v.Kind != other.Kind {
		return false
	}
	if v.Kind == KindText {
		return v.Text == other.Text
	}
	if math.IsNaN(v.Number) || math.IsNaN(other.Number) {
		return math.IsNaN(v.Number) && math.IsNaN(other.Number)
	}
	return v.Number == other.Number
}

// String renders the value the way it is written back to the clipboard.
func (v Value) String() string {
	if v.Kind == KindText {
		return v.Text
	}
	return FormatNumber(v.Number)
}

// FormatNumber renders f using the shortest round-trip representation:
// integers print without a fractional part, very large and very small
// magnitudes use exponent form (1e+21, 1.5e-7), NaN and infinities print as
// NaN, Infinity and -Infinity.
func FormatNumber(f float64) string {
	switch {
	case math.IsNaN(f):
		return "NaN"
	case math.IsInf(f, 1):
		return "Infinity"
	case math.IsInf(f, -1):
		return "-Infinity"
	case f == 0:
		return "0"
	}

	abs := math.Abs(f)
	if abs >= 1e21 || abs < 1e-6 {
		s := strconv.FormatFloat(f, 'e', -1, 64)
		mantissa, exp, _ := strings.Cut(s, "e")
		sign := exp[:1]
		digits := strings.TrimLeft(exp[1:], "0")
		if digits == "" {
			digits = "0"
		}
		return mantissa + "e" + sign + digits
	}
	return strconv.FormatFloat(f, 'f', -1, 64)
}

// decimalPattern matches plain decimal literals with an optional exponent.
var decimalPattern = regexp.MustCompile(`^[+-]?(\d+\.?\d*|\.\d+)([eE][+-]?\d+)?$`)

// ParseNumber converts a line to a number. Surrounding whitespace is ignored,
// a blank line is 0, and decimal, exponent, Infinity and 0x/0o/0b integer
// literals are accepted. ok is false for anything else, in which case the
// returned value is NaN.
func ParseNumber(s string) (f float64, ok bool) {
	s = strings.TrimFunc(s, isNumberSpace)
	if s == "" {
		return 0, true
	}

	switch s {
	case "Infinity", "+Infinity":
		return math.Inf(1), true
	case "-Infinity":
		return math.Inf(-1), true
	}

	if base := radixPrefix(s); base != 0 {
		digits := s[2:]
		if digits == "" || digits[0] == '+' || digits[0] == '-' {
			return math.NaN(), false
		}
		n, ok := new(big.Int).SetString(digits, base)
		if !ok {
			return math.NaN(), false
		}
		f, _ := new(big.Float).SetInt(n).Float64()
		return f, true
	}

	if !decimalPattern.MatchString(s) {
		return math.NaN(), false
	}
	f, err := strconv.ParseFloat(s, 64)
	if err != nil && !isRangeErr(err) {
		return math.NaN(), false
	}
	// Out-of-range literals saturate to ±Inf or 0, which ParseFloat already returns.
	return f, true
}

func radixPrefix(s string) int {
	if len(s) < 2 || s[0] != '0' {
		return 0
	}
	switch s[1] {
	case 'x', 'X':
		return 16
	case 'o', 'O':
		return 8
	case 'b', 'B':
		return 2
	}
	return 0
}

func isRangeErr(err error) bool {
	numErr, ok := err.(*strconv.NumError)
	return ok && numErr.Err == strconv.ErrRange
}

// isNumberSpace matches the whitespace and line terminators trimmed before
// parsing. NEL is not one of them.
func isNumberSpace(r rune) bool {
	if r == '\u0085' {
		return false
	}
	return unicode.IsSpace(r) || r == '\uFEFF'
}
