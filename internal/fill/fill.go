package fill

import (
	"fmt"
	"regexp"
	"strings"

	nferrors "github.com/dbmrq/nullfill/internal/errors"
)

// Sentinel spellings. Matching is exact: "Null" or " null" are ordinary values.
const (
	SentinelLower = "null"
	SentinelUpper = "NULL"
)

// MalformedPolicy decides what happens to a numeric-mode line that is not a number.
type MalformedPolicy string

const (
	// MalformedPassthrough keeps the line as NaN and carries it forward to
	// following sentinels.
	MalformedPassthrough MalformedPolicy = "passthrough"
	// MalformedReject fails the whole transform.
	MalformedReject MalformedPolicy = "reject"
)

// ValidMalformedPolicies lists the accepted policies.
var ValidMalformedPolicies = []MalformedPolicy{MalformedPassthrough, MalformedReject}

// Record pairs one input line with its filled value.
type Record struct {
	// Original is the line exactly as pasted.
	Original string
	// Filled is the line's own value, or the forward-filled value for a sentinel.
	Filled Value
	// Sentinel is true when Original was "null" or "NULL".
	Sentinel bool
	// Malformed is true for numeric-mode lines that did not parse.
	Malformed bool
}

// Options configures Transform.
type Options struct {
	// Kind selects numeric or text interpretation (default: numeric).
	Kind ValueKind
	// Fallback is emitted for sentinels with no preceding value.
	// Nil means -1 in numeric mode and "" in text mode.
	Fallback *Value
	// OnMalformed controls unparsable numeric lines (default: passthrough).
	OnMalformed MalformedPolicy
}

// DefaultOptions returns options for the given kind with the kind's default fallback.
func DefaultOptions(kind ValueKind) Options {
	return Options{
		Kind:        kind,
		OnMalformed: MalformedPassthrough,
	}
}

// DefaultFallback returns the fallback used when none is configured.
func DefaultFallback(kind ValueKind) Value {
	if kind == KindText {
		return Text("")
	}
	return Number(-1)
}

// FallbackValue returns the effective fallback for these options.
func (o Options) FallbackValue() Value {
	if o.Fallback != nil {
		return *o.Fallback
	}
	return DefaultFallback(o.kind())
}

func (o Options) kind() ValueKind {
	if o.Kind == "" {
		return KindNumeric
	}
	return o.Kind
}

// ParseFallback interprets a configured fallback string for the given kind.
// An empty string selects the kind default.
func ParseFallback(kind ValueKind, s string) (*Value, error) {
	if s == "" {
		return nil, nil
	}
	if kind == KindText {
		v := Text(s)
		return &v, nil
	}
	f, ok := ParseNumber(s)
	if !ok {
		return nil, fmt.Errorf("fallback %q is not a number", s)
	}
	v := Number(f)
	return &v, nil
}

// IsSentinel reports whether a line marks a missing value.
func IsSentinel(line string) bool {
	return line == SentinelLower || line == SentinelUpper
}

// lineBreak splits on CRLF or LF.
var lineBreak = regexp.MustCompile(`\r?\n`)

// SplitLines splits raw clipboard text into lines, keeping empty lines and
// order. Empty input yields a single empty line.
func SplitLines(raw string) []string {
	return lineBreak.Split(raw, -1)
}

// Transform splits raw into lines and forward-fills every sentinel with the
// nearest preceding non-sentinel value. The result always has one record per
// line, in input order. An error is returned only for an unknown value kind
// or, under MalformedReject, for the first unparsable numeric line.
func Transform(raw string, opts Options) ([]Record, error) {
	kind := opts.kind()
	if !kind.Valid() {
		return nil, nferrors.New(nferrors.ErrInput, fmt.Sprintf("unknown value kind %q", kind))
	}

	lines := SplitLines(raw)
	records := make([]Record, 0, len(lines))
	lastSeen := opts.FallbackValue()

	for i, line := range lines {
		if IsSentinel(line) {
			records = append(records, Record{
				Original: line,
				Filled:   lastSeen,
				Sentinel: true,
			})
			continue
		}

		rec := Record{Original: line}
		if kind == KindNumeric {
			f, ok := ParseNumber(line)
			if !ok {
				if opts.OnMalformed == MalformedReject {
					return nil, nferrors.MalformedNumericLine(i+1, line)
				}
				rec.Malformed = true
			}
			rec.Filled = Number(f)
		} else {
			rec.Filled = Text(line)
		}

		lastSeen = rec.Filled
		records = append(records, rec)
	}

	return records, nil
}

// Join returns the filled column as newline-separated text, in record order,
// with no trailing newline.
func Join(records []Record) string {
	values := make([]string, len(records))
	for i, r := range records {
		values[i] = r.Filled.String()
	}
	return strings.Join(values, "\n")
}

// Summary counts what a transform did.
type Summary struct {
	Lines     int
	Sentinels int
	// Fallbacks is the number of sentinels that had no preceding value.
	Fallbacks int
	Malformed int
}

// Summarize computes a Summary over records.
func Summarize(records []Record) Summary {
	s := Summary{Lines: len(records)}
	seenValue := false
	for _, r := range records {
		switch {
		case r.Sentinel:
			s.Sentinels++
			if !seenValue {
				s.Fallbacks++
			}
		default:
			seenValue = true
			if r.Malformed {
				s.Malformed++
			}
		}
	}
	return s
}
