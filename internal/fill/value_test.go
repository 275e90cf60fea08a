package fill

import (
	"math"
	"testing"
)

func TestParseNumber(t *testing.T) {
	tests := []struct {
		in     string
		want   float64
		wantOK bool
	}{
		{"10", 10, true},
		{"-1", -1, true},
		{"+2.5", 2.5, true},
		{"1.", 1, true},
		{".5", 0.5, true},
		{"1e3", 1000, true},
		{"1E-2", 0.01, true},
		{"  42  ", 42, true},
		{"\t7\t", 7, true},
		{"\u00a08\u2028", 8, true},
		{"\ufeff9", 9, true},
		{"\u00855", 0, false},
		{"", 0, true},
		{"   ", 0, true},
		{"0x1F", 31, true},
		{"0o17", 15, true},
		{"0b101", 5, true},
		{"Infinity", math.Inf(1), true},
		{"-Infinity", math.Inf(-1), true},
		{"1e999", math.Inf(1), true},
		{"abc", 0, false},
		{"1,5", 0, false},
		{"12a", 0, false},
		{"inf", 0, false},
		{"NaN", 0, false},
		{"0x", 0, false},
		{"0x-1", 0, false},
		{"-0x1", 0, false},
		{"1e", 0, false},
		{"1_000", 0, false},
		{"0x1p3", 0, false},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, ok := ParseNumber(tt.in)
			if ok != tt.wantOK {
				t.Fatalf("ParseNumber(%q) ok = %v, want %v", tt.in, ok, tt.wantOK)
			}
			if !ok {
				if !math.IsNaN(got) {
					t.Errorf("ParseNumber(%q) = %v, want NaN", tt.in, got)
				}
				return
			}
			if got != tt.want {
				t.Errorf("ParseNumber(%q) = %v, want %v", tt.in, got, tt.want)
			}
		})
	}
}

func TestFormatNumber(t *testing.T) {
	tests := []struct {
		in   float64
		want string
	}{
		{10, "10"},
		{-1, "-1"},
		{0, "0"},
		{math.Copysign(0, -1), "0"},
		{2.5, "2.5"},
		{0.1, "0.1"},
		{1e20, "100000000000000000000"},
		{1e21, "1e+21"},
		{1.5e-7, "1.5e-7"},
		{0.000001, "0.000001"},
		{math.NaN(), "NaN"},
		{math.Inf(1), "Infinity"},
		{math.Inf(-1), "-Infinity"},
	}

	for _, tt := range tests {
		if got := FormatNumber(tt.in); got != tt.want {
			t.Errorf("FormatNumber(%v) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestValue_Equal(t *testing.T) {
	tests := []struct {
		name string
		a, b Value
		want bool
	}{
		{"same number", Number(1), Number(1), true},
		{"different number", Number(1), Number(2), false},
		{"nan equals nan", Number(math.NaN()), Number(math.NaN()), true},
		{"nan vs number", Number(math.NaN()), Number(0), false},
		{"same text", Text("a"), Text("a"), true},
		{"text vs number", Text("1"), Number(1), false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.a.Equal(tt.b); got != tt.want {
				t.Errorf("Equal() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestValue_String(t *testing.T) {
	if got := Text(" spaced ").String(); got != " spaced " {
		t.Errorf("text String() = %q", got)
	}
	if got := Number(3).String(); got != "3" {
		t.Errorf("number String() = %q", got)
	}
	if !Number(math.NaN()).IsNaN() {
		t.Error("IsNaN should be true for NaN numbers")
	}
	if Text("NaN").IsNaN() {
		t.Error("IsNaN should be false for text")
	}
}

func TestValueKind_Valid(t *testing.T) {
	for _, k := range ValidKinds {
		if !k.Valid() {
			t.Errorf("%q should be valid", k)
		}
	}
	if ValueKind("float").Valid() {
		t.Error("unknown kind should be invalid")
	}
}
