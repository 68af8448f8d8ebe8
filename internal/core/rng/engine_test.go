package rng

import (
	"errors"
	"math"
	"testing"
)

func TestSeedDeterminism(t *testing.T) {
	draw := func(e *Engine) []int {
		out := make([]int, 0, 64)
		for i := 0; i < 16; i++ {
			out = append(out, int(e.Float()*1e6), e.Roll(6), e.Range(-50, 50), e.Range(10, 3))
		}
		return out
	}

	for _, seed := range []any{0, 1, 42, -7, uint64(math.MaxUint64), "12345", 3.5} {
		e := New(0)
		if err := e.Seed(seed); err != nil {
			t.Fatalf("seed %v: %v", seed, err)
		}
		first := draw(e)
		if err := e.Seed(seed); err != nil {
			t.Fatalf("reseed %v: %v", seed, err)
		}
		second := draw(e)
		for i := range first {
			if first[i] != second[i] {
				t.Fatalf("seed %v: draw %d differs: %d vs %d", seed, i, first[i], second[i])
			}
		}
	}
}

func TestSeedEquivalentForms(t *testing.T) {
	want := New(42).Uint64()
	for _, seed := range []any{42, int8(42), uint16(42), 42.0, float32(42), "42", " 42 ", "42.0", "042", "+42", "0042.0"} {
		e := New(0)
		if err := e.Seed(seed); err != nil {
			t.Fatalf("seed %#v: %v", seed, err)
		}
		if got := e.Uint64(); got != want {
			t.Fatalf("seed %#v: first draw %d, want %d", seed, got, want)
		}
		if e.SeedValue() != 42 {
			t.Fatalf("seed %#v: SeedValue = %d, want 42", seed, e.SeedValue())
		}
	}
}

func TestSeedStringsAreDecimal(t *testing.T) {
	tests := []struct {
		value string
		want  uint64
	}{
		{value: "010", want: 10},
		{value: "0", want: 0},
		{value: "000", want: 0},
		{value: "-1", want: math.MaxUint64},
		{value: "18446744073709551615", want: math.MaxUint64},
		{value: "9223372036854775808", want: 1 << 63},
	}

	for _, tt := range tests {
		t.Run(tt.value, func(t *testing.T) {
			got, err := ToSeed(tt.value)
			if err != nil {
				t.Fatalf("ToSeed(%q) error = %v", tt.value, err)
			}
			if got != tt.want {
				t.Fatalf("ToSeed(%q) = %d, want %d", tt.value, got, tt.want)
			}
		})
	}

	max, err := ToSeed(uint64(math.MaxUint64))
	if err != nil {
		t.Fatalf("ToSeed(MaxUint64) error = %v", err)
	}
	if str, _ := ToSeed("18446744073709551615"); str != max {
		t.Fatalf("string and uint64 forms of MaxUint64 differ: %d vs %d", str, max)
	}
}

func TestSeedRejectsNonNumbers(t *testing.T) {
	tests := []struct {
		name  string
		value any
	}{
		{name: "nil", value: nil},
		{name: "bool", value: true},
		{name: "word", value: "banana"},
		{name: "hex", value: "0x10"},
		{name: "nan", value: math.NaN()},
		{name: "inf", value: math.Inf(1)},
		{name: "slice", value: []int{1}},
		{name: "map", value: map[string]int{"a": 1}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			e := New(9)
			before := New(9).Uint64()
			err := e.Seed(tt.value)
			if !errors.Is(err, ErrInvalidSeed) {
				t.Fatalf("Seed(%v) error = %v, want ErrInvalidSeed", tt.value, err)
			}
			if got := e.Uint64(); got != before {
				t.Fatal("expected failed seed to leave engine state untouched")
			}
		})
	}
}

func TestFloatRange(t *testing.T) {
	e := New(7)
	for i := 0; i < 10000; i++ {
		f := e.Float()
		if f < 0 || f >= 1 {
			t.Fatalf("Float() = %v, out of [0, 1)", f)
		}
	}
}

func TestRollRange(t *testing.T) {
	e := New(11)
	for _, m := range []int{1, 2, 6, 20, 100, 1 << 40} {
		for i := 0; i < 1000; i++ {
			got := e.Roll(m)
			if got < 1 || got > m {
				t.Fatalf("Roll(%d) = %d, out of range", m, got)
			}
		}
	}
}

func TestRollClampsBelowOne(t *testing.T) {
	e := New(11)
	for _, m := range []int{0, -1, -100} {
		if got := e.Roll(m); got != 1 {
			t.Fatalf("Roll(%d) = %d, want 1", m, got)
		}
	}
}

func TestRangeBounds(t *testing.T) {
	e := New(13)
	tests := []struct{ min, max int }{
		{1, 2}, {-10, 10}, {0, 1000}, {math.MinInt64, math.MaxInt64}, {math.MaxInt64 - 1, math.MaxInt64},
	}
	for _, tt := range tests {
		for i := 0; i < 500; i++ {
			got := e.Range(tt.min, tt.max)
			if got < tt.min || got > tt.max {
				t.Fatalf("Range(%d, %d) = %d, out of range", tt.min, tt.max, got)
			}
		}
	}
}

func TestRangeCoversEndpoints(t *testing.T) {
	e := New(17)
	seen := map[int]bool{}
	for i := 0; i < 2000; i++ {
		seen[e.Range(3, 7)] = true
	}
	for v := 3; v <= 7; v++ {
		if !seen[v] {
			t.Fatalf("Range(3, 7) never produced %d", v)
		}
	}
}

func TestRangeDegenerateCollapsesToMin(t *testing.T) {
	e := New(19)
	tests := []struct{ min, max int }{{5, 5}, {5, 4}, {0, -10}, {100, 1}}
	for _, tt := range tests {
		if got := e.Range(tt.min, tt.max); got != tt.min {
			t.Fatalf("Range(%d, %d) = %d, want %d", tt.min, tt.max, got, tt.min)
		}
	}
	if New(19).Uint64() != e.Uint64() {
		t.Fatal("expected degenerate ranges not to consume draws")
	}
}

func TestInt64Range(t *testing.T) {
	e := New(23)
	for i := 0; i < 1000; i++ {
		got := e.Int64Range(-1<<40, 1<<40)
		if got < -1<<40 || got > 1<<40 {
			t.Fatalf("Int64Range = %d, out of range", got)
		}
	}
	if got := e.Int64Range(8, 2); got != 8 {
		t.Fatalf("Int64Range(8, 2) = %d, want 8", got)
	}
}

func TestReadIsDeterministic(t *testing.T) {
	a := make([]byte, 21)
	b := make([]byte, 21)
	if n, err := New(29).Read(a); n != len(a) || err != nil {
		t.Fatalf("Read = %d, %v", n, err)
	}
	if _, err := New(29).Read(b); err != nil {
		t.Fatalf("Read: %v", err)
	}
	if string(a) != string(b) {
		t.Fatal("expected identical bytes for identical seeds")
	}
}

func TestDifferentSeedsDiverge(t *testing.T) {
	if New(1).Uint64() == New(2).Uint64() {
		t.Fatal("expected different seeds to produce different first draws")
	}
}
