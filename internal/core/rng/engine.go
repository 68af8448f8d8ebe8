// Package rng provides the seedable random engine every generator draws from.
//
// # Algorithm
//
// The engine is PCG-DXSM with 128-bit state as implemented by math/rand/v2,
// seeded with (seed, Stream). Only PCG.Uint64 is consumed; the derivations
// below are part of this package so identical seeds give identical output
// regardless of how math/rand/v2 evolves its Rand helpers:
//
//   - Float: the top 53 bits of one draw divided by 2^53.
//   - Bounded integers: rejection of draws below (2^64 - n) mod n, then x mod n.
//
// Changing any of these breaks reproducibility of previously recorded seeds.
package rng

import (
	"fmt"
	"math"
	"math/rand/v2"
	"strings"

	apperrors "github.com/louisbranch/chance/internal/platform/errors"
	"github.com/spf13/cast"
)

// Stream is the fixed PCG stream selector paired with every seed.
const Stream uint64 = 0x9e3779b97f4a7c15

// ErrInvalidSeed indicates a seed value that is not number-compatible.
var ErrInvalidSeed = apperrors.New(apperrors.CodeInvalidSeed, "seed must be a number")

// Engine is a deterministic random source. It is not safe for concurrent use.
type Engine struct {
	pcg  *rand.PCG
	seed uint64
}

// New returns an engine seeded with seed.
func New(seed uint64) *Engine {
	return &Engine{
		pcg:  rand.NewPCG(seed, Stream),
		seed: seed,
	}
}

// Seed re-initializes the engine from any number-compatible value.
//
// Integers (signed or unsigned), integral floats and numeric strings seed
// by their integer value, so Seed(42), Seed(42.0) and Seed("42") agree.
// Fractional floats seed by their IEEE-754 bits. Nil, booleans, NaN,
// infinities and non-numeric strings fail with ErrInvalidSeed and leave
// the engine untouched.
func (e *Engine) Seed(value any) error {
	seed, err := ToSeed(value)
	if err != nil {
		return err
	}
	e.Reseed(seed)
	return nil
}

// Reseed re-initializes the engine from a raw seed.
func (e *Engine) Reseed(seed uint64) {
	e.seed = seed
	e.pcg.Seed(seed, Stream)
}

// SeedValue returns the seed the engine was last initialized with.
func (e *Engine) SeedValue() uint64 {
	return e.seed
}

// Uint64 returns the next raw 64-bit draw.
func (e *Engine) Uint64() uint64 {
	return e.pcg.Uint64()
}

// Float returns a value in [0, 1).
func (e *Engine) Float() float64 {
	return float64(e.pcg.Uint64()>>11) / (1 << 53)
}

// Roll returns an integer in [1, m]. Values of m below 1 collapse to 1,
// the same policy Range applies to degenerate ranges.
func (e *Engine) Roll(m int) int {
	return e.Range(1, m)
}

// Range returns an integer in [min, max]. When max <= min it returns min
// without consuming a draw.
func (e *Engine) Range(min, max int) int {
	if max <= min {
		return min
	}
	span := uint64(max) - uint64(min)
	if span == math.MaxUint64 {
		return int(e.pcg.Uint64())
	}
	return min + int(e.below(span+1))
}

// Int64Range is Range for int64 bounds.
func (e *Engine) Int64Range(min, max int64) int64 {
	if max <= min {
		return min
	}
	span := uint64(max) - uint64(min)
	if span == math.MaxUint64 {
		return int64(e.pcg.Uint64())
	}
	return min + int64(e.below(span+1))
}

// Read fills p with random bytes. It never fails.
func (e *Engine) Read(p []byte) (int, error) {
	for i := 0; i < len(p); i += 8 {
		x := e.pcg.Uint64()
		for j := 0; j < 8 && i+j < len(p); j++ {
			p[i+j] = byte(x >> (8 * j))
		}
	}
	return len(p), nil
}

// below returns a uniform value in [0, n) for n > 0.
func (e *Engine) below(n uint64) uint64 {
	threshold := -n % n
	for {
		x := e.pcg.Uint64()
		if x >= threshold {
			return x % n
		}
	}
}

// ToSeed converts a number-compatible value to a raw seed.
func ToSeed(value any) (uint64, error) {
	switch v := value.(type) {
	case nil, bool:
		return 0, invalidSeed(value, nil)
	case uint:
		return uint64(v), nil
	case uint64:
		return v, nil
	case float32:
		return floatSeed(value, float64(v))
	case float64:
		return floatSeed(value, v)
	case string:
		trimmed := strings.TrimSpace(v)
		if digits, ok := decimalInteger(trimmed); ok {
			if n, err := cast.ToInt64E(digits); err == nil {
				return uint64(n), nil
			}
			if n, err := cast.ToUint64E(digits); err == nil {
				return n, nil
			}
		}
		f, err := cast.ToFloat64E(trimmed)
		if err != nil {
			return 0, invalidSeed(value, err)
		}
		return floatSeed(value, f)
	}

	n, err := cast.ToInt64E(value)
	if err != nil {
		return 0, invalidSeed(value, err)
	}
	return uint64(n), nil
}

// decimalInteger reports whether s is an optionally signed run of decimal
// digits and returns it without leading zeros, so cast never reads "010" as
// octal or "0x10" as hex.
func decimalInteger(s string) (string, bool) {
	sign, digits := "", s
	if strings.HasPrefix(digits, "-") || strings.HasPrefix(digits, "+") {
		sign, digits = digits[:1], digits[1:]
	}
	if digits == "" || strings.TrimLeft(digits, "0123456789") != "" {
		return "", false
	}
	digits = strings.TrimLeft(digits, "0")
	if digits == "" {
		return "0", true
	}
	if sign == "+" {
		sign = ""
	}
	return sign + digits, true
}

func floatSeed(original any, f float64) (uint64, error) {
	if math.IsNaN(f) || math.IsInf(f, 0) {
		return 0, invalidSeed(original, nil)
	}
	if f == math.Trunc(f) && f >= math.MinInt64 && f < math.MaxInt64 {
		return uint64(int64(f)), nil
	}
	return math.Float64bits(f), nil
}

func invalidSeed(value any, cause error) error {
	if cause == nil {
		cause = ErrInvalidSeed
	}
	return apperrors.WrapWithMetadata(
		apperrors.CodeInvalidSeed,
		fmt.Sprintf("seed %v (%T) is not a number", value, value),
		map[string]string{"Value": fmt.Sprintf("%v", value)},
		cause,
	)
}
