package catalog

import (
	"math"
	"strings"

	"github.com/louisbranch/chance/internal/core/selection"
)

// BoolOptions configures Bool.
type BoolOptions struct {
	// Likelihood is the percent chance of true. Zero means 50; values at or
	// above 100 always return true and negative values never do.
	Likelihood int
}

// Bool returns a random boolean.
func (c *Catalog) Bool(opts BoolOptions) bool {
	likelihood := opts.Likelihood
	if likelihood == 0 {
		likelihood = 50
	}
	return c.engine.Roll(100) <= likelihood
}

// IntegerOptions bounds Integer. The zero value spans the int32 range.
type IntegerOptions struct {
	Min int
	Max int
}

// Integer returns an integer in [Min, Max].
func (c *Catalog) Integer(opts IntegerOptions) int {
	if opts.Min == 0 && opts.Max == 0 {
		return c.engine.Range(math.MinInt32, math.MaxInt32)
	}
	return c.engine.Range(opts.Min, opts.Max)
}

// Natural returns an integer in [0, max]. A max below 1 means math.MaxInt32.
func (c *Catalog) Natural(max int) int {
	if max < 1 {
		max = math.MaxInt32
	}
	return c.engine.Range(0, max)
}

// DefaultFixed is the number of decimal places Float keeps by default.
const DefaultFixed = 4

// FloatOptions bounds Float. The zero value returns values in [0, 1].
type FloatOptions struct {
	Min   float64
	Max   float64
	Fixed int
}

// Float returns a value in [Min, Max] rounded to Fixed decimal places.
func (c *Catalog) Float(opts FloatOptions) float64 {
	lo, hi := opts.Min, opts.Max
	if lo == 0 && hi == 0 {
		hi = 1
	}
	if hi <= lo {
		return lo
	}
	fixed := opts.Fixed
	if fixed <= 0 {
		fixed = DefaultFixed
	}
	scale := math.Pow10(fixed)
	v := lo + c.engine.Float()*(hi-lo)
	return math.Min(math.Round(v*scale)/scale, hi)
}

// CharKind selects the pool Character draws from.
type CharKind int

const (
	CharAny CharKind = iota
	CharLower
	CharUpper
	CharAlpha
	CharDigit
	CharSymbol
	CharAlphanumeric
)

const (
	lowerPool  = "abcdefghijklmnopqrstuvwxyz"
	upperPool  = "ABCDEFGHIJKLMNOPQRSTUVWXYZ"
	digitPool  = "0123456789"
	symbolPool = "!@#$%^&*()[]"
	hexPool    = "0123456789abcdef"
)

func (k CharKind) pool() string {
	switch k {
	case CharLower:
		return lowerPool
	case CharUpper:
		return upperPool
	case CharAlpha:
		return lowerPool + upperPool
	case CharDigit:
		return digitPool
	case CharSymbol:
		return symbolPool
	case CharAlphanumeric:
		return lowerPool + upperPool + digitPool
	default:
		return lowerPool + upperPool + digitPool + symbolPool
	}
}

// CharacterOptions configures Character. A non-empty Pool overrides Kind.
type CharacterOptions struct {
	Pool string
	Kind CharKind
}

// Character returns a single character drawn from the configured pool.
func (c *Catalog) Character(opts CharacterOptions) string {
	pool := []rune(opts.Pool)
	if len(pool) == 0 {
		pool = []rune(opts.Kind.pool())
	}
	r, _ := selection.Pick(c.engine, pool)
	return string(r)
}

// StringOptions configures String. A Length below 1 picks one in [5, 20].
type StringOptions struct {
	Length int
	Pool   string
	Kind   CharKind
}

// String returns a random string of characters.
func (c *Catalog) String(opts StringOptions) string {
	length := opts.Length
	if length < 1 {
		length = c.engine.Range(5, 20)
	}
	var b strings.Builder
	for range length {
		b.WriteString(c.Character(CharacterOptions{Pool: opts.Pool, Kind: opts.Kind}))
	}
	return b.String()
}

// Hash returns a lowercase hexadecimal string. A length below 1 means 40.
func (c *Catalog) Hash(length int) string {
	if length < 1 {
		length = 40
	}
	return c.String(StringOptions{Length: length, Pool: hexPool})
}
