package catalog

import (
	"fmt"
	"math"

	"github.com/google/uuid"
	"github.com/louisbranch/chance/internal/platform/id"
)

// UUID returns a version 4 UUID built from the engine's byte stream, so it
// repeats under the same seed.
func (c *Catalog) UUID() string {
	id, err := uuid.NewRandomFromReader(c.engine)
	if err != nil {
		return uuid.Nil.String()
	}
	return id.String()
}

// ID returns a 26-character lowercase base32 identifier built from the
// engine's byte stream.
func (c *Catalog) ID() string {
	v, err := id.FromReader(c.engine)
	if err != nil {
		return ""
	}
	return v
}

const (
	// DefaultDollarMax is the upper bound Dollar uses when none is given.
	DefaultDollarMax = 10000

	// MaxDollar is the largest bound Dollar honours; larger ones are clamped
	// so the amount in cents fits an int64.
	MaxDollar = 1e15
)

// DollarOptions bounds Dollar. A Max at or below zero, or NaN, means
// DefaultDollarMax.
type DollarOptions struct {
	Max float64
}

// Dollar returns an amount in [0, Max] formatted like "$1,234.56".
func (c *Catalog) Dollar(opts DollarOptions) string {
	max := opts.Max
	if !(max > 0) {
		max = DefaultDollarMax
	}
	max = math.Min(max, MaxDollar)
	cents := c.engine.Int64Range(0, int64(math.Round(max*100)))
	return c.FormatDollar(cents)
}

// FormatDollar renders an amount in cents with thousands grouping.
func (c *Catalog) FormatDollar(cents int64) string {
	sign := ""
	magnitude := uint64(cents)
	if cents < 0 {
		sign = "-"
		magnitude = -magnitude
	}
	return fmt.Sprintf("%s$%s.%02d", sign, c.printer.Sprintf("%d", magnitude/100), magnitude%100)
}
