// Package chance generates reproducible random data: numbers, text, names,
// dates, network addresses, cards, dice and more.
//
// Each Chance owns its engine and data sets, so instances never share
// state. The same seed always yields the same sequence of values:
//
//	c, err := chance.New(chance.WithSeed(42))
//	if err != nil {
//		return err
//	}
//	name := c.Name(chance.NameOptions{Middle: true})
//	hand, err := chance.PickUnique(c, c.Deck(), 5)
//
// A Chance is not safe for concurrent use; give each goroutine its own.
package chance

import (
	"fmt"

	"github.com/louisbranch/chance/internal/catalog"
	"github.com/louisbranch/chance/internal/core/batch"
	"github.com/louisbranch/chance/internal/core/dataset"
	"github.com/louisbranch/chance/internal/core/rng"
	"github.com/louisbranch/chance/internal/random"
	"github.com/rs/zerolog"
)

// Chance is a seeded generator with its own data sets.
type Chance struct {
	*catalog.Catalog

	engine      *rng.Engine
	sets        *dataset.Registry
	logger      zerolog.Logger
	maxAttempts int
}

// New returns a Chance configured by opts. It fails when the WithSeed value
// is not number-compatible or when system entropy cannot be read.
func New(opts ...Option) (*Chance, error) {
	s := defaultSettings()
	for _, opt := range opts {
		if opt != nil {
			opt(&s)
		}
	}

	var (
		seed uint64
		err  error
	)
	if s.seeded {
		seed, err = rng.ToSeed(s.seed)
	} else {
		seed, err = random.NewSeed()
		if err != nil {
			err = fmt.Errorf("generate seed: %w", err)
		}
	}
	if err != nil {
		return nil, err
	}

	engine := rng.New(seed)
	sets := dataset.NewRegistry(engine)
	if s.defaultSets {
		catalog.Install(sets)
	}

	c := &Chance{
		Catalog:     catalog.New(engine, sets),
		engine:      engine,
		sets:        sets,
		logger:      s.logger,
		maxAttempts: s.maxAttempts,
	}
	c.logger.Debug().Uint64("seed", seed).Bool("explicit", s.seeded).Msg("engine seeded")
	return c, nil
}

// Must is New that panics on error.
func Must(opts ...Option) *Chance {
	c, err := New(opts...)
	if err != nil {
		panic(err)
	}
	return c
}

// Seed re-initializes the engine. Integers, integral floats and numeric
// strings with the same value seed identically. On error the engine keeps
// its previous state.
func (c *Chance) Seed(value any) error {
	if err := c.engine.Seed(value); err != nil {
		return err
	}
	c.logger.Debug().Uint64("seed", c.engine.SeedValue()).Msg("engine reseeded")
	return nil
}

// SeedValue returns the seed the engine was last initialized with.
func (c *Chance) SeedValue() uint64 {
	return c.engine.SeedValue()
}

// Random returns a float in [0, 1).
func (c *Chance) Random() float64 {
	return c.engine.Float()
}

// Roll returns an integer in [1, m]. Values of m below 1 return 1.
func (c *Chance) Roll(m int) int {
	return c.engine.Roll(m)
}

// Range returns an integer in [m, n], or m when n <= m.
func (c *Chance) Range(m, n int) int {
	return c.engine.Range(m, n)
}

// Define stores set under name, replacing any previous definition.
func (c *Chance) Define(name string, set Set) {
	c.sets.Define(name, set)
}

// DefineValues stores a fixed data set.
func (c *Chance) DefineValues(name string, values ...any) {
	c.sets.Define(name, dataset.Fixed(values...))
}

// DefineFunc stores a generated data set.
func (c *Chance) DefineFunc(name string, fn func() any) {
	c.sets.Define(name, dataset.Generated(fn))
}

// Append adds values to a fixed data set. It fails with ErrUnknownDataSet
// when name is undefined and ErrNotASequence when the set is generated.
func (c *Chance) Append(name string, values ...any) error {
	return c.sets.Append(name, values...)
}

// FromSet returns one value from the named data set; ok is false when the
// set is undefined or empty.
func (c *Chance) FromSet(name string) (value any, ok bool) {
	return c.sets.FromSet(name)
}

// DataSets returns the defined data set names in sorted order.
func (c *Chance) DataSets() []string {
	return c.sets.Names()
}

func (c *Chance) batchOptions() []batch.Option {
	return []batch.Option{batch.WithMaxAttempts(c.maxAttempts)}
}

// Generators returns the names accepted by Generate in sorted order.
func Generators() []string {
	return catalog.Names()
}
