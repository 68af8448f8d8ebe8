// Package catalog provides ready-made generators composed from the random
// engine, the selection helpers and the data set registry.
//
// Every vocabulary (names, months, top-level domains, cards, ...) is read
// from a named data set at call time, so redefining a set changes what the
// generators produce. Install loads the defaults.
package catalog

import (
	"github.com/louisbranch/chance/internal/core/dataset"
	"github.com/louisbranch/chance/internal/core/rng"
	"github.com/spf13/cast"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

// Catalog generates values from an engine and a data set registry.
// It is not safe for concurrent use.
type Catalog struct {
	engine  *rng.Engine
	sets    *dataset.Registry
	title   cases.Caser
	printer *message.Printer
}

// New returns a catalog drawing from engine and reading vocabularies from sets.
func New(engine *rng.Engine, sets *dataset.Registry) *Catalog {
	return &Catalog{
		engine:  engine,
		sets:    sets,
		title:   cases.Title(language.English),
		printer: message.NewPrinter(language.English),
	}
}

// Engine returns the engine the catalog draws from.
func (c *Catalog) Engine() *rng.Engine {
	return c.engine
}

// Sets returns the registry the catalog reads vocabularies from.
func (c *Catalog) Sets() *dataset.Registry {
	return c.sets
}

// drawString returns one value of the named set as a string, or "" when the
// set is missing or empty.
func (c *Catalog) drawString(name string) string {
	v, ok := c.sets.FromSet(name)
	if !ok {
		return ""
	}
	return cast.ToString(v)
}

// stringValues returns the fixed values of the named set as strings.
func (c *Catalog) stringValues(name string) []string {
	values, ok := c.sets.Values(name)
	if !ok {
		return nil
	}
	return cast.ToStringSlice(values)
}

func (c *Catalog) capitalize(s string) string {
	return c.title.String(s)
}
