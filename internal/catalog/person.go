package catalog

import (
	"fmt"
	"strings"
	"time"

	"github.com/spf13/cast"
)

// Gender returns a value from the genders set.
func (c *Catalog) Gender() string {
	return c.drawString(SetGenders)
}

// Prefix returns a name prefix such as "Dr.".
func (c *Catalog) Prefix() string {
	return c.drawString(SetPrefixes)
}

// Suffix returns a name suffix such as "Jr.".
func (c *Catalog) Suffix() string {
	return c.drawString(SetSuffixes)
}

// FirstName returns a value from the firstNames set.
func (c *Catalog) FirstName() string {
	return c.drawString(SetFirstNames)
}

// LastName returns a value from the lastNames set.
func (c *Catalog) LastName() string {
	return c.drawString(SetLastNames)
}

// NameOptions adds optional parts to Name.
type NameOptions struct {
	Middle bool
	Prefix bool
	Suffix bool
}

// Name returns a full name like "Dr. Elena Kofi Okonkwo".
func (c *Catalog) Name(opts NameOptions) string {
	parts := make([]string, 0, 5)
	if opts.Prefix {
		parts = append(parts, c.Prefix())
	}
	parts = append(parts, c.FirstName())
	if opts.Middle {
		parts = append(parts, c.FirstName())
	}
	parts = append(parts, c.LastName())
	if opts.Suffix {
		parts = append(parts, c.Suffix())
	}
	return strings.Join(nonEmpty(parts), " ")
}

// AgeOptions selects the band Age draws from. The zero value means adult.
type AgeOptions struct {
	Kind string
}

// Age returns an age within the band of the requested kind. Kinds missing
// from the ages set draw from 1 to 100.
func (c *Catalog) Age(opts AgeOptions) int {
	kind := opts.Kind
	if kind == "" {
		kind = AgeAdult
	}
	band, ok := c.ageBand(kind)
	if !ok {
		band = AgeBand{Kind: kind, Min: 1, Max: 100}
	}
	return c.engine.Range(band.Min, band.Max)
}

// Birthday returns midnight of a day on which an adult would have been born,
// relative to now.
func (c *Catalog) Birthday(now time.Time) time.Time {
	year := now.Year() - c.Age(AgeOptions{Kind: AgeAdult})
	day := c.engine.Range(1, daysInYear(year))
	return time.Date(year, time.January, day, 0, 0, 0, 0, now.Location())
}

// SSN returns a number formatted like a US social security number.
func (c *Catalog) SSN() string {
	return fmt.Sprintf("%03d-%02d-%04d",
		c.engine.Range(1, 899),
		c.engine.Range(1, 99),
		c.engine.Range(1, 9999),
	)
}

// Phone returns a number formatted like a North American phone number.
func (c *Catalog) Phone() string {
	return fmt.Sprintf("(%03d) %03d-%04d",
		c.engine.Range(201, 999),
		c.engine.Range(200, 999),
		c.engine.Range(0, 9999),
	)
}

func (c *Catalog) ageBand(kind string) (AgeBand, bool) {
	values, _ := c.sets.Values(SetAges)
	for _, v := range values {
		band, ok := toAgeBand(v)
		if ok && band.Kind == kind {
			return band, true
		}
	}
	return AgeBand{}, false
}

// toAgeBand accepts an AgeBand or a map with kind, min and max keys, the
// shape scripted data sets produce.
func toAgeBand(v any) (AgeBand, bool) {
	switch b := v.(type) {
	case AgeBand:
		return b, true
	case *AgeBand:
		if b == nil {
			return AgeBand{}, false
		}
		return *b, true
	}
	m, err := cast.ToStringMapE(v)
	if err != nil {
		return AgeBand{}, false
	}
	kind, err := cast.ToStringE(m["kind"])
	if err != nil || kind == "" {
		return AgeBand{}, false
	}
	lo, err := cast.ToIntE(m["min"])
	if err != nil {
		return AgeBand{}, false
	}
	hi, err := cast.ToIntE(m["max"])
	if err != nil {
		return AgeBand{}, false
	}
	return AgeBand{Kind: kind, Min: lo, Max: hi}, true
}

func nonEmpty(parts []string) []string {
	out := parts[:0]
	for _, p := range parts {
		if p != "" {
			out = append(out, p)
		}
	}
	return out
}
