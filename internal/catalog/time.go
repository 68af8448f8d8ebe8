package catalog

import (
	"math"
	"time"
)

// Default bounds for Year.
const (
	DefaultMinYear = 1900
	DefaultMaxYear = 2100
)

// Month returns a value from the months set.
func (c *Catalog) Month() string {
	return c.drawString(SetMonths)
}

// Day returns a weekday name from the days set.
func (c *Catalog) Day() string {
	return c.drawString(SetDays)
}

// YearOptions bounds Year. The zero value means DefaultMinYear to DefaultMaxYear.
type YearOptions struct {
	Min int
	Max int
}

// Year returns a year in [Min, Max].
func (c *Catalog) Year(opts YearOptions) int {
	if opts.Min == 0 && opts.Max == 0 {
		return c.engine.Range(DefaultMinYear, DefaultMaxYear)
	}
	return c.engine.Range(opts.Min, opts.Max)
}

// Hour returns an hour in [0, 23] when twentyFour is set, else in [1, 12].
func (c *Catalog) Hour(twentyFour bool) int {
	if twentyFour {
		return c.engine.Range(0, 23)
	}
	return c.engine.Range(1, 12)
}

// Minute returns a value in [0, 59].
func (c *Catalog) Minute() int {
	return c.engine.Range(0, 59)
}

// Second returns a value in [0, 59].
func (c *Catalog) Second() int {
	return c.engine.Range(0, 59)
}

// AmPm returns "am" or "pm".
func (c *Catalog) AmPm() string {
	if c.Bool(BoolOptions{}) {
		return "am"
	}
	return "pm"
}

// DateOptions bounds Date. Both fields must be set for the bounds to apply.
type DateOptions struct {
	Min time.Time
	Max time.Time
}

// Date returns a random instant with second precision. Without bounds it
// picks a year with Year, then a month and a day valid for that month, all
// in UTC. With bounds it is uniform over [Min, Max] in Min's location.
func (c *Catalog) Date(opts DateOptions) time.Time {
	if !opts.Min.IsZero() && !opts.Max.IsZero() {
		sec := c.engine.Int64Range(opts.Min.Unix(), opts.Max.Unix())
		return time.Unix(sec, 0).In(opts.Min.Location())
	}
	year := c.Year(YearOptions{})
	month := time.Month(c.engine.Range(1, 12))
	day := c.engine.Range(1, DaysIn(year, month))
	return time.Date(year, month, day, c.Hour(true), c.Minute(), c.Second(), 0, time.UTC)
}

// Timestamp returns Unix seconds between the epoch and the int32 limit.
func (c *Catalog) Timestamp() int64 {
	return c.engine.Int64Range(0, math.MaxInt32)
}

// DaysIn returns the number of days in month of year.
func DaysIn(year int, month time.Month) int {
	return time.Date(year, month+1, 0, 0, 0, 0, 0, time.UTC).Day()
}

func daysInYear(year int) int {
	return time.Date(year, time.December, 31, 0, 0, 0, 0, time.UTC).YearDay()
}
