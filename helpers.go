package chance

import (
	"github.com/louisbranch/chance/internal/core/batch"
	"github.com/louisbranch/chance/internal/core/selection"
)

// Pick returns one element of items; it fails with ErrEmptyInput when
// items is empty.
func Pick[T any](c *Chance, items []T) (T, error) {
	return selection.Pick(c.engine, items)
}

// PickN draws count elements with replacement. A count below 1 returns an
// empty slice.
func PickN[T any](c *Chance, items []T, count int) ([]T, error) {
	return selection.PickN(c.engine, items, count)
}

// PickUnique draws count distinct positions of items without replacement.
// It fails with ErrCountExceedsPopulation when count > len(items).
func PickUnique[T any](c *Chance, items []T, count int) ([]T, error) {
	return selection.PickUnique(c.engine, items, count)
}

// Shuffle returns a random permutation of items. items is not modified.
func Shuffle[T any](c *Chance, items []T) []T {
	return selection.Shuffle(c.engine, items)
}

// Weighted picks one of values with probability proportional to its
// weight. ok is false when the slices differ in length. Empty input fails
// with ErrEmptyInput and non-positive weights with ErrInvalidWeight.
func Weighted[T any](c *Chance, values []T, weights []int) (value T, ok bool, err error) {
	value, ok, err = selection.Weighted(c.engine, values, weights)
	if !ok && err == nil {
		c.logger.Debug().
			Err(selection.CheckLengths(len(values), len(weights))).
			Msg("weighted choice absent")
	}
	return value, ok, err
}

// N calls generate count times. Bind generator arguments with a closure.
func N[T any](count int, generate func() T) []T {
	return batch.N(count, generate)
}

// Unique collects count distinct results of generate. It fails with
// ErrExhaustedDomain once the attempt cap is reached, returning what it
// found so far.
func Unique[T comparable](c *Chance, count int, generate func() T) ([]T, error) {
	out, err := batch.Unique(count, generate, c.batchOptions()...)
	if err != nil {
		c.logExhausted(count, len(out), err)
	}
	return out, err
}

// UniqueBy is Unique with duplicates detected by key.
func UniqueBy[T any, K comparable](c *Chance, count int, generate func() T, key func(T) K) ([]T, error) {
	out, err := batch.UniqueBy(count, generate, key, c.batchOptions()...)
	if err != nil {
		c.logExhausted(count, len(out), err)
	}
	return out, err
}

func (c *Chance) logExhausted(count, found int, err error) {
	c.logger.Warn().
		Err(err).
		Int("count", count).
		Int("found", found).
		Msg("generator domain exhausted")
}
