// Package batch repeats generators to build slices of values.
//
// Generators take no arguments; bind any parameters in a closure:
//
//	words := batch.N(5, func() string { return c.Word(catalog.WordOptions{Syllables: 2}) })
package batch

import (
	"fmt"
	"math"
	"strconv"

	apperrors "github.com/louisbranch/chance/internal/platform/errors"
)

const (
	// DefaultAttemptsPerValue scales the default attempt cap of Unique with
	// the number of values requested.
	DefaultAttemptsPerValue = 100

	// MinAttempts is the floor of the default attempt cap.
	MinAttempts = 1000

	// maxPrealloc bounds the capacity reserved up front by Unique.
	maxPrealloc = 1024
)

// ErrExhaustedDomain indicates Unique gave up before collecting enough
// distinct values.
var ErrExhaustedDomain = apperrors.New(apperrors.CodeExhaustedDomain, "generator domain exhausted")

// Option configures Unique.
type Option func(*options)

type options struct {
	maxAttempts int
}

// WithMaxAttempts caps the number of generator calls Unique may make.
// Values below 1 keep the default cap.
func WithMaxAttempts(n int) Option {
	return func(o *options) {
		if n > 0 {
			o.maxAttempts = n
		}
	}
}

// AttemptCap returns the default number of generator calls allowed when
// collecting count distinct values. It saturates at math.MaxInt.
func AttemptCap(count int) int {
	if count > math.MaxInt/DefaultAttemptsPerValue {
		return math.MaxInt
	}
	return max(count*DefaultAttemptsPerValue, MinAttempts)
}

// N calls generate count times and returns the results in call order.
func N[T any](count int, generate func() T) []T {
	if count <= 0 {
		return []T{}
	}
	out := make([]T, count)
	for i := range out {
		out[i] = generate()
	}
	return out
}

// Unique calls generate until count distinct values are collected,
// discarding repeats. Results keep first-seen order.
func Unique[T comparable](count int, generate func() T, opts ...Option) ([]T, error) {
	return UniqueBy(count, generate, func(v T) T { return v }, opts...)
}

// UniqueBy is Unique for values that are not comparable themselves; two
// values are duplicates when key returns the same result for both.
func UniqueBy[T any, K comparable](count int, generate func() T, key func(T) K, opts ...Option) ([]T, error) {
	if count <= 0 {
		return []T{}, nil
	}
	o := options{maxAttempts: AttemptCap(count)}
	for _, opt := range opts {
		if opt != nil {
			opt(&o)
		}
	}

	size := min(count, maxPrealloc)
	seen := make(map[K]struct{}, size)
	out := make([]T, 0, size)
	for attempt := 0; attempt < o.maxAttempts; attempt++ {
		v := generate()
		k := key(v)
		if _, dup := seen[k]; dup {
			continue
		}
		seen[k] = struct{}{}
		out = append(out, v)
		if len(out) == count {
			return out, nil
		}
	}

	return out, apperrors.WrapWithMetadata(
		apperrors.CodeExhaustedDomain,
		fmt.Sprintf("found %d of %d distinct values after %d attempts", len(out), count, o.maxAttempts),
		map[string]string{
			"Found":    strconv.Itoa(len(out)),
			"Count":    strconv.Itoa(count),
			"Attempts": strconv.Itoa(o.maxAttempts),
		},
		ErrExhaustedDomain,
	)
}
