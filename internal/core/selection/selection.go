// Package selection draws elements from collections: single picks, picks
// with and without replacement, shuffles and weighted choice.
//
// All helpers take the random source explicitly and never mutate the
// caller's slice.
package selection

import (
	"fmt"
	"math"
	"slices"
	"strconv"

	apperrors "github.com/louisbranch/chance/internal/platform/errors"
)

// Source draws bounded integers. *rng.Engine satisfies it.
type Source interface {
	// Range returns an integer in [min, max], or min when max <= min.
	Range(min, max int) int
}

var (
	// ErrEmptyInput indicates a draw from an empty collection.
	ErrEmptyInput = apperrors.New(apperrors.CodeEmptyInput, "cannot draw from an empty collection")

	// ErrCountExceedsPopulation indicates more unique items were requested
	// than the collection holds.
	ErrCountExceedsPopulation = apperrors.New(apperrors.CodeCountExceedsPopulation, "count exceeds population")

	// ErrMismatchedLengths describes a weighted draw whose values and weights
	// differ in length. Weighted reports this case as an absent result; the
	// error exists for callers that need to surface it.
	ErrMismatchedLengths = apperrors.New(apperrors.CodeMismatchedLengths, "values and weights differ in length")

	// ErrInvalidWeight indicates a weight that is zero or negative, or
	// weights too large to sum.
	ErrInvalidWeight = apperrors.New(apperrors.CodeInvalidWeight, "weights must be positive")
)

// Pick returns one element of items chosen uniformly at random.
func Pick[T any](src Source, items []T) (T, error) {
	if len(items) == 0 {
		var zero T
		return zero, ErrEmptyInput
	}
	return items[src.Range(0, len(items)-1)], nil
}

// PickN returns count elements drawn independently with replacement, so
// duplicates are possible. A count of zero or less yields an empty slice.
func PickN[T any](src Source, items []T, count int) ([]T, error) {
	if count <= 0 {
		return []T{}, nil
	}
	if len(items) == 0 {
		return nil, ErrEmptyInput
	}
	out := make([]T, count)
	for i := range out {
		out[i] = items[src.Range(0, len(items)-1)]
	}
	return out, nil
}

// PickUnique returns count elements drawn without replacement. Each draw
// takes a uniform index among the remaining items of a working copy and
// removes it. Asking for more items than exist fails with
// ErrCountExceedsPopulation.
func PickUnique[T any](src Source, items []T, count int) ([]T, error) {
	if count <= 0 {
		return []T{}, nil
	}
	if count > len(items) {
		return nil, apperrors.WrapWithMetadata(
			apperrors.CodeCountExceedsPopulation,
			fmt.Sprintf("cannot pick %d unique items from %d", count, len(items)),
			map[string]string{
				"Count":      strconv.Itoa(count),
				"Population": strconv.Itoa(len(items)),
			},
			ErrCountExceedsPopulation,
		)
	}
	remaining := slices.Clone(items)
	out := make([]T, 0, count)
	for range count {
		i := src.Range(0, len(remaining)-1)
		out = append(out, remaining[i])
		remaining = slices.Delete(remaining, i, i+1)
	}
	return out, nil
}

// Shuffle returns a uniformly random permutation of items.
func Shuffle[T any](src Source, items []T) []T {
	out := slices.Clone(items)
	if out == nil {
		return []T{}
	}
	for i := len(out) - 1; i > 0; i-- {
		j := src.Range(0, i)
		out[i], out[j] = out[j], out[i]
	}
	return out
}

// Weighted chooses one value with probability proportional to its weight.
//
// It draws an integer in [1, sum(weights)] and returns the first value whose
// cumulative band (previous total, previous total + weight] contains it.
// Differing lengths give ok == false with a nil error: the absent result.
// Empty input fails with ErrEmptyInput. A weight below 1, or weights whose
// sum overflows int, fail with ErrInvalidWeight.
func Weighted[T any](src Source, values []T, weights []int) (value T, ok bool, err error) {
	if len(values) != len(weights) {
		return value, false, nil
	}
	if len(values) == 0 {
		return value, false, ErrEmptyInput
	}
	total := 0
	for i, w := range weights {
		if w <= 0 {
			return value, false, apperrors.WrapWithMetadata(
				apperrors.CodeInvalidWeight,
				fmt.Sprintf("weight %d at index %d is not positive", w, i),
				map[string]string{
					"Weight": strconv.Itoa(w),
					"Index":  strconv.Itoa(i),
				},
				ErrInvalidWeight,
			)
		}
		if w > math.MaxInt-total {
			return value, false, apperrors.WrapWithMetadata(
				apperrors.CodeInvalidWeight,
				fmt.Sprintf("weight %d at index %d overflows the total", w, i),
				map[string]string{
					"Weight":   strconv.Itoa(w),
					"Index":    strconv.Itoa(i),
					"Overflow": "true",
				},
				ErrInvalidWeight,
			)
		}
		total += w
	}

	draw := src.Range(1, total)
	cumulative := 0
	for i, w := range weights {
		cumulative += w
		if draw <= cumulative {
			return values[i], true, nil
		}
	}
	// Unreachable for a well-behaved source.
	return values[len(values)-1], true, nil
}

// CheckLengths returns ErrMismatchedLengths when values and weights differ.
func CheckLengths(values, weights int) error {
	if values == weights {
		return nil
	}
	return apperrors.WrapWithMetadata(
		apperrors.CodeMismatchedLengths,
		fmt.Sprintf("got %d values and %d weights", values, weights),
		map[string]string{
			"Values":  strconv.Itoa(values),
			"Weights": strconv.Itoa(weights),
		},
		ErrMismatchedLengths,
	)
}
