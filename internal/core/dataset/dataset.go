// Package dataset holds named, swappable sources of candidate values.
//
// A data set is either a fixed sequence of values or a generator function.
// Generators consume data sets through FromSet, so redefining a set changes
// what every dependent generator produces without touching its code.
package dataset

import (
	"fmt"
	"slices"
	"sort"

	"github.com/louisbranch/chance/internal/core/selection"
	apperrors "github.com/louisbranch/chance/internal/platform/errors"
)

var (
	// ErrUnknownDataSet indicates an operation on a name that was never defined.
	ErrUnknownDataSet = apperrors.New(apperrors.CodeUnknownDataSet, "data set is not defined")

	// ErrNotASequence indicates an append to a generated data set.
	ErrNotASequence = apperrors.New(apperrors.CodeNotASequence, "data set is not a sequence")
)

// Set is the value stored under a data set name. It is either a FixedSet
// or a GeneratedSet.
type Set interface {
	isSet()
}

// FixedSet is an ordered sequence of values. Values may be heterogeneous.
type FixedSet struct {
	Values []any
}

// GeneratedSet produces one value per read.
type GeneratedSet struct {
	Generate func() any
}

func (FixedSet) isSet()     {}
func (GeneratedSet) isSet() {}

// Fixed builds a FixedSet from values.
func Fixed(values ...any) FixedSet {
	return FixedSet{Values: values}
}

// FixedOf builds a FixedSet from a typed slice.
func FixedOf[T any](values []T) FixedSet {
	out := make([]any, len(values))
	for i, v := range values {
		out[i] = v
	}
	return FixedSet{Values: out}
}

// Generated builds a GeneratedSet from fn.
func Generated(fn func() any) GeneratedSet {
	return GeneratedSet{Generate: fn}
}

// Registry maps data set names to sets. It is not safe for concurrent use.
type Registry struct {
	src  selection.Source
	sets map[string]Set
}

// NewRegistry returns an empty registry drawing fixed-set picks from src.
func NewRegistry(src selection.Source) *Registry {
	return &Registry{
		src:  src,
		sets: map[string]Set{},
	}
}

// Define stores set under name, replacing any previous definition.
// Fixed values are copied so later changes to the caller's slice do not leak in.
func (r *Registry) Define(name string, set Set) {
	if fixed, ok := set.(FixedSet); ok {
		set = FixedSet{Values: slices.Clone(fixed.Values)}
	}
	r.sets[name] = set
}

// Append adds values to the end of a fixed data set, preserving prior order.
func (r *Registry) Append(name string, values ...any) error {
	set, ok := r.sets[name]
	if !ok {
		return apperrors.WrapWithMetadata(
			apperrors.CodeUnknownDataSet,
			fmt.Sprintf("data set %q is not defined", name),
			map[string]string{"Name": name},
			ErrUnknownDataSet,
		)
	}
	switch s := set.(type) {
	case FixedSet:
		r.sets[name] = FixedSet{Values: append(slices.Clip(s.Values), values...)}
		return nil
	case GeneratedSet:
		return apperrors.WrapWithMetadata(
			apperrors.CodeNotASequence,
			fmt.Sprintf("data set %q is generated", name),
			map[string]string{"Name": name},
			ErrNotASequence,
		)
	default:
		return fmt.Errorf("data set %q has unsupported type %T", name, set)
	}
}

// FromSet returns one value from the named data set. For a generated set it
// returns the generator's result verbatim; for a fixed set it returns a
// uniformly chosen element. ok is false when the name is unknown, the fixed
// set is empty, or the generator is nil.
func (r *Registry) FromSet(name string) (value any, ok bool) {
	set, found := r.sets[name]
	if !found {
		return nil, false
	}
	switch s := set.(type) {
	case FixedSet:
		v, err := selection.Pick(r.src, s.Values)
		if err != nil {
			return nil, false
		}
		return v, true
	case GeneratedSet:
		if s.Generate == nil {
			return nil, false
		}
		return s.Generate(), true
	default:
		return nil, false
	}
}

// Lookup returns the set stored under name.
func (r *Registry) Lookup(name string) (Set, bool) {
	set, ok := r.sets[name]
	return set, ok
}

// Values returns a copy of a fixed data set's values. ok is false for
// unknown names and generated sets.
func (r *Registry) Values(name string) ([]any, bool) {
	fixed, ok := r.sets[name].(FixedSet)
	if !ok {
		return nil, false
	}
	return slices.Clone(fixed.Values), true
}

// Has reports whether name is defined.
func (r *Registry) Has(name string) bool {
	_, ok := r.sets[name]
	return ok
}

// Remove deletes name from the registry.
func (r *Registry) Remove(name string) {
	delete(r.sets, name)
}

// Names returns the defined names in sorted order.
func (r *Registry) Names() []string {
	names := make([]string, 0, len(r.sets))
	for name := range r.sets {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
