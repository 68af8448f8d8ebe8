package dice

import apperrors "github.com/louisbranch/chance/internal/platform/errors"

var (
	// ErrMissingDice indicates a roll with no dice specs.
	ErrMissingDice = apperrors.New(apperrors.CodeDiceInvalidSpec, "at least one die is required")

	// ErrInvalidDiceSpec indicates a spec with non-positive sides or count.
	ErrInvalidDiceSpec = apperrors.New(apperrors.CodeDiceInvalidSpec, "dice must have positive sides and count")

	// ErrInvalidNotation indicates a dice string that Parse cannot read.
	ErrInvalidNotation = apperrors.New(apperrors.CodeDiceInvalidNotation, "invalid dice notation")
)

// Source draws bounded integers. *rng.Engine satisfies it.
type Source interface {
	Range(min, max int) int
}

// Spec describes a group of identical dice, e.g. 3d6 is {Sides: 6, Count: 3}.
type Spec struct {
	Sides int
	Count int
}

// Roll holds the faces rolled for one Spec.
type Roll struct {
	Sides   int
	Results []int
	Total   int
}

// Result aggregates every Roll in a request.
type Result struct {
	Rolls    []Roll
	Modifier int
	// Total is the sum of every die plus Modifier.
	Total int
}

// Expression is parsed dice notation: dice groups plus a flat modifier.
type Expression struct {
	Dice     []Spec
	Modifier int
}
