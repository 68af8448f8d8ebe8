// Package errors provides structured error handling with i18n support.
package errors

// Code is a machine-readable error code.
type Code string

const (
	// CodeUnknown represents an unknown error.
	CodeUnknown Code = "UNKNOWN"

	// Random engine errors
	CodeInvalidSeed Code = "INVALID_SEED"

	// Selection errors
	CodeEmptyInput             Code = "EMPTY_INPUT"
	CodeCountExceedsPopulation Code = "COUNT_EXCEEDS_POPULATION"
	CodeMismatchedLengths      Code = "MISMATCHED_LENGTHS"
	CodeInvalidWeight          Code = "INVALID_WEIGHT"

	// Data set errors
	CodeUnknownDataSet Code = "UNKNOWN_DATA_SET"
	CodeNotASequence   Code = "NOT_A_SEQUENCE"

	// Batch errors
	CodeExhaustedDomain Code = "EXHAUSTED_DOMAIN"

	// Dice errors
	CodeDiceInvalidNotation Code = "DICE_INVALID_NOTATION"
	CodeDiceInvalidSpec     Code = "DICE_INVALID_SPEC"

	// Generator option errors
	CodeUnknownGenerator Code = "UNKNOWN_GENERATOR"
	CodeInvalidOption    Code = "INVALID_OPTION"
)

// Recoverable reports whether callers are expected to treat the code as an
// absent result rather than a failure.
func (c Code) Recoverable() bool {
	switch c {
	case CodeMismatchedLengths:
		return true
	default:
		return false
	}
}
