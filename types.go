package chance

import (
	"github.com/louisbranch/chance/internal/catalog"
	"github.com/louisbranch/chance/internal/core/batch"
	"github.com/louisbranch/chance/internal/core/dataset"
	"github.com/louisbranch/chance/internal/core/dice"
	"github.com/louisbranch/chance/internal/core/rng"
	"github.com/louisbranch/chance/internal/core/selection"
)

// Data sets.
type (
	Set          = dataset.Set
	FixedSet     = dataset.FixedSet
	GeneratedSet = dataset.GeneratedSet
)

// Fixed returns a data set holding values.
func Fixed(values ...any) FixedSet { return dataset.Fixed(values...) }

// Generated returns a data set whose values come from fn.
func Generated(fn func() any) GeneratedSet { return dataset.Generated(fn) }

// Generator options.
type (
	BoolOptions      = catalog.BoolOptions
	IntegerOptions   = catalog.IntegerOptions
	FloatOptions     = catalog.FloatOptions
	CharacterOptions = catalog.CharacterOptions
	StringOptions    = catalog.StringOptions
	CharKind         = catalog.CharKind
	WordOptions      = catalog.WordOptions
	SentenceOptions  = catalog.SentenceOptions
	ParagraphOptions = catalog.ParagraphOptions
	NameOptions      = catalog.NameOptions
	AgeOptions       = catalog.AgeOptions
	AgeBand          = catalog.AgeBand
	YearOptions      = catalog.YearOptions
	DateOptions      = catalog.DateOptions
	URIOptions       = catalog.URIOptions
	ColorOptions     = catalog.ColorOptions
	ColorFormat      = catalog.ColorFormat
	DollarOptions    = catalog.DollarOptions
	DiceResult       = dice.Result
	DiceRoll         = dice.Roll
	DiceOutcome      = dice.Outcome
)

// Character pools.
const (
	CharAny          = catalog.CharAny
	CharLower        = catalog.CharLower
	CharUpper        = catalog.CharUpper
	CharAlpha        = catalog.CharAlpha
	CharDigit        = catalog.CharDigit
	CharSymbol       = catalog.CharSymbol
	CharAlphanumeric = catalog.CharAlphanumeric
)

// Color formats.
const (
	ColorHex      = catalog.ColorHex
	ColorShortHex = catalog.ColorShortHex
	ColorRGB      = catalog.ColorRGB
)

// Errors returned by Chance and the package helpers. Match them with errors.Is.
var (
	ErrInvalidSeed            = rng.ErrInvalidSeed
	ErrEmptyInput             = selection.ErrEmptyInput
	ErrCountExceedsPopulation = selection.ErrCountExceedsPopulation
	ErrMismatchedLengths      = selection.ErrMismatchedLengths
	ErrInvalidWeight          = selection.ErrInvalidWeight
	ErrUnknownDataSet         = dataset.ErrUnknownDataSet
	ErrNotASequence           = dataset.ErrNotASequence
	ErrExhaustedDomain        = batch.ErrExhaustedDomain
	ErrInvalidDiceNotation    = dice.ErrInvalidNotation
	ErrUnknownGenerator       = catalog.ErrUnknownGenerator
)
