package i18n

// Error codes must match the codes defined in internal/platform/errors/codes.go.
// These are duplicated as strings to avoid an import cycle.
const (
	CodeInvalidSeed            = "INVALID_SEED"
	CodeEmptyInput             = "EMPTY_INPUT"
	CodeCountExceedsPopulation = "COUNT_EXCEEDS_POPULATION"
	CodeMismatchedLengths      = "MISMATCHED_LENGTHS"
	CodeInvalidWeight          = "INVALID_WEIGHT"
	CodeUnknownDataSet         = "UNKNOWN_DATA_SET"
	CodeNotASequence           = "NOT_A_SEQUENCE"
	CodeExhaustedDomain        = "EXHAUSTED_DOMAIN"
	CodeDiceInvalidNotation    = "DICE_INVALID_NOTATION"
	CodeDiceInvalidSpec        = "DICE_INVALID_SPEC"
	CodeUnknownGenerator       = "UNKNOWN_GENERATOR"
	CodeInvalidOption          = "INVALID_OPTION"
)

var enUSCatalog = &Catalog{
	locale: "en-US",
	messages: map[Code]string{
		CodeInvalidSeed: "Seed {{.Value}} is not a number",

		// Selection errors
		CodeEmptyInput:             "Cannot draw from an empty collection",
		CodeCountExceedsPopulation: "Cannot draw {{.Count}} unique items from {{.Population}}",
		CodeMismatchedLengths:      "Got {{.Values}} values but {{.Weights}} weights",
		CodeInvalidWeight:          "Weight {{.Weight}} at position {{.Index}} {{if .Overflow}}makes the total overflow{{else}}must be positive{{end}}",

		// Data set errors
		CodeUnknownDataSet: "Data set {{.Name}} is not defined",
		CodeNotASequence:   "Data set {{.Name}} is generated and cannot be appended to",

		// Batch errors
		CodeExhaustedDomain: "Found only {{.Found}} of {{.Count}} distinct values after {{.Attempts}} attempts",

		// Dice errors
		CodeDiceInvalidNotation: "Dice notation {{.Notation}} is not valid",
		CodeDiceInvalidSpec:     "Dice must have positive sides and count",

		CodeUnknownGenerator: "Generator {{.Name}} does not exist",
		CodeInvalidOption:    "Option {{.Option}} is invalid: {{.Reason}}",
	},
}
