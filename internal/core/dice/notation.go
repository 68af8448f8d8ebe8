package dice

import (
	"strconv"
	"strings"

	apperrors "github.com/louisbranch/chance/internal/platform/errors"
)

// maxDice bounds the number of dice a single expression may roll.
const maxDice = 1000

// Parse reads dice notation such as "d20", "3d6+2" or "2d8 + 1d4 - 1".
// Terms are joined by + or -; a term is either NdS (N defaults to 1) or a
// flat integer. Dice terms cannot be subtracted.
func Parse(notation string) (Expression, error) {
	src := strings.ToLower(strings.Join(strings.Fields(notation), ""))
	if src == "" {
		return Expression{}, invalidNotation(notation)
	}

	var expr Expression
	dice := 0
	sign := 1
	start := 0
	for i := 0; i <= len(src); i++ {
		if i < len(src) && src[i] != '+' && src[i] != '-' {
			continue
		}
		term := src[start:i]
		if term == "" {
			// Only a leading sign may produce an empty term.
			if i != 0 {
				return Expression{}, invalidNotation(notation)
			}
		} else {
			spec, flat, isDice, ok := parseTerm(term)
			if !ok {
				return Expression{}, invalidNotation(notation)
			}
			if isDice {
				if sign < 0 {
					return Expression{}, invalidNotation(notation)
				}
				dice += spec.Count
				if dice > maxDice {
					return Expression{}, invalidNotation(notation)
				}
				expr.Dice = append(expr.Dice, spec)
			} else {
				expr.Modifier += sign * flat
			}
		}
		if i < len(src) {
			sign = 1
			if src[i] == '-' {
				sign = -1
			}
			start = i + 1
		}
	}

	if len(expr.Dice) == 0 {
		return Expression{}, invalidNotation(notation)
	}
	return expr, nil
}

func parseTerm(term string) (spec Spec, flat int, isDice bool, ok bool) {
	count, sides, found := strings.Cut(term, "d")
	if !found {
		n, err := strconv.Atoi(term)
		if err != nil {
			return Spec{}, 0, false, false
		}
		return Spec{}, n, false, true
	}

	spec.Count = 1
	if count != "" {
		n, err := strconv.Atoi(count)
		if err != nil || n <= 0 {
			return Spec{}, 0, true, false
		}
		spec.Count = n
	}
	n, err := strconv.Atoi(sides)
	if err != nil || n <= 0 {
		return Spec{}, 0, true, false
	}
	spec.Sides = n
	return spec, 0, true, true
}

func invalidNotation(notation string) error {
	return apperrors.WrapWithMetadata(
		apperrors.CodeDiceInvalidNotation,
		"invalid dice notation "+strconv.Quote(notation),
		map[string]string{"Notation": notation},
		ErrInvalidNotation,
	)
}
