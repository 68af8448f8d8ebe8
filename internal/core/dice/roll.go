package dice

// RollDice rolls each spec in order against src.
//
// Rolls appear in the same order as specs. Each Roll.Total is the sum of its
// Results and Result.Total is the sum of every die rolled.
//
// At least one spec is required, otherwise ErrMissingDice is returned. Each
// spec must have Sides > 0 and Count > 0, otherwise ErrInvalidDiceSpec is
// returned and no dice are rolled.
func RollDice(src Source, specs []Spec) (Result, error) {
	if len(specs) == 0 {
		return Result{}, ErrMissingDice
	}
	for _, spec := range specs {
		if spec.Sides <= 0 || spec.Count <= 0 {
			return Result{}, ErrInvalidDiceSpec
		}
	}

	rolls := make([]Roll, 0, len(specs))
	total := 0
	for _, spec := range specs {
		results := make([]int, spec.Count)
		rollTotal := 0
		for i := range results {
			value := rollDie(src, spec.Sides)
			results[i] = value
			rollTotal += value
		}

		rolls = append(rolls, Roll{
			Sides:   spec.Sides,
			Results: results,
			Total:   rollTotal,
		})
		total += rollTotal
	}

	return Result{
		Rolls: rolls,
		Total: total,
	}, nil
}

// RollExpression rolls the dice of expr and applies its modifier.
func RollExpression(src Source, expr Expression) (Result, error) {
	result, err := RollDice(src, expr.Dice)
	if err != nil {
		return Result{}, err
	}
	result.Modifier = expr.Modifier
	result.Total += expr.Modifier
	return result, nil
}

// RollNotation parses notation and rolls it.
func RollNotation(src Source, notation string) (Result, error) {
	expr, err := Parse(notation)
	if err != nil {
		return Result{}, err
	}
	return RollExpression(src, expr)
}

// rollDie rolls a single die with the provided number of sides.
func rollDie(src Source, sides int) int {
	return src.Range(1, sides)
}
