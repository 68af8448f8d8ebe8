package dice

// Outcome is a rolled total compared against a difficulty.
type Outcome struct {
	Difficulty int
	Success    bool
	// Margin is Total minus Difficulty; negative on failure.
	Margin int
}

// Check compares the total against difficulty. Meeting it exactly succeeds.
func (r Result) Check(difficulty int) Outcome {
	margin := r.Total - difficulty
	return Outcome{
		Difficulty: difficulty,
		Success:    margin >= 0,
		Margin:     margin,
	}
}
