package models

// GameParams collects the tunable rule constants so rule variants are a
// configuration change, not a code change.
type GameParams struct {
	InitialTime   int `json:"initial_time"`   // seconds on a fresh session
	InitialHints  int `json:"initial_hints"`  // hint budget on a fresh session
	TimeBonus     int `json:"time_bonus"`     // seconds awarded per completed level
	HintPenalty   int `json:"hint_penalty"`   // seconds deducted per granted hint
	HintReplenish int `json:"hint_replenish"` // hints awarded per completed level
}

// ClassicParams is the original ruleset: 10 minutes, 3 hints, no replenishment.
func ClassicParams() GameParams {
	return GameParams{
		InitialTime:   600,
		InitialHints:  3,
		TimeBonus:     30,
		HintPenalty:   10,
		HintReplenish: 0,
	}
}

// ExtendedParams is the later ruleset: a bigger hint budget, a softer
// penalty and two hints back per cleared level.
func ExtendedParams() GameParams {
	return GameParams{
		InitialTime:   600,
		InitialHints:  8,
		TimeBonus:     30,
		HintPenalty:   8,
		HintReplenish: 2,
	}
}
