package emotion

import "math"

// Hand outcome strings accepted by ComputeReactiveSpike.
const (
	OutcomeWon    = "won"
	OutcomeLost   = "lost"
	OutcomeFolded = "folded"
)

// ComputeReactiveSpike converts a hand outcome into a mood delta. The base
// deltas are outcome-specific, scaled by pot size in big blinds (capped at
// 10bb of effect), and amplified by current tilt.
func ComputeReactiveSpike(outcome string, amount float64, tiltLevel float64, bigBlind float64) Dimensions {
	var base Dimensions
	switch outcome {
	case OutcomeWon:
		base = Dimensions{Valence: 0.45, Arousal: 0.30, Control: 0.15, Focus: 0}
	case OutcomeLost:
		base = Dimensions{Valence: -0.50, Arousal: 0.35, Control: -0.20, Focus: -0.15}
	case OutcomeFolded:
		base = Dimensions{Valence: -0.08}
	default:
		return Dimensions{}
	}

	if bigBlind <= 0 {
		bigBlind = 1
	}
	magnitude := math.Min(math.Abs(amount)/bigBlind, 10) / 10
	amplifier := 1 + tiltLevel*0.8
	scale := magnitude * amplifier

	return Dimensions{
		Valence: base.Valence * scale,
		Arousal: base.Arousal * scale,
		Control: base.Control * scale,
		Focus:   base.Focus * scale,
	}
}
