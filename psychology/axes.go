package psychology

import "math"

func clamp01(v float64) float64 {
	if math.IsNaN(v) {
		return 0
	}
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}

func clamp(v float64, min float64, max float64) float64 {
	if v < min {
		return min
	}
	if v > max {
		return max
	}
	return v
}

// EmotionalAxes is the per-hand emotional state: confidence, composure,
// energy. It is a value object; every mutation returns a new instance and
// every construction clamps to [0,1]. Callers are never trusted with ranges.
type EmotionalAxes struct {
	Confidence float64
	Composure  float64
	Energy     float64
}

func NewEmotionalAxes(confidence float64, composure float64, energy float64) EmotionalAxes {
	return EmotionalAxes{
		Confidence: clamp01(confidence),
		Composure:  clamp01(composure),
		Energy:     clamp01(energy),
	}
}

// Update returns a new EmotionalAxes with the deltas applied and clamped.
func (a EmotionalAxes) Update(dConfidence float64, dComposure float64, dEnergy float64) EmotionalAxes {
	return NewEmotionalAxes(a.Confidence+dConfidence, a.Composure+dComposure, a.Energy+dEnergy)
}

// DecayToward moves each axis a rate fraction of the way toward the given
// target and returns the new value.
func (a EmotionalAxes) DecayToward(confidence float64, composure float64, energy float64, rate float64) EmotionalAxes {
	return NewEmotionalAxes(
		a.Confidence+(confidence-a.Confidence)*rate,
		a.Composure+(composure-a.Composure)*rate,
		a.Energy+(energy-a.Energy)*rate,
	)
}
