// Package emotion is the narration layer: a four-dimensional mood model
// (valence, arousal, control, focus) that feeds avatar display and
// commentary. It is deliberately separate from the confidence/composure/
// energy axes in the psychology package; the two layers never merge.
package emotion

import "math"

// Dimensions is the numeric mood snapshot. Valence is signed [-1,1]; the
// other three live in [0,1].
type Dimensions struct {
	Valence float64 `json:"valence"`
	Arousal float64 `json:"arousal"`
	Control float64 `json:"control"`
	Focus   float64 `json:"focus"`
}

func clampSigned(v float64) float64 {
	if math.IsNaN(v) {
		return 0
	}
	if v < -1 {
		return -1
	}
	if v > 1 {
		return 1
	}
	return v
}

func clampUnit(v float64) float64 {
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

// Clamp returns the dimensions forced into their valid ranges.
func (d Dimensions) Clamp() Dimensions {
	return Dimensions{
		Valence: clampSigned(d.Valence),
		Arousal: clampUnit(d.Arousal),
		Control: clampUnit(d.Control),
		Focus:   clampUnit(d.Focus),
	}
}

// Blend sums baseline and spike elementwise and clamps the result.
func Blend(baseline Dimensions, spike Dimensions) Dimensions {
	return Dimensions{
		Valence: baseline.Valence + spike.Valence,
		Arousal: baseline.Arousal + spike.Arousal,
		Control: baseline.Control + spike.Control,
		Focus:   baseline.Focus + spike.Focus,
	}.Clamp()
}

// DecayToward moves each dimension a rate fraction of the way toward the
// baseline.
func (d Dimensions) DecayToward(baseline Dimensions, rate float64) Dimensions {
	return Dimensions{
		Valence: d.Valence + (baseline.Valence-d.Valence)*rate,
		Arousal: d.Arousal + (baseline.Arousal-d.Arousal)*rate,
		Control: d.Control + (baseline.Control-d.Control)*rate,
		Focus:   d.Focus + (baseline.Focus-d.Focus)*rate,
	}.Clamp()
}
