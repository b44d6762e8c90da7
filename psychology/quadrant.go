package psychology

// Quadrant is the coarse emotional region derived from (confidence,
// composure) relative to 0.5.
type Quadrant string

const (
	QuadrantCommanding Quadrant = "COMMANDING"
	QuadrantOverheated Quadrant = "OVERHEATED"
	QuadrantGuarded    Quadrant = "GUARDED"
	QuadrantShaken     Quadrant = "SHAKEN"
)

// GetQuadrant maps (confidence, composure) to a quadrant. Deep shaken (both
// below 0.35) short-circuits before the 0.5 split.
func GetQuadrant(confidence float64, composure float64) Quadrant {
	if confidence < 0.35 && composure < 0.35 {
		return QuadrantShaken
	}
	if confidence > 0.5 {
		if composure > 0.5 {
			return QuadrantCommanding
		}
		return QuadrantOverheated
	}
	if composure > 0.5 {
		return QuadrantGuarded
	}
	return QuadrantShaken
}

// ComputeModifiers converts the axes into continuous aggression and looseness
// modifiers. Normal range is clamped to +/-0.20. Deep in the shaken corner
// the character either spews (high risk identity) or collapses passive, and
// that branch alone widens the clamp to +/-0.30.
func ComputeModifiers(confidence float64, composure float64, riskIdentity float64) (float64, float64) {
	aggression := (confidence-0.5)*0.3 + (0.5-composure)*0.2
	looseness := (confidence-0.5)*0.2 + (0.5-composure)*0.15

	aggression = clamp(aggression, -0.20, 0.20)
	looseness = clamp(looseness, -0.20, 0.20)

	if confidence < 0.35 && composure < 0.35 {
		intensity := (0.35 - confidence) + (0.35 - composure)
		if riskIdentity > 0.5 {
			// Manic spew.
			aggression += intensity * 0.3
			looseness += intensity * 0.3
		} else {
			// Passive collapse.
			aggression -= intensity * 0.3
			looseness -= intensity * 0.3
		}
		aggression = clamp(aggression, -0.30, 0.30)
		looseness = clamp(looseness, -0.30, 0.30)
	}

	return aggression, looseness
}
