package psychology

import (
	"math"

	"tiltlab.com/psyche/zone"
)

// ComputeBaselineConfidence derives the personality-specific confidence
// target the axes drift toward during recovery. The output clamp keeps every
// character's resting point out of the timid and overconfident penalty
// regions.
func ComputeBaselineConfidence(anchors *PersonalityAnchors, tunables *zone.Tunables) float64 {
	base := 0.3 +
		anchors.BaselineAggression*0.25 +
		anchors.RiskIdentity*0.20 +
		anchors.Ego*0.25

	timid := tunables.MustGet(zone.ParamTimidThreshold)
	overconfident := tunables.MustGet(zone.ParamOverconfidentThreshold)
	min := math.Min(0.45, timid+0.10)
	max := math.Max(0.55, overconfident-0.10)
	return clamp(base, min, max)
}

// ComputeBaselineComposure derives the personality-specific composure target.
// Low-poise, expressive characters rest close to the tilted boundary but the
// clamp keeps them just outside it.
func ComputeBaselineComposure(anchors *PersonalityAnchors, tunables *zone.Tunables) float64 {
	base := 0.25 +
		anchors.Poise*0.50 +
		(1.0-anchors.Expressiveness)*0.15 +
		(anchors.RiskIdentity-0.5)*0.3

	tilted := tunables.MustGet(zone.ParamTiltedThreshold)
	min := math.Min(0.55, tilted+0.05)
	return clamp(base, min, 0.95)
}

// BaselineAxes returns the full resting point for a personality. Energy rests
// at its anchor directly.
func BaselineAxes(anchors *PersonalityAnchors, tunables *zone.Tunables) EmotionalAxes {
	return NewEmotionalAxes(
		ComputeBaselineConfidence(anchors, tunables),
		ComputeBaselineComposure(anchors, tunables),
		anchors.BaselineEnergy,
	)
}
