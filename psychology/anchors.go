package psychology

import (
	"fmt"
	"math"
)

// PersonalityAnchors are the immutable identity constants for one character.
// All nine traits live in [0,1]. Anchors never change during a session; the
// dynamic layers pull toward them.
type PersonalityAnchors struct {
	BaselineAggression float64
	BaselineLooseness  float64
	Ego                float64
	Poise              float64
	Expressiveness     float64
	RiskIdentity       float64
	AdaptationBias     float64
	BaselineEnergy     float64
	RecoveryRate       float64
}

// NewPersonalityAnchors validates and returns the anchors. A malformed anchor
// would silently corrupt every derived baseline, so out-of-range or
// non-numeric values are fatal at construction.
func NewPersonalityAnchors(a PersonalityAnchors) (*PersonalityAnchors, error) {
	fields := map[string]float64{
		"baseline_aggression": a.BaselineAggression,
		"baseline_looseness":  a.BaselineLooseness,
		"ego":                 a.Ego,
		"poise":               a.Poise,
		"expressiveness":      a.Expressiveness,
		"risk_identity":       a.RiskIdentity,
		"adaptation_bias":     a.AdaptationBias,
		"baseline_energy":     a.BaselineEnergy,
		"recovery_rate":       a.RecoveryRate,
	}
	for name, value := range fields {
		if math.IsNaN(value) || math.IsInf(value, 0) {
			return nil, fmt.Errorf("Anchor [%s] is not a finite number", name)
		}
		if value < 0 || value > 1 {
			return nil, fmt.Errorf("Anchor [%s] is out of range: %f", name, value)
		}
	}
	return &a, nil
}
