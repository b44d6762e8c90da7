package zone

import "math"

// penaltyPull is the fixed unit direction a penalty region drags state toward.
// Tilted drags composure down, overconfident drags confidence up, corners drag
// diagonally into themselves.
var penaltyPulls = map[string][2]float64{
	PenaltyTilted:        {0, -1},
	PenaltyOverconfident: {1, 0},
	PenaltyTimid:         {-1, 0},
	PenaltyShaken:        {-0.7071, -0.7071},
	PenaltyOverheated:    {0.7071, -0.7071},
	PenaltyDetached:      {-0.7071, 0.7071},
}

// ComputeGravity returns the (confidence, composure) delta produced by zone
// stickiness: sweet spots pull state toward their centers in proportion to
// their normalized strength, penalties pull toward their extremes in
// proportion to their raw strength. The whole sum is scaled by the
// gravity_strength tunable.
func (d *Detector) ComputeGravity(effects ZoneEffects) (float64, float64) {
	var dConf, dComp float64

	for name, strength := range effects.SweetSpots {
		center, ok := sweetSpotCenters[name]
		if !ok {
			continue
		}
		dx := center.Confidence - effects.Confidence
		dy := center.Composure - effects.Composure
		dist := math.Hypot(dx, dy)
		if dist == 0 {
			continue
		}
		dConf += (dx / dist) * strength
		dComp += (dy / dist) * strength
	}

	for name, strength := range effects.Penalties {
		pull, ok := penaltyPulls[name]
		if !ok {
			continue
		}
		dConf += pull[0] * strength
		dComp += pull[1] * strength
	}

	gravity := d.tunables.MustGet(ParamGravityStrength)
	return dConf * gravity, dComp * gravity
}
