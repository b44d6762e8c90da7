package zone

import "math"

// Sweet spot names.
const (
	ZoneGuarded    = "guarded"
	ZonePokerFace  = "poker_face"
	ZoneCommanding = "commanding"
	ZoneAggro      = "aggro"
)

// Penalty region names.
const (
	PenaltyTilted        = "tilted"
	PenaltyOverconfident = "overconfident"
	PenaltyTimid         = "timid"
	PenaltyShaken        = "shaken"
	PenaltyOverheated    = "overheated"
	PenaltyDetached      = "detached"
)

// Energy manifestation labels.
const (
	ManifestLowEnergy  = "low_energy"
	ManifestBalanced   = "balanced"
	ManifestHighEnergy = "high_energy"
)

// sweetSpotCenter is a fixed anchor point in (confidence, composure) space.
type sweetSpotCenter struct {
	Confidence  float64
	Composure   float64
	RadiusParam string
}

var sweetSpotCenters = map[string]sweetSpotCenter{
	ZoneGuarded:    {Confidence: 0.28, Composure: 0.72, RadiusParam: ParamGuardedRadius},
	ZonePokerFace:  {Confidence: 0.52, Composure: 0.72, RadiusParam: ParamPokerFaceRadius},
	ZoneCommanding: {Confidence: 0.78, Composure: 0.78, RadiusParam: ParamCommandingRadius},
	ZoneAggro:      {Confidence: 0.68, Composure: 0.48, RadiusParam: ParamAggroRadius},
}

// ZoneEffects is the combined zone readout for one (confidence, composure,
// energy) snapshot. It is derived fresh each time; never persisted as truth.
type ZoneEffects struct {
	SweetSpots    map[string]float64 `json:"sweet_spots"`
	Penalties     map[string]float64 `json:"penalties"`
	Manifestation string             `json:"manifestation"`
	Confidence    float64            `json:"confidence"`
	Composure     float64            `json:"composure"`
	Energy        float64            `json:"energy"`
}

// TotalPenaltyStrength returns the raw sum of all active penalties. Penalties
// stack; the sum can exceed 1.0.
func (z *ZoneEffects) TotalPenaltyStrength() float64 {
	total := 0.0
	for _, strength := range z.Penalties {
		total += strength
	}
	return total
}

// DominantSweetSpot returns the strongest sweet spot and its normalized
// strength, or ("", 0) when no sweet spot is active.
func (z *ZoneEffects) DominantSweetSpot() (string, float64) {
	best := ""
	bestStrength := 0.0
	for name, strength := range z.SweetSpots {
		if strength > bestStrength {
			best = name
			bestStrength = strength
		}
	}
	return best, bestStrength
}

// SecondarySweetSpot returns the second-strongest sweet spot.
func (z *ZoneEffects) SecondarySweetSpot() (string, float64) {
	dominant, _ := z.DominantSweetSpot()
	second := ""
	secondStrength := 0.0
	for name, strength := range z.SweetSpots {
		if name == dominant {
			continue
		}
		if strength > secondStrength {
			second = name
			secondStrength = strength
		}
	}
	return second, secondStrength
}

// Detector evaluates sweet spots and penalty regions against one Tunables.
type Detector struct {
	tunables *Tunables
}

func NewDetector(tunables *Tunables) *Detector {
	return &Detector{tunables: tunables}
}

// sweetSpotStrength computes the raw strength of one zone at distance d from
// its center. Full strength inside 40% of the radius, linear falloff to the
// edge, zero beyond.
func sweetSpotStrength(distance float64, radius float64) float64 {
	core := radius * 0.4
	if distance <= core {
		return 1.0
	}
	if distance >= radius {
		return 0.0
	}
	return (radius - distance) / (radius - core)
}

// GetZoneEffects is the single entry point combining sweet spots, penalties,
// and energy manifestation into one readout.
func (d *Detector) GetZoneEffects(confidence float64, composure float64, energy float64) ZoneEffects {
	effects := ZoneEffects{
		SweetSpots: make(map[string]float64),
		Penalties:  make(map[string]float64),
		Confidence: confidence,
		Composure:  composure,
		Energy:     energy,
	}

	// Raw sweet spot strengths, then normalize over the nonzero set.
	rawTotal := 0.0
	for name, center := range sweetSpotCenters {
		radius := d.tunables.MustGet(center.RadiusParam)
		distance := math.Hypot(confidence-center.Confidence, composure-center.Composure)
		strength := sweetSpotStrength(distance, radius)
		if strength > 0 {
			effects.SweetSpots[name] = strength
			rawTotal += strength
		}
	}
	if rawTotal > 0 {
		for name := range effects.SweetSpots {
			effects.SweetSpots[name] /= rawTotal
		}
	}

	d.applyEdgePenalties(&effects, confidence, composure)
	d.applyCornerPenalties(&effects, confidence, composure)

	effects.Manifestation = d.manifestation(energy)
	return effects
}

// applyEdgePenalties evaluates the three single-axis threshold penalties.
// Strength is the linear depth past the threshold, 0 at the boundary and 1 at
// the axis extreme.
func (d *Detector) applyEdgePenalties(effects *ZoneEffects, confidence float64, composure float64) {
	tilted := d.tunables.MustGet(ParamTiltedThreshold)
	if composure < tilted {
		effects.Penalties[PenaltyTilted] = (tilted - composure) / tilted
	}

	overconfident := d.tunables.MustGet(ParamOverconfidentThreshold)
	if confidence > overconfident {
		effects.Penalties[PenaltyOverconfident] = (confidence - overconfident) / (1.0 - overconfident)
	}

	timid := d.tunables.MustGet(ParamTimidThreshold)
	if confidence < timid {
		effects.Penalties[PenaltyTimid] = (timid - confidence) / timid
	}
}

// applyCornerPenalties evaluates the three corner regions as the product of
// two linear depth ratios.
func (d *Detector) applyCornerPenalties(effects *ZoneEffects, confidence float64, composure float64) {
	shaken := d.tunables.MustGet(ParamShakenCornerThreshold)
	if confidence < shaken && composure < shaken {
		confDepth := (shaken - confidence) / shaken
		compDepth := (shaken - composure) / shaken
		effects.Penalties[PenaltyShaken] = confDepth * compDepth
	}

	overheatedConf := d.tunables.MustGet(ParamOverheatedConfThreshold)
	overheatedComp := d.tunables.MustGet(ParamOverheatedCompThreshold)
	if confidence > overheatedConf && composure < overheatedComp {
		confDepth := (confidence - overheatedConf) / (1.0 - overheatedConf)
		compDepth := (overheatedComp - composure) / overheatedComp
		effects.Penalties[PenaltyOverheated] = confDepth * compDepth
	}

	detachedConf := d.tunables.MustGet(ParamDetachedConfThreshold)
	detachedComp := d.tunables.MustGet(ParamDetachedCompThreshold)
	if confidence < detachedConf && composure > detachedComp {
		confDepth := (detachedConf - confidence) / detachedConf
		compDepth := (composure - detachedComp) / (1.0 - detachedComp)
		effects.Penalties[PenaltyDetached] = confDepth * compDepth
	}
}

func (d *Detector) manifestation(energy float64) string {
	if energy < d.tunables.MustGet(ParamLowEnergyThreshold) {
		return ManifestLowEnergy
	}
	if energy > d.tunables.MustGet(ParamHighEnergyThreshold) {
		return ManifestHighEnergy
	}
	return ManifestBalanced
}
