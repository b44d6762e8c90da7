package psychology

import "math"

// ElasticTrait is a personality trait that stretches under pressure and
// relaxes back toward its anchor. Value is what the character currently acts
// like, Anchor is who they are, Pressure is the accumulated stretch force.
type ElasticTrait struct {
	Value    float64 `json:"value"`
	Anchor   float64 `json:"anchor"`
	Pressure float64 `json:"pressure"`
}

func newElasticTrait(anchor float64) ElasticTrait {
	return ElasticTrait{Value: anchor, Anchor: anchor, Pressure: 0}
}

// Drift returns the signed displacement from the anchor.
func (t ElasticTrait) Drift() float64 {
	return t.Value - t.Anchor
}

func (t ElasticTrait) applyPressure(delta float64) ElasticTrait {
	t.Pressure = clamp(t.Pressure+delta, -1, 1)
	t.Value = clamp01(t.Value + delta)
	return t
}

func (t ElasticTrait) recover(rate float64) ElasticTrait {
	t.Value = t.Value + (t.Anchor-t.Value)*rate
	t.Pressure = t.Pressure * (1 - rate)
	if math.Abs(t.Pressure) < 0.001 {
		t.Pressure = 0
	}
	return t
}

// ElasticTraits is the full dynamic trait set for one character. Constructed
// once at the session boundary; accessed through named fields only.
type ElasticTraits struct {
	Aggression ElasticTrait `json:"aggression"`
	Looseness  ElasticTrait `json:"looseness"`
	Chattiness ElasticTrait `json:"chattiness"`
	EmojiUsage ElasticTrait `json:"emoji_usage"`
	RiskTaking ElasticTrait `json:"risk_taking"`
}

// NewElasticTraits seeds the trait set from the anchors plus the social trait
// anchors carried in the personality config.
func NewElasticTraits(anchors *PersonalityAnchors, chattiness float64, emojiUsage float64) ElasticTraits {
	return ElasticTraits{
		Aggression: newElasticTrait(anchors.BaselineAggression),
		Looseness:  newElasticTrait(anchors.BaselineLooseness),
		Chattiness: newElasticTrait(clamp01(chattiness)),
		EmojiUsage: newElasticTrait(clamp01(emojiUsage)),
		RiskTaking: newElasticTrait(anchors.RiskIdentity),
	}
}

func (e ElasticTraits) all() []ElasticTrait {
	return []ElasticTrait{e.Aggression, e.Looseness, e.Chattiness, e.EmojiUsage, e.RiskTaking}
}

// AverageSignedDrift is the mean displacement from anchors across all traits.
func (e ElasticTraits) AverageSignedDrift() float64 {
	traits := e.all()
	sum := 0.0
	for _, t := range traits {
		sum += t.Drift()
	}
	return sum / float64(len(traits))
}

// AverageAbsDrift is the mean absolute displacement from anchors.
func (e ElasticTraits) AverageAbsDrift() float64 {
	traits := e.all()
	sum := 0.0
	for _, t := range traits {
		sum += math.Abs(t.Drift())
	}
	return sum / float64(len(traits))
}

// ApplyPressure stretches the aggression/looseness/risk traits. Chattiness
// and emoji usage move with a fraction of the same force; stress changes how
// much a character talks.
func (e ElasticTraits) ApplyPressure(aggressionDelta float64, loosenessDelta float64, riskDelta float64) ElasticTraits {
	e.Aggression = e.Aggression.applyPressure(aggressionDelta)
	e.Looseness = e.Looseness.applyPressure(loosenessDelta)
	e.RiskTaking = e.RiskTaking.applyPressure(riskDelta)
	social := (aggressionDelta + loosenessDelta) * 0.25
	e.Chattiness = e.Chattiness.applyPressure(social)
	e.EmojiUsage = e.EmojiUsage.applyPressure(social * 0.5)
	return e
}

// RecoverTraits drifts every trait back toward its anchor and bleeds off
// accumulated pressure.
func (e ElasticTraits) RecoverTraits(rate float64) ElasticTraits {
	e.Aggression = e.Aggression.recover(rate)
	e.Looseness = e.Looseness.recover(rate)
	e.Chattiness = e.Chattiness.recover(rate)
	e.EmojiUsage = e.EmojiUsage.recover(rate)
	e.RiskTaking = e.RiskTaking.recover(rate)
	return e
}
