package psychology

// PersonalityConfig is the external character definition a PlayerPsychology
// is built from. The nine anchors are required; the social trait anchors
// default to mid-range when omitted.
type PersonalityConfig struct {
	BaselineAggression float64 `yaml:"baseline-aggression" json:"baseline_aggression"`
	BaselineLooseness  float64 `yaml:"baseline-looseness" json:"baseline_looseness"`
	Ego                float64 `yaml:"ego" json:"ego"`
	Poise              float64 `yaml:"poise" json:"poise"`
	Expressiveness     float64 `yaml:"expressiveness" json:"expressiveness"`
	RiskIdentity       float64 `yaml:"risk-identity" json:"risk_identity"`
	AdaptationBias     float64 `yaml:"adaptation-bias" json:"adaptation_bias"`
	BaselineEnergy     float64 `yaml:"baseline-energy" json:"baseline_energy"`
	RecoveryRate       float64 `yaml:"recovery-rate" json:"recovery_rate"`

	Chattiness *float64 `yaml:"chattiness,omitempty" json:"chattiness,omitempty"`
	EmojiUsage *float64 `yaml:"emoji-usage,omitempty" json:"emoji_usage,omitempty"`
}

// Anchors validates the config and returns the immutable anchor set.
func (c PersonalityConfig) Anchors() (*PersonalityAnchors, error) {
	return NewPersonalityAnchors(PersonalityAnchors{
		BaselineAggression: c.BaselineAggression,
		BaselineLooseness:  c.BaselineLooseness,
		Ego:                c.Ego,
		Poise:              c.Poise,
		Expressiveness:     c.Expressiveness,
		RiskIdentity:       c.RiskIdentity,
		AdaptationBias:     c.AdaptationBias,
		BaselineEnergy:     c.BaselineEnergy,
		RecoveryRate:       c.RecoveryRate,
	})
}

func (c PersonalityConfig) chattiness() float64 {
	if c.Chattiness != nil {
		return *c.Chattiness
	}
	return 0.5
}

func (c PersonalityConfig) emojiUsage() float64 {
	if c.EmojiUsage != nil {
		return *c.EmojiUsage
	}
	return 0.3
}
