package psychology

import "math/rand"

// CalculateVisibility scores how much of the true emotional state leaks out.
// Expressiveness dominates; energy adds the rest.
func CalculateVisibility(expressiveness float64, energy float64) float64 {
	return 0.7*expressiveness + 0.3*energy
}

// mediumDampened maps a true emotion to its toned-down public version.
// Emotions without an entry dampen straight to poker_face.
var mediumDampened = map[string]string{
	"angry":      "frustrated",
	"elated":     "happy",
	"shocked":    "nervous",
	"smug":       "confident",
	"frustrated": "nervous",
	"nervous":    "thinking",
}

func dampenMedium(trueEmotion string) string {
	if damped, ok := mediumDampened[trueEmotion]; ok {
		return damped
	}
	return "poker_face"
}

// DampenEmotion filters the true emotion through the visibility score.
// Visibility >= 0.6 shows everything; the medium band shows a toned-down
// version; below 0.3 the mask holds. A nil rng means deterministic mode, in
// which the low band always masks. With an rng the mask slips 30% of the
// time.
func DampenEmotion(trueEmotion string, visibility float64, rng *rand.Rand) string {
	if visibility >= 0.6 {
		return trueEmotion
	}
	if visibility >= 0.3 {
		return dampenMedium(trueEmotion)
	}
	if rng == nil {
		return "poker_face"
	}
	if rng.Float64() < 0.7 {
		return "poker_face"
	}
	return dampenMedium(trueEmotion)
}

// DramaGuidance describes how much dramatic, expressive behavior to show.
// Boundaries match the visibility bands.
func DramaGuidance(visibility float64) string {
	if visibility >= 0.6 {
		return "Show your emotions openly: table talk, visible reactions, dramatic timing are all in character."
	}
	if visibility >= 0.3 {
		return "Let some emotion through, but keep it restrained: small tells, measured reactions."
	}
	return "Show nothing. Flat expression, minimal table talk, no reaction to outcomes."
}

// TempoGuidance describes decision pacing from the energy level.
func TempoGuidance(energy float64) string {
	if energy > 0.7 {
		return "Act quickly and decisively; you are running hot and it should read that way."
	}
	if energy > 0.4 {
		return "Keep a steady, unremarkable pace on decisions."
	}
	return "Take your time; slow, deliberate decisions fit your low energy."
}
