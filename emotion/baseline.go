package emotion

// MoodInputs are the elastic-trait aggregates the baseline mood is computed
// from. The psychology layer builds this once per call; emotion never reaches
// into trait structs directly.
type MoodInputs struct {
	SignedDrift float64 // mean signed displacement of traits from anchors
	AbsDrift    float64 // mean absolute displacement
	Aggression  float64 // current aggression trait value
	Chattiness  float64
	EmojiUsage  float64
}

const (
	arousalFloor = 0.35
	controlFloor = 0.70
	focusFloor   = 0.70
)

// ComputeBaselineMood maps trait drift into the resting mood. A character
// whose traits are stretched far from their anchors reads as worse-regulated
// on every dimension.
func ComputeBaselineMood(in MoodInputs) Dimensions {
	return Dimensions{
		Valence: in.SignedDrift * 3.0,
		Arousal: arousalFloor + in.Aggression*0.25 + in.AbsDrift*0.4,
		Control: controlFloor - in.AbsDrift*0.6,
		Focus:   focusFloor - in.Chattiness*0.15 - in.EmojiUsage*0.1 - in.AbsDrift*0.3,
	}.Clamp()
}
