package emotion

import (
	"errors"
	"math"
	"testing"
)

func TestComputeBaselineMoodAtRest(t *testing.T) {
	// Zero drift: valence neutral, floors plus aggression only.
	mood := ComputeBaselineMood(MoodInputs{Aggression: 0.4, Chattiness: 0.5, EmojiUsage: 0.2})
	if mood.Valence != 0 {
		t.Errorf("Valence at rest = %f, expected 0", mood.Valence)
	}
	if math.Abs(mood.Arousal-(0.35+0.4*0.25)) > 1e-9 {
		t.Errorf("Arousal at rest = %f", mood.Arousal)
	}
	if mood.Control != 0.70 {
		t.Errorf("Control at rest = %f, expected 0.70", mood.Control)
	}
	if math.Abs(mood.Focus-(0.70-0.5*0.15-0.2*0.1)) > 1e-9 {
		t.Errorf("Focus at rest = %f", mood.Focus)
	}
}

func TestComputeBaselineMoodUnderDrift(t *testing.T) {
	stretched := ComputeBaselineMood(MoodInputs{
		SignedDrift: -0.2,
		AbsDrift:    0.3,
		Aggression:  0.5,
	})
	if math.Abs(stretched.Valence-(-0.6)) > 1e-9 {
		t.Errorf("Valence = %f, expected -0.6", stretched.Valence)
	}
	if stretched.Control >= 0.70 {
		t.Errorf("Drift should lower control: %f", stretched.Control)
	}

	// Extreme drift clamps valence at -1.
	extreme := ComputeBaselineMood(MoodInputs{SignedDrift: -0.9})
	if extreme.Valence != -1 {
		t.Errorf("Valence = %f, expected clamp at -1", extreme.Valence)
	}
}

func TestComputeReactiveSpike(t *testing.T) {
	// A full-magnitude win with no tilt.
	spike := ComputeReactiveSpike(OutcomeWon, 200, 0, 2)
	if math.Abs(spike.Valence-0.45) > 1e-9 {
		t.Errorf("Won valence = %f, expected 0.45", spike.Valence)
	}

	// Magnitude caps at 10 big blinds of effect.
	capped := ComputeReactiveSpike(OutcomeWon, 20000, 0, 2)
	if capped != spike {
		t.Errorf("Magnitude did not cap: %+v vs %+v", capped, spike)
	}

	// Tilt amplifies the loss reaction.
	calm := ComputeReactiveSpike(OutcomeLost, -500, 0, 2)
	tilted := ComputeReactiveSpike(OutcomeLost, -500, 0.5, 2)
	if math.Abs(tilted.Valence-calm.Valence*1.4) > 1e-9 {
		t.Errorf("Tilt amplifier wrong: %f vs %f", tilted.Valence, calm.Valence)
	}

	// Folding is a small negative-valence blip only.
	folded := ComputeReactiveSpike(OutcomeFolded, -2, 0, 2)
	if folded.Valence >= 0 || folded.Arousal != 0 || folded.Control != 0 || folded.Focus != 0 {
		t.Errorf("Folded spike = %+v", folded)
	}

	// Unknown outcomes produce no spike.
	if zero := ComputeReactiveSpike("chopped", 100, 0, 2); zero != (Dimensions{}) {
		t.Errorf("Unknown outcome spike = %+v", zero)
	}
}

func TestBlendClamps(t *testing.T) {
	blended := Blend(
		Dimensions{Valence: 0.8, Arousal: 0.9, Control: 0.9, Focus: 0.9},
		Dimensions{Valence: 0.7, Arousal: 0.5, Control: 0.5, Focus: 0.5},
	)
	expected := Dimensions{Valence: 1, Arousal: 1, Control: 1, Focus: 1}
	if blended != expected {
		t.Errorf("Blend = %+v, expected all clamped to max", blended)
	}

	floor := Blend(
		Dimensions{Valence: -0.8, Arousal: 0.1, Control: 0.1, Focus: 0.1},
		Dimensions{Valence: -0.7, Arousal: -0.5, Control: -0.5, Focus: -0.5},
	)
	if floor.Valence != -1 || floor.Arousal != 0 || floor.Control != 0 || floor.Focus != 0 {
		t.Errorf("Blend floor = %+v", floor)
	}
}

func TestDecayConvergence(t *testing.T) {
	baseline := Dimensions{Valence: 0.1, Arousal: 0.45, Control: 0.7, Focus: 0.65}
	current := Dimensions{Valence: -1, Arousal: 1, Control: 0, Focus: 0}

	for i := 0; i < 50; i++ {
		current = current.DecayToward(baseline, 0.3)
	}

	if math.Abs(current.Valence-baseline.Valence) > 0.01 ||
		math.Abs(current.Arousal-baseline.Arousal) > 0.01 ||
		math.Abs(current.Control-baseline.Control) > 0.01 ||
		math.Abs(current.Focus-baseline.Focus) > 0.01 {
		t.Errorf("Dimensions did not converge to baseline: %+v", current)
	}
}

func TestDisplayEmotionPriorityOrder(t *testing.T) {
	testCases := []struct {
		dims     Dimensions
		expected string
	}{
		// Angry wins over shocked even when both match.
		{Dimensions{Valence: -0.6, Arousal: 0.8, Control: 0.3}, "angry"},
		{Dimensions{Valence: 0.7, Arousal: 0.7, Control: 0.8}, "elated"},
		{Dimensions{Valence: 0, Arousal: 0.8, Control: 0.3}, "shocked"},
		// Smug wins over confident and happy.
		{Dimensions{Valence: 0.5, Arousal: 0.3, Control: 0.8}, "smug"},
		{Dimensions{Valence: -0.4, Arousal: 0.3, Control: 0.6}, "frustrated"},
		{Dimensions{Valence: 0, Arousal: 0.65, Control: 0.45}, "nervous"},
		{Dimensions{Valence: 0.25, Arousal: 0.3, Control: 0.65}, "confident"},
		{Dimensions{Valence: 0.35, Arousal: 0.3, Control: 0.5}, "happy"},
		{Dimensions{Valence: 0, Arousal: 0.3, Control: 0.5, Focus: 0.8}, "thinking"},
		{Dimensions{Valence: 0, Arousal: 0.3, Control: 0.5, Focus: 0.5}, "poker_face"},
	}

	for i, tc := range testCases {
		if label := DisplayEmotion(tc.dims); label != tc.expected {
			t.Errorf("Test %d: DisplayEmotion(%+v) = %s, expected %s", i, tc.dims, label, tc.expected)
		}
	}
}

type failingGenerator struct{}

func (g *failingGenerator) GenerateNarrative(req NarrativeRequest) (Narrative, error) {
	return Narrative{}, errors.New("llm timeout")
}

func TestBuildStateFallback(t *testing.T) {
	dims := Dimensions{Valence: -0.5, Arousal: 0.6, Control: 0.4, Focus: 0.5}

	state := BuildState(dims, &failingGenerator{}, NarrativeRequest{PlayerName: "vesna"}, 7)
	if !state.UsedFallback {
		t.Error("Generator failure did not set UsedFallback")
	}
	if state.Narrative == "" || state.InnerVoice == "" {
		t.Error("Fallback narrative fields are empty")
	}
	if state.Dimensions != dims {
		t.Errorf("Generator failure corrupted dimensions: %+v", state.Dimensions)
	}
	if state.GeneratedAtHand != 7 {
		t.Errorf("GeneratedAtHand = %d, expected 7", state.GeneratedAtHand)
	}

	ok := BuildState(dims, &StaticGenerator{Text: "stares down the table", InnerVoice: "again."}, NarrativeRequest{}, 8)
	if ok.UsedFallback {
		t.Error("Successful generation marked as fallback")
	}
	if ok.Narrative != "stares down the table" {
		t.Errorf("Narrative = [%s]", ok.Narrative)
	}
}
