package psychology

import (
	"math"
	"math/rand"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"

	"tiltlab.com/psyche/emotion"
	"tiltlab.com/psyche/zone"
)

type recordingGenerator struct {
	last emotion.NarrativeRequest
}

func (g *recordingGenerator) GenerateNarrative(req emotion.NarrativeRequest) (emotion.Narrative, error) {
	g.last = req
	return emotion.Narrative{Narrative: "steady", InnerVoice: "steady"}, nil
}

func testConfig() PersonalityConfig {
	return PersonalityConfig{
		BaselineAggression: 0.85,
		BaselineLooseness:  0.6,
		Ego:                0.85,
		Poise:              0.20,
		Expressiveness:     0.80,
		RiskIdentity:       0.75,
		AdaptationBias:     0.5,
		BaselineEnergy:     0.7,
		RecoveryRate:       0.4,
	}
}

func newTestPlayer(t *testing.T) *PlayerPsychology {
	t.Helper()
	p, err := NewPlayerPsychology("vesna", testConfig(), zone.NewTunables(),
		rand.New(rand.NewSource(1)), nil)
	if err != nil {
		t.Fatalf("NewPlayerPsychology returned error [%s]", err)
	}
	return p
}

func TestNewPlayerRestsAtPersonalityBaseline(t *testing.T) {
	p := newTestPlayer(t)
	tunables := zone.NewTunables()
	anchors, _ := testConfig().Anchors()

	expected := BaselineAxes(anchors, tunables)
	if p.Axes() != expected {
		t.Errorf("New player axes %+v, expected baseline %+v", p.Axes(), expected)
	}
	if p.Quadrant() != QuadrantOverheated {
		t.Errorf("Volatile test character should rest OVERHEATED, got %s", p.Quadrant())
	}
}

func TestApplyPressureEventUnknown(t *testing.T) {
	p := newTestPlayer(t)
	if err := p.ApplyPressureEvent("no_such_event", ""); err == nil {
		t.Error("Unknown pressure event did not return an error")
	}
}

func TestApplyPressureEventBadBeat(t *testing.T) {
	p := newTestPlayer(t)
	before := p.Axes()

	if err := p.ApplyPressureEvent(EventBadBeat, "milo"); err != nil {
		t.Fatalf("ApplyPressureEvent returned error [%s]", err)
	}

	after := p.Axes()
	if after.Confidence >= before.Confidence {
		t.Errorf("Bad beat should lower confidence: %f -> %f", before.Confidence, after.Confidence)
	}
	if after.Composure >= before.Composure {
		t.Errorf("Bad beat should lower composure: %f -> %f", before.Composure, after.Composure)
	}
	if after.Energy <= before.Energy {
		t.Errorf("Bad beat should raise energy: %f -> %f", before.Energy, after.Energy)
	}
	if p.Tilt().Nemesis != "milo" {
		t.Errorf("Bad beat should set nemesis, got [%s]", p.Tilt().Nemesis)
	}
	if math.Abs(p.Tilt().TiltLevel-0.25) > 1e-9 {
		t.Errorf("Bad beat tilt = %f, expected 0.25", p.Tilt().TiltLevel)
	}
}

func TestAllInMomentIsEnergyOnly(t *testing.T) {
	p := newTestPlayer(t)
	before := p.Axes()
	beforeTilt := p.Tilt().TiltLevel

	if err := p.ApplyPressureEvent(EventAllInMoment, ""); err != nil {
		t.Fatalf("ApplyPressureEvent returned error [%s]", err)
	}

	after := p.Axes()
	if after.Confidence != before.Confidence || after.Composure != before.Composure {
		t.Errorf("all_in_moment must not touch confidence/composure: %+v -> %+v", before, after)
	}
	if after.Energy <= before.Energy {
		t.Errorf("all_in_moment should raise energy: %f -> %f", before.Energy, after.Energy)
	}
	if p.Tilt().TiltLevel != beforeTilt {
		t.Errorf("all_in_moment must not change tilt: %f -> %f", beforeTilt, p.Tilt().TiltLevel)
	}
}

func TestConsecutiveFoldThresholds(t *testing.T) {
	p := newTestPlayer(t)

	tiltAt := func() float64 { return p.Tilt().TiltLevel }

	p.OnActionTaken("fold")
	p.OnActionTaken("fold")
	if tiltAt() != 0 {
		t.Fatalf("Tilt moved before the 3-fold threshold: %f", tiltAt())
	}

	p.OnActionTaken("fold")
	tiltAfter3 := tiltAt()
	if math.Abs(tiltAfter3-0.05) > 1e-9 {
		t.Fatalf("consecutive_folds_3 did not fire on fold 3: tilt %f", tiltAfter3)
	}

	p.OnActionTaken("fold")
	if tiltAt() != tiltAfter3 {
		t.Fatalf("Threshold event re-fired on fold 4: tilt %f", tiltAt())
	}

	p.OnActionTaken("fold")
	tiltAfter5 := tiltAt()
	if math.Abs(tiltAfter5-(tiltAfter3+0.10)) > 1e-9 {
		t.Fatalf("card_dead_5 did not fire on fold 5: tilt %f", tiltAfter5)
	}

	// Folds 6 and 7: neither event fires again.
	p.OnActionTaken("fold")
	p.OnActionTaken("fold")
	if tiltAt() != tiltAfter5 {
		t.Fatalf("Threshold events re-fired past fold 5: tilt %f", tiltAt())
	}

	// A non-fold action resets the streak; a new streak re-triggers at 3.
	p.OnActionTaken("call")
	if p.ConsecutiveFolds() != 0 {
		t.Fatalf("Non-fold action did not reset the streak: %d", p.ConsecutiveFolds())
	}
	p.OnActionTaken("fold")
	p.OnActionTaken("fold")
	p.OnActionTaken("fold")
	if math.Abs(tiltAt()-(tiltAfter5+0.05)) > 1e-9 {
		t.Fatalf("consecutive_folds_3 did not re-fire on the new streak: tilt %f", tiltAt())
	}
}

func TestOnHandCompleteLostUpdatesState(t *testing.T) {
	p := newTestPlayer(t)
	before := p.Axes()

	err := p.OnHandComplete(HandOutcome{
		Outcome:    "lost",
		Amount:     -500,
		Opponent:   "milo",
		WasBadBeat: true,
		HandNumber: 1,
		BigBlind:   2,
	}, nil)
	if err != nil {
		t.Fatalf("OnHandComplete returned error [%s]", err)
	}

	if p.HandCount() != 1 {
		t.Errorf("HandCount = %d, expected 1", p.HandCount())
	}
	if p.Axes().Composure >= before.Composure {
		t.Errorf("Losing a big pot should lower composure: %f -> %f", before.Composure, p.Axes().Composure)
	}
	if p.Tilt().TiltLevel <= 0 {
		t.Error("Losing a big pot on a bad beat should add tilt")
	}
	if p.Tilt().Nemesis != "milo" {
		t.Errorf("Bad beat loss should set nemesis, got [%s]", p.Tilt().Nemesis)
	}
	if p.Tilt().LosingStreak != 1 {
		t.Errorf("LosingStreak = %d, expected 1", p.Tilt().LosingStreak)
	}

	// Emotion regenerates with a fallback narrative when no generator is set;
	// the numeric dimensions must still be valid.
	if p.Emotion() == nil {
		t.Fatal("Emotion state was not regenerated")
	}
	if !p.Emotion().UsedFallback {
		t.Error("Nil generator should produce a fallback narrative")
	}
	if p.Emotion().Dimensions.Valence >= 0 {
		t.Errorf("A big loss should produce negative valence, got %f", p.Emotion().Dimensions.Valence)
	}
}

func TestOnHandCompleteForwardsSessionContext(t *testing.T) {
	gen := &recordingGenerator{}
	p, err := NewPlayerPsychology("vesna", testConfig(), zone.NewTunables(),
		rand.New(rand.NewSource(1)), gen)
	if err != nil {
		t.Fatalf("NewPlayerPsychology returned error [%s]", err)
	}

	err = p.OnHandComplete(HandOutcome{
		Outcome:    "won",
		Amount:     320,
		HandNumber: 7,
		BigBlind:   2,
	}, map[string]string{"table": "final", "stakes": "high"})
	if err != nil {
		t.Fatalf("OnHandComplete returned error [%s]", err)
	}

	if gen.last.PlayerName != "vesna" {
		t.Errorf("Generator saw player [%s], expected vesna", gen.last.PlayerName)
	}
	if gen.last.SessionContext["table"] != "final" || gen.last.SessionContext["stakes"] != "high" {
		t.Errorf("Session context was not forwarded to the generator: %+v", gen.last.SessionContext)
	}
}

func TestRoundTripAfterBadBeat(t *testing.T) {
	p := newTestPlayer(t)
	if err := p.ApplyPressureEvent(EventBadBeat, "X"); err != nil {
		t.Fatalf("ApplyPressureEvent returned error [%s]", err)
	}
	err := p.OnHandComplete(HandOutcome{
		Outcome:    "lost",
		Amount:     -500,
		Opponent:   "X",
		WasBadBeat: true,
		HandNumber: 1,
		BigBlind:   2,
	}, nil)
	if err != nil {
		t.Fatalf("OnHandComplete returned error [%s]", err)
	}

	state := p.ToState()
	restored, err := FromState(state, testConfig(), zone.NewTunables(),
		rand.New(rand.NewSource(1)), nil)
	if err != nil {
		t.Fatalf("FromState returned error [%s]", err)
	}

	if restored.Axes() != p.Axes() {
		t.Errorf("Axes did not round-trip: %+v != %+v", restored.Axes(), p.Axes())
	}
	if !cmp.Equal(restored.Tilt(), p.Tilt()) {
		t.Errorf("Tilt did not round-trip: %s", cmp.Diff(restored.Tilt(), p.Tilt()))
	}
	if !cmp.Equal(restored.Traits(), p.Traits()) {
		t.Errorf("Elastic traits did not round-trip: %s", cmp.Diff(restored.Traits(), p.Traits()))
	}
	if restored.Emotion() == nil || restored.Emotion().Dimensions != p.Emotion().Dimensions {
		t.Error("Emotional dimensions did not round-trip")
	}
	if restored.HandCount() != p.HandCount() {
		t.Errorf("HandCount did not round-trip: %d != %d", restored.HandCount(), p.HandCount())
	}
	if restored.Tilt().Nemesis != "X" {
		t.Errorf("Nemesis did not round-trip: [%s]", restored.Tilt().Nemesis)
	}
}

func TestFromStateLegacyPartial(t *testing.T) {
	// A legacy snapshot with only a player name must load with personality
	// defaults, never fail.
	state := &PsychologyState{PlayerName: "vesna"}
	restored, err := FromState(state, testConfig(), zone.NewTunables(), nil, nil)
	if err != nil {
		t.Fatalf("FromState on partial state returned error [%s]", err)
	}
	anchors, _ := testConfig().Anchors()
	expected := BaselineAxes(anchors, zone.NewTunables())
	if restored.Axes() != expected {
		t.Errorf("Partial state axes %+v, expected baseline %+v", restored.Axes(), expected)
	}
}

func TestZoneGuidanceWithNilRng(t *testing.T) {
	// A player restored in deterministic mode must still be able to build
	// guidance; nothing on the derived-view path may require a random source.
	state := &PsychologyState{PlayerName: "vesna"}
	p, err := FromState(state, testConfig(), zone.NewTunables(), nil, nil)
	if err != nil {
		t.Fatalf("FromState returned error [%s]", err)
	}

	guidance := p.ZoneGuidance(&zone.ZoneContext{})
	if guidance == "" {
		t.Fatal("Expected guidance for the resting zone, got empty string")
	}
	if !strings.Contains(guidance, "AGGRO ZONE") {
		t.Errorf("Volatile test character should rest in the aggro zone: [%s]", guidance)
	}
	if p.DisplayEmotion() == "" {
		t.Error("DisplayEmotion returned empty label with nil rng")
	}
}

func TestRecoverConvergesToBaseline(t *testing.T) {
	p := newTestPlayer(t)
	tunables := zone.NewTunables()
	anchors, _ := testConfig().Anchors()
	baseline := BaselineAxes(anchors, tunables)

	if err := p.ApplyPressureEvent(EventBadBeat, "milo"); err != nil {
		t.Fatalf("ApplyPressureEvent returned error [%s]", err)
	}
	if err := p.ApplyPressureEvent(EventBadBeat, "milo"); err != nil {
		t.Fatalf("ApplyPressureEvent returned error [%s]", err)
	}

	for i := 0; i < 100; i++ {
		p.Recover()
	}

	axes := p.Axes()
	if math.Abs(axes.Confidence-baseline.Confidence) > 0.01 {
		t.Errorf("Confidence did not recover to baseline: %f vs %f", axes.Confidence, baseline.Confidence)
	}
	if math.Abs(axes.Composure-baseline.Composure) > 0.01 {
		t.Errorf("Composure did not recover to baseline: %f vs %f", axes.Composure, baseline.Composure)
	}
	if p.Tilt().TiltLevel != 0 {
		t.Errorf("Tilt did not decay to zero: %f", p.Tilt().TiltLevel)
	}
	if math.Abs(p.Traits().Aggression.Value-p.Traits().Aggression.Anchor) > 0.01 {
		t.Errorf("Aggression trait did not relax toward anchor: %+v", p.Traits().Aggression)
	}
}
