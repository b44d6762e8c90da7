package psychology

import (
	"math/rand"
	"time"

	"github.com/pkg/errors"
	"github.com/rs/zerolog/log"

	"tiltlab.com/psyche/emotion"
	"tiltlab.com/psyche/logging"
	"tiltlab.com/psyche/zone"
)

var playerLogger = log.With().Str("logger_name", "psychology::player").Logger()

// HandOutcome is the result of one completed hand as seen by one player.
type HandOutcome struct {
	Outcome        string
	Amount         float64
	Opponent       string
	WasBadBeat     bool
	WasBluffCalled bool
	HandNumber     int
	BigBlind       float64
	KeyMoment      string
}

// PlayerPsychology is the aggregate root: one instance per player per game
// session, owned exclusively by that session. Derived values (quadrant, zone
// effects, modifiers, visibility) are recomputed on demand, never cached.
type PlayerPsychology struct {
	playerName string
	config     PersonalityConfig
	anchors    *PersonalityAnchors

	axes    EmotionalAxes
	elastic ElasticTraits
	tilt    TiltState
	emotion *emotion.State

	handCount        int
	consecutiveFolds int
	lastUpdated      time.Time

	tunables  *zone.Tunables
	detector  *zone.Detector
	templates zone.TemplateSource
	rng       *rand.Rand
	generator emotion.Generator
}

// NewPlayerPsychology builds a player state resting at its
// personality-derived baseline, not at universal constants.
func NewPlayerPsychology(playerName string, config PersonalityConfig, tunables *zone.Tunables,
	rng *rand.Rand, generator emotion.Generator) (*PlayerPsychology, error) {
	anchors, err := config.Anchors()
	if err != nil {
		return nil, errors.Wrapf(err, "Invalid personality config for player [%s]", playerName)
	}

	p := &PlayerPsychology{
		playerName: playerName,
		config:     config,
		anchors:    anchors,
		elastic:    NewElasticTraits(anchors, config.chattiness(), config.emojiUsage()),
		tilt:       NewTiltState(),
		tunables:   tunables,
		detector:   zone.NewDetector(tunables),
		templates:  zone.DefaultTemplates(),
		rng:        rng,
		generator:  generator,
	}
	p.axes = BaselineAxes(anchors, tunables)
	return p, nil
}

func (p *PlayerPsychology) PlayerName() string { return p.playerName }

func (p *PlayerPsychology) Axes() EmotionalAxes { return p.axes }

func (p *PlayerPsychology) Traits() ElasticTraits { return p.elastic }

func (p *PlayerPsychology) Tilt() TiltState { return p.tilt }

func (p *PlayerPsychology) HandCount() int { return p.handCount }

func (p *PlayerPsychology) Emotion() *emotion.State { return p.emotion }

func (p *PlayerPsychology) TiltCategory() TiltCategory { return p.tilt.Category() }

// Quadrant returns the current coarse emotional region.
func (p *PlayerPsychology) Quadrant() Quadrant {
	return GetQuadrant(p.axes.Confidence, p.axes.Composure)
}

// Modifiers returns the current (aggression, looseness) behavioral modifiers.
func (p *PlayerPsychology) Modifiers() (float64, float64) {
	return ComputeModifiers(p.axes.Confidence, p.axes.Composure, p.anchors.RiskIdentity)
}

// ZoneEffects computes the current zone readout. Always derived fresh.
func (p *PlayerPsychology) ZoneEffects() zone.ZoneEffects {
	return p.detector.GetZoneEffects(p.axes.Confidence, p.axes.Composure, p.axes.Energy)
}

// Visibility returns how much of the emotional state leaks out right now.
func (p *PlayerPsychology) Visibility() float64 {
	return CalculateVisibility(p.anchors.Expressiveness, p.axes.Energy)
}

// DisplayEmotion returns the dampened emotion label for avatar rendering.
func (p *PlayerPsychology) DisplayEmotion() string {
	trueEmotion := "poker_face"
	if p.emotion != nil {
		trueEmotion = p.emotion.DisplayEmotion()
	}
	return DampenEmotion(trueEmotion, p.Visibility(), p.rng)
}

// ZoneGuidance builds the prompt guidance block for the current zone state.
// Returns an empty string when no sweet spot dominates or guidance assembly
// fails; the hand continues without extra guidance.
func (p *PlayerPsychology) ZoneGuidance(ctx *zone.ZoneContext) string {
	return zone.BuildZoneGuidance(p.ZoneEffects(), ctx, p.templates, p.rng)
}

// ApplyPressureEvent applies one named event from the fixed catalog to the
// axes, tilt state, and elastic traits. Unknown event names are an error.
func (p *PlayerPsychology) ApplyPressureEvent(eventName string, opponent string) error {
	effect, err := lookupPressureEvent(eventName)
	if err != nil {
		return err
	}

	p.axes = p.axes.Update(effect.confidence, effect.composure, effect.energy)
	p.tilt = p.tilt.AddTilt(effect.tilt, eventName)
	if effect.tracksNemesis && opponent != "" {
		p.tilt.Nemesis = opponent
	}
	p.elastic = p.elastic.ApplyPressure(
		effect.aggressionPressure, effect.loosenessPressure, effect.riskPressure)
	p.lastUpdated = time.Now().UTC()

	playerLogger.Debug().
		Str(logging.PlayerNameKey, p.playerName).
		Str(logging.EventKey, eventName).
		Float64(logging.TiltKey, p.tilt.TiltLevel).
		Msg("Applied pressure event")
	return nil
}

// OnHandComplete updates composure and tilt from the hand outcome, applies
// the zone gravity nudge, and regenerates the emotional state. Narrative
// generation may fail; the numeric state is computed first and survives.
func (p *PlayerPsychology) OnHandComplete(outcome HandOutcome, sessionContext map[string]string) error {
	magnitude := outcomeMagnitude(outcome.Amount, outcome.BigBlind)

	switch outcome.Outcome {
	case emotion.OutcomeWon:
		p.axes = p.axes.Update(0.05+0.10*magnitude, 0.03+0.05*magnitude, 0.05*magnitude)
		p.tilt = p.tilt.RecordWin()
		p.tilt = p.tilt.AddTilt(-(0.05 + 0.10*magnitude), "")
	case emotion.OutcomeLost:
		p.axes = p.axes.Update(-(0.04 + 0.10*magnitude), -(0.05 + 0.12*magnitude), 0.03*magnitude)
		p.tilt = p.tilt.AddTilt(0.05+0.12*magnitude, "lost_pot")
		p.tilt = p.tilt.RecordLoss(LossRecord{
			Opponent:   outcome.Opponent,
			Amount:     outcome.Amount,
			HandNumber: outcome.HandNumber,
			WasBadBeat: outcome.WasBadBeat,
		})
		if outcome.WasBadBeat {
			p.axes = p.axes.Update(-0.05, -0.10, 0.05)
			p.tilt = p.tilt.AddTilt(0.15, "bad_beat")
		}
		if outcome.WasBluffCalled {
			p.axes = p.axes.Update(-0.05, -0.05, 0)
			p.tilt = p.tilt.AddTilt(0.08, "bluff_called")
		}
	case emotion.OutcomeFolded:
		p.axes = p.axes.Update(0, 0, -0.02)
	}

	// Zone gravity: being deep in a zone tugs the axes further in.
	effects := p.ZoneEffects()
	dConf, dComp := p.detector.ComputeGravity(effects)
	p.axes = p.axes.Update(dConf, dComp, 0)

	p.regenerateEmotion(outcome, sessionContext)
	p.handCount++
	p.lastUpdated = time.Now().UTC()

	playerLogger.Debug().
		Str(logging.PlayerNameKey, p.playerName).
		Int(logging.HandNumKey, outcome.HandNumber).
		Str("outcome", outcome.Outcome).
		Str(logging.QuadrantKey, string(p.Quadrant())).
		Float64(logging.TiltKey, p.tilt.TiltLevel).
		Msg("Hand complete")
	return nil
}

// regenerateEmotion rebuilds the narration-layer state. Dimensions are
// deterministic; narrative text comes from the generator with a fixed
// fallback on failure.
func (p *PlayerPsychology) regenerateEmotion(outcome HandOutcome, sessionContext map[string]string) {
	baseline := p.baselineMood()
	spike := emotion.ComputeReactiveSpike(outcome.Outcome, outcome.Amount, p.tilt.TiltLevel, outcome.BigBlind)
	dims := emotion.Blend(baseline, spike)

	sourceEvents := []string{outcome.Outcome}
	if outcome.WasBadBeat {
		sourceEvents = append(sourceEvents, EventBadBeat)
	}
	if outcome.WasBluffCalled {
		sourceEvents = append(sourceEvents, EventBluffCalled)
	}
	if outcome.KeyMoment != "" {
		sourceEvents = append(sourceEvents, outcome.KeyMoment)
	}

	p.emotion = emotion.BuildState(dims, p.generator, emotion.NarrativeRequest{
		PlayerName:     p.playerName,
		Dimensions:     dims,
		Outcome:        outcome.Outcome,
		Amount:         outcome.Amount,
		Opponent:       outcome.Opponent,
		KeyMoment:      outcome.KeyMoment,
		SourceEvents:   sourceEvents,
		SessionContext: sessionContext,
	}, outcome.HandNumber)
}

func (p *PlayerPsychology) baselineMood() emotion.Dimensions {
	return emotion.ComputeBaselineMood(emotion.MoodInputs{
		SignedDrift: p.elastic.AverageSignedDrift(),
		AbsDrift:    p.elastic.AverageAbsDrift(),
		Aggression:  p.elastic.Aggression.Value,
		Chattiness:  p.elastic.Chattiness.Value,
		EmojiUsage:  p.elastic.EmojiUsage.Value,
	})
}

// Recover runs the between-hands settling pass: elastic traits relax toward
// anchors, tilt bleeds off, the axes decay toward the personality baseline,
// and the narration-layer mood decays toward its own baseline. All four paths
// share the recovery rate derived from the recovery_rate anchor through the
// tunable recovery curve.
func (p *PlayerPsychology) Recover() {
	rate := p.recoveryRate()

	p.elastic = p.elastic.RecoverTraits(rate)
	p.tilt = p.tilt.Decay(rate)
	p.axes = p.axes.DecayToward(
		ComputeBaselineConfidence(p.anchors, p.tunables),
		ComputeBaselineComposure(p.anchors, p.tunables),
		p.anchors.BaselineEnergy,
		rate,
	)
	if p.emotion != nil {
		p.emotion.Dimensions = p.emotion.Dimensions.DecayToward(p.baselineMood(), rate)
	}
	p.lastUpdated = time.Now().UTC()
}

func (p *PlayerPsychology) recoveryRate() float64 {
	floor := p.tunables.MustGet(zone.ParamRecoveryFloor)
	span := p.tunables.MustGet(zone.ParamRecoveryRange)
	return floor + span*p.anchors.RecoveryRate
}

// OnActionTaken tracks consecutive folds. The fold-streak events fire exactly
// once per threshold crossing; a non-fold action resets the counter and arms
// them again.
func (p *PlayerPsychology) OnActionTaken(action string) {
	if action != "fold" {
		p.consecutiveFolds = 0
		return
	}
	p.consecutiveFolds++
	switch p.consecutiveFolds {
	case 3:
		// Error impossible: catalog event name.
		_ = p.ApplyPressureEvent(EventConsecutiveFolds3, "")
	case 5:
		_ = p.ApplyPressureEvent(EventCardDead5, "")
	}
}

func (p *PlayerPsychology) ConsecutiveFolds() int {
	return p.consecutiveFolds
}

func outcomeMagnitude(amount float64, bigBlind float64) float64 {
	if bigBlind <= 0 {
		bigBlind = 1
	}
	m := amount
	if m < 0 {
		m = -m
	}
	m = m / bigBlind
	if m > 10 {
		m = 10
	}
	return m / 10
}
