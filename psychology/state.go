package psychology

import (
	"math/rand"
	"time"

	"tiltlab.com/psyche/emotion"
	"tiltlab.com/psyche/zone"
)

// ElasticState is the persisted elastic layer: the trait set plus the axes
// snapshot, since both decay toward personality anchors together.
type ElasticState struct {
	Traits ElasticTraits `json:"traits"`
	Axes   AxesState     `json:"axes"`
}

type AxesState struct {
	Confidence float64 `json:"confidence"`
	Composure  float64 `json:"composure"`
	Energy     float64 `json:"energy"`
}

// EmotionalStateRecord is the persisted narration-layer snapshot.
type EmotionalStateRecord struct {
	Valence         float64  `json:"valence"`
	Arousal         float64  `json:"arousal"`
	Control         float64  `json:"control"`
	Focus           float64  `json:"focus"`
	Narrative       string   `json:"narrative"`
	InnerVoice      string   `json:"inner_voice"`
	GeneratedAtHand int      `json:"generated_at_hand"`
	SourceEvents    []string `json:"source_events"`
	CreatedAt       string   `json:"created_at"`
	UsedFallback    bool     `json:"used_fallback"`
}

// PsychologyState is the JSON-serializable persisted layout. Missing fields
// on load fall back to personality defaults so legacy snapshots stay
// loadable.
type PsychologyState struct {
	PlayerName  string                `json:"player_name"`
	Elastic     *ElasticState         `json:"elastic"`
	Emotional   *EmotionalStateRecord `json:"emotional"`
	Tilt        TiltState             `json:"tilt"`
	HandCount   int                   `json:"hand_count"`
	LastUpdated string                `json:"last_updated,omitempty"`
}

// ToState snapshots the full mutable state for persistence.
func (p *PlayerPsychology) ToState() *PsychologyState {
	state := &PsychologyState{
		PlayerName: p.playerName,
		Elastic: &ElasticState{
			Traits: p.elastic,
			Axes: AxesState{
				Confidence: p.axes.Confidence,
				Composure:  p.axes.Composure,
				Energy:     p.axes.Energy,
			},
		},
		Tilt:      p.tilt,
		HandCount: p.handCount,
	}
	if !p.lastUpdated.IsZero() {
		state.LastUpdated = p.lastUpdated.Format(time.RFC3339Nano)
	}
	if p.emotion != nil {
		state.Emotional = &EmotionalStateRecord{
			Valence:         p.emotion.Dimensions.Valence,
			Arousal:         p.emotion.Dimensions.Arousal,
			Control:         p.emotion.Dimensions.Control,
			Focus:           p.emotion.Dimensions.Focus,
			Narrative:       p.emotion.Narrative,
			InnerVoice:      p.emotion.InnerVoice,
			GeneratedAtHand: p.emotion.GeneratedAtHand,
			SourceEvents:    p.emotion.SourceEvents,
			CreatedAt:       p.emotion.CreatedAt.Format(time.RFC3339Nano),
			UsedFallback:    p.emotion.UsedFallback,
		}
	}
	return state
}

// FromState reconstructs a PlayerPsychology from a persisted snapshot. The
// personality config supplies anchors and everything a partial snapshot is
// missing; deserialization never fails on absent fields.
func FromState(state *PsychologyState, config PersonalityConfig, tunables *zone.Tunables,
	rng *rand.Rand, generator emotion.Generator) (*PlayerPsychology, error) {
	p, err := NewPlayerPsychology(state.PlayerName, config, tunables, rng, generator)
	if err != nil {
		return nil, err
	}

	if state.Elastic != nil {
		p.elastic = state.Elastic.Traits
		p.axes = NewEmotionalAxes(
			state.Elastic.Axes.Confidence,
			state.Elastic.Axes.Composure,
			state.Elastic.Axes.Energy,
		)
	}

	p.tilt = state.Tilt
	if p.tilt.RecentLosses == nil {
		p.tilt.RecentLosses = []LossRecord{}
	}
	p.handCount = state.HandCount

	if state.LastUpdated != "" {
		if ts, err := time.Parse(time.RFC3339Nano, state.LastUpdated); err == nil {
			p.lastUpdated = ts
		}
	}

	if state.Emotional != nil {
		rec := state.Emotional
		createdAt := time.Time{}
		if ts, err := time.Parse(time.RFC3339Nano, rec.CreatedAt); err == nil {
			createdAt = ts
		}
		p.emotion = &emotion.State{
			Dimensions: emotion.Dimensions{
				Valence: rec.Valence,
				Arousal: rec.Arousal,
				Control: rec.Control,
				Focus:   rec.Focus,
			},
			Narrative:       rec.Narrative,
			InnerVoice:      rec.InnerVoice,
			GeneratedAtHand: rec.GeneratedAtHand,
			SourceEvents:    rec.SourceEvents,
			CreatedAt:       createdAt,
			UsedFallback:    rec.UsedFallback,
		}
	}

	return p, nil
}
