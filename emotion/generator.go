package emotion

import (
	"time"

	"github.com/rs/zerolog/log"
)

var generatorLogger = log.With().Str("logger_name", "emotion::generator").Logger()

// Narrative is the text a generator produces for one snapshot.
type Narrative struct {
	Narrative  string
	InnerVoice string
}

// NarrativeRequest carries everything a generator may use to write the text.
// SessionContext is free-form key/value data assembled upstream (table stage,
// stakes, notable history); generators may ignore it.
type NarrativeRequest struct {
	PlayerName     string
	Dimensions     Dimensions
	Outcome        string
	Amount         float64
	Opponent       string
	KeyMoment      string
	SourceEvents   []string
	SessionContext map[string]string
}

// Generator writes narrative text for an emotional snapshot. Implementations
// typically call an LLM and own their own timeout; they may be slow or fail
// and the caller must not let that corrupt numeric state.
type Generator interface {
	GenerateNarrative(req NarrativeRequest) (Narrative, error)
}

const (
	fallbackNarrative  = "Keeps a steady presence at the table, giving little away."
	fallbackInnerVoice = "Stay in the game. Play the next hand well."
)

// BuildState assembles a State from precomputed dimensions, delegating the
// narrative to the generator. A nil generator or a generator failure falls
// back to fixed text; the dimensions are never affected.
func BuildState(dims Dimensions, gen Generator, req NarrativeRequest, handNumber int) *State {
	state := &State{
		Dimensions:      dims,
		GeneratedAtHand: handNumber,
		SourceEvents:    req.SourceEvents,
		CreatedAt:       time.Now().UTC(),
	}

	if gen == nil {
		state.Narrative = fallbackNarrative
		state.InnerVoice = fallbackInnerVoice
		state.UsedFallback = true
		return state
	}

	narrative, err := gen.GenerateNarrative(req)
	if err != nil {
		generatorLogger.Warn().
			Str("playerName", req.PlayerName).
			Msgf("Narrative generation failed, using fallback: %s", err)
		state.Narrative = fallbackNarrative
		state.InnerVoice = fallbackInnerVoice
		state.UsedFallback = true
		return state
	}

	state.Narrative = narrative.Narrative
	state.InnerVoice = narrative.InnerVoice
	return state
}

// StaticGenerator returns fixed text. Used in tests and offline runs.
type StaticGenerator struct {
	Text       string
	InnerVoice string
}

func (g *StaticGenerator) GenerateNarrative(req NarrativeRequest) (Narrative, error) {
	return Narrative{Narrative: g.Text, InnerVoice: g.InnerVoice}, nil
}
