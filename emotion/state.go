package emotion

import "time"

// State is one generated emotional snapshot: the numeric dimensions plus the
// narrative text layered on top. The dimensions are always computed
// deterministically; only the narrative depends on an external generator.
type State struct {
	Dimensions      Dimensions `json:"dimensions"`
	Narrative       string     `json:"narrative"`
	InnerVoice      string     `json:"inner_voice"`
	GeneratedAtHand int        `json:"generated_at_hand"`
	SourceEvents    []string   `json:"source_events"`
	CreatedAt       time.Time  `json:"created_at"`
	UsedFallback    bool       `json:"used_fallback"`
}

// DisplayEmotion returns the display label for the current dimensions.
func (s *State) DisplayEmotion() string {
	return DisplayEmotion(s.Dimensions)
}
