package zone

import (
	"math/rand"

	mapset "github.com/deckarep/golang-set"
)

// ZoneContext carries the optional contextual data assembled upstream from
// game state and opponent modeling. Empty fields mean the data is not
// available this hand.
type ZoneContext struct {
	OpponentStats            string
	OpponentDisplayedEmotion string
	EquityVsRanges           string
	OpponentAnalysis         string
	WeakPlayerNote           string
	LeverageNote             string
}

// Map returns the populated context fields keyed by template variable name.
func (c *ZoneContext) Map() map[string]string {
	m := make(map[string]string)
	if c == nil {
		return m
	}
	if c.OpponentStats != "" {
		m["opponent_stats"] = c.OpponentStats
	}
	if c.OpponentDisplayedEmotion != "" {
		m["opponent_displayed_emotion"] = c.OpponentDisplayedEmotion
	}
	if c.EquityVsRanges != "" {
		m["equity_vs_ranges"] = c.EquityVsRanges
	}
	if c.OpponentAnalysis != "" {
		m["opponent_analysis"] = c.OpponentAnalysis
	}
	if c.WeakPlayerNote != "" {
		m["weak_player_note"] = c.WeakPlayerNote
	}
	if c.LeverageNote != "" {
		m["leverage_note"] = c.LeverageNote
	}
	return m
}

// KeySet returns the populated context keys as a set.
func (c *ZoneContext) KeySet() mapset.Set {
	keys := mapset.NewSet()
	for k := range c.Map() {
		keys.Add(k)
	}
	return keys
}

// ZoneStrategy is one candidate playstyle for a sweet spot.
type ZoneStrategy struct {
	Name            string
	Weight          float64
	TemplateKey     string
	RequiredContext []string
	MinStrength     float64
}

// Three candidates per sweet spot. Context-hungry strategies demand deeper
// zone strength so thin reads don't drive exotic lines.
var zoneStrategies = map[string][]ZoneStrategy{
	ZoneGuarded: {
		{Name: "tight_observation", Weight: 0.5, TemplateKey: "guarded_observe", MinStrength: 0.1},
		{Name: "trap_setting", Weight: 0.3, TemplateKey: "guarded_trap", RequiredContext: []string{"opponent_stats"}, MinStrength: 0.3},
		{Name: "survival_mode", Weight: 0.2, TemplateKey: "guarded_survive", MinStrength: 0.1},
	},
	ZonePokerFace: {
		{Name: "balanced_pressure", Weight: 0.4, TemplateKey: "poker_face_balanced", MinStrength: 0.1},
		{Name: "exploit_reads", Weight: 0.35, TemplateKey: "poker_face_exploit", RequiredContext: []string{"opponent_analysis"}, MinStrength: 0.25},
		{Name: "equity_grind", Weight: 0.25, TemplateKey: "poker_face_equity", RequiredContext: []string{"equity_vs_ranges"}, MinStrength: 0.2},
	},
	ZoneCommanding: {
		{Name: "table_captain", Weight: 0.45, TemplateKey: "commanding_captain", MinStrength: 0.1},
		{Name: "isolate_weak", Weight: 0.35, TemplateKey: "commanding_isolate", RequiredContext: []string{"weak_player_note"}, MinStrength: 0.3},
		{Name: "leverage_stack", Weight: 0.2, TemplateKey: "commanding_leverage", RequiredContext: []string{"leverage_note"}, MinStrength: 0.25},
	},
	ZoneAggro: {
		{Name: "relentless_pressure", Weight: 0.5, TemplateKey: "aggro_pressure", MinStrength: 0.1},
		{Name: "emotion_read_attack", Weight: 0.3, TemplateKey: "aggro_emotion", RequiredContext: []string{"opponent_displayed_emotion"}, MinStrength: 0.25},
		{Name: "image_exploit", Weight: 0.2, TemplateKey: "aggro_image", RequiredContext: []string{"opponent_stats"}, MinStrength: 0.3},
	},
}

// SelectZoneStrategy picks a strategy for the given sweet spot. Candidates
// are filtered by zone strength and by required context availability, then
// chosen weighted-random over the eligible subset. A nil rng means
// deterministic mode: the heaviest eligible candidate wins. Returns nil when
// nothing is eligible.
func SelectZoneStrategy(zoneName string, strength float64, ctx *ZoneContext, rng *rand.Rand) *ZoneStrategy {
	candidates, ok := zoneStrategies[zoneName]
	if !ok {
		return nil
	}

	available := ctx.KeySet()
	eligible := make([]ZoneStrategy, 0, len(candidates))
	totalWeight := 0.0
	for _, candidate := range candidates {
		if strength < candidate.MinStrength {
			continue
		}
		required := mapset.NewSet()
		for _, key := range candidate.RequiredContext {
			required.Add(key)
		}
		if !required.IsSubset(available) {
			continue
		}
		eligible = append(eligible, candidate)
		totalWeight += candidate.Weight
	}

	if len(eligible) == 0 || totalWeight <= 0 {
		return nil
	}

	if rng == nil {
		best := 0
		for i := range eligible {
			if eligible[i].Weight > eligible[best].Weight {
				best = i
			}
		}
		return &eligible[best]
	}

	roll := rng.Float64() * totalWeight
	for i := range eligible {
		roll -= eligible[i].Weight
		if roll < 0 {
			return &eligible[i]
		}
	}
	return &eligible[len(eligible)-1]
}
