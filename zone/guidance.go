package zone

import (
	"fmt"
	"math/rand"
	"strings"

	"github.com/rs/zerolog/log"
)

var guidanceLogger = log.With().Str("logger_name", "zone::guidance").Logger()

// TemplateSource maps template keys to guidance text. Keys may carry
// energy-flavored variants with a _low or _high suffix; the unsuffixed key is
// the fallback.
type TemplateSource map[string]string

// DefaultTemplates returns the built-in guidance templates. Placeholders use
// {variable} syntax resolved against the zone context.
func DefaultTemplates() TemplateSource {
	return TemplateSource{
		"guarded_observe":     "[GUARDED ZONE] Play tight and watch. Fold marginal spots, note who is splashing around, and bank reads for later.",
		"guarded_observe_low": "[GUARDED ZONE] Keep it simple and slow. Fold anything marginal, conserve chips and attention.",
		"guarded_trap":        "[GUARDED ZONE] Your table image is tight. {opponent_stats} Use that: flat strong hands and let aggressive opponents hang themselves.",
		"guarded_survive":     "[GUARDED ZONE] Protect the stack first. Avoid big confrontations without the goods and wait out the rough patch.",

		"poker_face_balanced":    "[POKER FACE ZONE] Balanced, unreadable poker. Mix value and bluffs at sound frequencies and give away nothing.",
		"poker_face_exploit":     "[POKER FACE ZONE] You are seeing the table clearly. {opponent_analysis} Attack the leaks while staying unreadable yourself.",
		"poker_face_equity":      "[POKER FACE ZONE] Lean on the math. {equity_vs_ranges} Make the disciplined, profitable play every street.",
		"poker_face_equity_high": "[POKER FACE ZONE] Lean on the math and press it. {equity_vs_ranges} Take every thin edge aggressively while staying unreadable.",

		"commanding_captain":      "[COMMANDING ZONE] You own this table. Open wider, apply pressure in position, and make everyone play your game.",
		"commanding_captain_low":  "[COMMANDING ZONE] You own this table, but energy is low. Pick premium spots and apply pressure selectively rather than relentlessly.",
		"commanding_captain_high": "[COMMANDING ZONE] You own this table and you feel it. Push every edge, three-bet lighter, keep the pressure relentless.",
		"commanding_isolate":      "[COMMANDING ZONE] {weak_player_note} Isolate them relentlessly. Raise their limps, punish their passivity, target their stack.",
		"commanding_leverage":     "[COMMANDING ZONE] {leverage_note} Use stack leverage: size bets to threaten stacks and force uncomfortable all-in decisions.",

		"aggro_pressure":      "[AGGRO ZONE] Keep the pressure on. Bet, raise, and deny equity; make opponents find hands to continue.",
		"aggro_pressure_high": "[AGGRO ZONE] Maximum pressure. Barrel relentlessly, attack every sign of weakness, give nobody a free street.",
		"aggro_emotion":       "[AGGRO ZONE] Opponent is showing {opponent_displayed_emotion}. Target that state: pressure the rattled, trap the overheated.",
		"aggro_image":         "[AGGRO ZONE] Your aggression is known. {opponent_stats} Use the image: value bet bigger, expect hero calls.",
	}
}

// energyLabels are short descriptors appended into the guidance header for a
// zone + manifestation pair. Not every pair gets one; balanced usually reads
// fine without a label.
var energyLabels = map[string]map[string]string{
	ZoneGuarded: {
		ManifestLowEnergy:  "conserving energy",
		ManifestHighEnergy: "restless behind the fold button",
	},
	ZonePokerFace: {
		ManifestHighEnergy: "sharp and locked in",
	},
	ZoneCommanding: {
		ManifestLowEnergy:  "coasting on command",
		ManifestHighEnergy: "wired and buzzing",
	},
	ZoneAggro: {
		ManifestHighEnergy: "running hot",
	},
}

// secondaryHints describe the lean a meaningful second sweet spot adds.
var secondaryHints = map[string]string{
	ZoneGuarded:    "Keep a guarded streak: fold the true junk even while executing the main plan.",
	ZonePokerFace:  "Keep a poker-face streak: stay balanced in the spots the main plan does not cover.",
	ZoneCommanding: "Keep a commanding streak: take control of orphaned pots when the main plan allows.",
	ZoneAggro:      "Keep an aggro streak: sprinkle in extra aggression when the main plan goes passive.",
}

// renderTemplate substitutes {variable} placeholders from the context map.
// An unresolved placeholder is an error so the caller can drop the guidance
// block instead of emitting broken prompt text.
func renderTemplate(template string, ctx map[string]string) (string, error) {
	result := template
	for key, value := range ctx {
		result = strings.ReplaceAll(result, "{"+key+"}", value)
	}
	if open := strings.Index(result, "{"); open >= 0 {
		if close := strings.Index(result[open:], "}"); close >= 0 {
			return "", fmt.Errorf("Unresolved template variable %s", result[open:open+close+1])
		}
	}
	return result, nil
}

// resolveTemplate picks the energy-flavored variant of a template key,
// falling back to the unsuffixed base key when the variant is absent.
func resolveTemplate(templates TemplateSource, baseKey string, manifestation string) (string, bool) {
	variantKey := baseKey
	switch manifestation {
	case ManifestLowEnergy:
		variantKey = baseKey + "_low"
	case ManifestHighEnergy:
		variantKey = baseKey + "_high"
	}
	if text, ok := templates[variantKey]; ok {
		return text, true
	}
	text, ok := templates[baseKey]
	return text, ok
}

// insertHeaderLabel splices a label into the guidance header at the first ']'.
func insertHeaderLabel(text string, label string) string {
	idx := strings.Index(text, "]")
	if idx < 0 {
		return text
	}
	return text[:idx] + " | " + label + text[idx:]
}

// BuildZoneGuidance converts a zone readout plus contextual data into a
// prompt guidance block. Every failure path degrades to an empty string so a
// hand never dies on guidance assembly.
func BuildZoneGuidance(effects ZoneEffects, ctx *ZoneContext, templates TemplateSource, rng *rand.Rand) string {
	dominant, strength := effects.DominantSweetSpot()
	if dominant == "" || strength < 0.1 {
		return ""
	}

	strategy := SelectZoneStrategy(dominant, strength, ctx, rng)
	if strategy == nil {
		return ""
	}

	template, ok := resolveTemplate(templates, strategy.TemplateKey, effects.Manifestation)
	if !ok {
		guidanceLogger.Warn().
			Str("zone", dominant).
			Str("templateKey", strategy.TemplateKey).
			Msg("No template found for zone strategy")
		return ""
	}

	text, err := renderTemplate(template, ctx.Map())
	if err != nil {
		guidanceLogger.Warn().
			Str("zone", dominant).
			Str("templateKey", strategy.TemplateKey).
			Msgf("Could not render zone guidance: %s", err)
		return ""
	}

	if labels, ok := energyLabels[dominant]; ok {
		if label, ok := labels[effects.Manifestation]; ok && !strings.Contains(text, label) {
			text = insertHeaderLabel(text, label)
		}
	}

	if secondary, secondaryStrength := effects.SecondarySweetSpot(); secondary != "" && secondaryStrength > 0.25 {
		if hint, ok := secondaryHints[secondary]; ok {
			text = text + "\n" + hint
		}
	}

	return text
}
