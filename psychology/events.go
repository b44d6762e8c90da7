package psychology

import "fmt"

// Named pressure events and their fixed effects. Axis deltas feed
// EmotionalAxes, tilt feeds TiltState, trait deltas stretch the elastic
// layer.
type pressureEffect struct {
	confidence float64
	composure  float64
	energy     float64
	tilt       float64

	aggressionPressure float64
	loosenessPressure  float64
	riskPressure       float64

	tracksNemesis bool
}

// Event names accepted by ApplyPressureEvent.
const (
	EventBadBeat           = "bad_beat"
	EventBigWin            = "big_win"
	EventBluffCalled       = "bluff_called"
	EventAllInMoment       = "all_in_moment"
	EventCoolerLoss        = "cooler_loss"
	EventHeroCallWon       = "hero_call_won"
	EventConsecutiveFolds3 = "consecutive_folds_3"
	EventCardDead5         = "card_dead_5"
)

var pressureEvents = map[string]pressureEffect{
	EventBadBeat: {
		confidence: -0.15, composure: -0.25, energy: 0.10, tilt: 0.25,
		aggressionPressure: 0.10, loosenessPressure: 0.08, riskPressure: 0.06,
		tracksNemesis: true,
	},
	EventBigWin: {
		confidence: 0.20, composure: 0.10, energy: 0.15, tilt: -0.10,
		aggressionPressure: 0.05, loosenessPressure: 0.05, riskPressure: 0.04,
	},
	EventBluffCalled: {
		confidence: -0.10, composure: -0.15, energy: 0.05, tilt: 0.15,
		aggressionPressure: -0.06, loosenessPressure: -0.04,
		tracksNemesis: true,
	},
	// all_in_moment is pure adrenaline: energy only.
	EventAllInMoment: {
		energy: 0.25,
	},
	EventCoolerLoss: {
		confidence: -0.08, composure: -0.12, tilt: 0.12,
		riskPressure: -0.04,
	},
	EventHeroCallWon: {
		confidence: 0.15, composure: 0.05, energy: 0.10, tilt: -0.05,
		aggressionPressure: 0.06, riskPressure: 0.05,
	},
	EventConsecutiveFolds3: {
		composure: -0.05, energy: -0.10, tilt: 0.05,
		loosenessPressure: 0.04,
	},
	EventCardDead5: {
		confidence: -0.05, composure: -0.10, energy: -0.15, tilt: 0.10,
		loosenessPressure: 0.08, aggressionPressure: 0.04,
	},
}

func lookupPressureEvent(name string) (pressureEffect, error) {
	effect, ok := pressureEvents[name]
	if !ok {
		return pressureEffect{}, fmt.Errorf("Unknown pressure event [%s]", name)
	}
	return effect, nil
}

// IsPressureEvent reports whether name is in the fixed event catalog.
func IsPressureEvent(name string) bool {
	_, ok := pressureEvents[name]
	return ok
}
