package psychology

// TiltCategory is the coarse severity bucket derived from tilt level.
type TiltCategory string

const (
	TiltNone     TiltCategory = "none"
	TiltMild     TiltCategory = "mild"
	TiltModerate TiltCategory = "moderate"
	TiltSevere   TiltCategory = "severe"
)

const maxRecentLosses = 5

// LossRecord is one remembered losing hand.
type LossRecord struct {
	Opponent   string  `json:"opponent"`
	Amount     float64 `json:"amount"`
	HandNumber int     `json:"hand_number"`
	WasBadBeat bool    `json:"was_bad_beat"`
}

// TiltState tracks composure pressure: how tilted the character is, what
// caused it, and who keeps causing it.
type TiltState struct {
	TiltLevel    float64      `json:"tilt_level"`
	TiltSource   string       `json:"tilt_source"`
	Nemesis      string       `json:"nemesis,omitempty"`
	RecentLosses []LossRecord `json:"recent_losses"`
	LosingStreak int          `json:"losing_streak"`
}

func NewTiltState() TiltState {
	return TiltState{
		TiltSource:   "",
		RecentLosses: []LossRecord{},
	}
}

// Category buckets the tilt level at the 0.2 / 0.4 / 0.7 thresholds.
func (t TiltState) Category() TiltCategory {
	switch {
	case t.TiltLevel >= 0.7:
		return TiltSevere
	case t.TiltLevel >= 0.4:
		return TiltModerate
	case t.TiltLevel >= 0.2:
		return TiltMild
	default:
		return TiltNone
	}
}

// AddTilt raises (or lowers, for negative deltas) the tilt level and records
// the pressure source.
func (t TiltState) AddTilt(delta float64, source string) TiltState {
	t.TiltLevel = clamp01(t.TiltLevel + delta)
	if delta > 0 && source != "" {
		t.TiltSource = source
	}
	if t.TiltLevel == 0 {
		t.TiltSource = ""
	}
	return t
}

// RecordLoss appends to the bounded loss buffer, advances the losing streak,
// and promotes an opponent to nemesis on a bad beat or on repeated recent
// losses to the same player.
func (t TiltState) RecordLoss(loss LossRecord) TiltState {
	t.RecentLosses = append(t.RecentLosses, loss)
	if len(t.RecentLosses) > maxRecentLosses {
		t.RecentLosses = t.RecentLosses[len(t.RecentLosses)-maxRecentLosses:]
	}
	t.LosingStreak++

	if loss.Opponent == "" {
		return t
	}
	if loss.WasBadBeat {
		t.Nemesis = loss.Opponent
		return t
	}
	lossesToOpponent := 0
	for _, l := range t.RecentLosses {
		if l.Opponent == loss.Opponent {
			lossesToOpponent++
		}
	}
	if lossesToOpponent >= 2 {
		t.Nemesis = loss.Opponent
	}
	return t
}

// RecordWin resets the losing streak. Winning does not erase the nemesis; a
// grudge outlives one pot.
func (t TiltState) RecordWin() TiltState {
	t.LosingStreak = 0
	return t
}

// Decay bleeds tilt toward zero between hands.
func (t TiltState) Decay(rate float64) TiltState {
	t.TiltLevel = clamp01(t.TiltLevel * (1 - rate))
	if t.TiltLevel < 0.01 {
		t.TiltLevel = 0
		t.TiltSource = ""
	}
	return t
}
