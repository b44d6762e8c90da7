package emotion

// DisplayEmotion maps the dimensions to one display label. The checks are
// priority-ordered: angry is tested before shocked, smug before confident
// before happy. Reordering changes which label wins on overlapping states.
func DisplayEmotion(d Dimensions) string {
	switch {
	case d.Valence < -0.5 && d.Arousal > 0.6:
		return "angry"
	case d.Valence > 0.6 && d.Arousal > 0.6:
		return "elated"
	case d.Arousal > 0.75 && d.Control < 0.4:
		return "shocked"
	case d.Valence > 0.4 && d.Control > 0.7:
		return "smug"
	case d.Valence < -0.3:
		return "frustrated"
	case d.Arousal > 0.6 && d.Control < 0.5:
		return "nervous"
	case d.Valence > 0.2 && d.Control > 0.6:
		return "confident"
	case d.Valence > 0.3:
		return "happy"
	case d.Focus > 0.75:
		return "thinking"
	default:
		return "poker_face"
	}
}
