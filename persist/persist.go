// Package persist stores psychology state snapshots between hands and across
// session pause/resume. Snapshots are the JSON layout produced by
// psychology.PlayerPsychology.ToState.
package persist

import "tiltlab.com/psyche/psychology"

type PersistPsychologyState interface {
	Load(sessionID string, playerName string) (*psychology.PsychologyState, error)
	Save(sessionID string, playerName string, state *psychology.PsychologyState) error
	Remove(sessionID string, playerName string) error
}
