package persist

import (
	"fmt"

	jsoniter "github.com/json-iterator/go"

	"tiltlab.com/psyche/psychology"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

type MemoryPsychologyTracker struct {
	snapshots map[string][]byte
}

func NewMemoryPsychologyTracker() *MemoryPsychologyTracker {
	return &MemoryPsychologyTracker{
		snapshots: make(map[string][]byte),
	}
}

func stateKey(sessionID string, playerName string) string {
	return fmt.Sprintf("%s|%s", sessionID, playerName)
}

func (m *MemoryPsychologyTracker) Load(sessionID string, playerName string) (*psychology.PsychologyState, error) {
	key := stateKey(sessionID, playerName)
	stateBytes, ok := m.snapshots[key]
	if !ok {
		return nil, fmt.Errorf("Psychology state for key: %s is not found", key)
	}
	state := &psychology.PsychologyState{}
	err := json.Unmarshal(stateBytes, state)
	if err != nil {
		return nil, err
	}
	return state, nil
}

func (m *MemoryPsychologyTracker) Save(sessionID string, playerName string, state *psychology.PsychologyState) error {
	stateBytes, err := json.Marshal(state)
	if err != nil {
		return err
	}
	m.snapshots[stateKey(sessionID, playerName)] = stateBytes
	return nil
}

func (m *MemoryPsychologyTracker) Remove(sessionID string, playerName string) error {
	delete(m.snapshots, stateKey(sessionID, playerName))
	return nil
}
