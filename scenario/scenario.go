// Package scenario reads session script YAML files: the cast of AI players
// with their personality configs, and the per-hand event sequences that drive
// their psychology during an experiment run.
package scenario

import (
	"fmt"
	"io/ioutil"

	mapset "github.com/deckarep/golang-set"
	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"

	"tiltlab.com/psyche/psychology"
)

// Scenario contains session script YAML content.
type Scenario struct {
	Session  string   `yaml:"session"`
	BigBlind float64  `yaml:"big-blind"`
	Players  []Player `yaml:"players"`
	Hands    []Hand   `yaml:"hands"`
}

// Player is one scripted AI character.
type Player struct {
	Name        string                       `yaml:"name"`
	Personality psychology.PersonalityConfig `yaml:"personality"`
}

// Hand is one scripted hand: an ordered event sequence.
type Hand struct {
	Num    int     `yaml:"num"`
	Events []Event `yaml:"events"`
}

// Event is one scripted occurrence for one player. Exactly one of Action,
// Pressure, or Outcome must be set.
type Event struct {
	Player   string `yaml:"player"`
	Action   string `yaml:"action,omitempty"`
	Pressure string `yaml:"pressure,omitempty"`
	Outcome  string `yaml:"outcome,omitempty"`

	Amount      float64 `yaml:"amount,omitempty"`
	Opponent    string  `yaml:"opponent,omitempty"`
	BadBeat     bool    `yaml:"bad-beat,omitempty"`
	BluffCalled bool    `yaml:"bluff-called,omitempty"`
	KeyMoment   string  `yaml:"key-moment,omitempty"`
}

var validOutcomes = mapset.NewSet("won", "lost", "folded")

// ReadScenario reads and validates a scenario YAML file.
func ReadScenario(fileName string) (*Scenario, error) {
	bytes, err := ioutil.ReadFile(fileName)
	if err != nil {
		return nil, errors.Wrapf(err, "Error reading scenario file [%s]", fileName)
	}

	var scenario Scenario
	err = yaml.Unmarshal(bytes, &scenario)
	if err != nil {
		return nil, errors.Wrapf(err, "Error parsing scenario YAML file [%s]", fileName)
	}

	if err := scenario.Validate(); err != nil {
		return nil, errors.Wrapf(err, "Error validating scenario [%s]", fileName)
	}

	return &scenario, nil
}

func (s *Scenario) Validate() error {
	if s.Session == "" {
		return fmt.Errorf("Scenario is missing a session name")
	}
	if len(s.Players) == 0 {
		return fmt.Errorf("Scenario has no players")
	}

	playerNames := mapset.NewSet()
	for _, player := range s.Players {
		if playerNames.Contains(player.Name) {
			return fmt.Errorf("Duplicate player name [%s] in players", player.Name)
		}
		playerNames.Add(player.Name)
	}

	for i, hand := range s.Hands {
		handNum := i + 1
		for _, event := range hand.Events {
			if !playerNames.Contains(event.Player) {
				return fmt.Errorf("Player [%s] in hand %d is not in the players list", event.Player, handNum)
			}
			kinds := 0
			if event.Action != "" {
				kinds++
			}
			if event.Pressure != "" {
				kinds++
			}
			if event.Outcome != "" {
				kinds++
			}
			if kinds != 1 {
				return fmt.Errorf("Event for player [%s] in hand %d must have exactly one of action/pressure/outcome", event.Player, handNum)
			}
			if event.Pressure != "" && !psychology.IsPressureEvent(event.Pressure) {
				return fmt.Errorf("Unknown pressure event [%s] in hand %d", event.Pressure, handNum)
			}
			if event.Outcome != "" && !validOutcomes.Contains(event.Outcome) {
				return fmt.Errorf("Invalid outcome [%s] in hand %d", event.Outcome, handNum)
			}
			if event.Opponent != "" && !playerNames.Contains(event.Opponent) {
				return fmt.Errorf("Opponent [%s] in hand %d is not in the players list", event.Opponent, handNum)
			}
		}
	}

	return nil
}
