// Package runner executes scenario sessions concurrently. Each session owns
// its private set of PlayerPsychology instances; nothing mutable is shared
// across sessions, so workers need no locking beyond the result channel.
package runner

import (
	"sync"

	"github.com/google/uuid"

	"tiltlab.com/psyche/emotion"
	"tiltlab.com/psyche/logging"
	"tiltlab.com/psyche/persist"
	"tiltlab.com/psyche/psychology"
	"tiltlab.com/psyche/scenario"
	"tiltlab.com/psyche/util"
	"tiltlab.com/psyche/zone"
)

var runnerLogger = logging.GetZeroLogger("runner::runner", nil)

// PlayerReport is the end-of-session psychology summary for one player.
type PlayerReport struct {
	PlayerName     string
	HandCount      int
	TiltLevel      float64
	TiltCategory   psychology.TiltCategory
	Nemesis        string
	Quadrant       psychology.Quadrant
	DominantZone   string
	DisplayEmotion string
}

// SessionReport is the outcome of one completed session.
type SessionReport struct {
	SessionID string
	Session   string
	Players   []PlayerReport
	Err       error
}

// Runner drives scenarios through the psychology engine on a worker pool.
type Runner struct {
	tunables  *zone.Tunables
	tracker   persist.PersistPsychologyState
	generator emotion.Generator
	workers   int
	seed      int64
}

// NewRunner creates a runner. A zero worker count means one worker; a zero
// seed gives time-based randomness per session.
func NewRunner(tunables *zone.Tunables, tracker persist.PersistPsychologyState,
	generator emotion.Generator, workers int, seed int64) *Runner {
	if workers <= 0 {
		workers = 1
	}
	return &Runner{
		tunables:  tunables,
		tracker:   tracker,
		generator: generator,
		workers:   workers,
		seed:      seed,
	}
}

// Run executes all scenarios and returns one report per scenario. Order of
// reports is not guaranteed to match input order.
func (r *Runner) Run(scenarios []*scenario.Scenario) []SessionReport {
	work := make(chan *scenario.Scenario)
	results := make(chan SessionReport, len(scenarios))

	var wg sync.WaitGroup
	for i := 0; i < r.workers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for s := range work {
				results <- r.runSession(s)
			}
		}()
	}

	for _, s := range scenarios {
		work <- s
	}
	close(work)
	wg.Wait()
	close(results)

	reports := make([]SessionReport, 0, len(scenarios))
	for report := range results {
		reports = append(reports, report)
	}
	return reports
}

func (r *Runner) runSession(s *scenario.Scenario) SessionReport {
	sessionID := uuid.New().String()
	report := SessionReport{
		SessionID: sessionID,
		Session:   s.Session,
	}

	rng := util.NewRand(r.seed)
	players := make(map[string]*psychology.PlayerPsychology)
	for _, scripted := range s.Players {
		p, err := psychology.NewPlayerPsychology(scripted.Name, scripted.Personality, r.tunables, rng, r.generator)
		if err != nil {
			report.Err = err
			return report
		}
		players[scripted.Name] = p
	}

	runnerLogger.Info().
		Str(logging.SessionKey, sessionID).
		Str("session", s.Session).
		Int("players", len(players)).
		Int("hands", len(s.Hands)).
		Msg("Starting session")

	sessionContext := map[string]string{
		"session":    s.Session,
		"session_id": sessionID,
	}

	for _, hand := range s.Hands {
		for _, event := range hand.Events {
			p := players[event.Player]
			switch {
			case event.Action != "":
				p.OnActionTaken(event.Action)
			case event.Pressure != "":
				if err := p.ApplyPressureEvent(event.Pressure, event.Opponent); err != nil {
					report.Err = err
					return report
				}
			case event.Outcome != "":
				outcome := psychology.HandOutcome{
					Outcome:        event.Outcome,
					Amount:         event.Amount,
					Opponent:       event.Opponent,
					WasBadBeat:     event.BadBeat,
					WasBluffCalled: event.BluffCalled,
					HandNumber:     hand.Num,
					BigBlind:       s.BigBlind,
					KeyMoment:      event.KeyMoment,
				}
				if err := p.OnHandComplete(outcome, sessionContext); err != nil {
					report.Err = err
					return report
				}
			}
		}

		// Between-hands settle and checkpoint.
		for _, p := range players {
			p.Recover()
			if r.tracker != nil {
				if err := r.tracker.Save(sessionID, p.PlayerName(), p.ToState()); err != nil {
					runnerLogger.Error().
						Str(logging.SessionKey, sessionID).
						Str(logging.PlayerNameKey, p.PlayerName()).
						Msgf("Could not checkpoint psychology state: %s", err)
				}
			}
		}
	}

	for _, scripted := range s.Players {
		p := players[scripted.Name]
		effects := p.ZoneEffects()
		dominant, _ := effects.DominantSweetSpot()
		report.Players = append(report.Players, PlayerReport{
			PlayerName:     p.PlayerName(),
			HandCount:      p.HandCount(),
			TiltLevel:      p.Tilt().TiltLevel,
			TiltCategory:   p.TiltCategory(),
			Nemesis:        p.Tilt().Nemesis,
			Quadrant:       p.Quadrant(),
			DominantZone:   dominant,
			DisplayEmotion: p.DisplayEmotion(),
		})
	}
	return report
}
