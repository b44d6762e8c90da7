package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/rs/zerolog"

	"tiltlab.com/psyche/logging"
	"tiltlab.com/psyche/persist"
	"tiltlab.com/psyche/runner"
	"tiltlab.com/psyche/scenario"
	"tiltlab.com/psyche/util"
	"tiltlab.com/psyche/zone"
)

var mainLogger = logging.GetZeroLogger("main::main", nil)

func main() {
	zerolog.SetGlobalLevel(zerolog.InfoLevel)

	var scenarioFiles = flag.String("scenario", "", "scenario YAML file to run")
	var tunablesFile = flag.String("tunables", "", "optional tunables YAML file")
	var workers = flag.Int("workers", 4, "number of concurrent session workers")
	var seed = flag.Int64("seed", 0, "random seed for reproducible strategy selection (0 = time-based)")
	var useRedis = flag.Bool("redis", false, "checkpoint psychology state to redis instead of memory")
	flag.Parse()

	scenarioFile := *scenarioFiles
	if scenarioFile == "" {
		scenarioFile = util.PsycheEnvironment.GetScenarioFile()
	}
	if scenarioFile == "" {
		mainLogger.Fatal().Msg("No scenario file specified (use -scenario or PSYCHE_SCENARIO_FILE)")
	}

	tunables := zone.NewTunables()
	if *tunablesFile == "" {
		*tunablesFile = util.PsycheEnvironment.GetTunablesFile()
	}
	if *tunablesFile != "" {
		if err := tunables.LoadFile(*tunablesFile); err != nil {
			mainLogger.Fatal().Msgf("Could not load tunables: %s", err)
		}
	}

	var tracker persist.PersistPsychologyState
	if *useRedis {
		redisHost := util.PsycheEnvironment.GetRedisHost()
		redisPort := util.PsycheEnvironment.GetRedisPort()
		redisAddr := fmt.Sprintf("%s:%d", redisHost, redisPort)
		tracker = persist.NewRedisPsychologyTracker(redisAddr,
			util.PsycheEnvironment.GetRedisPW(), util.PsycheEnvironment.GetRedisDB())
	} else {
		tracker = persist.NewMemoryPsychologyTracker()
	}

	s, err := scenario.ReadScenario(scenarioFile)
	if err != nil {
		mainLogger.Fatal().Msgf("Could not read scenario: %s", err)
	}

	r := runner.NewRunner(tunables, tracker, nil, *workers, *seed)
	reports := r.Run([]*scenario.Scenario{s})

	failed := false
	for _, report := range reports {
		if report.Err != nil {
			failed = true
			mainLogger.Error().
				Str(logging.SessionKey, report.SessionID).
				Msgf("Session failed: %s", report.Err)
			continue
		}
		for _, player := range report.Players {
			mainLogger.Info().
				Str(logging.SessionKey, report.SessionID).
				Str(logging.PlayerNameKey, player.PlayerName).
				Int("hands", player.HandCount).
				Float64(logging.TiltKey, player.TiltLevel).
				Str("tiltCategory", string(player.TiltCategory)).
				Str(logging.QuadrantKey, string(player.Quadrant)).
				Str(logging.ZoneKey, player.DominantZone).
				Str("displayEmotion", player.DisplayEmotion).
				Msg("Session result")
		}
	}
	if failed {
		os.Exit(1)
	}
}
