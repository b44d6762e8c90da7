package util

import (
	"fmt"
	"os"
	"strconv"

	"github.com/rs/zerolog/log"
)

var environmentLogger = log.With().Str("logger_name", "util::environment").Logger()

type psycheEnvironment struct {
	RedisHost    string
	RedisPort    string
	RedisPW      string
	RedisDB      string
	TunablesFile string
	ScenarioFile string
}

// PsycheEnvironment is a helper object for accessing environment variables.
var PsycheEnvironment = &psycheEnvironment{
	RedisHost:    "REDIS_HOST",
	RedisPort:    "REDIS_PORT",
	RedisPW:      "REDIS_PW",
	RedisDB:      "REDIS_DB",
	TunablesFile: "PSYCHE_TUNABLES_FILE",
	ScenarioFile: "PSYCHE_SCENARIO_FILE",
}

func (p *psycheEnvironment) GetRedisHost() string {
	host := os.Getenv(p.RedisHost)
	if host == "" {
		msg := fmt.Sprintf("%s is not defined", p.RedisHost)
		environmentLogger.Error().Msg(msg)
		panic(msg)
	}
	return host
}

func (p *psycheEnvironment) GetRedisPort() int {
	portStr := os.Getenv(p.RedisPort)
	if portStr == "" {
		msg := fmt.Sprintf("%s is not defined", p.RedisPort)
		environmentLogger.Error().Msg(msg)
		panic(msg)
	}
	portNum, err := strconv.Atoi(portStr)
	if err != nil {
		msg := fmt.Sprintf("Invalid Redis port %s", portStr)
		environmentLogger.Error().Msg(msg)
		panic(msg)
	}
	return portNum
}

func (p *psycheEnvironment) GetRedisPW() string {
	pw := os.Getenv(p.RedisPW)
	return pw
}

func (p *psycheEnvironment) GetRedisDB() int {
	dbStr := os.Getenv(p.RedisDB)
	if dbStr == "" {
		return 0
	}
	dbNum, err := strconv.Atoi(dbStr)
	if err != nil {
		msg := fmt.Sprintf("Invalid Redis db %s", dbStr)
		environmentLogger.Error().Msg(msg)
		panic(msg)
	}
	return dbNum
}

// GetTunablesFile returns the tunables YAML path, or empty when not configured.
func (p *psycheEnvironment) GetTunablesFile() string {
	return os.Getenv(p.TunablesFile)
}

// GetScenarioFile returns the scenario YAML path, or empty when not configured.
func (p *psycheEnvironment) GetScenarioFile() string {
	return os.Getenv(p.ScenarioFile)
}
