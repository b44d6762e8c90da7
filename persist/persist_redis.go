package persist

import (
	"context"
	"fmt"

	"github.com/go-redis/redis/v8"

	"tiltlab.com/psyche/psychology"
)

type RedisPsychologyTracker struct {
	rdclient *redis.Client
}

func NewRedisPsychologyTracker(redisURL string, redisPW string, redisDB int) *RedisPsychologyTracker {
	rdclient := redis.NewClient(&redis.Options{
		Addr:     redisURL,
		Password: redisPW,
		DB:       redisDB,
	})
	return &RedisPsychologyTracker{
		rdclient: rdclient,
	}
}

func (r *RedisPsychologyTracker) Load(sessionID string, playerName string) (*psychology.PsychologyState, error) {
	key := stateKey(sessionID, playerName)
	stateBytes, err := r.rdclient.Get(context.Background(), key).Result()
	if err == redis.Nil {
		return nil, fmt.Errorf("Psychology state for key: %s is not found", key)
	} else if err != nil {
		return nil, err
	}
	state := &psychology.PsychologyState{}
	err = json.Unmarshal([]byte(stateBytes), state)
	if err != nil {
		return nil, err
	}
	return state, nil
}

func (r *RedisPsychologyTracker) Save(sessionID string, playerName string, state *psychology.PsychologyState) error {
	stateBytes, err := json.Marshal(state)
	if err != nil {
		return err
	}
	return r.rdclient.Set(context.Background(), stateKey(sessionID, playerName), stateBytes, 0).Err()
}

func (r *RedisPsychologyTracker) Remove(sessionID string, playerName string) error {
	return r.rdclient.Del(context.Background(), stateKey(sessionID, playerName)).Err()
}
