package coordination

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"sync"

	"github.com/go-redis/redis/v8"

	"github.com/MazaSebastian/crop-crm-sub000/utils"
)

// ErrSessionNotFound is returned for unknown or expired session handles.
var ErrSessionNotFound = errors.New("coordination session not found")

// StateStore persists wizard state per session handle.
type StateStore interface {
	Load(ctx context.Context, handle string) (State, error)
	Save(ctx context.Context, handle string, state State) error
	Delete(ctx context.Context, handle string) error
}

type redisStateStore struct {
	client *redis.Client
}

// NewRedisStateStore keeps live wizard state in Redis with an idle TTL.
func NewRedisStateStore(client *redis.Client) StateStore {
	return &redisStateStore{client: client}
}

func (s *redisStateStore) Load(ctx context.Context, handle string) (State, error) {
	raw, err := s.client.Get(ctx, utils.SessionCachePrefix+handle).Result()
	if err == redis.Nil {
		return State{}, ErrSessionNotFound
	}
	if err != nil {
		return State{}, fmt.Errorf("failed to load session %s: %w", handle, err)
	}
	var state State
	if err := json.Unmarshal([]byte(raw), &state); err != nil {
		return State{}, fmt.Errorf("failed to decode session %s: %w", handle, err)
	}
	return state, nil
}

func (s *redisStateStore) Save(ctx context.Context, handle string, state State) error {
	raw, err := json.Marshal(state)
	if err != nil {
		return fmt.Errorf("failed to encode session %s: %w", handle, err)
	}
	if err := s.client.Set(ctx, utils.SessionCachePrefix+handle, raw, utils.SessionCacheTTL).Err(); err != nil {
		return fmt.Errorf("failed to save session %s: %w", handle, err)
	}
	return nil
}

func (s *redisStateStore) Delete(ctx context.Context, handle string) error {
	return s.client.Del(ctx, utils.SessionCachePrefix+handle).Err()
}

type memoryStateStore struct {
	mu     sync.RWMutex
	states map[string]State
}

// NewMemoryStateStore is the in-process store used by tests and single-node
// dev setups.
func NewMemoryStateStore() StateStore {
	return &memoryStateStore{states: make(map[string]State)}
}

func (s *memoryStateStore) Load(_ context.Context, handle string) (State, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	state, ok := s.states[handle]
	if !ok {
		return State{}, ErrSessionNotFound
	}
	return state, nil
}

func (s *memoryStateStore) Save(_ context.Context, handle string, state State) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.states[handle] = state
	return nil
}

func (s *memoryStateStore) Delete(_ context.Context, handle string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.states, handle)
	return nil
}
