package session

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/swiftvtu/vtu_api/internal/flow"
)

// KV is the key-value surface the store runs on. *RedisClient satisfies it;
// tests use an in-memory map.
type KV interface {
	Set(ctx context.Context, key, value string, ttl time.Duration) error
	Get(ctx context.Context, key string) (string, error)
	Delete(ctx context.Context, keys ...string) error
}

// Store serializes flow state per session with a sliding TTL. Each request
// loads the state, applies one transition and saves it back; the last write
// for a session wins.
type Store struct {
	kv  KV
	ttl time.Duration
}

// NewStore creates a Store with the given state TTL.
func NewStore(kv KV, ttl time.Duration) *Store {
	return &Store{kv: kv, ttl: ttl}
}

func (s *Store) key(sessionID string) string {
	return fmt.Sprintf("flow:session:%s", sessionID)
}

// Load retrieves the flow state for a session. ErrNotFound means the session
// has no state yet and the caller should start a fresh flow.
func (s *Store) Load(ctx context.Context, sessionID string) (*flow.State, error) {
	raw, err := s.kv.Get(ctx, s.key(sessionID))
	if err != nil {
		return nil, err
	}
	var st flow.State
	if err := json.Unmarshal([]byte(raw), &st); err != nil {
		return nil, fmt.Errorf("failed to unmarshal flow state: %w", err)
	}
	return &st, nil
}

// Save persists the flow state, refreshing the TTL.
func (s *Store) Save(ctx context.Context, sessionID string, st *flow.State) error {
	raw, err := json.Marshal(st)
	if err != nil {
		return fmt.Errorf("failed to marshal flow state: %w", err)
	}
	return s.kv.Set(ctx, s.key(sessionID), string(raw), s.ttl)
}

// Delete discards the flow state for a session.
func (s *Store) Delete(ctx context.Context, sessionID string) error {
	return s.kv.Delete(ctx, s.key(sessionID))
}
