package sessionstore

import (
	"context"
	"encoding/json"
	"time"

	"github.com/go-redis/redis/v8"

	"github.com/bookeasy-app/booking-api/internal/wizard"
)

const keyPrefix = "wizard:session:"

// RedisStore persists wizard snapshots in Redis. Expiry is handled by the
// key TTL; a session untouched past its TTL simply disappears.
type RedisStore struct {
	client *redis.Client
}

func NewRedisStore(client *redis.Client) *RedisStore {
	return &RedisStore{client: client}
}

func (s *RedisStore) Save(
	ctx context.Context,
	sessionID string,
	snap wizard.Snapshot,
	ttl time.Duration,
) error {

	payload, err := json.Marshal(snap)
	if err != nil {
		return err
	}

	return s.client.Set(ctx, keyPrefix+sessionID, payload, ttl).Err()
}

func (s *RedisStore) Load(
	ctx context.Context,
	sessionID string,
) (wizard.Snapshot, error) {

	payload, err := s.client.Get(ctx, keyPrefix+sessionID).Bytes()
	if err != nil {
		if err == redis.Nil {
			return wizard.Snapshot{}, wizard.ErrNotFound
		}
		return wizard.Snapshot{}, err
	}

	var snap wizard.Snapshot
	if err := json.Unmarshal(payload, &snap); err != nil {
		return wizard.Snapshot{}, err
	}

	return snap, nil
}

func (s *RedisStore) Delete(ctx context.Context, sessionID string) error {
	return s.client.Del(ctx, keyPrefix+sessionID).Err()
}

// Compile-time check
var _ wizard.Store = (*RedisStore)(nil)
