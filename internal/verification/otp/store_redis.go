package otp

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"dsa-onboarding/pkg/platform/sentinel"
)

const keyPrefix = "onboarding:otp_ref:"

// RedisStore keeps bindings in Redis with the binding's TTL as key expiry.
type RedisStore struct {
	client redis.UniversalClient
	now    func() time.Time
}

func NewRedisStore(client redis.UniversalClient) *RedisStore {
	return &RedisStore{client: client, now: time.Now}
}

func (s *RedisStore) Save(ctx context.Context, refID string, b Binding) error {
	payload, err := json.Marshal(b)
	if err != nil {
		return fmt.Errorf("encode otp binding: %w", err)
	}
	ttl := b.ExpiresAt.Sub(s.now())
	if ttl <= 0 {
		return sentinel.ErrExpired
	}
	if err := s.client.Set(ctx, keyPrefix+refID, payload, ttl).Err(); err != nil {
		return fmt.Errorf("save otp binding: %w", err)
	}
	return nil
}

func (s *RedisStore) Get(ctx context.Context, refID string) (Binding, error) {
	raw, err := s.client.Get(ctx, keyPrefix+refID).Bytes()
	if errors.Is(err, redis.Nil) {
		return Binding{}, sentinel.ErrNotFound
	}
	if err != nil {
		return Binding{}, fmt.Errorf("load otp binding: %w", err)
	}
	var b Binding
	if err := json.Unmarshal(raw, &b); err != nil {
		return Binding{}, fmt.Errorf("decode otp binding: %w", err)
	}
	if !s.now().Before(b.ExpiresAt) {
		return Binding{}, sentinel.ErrExpired
	}
	return b, nil
}

// Delete is atomic: of two concurrent deletes only one sees a removed key.
func (s *RedisStore) Delete(ctx context.Context, refID string) error {
	n, err := s.client.Del(ctx, keyPrefix+refID).Result()
	if err != nil {
		return fmt.Errorf("delete otp binding: %w", err)
	}
	if n == 0 {
		return sentinel.ErrAlreadyUsed
	}
	return nil
}
