package services

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/longpt2111/food-app/models"
	"github.com/redis/go-redis/v9"
)

const userMirrorPrefix = "storefront:user:"

// RedisUserMirror keeps the signed-in profile of each session in Redis so a
// restarted session can restore it.
type RedisUserMirror struct {
	client *redis.Client
	ttl    time.Duration
}

// NewRedisUserMirror stores profiles for ttl; zero keeps them until cleared.
func NewRedisUserMirror(client *redis.Client, ttl time.Duration) *RedisUserMirror {
	return &RedisUserMirror{client: client, ttl: ttl}
}

func userMirrorKey(sessionID string) string {
	return userMirrorPrefix + sessionID
}

// Load returns the mirrored profile, or nil if the session has none.
func (m *RedisUserMirror) Load(ctx context.Context, sessionID string) (*models.UserProfile, error) {
	data, err := m.client.Get(ctx, userMirrorKey(sessionID)).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read user mirror: %w", err)
	}

	var profile models.UserProfile
	if err := json.Unmarshal(data, &profile); err != nil {
		return nil, fmt.Errorf("failed to decode user mirror: %w", err)
	}
	return &profile, nil
}

func (m *RedisUserMirror) Save(ctx context.Context, sessionID string, profile *models.UserProfile) error {
	if profile == nil {
		return m.Clear(ctx, sessionID)
	}
	data, err := json.Marshal(profile)
	if err != nil {
		return fmt.Errorf("failed to encode user mirror: %w", err)
	}
	if err := m.client.Set(ctx, userMirrorKey(sessionID), data, m.ttl).Err(); err != nil {
		return fmt.Errorf("failed to write user mirror: %w", err)
	}
	return nil
}

func (m *RedisUserMirror) Clear(ctx context.Context, sessionID string) error {
	if err := m.client.Del(ctx, userMirrorKey(sessionID)).Err(); err != nil {
		return fmt.Errorf("failed to clear user mirror: %w", err)
	}
	return nil
}
