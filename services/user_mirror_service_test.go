package services

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/longpt2111/food-app/models"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestRedis(t *testing.T) (*miniredis.Miniredis, *redis.Client) {
	t.Helper()
	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { _ = client.Close() })
	return mr, client
}

func TestRedisUserMirror_RoundTrip(t *testing.T) {
	mr, client := newTestRedis(t)
	mirror := NewRedisUserMirror(client, time.Hour)
	ctx := context.Background()
	profile := &models.UserProfile{DisplayName: "Ada", PhotoURL: "https://img/ada.png", Email: "ada@example.com", UID: "g-1"}

	missing, err := mirror.Load(ctx, "s1")
	require.NoError(t, err)
	assert.Nil(t, missing)

	require.NoError(t, mirror.Save(ctx, "s1", profile))
	assert.True(t, mr.Exists("storefront:user:s1"))
	assert.Equal(t, time.Hour, mr.TTL("storefront:user:s1"))

	got, err := mirror.Load(ctx, "s1")
	require.NoError(t, err)
	assert.Equal(t, profile, got)

	require.NoError(t, mirror.Clear(ctx, "s1"))
	got, err = mirror.Load(ctx, "s1")
	require.NoError(t, err)
	assert.Nil(t, got)
}

func TestRedisUserMirror_SaveNilClears(t *testing.T) {
	mr, client := newTestRedis(t)
	mirror := NewRedisUserMirror(client, 0)
	ctx := context.Background()

	require.NoError(t, mirror.Save(ctx, "s1", &models.UserProfile{UID: "g-1"}))
	require.NoError(t, mirror.Save(ctx, "s1", nil))

	assert.False(t, mr.Exists("storefront:user:s1"))
}

func TestRedisUserMirror_CorruptValue(t *testing.T) {
	mr, client := newTestRedis(t)
	mirror := NewRedisUserMirror(client, 0)
	require.NoError(t, mr.Set("storefront:user:s1", "{not json"))

	_, err := mirror.Load(context.Background(), "s1")
	assert.Error(t, err)
}

func TestRedisUserMirror_RedisDown(t *testing.T) {
	mr, client := newTestRedis(t)
	mirror := NewRedisUserMirror(client, 0)
	mr.Close()

	_, err := mirror.Load(context.Background(), "s1")
	assert.Error(t, err)
}
