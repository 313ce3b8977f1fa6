package store

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func unreachableClient(t *testing.T) *redis.Client {
	t.Helper()
	client := redis.NewClient(&redis.Options{
		Addr:        "127.0.0.1:1",
		DialTimeout: 100 * time.Millisecond,
		MaxRetries:  -1,
	})
	t.Cleanup(func() { _ = client.Close() })
	return client
}

func TestSidesKey(t *testing.T) {
	assert.Equal(t, "nhl:game:2024020001:sides", sidesKey("2024020001"))
}

func TestNewRedisStoreDefaultsTTL(t *testing.T) {
	s := NewRedisStore(unreachableClient(t), 0)
	assert.Equal(t, DefaultTTL, s.ttl)
}

func TestNewRedisClientRejectsBadURL(t *testing.T) {
	_, err := NewRedisClient("http://not-redis")
	assert.Error(t, err)

	client, err := NewRedisClient("redis://localhost:6379/2")
	require.NoError(t, err)
	assert.Equal(t, 2, client.Options().DB)
	_ = client.Close()
}

func TestRedisStoreSurfacesConnectionErrors(t *testing.T) {
	s := NewRedisStore(unreachableClient(t), time.Minute)
	ctx := context.Background()

	_, ok, err := s.GetSides(ctx, "2024020001")
	assert.False(t, ok)
	assert.Error(t, err)

	assert.Error(t, s.SetSides(ctx, "2024020001", sampleSides))
}

// fakeRedis implements the Get and Set commands the store uses over a map.
type fakeRedis struct {
	redis.Cmdable
	values map[string]string
	ttls   map[string]time.Duration
}

func newFakeRedis() *fakeRedis {
	return &fakeRedis{values: make(map[string]string), ttls: make(map[string]time.Duration)}
}

func (f *fakeRedis) Get(ctx context.Context, key string) *redis.StringCmd {
	v, ok := f.values[key]
	if !ok {
		return redis.NewStringResult("", redis.Nil)
	}
	return redis.NewStringResult(v, nil)
}

func (f *fakeRedis) Set(ctx context.Context, key string, value interface{}, expiration time.Duration) *redis.StatusCmd {
	switch v := value.(type) {
	case []byte:
		f.values[key] = string(v)
	case string:
		f.values[key] = v
	default:
		return redis.NewStatusResult("", fmt.Errorf("unsupported value %T", value))
	}
	f.ttls[key] = expiration
	return redis.NewStatusResult("OK", nil)
}

func TestRedisStoreMissIsNotAnError(t *testing.T) {
	s := NewRedisStore(newFakeRedis(), time.Hour)

	sides, ok, err := s.GetSides(context.Background(), "2024020001")
	require.NoError(t, err)
	assert.False(t, ok)
	assert.Equal(t, TeamSides{}, sides)
}

func TestRedisStoreRoundTripsSidesWithTTL(t *testing.T) {
	fake := newFakeRedis()
	s := NewRedisStore(fake, 90*time.Minute)
	ctx := context.Background()

	require.NoError(t, s.SetSides(ctx, "2024020001", sampleSides))

	key := sidesKey("2024020001")
	assert.Equal(t, 90*time.Minute, fake.ttls[key])
	assert.JSONEq(t, `{"homeId":10,"homeAbbrev":"TOR","awayId":8,"awayAbbrev":"MTL"}`, fake.values[key])

	got, ok, err := s.GetSides(ctx, "2024020001")
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, sampleSides, got)
	abbrev, found := got.Abbrev(8)
	assert.True(t, found)
	assert.Equal(t, "MTL", abbrev)
}

func TestRedisStoreRejectsCorruptValue(t *testing.T) {
	fake := newFakeRedis()
	fake.values[sidesKey("2024020001")] = "not-json"
	s := NewRedisStore(fake, time.Hour)

	_, ok, err := s.GetSides(context.Background(), "2024020001")
	assert.False(t, ok)
	assert.Error(t, err)
}
