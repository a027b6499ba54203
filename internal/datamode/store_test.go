package datamode

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"restopanel/internal/bus"
)

func newTestStore(t *testing.T) (*Store, *redis.Client) {
	t.Helper()
	mr := miniredis.RunT(t)
	rdb := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { rdb.Close() })
	return NewStore(rdb, bus.New(), true), rdb
}

func TestModeDefaultsToMock(t *testing.T) {
	s, _ := newTestStore(t)
	assert.Equal(t, Mock, s.Mode())
}

func TestModeInvalidValueFallsBackToMock(t *testing.T) {
	s, rdb := newTestStore(t)
	require.NoError(t, rdb.Set(context.Background(), Key, "garbage", 0).Err())
	assert.Equal(t, Mock, s.Mode())
}

func TestSetModePersistsAcrossFreshRead(t *testing.T) {
	s, rdb := newTestStore(t)
	require.NoError(t, s.SetMode(context.Background(), Remote))

	// fresh store over the same storage sees the new value
	fresh := NewStore(rdb, bus.New(), true)
	assert.Equal(t, Remote, fresh.Mode())
}

func TestToggleTwiceReturnsToOriginal(t *testing.T) {
	s, _ := newTestStore(t)
	start := s.Mode()

	first, err := s.Toggle(context.Background())
	require.NoError(t, err)
	assert.NotEqual(t, start, first)

	second, err := s.Toggle(context.Background())
	require.NoError(t, err)
	assert.Equal(t, start, second)
}

func TestSetModeNotifiesSubscribers(t *testing.T) {
	mr := miniredis.RunT(t)
	rdb := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { rdb.Close() })

	b := bus.New()
	var mu sync.Mutex
	var got []string
	require.NoError(t, b.SubscribeModeChange(func(mode string) {
		mu.Lock()
		got = append(got, mode)
		mu.Unlock()
	}))

	s := NewStore(rdb, b, true)
	require.NoError(t, s.SetMode(context.Background(), Remote))

	assert.Eventually(t, func() bool {
		mu.Lock()
		defer mu.Unlock()
		return len(got) == 1 && got[0] == "remote"
	}, time.Second, 10*time.Millisecond)
}

func TestRemoteConfigured(t *testing.T) {
	mr := miniredis.RunT(t)
	rdb := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { rdb.Close() })

	assert.True(t, NewStore(rdb, bus.New(), true).RemoteConfigured())
	assert.False(t, NewStore(rdb, bus.New(), false).RemoteConfigured())
}
