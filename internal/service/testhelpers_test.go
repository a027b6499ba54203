package service

import (
	"testing"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/require"

	"restopanel/internal/bus"
	"restopanel/internal/config"
	"restopanel/internal/datamode"
	"restopanel/internal/repository"
)

func init() {
	// tests exercise the mock bundle heavily, skip the simulated round-trips
	repository.FixtureLatency = 0
}

func newTestRedis(t *testing.T) *redis.Client {
	t.Helper()
	mr := miniredis.RunT(t)
	rdb := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { rdb.Close() })
	return rdb
}

// newTestRepos returns a mock-only store seeded with the demo fixtures.
func newTestRepos(t *testing.T) *repository.Store {
	t.Helper()
	modes := datamode.NewStore(newTestRedis(t), bus.New(), false)
	mem := repository.NewMemoryBundle()
	require.NoError(t, repository.SeedFixtures(mem))
	return repository.NewStore(modes, mem, nil)
}

func newTestConfig() *config.Config {
	return &config.Config{
		Env:                "test",
		JWTSecret:          "test-secret",
		JWTExpirationHours: 1,
	}
}
