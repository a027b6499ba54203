package registry

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"restopanel/internal/bus"
	"restopanel/internal/datamode"
	"restopanel/internal/repository"
)

func newFixture(t *testing.T) (*Registry, *datamode.Store) {
	t.Helper()
	repository.FixtureLatency = 0

	mr := miniredis.RunT(t)
	rdb := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { rdb.Close() })

	b := bus.New()
	modes := datamode.NewStore(rdb, b, false)
	mem := repository.NewMemoryBundle()
	require.NoError(t, repository.SeedFixtures(mem))
	store := repository.NewStore(modes, mem, nil)
	return New(store, b), modes
}

func TestGetLoadsSnapshot(t *testing.T) {
	reg, _ := newFixture(t)

	snap, err := reg.Get(context.Background(), repository.FixtureRestaurantID)
	require.NoError(t, err)

	assert.Equal(t, "Bella Vista", snap.Restaurant.Name)
	assert.Len(t, snap.Tables, 6)
	assert.Len(t, snap.Staff, 3)
}

func TestGetReturnsCachedSnapshot(t *testing.T) {
	reg, _ := newFixture(t)
	ctx := context.Background()

	first, err := reg.Get(ctx, repository.FixtureRestaurantID)
	require.NoError(t, err)
	second, err := reg.Get(ctx, repository.FixtureRestaurantID)
	require.NoError(t, err)

	assert.Same(t, first, second)
}

func TestInvalidateForcesReload(t *testing.T) {
	reg, _ := newFixture(t)
	ctx := context.Background()

	first, err := reg.Get(ctx, repository.FixtureRestaurantID)
	require.NoError(t, err)

	reg.Invalidate(repository.FixtureRestaurantID)

	second, err := reg.Get(ctx, repository.FixtureRestaurantID)
	require.NoError(t, err)
	assert.NotSame(t, first, second)
}

func TestModeChangeDropsSnapshots(t *testing.T) {
	reg, modes := newFixture(t)
	ctx := context.Background()

	first, err := reg.Get(ctx, repository.FixtureRestaurantID)
	require.NoError(t, err)

	// flipping to remote (unconfigured) and back lands us on mock again; the
	// cache must have been rebuilt, not reused
	require.NoError(t, modes.SetMode(ctx, datamode.Remote))
	require.NoError(t, modes.SetMode(ctx, datamode.Mock))

	assert.Eventually(t, func() bool {
		snap, err := reg.Get(ctx, repository.FixtureRestaurantID)
		return err == nil && snap != first
	}, time.Second, 10*time.Millisecond)
}
