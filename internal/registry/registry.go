// Package registry keeps a per-restaurant snapshot of the data the panel
// reads on almost every screen: the restaurant record, its floor plan and its
// staff roster. The snapshot is replaced wholesale on Reload and invalidated
// automatically when the data mode flips, so a mode switch is never served
// from the other backend's cache.
package registry

import (
	"context"
	"sync"

	"github.com/rs/zerolog/log"

	"restopanel/internal/bus"
	"restopanel/internal/model"
	"restopanel/internal/repository"
)

// Snapshot is one immutable view of a restaurant's operational data.
type Snapshot struct {
	Restaurant *model.Restaurant
	Tables     []model.Table
	Staff      []model.StaffMember
}

type Registry struct {
	repos *repository.Store

	mu        sync.RWMutex
	snapshots map[string]*Snapshot
}

func New(repos *repository.Store, b *bus.Bus) *Registry {
	r := &Registry{
		repos:     repos,
		snapshots: make(map[string]*Snapshot),
	}
	if b != nil {
		if err := b.SubscribeModeChange(func(mode string) {
			r.InvalidateAll()
			log.Debug().Str("mode", mode).Msg("registry: caches dropped after mode change")
		}); err != nil {
			log.Warn().Err(err).Msg("registry: mode-change subscription failed")
		}
	}
	return r
}

// Get returns the cached snapshot, loading it on first use.
func (r *Registry) Get(ctx context.Context, restaurantID string) (*Snapshot, error) {
	r.mu.RLock()
	snap, ok := r.snapshots[restaurantID]
	r.mu.RUnlock()
	if ok {
		return snap, nil
	}
	return r.Reload(ctx, restaurantID)
}

// Reload rebuilds the snapshot from the active backend and swaps it in
// wholesale. Partial loads never replace an existing snapshot.
func (r *Registry) Reload(ctx context.Context, restaurantID string) (*Snapshot, error) {
	repos, err := r.repos.Active()
	if err != nil {
		return nil, err
	}

	restaurant, err := repos.Restaurants.GetByID(ctx, restaurantID)
	if err != nil {
		return nil, err
	}
	tables, err := repos.Tables.ListByRestaurant(ctx, restaurantID)
	if err != nil {
		return nil, err
	}
	staff, err := repos.Staff.ListByRestaurant(ctx, restaurantID)
	if err != nil {
		return nil, err
	}

	snap := &Snapshot{Restaurant: restaurant, Tables: tables, Staff: staff}
	r.mu.Lock()
	r.snapshots[restaurantID] = snap
	r.mu.Unlock()
	return snap, nil
}

// Invalidate drops one restaurant's snapshot; the next Get reloads it.
func (r *Registry) Invalidate(restaurantID string) {
	r.mu.Lock()
	delete(r.snapshots, restaurantID)
	r.mu.Unlock()
}

// InvalidateAll drops every snapshot.
func (r *Registry) InvalidateAll() {
	r.mu.Lock()
	r.snapshots = make(map[string]*Snapshot)
	r.mu.Unlock()
}
