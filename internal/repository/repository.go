// Package repository defines the data-access interfaces for every entity and
// two implementations of each: a fixture-backed in-memory store (mock mode)
// and a remote document-database store (remote mode). The Store facade picks
// the active implementation on every call from the persisted data mode.
package repository

import (
	"context"
	"time"

	"go.mongodb.org/mongo-driver/mongo"

	"restopanel/internal/apierror"
	"restopanel/internal/datamode"
	"restopanel/internal/model"
)

type UserRepository interface {
	Create(ctx context.Context, u *model.User) error
	GetByID(ctx context.Context, id string) (*model.User, error)
	GetByEmail(ctx context.Context, email string) (*model.User, error)
	Update(ctx context.Context, u *model.User, expected time.Time) error
}

type RestaurantRepository interface {
	Create(ctx context.Context, r *model.Restaurant) error
	GetByID(ctx context.Context, id string) (*model.Restaurant, error)
	// ListByOwner returns an empty slice, not an error, when the owner has no
	// restaurants yet — first-run experiences must stay clean.
	ListByOwner(ctx context.Context, ownerID string) ([]model.Restaurant, error)
	Update(ctx context.Context, r *model.Restaurant, expected time.Time) error
}

type ReservationRepository interface {
	Create(ctx context.Context, res *model.Reservation) error
	GetByID(ctx context.Context, id string) (*model.Reservation, error)
	GetByConfirmation(ctx context.Context, number string) (*model.Reservation, error)
	ListByRestaurant(ctx context.Context, restaurantID string) ([]model.Reservation, error)
	// Update is compare-and-swap on UpdatedAt: expected is the timestamp the
	// caller last read. A mismatch returns ConflictError.
	Update(ctx context.Context, res *model.Reservation, expected time.Time) error
}

type TableRepository interface {
	Create(ctx context.Context, t *model.Table) error
	GetByID(ctx context.Context, id string) (*model.Table, error)
	ListByRestaurant(ctx context.Context, restaurantID string) ([]model.Table, error)
	Update(ctx context.Context, t *model.Table, expected time.Time) error
	Delete(ctx context.Context, id string) error
}

type StaffRepository interface {
	Create(ctx context.Context, s *model.StaffMember) error
	GetByID(ctx context.Context, id string) (*model.StaffMember, error)
	ListByRestaurant(ctx context.Context, restaurantID string) ([]model.StaffMember, error)
	Update(ctx context.Context, s *model.StaffMember, expected time.Time) error
}

type OrderRepository interface {
	Create(ctx context.Context, o *model.Order) error
	GetByID(ctx context.Context, id string) (*model.Order, error)
	GetOpenByTable(ctx context.Context, tableID string) (*model.Order, error)
	ListByRestaurant(ctx context.Context, restaurantID string) ([]model.Order, error)
	Update(ctx context.Context, o *model.Order, expected time.Time) error
}

// Bundle groups one repository per entity, all backed by the same source.
type Bundle struct {
	Users        UserRepository
	Restaurants  RestaurantRepository
	Reservations ReservationRepository
	Tables       TableRepository
	Staff        StaffRepository
	Orders       OrderRepository
}

// NewMemoryBundle returns an empty fixture-backed bundle. Call
// SeedFixtures to load the demo dataset.
func NewMemoryBundle() *Bundle {
	return &Bundle{
		Users:        newMemUserRepo(),
		Restaurants:  newMemRestaurantRepo(),
		Reservations: newMemReservationRepo(),
		Tables:       newMemTableRepo(),
		Staff:        newMemStaffRepo(),
		Orders:       newMemOrderRepo(),
	}
}

// NewMongoBundle returns a bundle backed by the remote document database.
func NewMongoBundle(db *mongo.Database) *Bundle {
	return &Bundle{
		Users:        newMongoUserRepo(db),
		Restaurants:  newMongoRestaurantRepo(db),
		Reservations: newMongoReservationRepo(db),
		Tables:       newMongoTableRepo(db),
		Staff:        newMongoStaffRepo(db),
		Orders:       newMongoOrderRepo(db),
	}
}

// Store is the mode-switching facade consulted by every service call.
type Store struct {
	modes  *datamode.Store
	mem    *Bundle
	remote *Bundle // nil when the remote backend is not configured
}

func NewStore(modes *datamode.Store, mem, remote *Bundle) *Store {
	return &Store{modes: modes, mem: mem, remote: remote}
}

// Active resolves the bundle for the current data mode. Remote mode without
// a configured backend is a BackendUnavailableError, not a silent fallback:
// the operator asked for live data and must see that it cannot be served.
func (s *Store) Active() (*Bundle, error) {
	if s.modes.Mode() == datamode.Remote {
		if s.remote == nil || !s.modes.RemoteConfigured() {
			return nil, apierror.NewBackendUnavailable("remote mode selected but no backend is configured")
		}
		return s.remote, nil
	}
	return s.mem, nil
}

// Mode exposes the current data mode to services that branch on it.
func (s *Store) Mode() datamode.Mode { return s.modes.Mode() }

// Mem returns the fixture bundle regardless of mode (seeding, tests).
func (s *Store) Mem() *Bundle { return s.mem }
