package repository

import (
	"context"
	"sort"
	"sync"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"restopanel/internal/apierror"
	"restopanel/internal/model"
)

// ── Mock (in-memory) ─────────────────────────────────────────────────────────

type memReservationRepo struct {
	mu           sync.RWMutex
	reservations map[string]*model.Reservation
}

func newMemReservationRepo() *memReservationRepo {
	return &memReservationRepo{reservations: make(map[string]*model.Reservation)}
}

func (r *memReservationRepo) Create(_ context.Context, res *model.Reservation) error {
	simulateLatency()
	r.mu.Lock()
	defer r.mu.Unlock()
	cp := *res
	r.reservations[res.ID] = &cp
	return nil
}

func (r *memReservationRepo) GetByID(_ context.Context, id string) (*model.Reservation, error) {
	simulateLatency()
	r.mu.RLock()
	defer r.mu.RUnlock()
	res, ok := r.reservations[id]
	if !ok {
		return nil, apierror.NewNotFound("reservation", id)
	}
	cp := *res
	return &cp, nil
}

func (r *memReservationRepo) GetByConfirmation(_ context.Context, number string) (*model.Reservation, error) {
	simulateLatency()
	r.mu.RLock()
	defer r.mu.RUnlock()
	for _, res := range r.reservations {
		if res.ConfirmationNumber == number {
			cp := *res
			return &cp, nil
		}
	}
	return nil, apierror.NewNotFound("reservation", number)
}

func (r *memReservationRepo) ListByRestaurant(_ context.Context, restaurantID string) ([]model.Reservation, error) {
	simulateLatency()
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]model.Reservation, 0)
	for _, res := range r.reservations {
		if res.RestaurantID == restaurantID {
			out = append(out, *res)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].DateTime.Before(out[j].DateTime) })
	return out, nil
}

func (r *memReservationRepo) Update(_ context.Context, res *model.Reservation, expected time.Time) error {
	simulateLatency()
	r.mu.Lock()
	defer r.mu.Unlock()
	cur, ok := r.reservations[res.ID]
	if !ok {
		return apierror.NewNotFound("reservation", res.ID)
	}
	if !cur.UpdatedAt.Equal(expected) {
		return apierror.NewConflict("reservation", res.ID)
	}
	cp := *res
	r.reservations[res.ID] = &cp
	return nil
}

// ── Remote (document database) ───────────────────────────────────────────────

type mongoReservationRepo struct {
	coll *mongo.Collection
}

func newMongoReservationRepo(db *mongo.Database) *mongoReservationRepo {
	return &mongoReservationRepo{coll: db.Collection("reservations")}
}

func (r *mongoReservationRepo) Create(ctx context.Context, res *model.Reservation) error {
	_, err := r.coll.InsertOne(ctx, res)
	return err
}

func (r *mongoReservationRepo) GetByID(ctx context.Context, id string) (*model.Reservation, error) {
	var res model.Reservation
	err := r.coll.FindOne(ctx, bson.M{"_id": id}).Decode(&res)
	if err == mongo.ErrNoDocuments {
		return nil, apierror.NewNotFound("reservation", id)
	}
	if err != nil {
		return nil, err
	}
	return &res, nil
}

func (r *mongoReservationRepo) GetByConfirmation(ctx context.Context, number string) (*model.Reservation, error) {
	var res model.Reservation
	err := r.coll.FindOne(ctx, bson.M{"confirmationNumber": number}).Decode(&res)
	if err == mongo.ErrNoDocuments {
		return nil, apierror.NewNotFound("reservation", number)
	}
	if err != nil {
		return nil, err
	}
	return &res, nil
}

func (r *mongoReservationRepo) ListByRestaurant(ctx context.Context, restaurantID string) ([]model.Reservation, error) {
	opts := options.Find().SetSort(bson.D{{Key: "dateTime", Value: 1}})
	cur, err := r.coll.Find(ctx, bson.M{"restaurantId": restaurantID}, opts)
	if err != nil {
		return nil, err
	}
	out := make([]model.Reservation, 0)
	if err := cur.All(ctx, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// Update replaces the document only when updatedAt still matches what the
// caller read. A matched-zero result with an existing document means a
// concurrent writer won.
func (r *mongoReservationRepo) Update(ctx context.Context, res *model.Reservation, expected time.Time) error {
	filter := bson.M{"_id": res.ID, "updatedAt": expected}
	result, err := r.coll.ReplaceOne(ctx, filter, res)
	if err != nil {
		return err
	}
	if result.MatchedCount == 0 {
		if n, err := r.coll.CountDocuments(ctx, bson.M{"_id": res.ID}); err == nil && n > 0 {
			return apierror.NewConflict("reservation", res.ID)
		}
		return apierror.NewNotFound("reservation", res.ID)
	}
	return nil
}
