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

type memTableRepo struct {
	mu     sync.RWMutex
	tables map[string]*model.Table
}

func newMemTableRepo() *memTableRepo {
	return &memTableRepo{tables: make(map[string]*model.Table)}
}

func (r *memTableRepo) Create(_ context.Context, t *model.Table) error {
	simulateLatency()
	r.mu.Lock()
	defer r.mu.Unlock()
	cp := *t
	r.tables[t.ID] = &cp
	return nil
}

func (r *memTableRepo) GetByID(_ context.Context, id string) (*model.Table, error) {
	simulateLatency()
	r.mu.RLock()
	defer r.mu.RUnlock()
	t, ok := r.tables[id]
	if !ok {
		return nil, apierror.NewNotFound("table", id)
	}
	cp := *t
	return &cp, nil
}

func (r *memTableRepo) ListByRestaurant(_ context.Context, restaurantID string) ([]model.Table, error) {
	simulateLatency()
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]model.Table, 0)
	for _, t := range r.tables {
		if t.RestaurantID == restaurantID {
			out = append(out, *t)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].TableNumber < out[j].TableNumber })
	return out, nil
}

func (r *memTableRepo) Update(_ context.Context, t *model.Table, expected time.Time) error {
	simulateLatency()
	r.mu.Lock()
	defer r.mu.Unlock()
	cur, ok := r.tables[t.ID]
	if !ok {
		return apierror.NewNotFound("table", t.ID)
	}
	if !cur.UpdatedAt.Equal(expected) {
		return apierror.NewConflict("table", t.ID)
	}
	cp := *t
	r.tables[t.ID] = &cp
	return nil
}

func (r *memTableRepo) Delete(_ context.Context, id string) error {
	simulateLatency()
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.tables[id]; !ok {
		return apierror.NewNotFound("table", id)
	}
	delete(r.tables, id)
	return nil
}

// ── Remote (document database) ───────────────────────────────────────────────

type mongoTableRepo struct {
	coll *mongo.Collection
}

func newMongoTableRepo(db *mongo.Database) *mongoTableRepo {
	return &mongoTableRepo{coll: db.Collection("tables")}
}

func (r *mongoTableRepo) Create(ctx context.Context, t *model.Table) error {
	_, err := r.coll.InsertOne(ctx, t)
	return err
}

func (r *mongoTableRepo) GetByID(ctx context.Context, id string) (*model.Table, error) {
	var t model.Table
	err := r.coll.FindOne(ctx, bson.M{"_id": id}).Decode(&t)
	if err == mongo.ErrNoDocuments {
		return nil, apierror.NewNotFound("table", id)
	}
	if err != nil {
		return nil, err
	}
	return &t, nil
}

func (r *mongoTableRepo) ListByRestaurant(ctx context.Context, restaurantID string) ([]model.Table, error) {
	opts := options.Find().SetSort(bson.D{{Key: "tableNumber", Value: 1}})
	cur, err := r.coll.Find(ctx, bson.M{"restaurantId": restaurantID}, opts)
	if err != nil {
		return nil, err
	}
	out := make([]model.Table, 0)
	if err := cur.All(ctx, &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (r *mongoTableRepo) Update(ctx context.Context, t *model.Table, expected time.Time) error {
	filter := bson.M{"_id": t.ID, "updatedAt": expected}
	result, err := r.coll.ReplaceOne(ctx, filter, t)
	if err != nil {
		return err
	}
	if result.MatchedCount == 0 {
		if n, err := r.coll.CountDocuments(ctx, bson.M{"_id": t.ID}); err == nil && n > 0 {
			return apierror.NewConflict("table", t.ID)
		}
		return apierror.NewNotFound("table", t.ID)
	}
	return nil
}

func (r *mongoTableRepo) Delete(ctx context.Context, id string) error {
	result, err := r.coll.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return err
	}
	if result.DeletedCount == 0 {
		return apierror.NewNotFound("table", id)
	}
	return nil
}
