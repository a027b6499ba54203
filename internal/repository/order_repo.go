package repository

import (
	"context"
	"sort"
	"sync"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"

	"restopanel/internal/apierror"
	"restopanel/internal/model"
)

func cloneOrder(o *model.Order) *model.Order {
	cp := *o
	if o.Items != nil {
		cp.Items = make([]model.OrderItem, len(o.Items))
		copy(cp.Items, o.Items)
	}
	return &cp
}

// ── Mock (in-memory) ─────────────────────────────────────────────────────────

type memOrderRepo struct {
	mu     sync.RWMutex
	orders map[string]*model.Order
}

func newMemOrderRepo() *memOrderRepo {
	return &memOrderRepo{orders: make(map[string]*model.Order)}
}

func (r *memOrderRepo) Create(_ context.Context, o *model.Order) error {
	simulateLatency()
	r.mu.Lock()
	defer r.mu.Unlock()
	r.orders[o.ID] = cloneOrder(o)
	return nil
}

func (r *memOrderRepo) GetByID(_ context.Context, id string) (*model.Order, error) {
	simulateLatency()
	r.mu.RLock()
	defer r.mu.RUnlock()
	o, ok := r.orders[id]
	if !ok {
		return nil, apierror.NewNotFound("order", id)
	}
	return cloneOrder(o), nil
}

func (r *memOrderRepo) GetOpenByTable(_ context.Context, tableID string) (*model.Order, error) {
	simulateLatency()
	r.mu.RLock()
	defer r.mu.RUnlock()
	for _, o := range r.orders {
		if o.TableID == tableID && o.Status == model.OrderOpen {
			return cloneOrder(o), nil
		}
	}
	return nil, apierror.NewNotFound("open order for table", tableID)
}

func (r *memOrderRepo) ListByRestaurant(_ context.Context, restaurantID string) ([]model.Order, error) {
	simulateLatency()
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]model.Order, 0)
	for _, o := range r.orders {
		if o.RestaurantID == restaurantID {
			out = append(out, *cloneOrder(o))
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].CreatedAt.Before(out[j].CreatedAt) })
	return out, nil
}

func (r *memOrderRepo) Update(_ context.Context, o *model.Order, expected time.Time) error {
	simulateLatency()
	r.mu.Lock()
	defer r.mu.Unlock()
	cur, ok := r.orders[o.ID]
	if !ok {
		return apierror.NewNotFound("order", o.ID)
	}
	if !cur.UpdatedAt.Equal(expected) {
		return apierror.NewConflict("order", o.ID)
	}
	r.orders[o.ID] = cloneOrder(o)
	return nil
}

// ── Remote (document database) ───────────────────────────────────────────────

type mongoOrderRepo struct {
	coll *mongo.Collection
}

func newMongoOrderRepo(db *mongo.Database) *mongoOrderRepo {
	return &mongoOrderRepo{coll: db.Collection("orders")}
}

func (r *mongoOrderRepo) Create(ctx context.Context, o *model.Order) error {
	_, err := r.coll.InsertOne(ctx, o)
	return err
}

func (r *mongoOrderRepo) GetByID(ctx context.Context, id string) (*model.Order, error) {
	var o model.Order
	err := r.coll.FindOne(ctx, bson.M{"_id": id}).Decode(&o)
	if err == mongo.ErrNoDocuments {
		return nil, apierror.NewNotFound("order", id)
	}
	if err != nil {
		return nil, err
	}
	return &o, nil
}

func (r *mongoOrderRepo) GetOpenByTable(ctx context.Context, tableID string) (*model.Order, error) {
	var o model.Order
	err := r.coll.FindOne(ctx, bson.M{"tableId": tableID, "status": model.OrderOpen}).Decode(&o)
	if err == mongo.ErrNoDocuments {
		return nil, apierror.NewNotFound("open order for table", tableID)
	}
	if err != nil {
		return nil, err
	}
	return &o, nil
}

func (r *mongoOrderRepo) ListByRestaurant(ctx context.Context, restaurantID string) ([]model.Order, error) {
	cur, err := r.coll.Find(ctx, bson.M{"restaurantId": restaurantID})
	if err != nil {
		return nil, err
	}
	out := make([]model.Order, 0)
	if err := cur.All(ctx, &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (r *mongoOrderRepo) Update(ctx context.Context, o *model.Order, expected time.Time) error {
	filter := bson.M{"_id": o.ID, "updatedAt": expected}
	result, err := r.coll.ReplaceOne(ctx, filter, o)
	if err != nil {
		return err
	}
	if result.MatchedCount == 0 {
		if n, err := r.coll.CountDocuments(ctx, bson.M{"_id": o.ID}); err == nil && n > 0 {
			return apierror.NewConflict("order", o.ID)
		}
		return apierror.NewNotFound("order", o.ID)
	}
	return nil
}
