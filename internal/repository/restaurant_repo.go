package repository

import (
	"context"
	"sync"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"

	"restopanel/internal/apierror"
	"restopanel/internal/model"
)

func cloneRestaurant(r *model.Restaurant) *model.Restaurant {
	cp := *r
	cp.Amenities = copyStrings(r.Amenities)
	cp.Hours = copyHours(r.Hours)
	cp.Images = copyStrings(r.Images)
	cp.SpecialOffers = copyStrings(r.SpecialOffers)
	if r.MenuHighlight != nil {
		cp.MenuHighlight = make([]model.MenuHighlightGroup, len(r.MenuHighlight))
		for i, g := range r.MenuHighlight {
			items := make([]model.MenuHighlightItem, len(g.Items))
			copy(items, g.Items)
			cp.MenuHighlight[i] = model.MenuHighlightGroup{Title: g.Title, Items: items}
		}
	}
	return &cp
}

// ── Mock (in-memory) ─────────────────────────────────────────────────────────

type memRestaurantRepo struct {
	mu          sync.RWMutex
	restaurants map[string]*model.Restaurant
}

func newMemRestaurantRepo() *memRestaurantRepo {
	return &memRestaurantRepo{restaurants: make(map[string]*model.Restaurant)}
}

func (r *memRestaurantRepo) Create(_ context.Context, rest *model.Restaurant) error {
	simulateLatency()
	r.mu.Lock()
	defer r.mu.Unlock()
	r.restaurants[rest.ID] = cloneRestaurant(rest)
	return nil
}

func (r *memRestaurantRepo) GetByID(_ context.Context, id string) (*model.Restaurant, error) {
	simulateLatency()
	r.mu.RLock()
	defer r.mu.RUnlock()
	rest, ok := r.restaurants[id]
	if !ok {
		return nil, apierror.NewNotFound("restaurant", id)
	}
	return cloneRestaurant(rest), nil
}

func (r *memRestaurantRepo) ListByOwner(_ context.Context, ownerID string) ([]model.Restaurant, error) {
	simulateLatency()
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]model.Restaurant, 0)
	for _, rest := range r.restaurants {
		if rest.OwnerID == ownerID {
			out = append(out, *cloneRestaurant(rest))
		}
	}
	return out, nil
}

func (r *memRestaurantRepo) Update(_ context.Context, rest *model.Restaurant, expected time.Time) error {
	simulateLatency()
	r.mu.Lock()
	defer r.mu.Unlock()
	cur, ok := r.restaurants[rest.ID]
	if !ok {
		return apierror.NewNotFound("restaurant", rest.ID)
	}
	if !cur.UpdatedAt.Equal(expected) {
		return apierror.NewConflict("restaurant", rest.ID)
	}
	r.restaurants[rest.ID] = cloneRestaurant(rest)
	return nil
}

// ── Remote (document database) ───────────────────────────────────────────────

type mongoRestaurantRepo struct {
	coll *mongo.Collection
}

func newMongoRestaurantRepo(db *mongo.Database) *mongoRestaurantRepo {
	return &mongoRestaurantRepo{coll: db.Collection("restaurants")}
}

func (r *mongoRestaurantRepo) Create(ctx context.Context, rest *model.Restaurant) error {
	_, err := r.coll.InsertOne(ctx, rest)
	return err
}

func (r *mongoRestaurantRepo) GetByID(ctx context.Context, id string) (*model.Restaurant, error) {
	var rest model.Restaurant
	err := r.coll.FindOne(ctx, bson.M{"_id": id}).Decode(&rest)
	if err == mongo.ErrNoDocuments {
		return nil, apierror.NewNotFound("restaurant", id)
	}
	if err != nil {
		return nil, err
	}
	return &rest, nil
}

// ListByOwner relies on the driver's typed results: an empty or even
// not-yet-provisioned collection yields an empty cursor, never an error the
// operator has to see.
func (r *mongoRestaurantRepo) ListByOwner(ctx context.Context, ownerID string) ([]model.Restaurant, error) {
	cur, err := r.coll.Find(ctx, bson.M{"ownerId": ownerID})
	if err != nil {
		return nil, err
	}
	out := make([]model.Restaurant, 0)
	if err := cur.All(ctx, &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (r *mongoRestaurantRepo) Update(ctx context.Context, rest *model.Restaurant, expected time.Time) error {
	filter := bson.M{"_id": rest.ID, "updatedAt": expected}
	res, err := r.coll.ReplaceOne(ctx, filter, rest)
	if err != nil {
		return err
	}
	if res.MatchedCount == 0 {
		if n, err := r.coll.CountDocuments(ctx, bson.M{"_id": rest.ID}); err == nil && n > 0 {
			return apierror.NewConflict("restaurant", rest.ID)
		}
		return apierror.NewNotFound("restaurant", rest.ID)
	}
	return nil
}
