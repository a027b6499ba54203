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

// ── Mock (in-memory) ─────────────────────────────────────────────────────────

type memStaffRepo struct {
	mu      sync.RWMutex
	members map[string]*model.StaffMember
}

func newMemStaffRepo() *memStaffRepo {
	return &memStaffRepo{members: make(map[string]*model.StaffMember)}
}

func (r *memStaffRepo) Create(_ context.Context, s *model.StaffMember) error {
	simulateLatency()
	r.mu.Lock()
	defer r.mu.Unlock()
	cp := *s
	r.members[s.ID] = &cp
	return nil
}

func (r *memStaffRepo) GetByID(_ context.Context, id string) (*model.StaffMember, error) {
	simulateLatency()
	r.mu.RLock()
	defer r.mu.RUnlock()
	s, ok := r.members[id]
	if !ok {
		return nil, apierror.NewNotFound("staff member", id)
	}
	cp := *s
	return &cp, nil
}

func (r *memStaffRepo) ListByRestaurant(_ context.Context, restaurantID string) ([]model.StaffMember, error) {
	simulateLatency()
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]model.StaffMember, 0)
	for _, s := range r.members {
		if s.RestaurantID == restaurantID {
			out = append(out, *s)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	return out, nil
}

func (r *memStaffRepo) Update(_ context.Context, s *model.StaffMember, expected time.Time) error {
	simulateLatency()
	r.mu.Lock()
	defer r.mu.Unlock()
	cur, ok := r.members[s.ID]
	if !ok {
		return apierror.NewNotFound("staff member", s.ID)
	}
	if !cur.UpdatedAt.Equal(expected) {
		return apierror.NewConflict("staff member", s.ID)
	}
	cp := *s
	r.members[s.ID] = &cp
	return nil
}

// ── Remote (document database) ───────────────────────────────────────────────

type mongoStaffRepo struct {
	coll *mongo.Collection
}

func newMongoStaffRepo(db *mongo.Database) *mongoStaffRepo {
	return &mongoStaffRepo{coll: db.Collection("staff")}
}

func (r *mongoStaffRepo) Create(ctx context.Context, s *model.StaffMember) error {
	_, err := r.coll.InsertOne(ctx, s)
	return err
}

func (r *mongoStaffRepo) GetByID(ctx context.Context, id string) (*model.StaffMember, error) {
	var s model.StaffMember
	err := r.coll.FindOne(ctx, bson.M{"_id": id}).Decode(&s)
	if err == mongo.ErrNoDocuments {
		return nil, apierror.NewNotFound("staff member", id)
	}
	if err != nil {
		return nil, err
	}
	return &s, nil
}

func (r *mongoStaffRepo) ListByRestaurant(ctx context.Context, restaurantID string) ([]model.StaffMember, error) {
	cur, err := r.coll.Find(ctx, bson.M{"restaurantId": restaurantID})
	if err != nil {
		return nil, err
	}
	out := make([]model.StaffMember, 0)
	if err := cur.All(ctx, &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (r *mongoStaffRepo) Update(ctx context.Context, s *model.StaffMember, expected time.Time) error {
	filter := bson.M{"_id": s.ID, "updatedAt": expected}
	result, err := r.coll.ReplaceOne(ctx, filter, s)
	if err != nil {
		return err
	}
	if result.MatchedCount == 0 {
		if n, err := r.coll.CountDocuments(ctx, bson.M{"_id": s.ID}); err == nil && n > 0 {
			return apierror.NewConflict("staff member", s.ID)
		}
		return apierror.NewNotFound("staff member", s.ID)
	}
	return nil
}
