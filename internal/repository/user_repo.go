package repository

import (
	"context"
	"strings"
	"sync"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"

	"restopanel/internal/apierror"
	"restopanel/internal/model"
)

// ── Mock (in-memory) ─────────────────────────────────────────────────────────

type memUserRepo struct {
	mu    sync.RWMutex
	users map[string]*model.User // by id
}

func newMemUserRepo() *memUserRepo {
	return &memUserRepo{users: make(map[string]*model.User)}
}

func (r *memUserRepo) Create(_ context.Context, u *model.User) error {
	simulateLatency()
	r.mu.Lock()
	defer r.mu.Unlock()
	cp := *u
	r.users[u.ID] = &cp
	return nil
}

func (r *memUserRepo) GetByID(_ context.Context, id string) (*model.User, error) {
	simulateLatency()
	r.mu.RLock()
	defer r.mu.RUnlock()
	u, ok := r.users[id]
	if !ok {
		return nil, apierror.NewNotFound("user", id)
	}
	cp := *u
	return &cp, nil
}

func (r *memUserRepo) GetByEmail(_ context.Context, email string) (*model.User, error) {
	simulateLatency()
	r.mu.RLock()
	defer r.mu.RUnlock()
	for _, u := range r.users {
		if strings.EqualFold(u.Email, email) {
			cp := *u
			return &cp, nil
		}
	}
	return nil, apierror.NewNotFound("user", email)
}

func (r *memUserRepo) Update(_ context.Context, u *model.User, expected time.Time) error {
	simulateLatency()
	r.mu.Lock()
	defer r.mu.Unlock()
	cur, ok := r.users[u.ID]
	if !ok {
		return apierror.NewNotFound("user", u.ID)
	}
	if !cur.UpdatedAt.Equal(expected) {
		return apierror.NewConflict("user", u.ID)
	}
	cp := *u
	r.users[u.ID] = &cp
	return nil
}

// ── Remote (document database) ───────────────────────────────────────────────

type mongoUserRepo struct {
	coll *mongo.Collection
}

func newMongoUserRepo(db *mongo.Database) *mongoUserRepo {
	return &mongoUserRepo{coll: db.Collection("users")}
}

func (r *mongoUserRepo) Create(ctx context.Context, u *model.User) error {
	_, err := r.coll.InsertOne(ctx, u)
	return err
}

func (r *mongoUserRepo) GetByID(ctx context.Context, id string) (*model.User, error) {
	var u model.User
	err := r.coll.FindOne(ctx, bson.M{"_id": id}).Decode(&u)
	if err == mongo.ErrNoDocuments {
		return nil, apierror.NewNotFound("user", id)
	}
	if err != nil {
		return nil, err
	}
	return &u, nil
}

func (r *mongoUserRepo) GetByEmail(ctx context.Context, email string) (*model.User, error) {
	var u model.User
	err := r.coll.FindOne(ctx, bson.M{"email": strings.ToLower(email)}).Decode(&u)
	if err == mongo.ErrNoDocuments {
		return nil, apierror.NewNotFound("user", email)
	}
	if err != nil {
		return nil, err
	}
	return &u, nil
}

func (r *mongoUserRepo) Update(ctx context.Context, u *model.User, expected time.Time) error {
	filter := bson.M{"_id": u.ID, "updatedAt": expected}
	res, err := r.coll.ReplaceOne(ctx, filter, u)
	if err != nil {
		return err
	}
	if res.MatchedCount == 0 {
		if n, err := r.coll.CountDocuments(ctx, bson.M{"_id": u.ID}); err == nil && n > 0 {
			return apierror.NewConflict("user", u.ID)
		}
		return apierror.NewNotFound("user", u.ID)
	}
	return nil
}
