package service

import (
	"context"
	"strings"
	"time"

	"github.com/google/uuid"

	"restopanel/internal/dto"
	"restopanel/internal/model"
	"restopanel/internal/repository"
)

type StaffService interface {
	Add(ctx context.Context, req dto.AddStaffRequest) (*model.StaffMember, error)
	ListByRestaurant(ctx context.Context, restaurantID string, includeInactive bool) ([]model.StaffMember, error)
	Update(ctx context.Context, id string, req dto.UpdateStaffRequest) (*model.StaffMember, error)
	// Deactivate is a soft removal; staff records are never hard-deleted.
	Deactivate(ctx context.Context, id string) error
	Reactivate(ctx context.Context, id string) error
}

type staffService struct {
	repos *repository.Store
}

func NewStaffService(repos *repository.Store) StaffService {
	return &staffService{repos: repos}
}

func (s *staffService) Add(ctx context.Context, req dto.AddStaffRequest) (*model.StaffMember, error) {
	repos, err := s.repos.Active()
	if err != nil {
		return nil, err
	}

	now := time.Now().UTC()
	member := &model.StaffMember{
		ID:           uuid.NewString(),
		RestaurantID: req.RestaurantID,
		Name:         req.Name,
		Email:        strings.ToLower(req.Email),
		Phone:        req.Phone,
		Role:         model.Role(req.Role),
		IsActive:     true,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	if err := repos.Staff.Create(ctx, member); err != nil {
		return nil, err
	}
	return member, nil
}

func (s *staffService) ListByRestaurant(ctx context.Context, restaurantID string, includeInactive bool) ([]model.StaffMember, error) {
	repos, err := s.repos.Active()
	if err != nil {
		return nil, err
	}
	members, err := repos.Staff.ListByRestaurant(ctx, restaurantID)
	if err != nil {
		return nil, err
	}
	if includeInactive {
		return members, nil
	}
	active := members[:0]
	for _, m := range members {
		if m.IsActive {
			active = append(active, m)
		}
	}
	return active, nil
}

func (s *staffService) Update(ctx context.Context, id string, req dto.UpdateStaffRequest) (*model.StaffMember, error) {
	repos, err := s.repos.Active()
	if err != nil {
		return nil, err
	}
	member, err := repos.Staff.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	expected := member.UpdatedAt
	if req.Name != nil {
		member.Name = *req.Name
	}
	if req.Email != nil {
		member.Email = strings.ToLower(*req.Email)
	}
	if req.Phone != nil {
		member.Phone = *req.Phone
	}

	member.UpdatedAt = time.Now().UTC()
	if err := repos.Staff.Update(ctx, member, expected); err != nil {
		return nil, err
	}
	return member, nil
}

func (s *staffService) Deactivate(ctx context.Context, id string) error {
	return s.setActive(ctx, id, false)
}

func (s *staffService) Reactivate(ctx context.Context, id string) error {
	return s.setActive(ctx, id, true)
}

func (s *staffService) setActive(ctx context.Context, id string, active bool) error {
	repos, err := s.repos.Active()
	if err != nil {
		return err
	}
	member, err := repos.Staff.GetByID(ctx, id)
	if err != nil {
		return err
	}
	expected := member.UpdatedAt
	member.IsActive = active
	member.UpdatedAt = time.Now().UTC()
	return repos.Staff.Update(ctx, member, expected)
}
