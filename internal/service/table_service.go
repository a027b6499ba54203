package service

import (
	"context"
	"time"

	"github.com/google/uuid"

	"restopanel/internal/apierror"
	"restopanel/internal/dto"
	"restopanel/internal/model"
	"restopanel/internal/repository"
)

type TableService interface {
	Create(ctx context.Context, req dto.CreateTableRequest) (*model.Table, error)
	GetByID(ctx context.Context, id string) (*model.Table, error)
	ListByRestaurant(ctx context.Context, restaurantID string) ([]model.Table, error)
	Update(ctx context.Context, id string, req dto.UpdateTableRequest) (*model.Table, error)
	// SetStatus validates the change against the table transition table.
	SetStatus(ctx context.Context, id string, req dto.SetTableStatusRequest) (*model.Table, error)
	Delete(ctx context.Context, id string) error
}

type tableService struct {
	repos *repository.Store
}

func NewTableService(repos *repository.Store) TableService {
	return &tableService{repos: repos}
}

func (s *tableService) Create(ctx context.Context, req dto.CreateTableRequest) (*model.Table, error) {
	repos, err := s.repos.Active()
	if err != nil {
		return nil, err
	}

	now := time.Now().UTC()
	t := &model.Table{
		ID:           uuid.NewString(),
		RestaurantID: req.RestaurantID,
		TableNumber:  req.TableNumber,
		Capacity:     req.Capacity,
		Status:       model.TableAvailable,
		Location:     req.Location,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	if err := repos.Tables.Create(ctx, t); err != nil {
		return nil, err
	}
	return t, nil
}

func (s *tableService) GetByID(ctx context.Context, id string) (*model.Table, error) {
	repos, err := s.repos.Active()
	if err != nil {
		return nil, err
	}
	return repos.Tables.GetByID(ctx, id)
}

func (s *tableService) ListByRestaurant(ctx context.Context, restaurantID string) ([]model.Table, error) {
	repos, err := s.repos.Active()
	if err != nil {
		return nil, err
	}
	return repos.Tables.ListByRestaurant(ctx, restaurantID)
}

func (s *tableService) Update(ctx context.Context, id string, req dto.UpdateTableRequest) (*model.Table, error) {
	repos, err := s.repos.Active()
	if err != nil {
		return nil, err
	}
	t, err := repos.Tables.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	expected := t.UpdatedAt

	if req.TableNumber != nil {
		t.TableNumber = *req.TableNumber
	}
	if req.Capacity != nil {
		t.Capacity = *req.Capacity
	}
	if req.Location != nil {
		t.Location = *req.Location
	}

	t.UpdatedAt = time.Now().UTC()
	if err := repos.Tables.Update(ctx, t, expected); err != nil {
		return nil, err
	}
	return t, nil
}

func (s *tableService) SetStatus(ctx context.Context, id string, req dto.SetTableStatusRequest) (*model.Table, error) {
	repos, err := s.repos.Active()
	if err != nil {
		return nil, err
	}
	t, err := repos.Tables.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	to := model.TableStatus(req.Status)
	if !model.CanTransitionTable(t.Status, to) {
		return nil, apierror.NewTransition("table", string(t.Status), string(to))
	}

	expected := t.UpdatedAt
	t.Status = to
	t.EstimatedFreeAt = req.EstimatedFreeAt

	switch to {
	case model.TableReserved, model.TableOccupied:
		if req.ReservationID != "" {
			t.CurrentReservation = req.ReservationID
		}
	default:
		// leaving service clears the link
		t.CurrentReservation = ""
	}

	t.UpdatedAt = time.Now().UTC()
	if err := repos.Tables.Update(ctx, t, expected); err != nil {
		return nil, err
	}
	return t, nil
}

func (s *tableService) Delete(ctx context.Context, id string) error {
	repos, err := s.repos.Active()
	if err != nil {
		return err
	}
	return repos.Tables.Delete(ctx, id)
}
