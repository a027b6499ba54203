package service

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"

	"restopanel/internal/apierror"
	"restopanel/internal/dto"
	"restopanel/internal/model"
	"restopanel/internal/repository"
)

type RestaurantService interface {
	Create(ctx context.Context, req dto.CreateRestaurantRequest, imageURLs []string, ownerID string) (*model.Restaurant, error)
	GetByID(ctx context.Context, id string) (*model.Restaurant, error)
	// ListByOwner returns an empty slice when the owner has no restaurants.
	ListByOwner(ctx context.Context, ownerID string) ([]model.Restaurant, error)
	Update(ctx context.Context, id string, req dto.UpdateRestaurantRequest) (*model.Restaurant, error)
	PutMenuGroup(ctx context.Context, restaurantID string, group dto.MenuGroupRequest) (*model.Restaurant, error)
	RemoveMenuGroup(ctx context.Context, restaurantID, title string) (*model.Restaurant, error)
}

type restaurantService struct {
	repos *repository.Store
}

func NewRestaurantService(repos *repository.Store) RestaurantService {
	return &restaurantService{repos: repos}
}

func (s *restaurantService) Create(ctx context.Context, req dto.CreateRestaurantRequest, imageURLs []string, ownerID string) (*model.Restaurant, error) {
	repos, err := s.repos.Active()
	if err != nil {
		return nil, err
	}

	now := time.Now().UTC()
	rest := &model.Restaurant{
		ID:          uuid.NewString(),
		OwnerID:     ownerID,
		Name:        req.Name,
		Description: req.Description,
		Cuisine:     req.Cuisine,
		Address:     req.Address,
		City:        req.City,
		Phone:       req.Phone,
		Email:       req.Email,
		PriceRange:  req.PriceRange,
		IsOpen:      true,
		IsNew:       true,
		Rating:      0,
		ReviewCount: 0,
		Amenities:   req.Amenities,
		Hours:       req.Hours,
		Images:      append(append([]string{}, req.Images...), imageURLs...),
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	if err := repos.Restaurants.Create(ctx, rest); err != nil {
		return nil, err
	}

	// Attach ownership to the owner's profile; a missing profile is not
	// fatal to restaurant creation.
	if owner, err := repos.Users.GetByID(ctx, ownerID); err == nil {
		expected := owner.UpdatedAt
		owner.RestaurantID = rest.ID
		owner.UpdatedAt = now
		if err := repos.Users.Update(ctx, owner, expected); err != nil {
			log.Warn().Err(err).Str("owner_id", ownerID).Msg("could not attach restaurant to owner")
		}
	}

	return rest, nil
}

func (s *restaurantService) GetByID(ctx context.Context, id string) (*model.Restaurant, error) {
	repos, err := s.repos.Active()
	if err != nil {
		return nil, err
	}
	return repos.Restaurants.GetByID(ctx, id)
}

func (s *restaurantService) ListByOwner(ctx context.Context, ownerID string) ([]model.Restaurant, error) {
	repos, err := s.repos.Active()
	if err != nil {
		return nil, err
	}
	return repos.Restaurants.ListByOwner(ctx, ownerID)
}

func (s *restaurantService) Update(ctx context.Context, id string, req dto.UpdateRestaurantRequest) (*model.Restaurant, error) {
	repos, err := s.repos.Active()
	if err != nil {
		return nil, err
	}
	rest, err := repos.Restaurants.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	expected := rest.UpdatedAt
	patch := req.Patch()
	patch.Apply(rest)
	rest.UpdatedAt = time.Now().UTC()
	if err := repos.Restaurants.Update(ctx, rest, expected); err != nil {
		return nil, err
	}
	return rest, nil
}

// PutMenuGroup inserts or replaces the highlight group with the same title.
func (s *restaurantService) PutMenuGroup(ctx context.Context, restaurantID string, group dto.MenuGroupRequest) (*model.Restaurant, error) {
	repos, err := s.repos.Active()
	if err != nil {
		return nil, err
	}
	rest, err := repos.Restaurants.GetByID(ctx, restaurantID)
	if err != nil {
		return nil, err
	}

	expected := rest.UpdatedAt
	next := model.MenuHighlightGroup{Title: group.Title, Items: group.Items}
	replaced := false
	for i, g := range rest.MenuHighlight {
		if g.Title == group.Title {
			rest.MenuHighlight[i] = next
			replaced = true
			break
		}
	}
	if !replaced {
		rest.MenuHighlight = append(rest.MenuHighlight, next)
	}

	rest.UpdatedAt = time.Now().UTC()
	if err := repos.Restaurants.Update(ctx, rest, expected); err != nil {
		return nil, err
	}
	return rest, nil
}

func (s *restaurantService) RemoveMenuGroup(ctx context.Context, restaurantID, title string) (*model.Restaurant, error) {
	repos, err := s.repos.Active()
	if err != nil {
		return nil, err
	}
	rest, err := repos.Restaurants.GetByID(ctx, restaurantID)
	if err != nil {
		return nil, err
	}

	expected := rest.UpdatedAt
	kept := rest.MenuHighlight[:0]
	found := false
	for _, g := range rest.MenuHighlight {
		if g.Title == title {
			found = true
			continue
		}
		kept = append(kept, g)
	}
	if !found {
		return nil, apierror.NewNotFound("menu group", title)
	}
	rest.MenuHighlight = kept

	rest.UpdatedAt = time.Now().UTC()
	if err := repos.Restaurants.Update(ctx, rest, expected); err != nil {
		return nil, err
	}
	return rest, nil
}
