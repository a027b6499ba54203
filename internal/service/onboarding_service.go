package service

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog/log"

	"restopanel/internal/apierror"
	"restopanel/internal/dto"
)

// draftTTL is how long an abandoned onboarding draft survives in redis.
const draftTTL = 24 * time.Hour

const (
	stepAccount = iota + 1
	stepRestaurant
	stepDetails
	stepImages
)

// onboardingDraft is the redis-persisted wizard state. Steps are filled
// strictly in order; a nil step pointer means the step was not submitted yet.
type onboardingDraft struct {
	ID         string                        `json:"id"`
	Account    *dto.OnboardingAccountStep    `json:"account,omitempty"`
	Restaurant *dto.OnboardingRestaurantStep `json:"restaurant,omitempty"`
	Details    *dto.OnboardingDetailsStep    `json:"details,omitempty"`
	Images     *dto.OnboardingImagesStep     `json:"images,omitempty"`
	CreatedAt  time.Time                     `json:"createdAt"`
}

func (d *onboardingDraft) stepsComplete() int {
	switch {
	case d.Images != nil:
		return stepImages
	case d.Details != nil:
		return stepDetails
	case d.Restaurant != nil:
		return stepRestaurant
	case d.Account != nil:
		return stepAccount
	default:
		return 0
	}
}

type OnboardingService interface {
	// Start creates an empty draft and returns its state.
	Start(ctx context.Context) (*dto.OnboardingStateResponse, error)
	Get(ctx context.Context, draftID string) (*dto.OnboardingStateResponse, error)
	SubmitAccount(ctx context.Context, draftID string, step dto.OnboardingAccountStep) (*dto.OnboardingStateResponse, error)
	SubmitRestaurant(ctx context.Context, draftID string, step dto.OnboardingRestaurantStep) (*dto.OnboardingStateResponse, error)
	SubmitDetails(ctx context.Context, draftID string, step dto.OnboardingDetailsStep) (*dto.OnboardingStateResponse, error)
	SubmitImages(ctx context.Context, draftID string, step dto.OnboardingImagesStep) (*dto.OnboardingStateResponse, error)
	// Complete turns a fully filled draft into a real owner account and
	// restaurant and discards the draft.
	Complete(ctx context.Context, draftID string) (*dto.OnboardingCompleteResponse, error)
}

type onboardingService struct {
	rdb         *redis.Client
	auth        AuthService
	restaurants RestaurantService
}

func NewOnboardingService(rdb *redis.Client, auth AuthService, restaurants RestaurantService) OnboardingService {
	return &onboardingService{rdb: rdb, auth: auth, restaurants: restaurants}
}

func draftKey(id string) string { return "onboarding:" + id }

func (s *onboardingService) Start(ctx context.Context) (*dto.OnboardingStateResponse, error) {
	d := &onboardingDraft{ID: uuid.NewString(), CreatedAt: time.Now().UTC()}
	if err := s.save(ctx, d); err != nil {
		return nil, err
	}
	return stateOf(d), nil
}

func (s *onboardingService) Get(ctx context.Context, draftID string) (*dto.OnboardingStateResponse, error) {
	d, err := s.load(ctx, draftID)
	if err != nil {
		return nil, err
	}
	return stateOf(d), nil
}

func (s *onboardingService) SubmitAccount(ctx context.Context, draftID string, step dto.OnboardingAccountStep) (*dto.OnboardingStateResponse, error) {
	return s.submit(ctx, draftID, stepAccount, func(d *onboardingDraft) {
		d.Account = &step
	})
}

func (s *onboardingService) SubmitRestaurant(ctx context.Context, draftID string, step dto.OnboardingRestaurantStep) (*dto.OnboardingStateResponse, error) {
	return s.submit(ctx, draftID, stepRestaurant, func(d *onboardingDraft) {
		d.Restaurant = &step
	})
}

func (s *onboardingService) SubmitDetails(ctx context.Context, draftID string, step dto.OnboardingDetailsStep) (*dto.OnboardingStateResponse, error) {
	return s.submit(ctx, draftID, stepDetails, func(d *onboardingDraft) {
		d.Details = &step
	})
}

func (s *onboardingService) SubmitImages(ctx context.Context, draftID string, step dto.OnboardingImagesStep) (*dto.OnboardingStateResponse, error) {
	return s.submit(ctx, draftID, stepImages, func(d *onboardingDraft) {
		d.Images = &step
	})
}

// submit enforces strict step ordering: step n requires steps 1..n-1 done.
// Resubmitting an already-completed step overwrites it.
func (s *onboardingService) submit(ctx context.Context, draftID string, step int, apply func(*onboardingDraft)) (*dto.OnboardingStateResponse, error) {
	d, err := s.load(ctx, draftID)
	if err != nil {
		return nil, err
	}
	if done := d.stepsComplete(); step > done+1 {
		return nil, apierror.NewValidation(fmt.Sprintf("step %d requires step %d first", step, done+1))
	}
	apply(d)
	if err := s.save(ctx, d); err != nil {
		return nil, err
	}
	return stateOf(d), nil
}

func (s *onboardingService) Complete(ctx context.Context, draftID string) (*dto.OnboardingCompleteResponse, error) {
	d, err := s.load(ctx, draftID)
	if err != nil {
		return nil, err
	}
	if d.stepsComplete() < stepImages {
		return nil, apierror.NewValidation("onboarding is incomplete, finish all steps first")
	}

	session, err := s.auth.SignUp(ctx, dto.SignUpRequest{
		Email:    d.Account.Email,
		Password: d.Account.Password,
		Name:     d.Account.Name,
		Role:     "owner",
		Phone:    d.Account.Phone,
	})
	if err != nil {
		return nil, err
	}

	restaurant, err := s.restaurants.Create(ctx, dto.CreateRestaurantRequest{
		Name:        d.Restaurant.Name,
		Description: d.Restaurant.Description,
		Cuisine:     d.Restaurant.Cuisine,
		Address:     d.Restaurant.Address,
		City:        d.Restaurant.City,
		PriceRange:  d.Restaurant.PriceRange,
		Amenities:   d.Details.Amenities,
		Hours:       d.Details.Hours,
	}, d.Images.Images, session.User.ID)
	if err != nil {
		return nil, err
	}

	if err := s.rdb.Del(ctx, draftKey(d.ID)).Err(); err != nil {
		log.Warn().Err(err).Str("draft_id", d.ID).Msg("onboarding: draft cleanup failed")
	}
	session.User.RestaurantID = restaurant.ID
	log.Info().Str("restaurant_id", restaurant.ID).Str("owner_id", session.User.ID).Msg("onboarding completed")

	return &dto.OnboardingCompleteResponse{Session: *session, RestaurantID: restaurant.ID}, nil
}

func (s *onboardingService) load(ctx context.Context, draftID string) (*onboardingDraft, error) {
	raw, err := s.rdb.Get(ctx, draftKey(draftID)).Bytes()
	if err == redis.Nil {
		return nil, apierror.NewNotFound("onboarding draft", draftID)
	}
	if err != nil {
		return nil, err
	}
	var d onboardingDraft
	if err := json.Unmarshal(raw, &d); err != nil {
		return nil, fmt.Errorf("corrupt onboarding draft %s: %w", draftID, err)
	}
	return &d, nil
}

func (s *onboardingService) save(ctx context.Context, d *onboardingDraft) error {
	raw, err := json.Marshal(d)
	if err != nil {
		return err
	}
	return s.rdb.Set(ctx, draftKey(d.ID), raw, draftTTL).Err()
}

func stateOf(d *onboardingDraft) *dto.OnboardingStateResponse {
	done := d.stepsComplete()
	next := done + 1
	if next > stepImages {
		next = 0 // ready to complete
	}
	return &dto.OnboardingStateResponse{DraftID: d.ID, StepsComplete: done, NextStep: next}
}
