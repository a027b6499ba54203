package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"restopanel/internal/apierror"
	"restopanel/internal/dto"
)

func newOnboardingFixture(t *testing.T) OnboardingService {
	t.Helper()
	repos := newTestRepos(t)
	cfg := newTestConfig()
	return NewOnboardingService(newTestRedis(t), NewAuthService(repos, cfg), NewRestaurantService(repos))
}

func accountStep() dto.OnboardingAccountStep {
	return dto.OnboardingAccountStep{
		Email:    "founder@osteria.example",
		Password: "longenough",
		Name:     "Dario Bellini",
	}
}

func restaurantStep() dto.OnboardingRestaurantStep {
	return dto.OnboardingRestaurantStep{
		Name:       "Osteria del Porto",
		Cuisine:    "Italian",
		Address:    "1 Quay Street",
		City:       "Portsview",
		PriceRange: "$$",
	}
}

func TestOnboardingEnforcesStepOrder(t *testing.T) {
	svc := newOnboardingFixture(t)
	ctx := context.Background()

	state, err := svc.Start(ctx)
	require.NoError(t, err)
	assert.Equal(t, 0, state.StepsComplete)
	assert.Equal(t, 1, state.NextStep)

	// details before account and restaurant is rejected
	_, err = svc.SubmitDetails(ctx, state.DraftID, dto.OnboardingDetailsStep{Hours: map[string]string{"Monday": "Closed"}})
	var valErr *apierror.ValidationError
	require.ErrorAs(t, err, &valErr)

	state, err = svc.SubmitAccount(ctx, state.DraftID, accountStep())
	require.NoError(t, err)
	assert.Equal(t, 1, state.StepsComplete)
	assert.Equal(t, 2, state.NextStep)
}

func TestOnboardingCompleteRequiresAllSteps(t *testing.T) {
	svc := newOnboardingFixture(t)
	ctx := context.Background()

	state, err := svc.Start(ctx)
	require.NoError(t, err)
	_, err = svc.SubmitAccount(ctx, state.DraftID, accountStep())
	require.NoError(t, err)

	_, err = svc.Complete(ctx, state.DraftID)
	var valErr *apierror.ValidationError
	assert.ErrorAs(t, err, &valErr)
}

func TestOnboardingCompleteCreatesOwnerAndRestaurant(t *testing.T) {
	svc := newOnboardingFixture(t)
	ctx := context.Background()

	state, err := svc.Start(ctx)
	require.NoError(t, err)

	_, err = svc.SubmitAccount(ctx, state.DraftID, accountStep())
	require.NoError(t, err)
	_, err = svc.SubmitRestaurant(ctx, state.DraftID, restaurantStep())
	require.NoError(t, err)
	_, err = svc.SubmitDetails(ctx, state.DraftID, dto.OnboardingDetailsStep{
		Hours:     map[string]string{"Friday": "12:00 – 23:00"},
		Amenities: []string{"patio"},
	})
	require.NoError(t, err)
	state, err = svc.SubmitImages(ctx, state.DraftID, dto.OnboardingImagesStep{})
	require.NoError(t, err)
	assert.Equal(t, 0, state.NextStep, "all steps done, ready to complete")

	done, err := svc.Complete(ctx, state.DraftID)
	require.NoError(t, err)

	assert.Equal(t, "owner", done.Session.User.Role)
	assert.NotEmpty(t, done.Session.AccessToken)
	assert.NotEmpty(t, done.RestaurantID)
	assert.Equal(t, done.RestaurantID, done.Session.User.RestaurantID)

	// the draft is gone once consumed
	_, err = svc.Get(ctx, state.DraftID)
	var nf *apierror.NotFoundError
	assert.ErrorAs(t, err, &nf)
}
