package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"restopanel/internal/apierror"
	"restopanel/internal/dto"
	"restopanel/internal/repository"
)

func TestDeactivateHidesStaffFromDefaultListing(t *testing.T) {
	svc := NewStaffService(newTestRepos(t))
	ctx := context.Background()

	require.NoError(t, svc.Deactivate(ctx, "fx-staff-3"))

	active, err := svc.ListByRestaurant(ctx, repository.FixtureRestaurantID, false)
	require.NoError(t, err)
	for _, m := range active {
		assert.NotEqual(t, "fx-staff-3", m.ID)
	}

	// the record survives and can come back
	all, err := svc.ListByRestaurant(ctx, repository.FixtureRestaurantID, true)
	require.NoError(t, err)
	assert.Len(t, all, len(active)+1)

	require.NoError(t, svc.Reactivate(ctx, "fx-staff-3"))
	active, err = svc.ListByRestaurant(ctx, repository.FixtureRestaurantID, false)
	require.NoError(t, err)
	assert.Len(t, active, len(all))
}

func TestStaleStaffWriteIsAConflict(t *testing.T) {
	repos := newTestRepos(t)
	svc := NewStaffService(repos)
	ctx := context.Background()

	member, err := repos.Mem().Staff.GetByID(ctx, "fx-staff-2")
	require.NoError(t, err)
	stale := *member

	phone := "+1 555 0100"
	_, err = svc.Update(ctx, member.ID, dto.UpdateStaffRequest{Phone: &phone})
	require.NoError(t, err)

	// a write based on the pre-update read must not clobber the new phone
	err = repos.Mem().Staff.Update(ctx, &stale, stale.UpdatedAt)
	var conflict *apierror.ConflictError
	assert.ErrorAs(t, err, &conflict)
}
