package service

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"restopanel/internal/apierror"
	"restopanel/internal/dto"
	"restopanel/internal/model"
	"restopanel/internal/repository"
)

func newReservationRequest() dto.CreateReservationRequest {
	return dto.CreateReservationRequest{
		RestaurantID: repository.FixtureRestaurantID,
		CustomerName: "Jonas Weiss",
		PartySize:    3,
		DateTime:     time.Now().Add(48 * time.Hour).UTC(),
	}
}

func TestCreateReservationStartsPending(t *testing.T) {
	svc := NewReservationService(newTestRepos(t), nil)

	res, err := svc.Create(context.Background(), newReservationRequest())
	require.NoError(t, err)

	assert.Equal(t, model.ReservationPending, res.Status)
	assert.NotEmpty(t, res.ConfirmationNumber)
	assert.Equal(t, byte('R'), res.ConfirmationNumber[0])
}

func TestConfirmationNumbersAreUnique(t *testing.T) {
	svc := NewReservationService(newTestRepos(t), nil)

	seen := make(map[string]bool)
	for i := 0; i < 50; i++ {
		res, err := svc.Create(context.Background(), newReservationRequest())
		require.NoError(t, err)
		require.False(t, seen[res.ConfirmationNumber], "duplicate confirmation %s", res.ConfirmationNumber)
		seen[res.ConfirmationNumber] = true
	}
}

func TestReservationLifecycle(t *testing.T) {
	svc := NewReservationService(newTestRepos(t), nil)

	res, err := svc.Create(context.Background(), newReservationRequest())
	require.NoError(t, err)

	res, err = svc.Confirm(context.Background(), res.ID)
	require.NoError(t, err)
	assert.Equal(t, model.ReservationConfirmed, res.Status)

	res, err = svc.Seat(context.Background(), res.ID)
	require.NoError(t, err)
	assert.Equal(t, model.ReservationSeated, res.Status)

	res, err = svc.Complete(context.Background(), res.ID)
	require.NoError(t, err)
	assert.Equal(t, model.ReservationCompleted, res.Status)
}

func TestCompleteFromPendingIsRejected(t *testing.T) {
	svc := NewReservationService(newTestRepos(t), nil)

	res, err := svc.Create(context.Background(), newReservationRequest())
	require.NoError(t, err)

	_, err = svc.Complete(context.Background(), res.ID)
	var trErr *apierror.TransitionError
	require.ErrorAs(t, err, &trErr)
	assert.Equal(t, "pending", trErr.From)
	assert.Equal(t, "completed", trErr.To)

	// status must be untouched after the rejection
	reread, err := svc.GetByID(context.Background(), res.ID)
	require.NoError(t, err)
	assert.Equal(t, model.ReservationPending, reread.Status)
}

func TestCancelRecordsReasonAndTimestamp(t *testing.T) {
	svc := NewReservationService(newTestRepos(t), nil)

	res, err := svc.Create(context.Background(), newReservationRequest())
	require.NoError(t, err)

	cancelled, err := svc.Cancel(context.Background(), res.ID, "guest called to cancel")
	require.NoError(t, err)

	assert.Equal(t, model.ReservationCancelled, cancelled.Status)
	assert.Equal(t, "guest called to cancel", cancelled.CancelReason)
	require.NotNil(t, cancelled.CancelledAt)

	// cancelled is terminal
	_, err = svc.Confirm(context.Background(), res.ID)
	var trErr *apierror.TransitionError
	assert.ErrorAs(t, err, &trErr)
}

func TestAssignTableRejectsForeignTable(t *testing.T) {
	svc := NewReservationService(newTestRepos(t), nil)

	req := newReservationRequest()
	req.RestaurantID = "some-other-restaurant"
	res, err := svc.Create(context.Background(), req)
	require.NoError(t, err)

	_, err = svc.AssignTable(context.Background(), res.ID, "fx-table-1")
	var valErr *apierror.ValidationError
	assert.ErrorAs(t, err, &valErr)
}

func TestAssignTableLinksReservation(t *testing.T) {
	svc := NewReservationService(newTestRepos(t), nil)

	res, err := svc.Create(context.Background(), newReservationRequest())
	require.NoError(t, err)

	res, err = svc.AssignTable(context.Background(), res.ID, "fx-table-3")
	require.NoError(t, err)
	assert.Equal(t, "fx-table-3", res.TableID)
}

func TestStaleWriteIsAConflict(t *testing.T) {
	repos := newTestRepos(t)
	svc := NewReservationService(repos, nil)

	res, err := svc.Create(context.Background(), newReservationRequest())
	require.NoError(t, err)
	stale := *res

	_, err = svc.Confirm(context.Background(), res.ID)
	require.NoError(t, err)

	// a write based on the pre-confirm read must not clobber the update
	err = repos.Mem().Reservations.Update(context.Background(), &stale, stale.UpdatedAt)
	var conflict *apierror.ConflictError
	assert.ErrorAs(t, err, &conflict)
}
