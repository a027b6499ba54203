package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"restopanel/internal/apierror"
	"restopanel/internal/dto"
	"restopanel/internal/model"
	"restopanel/internal/repository"
)

func TestCreateTableStartsAvailable(t *testing.T) {
	svc := NewTableService(newTestRepos(t))

	table, err := svc.Create(context.Background(), dto.CreateTableRequest{
		RestaurantID: repository.FixtureRestaurantID,
		TableNumber:  "P2",
		Capacity:     4,
		Location:     "patio",
	})
	require.NoError(t, err)
	assert.Equal(t, model.TableAvailable, table.Status)
	assert.Empty(t, table.CurrentReservation)
}

func TestSetStatusLinksReservation(t *testing.T) {
	svc := NewTableService(newTestRepos(t))

	// fx-table-1 is available
	table, err := svc.SetStatus(context.Background(), "fx-table-1", dto.SetTableStatusRequest{
		Status:        "reserved",
		ReservationID: "fx-res-1",
	})
	require.NoError(t, err)
	assert.Equal(t, model.TableReserved, table.Status)
	assert.Equal(t, "fx-res-1", table.CurrentReservation)

	// back to available clears the link
	table, err = svc.SetStatus(context.Background(), "fx-table-1", dto.SetTableStatusRequest{Status: "available"})
	require.NoError(t, err)
	assert.Equal(t, model.TableAvailable, table.Status)
	assert.Empty(t, table.CurrentReservation)
}

func TestSetStatusRejectsIllegalTransition(t *testing.T) {
	svc := NewTableService(newTestRepos(t))

	// fx-table-5 is cleaning; cleaning can only go back to available
	_, err := svc.SetStatus(context.Background(), "fx-table-5", dto.SetTableStatusRequest{Status: "occupied"})
	var trErr *apierror.TransitionError
	require.ErrorAs(t, err, &trErr)
	assert.Equal(t, "cleaning", trErr.From)
	assert.Equal(t, "occupied", trErr.To)
}

func TestDeleteTable(t *testing.T) {
	svc := NewTableService(newTestRepos(t))

	require.NoError(t, svc.Delete(context.Background(), "fx-table-6"))

	_, err := svc.GetByID(context.Background(), "fx-table-6")
	var nf *apierror.NotFoundError
	assert.ErrorAs(t, err, &nf)
}
