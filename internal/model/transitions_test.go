package model

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestReservationTransitions(t *testing.T) {
	assert.True(t, CanTransitionReservation(ReservationPending, ReservationConfirmed))
	assert.True(t, CanTransitionReservation(ReservationPending, ReservationCancelled))
	assert.True(t, CanTransitionReservation(ReservationConfirmed, ReservationSeated))
	assert.True(t, CanTransitionReservation(ReservationSeated, ReservationCompleted))

	// terminal states accept nothing
	for _, terminal := range []ReservationStatus{ReservationCompleted, ReservationCancelled, ReservationNoShow} {
		for _, to := range []ReservationStatus{ReservationPending, ReservationConfirmed, ReservationSeated, ReservationCompleted} {
			assert.False(t, CanTransitionReservation(terminal, to), "%s → %s must be rejected", terminal, to)
		}
	}

	// skipping confirmation straight to completed is not allowed
	assert.False(t, CanTransitionReservation(ReservationPending, ReservationCompleted))
	assert.False(t, CanTransitionReservation(ReservationPending, ReservationSeated))
	assert.False(t, CanTransitionReservation(ReservationSeated, ReservationNoShow))
}

func TestTableTransitions(t *testing.T) {
	assert.True(t, CanTransitionTable(TableAvailable, TableOccupied))
	assert.True(t, CanTransitionTable(TableOccupied, TableCleaning))
	assert.True(t, CanTransitionTable(TableCleaning, TableAvailable))
	assert.False(t, CanTransitionTable(TableCleaning, TableOccupied))
	assert.False(t, CanTransitionTable(TableAvailable, TableAvailable))
}

func TestOrderTransitions(t *testing.T) {
	assert.True(t, CanTransitionOrder(OrderOpen, OrderPaid))
	assert.True(t, CanTransitionOrder(OrderOpen, OrderCancelled))
	assert.False(t, CanTransitionOrder(OrderPaid, OrderOpen))
	assert.False(t, CanTransitionOrder(OrderCancelled, OrderPaid))
}
