package model

// Status transition tables shared by every call site. Direct "set status to
// X" updates must pass through these; anything not listed is rejected.

var reservationTransitions = map[ReservationStatus][]ReservationStatus{
	ReservationPending:   {ReservationConfirmed, ReservationCancelled, ReservationNoShow},
	ReservationConfirmed: {ReservationSeated, ReservationCancelled, ReservationNoShow},
	ReservationSeated:    {ReservationCompleted, ReservationCancelled},
	// completed, cancelled and noShow are terminal
	ReservationCompleted: {},
	ReservationCancelled: {},
	ReservationNoShow:    {},
}

// CanTransitionReservation reports whether from → to is an allowed
// reservation status change.
func CanTransitionReservation(from, to ReservationStatus) bool {
	for _, next := range reservationTransitions[from] {
		if next == to {
			return true
		}
	}
	return false
}

var tableTransitions = map[TableStatus][]TableStatus{
	TableAvailable: {TableReserved, TableOccupied, TableCleaning},
	TableReserved:  {TableOccupied, TableAvailable, TableCleaning},
	TableOccupied:  {TableCleaning, TableAvailable},
	TableCleaning:  {TableAvailable},
}

// CanTransitionTable reports whether from → to is an allowed table status
// change.
func CanTransitionTable(from, to TableStatus) bool {
	for _, next := range tableTransitions[from] {
		if next == to {
			return true
		}
	}
	return false
}

var orderTransitions = map[OrderStatus][]OrderStatus{
	OrderOpen:      {OrderPaid, OrderCancelled},
	OrderPaid:      {},
	OrderCancelled: {},
}

// CanTransitionOrder reports whether from → to is an allowed order status
// change.
func CanTransitionOrder(from, to OrderStatus) bool {
	for _, next := range orderTransitions[from] {
		if next == to {
			return true
		}
	}
	return false
}
