package dto

import "time"

type CreateReservationRequest struct {
	RestaurantID    string    `json:"restaurantId"    validate:"required"`
	CustomerName    string    `json:"customerName"    validate:"required,min=2,max=100"`
	CustomerEmail   string    `json:"customerEmail"   validate:"omitempty,email"`
	CustomerPhone   string    `json:"customerPhone"   validate:"omitempty,max=20"`
	PartySize       int       `json:"partySize"       validate:"required,min=1,max=50"`
	DateTime        time.Time `json:"dateTime"        validate:"required"`
	TableID         string    `json:"tableId"`
	SpecialRequests string    `json:"specialRequests" validate:"omitempty,max=500"`
}

type UpdateReservationRequest struct {
	CustomerName    *string    `json:"customerName"    validate:"omitempty,min=2,max=100"`
	CustomerEmail   *string    `json:"customerEmail"   validate:"omitempty,email"`
	CustomerPhone   *string    `json:"customerPhone"   validate:"omitempty,max=20"`
	PartySize       *int       `json:"partySize"       validate:"omitempty,min=1,max=50"`
	DateTime        *time.Time `json:"dateTime"`
	TableID         *string    `json:"tableId"`
	SpecialRequests *string    `json:"specialRequests" validate:"omitempty,max=500"`
}

type CancelReservationRequest struct {
	Reason string `json:"reason" validate:"required,min=2,max=300"`
}

type AssignTableRequest struct {
	TableID string `json:"tableId" validate:"required"`
}
