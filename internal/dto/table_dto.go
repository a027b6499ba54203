package dto

import "time"

type CreateTableRequest struct {
	RestaurantID string `json:"restaurantId" validate:"required"`
	TableNumber  string `json:"tableNumber"  validate:"required,min=1,max=20"`
	Capacity     int    `json:"capacity"     validate:"required,min=1,max=50"`
	Location     string `json:"location"     validate:"omitempty,max=40"`
}

type UpdateTableRequest struct {
	TableNumber *string `json:"tableNumber" validate:"omitempty,min=1,max=20"`
	Capacity    *int    `json:"capacity"    validate:"omitempty,min=1,max=50"`
	Location    *string `json:"location"    validate:"omitempty,max=40"`
}

type SetTableStatusRequest struct {
	Status          string     `json:"status"          validate:"required,oneof=available occupied reserved cleaning"`
	ReservationID   string     `json:"reservationId"`
	EstimatedFreeAt *time.Time `json:"estimatedFreeAt"`
}
