package model

import "time"

// StaffMember is a restaurant-scoped profile distinct from the auth User
// record. Staff are soft-deactivated, never hard-deleted.
type StaffMember struct {
	ID           string    `bson:"_id" json:"id"`
	RestaurantID string    `bson:"restaurantId" json:"restaurantId"`
	Name         string    `bson:"name" json:"name"`
	Email        string    `bson:"email" json:"email"`
	Phone        string    `bson:"phone,omitempty" json:"phone,omitempty"`
	Role         Role      `bson:"role" json:"role"`
	IsActive     bool      `bson:"isActive" json:"isActive"`
	CreatedAt    time.Time `bson:"createdAt" json:"createdAt"`
	UpdatedAt    time.Time `bson:"updatedAt" json:"updatedAt"`
}
