package model

import "time"

// Role is the closed set of panel roles. Anything outside it (including
// "customer") gets no dashboard capability.
type Role string

const (
	RoleOwner    Role = "owner"
	RoleManager  Role = "manager"
	RoleHost     Role = "host"
	RoleServer   Role = "server"
	RoleCustomer Role = "customer"
)

// User is an authentication identity plus profile. Role is immutable after
// creation: no flow in the panel changes it.
type User struct {
	ID           string    `bson:"_id" json:"id"`
	Email        string    `bson:"email" json:"email"`
	Name         string    `bson:"name" json:"name"`
	Role         Role      `bson:"role" json:"role"`
	Phone        string    `bson:"phone,omitempty" json:"phone,omitempty"`
	RestaurantID string    `bson:"restaurantId,omitempty" json:"restaurantId,omitempty"`
	PasswordHash string    `bson:"passwordHash" json:"-"`
	CreatedAt    time.Time `bson:"createdAt" json:"createdAt"`
	UpdatedAt    time.Time `bson:"updatedAt" json:"updatedAt"`
}
