package model

import "time"

type TableStatus string

const (
	TableAvailable TableStatus = "available"
	TableOccupied  TableStatus = "occupied"
	TableReserved  TableStatus = "reserved"
	TableCleaning  TableStatus = "cleaning"
)

// Table is a seating unit belonging to one restaurant. TableNumber is a
// display label and not guaranteed numeric ("T9", "Patio 2").
type Table struct {
	ID                 string      `bson:"_id" json:"id"`
	RestaurantID       string      `bson:"restaurantId" json:"restaurantId"`
	TableNumber        string      `bson:"tableNumber" json:"tableNumber"`
	Capacity           int         `bson:"capacity" json:"capacity"`
	Status             TableStatus `bson:"status" json:"status"`
	Location           string      `bson:"location,omitempty" json:"location,omitempty"` // "patio", "window", ...
	CurrentReservation string      `bson:"currentReservation,omitempty" json:"currentReservation,omitempty"`
	EstimatedFreeAt    *time.Time  `bson:"estimatedFreeAt,omitempty" json:"estimatedFreeAt,omitempty"`
	CreatedAt          time.Time   `bson:"createdAt" json:"createdAt"`
	UpdatedAt          time.Time   `bson:"updatedAt" json:"updatedAt"`
}
