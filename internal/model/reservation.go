package model

import "time"

type ReservationStatus string

const (
	ReservationPending   ReservationStatus = "pending"
	ReservationConfirmed ReservationStatus = "confirmed"
	ReservationSeated    ReservationStatus = "seated"
	ReservationCompleted ReservationStatus = "completed"
	ReservationCancelled ReservationStatus = "cancelled"
	ReservationNoShow    ReservationStatus = "noShow"
)

// Reservation is a booking against a restaurant. ConfirmationNumber is
// assigned once at creation and never changes.
type Reservation struct {
	ID                 string            `bson:"_id" json:"id"`
	RestaurantID       string            `bson:"restaurantId" json:"restaurantId"`
	ConfirmationNumber string            `bson:"confirmationNumber" json:"confirmationNumber"`
	CustomerName       string            `bson:"customerName" json:"customerName"`
	CustomerEmail      string            `bson:"customerEmail,omitempty" json:"customerEmail,omitempty"`
	CustomerPhone      string            `bson:"customerPhone,omitempty" json:"customerPhone,omitempty"`
	PartySize          int               `bson:"partySize" json:"partySize"`
	DateTime           time.Time         `bson:"dateTime" json:"dateTime"`
	Status             ReservationStatus `bson:"status" json:"status"`
	TableID            string            `bson:"tableId,omitempty" json:"tableId,omitempty"`
	SpecialRequests    string            `bson:"specialRequests,omitempty" json:"specialRequests,omitempty"`
	CancelReason       string            `bson:"cancelReason,omitempty" json:"cancelReason,omitempty"`
	CancelledAt        *time.Time        `bson:"cancelledAt,omitempty" json:"cancelledAt,omitempty"`
	CreatedAt          time.Time         `bson:"createdAt" json:"createdAt"`
	UpdatedAt          time.Time         `bson:"updatedAt" json:"updatedAt"`
}
