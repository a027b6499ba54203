package model

import (
	"time"

	"github.com/shopspring/decimal"
)

type OrderStatus string

const (
	OrderOpen      OrderStatus = "open"
	OrderPaid      OrderStatus = "paid"
	OrderCancelled OrderStatus = "cancelled"
)

// OrderItem is a single POS line item.
type OrderItem struct {
	Name      string          `bson:"name" json:"name"`
	Quantity  int             `bson:"quantity" json:"quantity"`
	UnitPrice decimal.Decimal `bson:"unitPrice" json:"unitPrice"`
	Notes     string          `bson:"notes,omitempty" json:"notes,omitempty"`
}

func (i OrderItem) Subtotal() decimal.Decimal {
	return i.UnitPrice.Mul(decimal.NewFromInt(int64(i.Quantity)))
}

// Order is a POS ticket for one table. One open order per table at a time.
type Order struct {
	ID           string          `bson:"_id" json:"id"`
	RestaurantID string          `bson:"restaurantId" json:"restaurantId"`
	TableID      string          `bson:"tableId" json:"tableId"`
	ServerID     string          `bson:"serverId,omitempty" json:"serverId,omitempty"`
	Items        []OrderItem     `bson:"items" json:"items"`
	Status       OrderStatus     `bson:"status" json:"status"`
	Subtotal     decimal.Decimal `bson:"subtotal" json:"subtotal"`
	Tax          decimal.Decimal `bson:"tax" json:"tax"`
	Total        decimal.Decimal `bson:"total" json:"total"`
	CreatedAt    time.Time       `bson:"createdAt" json:"createdAt"`
	UpdatedAt    time.Time       `bson:"updatedAt" json:"updatedAt"`
	ClosedAt     *time.Time      `bson:"closedAt,omitempty" json:"closedAt,omitempty"`
}

// Recalculate recomputes subtotal, tax and total from the line items.
func (o *Order) Recalculate(taxRate decimal.Decimal) {
	sub := decimal.Zero
	for _, it := range o.Items {
		sub = sub.Add(it.Subtotal())
	}
	o.Subtotal = sub
	o.Tax = sub.Mul(taxRate).Round(2)
	o.Total = o.Subtotal.Add(o.Tax)
}
