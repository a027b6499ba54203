package dto

import "github.com/shopspring/decimal"

type OpenOrderRequest struct {
	RestaurantID string `json:"restaurantId" validate:"required"`
	TableID      string `json:"tableId"      validate:"required"`
	ServerID     string `json:"serverId"`
}

type AddOrderItemRequest struct {
	Name      string          `json:"name"      validate:"required,min=1,max=120"`
	Quantity  int             `json:"quantity"  validate:"required,min=1,max=99"`
	UnitPrice decimal.Decimal `json:"unitPrice" validate:"required"`
	Notes     string          `json:"notes"     validate:"omitempty,max=200"`
}

type RemoveOrderItemRequest struct {
	Name string `json:"name" validate:"required"`
}

type BillingSummaryResponse struct {
	RestaurantID string          `json:"restaurantId"`
	OrderCount   int             `json:"orderCount"`
	PaidCount    int             `json:"paidCount"`
	OpenCount    int             `json:"openCount"`
	GrossTotal   decimal.Decimal `json:"grossTotal"`
	TaxTotal     decimal.Decimal `json:"taxTotal"`
}
