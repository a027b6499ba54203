package dto

type AddStaffRequest struct {
	RestaurantID string `json:"restaurantId" validate:"required"`
	Name         string `json:"name"         validate:"required,min=2,max=100"`
	Email        string `json:"email"        validate:"required,email"`
	Phone        string `json:"phone"        validate:"omitempty,max=20"`
	Role         string `json:"role"         validate:"required,oneof=manager host server"`
}

type UpdateStaffRequest struct {
	Name  *string `json:"name"  validate:"omitempty,min=2,max=100"`
	Email *string `json:"email" validate:"omitempty,email"`
	Phone *string `json:"phone" validate:"omitempty,max=20"`
}
