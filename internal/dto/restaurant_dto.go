package dto

import "restopanel/internal/model"

type CreateRestaurantRequest struct {
	Name        string            `json:"name"        validate:"required,min=2,max=120"`
	Description string            `json:"description" validate:"omitempty,max=2000"`
	Cuisine     string            `json:"cuisine"     validate:"omitempty,max=60"`
	Address     string            `json:"address"     validate:"omitempty,max=200"`
	City        string            `json:"city"        validate:"omitempty,max=80"`
	Phone       string            `json:"phone"       validate:"omitempty,max=20"`
	Email       string            `json:"email"       validate:"omitempty,email"`
	PriceRange  string            `json:"priceRange"  validate:"omitempty,oneof=$ $$ $$$ $$$$"`
	Amenities   []string          `json:"amenities"`
	Hours       map[string]string `json:"hours"`
	Images      []string          `json:"images"      validate:"omitempty,dive,url"`
}

// UpdateRestaurantRequest is a partial update: nil fields stay untouched.
type UpdateRestaurantRequest struct {
	Name          *string                     `json:"name"          validate:"omitempty,min=2,max=120"`
	Description   *string                     `json:"description"   validate:"omitempty,max=2000"`
	Cuisine       *string                     `json:"cuisine"       validate:"omitempty,max=60"`
	Address       *string                     `json:"address"       validate:"omitempty,max=200"`
	City          *string                     `json:"city"          validate:"omitempty,max=80"`
	Phone         *string                     `json:"phone"         validate:"omitempty,max=20"`
	Email         *string                     `json:"email"         validate:"omitempty,email"`
	PriceRange    *string                     `json:"priceRange"    validate:"omitempty,oneof=$ $$ $$$ $$$$"`
	IsOpen        *bool                       `json:"isOpen"`
	Amenities     *[]string                   `json:"amenities"`
	Hours         *map[string]string          `json:"hours"`
	Images        *[]string                   `json:"images"        validate:"omitempty,dive,url"`
	SpecialOffers *[]string                   `json:"specialOffers"`
	MenuHighlight *[]model.MenuHighlightGroup `json:"menuHighlights"`
}

// Patch converts the request into the model-level partial update.
func (r *UpdateRestaurantRequest) Patch() model.RestaurantPatch {
	return model.RestaurantPatch{
		Name:          r.Name,
		Description:   r.Description,
		Cuisine:       r.Cuisine,
		Address:       r.Address,
		City:          r.City,
		Phone:         r.Phone,
		Email:         r.Email,
		PriceRange:    r.PriceRange,
		IsOpen:        r.IsOpen,
		Amenities:     r.Amenities,
		Hours:         r.Hours,
		Images:        r.Images,
		SpecialOffers: r.SpecialOffers,
		MenuHighlight: r.MenuHighlight,
	}
}

type MenuGroupRequest struct {
	Title string                    `json:"title" validate:"required,min=1,max=80"`
	Items []model.MenuHighlightItem `json:"items" validate:"required,min=1,dive"`
}
