package model

import "time"

// MenuHighlightItem is a single dish inside a highlight group.
type MenuHighlightItem struct {
	Name        string `bson:"name" json:"name"`
	Description string `bson:"description,omitempty" json:"description,omitempty"`
	Price       string `bson:"price,omitempty" json:"price,omitempty"` // display string, e.g. "$18"
}

// MenuHighlightGroup is a named group of showcased dishes ("Starters",
// "Chef's picks") rendered on the restaurant's public card.
type MenuHighlightGroup struct {
	Title string              `bson:"title" json:"title"`
	Items []MenuHighlightItem `bson:"items" json:"items"`
}

// Restaurant is the single business entity owned by one User. At most one
// restaurant is loaded into the active session registry at a time.
type Restaurant struct {
	ID            string               `bson:"_id" json:"id"`
	OwnerID       string               `bson:"ownerId" json:"ownerId"`
	Name          string               `bson:"name" json:"name"`
	Description   string               `bson:"description,omitempty" json:"description,omitempty"`
	Cuisine       string               `bson:"cuisine,omitempty" json:"cuisine,omitempty"`
	Address       string               `bson:"address,omitempty" json:"address,omitempty"`
	City          string               `bson:"city,omitempty" json:"city,omitempty"`
	Phone         string               `bson:"phone,omitempty" json:"phone,omitempty"`
	Email         string               `bson:"email,omitempty" json:"email,omitempty"`
	PriceRange    string               `bson:"priceRange,omitempty" json:"priceRange,omitempty"` // "$".."$$$$"
	IsOpen        bool                 `bson:"isOpen" json:"isOpen"`
	IsNew         bool                 `bson:"isNew" json:"isNew"`
	Rating        float64              `bson:"rating" json:"rating"`
	ReviewCount   int                  `bson:"reviewCount" json:"reviewCount"`
	Amenities     []string             `bson:"amenities,omitempty" json:"amenities,omitempty"`
	Hours         map[string]string    `bson:"hours,omitempty" json:"hours,omitempty"` // day name → display string
	Images        []string             `bson:"images,omitempty" json:"images,omitempty"`
	SpecialOffers []string             `bson:"specialOffers,omitempty" json:"specialOffers,omitempty"`
	MenuHighlight []MenuHighlightGroup `bson:"menuHighlights,omitempty" json:"menuHighlights,omitempty"`
	CreatedAt     time.Time            `bson:"createdAt" json:"createdAt"`
	UpdatedAt     time.Time            `bson:"updatedAt" json:"updatedAt"`
}

// RestaurantPatch carries partial updates. Nil fields are left untouched;
// absent optional fields are never written to the remote backend.
type RestaurantPatch struct {
	Name          *string               `bson:"name,omitempty"`
	Description   *string               `bson:"description,omitempty"`
	Cuisine       *string               `bson:"cuisine,omitempty"`
	Address       *string               `bson:"address,omitempty"`
	City          *string               `bson:"city,omitempty"`
	Phone         *string               `bson:"phone,omitempty"`
	Email         *string               `bson:"email,omitempty"`
	PriceRange    *string               `bson:"priceRange,omitempty"`
	IsOpen        *bool                 `bson:"isOpen,omitempty"`
	Amenities     *[]string             `bson:"amenities,omitempty"`
	Hours         *map[string]string    `bson:"hours,omitempty"`
	Images        *[]string             `bson:"images,omitempty"`
	SpecialOffers *[]string             `bson:"specialOffers,omitempty"`
	MenuHighlight *[]MenuHighlightGroup `bson:"menuHighlights,omitempty"`
}

// Apply merges the patch into r in place.
func (p *RestaurantPatch) Apply(r *Restaurant) {
	if p.Name != nil {
		r.Name = *p.Name
	}
	if p.Description != nil {
		r.Description = *p.Description
	}
	if p.Cuisine != nil {
		r.Cuisine = *p.Cuisine
	}
	if p.Address != nil {
		r.Address = *p.Address
	}
	if p.City != nil {
		r.City = *p.City
	}
	if p.Phone != nil {
		r.Phone = *p.Phone
	}
	if p.Email != nil {
		r.Email = *p.Email
	}
	if p.PriceRange != nil {
		r.PriceRange = *p.PriceRange
	}
	if p.IsOpen != nil {
		r.IsOpen = *p.IsOpen
	}
	if p.Amenities != nil {
		r.Amenities = *p.Amenities
	}
	if p.Hours != nil {
		r.Hours = *p.Hours
	}
	if p.Images != nil {
		r.Images = *p.Images
	}
	if p.SpecialOffers != nil {
		r.SpecialOffers = *p.SpecialOffers
	}
	if p.MenuHighlight != nil {
		r.MenuHighlight = *p.MenuHighlight
	}
}
