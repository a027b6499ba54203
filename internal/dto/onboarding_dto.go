package dto

// The onboarding wizard collects an owner account and their restaurant in
// four ordered steps, each validated on submission.

type OnboardingAccountStep struct {
	Email    string `json:"email"    validate:"required,email"`
	Password string `json:"password" validate:"required,min=8"`
	Name     string `json:"name"     validate:"required,min=2,max=100"`
	Phone    string `json:"phone"    validate:"omitempty,min=7,max=20"`
}

type OnboardingRestaurantStep struct {
	Name        string `json:"name"        validate:"required,min=2,max=120"`
	Description string `json:"description" validate:"omitempty,max=2000"`
	Cuisine     string `json:"cuisine"     validate:"required,max=60"`
	Address     string `json:"address"     validate:"required,max=200"`
	City        string `json:"city"        validate:"required,max=80"`
	PriceRange  string `json:"priceRange"  validate:"required,oneof=$ $$ $$$ $$$$"`
}

type OnboardingDetailsStep struct {
	Hours     map[string]string `json:"hours"     validate:"required,min=1"`
	Amenities []string          `json:"amenities"`
}

type OnboardingImagesStep struct {
	Images []string `json:"images" validate:"omitempty,dive,url"`
}

type OnboardingStateResponse struct {
	DraftID       string `json:"draftId"`
	StepsComplete int    `json:"stepsComplete"`
	NextStep      int    `json:"nextStep"`
}

type OnboardingCompleteResponse struct {
	Session      SessionResponse `json:"session"`
	RestaurantID string          `json:"restaurantId"`
}
