package handler

import "github.com/sweetshop/sweet-inventory/internal/core/domain"

// errorResponse is the envelope of every 4xx/5xx response.
type errorResponse struct {
	Message string `json:"message"`
}

type messageResponse struct {
	Message string `json:"message"`
}

// --- Auth ---

type registerRequest struct {
	Name     string `json:"name"     validate:"required"`
	Email    string `json:"email"    validate:"required,email"`
	Password string `json:"password" validate:"required,min=6"`
	Role     string `json:"role"     validate:"omitempty,oneof=user admin"`
}

type loginRequest struct {
	Email    string `json:"email"    validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

type authResponse struct {
	Token string       `json:"token"`
	User  *domain.User `json:"user"`
}

// --- Sweets ---

type createSweetRequest struct {
	Name     string   `json:"name"     validate:"required"`
	Category string   `json:"category" validate:"required"`
	Price    *float64 `json:"price"    validate:"required,gte=0"`
	Quantity *int     `json:"quantity" validate:"required,gte=0"`
	ImageURL string   `json:"imageUrl"`
}

type updateSweetRequest struct {
	Name     *string  `json:"name"     validate:"omitempty,min=1"`
	Category *string  `json:"category" validate:"omitempty,min=1"`
	Price    *float64 `json:"price"    validate:"omitempty,gte=0"`
	Quantity *int     `json:"quantity" validate:"omitempty,gte=0"`
	ImageURL *string  `json:"imageUrl"`
}

func (r updateSweetRequest) patch() domain.SweetPatch {
	return domain.SweetPatch{
		Name:     r.Name,
		Category: r.Category,
		Price:    r.Price,
		Quantity: r.Quantity,
		ImageURL: r.ImageURL,
	}
}

// amountRequest is the body of purchase and restock. Amount is optional for
// purchase and defaults to 1.
type amountRequest struct {
	Amount *int `json:"amount"`
}
