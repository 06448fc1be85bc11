package domain

import "time"

// Sweet is a product held in inventory. Quantity only changes through
// purchase, restock or an explicit administrative update.
type Sweet struct {
	ID        string    `json:"_id"`
	Name      string    `json:"name"`
	Category  string    `json:"category"`
	Price     float64   `json:"price"`
	Quantity  int       `json:"quantity"`
	ImageURL  string    `json:"imageUrl,omitempty"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// SweetPatch holds the fields of a partial update. Nil fields are left untouched.
type SweetPatch struct {
	Name     *string
	Category *string
	Price    *float64
	Quantity *int
	ImageURL *string
}

// Empty reports whether the patch changes nothing.
func (p SweetPatch) Empty() bool {
	return p.Name == nil && p.Category == nil && p.Price == nil && p.Quantity == nil && p.ImageURL == nil
}

// Validate checks the patch before it reaches the store.
func (p SweetPatch) Validate() error {
	if p.Empty() {
		return NewValidationError("body", "at least one field must be provided")
	}
	if p.Name != nil && *p.Name == "" {
		return NewValidationError("name", "name must not be empty")
	}
	if p.Category != nil && *p.Category == "" {
		return NewValidationError("category", "category must not be empty")
	}
	if p.Price != nil && *p.Price < 0 {
		return NewValidationError("price", "price must be a non-negative number")
	}
	if p.Quantity != nil && *p.Quantity < 0 {
		return NewValidationError("quantity", "quantity must be a non-negative integer")
	}
	return nil
}

// SweetFilter narrows a search. Zero-valued fields impose no constraint.
type SweetFilter struct {
	Name     string
	Category string
	MinPrice *float64
	MaxPrice *float64
}
