package api

import "loomline-be/internal/cart"

// ErrorResponse defines the structure for JSON error responses.
type ErrorResponse struct {
	Error string `json:"error"`
}

// AddCartItemInput is the add-to-cart payload. Name, price and image are
// the product snapshot the cart keeps; the selected colors become the
// variant signature.
type AddCartItemInput struct {
	ProductID int      `json:"productId" validate:"required,gt=0"`
	Name      string   `json:"name" validate:"required,max=255"`
	Price     float64  `json:"price" validate:"gte=0"`
	Image     string   `json:"image" validate:"omitempty,uri"`
	Colors    []string `json:"colors" validate:"omitempty,dive,max=32"`
	Quantity  int      `json:"quantity" validate:"omitempty,gte=1"`
}

// UpdateCartItemInput carries the new quantity for a line item. Values
// below 1 are not an error: the cart rejects them as a silent no-op.
type UpdateCartItemInput struct {
	Quantity int `json:"quantity"`
}

// CartResponse is the cart snapshot returned after every read or mutation.
type CartResponse struct {
	Items []cart.LineItem `json:"items"`
	Total float64         `json:"total"`
	Count int             `json:"count"`
}
