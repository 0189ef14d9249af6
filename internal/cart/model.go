package cart

import "github.com/aquilaclo/storefront/internal/catalog"

// Item is one cart row: at most one per (user, product, size).
type Item struct {
	ID        string `json:"id"`
	UserID    string `json:"user_id"`
	ProductID string `json:"product_id"`
	Size      string `json:"size"`
	Quantity  int    `json:"quantity"`
}

// Line is a cart row joined with its product snapshot for rendering.
type Line struct {
	Item
	Product catalog.Product `json:"product"`
}

// AddRequest payload for adding to the cart.
// swagger:model AddRequest
type AddRequest struct {
	ProductID string `json:"product_id"`
	Size      string `json:"size"     example:"M"`
	Quantity  int    `json:"quantity" example:"1"`
}

// UpdateRequest payload for changing a line's quantity. Zero or negative
// removes the line.
// swagger:model UpdateRequest
type UpdateRequest struct {
	Quantity int `json:"quantity"`
}
