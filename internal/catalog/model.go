package catalog

import "time"

type Product struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description,omitempty"`
	// We store price as a string to avoid rounding errors (NUMERIC in Postgres)
	Price      string    `json:"price"`
	ImageURL   string    `json:"image_url,omitempty"`
	DesignName string    `json:"design_name,omitempty"`
	CreatedAt  time.Time `json:"created_at"`
}

// Size is one per-size stock row for a product.
type Size struct {
	ID        string `json:"id"`
	ProductID string `json:"product_id"`
	Size      string `json:"size"`
	Stock     int    `json:"stock"`
}

// HTTPError represents a standard error in JSON.
// swagger:model
type HTTPError struct {
	// Error message
	// example: not found
	Error string `json:"error"`
}

// ProductWithSizes is the detail/admin projection: a product joined with its
// size rows. Zero-stock sizes are included so clients can render them disabled.
type ProductWithSizes struct {
	Product
	Sizes []Size `json:"sizes"`
}

// UpdateStockRequest payload for the admin stock overwrite.
// swagger:model UpdateStockRequest
type UpdateStockRequest struct {
	Stock int `json:"stock" example:"12"`
}
