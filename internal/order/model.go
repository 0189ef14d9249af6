package order

import (
	"time"

	"github.com/aquilaclo/storefront/internal/catalog"
)

const StatusPending = "pending"

type Order struct {
	ID     string `json:"id"`
	UserID string `json:"user_id"`
	// Contact fields are captured at checkout and may diverge from the
	// account's own data.
	CustomerName    string    `json:"customer_name"`
	CustomerEmail   string    `json:"customer_email"`
	CustomerPhone   string    `json:"customer_phone"`
	ShippingAddress string    `json:"shipping_address"`
	TotalAmount     string    `json:"total_amount"` // NUMERIC -> string
	Status          string    `json:"status"`
	CreatedAt       time.Time `json:"created_at"`
}

// Item is one order line; Price is snapshotted at order time and decoupled
// from the live product price.
type Item struct {
	ID        string `json:"id"`
	OrderID   string `json:"order_id"`
	ProductID string `json:"product_id"`
	Size      string `json:"size"`
	Quantity  int    `json:"quantity"`
	Price     string `json:"price"`
}

// ItemWithProduct joins a line with the current product row for display.
type ItemWithProduct struct {
	Item
	Product catalog.Product `json:"product"`
}

// WithItems is the order projection the account and admin screens render.
type WithItems struct {
	Order
	Items []ItemWithProduct `json:"items"`
}
