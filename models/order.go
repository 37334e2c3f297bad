package models

import "time"

// Order is a purchase record owned by exactly one user.
// Orders are read-only through the API: they are created elsewhere
// (checkout pipeline) and only listed here.
type Order struct {
	ID     int64 `json:"id"`
	UserID int64 `json:"user_id"`

	// Item is the human-readable name of the purchased product.
	Item string `json:"item"`

	Quantity int `json:"quantity"`

	// PriceCents is the total order price in minor currency units.
	PriceCents int64 `json:"price_cents"`

	CreatedAt time.Time `json:"created_at"`
}

// TableName returns the name of the database table
// associated with the Order model.
func (o Order) TableName() string {
	return "orders"
}
