package domain

import "time"

// Item is a single stock record. Every item belongs to exactly one user;
// the SKU is unique across all users, not per owner.
type Item struct {
	ID          uint      `json:"id"`
	Name        string    `json:"name"`
	Description string    `json:"description"`
	Quantity    int       `json:"quantity"`
	Price       float64   `json:"price"`
	Category    string    `json:"category"`
	Supplier    string    `json:"supplier"`
	MinStock    int       `json:"min_stock"`
	Location    string    `json:"location"`
	SKU         string    `json:"sku"`
	UserID      uint      `json:"user_id"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}
