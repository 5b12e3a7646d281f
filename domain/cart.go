package domain

import "time"

// CartItem is one line of a user's cart, keyed by (user_id, product_id).
// Adding the same product again increments quantity instead of replacing it.
type CartItem struct {
	UserID    uint      `gorm:"primaryKey;column:user_id" json:"user_id"`
	ProductID uint64    `gorm:"primaryKey;column:product_id" json:"product_id"`
	Quantity  int       `gorm:"column:quantity;not null" json:"quantity"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func (CartItem) TableName() string {
	return "cart_items"
}

// CartLine is a cart item joined against the catalog for display.
type CartLine struct {
	ProductID uint64  `json:"product_id"`
	Name      string  `json:"name"`
	Price     float64 `json:"price"`
	ImageURL  string  `json:"image_url"`
	Quantity  int     `json:"quantity"`
	Subtotal  float64 `json:"subtotal"`
}

type CartView struct {
	Items []CartLine `json:"items"`
	Total float64    `json:"total"`
}
