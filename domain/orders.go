package domain

import "time"

type Order struct {
	ID              uint64    `gorm:"primaryKey;autoIncrement" json:"id"`
	Reference       string    `gorm:"column:reference;uniqueIndex;not null" json:"reference"`
	UserID          uint      `gorm:"column:user_id;index;not null" json:"user_id"`
	Total           float64   `gorm:"column:total;type:numeric;not null" json:"total"`
	ShippingAddress string    `gorm:"column:shipping_address;type:text;not null" json:"shipping_address"`
	PaymentMethod   string    `gorm:"column:payment_method;not null" json:"payment_method"`
	CreatedAt       time.Time `json:"created_at"`
}

func (Order) TableName() string {
	return "orders"
}

// OrderItem records one distinct product of an order. Price is the unit
// price snapshotted at purchase time, independent of later catalog changes.
type OrderItem struct {
	OrderID   uint64  `gorm:"primaryKey;column:order_id" json:"order_id"`
	ProductID uint64  `gorm:"primaryKey;column:product_id" json:"product_id"`
	Quantity  int     `gorm:"column:quantity;not null" json:"quantity"`
	Price     float64 `gorm:"column:price;type:numeric;not null" json:"price"`
}

func (OrderItem) TableName() string {
	return "order_items"
}
