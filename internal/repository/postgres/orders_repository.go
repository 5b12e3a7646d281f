package postgres

import (
	"context"
	"errors"

	"suplementosPro/domain"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type OrdersRepository struct {
	DB *gorm.DB
}

func NewOrdersRepository(db *gorm.DB) *OrdersRepository {
	return &OrdersRepository{
		DB: db,
	}
}

// PlaceOrder converts the user's cart into an order inside one transaction:
// cart rows and touched product rows are locked FOR UPDATE, order items
// snapshot the current unit price, stock is decremented, and the cart is
// cleared. Any failure rolls the whole thing back.
//
// order.UserID, Reference, ShippingAddress and PaymentMethod must be set by
// the caller; Total is computed here.
func (r *OrdersRepository) PlaceOrder(ctx context.Context, order *domain.Order) error {
	return r.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var cartItems []domain.CartItem
		err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).
			Where("user_id = ?", order.UserID).
			Order("product_id ASC").
			Find(&cartItems).Error
		if err != nil {
			return err
		}

		if len(cartItems) == 0 {
			return domain.ErrEmptyCart
		}

		total := 0.0
		orderItems := make([]domain.OrderItem, 0, len(cartItems))

		for _, item := range cartItems {
			var product domain.Product
			err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).
				First(&product, item.ProductID).Error
			if err != nil {
				if errors.Is(err, gorm.ErrRecordNotFound) {
					return domain.ErrProductNotFound
				}
				return err
			}

			if product.Stock < item.Quantity {
				return domain.ErrInsufficientStock
			}

			total += product.Price * float64(item.Quantity)
			orderItems = append(orderItems, domain.OrderItem{
				ProductID: item.ProductID,
				Quantity:  item.Quantity,
				Price:     product.Price,
			})

			err = tx.Model(&domain.Product{}).
				Where("id = ?", product.ID).
				Update("stock", gorm.Expr("stock - ?", item.Quantity)).Error
			if err != nil {
				return err
			}
		}

		order.Total = total
		if err := tx.Create(order).Error; err != nil {
			return err
		}

		for i := range orderItems {
			orderItems[i].OrderID = order.ID
		}
		if err := tx.Create(&orderItems).Error; err != nil {
			return err
		}

		return tx.Where("user_id = ?", order.UserID).Delete(&domain.CartItem{}).Error
	})
}

func (r *OrdersRepository) FindAllByUser(ctx context.Context, userID uint) ([]domain.Order, error) {
	var orders []domain.Order

	err := r.DB.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("created_at DESC").
		Find(&orders).Error
	if err != nil {
		return nil, err
	}

	return orders, nil
}

func (r *OrdersRepository) FindByID(ctx context.Context, orderID uint64, userID uint) (domain.Order, []domain.OrderItem, error) {
	var order domain.Order

	err := r.DB.WithContext(ctx).
		Where("id = ? AND user_id = ?", orderID, userID).
		First(&order).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.Order{}, nil, domain.ErrOrderNotFound
		}
		return domain.Order{}, nil, err
	}

	var items []domain.OrderItem
	err = r.DB.WithContext(ctx).
		Where("order_id = ?", order.ID).
		Order("product_id ASC").
		Find(&items).Error
	if err != nil {
		return domain.Order{}, nil, err
	}

	return order, items, nil
}
