package memory

import (
	"context"
	"sort"
	"time"

	"suplementosPro/domain"
)

type OrdersRepository struct {
	store *Store
}

func NewOrdersRepository(store *Store) *OrdersRepository {
	return &OrdersRepository{
		store: store,
	}
}

// PlaceOrder mirrors the postgres transaction semantics under the store
// mutex: every check happens before any write, so a failed checkout leaves
// cart, stock and orders untouched.
func (r *OrdersRepository) PlaceOrder(ctx context.Context, order *domain.Order) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	s := r.store
	s.mu.Lock()
	defer s.mu.Unlock()

	userCart := s.cart[order.UserID]
	if len(userCart) == 0 {
		return domain.ErrEmptyCart
	}

	productIDs := make([]uint64, 0, len(userCart))
	for id := range userCart {
		productIDs = append(productIDs, id)
	}
	sort.Slice(productIDs, func(i, j int) bool { return productIDs[i] < productIDs[j] })

	// validate everything first
	total := 0.0
	items := make([]domain.OrderItem, 0, len(productIDs))
	for _, productID := range productIDs {
		qty := userCart[productID]
		product, ok := s.products[productID]
		if !ok {
			return domain.ErrProductNotFound
		}
		if product.Stock < qty {
			return domain.ErrInsufficientStock
		}
		total += product.Price * float64(qty)
		items = append(items, domain.OrderItem{
			ProductID: productID,
			Quantity:  qty,
			Price:     product.Price,
		})
	}

	// then apply
	s.nextOrderID++
	order.ID = s.nextOrderID
	order.Total = total
	order.CreatedAt = time.Now()

	for i := range items {
		items[i].OrderID = order.ID
		product := s.products[items[i].ProductID]
		product.Stock -= items[i].Quantity
		s.products[items[i].ProductID] = product
	}

	s.orders[order.ID] = *order
	s.orderItems[order.ID] = items
	delete(s.cart, order.UserID)

	return nil
}

func (r *OrdersRepository) FindAllByUser(ctx context.Context, userID uint) ([]domain.Order, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	s := r.store
	s.mu.Lock()
	defer s.mu.Unlock()

	var orders []domain.Order
	for _, order := range s.orders {
		if order.UserID == userID {
			orders = append(orders, order)
		}
	}

	// ids are monotonic, so newest first
	sort.Slice(orders, func(i, j int) bool {
		return orders[i].ID > orders[j].ID
	})

	return orders, nil
}

func (r *OrdersRepository) FindByID(ctx context.Context, orderID uint64, userID uint) (domain.Order, []domain.OrderItem, error) {
	if err := ctx.Err(); err != nil {
		return domain.Order{}, nil, err
	}

	s := r.store
	s.mu.Lock()
	defer s.mu.Unlock()

	order, ok := s.orders[orderID]
	if !ok || order.UserID != userID {
		return domain.Order{}, nil, domain.ErrOrderNotFound
	}

	items := make([]domain.OrderItem, len(s.orderItems[orderID]))
	copy(items, s.orderItems[orderID])

	return order, items, nil
}
