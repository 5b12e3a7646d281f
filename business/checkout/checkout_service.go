package checkout

import (
	"context"

	"suplementosPro/domain"
	"suplementosPro/pkg/logger"

	"github.com/google/uuid"
)

const DefaultPaymentMethod = "credit_card"

// OrdersRepository contract interface. PlaceOrder must be all-or-nothing:
// the implementation commits order, items, stock decrements and the cart
// wipe together or not at all.
type OrdersRepository interface {
	PlaceOrder(ctx context.Context, order *domain.Order) error
	FindAllByUser(ctx context.Context, userID uint) ([]domain.Order, error)
	FindByID(ctx context.Context, orderID uint64, userID uint) (domain.Order, []domain.OrderItem, error)
}

type checkoutService struct {
	ordersRepo OrdersRepository
}

func NewCheckoutService(ordersRepo OrdersRepository) *checkoutService {
	return &checkoutService{
		ordersRepo: ordersRepo,
	}
}

// PlaceOrder converts the user's cart into an order. The repository snapshots
// unit prices into the order items, decrements stock and clears the cart in
// one committed transaction. An empty cart fails with ErrEmptyCart before any
// write; a line exceeding available stock fails with ErrInsufficientStock and
// rolls everything back.
func (s *checkoutService) PlaceOrder(ctx context.Context, userID uint, shippingAddress, paymentMethod string) (domain.Order, error) {
	if paymentMethod == "" {
		paymentMethod = DefaultPaymentMethod
	}

	order := domain.Order{
		Reference:       uuid.NewString(),
		UserID:          userID,
		ShippingAddress: shippingAddress,
		PaymentMethod:   paymentMethod,
	}

	if err := s.ordersRepo.PlaceOrder(ctx, &order); err != nil {
		logger.Error("Failed to place order", err)
		return domain.Order{}, err
	}

	logger.Info("Order placed", "order_id", order.ID, "user_id", userID, "total", order.Total)

	return order, nil
}

func (s *checkoutService) GetAllOrders(ctx context.Context, userID uint) ([]domain.Order, error) {
	orders, err := s.ordersRepo.FindAllByUser(ctx, userID)
	if err != nil {
		logger.Error("Failed to get orders", err)
		return nil, err
	}

	if orders == nil {
		orders = []domain.Order{}
	}

	return orders, nil
}

func (s *checkoutService) GetOrder(ctx context.Context, orderID uint64, userID uint) (domain.Order, []domain.OrderItem, error) {
	order, items, err := s.ordersRepo.FindByID(ctx, orderID, userID)
	if err != nil {
		logger.Error("Failed to get order by id", err)
		return domain.Order{}, nil, err
	}

	return order, items, nil
}
