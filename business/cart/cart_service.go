package cart

import (
	"context"
	"errors"

	"suplementosPro/domain"
	"suplementosPro/pkg/logger"
)

// CartRepository contract interface
type CartRepository interface {
	Upsert(ctx context.Context, item *domain.CartItem) error
	ViewByUser(ctx context.Context, userID uint) ([]domain.CartLine, error)
}

// ProductRepository is the slice of the catalog this service needs.
type ProductRepository interface {
	FindByID(ctx context.Context, id uint64) (domain.Product, error)
}

type cartService struct {
	cartRepo    CartRepository
	productRepo ProductRepository
}

func NewCartService(cartRepo CartRepository, productRepo ProductRepository) *cartService {
	return &cartService{
		cartRepo:    cartRepo,
		productRepo: productRepo,
	}
}

// AddItem puts quantity units of a product into the user's cart. Adding a
// product already present increments the existing line. Stock is not checked
// here; checkout is the only gate.
func (s *cartService) AddItem(ctx context.Context, userID uint, productID uint64, quantity int) error {
	if quantity < 1 {
		return errors.New("quantity must be at least 1")
	}

	if _, err := s.productRepo.FindByID(ctx, productID); err != nil {
		logger.Error("Failed to find product for cart add", err)
		return err
	}

	item := domain.CartItem{
		UserID:    userID,
		ProductID: productID,
		Quantity:  quantity,
	}

	if err := s.cartRepo.Upsert(ctx, &item); err != nil {
		logger.Error("Failed to add cart item", err)
		return err
	}

	return nil
}

// ViewCart returns the cart lines with catalog data attached plus the
// running total. An empty cart yields an empty item list and total 0.
func (s *cartService) ViewCart(ctx context.Context, userID uint) (domain.CartView, error) {
	lines, err := s.cartRepo.ViewByUser(ctx, userID)
	if err != nil {
		logger.Error("Failed to read cart", err)
		return domain.CartView{}, err
	}

	total := 0.0
	for _, line := range lines {
		total += line.Subtotal
	}

	if lines == nil {
		lines = []domain.CartLine{}
	}

	return domain.CartView{
		Items: lines,
		Total: total,
	}, nil
}
