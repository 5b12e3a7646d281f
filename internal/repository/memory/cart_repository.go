package memory

import (
	"context"
	"sort"

	"suplementosPro/domain"
)

type CartRepository struct {
	store *Store
}

func NewCartRepository(store *Store) *CartRepository {
	return &CartRepository{
		store: store,
	}
}

func (r *CartRepository) Upsert(ctx context.Context, item *domain.CartItem) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	s := r.store
	s.mu.Lock()
	defer s.mu.Unlock()

	userCart, ok := s.cart[item.UserID]
	if !ok {
		userCart = make(map[uint64]int)
		s.cart[item.UserID] = userCart
	}

	userCart[item.ProductID] += item.Quantity

	return nil
}

func (r *CartRepository) ViewByUser(ctx context.Context, userID uint) ([]domain.CartLine, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	s := r.store
	s.mu.Lock()
	defer s.mu.Unlock()

	userCart := s.cart[userID]
	lines := make([]domain.CartLine, 0, len(userCart))

	for productID, qty := range userCart {
		product, ok := s.products[productID]
		if !ok {
			continue
		}
		lines = append(lines, domain.CartLine{
			ProductID: productID,
			Name:      product.Name,
			Price:     product.Price,
			ImageURL:  product.ImageURL,
			Quantity:  qty,
			Subtotal:  product.Price * float64(qty),
		})
	}

	sort.Slice(lines, func(i, j int) bool {
		return lines[i].ProductID < lines[j].ProductID
	})

	return lines, nil
}

func (r *CartRepository) DeleteByUser(ctx context.Context, userID uint) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	s := r.store
	s.mu.Lock()
	defer s.mu.Unlock()

	delete(s.cart, userID)

	return nil
}
