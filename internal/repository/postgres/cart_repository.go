package postgres

import (
	"context"
	"fmt"
	"time"

	"suplementosPro/domain"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type CartRepository struct {
	DB *gorm.DB
}

func NewCartRepository(db *gorm.DB) *CartRepository {
	return &CartRepository{
		DB: db,
	}
}

// Upsert adds the item to the user's cart. An existing (user_id, product_id)
// row has its quantity incremented instead of replaced.
func (r *CartRepository) Upsert(ctx context.Context, item *domain.CartItem) error {
	if err := ctx.Err(); err != nil {
		return fmt.Errorf("context error: %w", err)
	}

	err := r.DB.WithContext(ctx).Clauses(clause.OnConflict{
		Columns: []clause.Column{{Name: "user_id"}, {Name: "product_id"}},
		DoUpdates: clause.Assignments(map[string]interface{}{
			"quantity":   gorm.Expr("cart_items.quantity + EXCLUDED.quantity"),
			"updated_at": time.Now(),
		}),
	}).Create(item).Error
	if err != nil {
		return fmt.Errorf("failed to upsert cart item: %w", err)
	}

	return nil
}

// ViewByUser returns the user's cart lines joined against the catalog, with
// the per-line subtotal computed in the database.
func (r *CartRepository) ViewByUser(ctx context.Context, userID uint) ([]domain.CartLine, error) {
	if err := ctx.Err(); err != nil {
		return nil, fmt.Errorf("context error: %w", err)
	}

	var lines []domain.CartLine

	err := r.DB.WithContext(ctx).
		Table("cart_items AS c").
		Select("c.product_id, c.quantity, p.name, p.price, p.image_url, c.quantity * p.price AS subtotal").
		Joins("JOIN products p ON p.id = c.product_id").
		Where("c.user_id = ?", userID).
		Order("c.product_id ASC").
		Scan(&lines).Error
	if err != nil {
		return nil, fmt.Errorf("failed to read cart: %w", err)
	}

	return lines, nil
}

func (r *CartRepository) DeleteByUser(ctx context.Context, userID uint) error {
	if err := ctx.Err(); err != nil {
		return fmt.Errorf("context error: %w", err)
	}

	if err := r.DB.WithContext(ctx).Where("user_id = ?", userID).Delete(&domain.CartItem{}).Error; err != nil {
		return fmt.Errorf("failed to clear cart: %w", err)
	}

	return nil
}
