package database

import (
	"fmt"

	"suplementosPro/domain"
	"suplementosPro/pkg/config"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

func InitPostgres(cfg *config.Config) (*gorm.DB, error) {
	dsn := fmt.Sprintf(
		"host=%s port=%s user=%s password=%s dbname=%s sslmode=%s",
		cfg.Database.Host,
		cfg.Database.Port,
		cfg.Database.User,
		cfg.Database.Password,
		cfg.Database.Name,
		cfg.Database.SSLMode,
	)

	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{})
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	if err := db.AutoMigrate(
		&domain.User{},
		&domain.Product{},
		&domain.CartItem{},
		&domain.Order{},
		&domain.OrderItem{},
	); err != nil {
		return nil, fmt.Errorf("failed to migrate schema: %w", err)
	}

	if err := SeedProducts(db); err != nil {
		return nil, fmt.Errorf("failed to seed products: %w", err)
	}

	return db, nil
}

// SeedProducts loads the launch catalog when the products table is empty.
func SeedProducts(db *gorm.DB) error {
	var count int64
	if err := db.Model(&domain.Product{}).Count(&count).Error; err != nil {
		return err
	}

	if count > 0 {
		return nil
	}

	products := []domain.Product{
		{Name: "WHEY PROTEIN 1KG", Description: "Isolado + Concentrado", Price: 179.90, Stock: 120, ImageURL: "https://images.unsplash.com/photo-1583454110502-cf5c4c7add63?w=400"},
		{Name: "CREATINA 300G", Description: "100% Pura", Price: 89.90, Stock: 200, ImageURL: "https://images.unsplash.com/photo-1622483767028-3f66f32aef1a?w=400"},
		{Name: "PRÉ-TREINO 300G", Description: "Explosão de energia", Price: 129.90, Stock: 80, ImageURL: "https://images.unsplash.com/photo-1549570652-97324981a6fd?w=400"},
		{Name: "BCAA 240CAPS", Description: "Recuperação muscular", Price: 99.90, Stock: 150, ImageURL: "https://images.unsplash.com/photo-1571019613454-1cb2f99b2d8b?w=400"},
		{Name: "MULTIVITAMÍNICO", Description: "60 doses", Price: 69.90, Stock: 90, ImageURL: "https://images.unsplash.com/photo-1607613009820-8661a6c6b6b7?w=400"},
		{Name: "ÔMEGA 3 120CAPS", Description: "Saúde cardiovascular", Price: 79.90, Stock: 110, ImageURL: "https://images.unsplash.com/photo-1625772299848-391b6a037d0b?w=400"},
	}

	return db.Create(&products).Error
}
