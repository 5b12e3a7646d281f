package product

import (
	"context"
	"testing"

	"suplementosPro/domain"
	"suplementosPro/internal/repository/memory"

	"github.com/stretchr/testify/require"
)

func TestGetAllProducts_OrderedByID(t *testing.T) {
	store := memory.NewStore()
	store.SeedProduct(domain.Product{ID: 3, Name: "PRÉ-TREINO 300G", Price: 129.90})
	store.SeedProduct(domain.Product{ID: 1, Name: "WHEY PROTEIN 1KG", Price: 179.90})
	store.SeedProduct(domain.Product{ID: 2, Name: "CREATINA 300G", Price: 89.90})

	svc := NewProductService(memory.NewProductRepository(store))

	products, err := svc.GetAllProducts(context.Background())
	require.NoError(t, err)
	require.Len(t, products, 3)
	require.Equal(t, uint64(1), products[0].ID)
	require.Equal(t, uint64(2), products[1].ID)
	require.Equal(t, uint64(3), products[2].ID)
}

func TestGetProductByID(t *testing.T) {
	store := memory.NewStore()
	store.SeedProduct(domain.Product{ID: 1, Name: "WHEY PROTEIN 1KG", Price: 179.90})

	svc := NewProductService(memory.NewProductRepository(store))

	product, err := svc.GetProductByID(context.Background(), 1)
	require.NoError(t, err)
	require.Equal(t, "WHEY PROTEIN 1KG", product.Name)

	_, err = svc.GetProductByID(context.Background(), 404)
	require.ErrorIs(t, err, domain.ErrProductNotFound)

	_, err = svc.GetProductByID(context.Background(), 0)
	require.Error(t, err)
}
