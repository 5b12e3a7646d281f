package cart

import (
	"context"
	"testing"

	"suplementosPro/domain"
	"suplementosPro/internal/repository/memory"

	"github.com/stretchr/testify/require"
)

func newTestService(t *testing.T) (*cartService, *memory.Store) {
	t.Helper()
	store := memory.NewStore()
	store.SeedProduct(domain.Product{ID: 1, Name: "WHEY PROTEIN 1KG", Price: 179.90, Stock: 50, ImageURL: "whey.jpg"})
	store.SeedProduct(domain.Product{ID: 2, Name: "CREATINA 300G", Price: 89.90, Stock: 50})
	return NewCartService(memory.NewCartRepository(store), memory.NewProductRepository(store)), store
}

func TestAddItem_AccumulatesQuantity(t *testing.T) {
	svc, _ := newTestService(t)
	ctx := context.Background()

	require.NoError(t, svc.AddItem(ctx, 1, 1, 2))
	require.NoError(t, svc.AddItem(ctx, 1, 1, 3))

	view, err := svc.ViewCart(ctx, 1)
	require.NoError(t, err)
	require.Len(t, view.Items, 1)
	require.Equal(t, 5, view.Items[0].Quantity)
	require.InDelta(t, 5*179.90, view.Items[0].Subtotal, 1e-9)
}

func TestAddItem_UnknownProduct(t *testing.T) {
	svc, _ := newTestService(t)

	err := svc.AddItem(context.Background(), 1, 999, 1)
	require.ErrorIs(t, err, domain.ErrProductNotFound)
}

func TestAddItem_RejectsNonPositiveQuantity(t *testing.T) {
	svc, _ := newTestService(t)

	require.Error(t, svc.AddItem(context.Background(), 1, 1, 0))
	require.Error(t, svc.AddItem(context.Background(), 1, 1, -2))
}

func TestViewCart_Empty(t *testing.T) {
	svc, _ := newTestService(t)

	view, err := svc.ViewCart(context.Background(), 7)
	require.NoError(t, err)
	require.Empty(t, view.Items)
	require.Zero(t, view.Total)
}

func TestViewCart_TotalsAndOrdering(t *testing.T) {
	svc, _ := newTestService(t)
	ctx := context.Background()

	require.NoError(t, svc.AddItem(ctx, 1, 2, 2))
	require.NoError(t, svc.AddItem(ctx, 1, 1, 1))

	view, err := svc.ViewCart(ctx, 1)
	require.NoError(t, err)
	require.Len(t, view.Items, 2)

	// lines come back ordered by product id, joined against the catalog
	require.Equal(t, uint64(1), view.Items[0].ProductID)
	require.Equal(t, "WHEY PROTEIN 1KG", view.Items[0].Name)
	require.Equal(t, "whey.jpg", view.Items[0].ImageURL)
	require.Equal(t, uint64(2), view.Items[1].ProductID)

	require.InDelta(t, 179.90, view.Items[0].Subtotal, 1e-9)
	require.InDelta(t, 2*89.90, view.Items[1].Subtotal, 1e-9)
	require.InDelta(t, 359.70, view.Total, 1e-9)
}

func TestViewCart_IsolatedPerUser(t *testing.T) {
	svc, _ := newTestService(t)
	ctx := context.Background()

	require.NoError(t, svc.AddItem(ctx, 1, 1, 2))

	view, err := svc.ViewCart(ctx, 2)
	require.NoError(t, err)
	require.Empty(t, view.Items)
}
