package sales

import (
	"context"
	"testing"

	"estoque-backend/internal/database"
	"estoque-backend/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestRepository(t *testing.T) *Repository {
	t.Helper()
	return NewRepository(database.NewTestDB(t))
}

func ptr[T any](v T) *T {
	return &v
}

func mustDate(t *testing.T, s string) models.DateOnly {
	t.Helper()
	d, err := models.ParseDateOnly(s)
	require.NoError(t, err)
	return d
}

func TestAppendAndListAll(t *testing.T) {
	repo := newTestRepository(t)
	ctx := context.Background()

	require.NoError(t, repo.Append(ctx, &models.Sale{
		ItemID:   ptr("SKU1"),
		Quantity: ptr(2),
		SaleDate: mustDate(t, "2025-12-09"),
	}))
	require.NoError(t, repo.Append(ctx, &models.Sale{
		ItemID:   ptr("SKU2"),
		Quantity: ptr(1),
		SaleDate: mustDate(t, "2025-12-10"),
	}))

	sales, err := repo.ListAll(ctx)
	require.NoError(t, err)
	require.Len(t, sales, 2)

	// Insertion order.
	assert.Equal(t, "SKU1", *sales[0].ItemID)
	assert.Equal(t, "SKU2", *sales[1].ItemID)
	assert.Equal(t, 2, *sales[0].Quantity)
	assert.Equal(t, "2025-12-09", sales[0].SaleDate.String())
	assert.NotZero(t, sales[0].ID)
}

func TestAppendMissingFields(t *testing.T) {
	repo := newTestRepository(t)
	ctx := context.Background()

	cases := []struct {
		name string
		sale *models.Sale
	}{
		{"missing item_id", &models.Sale{Quantity: ptr(1), SaleDate: mustDate(t, "2025-12-09")}},
		{"empty item_id", &models.Sale{ItemID: ptr(""), Quantity: ptr(1), SaleDate: mustDate(t, "2025-12-09")}},
		{"missing quantity", &models.Sale{ItemID: ptr("SKU1"), SaleDate: mustDate(t, "2025-12-09")}},
		{"missing date", &models.Sale{ItemID: ptr("SKU1"), Quantity: ptr(1)}},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.ErrorIs(t, repo.Append(ctx, tc.sale), ErrInvalid)
		})
	}

	sales, err := repo.ListAll(ctx)
	require.NoError(t, err)
	assert.Empty(t, sales)
}

func TestAppendDoesNotCheckProductExistence(t *testing.T) {
	repo := newTestRepository(t)

	// No product rows exist at all; the sale must still go through.
	require.NoError(t, repo.Append(context.Background(), &models.Sale{
		ItemID:   ptr("GHOST"),
		Quantity: ptr(7),
		SaleDate: mustDate(t, "2025-01-01"),
	}))
}
