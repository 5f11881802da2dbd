package cartstore

import (
	"context"
	"encoding/json"
	"testing"

	"boutique/internal/domain/entity"
	"boutique/internal/domain/repository"

	"github.com/alicebob/miniredis/v2"
	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// setupTestStorage creates a miniredis server and the storage backed by it.
func setupTestStorage(t *testing.T) (repository.CartStorage, *miniredis.Miniredis) {
	t.Helper()

	mr := miniredis.RunT(t)

	client := redis.NewClient(&redis.Options{
		Addr: mr.Addr(),
	})
	t.Cleanup(func() { client.Close() })

	return NewCartStorage(client), mr
}

func testItems() []entity.LineItem {
	return []entity.LineItem{
		{
			VariantID: "v1",
			ProductID: "p1",
			Name:      "Robe longue fleurie",
			Size:      "M",
			Color:     "bleu",
			UnitPrice: decimal.RequireFromString("45.00"),
			Quantity:  2,
		},
	}
}

func TestCartStorage_SaveAndFind(t *testing.T) {
	storage, _ := setupTestStorage(t)
	ctx := context.Background()
	customerID := uuid.New()

	require.NoError(t, storage.SaveCart(ctx, customerID, testItems()))

	items, err := storage.FindCart(ctx, customerID)
	require.NoError(t, err)
	require.Len(t, items, 1)
	assert.Equal(t, "v1", items[0].VariantID)
	assert.Equal(t, 2, items[0].Quantity)
	assert.True(t, items[0].UnitPrice.Equal(decimal.RequireFromString("45.00")))
}

func TestCartStorage_FindMissingCart(t *testing.T) {
	storage, _ := setupTestStorage(t)

	_, err := storage.FindCart(context.Background(), uuid.New())
	assert.ErrorIs(t, err, repository.ErrCartNotFound)
}

func TestCartStorage_SaveEmptyCartIsReadable(t *testing.T) {
	storage, _ := setupTestStorage(t)
	ctx := context.Background()
	customerID := uuid.New()

	require.NoError(t, storage.SaveCart(ctx, customerID, nil))

	items, err := storage.FindCart(ctx, customerID)
	require.NoError(t, err)
	assert.Empty(t, items)
}

func TestCartStorage_Delete(t *testing.T) {
	storage, _ := setupTestStorage(t)
	ctx := context.Background()
	customerID := uuid.New()

	require.NoError(t, storage.SaveCart(ctx, customerID, testItems()))
	require.NoError(t, storage.DeleteCart(ctx, customerID))

	_, err := storage.FindCart(ctx, customerID)
	assert.ErrorIs(t, err, repository.ErrCartNotFound)

	// Deleting an absent cart is not an error.
	assert.NoError(t, storage.DeleteCart(ctx, customerID))
}

func TestCartStorage_CorruptPayload(t *testing.T) {
	storage, mr := setupTestStorage(t)
	customerID := uuid.New()

	require.NoError(t, mr.Set("cart:"+customerID.String(), "{not json"))

	_, err := storage.FindCart(context.Background(), customerID)
	assert.Error(t, err)
}

func TestCartStorage_KeysAreScopedByCustomer(t *testing.T) {
	storage, _ := setupTestStorage(t)
	ctx := context.Background()
	first := uuid.New()
	second := uuid.New()

	require.NoError(t, storage.SaveCart(ctx, first, testItems()))

	_, err := storage.FindCart(ctx, second)
	assert.ErrorIs(t, err, repository.ErrCartNotFound)

	items, err := storage.FindCart(ctx, first)
	require.NoError(t, err)
	raw, err := json.Marshal(items)
	require.NoError(t, err)
	assert.Contains(t, string(raw), "Robe longue fleurie")
}
