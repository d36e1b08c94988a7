package cartstore_test

import (
	"testing"
	"time"

	"grocery/internal/adapters/out/redis/cartstore"
	"grocery/internal/core/domain/model/cart"
	"grocery/internal/pkg/errs"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setupStore(t *testing.T) (*cartstore.RedisCartStore, *miniredis.Miniredis) {
	t.Helper()

	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() {
		_ = client.Close()
	})

	store, err := cartstore.NewRedisCartStore(client, time.Hour)
	require.NoError(t, err)
	return store, mr
}

func Test_NewRedisCartStore_RequiresClient(t *testing.T) {
	store, err := cartstore.NewRedisCartStore(nil, time.Hour)

	assert.Nil(t, store)
	assert.ErrorIs(t, err, errs.ErrValueIsRequired)
}

func Test_RedisCartStore_Load_AbsentCart_ReturnsFreshEmptyCart(t *testing.T) {
	store, _ := setupStore(t)

	loaded, err := store.Load(t.Context(), "cust-1")

	require.NoError(t, err)
	assert.Equal(t, "cust-1", loaded.CustomerID())
	assert.True(t, loaded.IsEmpty())
}

func Test_RedisCartStore_SaveThenLoad_RoundTripsLines(t *testing.T) {
	store, _ := setupStore(t)
	ctx := t.Context()

	aggregate, err := cart.NewCart("cust-1")
	require.NoError(t, err)

	milk, err := cart.NewItem("prod-1", "Oat Milk", 3.49, "milk.png", 2)
	require.NoError(t, err)
	aggregate.Add(milk)

	require.NoError(t, store.Save(ctx, aggregate))

	loaded, err := store.Load(ctx, "cust-1")
	require.NoError(t, err)

	require.Len(t, loaded.Snapshot(), 1)
	line := loaded.Snapshot()[0]
	assert.Equal(t, "prod-1", line.ProductID())
	assert.Equal(t, "Oat Milk", line.Name())
	assert.InDelta(t, 3.49, line.UnitPrice(), 0.001)
	assert.Equal(t, "milk.png", line.ImageRef())
	assert.Equal(t, 2, line.Quantity())
	assert.InDelta(t, 6.98, loaded.Total(), 0.001)
}

func Test_RedisCartStore_Save_ReplacesStoredCopy(t *testing.T) {
	store, _ := setupStore(t)
	ctx := t.Context()

	aggregate, err := cart.NewCart("cust-1")
	require.NoError(t, err)
	milk, err := cart.NewItem("prod-1", "Oat Milk", 3.49, "", 1)
	require.NoError(t, err)
	aggregate.Add(milk)
	require.NoError(t, store.Save(ctx, aggregate))

	aggregate.Remove("prod-1")
	require.NoError(t, store.Save(ctx, aggregate))

	loaded, err := store.Load(ctx, "cust-1")
	require.NoError(t, err)
	assert.True(t, loaded.IsEmpty())
}

func Test_RedisCartStore_Clear_DropsCart(t *testing.T) {
	store, mr := setupStore(t)
	ctx := t.Context()

	aggregate, err := cart.NewCart("cust-1")
	require.NoError(t, err)
	milk, err := cart.NewItem("prod-1", "Oat Milk", 3.49, "", 1)
	require.NoError(t, err)
	aggregate.Add(milk)
	require.NoError(t, store.Save(ctx, aggregate))

	require.NoError(t, store.Clear(ctx, "cust-1"))

	assert.False(t, mr.Exists("cart:cust-1"))

	loaded, err := store.Load(ctx, "cust-1")
	require.NoError(t, err)
	assert.True(t, loaded.IsEmpty())
}

func Test_RedisCartStore_Clear_AbsentCart_IsNoError(t *testing.T) {
	store, _ := setupStore(t)

	assert.NoError(t, store.Clear(t.Context(), "cust-1"))
}

func Test_RedisCartStore_Save_SetsExpiry(t *testing.T) {
	store, mr := setupStore(t)
	ctx := t.Context()

	aggregate, err := cart.NewCart("cust-1")
	require.NoError(t, err)
	require.NoError(t, store.Save(ctx, aggregate))

	mr.FastForward(2 * time.Hour)

	loaded, err := store.Load(ctx, "cust-1")
	require.NoError(t, err)
	assert.True(t, loaded.IsEmpty())
	assert.False(t, mr.Exists("cart:cust-1"))
}
