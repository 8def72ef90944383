package tips

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/thebtf/gormguide/pkg/models"
)

func TestCountOrders(t *testing.T) {
	store := testShop(t)
	ctx := context.Background()

	total, err := CountOrders(ctx, store.DB, "")
	require.NoError(t, err)
	assert.Equal(t, int64(5), total)

	paid, err := CountOrders(ctx, store.DB, models.StatusPaid)
	require.NoError(t, err)
	assert.Equal(t, int64(5), paid)

	shipped, err := CountOrders(ctx, store.DB, models.StatusShipped)
	require.NoError(t, err)
	assert.Zero(t, shipped)

	assert.Equal(t, int64(3), store.Counter().Queries())
}

func TestHasOrders(t *testing.T) {
	store := testShop(t)
	ctx := context.Background()

	var customer models.Customer
	require.NoError(t, store.DB.First(&customer).Error)
	store.Counter().Reset()

	has, err := HasOrders(ctx, store.DB, customer.ID)
	require.NoError(t, err)
	assert.True(t, has)

	none, err := HasOrders(ctx, store.DB, 999999)
	require.NoError(t, err)
	assert.False(t, none)

	// Existence probes are one LIMIT 1 statement each.
	assert.Equal(t, int64(2), store.Counter().Queries())
}

func TestWarmStatements(t *testing.T) {
	store := testShop(t)

	require.NoError(t, WarmStatements(context.Background(), store.DB))
	assert.Equal(t, int64(3), store.Counter().Queries())
}
