package tips

import (
	"context"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/thebtf/gormguide/pkg/models"
)

func makeOrders(n int, customerID int64, prefix string) []models.Order {
	orders := make([]models.Order, n)
	for i := range orders {
		orders[i] = models.Order{
			Reference:  fmt.Sprintf("%s-%04d", prefix, i+1),
			CustomerID: customerID,
			Total:      1,
		}
	}
	return orders
}

func TestInsertOrdersOneByOne_StatementPerRow(t *testing.T) {
	store := testShop(t)

	var customer models.Customer
	require.NoError(t, store.DB.First(&customer).Error)
	store.Counter().Reset()

	orders := makeOrders(10, customer.ID, "ONE")
	require.NoError(t, InsertOrdersOneByOne(context.Background(), store.DB, orders))

	assert.Equal(t, int64(10), store.Counter().Queries())
}

func TestInsertOrders_BatchedStatements(t *testing.T) {
	store := testShop(t)

	var customer models.Customer
	require.NoError(t, store.DB.First(&customer).Error)
	store.Counter().Reset()

	orders := makeOrders(250, customer.ID, "BATCH")
	require.NoError(t, InsertOrders(context.Background(), store.DB, orders))

	// 250 rows at batch size 100: three INSERT statements.
	assert.Equal(t, int64(3), store.Counter().Queries())

	count, err := CountOrders(context.Background(), store.DB, "")
	require.NoError(t, err)
	assert.Equal(t, int64(255), count)
}

func TestInsertOrders_Empty(t *testing.T) {
	store := testShop(t)
	require.NoError(t, InsertOrders(context.Background(), store.DB, nil))
	assert.Zero(t, store.Counter().Queries())
}

func TestOrdersByIDs_SingleStatement(t *testing.T) {
	store := testShop(t)
	ids := seededOrderIDs(t, store)
	store.Counter().Reset()

	looped, err := OrdersByIDsLooped(context.Background(), store.DB, ids)
	require.NoError(t, err)
	assert.Equal(t, int64(len(ids)), store.Counter().Queries())

	store.Counter().Reset()
	batched, err := OrdersByIDs(context.Background(), store.DB, ids)
	require.NoError(t, err)
	assert.Equal(t, int64(1), store.Counter().Queries())

	// Same rows either way.
	require.Len(t, batched, len(looped))
	for i := range looped {
		assert.Equal(t, looped[i].ID, batched[i].ID)
		assert.Equal(t, looped[i].Reference, batched[i].Reference)
	}

	empty, err := OrdersByIDs(context.Background(), store.DB, nil)
	require.NoError(t, err)
	assert.Nil(t, empty)
}
