package tips

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestListOrdersWithDeadline_Succeeds(t *testing.T) {
	store := testShop(t)

	summaries, err := ListOrdersWithDeadline(context.Background(), store.DB, 5*time.Second)
	require.NoError(t, err)
	assert.Len(t, summaries, 5)
}

func TestListOrdersWithDeadline_Expired(t *testing.T) {
	store := testShop(t)

	// A deadline in the past fails before the driver runs the query.
	_, err := ListOrdersWithDeadline(context.Background(), store.DB, -time.Second)
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrQueryTimeout)
	assert.NotErrorIs(t, err, ErrQueryCanceled)
}

func TestListOrdersWithDeadline_CanceledCaller(t *testing.T) {
	store := testShop(t)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := ListOrdersWithDeadline(ctx, store.DB, 5*time.Second)
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrQueryCanceled)
}
