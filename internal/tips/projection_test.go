package tips

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestListOrderSummaries(t *testing.T) {
	store := testShop(t)
	ctx := context.Background()

	summaries, err := ListOrderSummaries(ctx, store.DB, 3)
	require.NoError(t, err)
	require.Len(t, summaries, 3)

	for _, s := range summaries {
		assert.NotZero(t, s.ID)
		assert.NotEmpty(t, s.Reference)
		assert.NotEmpty(t, s.Status)
	}
	assert.Equal(t, int64(1), store.Counter().Queries())
}

func TestListOrderSummaries_MatchesFullLoad(t *testing.T) {
	store := testShop(t)
	ctx := context.Background()

	full, err := AllOrderColumns(ctx, store.DB, 50)
	require.NoError(t, err)
	narrow, err := ListOrderSummaries(ctx, store.DB, 50)
	require.NoError(t, err)

	// Projection changes the shape, not the rows.
	require.Len(t, narrow, len(full))
	for i := range full {
		assert.Equal(t, full[i].ID, narrow[i].ID)
		assert.Equal(t, full[i].Reference, narrow[i].Reference)
		assert.Equal(t, full[i].Total, narrow[i].Total)
	}
}

func TestOrderReferences(t *testing.T) {
	store := testShop(t)

	refs, err := OrderReferences(context.Background(), store.DB)
	require.NoError(t, err)
	assert.Equal(t, []string{"ORD-001", "ORD-002", "ORD-003", "ORD-004", "ORD-005"}, refs)
}
