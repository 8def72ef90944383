package tips

import (
	"fmt"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
	"gorm.io/gorm/logger"

	"github.com/thebtf/gormguide/internal/db"
	"github.com/thebtf/gormguide/pkg/models"
)

// testShop opens a temporary SQLite store seeded with three customers and
// five orders (two line items each), then resets the statement counter so
// tests measure only their own queries.
func testShop(t *testing.T) *db.Store {
	t.Helper()

	store, err := db.Open(db.Config{
		Path:     filepath.Join(t.TempDir(), "shop.db"),
		MaxConns: 4,
		LogLevel: logger.Silent,
	})
	require.NoError(t, err)
	t.Cleanup(func() { store.Close() })

	customers := make([]models.Customer, 3)
	for i := range customers {
		customers[i] = models.Customer{
			Name:  fmt.Sprintf("Customer %d", i+1),
			Email: fmt.Sprintf("customer%d@example.com", i+1),
		}
	}
	require.NoError(t, store.DB.Create(&customers).Error)

	for i := 0; i < 5; i++ {
		order := models.Order{
			Reference:  fmt.Sprintf("ORD-%03d", i+1),
			CustomerID: customers[i%len(customers)].ID,
			Status:     models.StatusPaid,
			Total:      float64((i + 1) * 10),
			// Distinct epochs keep created_at_epoch ordering deterministic.
			CreatedAtEpoch: int64((i + 1) * 1000),
			Items: []models.OrderItem{
				{SKU: fmt.Sprintf("SKU-%d-A", i+1), Quantity: 1, UnitPrice: float64((i + 1) * 4)},
				{SKU: fmt.Sprintf("SKU-%d-B", i+1), Quantity: 2, UnitPrice: float64((i + 1) * 3)},
			},
		}
		require.NoError(t, store.DB.Create(&order).Error)
	}

	store.Counter().Reset()
	return store
}

// seededOrderIDs returns the IDs of the seeded orders in insertion order.
func seededOrderIDs(t *testing.T, store *db.Store) []int64 {
	t.Helper()
	var ids []int64
	require.NoError(t, store.DB.Model(&models.Order{}).Order("id").Pluck("id", &ids).Error)
	return ids
}
