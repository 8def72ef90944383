package tips

import (
	"context"
	"fmt"

	"gorm.io/gorm"

	"github.com/thebtf/gormguide/pkg/models"
)

// insertBatchSize is how many rows go into one multi-row INSERT.
const insertBatchSize = 100

// InsertOrdersOneByOne issues one INSERT per order. With hundreds of rows
// the per-statement round trip dominates; this is the discouraged pattern.
func InsertOrdersOneByOne(ctx context.Context, db *gorm.DB, orders []models.Order) error {
	for i := range orders {
		if err := db.WithContext(ctx).Create(&orders[i]).Error; err != nil {
			return fmt.Errorf("insert order %s: %w", orders[i].Reference, err)
		}
	}
	return nil
}

// InsertOrders writes the orders in multi-row batches inside a single
// transaction: len(orders)/insertBatchSize statements instead of one each.
func InsertOrders(ctx context.Context, db *gorm.DB, orders []models.Order) error {
	if len(orders) == 0 {
		return nil
	}
	err := db.WithContext(ctx).CreateInBatches(orders, insertBatchSize).Error
	if err != nil {
		return fmt.Errorf("insert %d orders: %w", len(orders), err)
	}
	return nil
}

// OrdersByIDsLooped resolves each ID with its own query, the read-side twin
// of row-at-a-time inserts.
func OrdersByIDsLooped(ctx context.Context, db *gorm.DB, ids []int64) ([]models.Order, error) {
	orders := make([]models.Order, 0, len(ids))
	for _, id := range ids {
		var order models.Order
		err := db.WithContext(ctx).First(&order, id).Error
		if err != nil {
			return nil, fmt.Errorf("load order %d: %w", id, err)
		}
		orders = append(orders, order)
	}
	return orders, nil
}

// OrdersByIDs resolves every ID with a single IN query.
func OrdersByIDs(ctx context.Context, db *gorm.DB, ids []int64) ([]models.Order, error) {
	if len(ids) == 0 {
		return nil, nil
	}
	var orders []models.Order
	if err := db.WithContext(ctx).Find(&orders, ids).Error; err != nil {
		return nil, fmt.Errorf("load orders by ids: %w", err)
	}
	return orders, nil
}
