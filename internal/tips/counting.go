package tips

import (
	"context"
	"fmt"

	"gorm.io/gorm"

	"github.com/thebtf/gormguide/pkg/models"
)

// CountOrders counts in the database. Pulling the rows back just to take
// len() of the slice materializes the whole result set for one integer.
func CountOrders(ctx context.Context, db *gorm.DB, status string) (int64, error) {
	query := db.WithContext(ctx).Model(&models.Order{})
	if status != "" {
		query = query.Where("status = ?", status)
	}
	var count int64
	if err := query.Count(&count).Error; err != nil {
		return 0, fmt.Errorf("count orders: %w", err)
	}
	return count, nil
}

// HasOrders answers an existence question with LIMIT 1 rather than a full
// count: the database stops at the first matching row.
func HasOrders(ctx context.Context, db *gorm.DB, customerID int64) (bool, error) {
	var ids []int64
	err := db.WithContext(ctx).
		Model(&models.Order{}).
		Where("customer_id = ?", customerID).
		Limit(1).
		Pluck("id", &ids).Error
	if err != nil {
		return false, fmt.Errorf("check orders for customer %d: %w", customerID, err)
	}
	return len(ids) > 0, nil
}
