// Package tips contains the code behind every pattern the performance guide
// recommends, and the discouraged counterparts it warns against. Keeping
// both in compiled, tested form is what stops the guide's snippets from
// drifting away from what the library actually does.
package tips

import (
	"context"
	"fmt"

	"gorm.io/gorm"

	"github.com/thebtf/gormguide/pkg/models"
)

// AllOrderColumns loads full Order entities for a list view. This is the
// over-fetching pattern the projection tip discourages: every column of
// every row crosses the wire even though the view renders four of them.
func AllOrderColumns(ctx context.Context, db *gorm.DB, limit int) ([]models.Order, error) {
	var orders []models.Order
	err := db.WithContext(ctx).
		Order("created_at_epoch DESC").
		Limit(limit).
		Find(&orders).Error
	if err != nil {
		return nil, fmt.Errorf("load orders: %w", err)
	}
	return orders, nil
}

// ListOrderSummaries loads only the columns the list view needs.
func ListOrderSummaries(ctx context.Context, db *gorm.DB, limit int) ([]models.OrderSummary, error) {
	var summaries []models.OrderSummary
	err := db.WithContext(ctx).
		Model(&models.Order{}).
		Select("id", "reference", "status", "total").
		Order("created_at_epoch DESC").
		Limit(limit).
		Find(&summaries).Error
	if err != nil {
		return nil, fmt.Errorf("list order summaries: %w", err)
	}
	return summaries, nil
}

// OrderReferences projects a single column straight into a string slice.
func OrderReferences(ctx context.Context, db *gorm.DB) ([]string, error) {
	var refs []string
	err := db.WithContext(ctx).
		Model(&models.Order{}).
		Order("id").
		Pluck("reference", &refs).Error
	if err != nil {
		return nil, fmt.Errorf("pluck order references: %w", err)
	}
	return refs, nil
}
