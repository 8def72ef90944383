package tips

import (
	"context"
	"fmt"

	"gorm.io/gorm"

	"github.com/thebtf/gormguide/pkg/models"
)

// ItemsPerOrderLooped fetches each order's items with a separate query.
// Loading N orders costs N+1 round trips; this is the anti-pattern the
// N+1 tip exists for.
func ItemsPerOrderLooped(ctx context.Context, db *gorm.DB) (map[int64][]models.OrderItem, error) {
	var orders []models.Order
	if err := db.WithContext(ctx).Find(&orders).Error; err != nil {
		return nil, fmt.Errorf("load orders: %w", err)
	}

	items := make(map[int64][]models.OrderItem, len(orders))
	for _, order := range orders {
		var lines []models.OrderItem
		err := db.WithContext(ctx).
			Where("order_id = ?", order.ID).
			Find(&lines).Error
		if err != nil {
			return nil, fmt.Errorf("load items for order %d: %w", order.ID, err)
		}
		items[order.ID] = lines
	}
	return items, nil
}

// OrdersWithItems loads orders and their items in two statements total:
// one for the orders, one batched IN query for every order's items.
func OrdersWithItems(ctx context.Context, db *gorm.DB) ([]models.Order, error) {
	var orders []models.Order
	err := db.WithContext(ctx).
		Preload("Items").
		Find(&orders).Error
	if err != nil {
		return nil, fmt.Errorf("load orders with items: %w", err)
	}
	return orders, nil
}

// OrdersWithCustomerJoined loads orders with their customer in a single
// joined statement. Joins suits to-one associations; Preload suits to-many.
func OrdersWithCustomerJoined(ctx context.Context, db *gorm.DB) ([]models.Order, error) {
	var orders []models.Order
	err := db.WithContext(ctx).
		Joins("Customer").
		Find(&orders).Error
	if err != nil {
		return nil, fmt.Errorf("load orders with customer: %w", err)
	}
	return orders, nil
}
