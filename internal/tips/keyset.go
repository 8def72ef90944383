package tips

import (
	"context"
	"fmt"

	"gorm.io/gorm"

	"github.com/thebtf/gormguide/pkg/models"
)

// ListOrdersAfter pages through orders by keyset: rows strictly after the
// cursor, ordered by the key. Unlike a deep OFFSET, the database seeks the
// index instead of scanning and discarding every earlier row. The returned
// cursor is the last ID of the page; zero items means the end was reached.
func ListOrdersAfter(ctx context.Context, db *gorm.DB, afterID int64, limit int) ([]models.OrderSummary, int64, error) {
	if limit <= 0 || limit > MaxPageSize {
		limit = 20
	}

	var summaries []models.OrderSummary
	err := db.WithContext(ctx).
		Model(&models.Order{}).
		Select("id", "reference", "status", "total").
		Where("id > ?", afterID).
		Order("id").
		Limit(limit).
		Find(&summaries).Error
	if err != nil {
		return nil, 0, fmt.Errorf("list orders after %d: %w", afterID, err)
	}

	next := afterID
	if len(summaries) > 0 {
		next = summaries[len(summaries)-1].ID
	}
	return summaries, next, nil
}
