package tips

import (
	"context"
	"fmt"

	"gorm.io/gorm"

	"github.com/thebtf/gormguide/pkg/models"
)

// MaxPageSize caps the limit a caller can request in one page.
const MaxPageSize = 100

// Page is a limit/offset window for listing operations.
type Page struct {
	Limit  int
	Offset int
}

// PageResult carries one page of items and the total count matching the
// query, so clients can render pagination without an extra round trip.
type PageResult[T any] struct {
	Items []T
	Total int64
}

// ListOrders returns one bounded page of order summaries. The limit is
// clamped to MaxPageSize; an unset limit gets a sane default rather than
// materializing the whole table.
func ListOrders(ctx context.Context, db *gorm.DB, page Page) (PageResult[models.OrderSummary], error) {
	var result PageResult[models.OrderSummary]

	limit := page.Limit
	if limit <= 0 {
		limit = 20
	}
	if limit > MaxPageSize {
		limit = MaxPageSize
	}
	offset := page.Offset
	if offset < 0 {
		offset = 0
	}

	if err := db.WithContext(ctx).Model(&models.Order{}).Count(&result.Total).Error; err != nil {
		return PageResult[models.OrderSummary]{}, fmt.Errorf("count orders: %w", err)
	}

	err := db.WithContext(ctx).
		Model(&models.Order{}).
		Select("id", "reference", "status", "total").
		Order("id").
		Limit(limit).
		Offset(offset).
		Find(&result.Items).Error
	if err != nil {
		return PageResult[models.OrderSummary]{}, fmt.Errorf("list orders page: %w", err)
	}
	return result, nil
}
