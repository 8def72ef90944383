package tips

import (
	"context"
	"errors"
	"fmt"
	"time"

	"gorm.io/gorm"

	"github.com/thebtf/gormguide/pkg/models"
)

// Sentinel errors for interrupted queries. Callers branch with errors.Is
// instead of matching on context error strings.
var (
	ErrQueryTimeout  = errors.New("query deadline exceeded")
	ErrQueryCanceled = errors.New("query canceled")
)

// ListOrdersWithDeadline runs the order listing under its own deadline.
// The context flows through WithContext into the driver, so a slow query is
// abandoned server-side instead of holding a pool connection hostage.
func ListOrdersWithDeadline(ctx context.Context, db *gorm.DB, timeout time.Duration) ([]models.OrderSummary, error) {
	queryCtx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	var summaries []models.OrderSummary
	err := db.WithContext(queryCtx).
		Model(&models.Order{}).
		Select("id", "reference", "status", "total").
		Order("id").
		Find(&summaries).Error
	if err != nil {
		return nil, wrapInterrupted(err)
	}
	return summaries, nil
}

// wrapInterrupted maps context errors onto the package sentinels and wraps
// everything else untouched.
func wrapInterrupted(err error) error {
	switch {
	case errors.Is(err, context.DeadlineExceeded):
		return fmt.Errorf("%w: %v", ErrQueryTimeout, err)
	case errors.Is(err, context.Canceled):
		return fmt.Errorf("%w: %v", ErrQueryCanceled, err)
	default:
		return fmt.Errorf("list orders: %w", err)
	}
}
