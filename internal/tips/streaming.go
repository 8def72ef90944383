package tips

import (
	"context"
	"fmt"

	"gorm.io/gorm"

	"github.com/thebtf/gormguide/pkg/models"
)

// defaultBatchSize bounds how many rows FindInBatches holds at once.
const defaultBatchSize = 500

// SumTotalsInBatches aggregates over every order while keeping at most one
// batch of rows in memory. The unbounded alternative, Find into a slice of
// the whole table, is what the streaming tip warns against.
func SumTotalsInBatches(ctx context.Context, db *gorm.DB, batchSize int) (float64, error) {
	if batchSize <= 0 {
		batchSize = defaultBatchSize
	}

	var sum float64
	var batch []models.OrderSummary
	result := db.WithContext(ctx).
		Model(&models.Order{}).
		Select("id", "reference", "status", "total").
		FindInBatches(&batch, batchSize, func(tx *gorm.DB, _ int) error {
			for _, o := range batch {
				sum += o.Total
			}
			return nil
		})
	if result.Error != nil {
		return 0, fmt.Errorf("sum totals in batches: %w", result.Error)
	}
	return sum, nil
}

// StreamOrderRows walks the result set row by row through a database
// cursor, handing each projected row to fn. Materialization is bounded by
// a single row; fn returning an error stops the walk.
func StreamOrderRows(ctx context.Context, db *gorm.DB, fn func(models.OrderSummary) error) error {
	rows, err := db.WithContext(ctx).
		Model(&models.Order{}).
		Select("id", "reference", "status", "total").
		Order("id").
		Rows()
	if err != nil {
		return fmt.Errorf("open order rows: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		var summary models.OrderSummary
		if err := db.ScanRows(rows, &summary); err != nil {
			return fmt.Errorf("scan order row: %w", err)
		}
		if err := fn(summary); err != nil {
			return err
		}
	}
	if err := rows.Err(); err != nil {
		return fmt.Errorf("iterate order rows: %w", err)
	}
	return nil
}
