package tips

import (
	"context"
	"fmt"

	"gorm.io/gorm"
)

// WarmStatements runs each hot query once so the connection's prepared
// statement cache is populated before traffic arrives. Preparation itself
// is GORM's job (the store opens with PrepareStmt enabled); warming only
// moves the first-use cost off the request path.
func WarmStatements(ctx context.Context, db *gorm.DB) error {
	if _, err := CountOrders(ctx, db, ""); err != nil {
		return fmt.Errorf("warm count: %w", err)
	}
	if _, err := ListOrderSummaries(ctx, db, 1); err != nil {
		return fmt.Errorf("warm summary list: %w", err)
	}
	if _, err := HasOrders(ctx, db, 0); err != nil {
		return fmt.Errorf("warm existence probe: %w", err)
	}
	return nil
}
