package repository

import (
	"context"
	"fmt"

	"gorm.io/gorm"

	"github.com/adagency-io/adagency/internal/shared/db"
)

// exists reports whether a row with the given primary key is present in the
// table of model.
func exists(ctx context.Context, gdb *gorm.DB, model any, id uint) (bool, error) {
	var count int64
	if err := db.GetTxFromContext(ctx, gdb).Model(model).Where("id = ?", id).Count(&count).Error; err != nil {
		return false, fmt.Errorf("failed to check existence: %w", err)
	}
	return count > 0, nil
}
