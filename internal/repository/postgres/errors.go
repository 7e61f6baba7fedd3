package postgres

import (
	"errors"
	"fmt"

	"saasStackAnalyzer/domain"

	"gorm.io/gorm"
)

// translate maps gorm sentinel errors onto domain errors and wraps the rest
func translate(op string, err error) error {
	switch {
	case errors.Is(err, gorm.ErrRecordNotFound):
		return domain.ErrNotFound
	case errors.Is(err, gorm.ErrDuplicatedKey):
		return domain.ErrConflict
	default:
		return fmt.Errorf("failed to %s: %w", op, err)
	}
}

func applyPage(db *gorm.DB, params domain.ListParams) *gorm.DB {
	params = params.Normalize()
	return db.Limit(params.Limit).Offset(params.Offset)
}
