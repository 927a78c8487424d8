package repositories

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// findOne loads the first row matching the condition into dest. A missing row
// is reported as (false, nil).
func findOne(ctx context.Context, db *gorm.DB, dest interface{}, query string, args ...interface{}) (bool, error) {
	err := db.WithContext(ctx).Where(query, args...).First(dest).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return false, nil
	}
	if err != nil {
		return false, err
	}
	return true, nil
}

// lockOne is findOne with SELECT ... FOR UPDATE, for use inside a transaction.
func lockOne(tx *gorm.DB, dest interface{}, query string, args ...interface{}) (bool, error) {
	err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).Where(query, args...).First(dest).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return false, nil
	}
	if err != nil {
		return false, err
	}
	return true, nil
}

func exists(ctx context.Context, db *gorm.DB, model interface{}, query string, args ...interface{}) (bool, error) {
	var count int64
	if err := db.WithContext(ctx).Model(model).Where(query, args...).Count(&count).Error; err != nil {
		return false, err
	}
	return count > 0, nil
}

// deactivate flips is_active off. It reports false when no row has that id.
func deactivate(ctx context.Context, db *gorm.DB, model interface{}, id string) (bool, error) {
	result := db.WithContext(ctx).Model(model).Where("id = ?", id).Update("is_active", false)
	if result.Error != nil {
		return false, fmt.Errorf("failed to deactivate record: %w", result.Error)
	}
	return result.RowsAffected > 0, nil
}

func countActive(ctx context.Context, db *gorm.DB, model interface{}) (int64, error) {
	var count int64
	err := db.WithContext(ctx).Model(model).Where("is_active = ?", true).Count(&count).Error
	return count, err
}
