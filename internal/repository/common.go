package repository

import (
	"context"

	"gorm.io/gorm"
)

// updateByID applies a partial update to the row with the given id. Only the
// columns present in updates change; an empty map only checks existence.
func updateByID(ctx context.Context, db *gorm.DB, model any, id string, updates map[string]any) error {
	if len(updates) == 0 {
		var count int64
		if err := db.WithContext(ctx).Model(model).Where("id = ?", id).Count(&count).Error; err != nil {
			return translate(err, opRead)
		}
		if count == 0 {
			return ErrNotFound
		}
		return nil
	}

	res := db.WithContext(ctx).Model(model).Where("id = ?", id).Updates(updates)
	if res.Error != nil {
		return translate(res.Error, opWrite)
	}
	if res.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

func deleteByID(ctx context.Context, db *gorm.DB, model any, id string) error {
	res := db.WithContext(ctx).Where("id = ?", id).Delete(model)
	if res.Error != nil {
		return translate(res.Error, opDelete)
	}
	if res.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}
