package repository

import (
	"context"
	"fmt"

	"zumpfinanc/internal/models"

	"gorm.io/gorm"
)

type GormEntryRepository struct {
	DB *gorm.DB
}

func NewEntryRepository(db *gorm.DB) *GormEntryRepository {
	return &GormEntryRepository{DB: db}
}

func (r *GormEntryRepository) Save(ctx context.Context, e *models.Entry) error {
	db := r.DB.WithContext(ctx)
	if e.ID == 0 {
		if err := db.Omit("User").Create(e).Error; err != nil {
			return fmt.Errorf("create entry: %w", err)
		}
		return nil
	}

	// an update never re-inserts a row deleted in the meantime
	res := db.Model(e).Select("*").Omit("User", "CreatedAt").Updates(e)
	if res.Error != nil {
		return fmt.Errorf("update entry %d: %w", e.ID, res.Error)
	}
	if res.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

func (r *GormEntryRepository) Delete(ctx context.Context, e *models.Entry) error {
	if err := r.DB.WithContext(ctx).Delete(&models.Entry{}, e.ID).Error; err != nil {
		return fmt.Errorf("delete entry: %w", err)
	}
	return nil
}

func (r *GormEntryRepository) FindByID(ctx context.Context, id uint) (*models.Entry, error) {
	var entry models.Entry
	if err := r.DB.WithContext(ctx).First(&entry, id).Error; err != nil {
		return nil, lookupErr("find entry", err)
	}
	return &entry, nil
}

func (r *GormEntryRepository) FindAll(ctx context.Context, f EntryFilter) ([]models.Entry, error) {
	var entries []models.Entry
	if err := applyFilter(r.DB.WithContext(ctx).Model(&models.Entry{}), f).
		Order("id ASC").
		Find(&entries).Error; err != nil {
		return nil, fmt.Errorf("find entries: %w", err)
	}
	return entries, nil
}

func applyFilter(q *gorm.DB, f EntryFilter) *gorm.DB {
	if f.Description != nil {
		q = q.Where("description = ?", *f.Description)
	}
	if f.Month != nil {
		q = q.Where("month = ?", *f.Month)
	}
	if f.Year != nil {
		q = q.Where("year = ?", *f.Year)
	}
	if f.UserID != nil {
		q = q.Where("user_id = ?", *f.UserID)
	}
	if f.Type != nil {
		q = q.Where("type = ?", *f.Type)
	}
	if f.Status != nil {
		q = q.Where("status = ?", *f.Status)
	}
	return q
}
