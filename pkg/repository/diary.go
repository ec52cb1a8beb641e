package repository

import (
	"context"
	"errors"
	"fmt"

	"go.uber.org/zap"
	"gorm.io/gorm"

	"droscher.com/RestaurantRandomizer/pkg/model"
)

var ErrDiaryEntryNotFound = errors.New("diary entry not found")

type DiaryRepository interface {
	AddDiaryEntry(ctx context.Context, entry model.DiaryEntry) (*model.DiaryEntry, error)
	DeleteDiaryEntry(ctx context.Context, entryID uint) error
	ListDiaryEntries(ctx context.Context) ([]*model.DiaryEntry, error)
	ListDiaryEntriesForRestaurant(ctx context.Context, restaurantID uint) ([]*model.DiaryEntry, error)
}

func (r *Repository) AddDiaryEntry(ctx context.Context, entry model.DiaryEntry) (*model.DiaryEntry, error) {
	if result := r.DB.WithContext(ctx).Omit("Restaurant").Create(&entry); result.Error != nil {
		if errors.Is(result.Error, gorm.ErrForeignKeyViolated) && entry.RestaurantID != nil {
			return nil, fmt.Errorf("%w: %d", ErrRestaurantNotFound, *entry.RestaurantID)
		}

		r.Logger.Error("error adding diary entry", zap.String("restaurant_name", entry.RestaurantName), zap.Error(result.Error))

		return nil, result.Error
	}

	return &entry, nil
}

func (r *Repository) ListDiaryEntries(ctx context.Context) ([]*model.DiaryEntry, error) {
	var entries []*model.DiaryEntry

	result := r.DB.WithContext(ctx).Order("visit_date DESC").Order("created_at DESC").Find(&entries)
	if result.Error != nil {
		return nil, result.Error
	}

	return entries, nil
}

func (r *Repository) ListDiaryEntriesForRestaurant(ctx context.Context, restaurantID uint) ([]*model.DiaryEntry, error) {
	var entries []*model.DiaryEntry

	result := r.DB.WithContext(ctx).
		Where("restaurant_id = ?", restaurantID).
		Order("visit_date DESC").
		Order("created_at DESC").
		Find(&entries)
	if result.Error != nil {
		return nil, result.Error
	}

	return entries, nil
}

func (r *Repository) DeleteDiaryEntry(ctx context.Context, entryID uint) error {
	result := r.DB.WithContext(ctx).Delete(&model.DiaryEntry{}, entryID)
	if result.Error != nil {
		return result.Error
	}

	if result.RowsAffected == 0 {
		return fmt.Errorf("%w: %d", ErrDiaryEntryNotFound, entryID)
	}

	return nil
}
