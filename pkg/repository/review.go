package repository

import (
	"context"

	"gorm.io/gorm"

	"droscher.com/RestaurantRandomizer/pkg/model"
)

type ReviewRepository interface {
	GetCachedReviews(ctx context.Context, restaurantID uint) ([]*model.Review, error)
	ReplaceCachedReviews(ctx context.Context, restaurantID uint, source string, reviews []model.Review) error
}

func (r *Repository) GetCachedReviews(ctx context.Context, restaurantID uint) ([]*model.Review, error) {
	var reviews []*model.Review

	result := r.DB.WithContext(ctx).
		Where("restaurant_id = ?", restaurantID).
		Order("source").
		Order("id").
		Find(&reviews)
	if result.Error != nil {
		return nil, result.Error
	}

	return reviews, nil
}

// ReplaceCachedReviews swaps the cached reviews of one source for a
// restaurant with a fresh set.
func (r *Repository) ReplaceCachedReviews(ctx context.Context, restaurantID uint, source string, reviews []model.Review) error {
	return r.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		result := tx.Where("restaurant_id = ? AND source = ?", restaurantID, source).Delete(&model.Review{})
		if result.Error != nil {
			return result.Error
		}

		if len(reviews) == 0 {
			return nil
		}

		rows := make([]model.Review, len(reviews))
		for i, review := range reviews {
			review.ID = 0
			review.RestaurantID = &restaurantID
			review.Source = source
			rows[i] = review
		}

		return tx.Omit("Restaurant").Create(&rows).Error
	})
}
