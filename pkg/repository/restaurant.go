package repository

import (
	"context"
	"errors"
	"fmt"

	"go.uber.org/zap"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"droscher.com/RestaurantRandomizer/pkg/model"
)

var (
	ErrRestaurantNotFound  = errors.New("restaurant not found")
	ErrDuplicateRestaurant = errors.New("restaurant already exists")
)

type RestaurantRepository interface { //nolint:interfacebloat // this is an acceptable interface
	AddRestaurant(ctx context.Context, restaurant model.Restaurant) (*model.Restaurant, error)
	CountRestaurants(ctx context.Context) (int64, error)
	DeleteRestaurant(ctx context.Context, restaurantID uint) error
	DistinctAreas(ctx context.Context, regions []string) ([]string, error)
	DistinctCuisines(ctx context.Context, regions []string, areas []string) ([]string, error)
	DistinctRegions(ctx context.Context) ([]string, error)
	FindRestaurantByNameAndRegion(ctx context.Context, name string, region string) (*model.Restaurant, error)
	GetRestaurantByID(ctx context.Context, restaurantID uint) (*model.Restaurant, error)
	ListFilteredRestaurants(ctx context.Context, filter model.RestaurantFilter) ([]*model.Restaurant, error)
	ListRestaurants(ctx context.Context) ([]*model.Restaurant, error)
	SeedRestaurants(ctx context.Context, restaurants []model.Restaurant) (int64, error)
	ToggleFavorite(ctx context.Context, restaurantID uint) (*model.Restaurant, error)
}

const seedBatchSize = 100

func (r *Repository) ListRestaurants(ctx context.Context) ([]*model.Restaurant, error) {
	return r.ListFilteredRestaurants(ctx, model.RestaurantFilter{})
}

func (r *Repository) ListFilteredRestaurants(ctx context.Context, filter model.RestaurantFilter) ([]*model.Restaurant, error) {
	var restaurants []*model.Restaurant

	query := applyRestaurantFilter(r.DB.WithContext(ctx), filter)

	result := query.Order("name").Find(&restaurants)
	if result.Error != nil {
		r.Logger.Error("error listing restaurants", zap.Any("filter", filter), zap.Error(result.Error))

		return nil, result.Error
	}

	return restaurants, nil
}

func applyRestaurantFilter(query *gorm.DB, filter model.RestaurantFilter) *gorm.DB {
	if len(filter.Regions) > 0 {
		query = query.Where("county IN ?", filter.Regions)
	}

	if len(filter.Areas) > 0 {
		query = query.Where("area IN ?", filter.Areas)
	}

	if len(filter.Cuisines) > 0 {
		query = query.Where("cuisine IN ?", filter.Cuisines)
	}

	if len(filter.Prices) > 0 {
		query = query.Where("price IN ?", filter.Prices)
	}

	if filter.FavoritesOnly {
		query = query.Where("is_favorite = ?", true)
	}

	return query
}

func (r *Repository) GetRestaurantByID(ctx context.Context, restaurantID uint) (*model.Restaurant, error) {
	var restaurant model.Restaurant

	result := r.DB.WithContext(ctx).First(&restaurant, restaurantID)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("%w: %d", ErrRestaurantNotFound, restaurantID)
		}

		return nil, result.Error
	}

	return &restaurant, nil
}

func (r *Repository) FindRestaurantByNameAndRegion(ctx context.Context, name string, region string) (*model.Restaurant, error) {
	var restaurant model.Restaurant

	result := r.DB.WithContext(ctx).
		Where("LOWER(name) = LOWER(?) AND county = ?", name, region).
		First(&restaurant)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("%w: %s in %s", ErrRestaurantNotFound, name, region)
		}

		return nil, result.Error
	}

	return &restaurant, nil
}

func (r *Repository) AddRestaurant(ctx context.Context, restaurant model.Restaurant) (*model.Restaurant, error) {
	if result := r.DB.WithContext(ctx).Create(&restaurant); result.Error != nil {
		if errors.Is(result.Error, gorm.ErrDuplicatedKey) {
			return nil, fmt.Errorf("%w: %s in %s", ErrDuplicateRestaurant, restaurant.Name, restaurant.Region)
		}

		r.Logger.Error("error adding restaurant", zap.String("name", restaurant.Name), zap.Error(result.Error))

		return nil, result.Error
	}

	return &restaurant, nil
}

// SeedRestaurants inserts the given rows, skipping any that collide with an
// existing (name, region) pair, and returns how many were written.
func (r *Repository) SeedRestaurants(ctx context.Context, restaurants []model.Restaurant) (int64, error) {
	if len(restaurants) == 0 {
		return 0, nil
	}

	result := r.DB.WithContext(ctx).
		Clauses(clause.OnConflict{DoNothing: true}).
		CreateInBatches(&restaurants, seedBatchSize)
	if result.Error != nil {
		return 0, result.Error
	}

	return result.RowsAffected, nil
}

func (r *Repository) CountRestaurants(ctx context.Context) (int64, error) {
	var count int64

	result := r.DB.WithContext(ctx).Model(&model.Restaurant{}).Count(&count)

	return count, result.Error
}

// DeleteRestaurant removes the restaurant and its cached reviews. Diary
// entries are kept with their restaurant link cleared.
func (r *Repository) DeleteRestaurant(ctx context.Context, restaurantID uint) error {
	return r.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		result := tx.Model(&model.DiaryEntry{}).
			Where("restaurant_id = ?", restaurantID).
			Update("restaurant_id", nil)
		if result.Error != nil {
			return result.Error
		}

		result = tx.Where("restaurant_id = ?", restaurantID).Delete(&model.Review{})
		if result.Error != nil {
			return result.Error
		}

		result = tx.Delete(&model.Restaurant{}, restaurantID)
		if result.Error != nil {
			return result.Error
		}

		if result.RowsAffected == 0 {
			return fmt.Errorf("%w: %d", ErrRestaurantNotFound, restaurantID)
		}

		return nil
	})
}

func (r *Repository) ToggleFavorite(ctx context.Context, restaurantID uint) (*model.Restaurant, error) {
	var restaurant model.Restaurant

	err := r.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		result := tx.Model(&model.Restaurant{}).
			Where("id = ?", restaurantID).
			Update("is_favorite", gorm.Expr("NOT is_favorite"))
		if result.Error != nil {
			return result.Error
		}

		if result.RowsAffected == 0 {
			return fmt.Errorf("%w: %d", ErrRestaurantNotFound, restaurantID)
		}

		return tx.First(&restaurant, restaurantID).Error
	})
	if err != nil {
		return nil, err
	}

	return &restaurant, nil
}

func (r *Repository) DistinctRegions(ctx context.Context) ([]string, error) {
	return r.distinct(ctx, "county", model.RestaurantFilter{})
}

func (r *Repository) DistinctAreas(ctx context.Context, regions []string) ([]string, error) {
	return r.distinct(ctx, "area", model.RestaurantFilter{Regions: regions})
}

func (r *Repository) DistinctCuisines(ctx context.Context, regions []string, areas []string) ([]string, error) {
	return r.distinct(ctx, "cuisine", model.RestaurantFilter{Regions: regions, Areas: areas})
}

func (r *Repository) distinct(ctx context.Context, column string, filter model.RestaurantFilter) ([]string, error) {
	values := make([]string, 0)

	query := applyRestaurantFilter(r.DB.WithContext(ctx).Model(&model.Restaurant{}), filter)

	result := query.Distinct(column).Order(column).Pluck(column, &values)
	if result.Error != nil {
		r.Logger.Error("error listing distinct values", zap.String("column", column), zap.Error(result.Error))

		return nil, result.Error
	}

	return values, nil
}
