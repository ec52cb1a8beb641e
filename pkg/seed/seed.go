// Package seed holds the curated restaurant list an empty database starts
// with.
package seed

import (
	"context"
	_ "embed"
	"errors"
	"fmt"
	"strings"

	"go.uber.org/multierr"
	"go.uber.org/zap"
	"gopkg.in/yaml.v3"

	"droscher.com/RestaurantRandomizer/pkg/model"
)

//go:embed restaurants.yaml
var defaultRestaurants []byte

var ErrInvalidSeed = errors.New("invalid seed data")

type Store interface {
	CountRestaurants(ctx context.Context) (int64, error)
	SeedRestaurants(ctx context.Context, restaurants []model.Restaurant) (int64, error)
}

type seedRow struct {
	Name    string `yaml:"name"`
	County  string `yaml:"county"`
	Area    string `yaml:"area"`
	Cuisine string `yaml:"cuisine"`
	Price   string `yaml:"price"`
}

// Restaurants returns the built in restaurant list.
func Restaurants() ([]model.Restaurant, error) {
	return Parse(defaultRestaurants)
}

// Parse reads a YAML list of restaurants. Every row needs a name, county,
// area and cuisine; a missing price becomes the default tier.
func Parse(data []byte) ([]model.Restaurant, error) {
	var rows []seedRow
	if err := yaml.Unmarshal(data, &rows); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidSeed, err)
	}

	var errs error

	restaurants := make([]model.Restaurant, 0, len(rows))

	for i, row := range rows {
		restaurant := model.Restaurant{
			Name:    strings.TrimSpace(row.Name),
			Region:  strings.TrimSpace(row.County),
			Area:    strings.TrimSpace(row.Area),
			Cuisine: strings.TrimSpace(row.Cuisine),
			Price:   strings.TrimSpace(row.Price),
		}

		if restaurant.Price == "" {
			restaurant.Price = model.DefaultPrice
		}

		if restaurant.Name == "" || restaurant.Region == "" || restaurant.Area == "" || restaurant.Cuisine == "" {
			errs = multierr.Append(errs, fmt.Errorf("%w: row %d: name, county, area and cuisine are required", ErrInvalidSeed, i+1))

			continue
		}

		if !model.IsPriceTier(restaurant.Price) {
			errs = multierr.Append(errs, fmt.Errorf("%w: row %d: unknown price %q", ErrInvalidSeed, i+1, restaurant.Price))

			continue
		}

		restaurants = append(restaurants, restaurant)
	}

	if errs != nil {
		return nil, errs
	}

	return restaurants, nil
}

// IfEmpty writes restaurants only when the store holds none, and returns the
// number of rows written.
func IfEmpty(ctx context.Context, store Store, restaurants []model.Restaurant, logger *zap.Logger) (int64, error) {
	count, err := store.CountRestaurants(ctx)
	if err != nil {
		return 0, err
	}

	if count > 0 {
		logger.Debug("restaurants already present, skipping seed", zap.Int64("count", count))

		return 0, nil
	}

	written, err := store.SeedRestaurants(ctx, restaurants)
	if err != nil {
		return 0, err
	}

	logger.Info("seeded restaurants", zap.Int64("count", written))

	return written, nil
}
