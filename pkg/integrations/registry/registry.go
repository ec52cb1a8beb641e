// Package registry builds the configured integrations by name.
package registry

import (
	"go.uber.org/zap"

	"droscher.com/RestaurantRandomizer/configs"
	"droscher.com/RestaurantRandomizer/pkg/integrations"
	"droscher.com/RestaurantRandomizer/pkg/integrations/googleplaces"
	"droscher.com/RestaurantRandomizer/pkg/integrations/yelp"
)

// GetReviewSource returns the named review source. Google reviews reuse the
// shared places client.
func GetReviewSource(name string, conf *configs.Config, places *googleplaces.Client, logger *zap.Logger) integrations.ReviewSource {
	switch name {
	case googleplaces.IntegrationName:
		return places
	case yelp.IntegrationName:
		return yelp.NewClient(conf.Yelp, logger)
	}

	return nil
}

// GetReviewSources resolves every configured review source, skipping unknown
// names.
func GetReviewSources(conf *configs.Config, places *googleplaces.Client, logger *zap.Logger) []integrations.ReviewSource {
	sources := make([]integrations.ReviewSource, 0, len(conf.Integrations.Reviews))

	for _, name := range conf.Integrations.Reviews {
		source := GetReviewSource(name, conf, places, logger)
		if source == nil {
			logger.Warn("unknown review integration", zap.String("name", name))

			continue
		}

		sources = append(sources, source)
	}

	return sources
}
