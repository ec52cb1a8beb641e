// Package server exposes the restaurant, diary, filter, place and review
// operations as a JSON HTTP API.
package server

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"droscher.com/RestaurantRandomizer/pkg/filters"
	"droscher.com/RestaurantRandomizer/pkg/integrations"
)

const healthTimeout = 2 * time.Second

type Pinger interface {
	Ping(ctx context.Context) error
}

// Services are the dependencies the HTTP surface is built from.
type Services struct {
	Restaurants *RestaurantService
	Diary       *DiaryService
	Reviews     *ReviewService
	Options     filters.OptionSource
	Places      integrations.PlaceLookup
	Links       LinkParser
	Health      Pinger
}

func NewRouter(services Services, logger *zap.Logger) *gin.Engine {
	engine := gin.New()
	engine.Use(RequestLogger(logger.Named("http")), gin.Recovery())

	engine.GET("/healthz", health(services.Health, logger))

	api := engine.Group("/api")

	NewRestaurantHandler(services.Restaurants, services.Diary, logger).RegisterRoutes(api)
	NewDiaryHandler(services.Diary, logger).RegisterRoutes(api)
	NewFilterHandler(services.Options, logger).RegisterRoutes(api)
	NewPlaceHandler(services.Places, services.Links, logger).RegisterRoutes(api)
	NewReviewHandler(services.Reviews, logger).RegisterRoutes(api)

	engine.NoRoute(func(c *gin.Context) {
		c.JSON(http.StatusNotFound, errorResponse{Error: "Not found"})
	})

	return engine
}

func health(pinger Pinger, logger *zap.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx, cancel := context.WithTimeout(c.Request.Context(), healthTimeout)
		defer cancel()

		if err := pinger.Ping(ctx); err != nil {
			logger.Error("health check failed", zap.Error(err))
			c.JSON(http.StatusServiceUnavailable, gin.H{"status": "unavailable", "error": err.Error()})

			return
		}

		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	}
}
