package server

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"
	"go.uber.org/multierr"
	"go.uber.org/zap"

	"droscher.com/RestaurantRandomizer/pkg/integrations"
	"droscher.com/RestaurantRandomizer/pkg/integrations/googleplaces"
	"droscher.com/RestaurantRandomizer/pkg/model"
	"droscher.com/RestaurantRandomizer/pkg/repository"
)

type ReviewRequest struct {
	Name         string
	Area         string
	Region       string
	RestaurantID *uint
}

type ReviewsResponse struct {
	Reviews   []model.Review        `json:"reviews"`
	Google    *model.ReviewSummary  `json:"google"`
	Summaries []model.ReviewSummary `json:"summaries"`
	Cached    bool                  `json:"cached"`
}

// regionLocations resolves a region code to the place name used in searches.
type regionLocations interface {
	Location(region string) string
}

type ReviewService struct {
	sources   []integrations.ReviewSource
	cache     repository.ReviewRepository
	locations regionLocations
	logger    *zap.Logger
}

func NewReviewService(sources []integrations.ReviewSource, cache repository.ReviewRepository, locations regionLocations, logger *zap.Logger) *ReviewService {
	return &ReviewService{sources: sources, cache: cache, locations: locations, logger: logger}
}

// Fetch asks every review source in turn. A source that fails is skipped;
// when all of them fail the last cached reviews of the restaurant are served.
func (s *ReviewService) Fetch(ctx context.Context, request ReviewRequest) (*ReviewsResponse, error) {
	query := integrations.ReviewQuery{
		Name:     request.Name,
		Area:     request.Area,
		Location: s.locations.Location(request.Region),
	}

	response := &ReviewsResponse{Reviews: []model.Review{}, Summaries: []model.ReviewSummary{}}

	var (
		errs      error
		succeeded int
	)

	for _, source := range s.sources {
		result, err := source.FetchReviews(ctx, query)
		if errors.Is(err, integrations.ErrPlaceNotFound) {
			s.logger.Info("no reviews found", zap.String("source", source.Name()), zap.String("name", request.Name))

			succeeded++

			continue
		}

		if err != nil {
			s.logger.Warn("review source failed", zap.String("source", source.Name()), zap.Error(err))
			errs = multierr.Append(errs, fmt.Errorf("%s: %w", source.Name(), err))

			continue
		}

		succeeded++

		response.Reviews = append(response.Reviews, result.Reviews...)
		response.Summaries = append(response.Summaries, result.Summary)

		if request.RestaurantID != nil {
			s.store(ctx, *request.RestaurantID, source.Name(), result.Reviews)
		}
	}

	if succeeded == 0 && errs != nil {
		return s.fromCache(ctx, request, errs)
	}

	for i := range response.Summaries {
		if response.Summaries[i].Source == googleplaces.IntegrationName {
			response.Google = &response.Summaries[i]
		}
	}

	return response, nil
}

func (s *ReviewService) store(ctx context.Context, restaurantID uint, source string, reviews []model.Review) {
	if err := s.cache.ReplaceCachedReviews(ctx, restaurantID, source, reviews); err != nil {
		s.logger.Warn("could not cache reviews", zap.Uint("restaurant_id", restaurantID), zap.String("source", source), zap.Error(err))
	}
}

func (s *ReviewService) fromCache(ctx context.Context, request ReviewRequest, errs error) (*ReviewsResponse, error) {
	if request.RestaurantID == nil {
		return nil, errs
	}

	cached, err := s.cache.GetCachedReviews(ctx, *request.RestaurantID)
	if err != nil {
		return nil, multierr.Append(errs, err)
	}

	if len(cached) == 0 {
		return nil, errs
	}

	s.logger.Info("serving cached reviews", zap.Uint("restaurant_id", *request.RestaurantID), zap.Int("count", len(cached)))

	response := &ReviewsResponse{Reviews: make([]model.Review, 0, len(cached)), Summaries: []model.ReviewSummary{}, Cached: true}
	for _, review := range cached {
		response.Reviews = append(response.Reviews, *review)
	}

	return response, nil
}

type ReviewHandler struct {
	service *ReviewService
	logger  *zap.Logger
}

func NewReviewHandler(service *ReviewService, logger *zap.Logger) *ReviewHandler {
	return &ReviewHandler{service: service, logger: logger}
}

func (h *ReviewHandler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.GET("/reviews", h.get)
}

func (h *ReviewHandler) get(c *gin.Context) {
	logger := requestLogger(c, h.logger)

	request := ReviewRequest{
		Name:   strings.TrimSpace(c.Query("name")),
		Area:   strings.TrimSpace(c.Query("area")),
		Region: strings.TrimSpace(c.Query("county")),
	}

	if request.Name == "" {
		writeError(c, logger, invalid("restaurant name is required"))

		return
	}

	if raw := c.Query("restaurant_id"); raw != "" {
		id, err := strconv.ParseUint(raw, 10, 0)
		if err != nil || id == 0 {
			writeError(c, logger, invalid("invalid restaurant ID %q", raw))

			return
		}

		restaurantID := uint(id)
		request.RestaurantID = &restaurantID
	}

	response, err := h.service.Fetch(c.Request.Context(), request)
	if err != nil {
		writeError(c, logger, err)

		return
	}

	c.JSON(http.StatusOK, response)
}
