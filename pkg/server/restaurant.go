package server

import (
	"context"
	"errors"
	"math/rand/v2"
	"net/http"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
	"go.uber.org/zap"

	"droscher.com/RestaurantRandomizer/pkg/model"
	"droscher.com/RestaurantRandomizer/pkg/repository"
)

// NewRestaurant is the body accepted when adding a restaurant.
type NewRestaurant struct {
	Name          string  `json:"name"            validate:"required"`
	County        string  `json:"county"          validate:"required,region"`
	Area          string  `json:"area"            validate:"required"`
	Cuisine       string  `json:"cuisine"         validate:"required"`
	Price         string  `json:"price"           validate:"pricetier"`
	PlaceID       *string `json:"place_id"`
	GoogleMapsURL *string `json:"google_maps_url"`
}

type RestaurantService struct {
	repository repository.RestaurantRepository
	validate   *validator.Validate
	regions    []string
	intN       func(n int) int
	logger     *zap.Logger
}

type RestaurantOption func(*RestaurantService)

// WithRandomSource replaces the source used to pick a random restaurant. It
// must return a value in [0, n).
func WithRandomSource(intN func(n int) int) RestaurantOption {
	return func(s *RestaurantService) {
		s.intN = intN
	}
}

func NewRestaurantService(repo repository.RestaurantRepository, regions []string, logger *zap.Logger, opts ...RestaurantOption) *RestaurantService {
	s := &RestaurantService{
		repository: repo,
		validate:   newValidator(regions),
		regions:    regions,
		intN:       rand.IntN,
		logger:     logger,
	}

	for _, opt := range opts {
		opt(s)
	}

	return s
}

func (s *RestaurantService) List(ctx context.Context, filter model.RestaurantFilter) ([]*model.Restaurant, error) {
	if filter.IsEmpty() {
		return s.repository.ListRestaurants(ctx)
	}

	return s.repository.ListFilteredRestaurants(ctx, filter)
}

// PickRandom returns one restaurant chosen uniformly among those matching
// the filter.
func (s *RestaurantService) PickRandom(ctx context.Context, filter model.RestaurantFilter) (*model.Restaurant, error) {
	restaurants, err := s.List(ctx, filter)
	if err != nil {
		return nil, err
	}

	if len(restaurants) == 0 {
		return nil, ErrNoMatch
	}

	return restaurants[s.intN(len(restaurants))], nil
}

// Add validates and stores a restaurant, refusing a second restaurant with
// the same name (ignoring case) in the same region.
func (s *RestaurantService) Add(ctx context.Context, request NewRestaurant) (*model.Restaurant, error) {
	request.Name = strings.TrimSpace(request.Name)
	request.County = strings.TrimSpace(request.County)
	request.Area = strings.TrimSpace(request.Area)
	request.Cuisine = strings.TrimSpace(request.Cuisine)

	if request.Price == "" {
		request.Price = model.DefaultPrice
	}

	if err := s.validate.Struct(request); err != nil {
		return nil, validationMessage(err, s.regions)
	}

	existing, err := s.repository.FindRestaurantByNameAndRegion(ctx, request.Name, request.County)
	if err == nil {
		return nil, &DuplicateError{Existing: existing}
	}

	if !errors.Is(err, repository.ErrRestaurantNotFound) {
		return nil, err
	}

	restaurant, err := s.repository.AddRestaurant(ctx, model.Restaurant{
		Name:          request.Name,
		Region:        request.County,
		Area:          request.Area,
		Cuisine:       request.Cuisine,
		Price:         request.Price,
		PlaceID:       nonEmpty(request.PlaceID),
		GoogleMapsURL: nonEmpty(request.GoogleMapsURL),
	})
	if errors.Is(err, repository.ErrDuplicateRestaurant) {
		// lost a race with a concurrent add of the same restaurant
		existing, findErr := s.repository.FindRestaurantByNameAndRegion(ctx, request.Name, request.County)
		if findErr != nil {
			return nil, err
		}

		return nil, &DuplicateError{Existing: existing}
	}

	return restaurant, err
}

func (s *RestaurantService) Remove(ctx context.Context, restaurantID uint) error {
	return s.repository.DeleteRestaurant(ctx, restaurantID)
}

func (s *RestaurantService) ToggleFavorite(ctx context.Context, restaurantID uint) (*model.Restaurant, error) {
	return s.repository.ToggleFavorite(ctx, restaurantID)
}

func nonEmpty(value *string) *string {
	if value == nil || strings.TrimSpace(*value) == "" {
		return nil
	}

	trimmed := strings.TrimSpace(*value)

	return &trimmed
}

type RestaurantHandler struct {
	service *RestaurantService
	diary   *DiaryService
	logger  *zap.Logger
}

func NewRestaurantHandler(service *RestaurantService, diary *DiaryService, logger *zap.Logger) *RestaurantHandler {
	return &RestaurantHandler{service: service, diary: diary, logger: logger}
}

func (h *RestaurantHandler) RegisterRoutes(rg *gin.RouterGroup) {
	g := rg.Group("/restaurants")

	g.GET("", h.list)
	g.POST("", h.add)
	g.GET("/random", h.random)
	g.DELETE("/:id", h.remove)
	g.POST("/:id/favorite", h.toggleFavorite)
	g.GET("/:id/diary", h.listDiary)
}

func (h *RestaurantHandler) list(c *gin.Context) {
	restaurants, err := h.service.List(c.Request.Context(), filterFromQuery(c))
	if err != nil {
		writeError(c, requestLogger(c, h.logger), err)

		return
	}

	c.JSON(http.StatusOK, restaurants)
}

func (h *RestaurantHandler) random(c *gin.Context) {
	restaurant, err := h.service.PickRandom(c.Request.Context(), filterFromQuery(c))
	if err != nil {
		writeError(c, requestLogger(c, h.logger), err)

		return
	}

	c.JSON(http.StatusOK, restaurant)
}

func (h *RestaurantHandler) add(c *gin.Context) {
	var request NewRestaurant
	if err := c.ShouldBindJSON(&request); err != nil {
		writeError(c, requestLogger(c, h.logger), invalid("malformed JSON body: %s", err.Error()))

		return
	}

	restaurant, err := h.service.Add(c.Request.Context(), request)
	if err != nil {
		writeError(c, requestLogger(c, h.logger), err)

		return
	}

	c.JSON(http.StatusCreated, restaurant)
}

func (h *RestaurantHandler) remove(c *gin.Context) {
	restaurantID, err := pathID(c, "restaurant")
	if err == nil {
		err = h.service.Remove(c.Request.Context(), restaurantID)
	}

	if err != nil {
		writeError(c, requestLogger(c, h.logger), err)

		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true})
}

func (h *RestaurantHandler) toggleFavorite(c *gin.Context) {
	restaurantID, err := pathID(c, "restaurant")
	if err != nil {
		writeError(c, requestLogger(c, h.logger), err)

		return
	}

	restaurant, err := h.service.ToggleFavorite(c.Request.Context(), restaurantID)
	if err != nil {
		writeError(c, requestLogger(c, h.logger), err)

		return
	}

	c.JSON(http.StatusOK, restaurant)
}

func (h *RestaurantHandler) listDiary(c *gin.Context) {
	restaurantID, err := pathID(c, "restaurant")
	if err != nil {
		writeError(c, requestLogger(c, h.logger), err)

		return
	}

	entries, err := h.diary.ListForRestaurant(c.Request.Context(), restaurantID)
	if err != nil {
		writeError(c, requestLogger(c, h.logger), err)

		return
	}

	c.JSON(http.StatusOK, entries)
}

// queryList reads a comma separated query parameter, dropping blanks.
func queryList(c *gin.Context, key string) []string {
	var values []string

	for _, raw := range c.QueryArray(key) {
		for _, value := range strings.Split(raw, ",") {
			if value = strings.TrimSpace(value); value != "" {
				values = append(values, value)
			}
		}
	}

	return values
}

func filterFromQuery(c *gin.Context) model.RestaurantFilter {
	favoritesOnly, _ := strconv.ParseBool(c.Query("favorites"))

	return model.RestaurantFilter{
		Regions:       queryList(c, "counties"),
		Areas:         queryList(c, "areas"),
		Cuisines:      queryList(c, "cuisines"),
		Prices:        queryList(c, "prices"),
		FavoritesOnly: favoritesOnly,
	}
}

func pathID(c *gin.Context, kind string) (uint, error) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 0)
	if err != nil || id == 0 {
		return 0, invalid("invalid %s ID %q", kind, c.Param("id"))
	}

	return uint(id), nil
}
