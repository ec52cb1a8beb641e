package server

import (
	"context"
	"encoding/base64"
	"errors"
	"fmt"
	"net/http"
	"slices"
	"strings"

	"github.com/gabriel-vasile/mimetype"
	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
	"go.uber.org/zap"

	"droscher.com/RestaurantRandomizer/pkg/model"
	"droscher.com/RestaurantRandomizer/pkg/repository"
)

const bodyOverhead = 64 << 10

var photoTypes = []string{"image/jpeg", "image/png", "image/gif", "image/webp", "image/heic", "image/heif"}

// NewDiaryEntry is the body accepted when recording a visit. The photo is a
// base64 data URI.
type NewDiaryEntry struct {
	RestaurantID   *uint   `json:"restaurant_id"`
	RestaurantName string  `json:"restaurant_name" validate:"required"`
	PhotoURL       string  `json:"photo_url"       validate:"required"`
	Comment        *string `json:"comment"`
	VisitDate      string  `json:"visit_date"      validate:"required"`
}

type restaurantLookup interface {
	GetRestaurantByID(ctx context.Context, restaurantID uint) (*model.Restaurant, error)
}

type DiaryService struct {
	repository    repository.DiaryRepository
	restaurants   restaurantLookup
	validate      *validator.Validate
	maxPhotoBytes int
	logger        *zap.Logger
}

func NewDiaryService(repo repository.DiaryRepository, restaurants restaurantLookup, maxPhotoBytes int, logger *zap.Logger) *DiaryService {
	return &DiaryService{
		repository:    repo,
		restaurants:   restaurants,
		validate:      newValidator(nil),
		maxPhotoBytes: maxPhotoBytes,
		logger:        logger,
	}
}

func (s *DiaryService) List(ctx context.Context) ([]*model.DiaryEntry, error) {
	return s.repository.ListDiaryEntries(ctx)
}

func (s *DiaryService) ListForRestaurant(ctx context.Context, restaurantID uint) ([]*model.DiaryEntry, error) {
	if _, err := s.restaurants.GetRestaurantByID(ctx, restaurantID); err != nil {
		return nil, err
	}

	return s.repository.ListDiaryEntriesForRestaurant(ctx, restaurantID)
}

func (s *DiaryService) Add(ctx context.Context, request NewDiaryEntry) (*model.DiaryEntry, error) {
	request.RestaurantName = strings.TrimSpace(request.RestaurantName)
	request.VisitDate = strings.TrimSpace(request.VisitDate)

	if err := s.validate.Struct(request); err != nil {
		return nil, validationMessage(err, nil)
	}

	visitDate, err := model.ParseDate(request.VisitDate)
	if err != nil {
		return nil, invalid("visit_date must be formatted as YYYY-MM-DD")
	}

	if err := s.checkPhoto(request.PhotoURL); err != nil {
		return nil, err
	}

	if request.RestaurantID != nil {
		if _, err := s.restaurants.GetRestaurantByID(ctx, *request.RestaurantID); err != nil {
			return nil, unknownRestaurant(err, *request.RestaurantID)
		}
	}

	entry, err := s.repository.AddDiaryEntry(ctx, model.DiaryEntry{
		RestaurantID:   request.RestaurantID,
		RestaurantName: request.RestaurantName,
		PhotoURL:       request.PhotoURL,
		Comment:        request.Comment,
		VisitDate:      visitDate,
	})
	if err != nil && request.RestaurantID != nil {
		// the restaurant can be deleted between the check and the insert
		return nil, unknownRestaurant(err, *request.RestaurantID)
	}

	return entry, err
}

func unknownRestaurant(err error, restaurantID uint) error {
	if errors.Is(err, repository.ErrRestaurantNotFound) {
		return invalid("restaurant_id %d does not match a restaurant", restaurantID)
	}

	return err
}

func (s *DiaryService) Remove(ctx context.Context, entryID uint) error {
	return s.repository.DeleteDiaryEntry(ctx, entryID)
}

// checkPhoto accepts a data:image/...;base64 URI holding a supported image
// no larger than the configured limit.
func (s *DiaryService) checkPhoto(photoURL string) error {
	header, payload, found := strings.Cut(photoURL, ",")
	if !found || !strings.HasPrefix(header, "data:image/") || !strings.HasSuffix(header, ";base64") {
		return invalid("photo_url must be a base64 encoded image data URI")
	}

	if base64.StdEncoding.DecodedLen(len(payload)) > s.maxPhotoBytes+2 {
		return invalid("photo exceeds the %d byte limit", s.maxPhotoBytes)
	}

	data, err := base64.StdEncoding.DecodeString(payload)
	if err != nil {
		return invalid("photo_url is not valid base64")
	}

	if len(data) > s.maxPhotoBytes {
		return invalid("photo exceeds the %d byte limit", s.maxPhotoBytes)
	}

	detected := mimetype.Detect(data)
	if !slices.ContainsFunc(photoTypes, detected.Is) {
		return invalid("unsupported photo type %s", detected.String())
	}

	return nil
}

type DiaryHandler struct {
	service *DiaryService
	logger  *zap.Logger
}

func NewDiaryHandler(service *DiaryService, logger *zap.Logger) *DiaryHandler {
	return &DiaryHandler{service: service, logger: logger}
}

func (h *DiaryHandler) RegisterRoutes(rg *gin.RouterGroup) {
	g := rg.Group("/diary")

	g.GET("", h.list)
	g.POST("", h.add)
	g.DELETE("/:id", h.remove)
}

func (h *DiaryHandler) list(c *gin.Context) {
	entries, err := h.service.List(c.Request.Context())
	if err != nil {
		writeError(c, requestLogger(c, h.logger), err)

		return
	}

	c.JSON(http.StatusOK, entries)
}

func (h *DiaryHandler) add(c *gin.Context) {
	// base64 inflates the photo by a third
	c.Request.Body = http.MaxBytesReader(c.Writer, c.Request.Body, int64(h.service.maxPhotoBytes)*4/3+bodyOverhead)

	var request NewDiaryEntry
	if err := c.ShouldBindJSON(&request); err != nil {
		var tooLarge *http.MaxBytesError
		if errors.As(err, &tooLarge) {
			err = fmt.Errorf("%w: photo exceeds the %d byte limit", ErrPayloadTooLarge, h.service.maxPhotoBytes)
		} else {
			err = invalid("malformed JSON body: %s", err.Error())
		}

		writeError(c, requestLogger(c, h.logger), err)

		return
	}

	entry, err := h.service.Add(c.Request.Context(), request)
	if err != nil {
		writeError(c, requestLogger(c, h.logger), err)

		return
	}

	c.JSON(http.StatusCreated, entry)
}

func (h *DiaryHandler) remove(c *gin.Context) {
	entryID, err := pathID(c, "diary entry")
	if err == nil {
		err = h.service.Remove(c.Request.Context(), entryID)
	}

	if err != nil {
		writeError(c, requestLogger(c, h.logger), err)

		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true})
}
