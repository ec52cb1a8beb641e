package server

import (
	"context"
	"net/http"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"droscher.com/RestaurantRandomizer/pkg/ingest"
	"droscher.com/RestaurantRandomizer/pkg/integrations"
)

const (
	defaultPhotoWidth  = 800
	defaultPhotoHeight = 600
	maxPhotoDimension  = 4800
	photoCacheControl  = "public, max-age=86400"
)

type LinkParser interface {
	ParseLink(ctx context.Context, link string, caption string) (*ingest.Candidate, error)
}

type parseLinkRequest struct {
	Link    string `json:"link"`
	Caption string `json:"caption"`
}

type PlaceHandler struct {
	lookup integrations.PlaceLookup
	links  LinkParser
	logger *zap.Logger
}

func NewPlaceHandler(lookup integrations.PlaceLookup, links LinkParser, logger *zap.Logger) *PlaceHandler {
	return &PlaceHandler{lookup: lookup, links: links, logger: logger}
}

func (h *PlaceHandler) RegisterRoutes(rg *gin.RouterGroup) {
	g := rg.Group("/places")

	g.POST("/parse-link", h.parseLink)
	g.GET("/search", h.search)
	g.GET("/photo", h.photo)
}

func (h *PlaceHandler) parseLink(c *gin.Context) {
	var request parseLinkRequest
	if err := c.ShouldBindJSON(&request); err != nil {
		writeError(c, requestLogger(c, h.logger), invalid("malformed JSON body: %s", err.Error()))

		return
	}

	if strings.TrimSpace(request.Link) == "" {
		writeError(c, requestLogger(c, h.logger), invalid("link is required"))

		return
	}

	candidate, err := h.links.ParseLink(c.Request.Context(), request.Link, request.Caption)
	if err != nil {
		writeError(c, requestLogger(c, h.logger), err)

		return
	}

	c.JSON(http.StatusOK, candidate)
}

func (h *PlaceHandler) search(c *gin.Context) {
	query := strings.TrimSpace(c.Query("query"))
	if query == "" {
		writeError(c, requestLogger(c, h.logger), invalid("query parameter is required"))

		return
	}

	place, err := h.lookup.SearchText(c.Request.Context(), query)
	if err != nil {
		writeProxyError(c, requestLogger(c, h.logger), err)

		return
	}

	c.JSON(http.StatusOK, place)
}

// photo serves the image bytes, or {"url": ...} when format=url.
func (h *PlaceHandler) photo(c *gin.Context) {
	logger := requestLogger(c, h.logger)

	photoName := strings.TrimSpace(c.Query("photoName"))
	if photoName == "" {
		writeError(c, logger, invalid("photoName parameter is required"))

		return
	}

	maxWidth, err := dimension(c, "maxWidth", defaultPhotoWidth)
	if err != nil {
		writeError(c, logger, err)

		return
	}

	maxHeight, err := dimension(c, "maxHeight", defaultPhotoHeight)
	if err != nil {
		writeError(c, logger, err)

		return
	}

	if c.Query("format") == "url" {
		uri, err := h.lookup.PhotoURL(c.Request.Context(), photoName, maxWidth, maxHeight)
		if err != nil {
			writeProxyError(c, logger, err)

			return
		}

		c.JSON(http.StatusOK, gin.H{"url": uri})

		return
	}

	photo, err := h.lookup.FetchPhoto(c.Request.Context(), photoName, maxWidth, maxHeight)
	if err != nil {
		writeProxyError(c, logger, err)

		return
	}

	c.Header("Cache-Control", photoCacheControl)
	c.Data(http.StatusOK, photo.ContentType, photo.Data)
}

func dimension(c *gin.Context, key string, fallback int) (int, error) {
	raw := c.Query(key)
	if raw == "" {
		return fallback, nil
	}

	value, err := strconv.Atoi(raw)
	if err != nil || value < 1 || value > maxPhotoDimension {
		return 0, invalid("%s must be between 1 and %d", key, maxPhotoDimension)
	}

	return value, nil
}
