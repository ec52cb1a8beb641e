package server

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"droscher.com/RestaurantRandomizer/pkg/ingest"
	"droscher.com/RestaurantRandomizer/pkg/integrations"
	"droscher.com/RestaurantRandomizer/pkg/model"
	"droscher.com/RestaurantRandomizer/pkg/repository"
)

var (
	ErrValidation      = errors.New("invalid request")
	ErrNoMatch         = errors.New("no restaurants match the filters")
	ErrPayloadTooLarge = errors.New("request body too large")
)

// DuplicateError reports an add that collides with a stored restaurant of
// the same name in the same region.
type DuplicateError struct {
	Existing *model.Restaurant
}

func (e *DuplicateError) Error() string {
	return fmt.Sprintf("restaurant %q already exists in %s", e.Existing.Name, e.Existing.Region)
}

func invalid(format string, args ...any) error {
	return fmt.Errorf("%w: "+format, append([]any{ErrValidation}, args...)...)
}

type errorResponse struct {
	Error    string            `json:"error"`
	Existing *model.Restaurant `json:"existing,omitempty"`
}

func errorStatus(err error) (int, errorResponse) {
	var duplicate *DuplicateError

	switch {
	case errors.As(err, &duplicate):
		return http.StatusConflict, errorResponse{Error: "Restaurant already exists", Existing: duplicate.Existing}
	case errors.Is(err, ErrPayloadTooLarge):
		return http.StatusRequestEntityTooLarge, errorResponse{Error: err.Error()}
	case errors.Is(err, ErrValidation):
		return http.StatusBadRequest, errorResponse{Error: err.Error()}
	case errors.Is(err, ingest.ErrUnsupportedLink):
		return http.StatusBadRequest, errorResponse{Error: "Could not extract place information from link. " + ingest.SupportedFormats}
	case errors.Is(err, repository.ErrRestaurantNotFound):
		return http.StatusNotFound, errorResponse{Error: "Restaurant not found"}
	case errors.Is(err, repository.ErrDiaryEntryNotFound):
		return http.StatusNotFound, errorResponse{Error: "Diary entry not found"}
	case errors.Is(err, ErrNoMatch):
		return http.StatusNotFound, errorResponse{Error: "No restaurants match your filters"}
	case errors.Is(err, integrations.ErrPlaceNotFound):
		return http.StatusNotFound, errorResponse{Error: "Place not found"}
	case errors.Is(err, integrations.ErrInvalidRequest):
		return http.StatusBadRequest, errorResponse{Error: err.Error()}
	case errors.Is(err, integrations.ErrMissingCredential):
		return http.StatusInternalServerError, errorResponse{Error: "Place lookup is not configured"}
	default:
		return http.StatusInternalServerError, errorResponse{Error: err.Error()}
	}
}

func writeError(c *gin.Context, logger *zap.Logger, err error) {
	status, body := errorStatus(err)

	if status >= http.StatusInternalServerError {
		logger.Error("request failed", zap.String("route", c.FullPath()), zap.Error(err))
	} else {
		logger.Debug("request rejected", zap.String("route", c.FullPath()), zap.Int("status", status), zap.Error(err))
	}

	_ = c.Error(err)
	c.AbortWithStatusJSON(status, body)
}

// writeProxyError passes upstream failures through with their own status.
func writeProxyError(c *gin.Context, logger *zap.Logger, err error) {
	var upstream *integrations.UpstreamError
	if !errors.As(err, &upstream) {
		writeError(c, logger, err)

		return
	}

	logger.Warn("place lookup failed", zap.String("route", c.FullPath()), zap.Error(err))

	_ = c.Error(err)
	c.AbortWithStatusJSON(upstream.StatusCode, errorResponse{Error: "Places API request failed"})
}
