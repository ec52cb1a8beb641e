package integrations

import (
	"context"
	"errors"
	"fmt"

	"droscher.com/RestaurantRandomizer/pkg/model"
)

var (
	ErrMissingCredential = errors.New("missing API credential")
	ErrPlaceNotFound     = errors.New("place not found")
	ErrInvalidRequest    = errors.New("invalid request")
)

// UpstreamError is a non-success response from a third-party API.
type UpstreamError struct {
	Provider   string
	StatusCode int
	Body       string
}

func (e *UpstreamError) Error() string {
	return fmt.Sprintf("%s responded with status %d: %s", e.Provider, e.StatusCode, e.Body)
}

// PlaceLookup searches an external place directory.
type PlaceLookup interface {
	SearchText(ctx context.Context, query string) (*model.Place, error)
	GetPlace(ctx context.Context, placeID string) (*model.Place, error)
	PhotoURL(ctx context.Context, photoName string, maxWidth int, maxHeight int) (string, error)
	FetchPhoto(ctx context.Context, photoName string, maxWidth int, maxHeight int) (*model.PlacePhotoData, error)
}

type ReviewQuery struct {
	Name     string
	Area     string
	Location string
}

type ReviewResult struct {
	Summary model.ReviewSummary
	Reviews []model.Review
}

// ReviewSource fetches reviews for a restaurant from one provider.
type ReviewSource interface {
	Name() string
	FetchReviews(ctx context.Context, query ReviewQuery) (*ReviewResult, error)
}

const MaxReviews = 5
