package googleplaces

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"regexp"
	"strconv"
	"strings"
	"time"

	"github.com/avast/retry-go"
	"github.com/go-resty/resty/v2"
	"go.uber.org/zap"

	"droscher.com/RestaurantRandomizer/configs"
	"droscher.com/RestaurantRandomizer/pkg/integrations"
	"droscher.com/RestaurantRandomizer/pkg/model"
)

const (
	IntegrationName = "google"

	searchFieldMask = "places.id,places.displayName,places.formattedAddress,places.photos,places.googleMapsUri," +
		"places.rating,places.userRatingCount,places.priceLevel,places.types,places.reviews"
	detailFieldMask = "id,displayName,formattedAddress,types,priceLevel,rating,userRatingCount,googleMapsUri,photos"

	defaultRetryDelay = 250 * time.Millisecond
)

var photoNamePattern = regexp.MustCompile(`^places/[^/]+/photos/[^/]+$`)

type Client struct {
	client        *resty.Client
	apiKey        string
	retryAttempts uint
	retryDelay    time.Duration
	logger        *zap.Logger
}

type Option func(*Client)

func WithRetryDelay(delay time.Duration) Option {
	return func(c *Client) {
		c.retryDelay = delay
	}
}

func NewClient(conf configs.Google, logger *zap.Logger, opts ...Option) *Client {
	client := resty.New().
		SetBaseURL(strings.TrimSuffix(conf.BaseURL, "/")).
		SetTimeout(conf.Timeout).
		SetHeader("Content-Type", "application/json")

	c := &Client{
		client:        client,
		apiKey:        conf.APIKey,
		retryAttempts: conf.RetryAttempts,
		retryDelay:    defaultRetryDelay,
		logger:        logger.Named("google_places"),
	}

	for _, opt := range opts {
		opt(c)
	}

	return c
}

func (c *Client) Name() string {
	return IntegrationName
}

func (c *Client) SearchText(ctx context.Context, query string) (*model.Place, error) {
	if err := c.checkCredential(); err != nil {
		return nil, err
	}

	var result searchResponse

	res, err := c.execute(ctx, func() (*resty.Response, error) {
		return c.client.R().
			SetContext(ctx).
			SetHeader("X-Goog-Api-Key", c.apiKey).
			SetHeader("X-Goog-FieldMask", searchFieldMask).
			SetBody(searchRequest{TextQuery: query, MaxResultCount: 1}).
			SetResult(&result).
			Post("/places:searchText")
	})
	if err != nil {
		return nil, err
	}

	if !res.IsSuccess() {
		return nil, c.upstreamError(res)
	}

	if len(result.Places) == 0 {
		c.logger.Info("no place matched query", zap.String("query", query))

		return nil, fmt.Errorf("%w: %s", integrations.ErrPlaceNotFound, query)
	}

	return result.Places[0].toPlace(), nil
}

func (c *Client) GetPlace(ctx context.Context, placeID string) (*model.Place, error) {
	if err := c.checkCredential(); err != nil {
		return nil, err
	}

	if placeID == "" || strings.Contains(placeID, "/") {
		return nil, fmt.Errorf("%w: place id %q", integrations.ErrInvalidRequest, placeID)
	}

	var result placeJSON

	res, err := c.execute(ctx, func() (*resty.Response, error) {
		return c.client.R().
			SetContext(ctx).
			SetHeader("X-Goog-Api-Key", c.apiKey).
			SetHeader("X-Goog-FieldMask", detailFieldMask).
			SetPathParam("placeID", placeID).
			SetResult(&result).
			Get("/places/{placeID}")
	})
	if err != nil {
		return nil, err
	}

	if res.StatusCode() == http.StatusNotFound {
		return nil, fmt.Errorf("%w: %s", integrations.ErrPlaceNotFound, placeID)
	}

	if !res.IsSuccess() {
		return nil, c.upstreamError(res)
	}

	return result.toPlace(), nil
}

// PhotoURL resolves a photo reference to a short-lived image URL.
func (c *Client) PhotoURL(ctx context.Context, photoName string, maxWidth int, maxHeight int) (string, error) {
	var result photoMediaResponse

	res, err := c.photoRequest(ctx, photoName, maxWidth, maxHeight, func(request *resty.Request) *resty.Request {
		return request.SetQueryParam("skipHttpRedirect", "true").SetResult(&result)
	})
	if err != nil {
		return "", err
	}

	if !res.IsSuccess() {
		return "", c.upstreamError(res)
	}

	return result.PhotoURI, nil
}

// FetchPhoto downloads the image bytes for a photo reference.
func (c *Client) FetchPhoto(ctx context.Context, photoName string, maxWidth int, maxHeight int) (*model.PlacePhotoData, error) {
	res, err := c.photoRequest(ctx, photoName, maxWidth, maxHeight, func(request *resty.Request) *resty.Request {
		return request
	})
	if err != nil {
		return nil, err
	}

	if !res.IsSuccess() {
		return nil, c.upstreamError(res)
	}

	contentType := res.Header().Get("Content-Type")
	if contentType == "" {
		contentType = "image/jpeg"
	}

	return &model.PlacePhotoData{ContentType: contentType, Data: res.Body()}, nil
}

func (c *Client) photoRequest(
	ctx context.Context, photoName string, maxWidth int, maxHeight int, decorate func(*resty.Request) *resty.Request,
) (*resty.Response, error) {
	if err := c.checkCredential(); err != nil {
		return nil, err
	}

	if !photoNamePattern.MatchString(photoName) {
		return nil, fmt.Errorf("%w: photo name %q", integrations.ErrInvalidRequest, photoName)
	}

	return c.execute(ctx, func() (*resty.Response, error) {
		request := c.client.R().
			SetContext(ctx).
			SetQueryParam("maxWidthPx", strconv.Itoa(maxWidth)).
			SetQueryParam("maxHeightPx", strconv.Itoa(maxHeight)).
			SetQueryParam("key", c.apiKey)

		return decorate(request).Get("/" + photoName + "/media")
	})
}

func (c *Client) checkCredential() error {
	if c.apiKey == "" {
		return fmt.Errorf("%w: google places API key is not configured", integrations.ErrMissingCredential)
	}

	return nil
}

// execute runs the request, retrying transport failures, rate limiting and
// server errors. The final response is returned for the caller to inspect.
func (c *Client) execute(ctx context.Context, send func() (*resty.Response, error)) (*resty.Response, error) {
	var response *resty.Response

	err := retry.Do(
		func() error {
			res, err := send()
			if err != nil {
				return err
			}

			response = res

			if isRetryableStatus(res.StatusCode()) {
				return c.upstreamError(res)
			}

			return nil
		},
		retry.Context(ctx),
		retry.Attempts(c.retryAttempts+1),
		retry.Delay(c.retryDelay),
		retry.LastErrorOnly(true),
		retry.RetryIf(func(err error) bool {
			return !errors.Is(err, context.Canceled) && !errors.Is(err, context.DeadlineExceeded)
		}),
		retry.OnRetry(func(attempt uint, err error) {
			c.logger.Warn("retrying places request", zap.Uint("attempt", attempt+1), zap.Error(err))
		}),
	)
	if err != nil {
		var upstream *integrations.UpstreamError
		if errors.As(err, &upstream) {
			return nil, err
		}

		return nil, fmt.Errorf("places request failed: %w", err)
	}

	return response, nil
}

func isRetryableStatus(status int) bool {
	return status == http.StatusTooManyRequests || status >= http.StatusInternalServerError
}

func (c *Client) upstreamError(res *resty.Response) error {
	c.logger.Error("places API error", zap.Int("status", res.StatusCode()), zap.ByteString("body", res.Body()))

	return &integrations.UpstreamError{Provider: IntegrationName, StatusCode: res.StatusCode(), Body: string(res.Body())}
}
