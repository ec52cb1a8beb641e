package yelp

import (
	"context"
	"fmt"
	"net/http"
	"strconv"
	"strings"

	"github.com/go-resty/resty/v2"
	"go.uber.org/zap"

	"droscher.com/RestaurantRandomizer/configs"
	"droscher.com/RestaurantRandomizer/pkg/integrations"
	"droscher.com/RestaurantRandomizer/pkg/model"
)

const IntegrationName = "yelp"

type Client struct {
	client *resty.Client
	apiKey string
	logger *zap.Logger
}

type businessSearchResponse struct {
	Businesses []business `json:"businesses"`
}

type business struct {
	ID          string  `json:"id"`
	Name        string  `json:"name"`
	Rating      float64 `json:"rating"`
	ReviewCount int     `json:"review_count"`
}

type reviewsResponse struct {
	Reviews []struct {
		Rating      float64 `json:"rating"`
		Text        string  `json:"text"`
		TimeCreated string  `json:"time_created"`
		User        struct {
			Name     string `json:"name"`
			ImageURL string `json:"image_url"`
		} `json:"user"`
	} `json:"reviews"`
}

func NewClient(conf configs.Yelp, logger *zap.Logger) *Client {
	client := resty.New().
		SetBaseURL(strings.TrimSuffix(conf.BaseURL, "/")).
		SetHeader("Accept", "application/json")

	return &Client{client: client, apiKey: conf.APIKey, logger: logger.Named("yelp")}
}

func (c *Client) Name() string {
	return IntegrationName
}

func (c *Client) FetchReviews(ctx context.Context, query integrations.ReviewQuery) (*integrations.ReviewResult, error) {
	if c.apiKey == "" {
		return nil, fmt.Errorf("%w: yelp API key is not configured", integrations.ErrMissingCredential)
	}

	found, err := c.findBusiness(ctx, query)
	if err != nil {
		return nil, err
	}

	var reviews reviewsResponse

	res, err := c.client.R().
		SetContext(ctx).
		SetAuthToken(c.apiKey).
		SetPathParam("businessID", found.ID).
		SetQueryParam("limit", strconv.Itoa(integrations.MaxReviews)).
		SetQueryParam("sort_by", "yelp_sort").
		SetResult(&reviews).
		Get("/businesses/{businessID}/reviews")
	if err != nil {
		return nil, fmt.Errorf("yelp reviews request failed: %w", err)
	}

	if res.StatusCode() != http.StatusOK {
		return nil, &integrations.UpstreamError{Provider: IntegrationName, StatusCode: res.StatusCode(), Body: string(res.Body())}
	}

	result := &integrations.ReviewResult{
		Summary: model.ReviewSummary{Source: IntegrationName, Rating: found.Rating, ReviewCount: found.ReviewCount},
		Reviews: make([]model.Review, 0, len(reviews.Reviews)),
	}

	for _, review := range reviews.Reviews {
		if len(result.Reviews) == integrations.MaxReviews {
			break
		}

		author := review.User.Name
		if author == "" {
			author = "Anonymous"
		}

		var photo *string
		if review.User.ImageURL != "" {
			photo = &review.User.ImageURL
		}

		result.Reviews = append(result.Reviews, model.Review{
			Source:      IntegrationName,
			Author:      author,
			AuthorPhoto: photo,
			Rating:      review.Rating,
			Text:        review.Text,
			Date:        review.TimeCreated,
		})
	}

	return result, nil
}

func (c *Client) findBusiness(ctx context.Context, query integrations.ReviewQuery) (*business, error) {
	var search businessSearchResponse

	location := strings.TrimSpace(strings.Join([]string{query.Area, query.Location}, " "))

	res, err := c.client.R().
		SetContext(ctx).
		SetAuthToken(c.apiKey).
		SetQueryParam("term", query.Name).
		SetQueryParam("location", location).
		SetQueryParam("categories", "restaurants,food").
		SetQueryParam("limit", "1").
		SetResult(&search).
		Get("/businesses/search")
	if err != nil {
		return nil, fmt.Errorf("yelp search request failed: %w", err)
	}

	if res.StatusCode() != http.StatusOK {
		c.logger.Error("yelp search failed", zap.Int("status", res.StatusCode()))

		return nil, &integrations.UpstreamError{Provider: IntegrationName, StatusCode: res.StatusCode(), Body: string(res.Body())}
	}

	if len(search.Businesses) == 0 {
		return nil, fmt.Errorf("%w: %s", integrations.ErrPlaceNotFound, query.Name)
	}

	return &search.Businesses[0], nil
}
