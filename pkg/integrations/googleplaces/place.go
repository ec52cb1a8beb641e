package googleplaces

import (
	"context"
	"strings"

	"droscher.com/RestaurantRandomizer/pkg/integrations"
	"droscher.com/RestaurantRandomizer/pkg/model"
)

type searchRequest struct {
	TextQuery      string `json:"textQuery"`
	MaxResultCount int    `json:"maxResultCount"`
}

type searchResponse struct {
	Places []placeJSON `json:"places"`
}

type localizedText struct {
	Text string `json:"text"`
}

type placeJSON struct {
	ID               string        `json:"id"`
	DisplayName      localizedText `json:"displayName"`
	FormattedAddress string        `json:"formattedAddress"`
	Photos           []struct {
		Name     string `json:"name"`
		WidthPx  int    `json:"widthPx"`
		HeightPx int    `json:"heightPx"`
	} `json:"photos"`
	GoogleMapsURI   string   `json:"googleMapsUri"`
	Rating          float64  `json:"rating"`
	UserRatingCount int      `json:"userRatingCount"`
	PriceLevel      string   `json:"priceLevel"`
	Types           []string `json:"types"`
	Reviews         []struct {
		Rating            float64       `json:"rating"`
		Text              localizedText `json:"text"`
		AuthorAttribution struct {
			DisplayName string `json:"displayName"`
			PhotoURI    string `json:"photoUri"`
		} `json:"authorAttribution"`
		RelativePublishTimeDescription string `json:"relativePublishTimeDescription"`
	} `json:"reviews"`
}

type photoMediaResponse struct {
	Name     string `json:"name"`
	PhotoURI string `json:"photoUri"`
}

func (p placeJSON) toPlace() *model.Place {
	place := &model.Place{
		ID:          p.ID,
		Name:        p.DisplayName.Text,
		Address:     p.FormattedAddress,
		MapsURL:     p.GoogleMapsURI,
		Rating:      p.Rating,
		RatingCount: p.UserRatingCount,
		PriceLevel:  p.PriceLevel,
		Types:       p.Types,
		Photos:      make([]model.PlacePhoto, 0, len(p.Photos)),
		Reviews:     make([]model.PlaceReview, 0, len(p.Reviews)),
	}

	for _, photo := range p.Photos {
		place.Photos = append(place.Photos, model.PlacePhoto{Name: photo.Name, Width: photo.WidthPx, Height: photo.HeightPx})
	}

	for _, review := range p.Reviews {
		place.Reviews = append(place.Reviews, model.PlaceReview{
			Author:       review.AuthorAttribution.DisplayName,
			AuthorPhoto:  review.AuthorAttribution.PhotoURI,
			Rating:       review.Rating,
			Text:         review.Text.Text,
			RelativeTime: review.RelativePublishTimeDescription,
		})
	}

	return place
}

// FetchReviews finds the best matching place for the query and returns up to
// five of its reviews.
func (c *Client) FetchReviews(ctx context.Context, query integrations.ReviewQuery) (*integrations.ReviewResult, error) {
	text := strings.Join(strings.Fields(strings.Join([]string{query.Name, "restaurant", query.Area, query.Location}, " ")), " ")

	place, err := c.SearchText(ctx, text)
	if err != nil {
		return nil, err
	}

	result := &integrations.ReviewResult{
		Summary: model.ReviewSummary{Source: IntegrationName, Rating: place.Rating, ReviewCount: place.RatingCount},
		Reviews: make([]model.Review, 0, min(len(place.Reviews), integrations.MaxReviews)),
	}

	for _, review := range place.Reviews {
		if len(result.Reviews) == integrations.MaxReviews {
			break
		}

		author := review.Author
		if author == "" {
			author = "Anonymous"
		}

		var photo *string
		if review.AuthorPhoto != "" {
			photo = &review.AuthorPhoto
		}

		result.Reviews = append(result.Reviews, model.Review{
			Source:      IntegrationName,
			Author:      author,
			AuthorPhoto: photo,
			Rating:      review.Rating,
			Text:        review.Text,
			Date:        review.RelativeTime,
		})
	}

	return result, nil
}
