package googleplaces_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/suite"
	"go.uber.org/zap/zaptest"

	"droscher.com/RestaurantRandomizer/configs"
	"droscher.com/RestaurantRandomizer/pkg/integrations"
	"droscher.com/RestaurantRandomizer/pkg/integrations/googleplaces"
)

const searchBody = `{
  "places": [{
    "id": "ChIJ5cw",
    "displayName": {"text": "Tsujita LA Artisan Noodle"},
    "formattedAddress": "2057 Sawtelle Blvd, Los Angeles, CA 90025, USA",
    "photos": [{"name": "places/ChIJ5cw/photos/AU_1", "widthPx": 4032, "heightPx": 3024}],
    "googleMapsUri": "https://maps.google.com/?cid=42",
    "rating": 4.5,
    "userRatingCount": 3210,
    "priceLevel": "PRICE_LEVEL_MODERATE",
    "types": ["ramen_restaurant", "japanese_restaurant", "restaurant"],
    "reviews": [
      {"rating": 5, "text": {"text": "Best tsukemen"}, "authorAttribution": {"displayName": "Kei", "photoUri": "https://p/1"}, "relativePublishTimeDescription": "a week ago"},
      {"rating": 4, "text": {"text": "Long line"}, "authorAttribution": {}, "relativePublishTimeDescription": "2 months ago"}
    ]
  }]
}`

type GooglePlacesTestSuite struct {
	suite.Suite
	mux    *http.ServeMux
	server *httptest.Server
	client *googleplaces.Client
}

func TestGooglePlacesTestSuite(t *testing.T) {
	suite.Run(t, new(GooglePlacesTestSuite))
}

func (suite *GooglePlacesTestSuite) SetupTest() {
	suite.mux = http.NewServeMux()
	suite.server = httptest.NewServer(suite.mux)
	suite.client = suite.newClient("test-key")
}

func (suite *GooglePlacesTestSuite) TearDownTest() {
	suite.server.Close()
}

func (suite *GooglePlacesTestSuite) newClient(key string) *googleplaces.Client {
	return googleplaces.NewClient(configs.Google{
		APIKey:        key,
		BaseURL:       suite.server.URL + "/v1",
		Timeout:       time.Second,
		RetryAttempts: 2,
	}, zaptest.NewLogger(suite.T()), googleplaces.WithRetryDelay(time.Millisecond))
}

func (suite *GooglePlacesTestSuite) TestSearchText_NormalizesPlace() {
	suite.mux.HandleFunc("POST /v1/places:searchText", func(w http.ResponseWriter, r *http.Request) {
		suite.Equal("test-key", r.Header.Get("X-Goog-Api-Key"))
		suite.Contains(r.Header.Get("X-Goog-FieldMask"), "places.reviews")

		var body map[string]any
		suite.NoError(json.NewDecoder(r.Body).Decode(&body))
		suite.Equal("tsujita", body["textQuery"])
		suite.InDelta(1, body["maxResultCount"], 0)

		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(searchBody))
	})

	place, err := suite.client.SearchText(context.Background(), "tsujita")

	suite.Require().NoError(err)
	suite.Equal("ChIJ5cw", place.ID)
	suite.Equal("Tsujita LA Artisan Noodle", place.Name)
	suite.Equal("PRICE_LEVEL_MODERATE", place.PriceLevel)
	suite.Equal([]string{"ramen_restaurant", "japanese_restaurant", "restaurant"}, place.Types)
	suite.Require().Len(place.Photos, 1)
	suite.Equal("places/ChIJ5cw/photos/AU_1", place.Photos[0].Name)
	suite.Require().Len(place.Reviews, 2)
	suite.Equal("Kei", place.Reviews[0].Author)
	suite.Equal("a week ago", place.Reviews[0].RelativeTime)
}

func (suite *GooglePlacesTestSuite) TestSearchText_NoResults() {
	suite.mux.HandleFunc("POST /v1/places:searchText", func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{}`))
	})

	place, err := suite.client.SearchText(context.Background(), "nowhere")

	suite.Nil(place)
	suite.ErrorIs(err, integrations.ErrPlaceNotFound)
}

func (suite *GooglePlacesTestSuite) TestSearchText_MissingKey() {
	place, err := suite.newClient("").SearchText(context.Background(), "tsujita")

	suite.Nil(place)
	suite.ErrorIs(err, integrations.ErrMissingCredential)
}

func (suite *GooglePlacesTestSuite) TestSearchText_RetriesServerErrors() {
	var calls atomic.Int32

	suite.mux.HandleFunc("POST /v1/places:searchText", func(w http.ResponseWriter, _ *http.Request) {
		if calls.Add(1) < 3 {
			w.WriteHeader(http.StatusServiceUnavailable)

			return
		}

		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(searchBody))
	})

	place, err := suite.client.SearchText(context.Background(), "tsujita")

	suite.Require().NoError(err)
	suite.Equal("ChIJ5cw", place.ID)
	suite.Equal(int32(3), calls.Load())
}

func (suite *GooglePlacesTestSuite) TestSearchText_GivesUpAfterRetries() {
	var calls atomic.Int32

	suite.mux.HandleFunc("POST /v1/places:searchText", func(w http.ResponseWriter, _ *http.Request) {
		calls.Add(1)
		w.WriteHeader(http.StatusTooManyRequests)
		_, _ = w.Write([]byte(`{"error":{"status":"RESOURCE_EXHAUSTED"}}`))
	})

	_, err := suite.client.SearchText(context.Background(), "tsujita")

	var upstream *integrations.UpstreamError
	suite.Require().ErrorAs(err, &upstream)
	suite.Equal(http.StatusTooManyRequests, upstream.StatusCode)
	suite.Equal(int32(3), calls.Load())
}

func (suite *GooglePlacesTestSuite) TestSearchText_DoesNotRetryClientErrors() {
	var calls atomic.Int32

	suite.mux.HandleFunc("POST /v1/places:searchText", func(w http.ResponseWriter, _ *http.Request) {
		calls.Add(1)
		w.WriteHeader(http.StatusForbidden)
	})

	_, err := suite.client.SearchText(context.Background(), "tsujita")

	var upstream *integrations.UpstreamError
	suite.Require().ErrorAs(err, &upstream)
	suite.Equal(http.StatusForbidden, upstream.StatusCode)
	suite.Equal(int32(1), calls.Load())
}

func (suite *GooglePlacesTestSuite) TestGetPlace_UsesDetailMask() {
	suite.mux.HandleFunc("GET /v1/places/{id}", func(w http.ResponseWriter, r *http.Request) {
		suite.Equal("ChIJabc", r.PathValue("id"))
		suite.Equal("id,displayName,formattedAddress,types,priceLevel,rating,userRatingCount,googleMapsUri,photos", r.Header.Get("X-Goog-FieldMask"))

		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"id":"ChIJabc","displayName":{"text":"Mikiya"},"formattedAddress":"14805 Jeffrey Rd, Irvine, CA 92618, USA","types":["shabu_shabu"]}`))
	})

	place, err := suite.client.GetPlace(context.Background(), "ChIJabc")

	suite.Require().NoError(err)
	suite.Equal("Mikiya", place.Name)
	suite.Empty(place.PriceLevel)
}

func (suite *GooglePlacesTestSuite) TestGetPlace_NotFound() {
	suite.mux.HandleFunc("GET /v1/places/{id}", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusNotFound)
	})

	_, err := suite.client.GetPlace(context.Background(), "missing")

	suite.ErrorIs(err, integrations.ErrPlaceNotFound)
}

func (suite *GooglePlacesTestSuite) TestPhotoURL_SkipsRedirect() {
	suite.mux.HandleFunc("GET /v1/places/ChIJ5cw/photos/AU_1/media", func(w http.ResponseWriter, r *http.Request) {
		suite.Equal("true", r.URL.Query().Get("skipHttpRedirect"))
		suite.Equal("800", r.URL.Query().Get("maxWidthPx"))
		suite.Equal("600", r.URL.Query().Get("maxHeightPx"))
		suite.Equal("test-key", r.URL.Query().Get("key"))

		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"name":"places/ChIJ5cw/photos/AU_1/media","photoUri":"https://lh3.example/photo.jpg"}`))
	})

	uri, err := suite.client.PhotoURL(context.Background(), "places/ChIJ5cw/photos/AU_1", 800, 600)

	suite.Require().NoError(err)
	suite.Equal("https://lh3.example/photo.jpg", uri)
}

func (suite *GooglePlacesTestSuite) TestFetchPhoto_ReturnsBytes() {
	suite.mux.HandleFunc("GET /v1/places/ChIJ5cw/photos/AU_1/media", func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Content-Type", "image/png")
		_, _ = w.Write([]byte("\x89PNG"))
	})

	photo, err := suite.client.FetchPhoto(context.Background(), "places/ChIJ5cw/photos/AU_1", 400, 300)

	suite.Require().NoError(err)
	suite.Equal("image/png", photo.ContentType)
	suite.Equal([]byte("\x89PNG"), photo.Data)
}

func (suite *GooglePlacesTestSuite) TestFetchPhoto_RejectsOddNames() {
	_, err := suite.client.FetchPhoto(context.Background(), "../../secrets", 400, 300)

	suite.ErrorIs(err, integrations.ErrInvalidRequest)
}

func (suite *GooglePlacesTestSuite) TestFetchReviews_CapsAndDefaultsAuthor() {
	suite.mux.HandleFunc("POST /v1/places:searchText", func(w http.ResponseWriter, r *http.Request) {
		var body map[string]any
		suite.NoError(json.NewDecoder(r.Body).Decode(&body))
		suite.Equal("Tsujita restaurant Sawtelle Los Angeles, CA", body["textQuery"])

		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(searchBody))
	})

	result, err := suite.client.FetchReviews(context.Background(), integrations.ReviewQuery{
		Name: "Tsujita", Area: "Sawtelle", Location: "Los Angeles, CA",
	})

	suite.Require().NoError(err)
	suite.InDelta(4.5, result.Summary.Rating, 0.001)
	suite.Equal(3210, result.Summary.ReviewCount)
	suite.Require().Len(result.Reviews, 2)
	suite.Equal("Kei", result.Reviews[0].Author)
	suite.Equal("https://p/1", *result.Reviews[0].AuthorPhoto)
	suite.Equal("Anonymous", result.Reviews[1].Author)
	suite.Nil(result.Reviews[1].AuthorPhoto)
	suite.Equal("2 months ago", result.Reviews[1].Date)
}
