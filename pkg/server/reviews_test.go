package server_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
	"go.openly.dev/pointy"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"

	"droscher.com/RestaurantRandomizer/mocks"
	"droscher.com/RestaurantRandomizer/pkg/ingest"
	"droscher.com/RestaurantRandomizer/pkg/integrations"
	"droscher.com/RestaurantRandomizer/pkg/model"
	"droscher.com/RestaurantRandomizer/pkg/server"
)

type ReviewServiceTestSuite struct {
	suite.Suite
	ctx          context.Context
	google       *mocks.ReviewSource
	yelp         *mocks.ReviewSource
	reviewRepo   *mocks.ReviewRepository
	service      *server.ReviewService
	observedLogs *observer.ObservedLogs
}

func TestReviewServiceTestSuite(t *testing.T) {
	suite.Run(t, new(ReviewServiceTestSuite))
}

func (suite *ReviewServiceTestSuite) SetupTest() {
	mappings, err := ingest.LoadMappings("")
	suite.Require().NoError(err)

	observedZapCore, observedLogs := observer.New(zap.InfoLevel)
	suite.observedLogs = observedLogs

	suite.ctx = context.Background()
	suite.google = mocks.NewReviewSource(suite.T())
	suite.yelp = mocks.NewReviewSource(suite.T())
	suite.reviewRepo = mocks.NewReviewRepository(suite.T())

	suite.google.EXPECT().Name().Return("google").Maybe()
	suite.yelp.EXPECT().Name().Return("yelp").Maybe()

	suite.service = server.NewReviewService(
		[]integrations.ReviewSource{suite.google, suite.yelp}, suite.reviewRepo, mappings, zap.New(observedZapCore))
}

var mikiyaQuery = integrations.ReviewQuery{Name: "Mikiya", Area: "Irvine", Location: "Orange County, CA"}

func googleResult() *integrations.ReviewResult {
	return &integrations.ReviewResult{
		Summary: model.ReviewSummary{Source: "google", Rating: 4.6, ReviewCount: 812},
		Reviews: []model.Review{{Source: "google", Author: "Kei", Rating: 5, Text: "Great broth", Date: "a week ago"}},
	}
}

func (suite *ReviewServiceTestSuite) TestFetch_SkipsFailingSource() {
	suite.google.EXPECT().FetchReviews(suite.ctx, mikiyaQuery).Return(googleResult(), nil)
	suite.yelp.EXPECT().FetchReviews(suite.ctx, mikiyaQuery).Return(nil, errors.New("yelp is down"))

	response, err := suite.service.Fetch(suite.ctx, server.ReviewRequest{Name: "Mikiya", Area: "Irvine", Region: "OC"})

	suite.Require().NoError(err)
	suite.Len(response.Reviews, 1)
	suite.Require().NotNil(response.Google)
	suite.InDelta(4.6, response.Google.Rating, 0.001)
	suite.Equal(812, response.Google.ReviewCount)
	suite.False(response.Cached)
	suite.Equal(1, suite.observedLogs.FilterMessage("review source failed").Len())
}

func (suite *ReviewServiceTestSuite) TestFetch_CachesPerSource() {
	result := googleResult()

	suite.google.EXPECT().FetchReviews(suite.ctx, mikiyaQuery).Return(result, nil)
	suite.yelp.EXPECT().FetchReviews(suite.ctx, mikiyaQuery).Return(nil, integrations.ErrPlaceNotFound)
	suite.reviewRepo.EXPECT().ReplaceCachedReviews(suite.ctx, uint(7), "google", result.Reviews).Return(nil)

	response, err := suite.service.Fetch(suite.ctx, server.ReviewRequest{
		Name: "Mikiya", Area: "Irvine", Region: "OC", RestaurantID: pointy.Uint(7),
	})

	suite.Require().NoError(err)
	suite.Len(response.Summaries, 1)
}

func (suite *ReviewServiceTestSuite) TestFetch_NothingFound() {
	suite.google.EXPECT().FetchReviews(suite.ctx, mock.Anything).Return(nil, integrations.ErrPlaceNotFound)
	suite.yelp.EXPECT().FetchReviews(suite.ctx, mock.Anything).Return(nil, integrations.ErrPlaceNotFound)

	response, err := suite.service.Fetch(suite.ctx, server.ReviewRequest{Name: "Nowhere"})

	suite.Require().NoError(err)
	suite.Empty(response.Reviews)
	suite.Nil(response.Google)
}

func (suite *ReviewServiceTestSuite) TestFetch_ServesCacheWhenAllFail() {
	suite.google.EXPECT().FetchReviews(suite.ctx, mikiyaQuery).Return(nil, errors.New("timeout"))
	suite.yelp.EXPECT().FetchReviews(suite.ctx, mikiyaQuery).Return(nil, integrations.ErrMissingCredential)
	suite.reviewRepo.EXPECT().GetCachedReviews(suite.ctx, uint(7)).
		Return([]*model.Review{{Source: "google", Author: "Kei", Rating: 5}}, nil)

	response, err := suite.service.Fetch(suite.ctx, server.ReviewRequest{
		Name: "Mikiya", Area: "Irvine", Region: "OC", RestaurantID: pointy.Uint(7),
	})

	suite.Require().NoError(err)
	suite.True(response.Cached)
	suite.Equal("Kei", response.Reviews[0].Author)
}

func (suite *ReviewServiceTestSuite) TestFetch_AllFailWithoutCache() {
	suite.google.EXPECT().FetchReviews(suite.ctx, mikiyaQuery).Return(nil, errors.New("timeout"))
	suite.yelp.EXPECT().FetchReviews(suite.ctx, mikiyaQuery).Return(nil, integrations.ErrMissingCredential)

	response, err := suite.service.Fetch(suite.ctx, server.ReviewRequest{Name: "Mikiya", Area: "Irvine", Region: "OC"})

	suite.Nil(response)
	suite.ErrorIs(err, integrations.ErrMissingCredential)
	suite.ErrorContains(err, "google: timeout")
}
