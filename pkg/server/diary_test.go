package server_test

import (
	"context"
	"encoding/base64"
	"fmt"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
	"go.openly.dev/pointy"
	"go.uber.org/zap/zaptest"

	"droscher.com/RestaurantRandomizer/mocks"
	"droscher.com/RestaurantRandomizer/pkg/model"
	"droscher.com/RestaurantRandomizer/pkg/repository"
	"droscher.com/RestaurantRandomizer/pkg/server"
)

const maxPhotoBytes = 64

var pngBytes = []byte("\x89PNG\r\n\x1a\n\x00\x00\x00\rIHDR\x00\x00\x00\x01\x00\x00\x00\x01\x08\x06\x00\x00\x00")

func dataURI(mediaType string, data []byte) string {
	return "data:" + mediaType + ";base64," + base64.StdEncoding.EncodeToString(data)
}

type DiaryServiceTestSuite struct {
	suite.Suite
	ctx            context.Context
	diaryRepo      *mocks.DiaryRepository
	restaurantRepo *mocks.RestaurantRepository
	service        *server.DiaryService
}

func TestDiaryServiceTestSuite(t *testing.T) {
	suite.Run(t, new(DiaryServiceTestSuite))
}

func (suite *DiaryServiceTestSuite) SetupTest() {
	suite.ctx = context.Background()
	suite.diaryRepo = mocks.NewDiaryRepository(suite.T())
	suite.restaurantRepo = mocks.NewRestaurantRepository(suite.T())
	suite.service = server.NewDiaryService(suite.diaryRepo, suite.restaurantRepo, maxPhotoBytes, zaptest.NewLogger(suite.T()))
}

func (suite *DiaryServiceTestSuite) TestAdd_StoresEntry() {
	photo := dataURI("image/png", pngBytes)

	suite.restaurantRepo.EXPECT().GetRestaurantByID(suite.ctx, uint(3)).Return(&model.Restaurant{ID: 3}, nil)
	suite.diaryRepo.EXPECT().AddDiaryEntry(suite.ctx, model.DiaryEntry{
		RestaurantID:   pointy.Uint(3),
		RestaurantName: "Mikiya",
		PhotoURL:       photo,
		Comment:        pointy.String("wagyu was great"),
		VisitDate:      model.NewDate(2024, time.May, 4),
	}).RunAndReturn(func(_ context.Context, entry model.DiaryEntry) (*model.DiaryEntry, error) {
		entry.ID = 1

		return &entry, nil
	})

	entry, err := suite.service.Add(suite.ctx, server.NewDiaryEntry{
		RestaurantID:   pointy.Uint(3),
		RestaurantName: "Mikiya ",
		PhotoURL:       photo,
		Comment:        pointy.String("wagyu was great"),
		VisitDate:      "2024-05-04",
	})

	suite.Require().NoError(err)
	suite.Equal(uint(1), entry.ID)
}

func (suite *DiaryServiceTestSuite) TestAdd_UnknownRestaurant() {
	suite.restaurantRepo.EXPECT().GetRestaurantByID(suite.ctx, uint(404)).Return(nil, repository.ErrRestaurantNotFound)

	_, err := suite.service.Add(suite.ctx, server.NewDiaryEntry{
		RestaurantID: pointy.Uint(404), RestaurantName: "Mikiya", PhotoURL: dataURI("image/png", pngBytes), VisitDate: "2024-05-04",
	})

	suite.ErrorIs(err, server.ErrValidation)
	suite.ErrorContains(err, "restaurant_id 404 does not match a restaurant")
	suite.diaryRepo.AssertNotCalled(suite.T(), "AddDiaryEntry", mock.Anything, mock.Anything)
}

func (suite *DiaryServiceTestSuite) TestAdd_RestaurantDeletedBeforeInsert() {
	suite.restaurantRepo.EXPECT().GetRestaurantByID(suite.ctx, uint(7)).Return(&model.Restaurant{ID: 7}, nil)
	suite.diaryRepo.EXPECT().AddDiaryEntry(suite.ctx, mock.Anything).
		Return(nil, fmt.Errorf("%w: 7", repository.ErrRestaurantNotFound))

	_, err := suite.service.Add(suite.ctx, server.NewDiaryEntry{
		RestaurantID: pointy.Uint(7), RestaurantName: "Mikiya", PhotoURL: dataURI("image/png", pngBytes), VisitDate: "2024-05-04",
	})

	suite.ErrorIs(err, server.ErrValidation)
}

func (suite *DiaryServiceTestSuite) TestAdd_MissingFields() {
	_, err := suite.service.Add(suite.ctx, server.NewDiaryEntry{RestaurantName: "Mikiya"})

	suite.ErrorIs(err, server.ErrValidation)
	suite.ErrorContains(err, "missing required fields: photo_url, visit_date")
}

func (suite *DiaryServiceTestSuite) TestAdd_RejectsBadInput() {
	tests := []struct {
		name      string
		photo     string
		visitDate string
		message   string
	}{
		{"date format", dataURI("image/png", pngBytes), "05/04/2024", "visit_date must be formatted as YYYY-MM-DD"},
		{"remote url", "https://example.com/photo.png", "2024-05-04", "must be a base64 encoded image data URI"},
		{"not an image uri", dataURI("text/plain", pngBytes), "2024-05-04", "must be a base64 encoded image data URI"},
		{"bad base64", "data:image/png;base64,!!!", "2024-05-04", "not valid base64"},
		{"too large", dataURI("image/png", append(pngBytes, make([]byte, maxPhotoBytes)...)), "2024-05-04", "exceeds the 64 byte limit"},
		{"not a picture", dataURI("image/png", []byte(strings.Repeat("hello ", 4))), "2024-05-04", "unsupported photo type text/plain"},
	}

	for _, tt := range tests {
		suite.Run(tt.name, func() {
			_, err := suite.service.Add(suite.ctx, server.NewDiaryEntry{
				RestaurantName: "Mikiya", PhotoURL: tt.photo, VisitDate: tt.visitDate,
			})

			suite.ErrorIs(err, server.ErrValidation)
			suite.ErrorContains(err, tt.message)
		})
	}
}

func (suite *DiaryServiceTestSuite) TestAdd_AcceptsJPEG() {
	jpeg := []byte("\xff\xd8\xff\xe0\x00\x10JFIF\x00\x01\x01\x00\x00\x01\x00\x01\x00\x00")

	suite.diaryRepo.EXPECT().AddDiaryEntry(suite.ctx, mock.Anything).Return(&model.DiaryEntry{ID: 2}, nil)

	_, err := suite.service.Add(suite.ctx, server.NewDiaryEntry{
		RestaurantName: "Mikiya", PhotoURL: dataURI("image/jpeg", jpeg), VisitDate: "2024-05-04",
	})

	suite.NoError(err)
}

func (suite *DiaryServiceTestSuite) TestListForRestaurant_UnknownRestaurant() {
	suite.restaurantRepo.EXPECT().GetRestaurantByID(suite.ctx, uint(5)).Return(nil, repository.ErrRestaurantNotFound)

	_, err := suite.service.ListForRestaurant(suite.ctx, 5)

	suite.ErrorIs(err, repository.ErrRestaurantNotFound)
}

func (suite *DiaryServiceTestSuite) TestListForRestaurant() {
	suite.restaurantRepo.EXPECT().GetRestaurantByID(suite.ctx, uint(5)).Return(&model.Restaurant{ID: 5}, nil)
	suite.diaryRepo.EXPECT().ListDiaryEntriesForRestaurant(suite.ctx, uint(5)).
		Return([]*model.DiaryEntry{{ID: 1, RestaurantID: pointy.Uint(5)}}, nil)

	entries, err := suite.service.ListForRestaurant(suite.ctx, 5)

	suite.Require().NoError(err)
	suite.Len(entries, 1)
}
