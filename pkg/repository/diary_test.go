package repository_test

import (
	"context"
	"regexp"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/suite"
	"go.openly.dev/pointy"

	"droscher.com/RestaurantRandomizer/pkg/model"
	"droscher.com/RestaurantRandomizer/pkg/repository"
)

type DiarySQLTestSuite struct {
	RepositorySuite
}

func TestDiarySQLTestSuite(t *testing.T) {
	suite.Run(t, new(DiarySQLTestSuite))
}

func (suite *DiarySQLTestSuite) TearDownTest() {
	suite.NoError(suite.mock.ExpectationsWereMet())
}

func (suite *DiarySQLTestSuite) TestListDiaryEntries_NewestVisitFirst() {
	suite.mock.ExpectQuery(regexp.QuoteMeta(`SELECT * FROM "food_diary" ORDER BY visit_date DESC,created_at DESC`)).
		WillReturnRows(sqlmock.NewRows([]string{"id", "restaurant_id", "restaurant_name", "photo_url", "visit_date", "created_at"}).
			AddRow(2, nil, "Mikiya", "data:image/png;base64,AA", time.Date(2024, 5, 2, 0, 0, 0, 0, time.UTC), time.Now()).
			AddRow(1, 3, "Tanakaya", "data:image/png;base64,AA", time.Date(2024, 4, 1, 0, 0, 0, 0, time.UTC), time.Now()))

	entries, err := suite.repository.ListDiaryEntries(context.Background())

	suite.Require().NoError(err)
	suite.Require().Len(entries, 2)
	suite.Nil(entries[0].RestaurantID)
	suite.Equal("2024-05-02", entries[0].VisitDate.String())
	suite.Equal(uint(3), *entries[1].RestaurantID)
}

func (suite *DiarySQLTestSuite) TestDeleteDiaryEntry_NotFound() {
	suite.mock.ExpectBegin()
	suite.mock.ExpectExec(regexp.QuoteMeta(`DELETE FROM "food_diary" WHERE "food_diary"."id" = $1`)).
		WithArgs(12).
		WillReturnResult(sqlmock.NewResult(0, 0))
	suite.mock.ExpectCommit()

	err := suite.repository.DeleteDiaryEntry(context.Background(), 12)

	suite.ErrorIs(err, repository.ErrDiaryEntryNotFound)
}

type DiaryStoreTestSuite struct {
	StoreSuite
}

func TestDiaryStoreTestSuite(t *testing.T) {
	suite.Run(t, new(DiaryStoreTestSuite))
}

func (suite *DiaryStoreTestSuite) TestAddAndList_OrdersByVisitThenCreation() {
	ctx := context.Background()
	restaurant := suite.add("Yetgol", "LA", "Ktown", "Korean", "$")

	_, err := suite.repository.AddDiaryEntry(ctx, model.DiaryEntry{
		RestaurantName: "Older visit", PhotoURL: "data:image/png;base64,AA", VisitDate: model.NewDate(2024, 1, 5),
	})
	suite.Require().NoError(err)

	_, err = suite.repository.AddDiaryEntry(ctx, model.DiaryEntry{
		RestaurantID: &restaurant.ID, RestaurantName: restaurant.Name, PhotoURL: "data:image/png;base64,AA",
		Comment: pointy.String("galbi jjim"), VisitDate: model.NewDate(2024, 2, 1),
	})
	suite.Require().NoError(err)

	entries, err := suite.repository.ListDiaryEntries(ctx)
	suite.Require().NoError(err)
	suite.Require().Len(entries, 2)
	suite.Equal("Yetgol", entries[0].RestaurantName)
	suite.Equal("galbi jjim", *entries[0].Comment)
	suite.Equal("2024-02-01", entries[0].VisitDate.String())
	suite.Equal("Older visit", entries[1].RestaurantName)

	forRestaurant, err := suite.repository.ListDiaryEntriesForRestaurant(ctx, restaurant.ID)
	suite.Require().NoError(err)
	suite.Len(forRestaurant, 1)
}

func (suite *DiaryStoreTestSuite) TestDeleteDiaryEntry() {
	ctx := context.Background()

	entry, err := suite.repository.AddDiaryEntry(ctx, model.DiaryEntry{
		RestaurantName: "Borit Gogae", PhotoURL: "data:image/png;base64,AA", VisitDate: model.NewDate(2023, 12, 24),
	})
	suite.Require().NoError(err)

	suite.Require().NoError(suite.repository.DeleteDiaryEntry(ctx, entry.ID))
	suite.ErrorIs(suite.repository.DeleteDiaryEntry(ctx, entry.ID), repository.ErrDiaryEntryNotFound)
}

func (suite *DiaryStoreTestSuite) TestAddDiaryEntry_UnknownRestaurant() {
	_, err := suite.repository.AddDiaryEntry(context.Background(), model.DiaryEntry{
		RestaurantID: pointy.Uint(404), RestaurantName: "Ghost Kitchen", PhotoURL: "data:image/png;base64,AA",
		VisitDate: model.NewDate(2024, 3, 9),
	})

	suite.ErrorIs(err, repository.ErrRestaurantNotFound)
}
