package repository_test

import (
	"context"
	"database/sql"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/glebarez/sqlite"
	"github.com/stretchr/testify/suite"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"moul.io/zapgorm2"

	"droscher.com/RestaurantRandomizer/pkg/model"
	"droscher.com/RestaurantRandomizer/pkg/repository"
)

// RepositorySuite checks the SQL sent to postgres.
type RepositorySuite struct {
	suite.Suite
	DB           *gorm.DB
	mock         sqlmock.Sqlmock
	observedLogs *observer.ObservedLogs
	repository   repository.Repository
}

func (suite *RepositorySuite) SetupTest() {
	var (
		db              *sql.DB
		err             error
		observedZapCore zapcore.Core
	)

	observedZapCore, suite.observedLogs = observer.New(zap.InfoLevel)
	observedLogger := zap.New(observedZapCore)

	db, suite.mock, err = sqlmock.New()
	suite.Require().NoError(err)

	gormLogger := zapgorm2.New(observedLogger)
	gormLogger.SetAsDefault()

	suite.DB, err = gorm.Open(postgres.New(postgres.Config{Conn: db}), &gorm.Config{Logger: gormLogger, TranslateError: true})
	suite.NoError(err)

	suite.repository = repository.Repository{DB: suite.DB, Logger: observedLogger}
}

// StoreSuite runs the repository against an in-memory sqlite database.
type StoreSuite struct {
	suite.Suite
	repository *repository.Repository
}

func (suite *StoreSuite) SetupTest() {
	logger := zap.NewNop()

	db, err := gorm.Open(sqlite.Open("file::memory:?_pragma=foreign_keys(1)"), &gorm.Config{
		Logger:         zapgorm2.New(logger),
		TranslateError: true,
	})
	suite.Require().NoError(err)

	sqlDB, err := db.DB()
	suite.Require().NoError(err)
	sqlDB.SetMaxOpenConns(1)

	suite.repository = &repository.Repository{DB: db, Logger: logger}
	suite.Require().NoError(suite.repository.Migrate(context.Background()))
}

func (suite *StoreSuite) TearDownTest() {
	suite.repository.Close()
}

func (suite *StoreSuite) add(name, region, area, cuisine, price string) *model.Restaurant {
	restaurant, err := suite.repository.AddRestaurant(context.Background(), model.Restaurant{
		Name: name, Region: region, Area: area, Cuisine: cuisine, Price: price,
	})
	suite.Require().NoError(err)

	return restaurant
}
