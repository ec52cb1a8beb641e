package repository

import (
	"context"
	"fmt"
	"time"

	"github.com/glebarez/sqlite"
	"go.uber.org/zap"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"moul.io/zapgorm2"

	"droscher.com/RestaurantRandomizer/configs"
	"droscher.com/RestaurantRandomizer/pkg/model"
)

type Repository struct {
	DB     *gorm.DB
	Logger *zap.Logger
}

const (
	maxIdleTime = 5 * time.Minute
	maxLifetime = time.Hour
)

func dialector(conf *configs.Config) (gorm.Dialector, error) {
	switch conf.DB.Driver {
	case configs.DriverPostgres:
		dsn := fmt.Sprintf("host=%s user=%s password=%s dbname=%s port=%d sslmode=disable TimeZone=UTC",
			conf.DB.Host, conf.DB.User, conf.DB.Password, conf.DB.Database, conf.DB.Port)

		return postgres.Open(dsn), nil
	case configs.DriverSQLite:
		return sqlite.Open(conf.DB.Path + "?_pragma=foreign_keys(1)&_pragma=busy_timeout(5000)"), nil
	default:
		return nil, fmt.Errorf("%w: unknown database driver %q", configs.ErrConfiguration, conf.DB.Driver)
	}
}

func Open(conf *configs.Config, logger *zap.Logger) (*Repository, error) {
	dial, err := dialector(conf)
	if err != nil {
		return nil, err
	}

	gormLogger := zapgorm2.New(logger)
	gormLogger.SetAsDefault()

	db, err := gorm.Open(dial, &gorm.Config{Logger: gormLogger, TranslateError: true})
	if err != nil {
		return nil, err
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, err
	}

	if conf.DB.Driver == configs.DriverSQLite {
		// sqlite allows a single writer
		sqlDB.SetMaxOpenConns(1)
	} else {
		sqlDB.SetMaxIdleConns(conf.DB.MaxIdleConnections)
		sqlDB.SetMaxOpenConns(conf.DB.MaxOpenConnections)
	}

	sqlDB.SetConnMaxIdleTime(maxIdleTime)
	sqlDB.SetConnMaxLifetime(maxLifetime)

	return &Repository{DB: db, Logger: logger}, err
}

func (r *Repository) Close() {
	sqlDB, err := r.DB.DB()
	if err == nil && sqlDB != nil {
		_ = sqlDB.Close()
	}
}

func (r *Repository) Ping(ctx context.Context) error {
	sqlDB, err := r.DB.DB()
	if err != nil {
		return err
	}

	return sqlDB.PingContext(ctx)
}

// Migrate creates or updates the schema, including the case-insensitive
// uniqueness index on restaurant name within a region.
func (r *Repository) Migrate(ctx context.Context) error {
	db := r.DB.WithContext(ctx)

	if err := db.AutoMigrate(&model.Restaurant{}, &model.Review{}, &model.DiaryEntry{}); err != nil {
		return err
	}

	return db.Exec("CREATE UNIQUE INDEX IF NOT EXISTS idx_restaurants_name_county ON restaurants (LOWER(name), county)").Error
}
