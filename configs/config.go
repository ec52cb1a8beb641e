package configs

import (
	"errors"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/kkyr/fig"
	"go.uber.org/multierr"
	"go.uber.org/zap"
)

const (
	DriverPostgres = "postgres"
	DriverSQLite   = "sqlite"
)

type DB struct {
	Driver             string `default:"postgres"`
	Host               string
	Port               int    `default:"5432"`
	User               string `default:"postgres"`
	Password           string
	Database           string `default:"postgres"`
	Path               string `default:"restaurants.db"`
	MaxIdleConnections int    `default:"10"`
	MaxOpenConnections int    `default:"10"`
}

type Server struct {
	Port              int           `default:"3000"`
	AllowedOrigins    []string      `default:"*"`
	ReadHeaderTimeout time.Duration `default:"5s"`
}

// Google holds the Places API (New) credentials. An empty APIKey is allowed
// at startup; place lookups fail with a missing credential error instead.
type Google struct {
	APIKey        string
	BaseURL       string        `default:"https://places.googleapis.com/v1"`
	Timeout       time.Duration `default:"10s"`
	RetryAttempts uint          `default:"2"`
}

type Yelp struct {
	APIKey  string
	BaseURL string `default:"https://api.yelp.com/v3"`
}

type Social struct {
	UserAgent       string        `default:"Mozilla/5.0 (compatible; RestaurantRandomizer/1.0)"`
	TikTokOEmbedURL string        `default:"https://www.tiktok.com/oembed"`
	Timeout         time.Duration `default:"10s"`
}

type Integrations struct {
	Reviews []string `default:"google"`
}

type Ingest struct {
	MappingsFile string
}

type Diary struct {
	MaxPhotoBytes int `default:"5242880"`
}

type Config struct {
	DB           DB
	Server       Server
	Google       Google
	Yelp         Yelp
	Social       Social
	Integrations Integrations
	Ingest       Ingest
	Diary        Diary
}

const envPrefix = "RANDOMIZER" // env prefix for env vars

var ErrConfiguration = errors.New("configuration error")

func GetConfig(configFileName string, logger *zap.Logger) (*Config, error) {
	config := Config{}
	homeDir, _ := os.UserHomeDir()

	logger.Info("Loading config", zap.String("file", configFileName))

	err := fig.Load(&config, fig.File(configFileName), fig.Dirs(".", homeDir), fig.UseEnv(envPrefix))
	if err != nil {
		if strings.Contains(err.Error(), "file not found") {
			logger.Warn("Could not find config file", zap.String("file", configFileName))

			err = fig.Load(&config, fig.IgnoreFile(), fig.UseEnv(envPrefix))
			if err != nil {
				return nil, err
			}
		} else {
			return nil, err
		}
	}

	if err = config.Validate(); err != nil {
		return nil, err
	}

	return &config, nil
}

// Validate checks the fields the chosen database driver depends on.
func (c *Config) Validate() error {
	var errs error

	switch c.DB.Driver {
	case DriverPostgres:
		if c.DB.Host == "" {
			errs = multierr.Append(errs, fmt.Errorf("%w: DB.Host: required for %s", ErrConfiguration, DriverPostgres))
		}

		if c.DB.Password == "" {
			errs = multierr.Append(errs, fmt.Errorf("%w: DB.Password: required for %s", ErrConfiguration, DriverPostgres))
		}
	case DriverSQLite:
		if c.DB.Path == "" {
			errs = multierr.Append(errs, fmt.Errorf("%w: DB.Path: required for %s", ErrConfiguration, DriverSQLite))
		}
	default:
		errs = multierr.Append(errs, fmt.Errorf("%w: DB.Driver: unknown driver %q", ErrConfiguration, c.DB.Driver))
	}

	if c.Diary.MaxPhotoBytes <= 0 {
		errs = multierr.Append(errs, fmt.Errorf("%w: Diary.MaxPhotoBytes: must be positive", ErrConfiguration))
	}

	return errs
}
