package configs_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/suite"
	"go.uber.org/zap/zaptest"

	"droscher.com/RestaurantRandomizer/configs"
)

type ConfigTestSuite struct {
	suite.Suite
}

func TestConfigTestSuite(t *testing.T) {
	suite.Run(t, new(ConfigTestSuite))
}

func (suite *ConfigTestSuite) TestGetConfig_GetsNamedFile() {
	logger := zaptest.NewLogger(suite.T())

	config, err := configs.GetConfig("testdata/config.toml", logger)

	suite.Require().NoError(err)
	suite.Equal(configs.DriverPostgres, config.DB.Driver)
	suite.Equal("test.local", config.DB.Host)
	suite.Equal(1234, config.DB.Port)
	suite.Equal("testuser", config.DB.User)
	suite.Equal("test123", config.DB.Password)
	suite.Equal("testdb", config.DB.Database)
	suite.Equal(5, config.DB.MaxIdleConnections)
	suite.Equal(7, config.DB.MaxOpenConnections)
	suite.Equal(666, config.Server.Port)
	suite.Equal([]string{"http://localhost:5173"}, config.Server.AllowedOrigins)
	suite.Equal("places-key", config.Google.APIKey)
	suite.Equal(uint(4), config.Google.RetryAttempts)
	suite.Equal("yelp-key", config.Yelp.APIKey)
	suite.Equal([]string{"google", "yelp"}, config.Integrations.Reviews)
	suite.Equal("mappings.yaml", config.Ingest.MappingsFile)
}

func (suite *ConfigTestSuite) TestGetConfig_AppliesDefaults() {
	logger := zaptest.NewLogger(suite.T())

	config, err := configs.GetConfig("testdata/config.toml", logger)

	suite.Require().NoError(err)
	suite.Equal("https://places.googleapis.com/v1", config.Google.BaseURL)
	suite.Equal(10*time.Second, config.Google.Timeout)
	suite.Equal(5*time.Second, config.Server.ReadHeaderTimeout)
	suite.Equal("https://www.tiktok.com/oembed", config.Social.TikTokOEmbedURL)
	suite.Equal(5242880, config.Diary.MaxPhotoBytes)
}

func (suite *ConfigTestSuite) TestGetConfig_GetsEnv() {
	logger := zaptest.NewLogger(suite.T())

	suite.T().Setenv("RANDOMIZER_DB_HOST", "test.local")
	suite.T().Setenv("RANDOMIZER_DB_PORT", "1234")
	suite.T().Setenv("RANDOMIZER_DB_USER", "testuser")
	suite.T().Setenv("RANDOMIZER_DB_PASSWORD", "test123")
	suite.T().Setenv("RANDOMIZER_DB_DATABASE", "testdb")
	suite.T().Setenv("RANDOMIZER_DB_MAXIDLECONNECTIONS", "5")
	suite.T().Setenv("RANDOMIZER_DB_MAXOPENCONNECTIONS", "7")
	suite.T().Setenv("RANDOMIZER_SERVER_PORT", "666")
	suite.T().Setenv("RANDOMIZER_GOOGLE_APIKEY", "env-places-key")
	suite.T().Setenv("RANDOMIZER_INTEGRATIONS_REVIEWS", "yelp")

	config, err := configs.GetConfig("", logger)

	suite.Require().NoError(err)
	suite.Equal("test.local", config.DB.Host)
	suite.Equal(1234, config.DB.Port)
	suite.Equal("testuser", config.DB.User)
	suite.Equal("test123", config.DB.Password)
	suite.Equal("testdb", config.DB.Database)
	suite.Equal(5, config.DB.MaxIdleConnections)
	suite.Equal(7, config.DB.MaxOpenConnections)
	suite.Equal(666, config.Server.Port)
	suite.Equal("env-places-key", config.Google.APIKey)
	suite.Equal([]string{"yelp"}, config.Integrations.Reviews)
}

func (suite *ConfigTestSuite) TestGetConfig_EnvOverridesFile() {
	logger := zaptest.NewLogger(suite.T())

	suite.T().Setenv("RANDOMIZER_DB_HOST", "env.local")
	suite.T().Setenv("RANDOMIZER_DB_USER", "envuser")
	suite.T().Setenv("RANDOMIZER_DB_PASSWORD", "env123")
	suite.T().Setenv("RANDOMIZER_GOOGLE_APIKEY", "env-places-key")

	config, err := configs.GetConfig("testdata/config.toml", logger)

	suite.Require().NoError(err)
	suite.Equal("env.local", config.DB.Host)
	suite.Equal(1234, config.DB.Port)
	suite.Equal("envuser", config.DB.User)
	suite.Equal("env123", config.DB.Password)
	suite.Equal("testdb", config.DB.Database)
	suite.Equal("env-places-key", config.Google.APIKey)
	suite.Equal("yelp-key", config.Yelp.APIKey)
}

func (suite *ConfigTestSuite) TestGetConfig_SQLiteNeedsNoHost() {
	logger := zaptest.NewLogger(suite.T())

	config, err := configs.GetConfig("testdata/sqlite.toml", logger)

	suite.Require().NoError(err)
	suite.Equal(configs.DriverSQLite, config.DB.Driver)
	suite.Equal("/tmp/restaurants.db", config.DB.Path)
	suite.Empty(config.DB.Host)
}

func (suite *ConfigTestSuite) TestGetConfig_MissingFileReturnsError() {
	logger := zaptest.NewLogger(suite.T())

	config, err := configs.GetConfig("testdata/missing.toml", logger)

	suite.Nil(config)
	suite.Error(err)
}

func (suite *ConfigTestSuite) TestGetConfig_MissingValues() {
	logger := zaptest.NewLogger(suite.T())

	config, err := configs.GetConfig("", logger)

	suite.Nil(config)
	suite.ErrorIs(err, configs.ErrConfiguration)
	suite.EqualError(err, "configuration error: DB.Host: required for postgres; configuration error: DB.Password: required for postgres")
}

func (suite *ConfigTestSuite) TestValidate_UnknownDriver() {
	config := configs.Config{DB: configs.DB{Driver: "mysql"}, Diary: configs.Diary{MaxPhotoBytes: 1}}

	err := config.Validate()

	suite.ErrorIs(err, configs.ErrConfiguration)
	suite.ErrorContains(err, `unknown driver "mysql"`)
}
