package cmd

import (
	"testing"

	"github.com/alecthomas/kong"
	"github.com/stretchr/testify/suite"
	"go.uber.org/zap/zapcore"
)

type RootTestSuite struct {
	suite.Suite
}

func TestRootTestSuite(t *testing.T) {
	suite.Run(t, new(RootTestSuite))
}

func (suite *RootTestSuite) parse(args ...string) *kong.Context {
	parser, err := kong.New(&CLI, kong.Name("Restaurant Randomizer"))
	suite.Require().NoError(err)

	ctx, err := parser.Parse(args)
	suite.Require().NoError(err)

	return ctx
}

func (suite *RootTestSuite) TestServeMigratesBeforeSeedingByDefault() {
	ctx := suite.parse()

	suite.Equal("serve", ctx.Command())
	suite.True(CLI.Serve.Migrate)
	suite.True(CLI.Serve.Seed)
}

func (suite *RootTestSuite) TestServeFlagsCanBeTurnedOff() {
	suite.parse("serve", "--no-migrate", "--no-seed")

	suite.False(CLI.Serve.Migrate)
	suite.False(CLI.Serve.Seed)
}

func (suite *RootTestSuite) TestNewLogger() {
	logger, err := newLogger(&Context{}, true)
	suite.Require().NoError(err)
	suite.False(logger.Core().Enabled(zapcore.DebugLevel))

	logger, err = newLogger(&Context{Debug: true}, true)
	suite.Require().NoError(err)
	suite.True(logger.Core().Enabled(zapcore.DebugLevel))

	logger, err = newLogger(&Context{}, false)
	suite.Require().NoError(err)
	suite.True(logger.Core().Enabled(zapcore.DebugLevel))
}
