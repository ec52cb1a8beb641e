package cmd

import (
	"fmt"

	"go.uber.org/zap"
)

type Context struct {
	Debug bool
}

var CLI struct {
	Debug bool `help:"Enable debug mode"`

	Serve   ServeCmd   `cmd:"" default:"1" help:"Run the server"`
	Migrate MigrateCmd `cmd:""             help:"Run database migrations"`
	Seed    SeedCmd    `cmd:""             help:"Load the starter restaurant list into an empty database"`
}

// newLogger builds the production logger unless production is false or the
// debug flag is set.
func newLogger(ctx *Context, production bool) (*zap.Logger, error) {
	logConfig := zap.NewProductionConfig()
	if !production || ctx.Debug {
		logConfig = zap.NewDevelopmentConfig()
		logConfig.DisableStacktrace = true
	}

	logger, err := logConfig.Build()
	if err != nil {
		return nil, fmt.Errorf("building logger: %w", err)
	}

	return logger, nil
}
