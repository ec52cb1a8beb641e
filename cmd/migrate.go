package cmd

import (
	"context"

	"go.uber.org/zap"

	"droscher.com/RestaurantRandomizer/configs"
	"droscher.com/RestaurantRandomizer/pkg/repository"
)

type MigrateCmd struct {
	ConfigFile string `default:".RestaurantRandomizer.toml" help:"Path to config file" short:"c"`
}

func (m *MigrateCmd) Run(ctx *Context) error {
	logger, err := newLogger(ctx, false)
	if err != nil {
		return err
	}
	defer logger.Sync() //nolint:errcheck // we don't care about logger sync errors

	conf, err := configs.GetConfig(m.ConfigFile, logger)
	if err != nil {
		logger.Error("error loading config", zap.Error(err))

		return err
	}

	repo, err := repository.Open(conf, logger)
	if err != nil {
		logger.Error("error connecting to database", zap.Error(err))

		return err
	}
	defer repo.Close()

	if err = repo.Migrate(context.Background()); err != nil {
		logger.Error("migration failed", zap.Error(err))

		return err
	}

	logger.Info("migrations complete", zap.String("driver", conf.DB.Driver))

	return nil
}
