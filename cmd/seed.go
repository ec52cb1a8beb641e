package cmd

import (
	"context"
	"os"

	"go.uber.org/zap"

	"droscher.com/RestaurantRandomizer/configs"
	"droscher.com/RestaurantRandomizer/pkg/model"
	"droscher.com/RestaurantRandomizer/pkg/repository"
	"droscher.com/RestaurantRandomizer/pkg/seed"
)

type SeedCmd struct {
	ConfigFile string `default:".RestaurantRandomizer.toml" help:"Path to config file"                               short:"c"`
	File       string `help:"YAML restaurant list to load instead of the built in one" short:"f" type:"existingfile"`
}

func (s *SeedCmd) Run(ctx *Context) error {
	logger, err := newLogger(ctx, false)
	if err != nil {
		return err
	}
	defer logger.Sync() //nolint:errcheck // we don't care about logger sync errors

	conf, err := configs.GetConfig(s.ConfigFile, logger)
	if err != nil {
		logger.Error("error loading config", zap.Error(err))

		return err
	}

	restaurants, err := s.restaurants()
	if err != nil {
		logger.Error("error reading seed data", zap.String("file", s.File), zap.Error(err))

		return err
	}

	repo, err := repository.Open(conf, logger)
	if err != nil {
		logger.Error("error connecting to database", zap.Error(err))

		return err
	}
	defer repo.Close()

	_, err = seed.IfEmpty(context.Background(), repo, restaurants, logger)

	return err
}

func (s *SeedCmd) restaurants() ([]model.Restaurant, error) {
	if s.File == "" {
		return seed.Restaurants()
	}

	data, err := os.ReadFile(s.File)
	if err != nil {
		return nil, err
	}

	return seed.Parse(data)
}
