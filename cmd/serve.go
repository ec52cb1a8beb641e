package cmd

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/rs/cors"
	"go.uber.org/zap"
	"golang.org/x/net/http2"
	"golang.org/x/net/http2/h2c"

	"droscher.com/RestaurantRandomizer/configs"
	"droscher.com/RestaurantRandomizer/pkg/ingest"
	"droscher.com/RestaurantRandomizer/pkg/integrations/googleplaces"
	"droscher.com/RestaurantRandomizer/pkg/integrations/registry"
	"droscher.com/RestaurantRandomizer/pkg/integrations/socialweb"
	"droscher.com/RestaurantRandomizer/pkg/repository"
	"droscher.com/RestaurantRandomizer/pkg/seed"
	"droscher.com/RestaurantRandomizer/pkg/server"
)

const shutdownTimeout = 10 * time.Second

type ServeCmd struct {
	ConfigFile string `default:".RestaurantRandomizer.toml" help:"Path to config file"                                                 short:"c"`
	Migrate    bool   `default:"true"                       help:"Run database migrations before serving"                              negatable:""`
	Seed       bool   `default:"true"                       help:"Load the starter restaurants into an empty database after migrating" negatable:""`
}

func (s *ServeCmd) Run(ctx *Context) error {
	logger, err := newLogger(ctx, true)
	if err != nil {
		return err
	}
	defer logger.Sync() //nolint:errcheck // we don't care about logger sync errors

	conf, err := configs.GetConfig(s.ConfigFile, logger)
	if err != nil {
		logger.Error("error loading config", zap.Error(err))

		return err
	}

	mappings, err := ingest.LoadMappings(conf.Ingest.MappingsFile)
	if err != nil {
		logger.Error("error loading ingestion mappings", zap.String("file", conf.Ingest.MappingsFile), zap.Error(err))

		return err
	}

	repo, err := repository.Open(conf, logger)
	if err != nil {
		logger.Error("error connecting to database", zap.Error(err))

		return err
	}
	defer repo.Close()

	runCtx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	if err = s.prepare(runCtx, repo, logger); err != nil {
		return err
	}

	places := googleplaces.NewClient(conf.Google, logger)
	if conf.Google.APIKey == "" {
		logger.Warn("no Google Places API key configured, place lookups will fail")
	}

	links := ingest.NewService(
		places,
		socialweb.NewFetcher(conf.Social, logger),
		ingest.NewRedirectExpander(conf.Social.Timeout, logger),
		mappings,
		logger,
	)

	if !ctx.Debug {
		gin.SetMode(gin.ReleaseMode)
	}

	router := server.NewRouter(server.Services{
		Restaurants: server.NewRestaurantService(repo, mappings.RegionCodes(), logger),
		Diary:       server.NewDiaryService(repo, repo, conf.Diary.MaxPhotoBytes, logger),
		Reviews:     server.NewReviewService(registry.GetReviewSources(conf, places, logger), repo, mappings, logger),
		Options:     repo,
		Places:      places,
		Links:       links,
		Health:      repo,
	}, logger)

	svr := &http.Server{
		Addr:              fmt.Sprintf(":%d", conf.Server.Port),
		ReadHeaderTimeout: conf.Server.ReadHeaderTimeout,
		Handler:           h2c.NewHandler(configureCORS(router, conf.Server.AllowedOrigins), &http2.Server{}),
	}

	errs := make(chan error, 1)

	go func() {
		logger.Info("server listening", zap.String("address", svr.Addr))
		errs <- svr.ListenAndServe()
	}()

	select {
	case err = <-errs:
		if !errors.Is(err, http.ErrServerClosed) {
			logger.Error("failed to start server", zap.Error(err))

			return err
		}

		return nil
	case <-runCtx.Done():
	}

	logger.Info("shutting down server")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	if err = svr.Shutdown(shutdownCtx); err != nil {
		logger.Error("forced shutdown", zap.Error(err))

		return err
	}

	return nil
}

func (s *ServeCmd) prepare(ctx context.Context, repo *repository.Repository, logger *zap.Logger) error {
	if s.Migrate {
		if err := repo.Migrate(ctx); err != nil {
			logger.Error("migration failed", zap.Error(err))

			return err
		}
	}

	if !s.Seed {
		return nil
	}

	restaurants, err := seed.Restaurants()
	if err != nil {
		return err
	}

	if _, err = seed.IfEmpty(ctx, repo, restaurants, logger); err != nil {
		logger.Error("error seeding restaurants", zap.Error(err))

		return err
	}

	return nil
}

func configureCORS(handler http.Handler, origins []string) http.Handler {
	corsOpts := cors.New(cors.Options{
		AllowedOrigins: origins,
		AllowedMethods: []string{http.MethodGet, http.MethodPost, http.MethodDelete, http.MethodOptions, http.MethodHead},
		AllowedHeaders: []string{
			"accept",
			"accept-encoding",
			"accept-language",
			"cache-control",
			"content-length",
			"content-type",
			"origin",
			"referer",
			"user-agent",
			server.RequestIDHeader,
		},
		ExposedHeaders: []string{server.RequestIDHeader},
		MaxAge:         86400, // 24 hours
	})

	return corsOpts.Handler(handler)
}
