package app

import (
	"context"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"golang.org/x/sync/errgroup"

	"github.com/syazwan-nazri/AD-XPDC-sub000/internal/config"
	"github.com/syazwan-nazri/AD-XPDC-sub000/internal/metrics"
	grouprepo "github.com/syazwan-nazri/AD-XPDC-sub000/internal/repository/materialgroup"
	partrepo "github.com/syazwan-nazri/AD-XPDC-sub000/internal/repository/part"
	"github.com/syazwan-nazri/AD-XPDC-sub000/internal/transport/http/health"
	"github.com/syazwan-nazri/AD-XPDC-sub000/internal/transport/http/middleware"
	thttp "github.com/syazwan-nazri/AD-XPDC-sub000/internal/transport/http/warehouse/v1"
	"github.com/syazwan-nazri/AD-XPDC-sub000/platform/closer"
	"github.com/syazwan-nazri/AD-XPDC-sub000/platform/logger"
)

type app struct {
	di     *di
	server *http.Server
}

func New(ctx context.Context) (*app, error) {
	a := &app{}

	if err := a.init(ctx); err != nil {
		return nil, err
	}

	return a, nil
}

func (a *app) Run(ctx context.Context) error { return a.run(ctx) }

func (a *app) init(ctx context.Context) error {
	inits := []func(context.Context) error{
		a.initConfig,
		a.initLogger,
		a.initCloser,
		a.initMetrics,
		a.initDI,
		a.initDemoData,
		a.initServer,
	}

	for _, initFn := range inits {
		if err := initFn(ctx); err != nil {
			return err
		}
	}
	return nil
}

func (a *app) initConfig(_ context.Context) error {
	return config.Load()
}

func (a *app) initLogger(_ context.Context) error {
	return logger.Init(
		config.C().Logger.Level(),
		config.C().Logger.AsJSON(),
	)
}

func (a *app) initCloser(_ context.Context) error {
	closer.SetLogger(logger.L())
	return nil
}

func (a *app) initMetrics(_ context.Context) error {
	return metrics.Register(prometheus.DefaultRegisterer)
}

func (a *app) initDI(_ context.Context) error {
	a.di = NewDI()
	return nil
}

// initDemoData seeds material groups and parts into empty collections.
func (a *app) initDemoData(ctx context.Context) error {
	if !config.C().App.BootstrapDemoData() {
		return nil
	}

	groupsRepo := a.di.MaterialGroupsRepository(ctx)
	partsRepo := a.di.PartsRepository(ctx)

	groups, err := groupsRepo.Count(ctx)
	if err != nil {
		logger.Error(ctx, "failed to count material groups", logger.ErrorF(err))
		return err
	}
	parts, err := partsRepo.Count(ctx)
	if err != nil {
		logger.Error(ctx, "failed to count parts", logger.ErrorF(err))
		return err
	}
	if groups > 0 || parts > 0 {
		return nil
	}

	seeded, err := grouprepo.MaterialGroupsBootstrap(ctx, groupsRepo)
	if err != nil {
		logger.Error(ctx, "failed to seed material groups", logger.ErrorF(err))
		return err
	}

	groupIDs := make(map[string]string, len(seeded))
	for _, g := range seeded {
		groupIDs[g.GroupID] = g.ID
	}
	if err := partrepo.PartsBootstrap(ctx, partsRepo, groupIDs); err != nil {
		logger.Error(ctx, "failed to seed parts", logger.ErrorF(err))
		return err
	}

	logger.Info(ctx, "demo data seeded", logger.Int("material_groups", len(seeded)))
	return nil
}

func (a *app) initServer(ctx context.Context) error {
	cfg := config.C()

	r := a.di.Router(ctx)
	r.Use(
		chimw.RequestID,
		chimw.Recoverer,
		middleware.Logging,
		middleware.Metrics,
	)

	r.Get("/health", health.Handler(a.di.Ping, cfg.Server.DBReadTimeout()))
	r.Handle("/metrics", promhttp.Handler())

	api := thttp.NewAPI(a.di.Services(ctx))
	r.Route("/api/v1", func(r chi.Router) {
		r.Use(middleware.Auth(cfg.Auth.JWTSecret()))
		api.Routes(r)
	})

	a.server = &http.Server{
		Addr:              cfg.Server.Address(),
		Handler:           r,
		ReadHeaderTimeout: cfg.Server.ReadTimeout(),
	}
	return nil
}

func (a *app) run(ctx context.Context) error {
	defer gracefulShutdown()

	eg, egCtx := errgroup.WithContext(ctx)

	if config.C().Kafka.Enabled() {
		eg.Go(func() error {
			logger.Info(egCtx,
				"🚀 low stock consumer running",
				logger.String("topic", config.C().Kafka.MovementTopic()),
			)
			if err := a.di.MovementConsumer(egCtx).RunLowStockConsume(egCtx); err != nil {
				return err
			}

			return nil
		})
	}

	eg.Go(func() error {
		logger.Info(egCtx,
			"🚀 warehouse server listening",
			logger.String("address", config.C().Server.Address()),
		)
		err := a.server.ListenAndServe()
		if err != nil && !errors.Is(err, http.ErrServerClosed) {
			return err
		}

		return nil
	})

	eg.Go(func() error {
		<-egCtx.Done()

		//nolint:contextcheck
		sdCtx, cancel := context.WithTimeout(context.Background(), config.C().Server.ShutdownTimeout())
		defer cancel()
		return a.server.Shutdown(sdCtx)
	})

	if err := eg.Wait(); err != nil {
		return err
	}
	return nil
}

//nolint:contextcheck
func gracefulShutdown() {
	ctx, cancel := context.WithTimeout(
		context.Background(), // do not inherit cancellation from ctx
		config.C().Server.ShutdownTimeout(),
	)
	defer cancel()

	err := closer.CloseAll(ctx)
	if err != nil {
		logger.Error(ctx, "❌ Error during server shutdown", logger.ErrorF(err))
		logger.Error(ctx, "❌😵‍💫 Server stopped")
		return
	}
	logger.Info(ctx, "✅ Server stopped")
}
