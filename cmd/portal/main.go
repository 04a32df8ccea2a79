// @title        FireWatch Nepal portal API
// @version      1.0
// @description  View models, forms and session handling for the FireWatch Nepal web client.
// @BasePath     /
package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/rs/zerolog"

	"github.com/firewatch-nepal/portal/internal/api"
	"github.com/firewatch-nepal/portal/internal/api/handler"
	"github.com/firewatch-nepal/portal/internal/api/middleware"
	"github.com/firewatch-nepal/portal/internal/core/ports"
	"github.com/firewatch-nepal/portal/internal/core/service"
	"github.com/firewatch-nepal/portal/internal/infrastructure/backend"
	"github.com/firewatch-nepal/portal/internal/infrastructure/config"
	"github.com/firewatch-nepal/portal/internal/infrastructure/db/memory"
	mongodb "github.com/firewatch-nepal/portal/internal/infrastructure/db/mongo"
	redisdb "github.com/firewatch-nepal/portal/internal/infrastructure/db/redis"
	"github.com/firewatch-nepal/portal/internal/infrastructure/firms"
	"github.com/firewatch-nepal/portal/internal/infrastructure/scheduler"
	"github.com/firewatch-nepal/portal/internal/infrastructure/weather"
	"github.com/firewatch-nepal/portal/pkg/logger"
)

const (
	hotspotMaxAge   = 30 * time.Minute
	shutdownTimeout = 10 * time.Second
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := run(ctx); err != nil {
		log := logger.Get()
		log.Fatal().Err(err).Msg("portal stopped")
	}
}

func run(ctx context.Context) error {
	cfg, err := config.Load(ctx)
	if err != nil {
		logger.Init(logger.Options{Service: "firewatch-portal"})
		return err
	}
	log := logger.Init(logger.Options{
		Level:   cfg.LogLevel,
		Pretty:  cfg.IsDevelopment(),
		Service: "firewatch-portal",
	})

	// --- Stores ---
	var (
		tokens  ports.TokenStorage
		lock    ports.SubmissionLock
		pingers []handler.Pinger
	)
	switch cfg.Storage {
	case config.StorageMemory:
		tokens = memory.NewTokenStorage()
		lock = memory.NewSubmissionLock(cfg.Redis.LockTTL)
		log.Warn().Msg("using in-memory session storage, sessions will not survive a restart")
	default:
		rdb, err := redisdb.Connect(ctx, redisdb.Config{Addr: cfg.Redis.Addr, Password: cfg.Redis.Password, DB: cfg.Redis.DB})
		if err != nil {
			return err
		}
		defer rdb.Close()
		tokens = redisdb.NewTokenStorage(rdb)
		lock = redisdb.NewSubmissionLock(rdb, cfg.Redis.LockTTL)
		pingers = append(pingers, redisdb.Pinger{Client: rdb})
	}

	var (
		audit       ports.SessionAuditRepository
		auditReader handler.SessionAuditReader
	)
	if cfg.Mongo.AuditEnabled {
		client, db, err := mongodb.Connect(ctx, mongodb.Config{URI: cfg.Mongo.URI, Database: cfg.Mongo.Database, AppName: "firewatch-portal"})
		if err != nil {
			log.Warn().Err(err).Msg("session audit disabled, mongo unreachable")
		} else {
			defer func() {
				dctx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
				defer cancel()
				_ = client.Disconnect(dctx)
			}()
			repo := mongodb.NewSessionAuditRepository(db)
			if err := repo.EnsureIndexes(ctx); err != nil {
				log.Warn().Err(err).Msg("could not ensure session audit indexes")
			}
			audit, auditReader = repo, repo
			pingers = append(pingers, mongodb.Pinger{Client: client})
		}
	}

	// --- Upstreams ---
	gateway := backend.New(cfg.Backend.BaseURL, cfg.Backend.Timeout, logger.Component("backend"))
	feed := firms.NewClient(cfg.Firms.BaseURL, cfg.Firms.MapKey, cfg.Backend.Timeout, logger.Component("firms"))
	ow := weather.NewOpenWeather(cfg.OpenWeather.BaseURL, cfg.OpenWeather.APIKey, cfg.Backend.Timeout, logger.Component("openweather"))
	topo := weather.NewOpenTopo(cfg.OpenTopo.BaseURL, cfg.OpenTopo.Dataset, cfg.Backend.Timeout, logger.Component("opentopo"))

	// --- Services ---
	svcLog := logger.Component("service")
	seq := service.NewSequencer()
	sessions := service.NewSessionManager(tokens, audit, cfg.SessionTTL, logger.Component("session"))
	auth := service.NewAuthService(gateway, svcLog)
	alerts := service.NewAlertService(gateway, lock, svcLog)
	reports := service.NewReportService(gateway, lock, svcLog)
	contact := service.NewContactService(gateway, lock, svcLog)
	insight := service.NewInsightService(ow, topo, seq, svcLog)
	prediction := service.NewPredictionService(gateway, seq, svcLog)
	hotspots := service.NewHotspotService(feed, cfg.Firms.DefaultSensor, cfg.Firms.DefaultDays, hotspotMaxAge, svcLog)
	dashboards := service.NewDashboardService(alerts, reports, contact, hotspots)
	stats := service.NewStatsService(gateway)

	// --- Background jobs ---
	jobs := scheduler.New(logger.Component("scheduler"))
	if err := jobs.RefreshHotspots(cfg.Firms.RefreshSchedule, hotspots); err != nil {
		return err
	}
	if err := jobs.PruneSequences(seq); err != nil {
		return err
	}
	jobs.Start()

	// --- HTTP ---
	e := api.NewRouter(api.Deps{
		Handlers: api.Handlers{
			Session:   handler.NewSessionHandler(auth, auditReader),
			Shell:     handler.NewShellHandler(),
			Views:     handler.NewViewHandler(alerts, hotspots, insight, stats, dashboards),
			Forms:     handler.NewFormHandler(reports, contact, prediction),
			Admin:     handler.NewAdminHandler(alerts, reports, contact),
			Health:    handler.NewHealthHandler(),
			Readiness: handler.NewReadinessHandler(pingers...),
		},
		Session: middleware.SessionConfig{
			Manager: sessions,
			Signer:  middleware.NewCookieSigner(cfg.CookieSecret),
			Secure:  !cfg.IsDevelopment(),
		},
		Log: logger.Component("http"),
	})

	errCh := make(chan error, 1)
	go func() {
		log.Info().Str("port", cfg.Port).Str("storage", cfg.Storage).Msg("portal listening")
		if err := e.Start(":" + cfg.Port); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
	}

	return shutdown(e.Shutdown, jobs, log)
}

func shutdown(stopHTTP func(context.Context) error, jobs *scheduler.Scheduler, log zerolog.Logger) error {
	log.Info().Msg("shutting down")
	ctx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	jobs.Stop(ctx)
	return stopHTTP(ctx)
}
