package app

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	goredis "github.com/redis/go-redis/v9"

	"linkdeck/internal/auth"
	"linkdeck/internal/config"
	"linkdeck/internal/httpserver"
	"linkdeck/internal/httpserver/deps"
	"linkdeck/internal/httpserver/mw"
	"linkdeck/internal/logger"
	"linkdeck/internal/notify"
	"linkdeck/internal/redis"
	"linkdeck/internal/scheduler"
	"linkdeck/internal/screen"
	"linkdeck/internal/sources/seed"
	redisstore "linkdeck/internal/store/redis"
	"linkdeck/internal/version"
)

type App struct {
	cfg         *config.Config
	logger      logger.Logger
	server      *httpserver.Server
	redisClient *goredis.Client
	screens     *screen.Registry
	screenGC    *scheduler.ScreenGC
	seedFile    string
	importer    *seed.Importer
}

func New() *App {
	cfg := config.Load()

	loggerClient := logger.New(cfg.LogLevel, cfg.PrettyLog)

	// Initialize Redis early - fail fast if unavailable
	loggerClient.Infof("Connecting to Redis at %s", cfg.RedisAddr)
	redisClient, err := redis.New(redis.ConnectOptions{
		Addr:           cfg.RedisAddr,
		User:           cfg.RedisUser,
		Password:       cfg.RedisPassword,
		RedisDB:        cfg.RedisDB,
		DialTimeout:    cfg.RedisDT,
		ReadTimeout:    cfg.RedisRT,
		WriteTimeout:   cfg.RedisWT,
		PoolSize:       cfg.RedisPoolSize,
		ConnectTimeout: cfg.RedisConnectTimeout,
		RetryInterval:  cfg.RedisRetryInterval,
		MaxWait:        cfg.RedisMaxWait,
		PingTimeout:    cfg.RedisPingTimeout,
		WarnThreshold:  cfg.RedisWarnThreshold,
	}, loggerClient)
	if err != nil {
		loggerClient.Errorf("Failed to connect to Redis: %v", err)
		os.Exit(1)
	}
	loggerClient.Info("Redis initialized successfully")

	store := redisstore.NewStore(redisClient)
	notifier := notify.New(cfg.NoticeDuration)
	provider := auth.New(store, loggerClient, cfg.SessionTTL, cfg.BcryptCost)

	// One list screen per session, built lazily on first use.
	screens := screen.NewRegistry(func() *screen.List {
		return screen.NewList(store, notifier, loggerClient, cfg.LongPressHold)
	})

	screenGC := scheduler.NewScreenGC(screens, loggerClient, cfg.ScreenGCInterval, cfg.ScreenIdleTTL)

	var importer *seed.Importer
	if cfg.SeedFile != "" {
		loggerClient.Info("seed file configured",
			logger.String("file", cfg.SeedFile))
		importer = seed.NewImporter(cfg.SeedFile, store, loggerClient)
	}

	// Dependencies passed to routes.
	d := deps.Deps{
		Logger:       loggerClient,
		StartTime:    time.Now(),
		Version:      version.Version,
		Commit:       version.Commit,
		BuildDate:    version.BuildDate,
		GoVersion:    version.GoVersion,
		TimeNow:      time.Now,
		AllowedHosts: cfg.AllowedHosts,
		AllowedCIDRS: cfg.AllowedCIDRS,
		TrustProxy:   cfg.TrustProxy,
		Store:        store,
		Auth:         provider,
		Notifier:     notifier,
		Screens:      screens,
		LoginRateLimit: mw.RateLimitConfig{
			Burst:             cfg.LoginRateBurst,
			RefillPerIPPerMin: cfg.LoginRatePerMin,
			TrustProxy:        cfg.TrustProxy,
		},
	}

	server := httpserver.New(cfg, loggerClient, d)

	return &App{
		cfg:         cfg,
		logger:      loggerClient,
		server:      server,
		redisClient: redisClient,
		screens:     screens,
		screenGC:    screenGC,
		seedFile:    cfg.SeedFile,
		importer:    importer,
	}
}

func (a *App) Run() error {
	a.logger.Infof("Starting linkdeck v%s on %s", version.Version, a.cfg.ListenPort)
	a.logger.Infof("linkdeck %s (commit=%s, built=%s, go=%s)",
		version.Version, version.Commit, version.BuildDate, version.GoVersion)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	// Seed an empty collection before serving requests.
	if a.importer != nil {
		if err := a.importer.Run(ctx); err != nil {
			a.logger.Warn("seed import failed", logger.Error(err))
		}
	}

	// Start the idle-screen sweeper
	if err := a.screenGC.Start(ctx); err != nil {
		return fmt.Errorf("failed to start screen gc: %w", err)
	}
	a.logger.Info("screen gc started",
		logger.Duration("interval", a.cfg.ScreenGCInterval))

	errCh := make(chan error, 1)
	go func() {
		if err := a.server.Start(); err != nil {
			errCh <- fmt.Errorf("http server error: %w", err)
		}
	}()

	select {
	case <-ctx.Done():
		a.logger.Info("Shutting down gracefully...")
	case err := <-errCh:
		return err
	}

	a.screenGC.Stop()

	shutdownCtx, cancel := context.WithTimeout(context.Background(), a.cfg.ShutdownTimeout)
	defer cancel()
	if err := a.server.Stop(shutdownCtx); err != nil {
		return fmt.Errorf("failed to stop server: %w", err)
	}

	if a.redisClient != nil {
		if err := a.redisClient.Close(); err != nil {
			a.logger.Warnf("failed to close redis: %v", err)
		} else {
			a.logger.Info("Redis closed cleanly")
		}
	}

	a.logger.Info("linkdeck stopped cleanly")
	return nil
}
