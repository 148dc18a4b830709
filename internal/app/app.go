package app

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/QuantumCastro/L-Artisan/internal/catalog"
	"github.com/QuantumCastro/L-Artisan/internal/config"
	"github.com/QuantumCastro/L-Artisan/internal/event"
	handler "github.com/QuantumCastro/L-Artisan/internal/handler/http"
	"github.com/QuantumCastro/L-Artisan/internal/repository"
	"github.com/QuantumCastro/L-Artisan/internal/repository/memory"
	redisrepo "github.com/QuantumCastro/L-Artisan/internal/repository/redis"
	"github.com/QuantumCastro/L-Artisan/internal/scheduler"
	"github.com/QuantumCastro/L-Artisan/internal/service"
	"github.com/QuantumCastro/L-Artisan/pkg/database"
	"github.com/QuantumCastro/L-Artisan/pkg/health"
	pkgkafka "github.com/QuantumCastro/L-Artisan/pkg/kafka"
	"github.com/QuantumCastro/L-Artisan/pkg/middleware"
	"github.com/QuantumCastro/L-Artisan/pkg/tracing"
)

// ServiceName identifies the storefront in logs, metrics and traces.
const ServiceName = "storefront-service"

const sweepInterval = time.Minute

// App wires together all dependencies and runs the storefront service.
type App struct {
	cfg            *config.Config
	logger         *slog.Logger
	rdb            *redis.Client
	memStore       *memory.SessionRepository
	producer       *pkgkafka.Producer
	service        *service.StorefrontService
	httpServer     *http.Server
	stop           context.CancelFunc
	tracerShutdown func(context.Context) error
}

// NewApp creates a new application instance, initializing all dependencies.
func NewApp(cfg *config.Config, logger *slog.Logger) (*App, error) {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	a := &App{cfg: cfg, logger: logger}

	// Tracing.
	tcfg := tracing.DefaultConfig(ServiceName)
	tcfg.Environment = cfg.Environment
	tcfg.OTLPEndpoint = cfg.OTELEndpoint
	tcfg.SampleRate = cfg.OTELSampleRate
	tcfg.Enabled = cfg.OTELEnabled
	shutdown, err := tracing.InitTracer(ctx, tcfg)
	if err != nil {
		return nil, fmt.Errorf("init tracing: %w", err)
	}
	a.tracerShutdown = shutdown

	healthHandler := health.NewHandler(ServiceName)

	// Session store.
	var repo repository.SessionRepository
	switch cfg.SessionStore {
	case config.StoreRedis:
		rcfg := database.DefaultRedisConfig()
		rcfg.Addr = cfg.RedisAddr
		rcfg.Password = cfg.RedisPass
		rcfg.DB = cfg.RedisDB
		rdb, err := database.NewRedisClient(ctx, rcfg)
		if err != nil {
			_ = shutdown(context.Background())
			return nil, fmt.Errorf("connect to redis: %w", err)
		}
		logger.Info("connected to Redis",
			slog.String("addr", cfg.RedisAddr),
			slog.Int("db", cfg.RedisDB),
		)
		a.rdb = rdb
		repo = redisrepo.NewSessionRepository(rdb, cfg.SessionTTL())
		healthHandler.Register("redis", database.RedisChecker(rdb))
	default:
		a.memStore = memory.NewSessionRepository(cfg.SessionTTL())
		repo = a.memStore
		logger.Info("using in-memory session store", slog.Duration("ttl", cfg.SessionTTL()))
	}

	logger.Info("readiness checks registered", slog.Any("checks", healthHandler.Names()))

	// Events.
	var publisher pkgkafka.Publisher
	if cfg.EventsEnabled {
		a.producer = pkgkafka.NewProducer(pkgkafka.DefaultProducerConfig(cfg.KafkaBrokers), logger)
		publisher = pkgkafka.NewBreakingPublisher(a.producer, pkgkafka.DefaultBreakerConfig("storefront-events"), logger)
		if err := a.producer.Ping(ctx); err != nil {
			logger.Warn("kafka brokers unreachable, events will be dropped until they recover",
				slog.Any("brokers", cfg.KafkaBrokers),
				slog.String("error", err.Error()),
			)
		} else {
			logger.Info("kafka producer initialized", slog.Any("brokers", cfg.KafkaBrokers))
		}
	}
	eventProducer := event.NewProducer(publisher, cfg.EventPublishTimeout, logger)

	// Build the dependency graph.
	a.service = service.NewStorefrontService(
		catalog.Default(),
		repo,
		scheduler.NewReal(),
		eventProducer,
		logger,
		service.Config{
			AddToCartDelay: cfg.AddToCartDelay,
			CheckoutDelay:  cfg.CheckoutDelay,
		},
	)

	// HTTP router.
	routerCtx, stop := context.WithCancel(context.Background())
	a.stop = stop

	cors := middleware.DefaultCORSConfig()
	cors.AllowedOrigins = cfg.CORSAllowedOrigins
	cors.AllowCredentials = true
	cors.Environment = cfg.Environment

	router := handler.NewRouter(routerCtx, a.service, healthHandler, logger, handler.RouterConfig{
		ServiceName:    ServiceName,
		PprofCIDRs:     cfg.PprofAllowedCIDRs,
		CORS:           cors,
		RateLimitRPS:   cfg.RateLimitRPS,
		RateLimitBurst: cfg.RateLimitBurst,
		Cookie: handler.CookieConfig{
			MaxAge: cfg.SessionTTL(),
			Secure: cfg.CookieSecure,
		},
	})

	a.httpServer = &http.Server{
		Addr:         fmt.Sprintf(":%d", cfg.HTTPPort),
		Handler:      router,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	return a, nil
}

// Handler returns the HTTP handler served by Run.
func (a *App) Handler() http.Handler {
	return a.httpServer.Handler
}

// Run starts the HTTP server and blocks until the context is canceled.
func (a *App) Run(ctx context.Context) error {
	errCh := make(chan error, 1)

	go func() {
		a.logger.Info("starting HTTP server",
			slog.String("addr", a.httpServer.Addr),
		)
		if err := a.httpServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- fmt.Errorf("http server: %w", err)
		}
	}()

	if a.memStore != nil {
		go a.sweep(ctx)
	}

	select {
	case <-ctx.Done():
		a.logger.Info("shutdown signal received")
	case err := <-errCh:
		_ = a.Shutdown()
		return err
	}

	return a.Shutdown()
}

// sweep evicts expired in-memory sessions until ctx is done.
func (a *App) sweep(ctx context.Context) {
	ticker := time.NewTicker(sweepInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			if n := a.memStore.Sweep(); n > 0 {
				a.logger.Debug("expired sessions swept", slog.Int("count", n))
			}
		}
	}
}

// Shutdown gracefully stops all components.
func (a *App) Shutdown() error {
	a.logger.Info("shutting down application...")

	// Graceful HTTP server shutdown with a 10-second deadline.
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := a.httpServer.Shutdown(shutdownCtx); err != nil {
		a.logger.Error("http server shutdown error", slog.String("error", err.Error()))
	}
	a.stop()

	if a.producer != nil {
		if err := a.producer.Close(); err != nil {
			a.logger.Error("kafka producer close error", slog.String("error", err.Error()))
		}
	}

	if a.rdb != nil {
		if err := a.rdb.Close(); err != nil {
			a.logger.Error("redis close error", slog.String("error", err.Error()))
		}
	}

	if err := a.tracerShutdown(shutdownCtx); err != nil {
		a.logger.Error("tracer shutdown error", slog.String("error", err.Error()))
	}

	a.logger.Info("application shutdown complete")
	return nil
}
