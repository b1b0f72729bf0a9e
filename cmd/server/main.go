package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"restaurant/internal/config"
	"restaurant/internal/database"
	"restaurant/internal/domain"
	"restaurant/internal/events"
	"restaurant/internal/logging"
	"restaurant/internal/metrics"
	"restaurant/internal/repository"
	"restaurant/internal/service"
	"restaurant/internal/session"
	"restaurant/internal/web"

	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/rs/zerolog"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "fatal: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	configPath := os.Getenv("CONFIG_PATH")
	if configPath == "" {
		configPath = "configs/config.yaml"
	}

	cfg, err := config.Load(configPath)
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	logger, logCloser, err := logging.New(cfg.Logging, cfg.App)
	if err != nil {
		return fmt.Errorf("failed to init logging: %w", err)
	}
	if logCloser != nil {
		defer logCloser.Close()
	}

	logger.Info().
		Str("environment", cfg.App.Environment).
		Str("version", cfg.App.Version).
		Msg("Starting restaurant server")

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	db, err := database.NewDB(cfg.Database.Path, logger)
	if err != nil {
		return fmt.Errorf("failed to open database: %w", err)
	}
	defer db.Close()

	if err := db.SeedMenu(ctx, cfg.Menu); err != nil {
		return fmt.Errorf("failed to seed menu: %w", err)
	}

	sessionTTL := time.Duration(cfg.Session.TTLHours) * time.Hour
	sessionRepo := buildSessionRepository(ctx, cfg, sessionTTL, logger)
	sessions := session.NewManager(sessionRepo, cfg.Session, logger)

	metrics.Register()
	eventBus := events.NewEventBus()
	subscribeMetrics(eventBus, logger)

	menuSvc := service.NewMenuService(db, eventBus, logger)
	cartSvc := service.NewCartService(db, logger)
	bookingSvc := service.NewBookingService(db, eventBus, cfg.Booking.SlotCapacity, logger)
	orderSvc := service.NewOrderService(db, eventBus, logger)
	authSvc := service.NewAuthService(db, eventBus, logger)

	templates := web.NewTemplateCache()
	if err := templates.Load(cfg.HTTP.TemplatesDir); err != nil {
		return fmt.Errorf("failed to load templates: %w", err)
	}

	server := web.NewServer(cfg, sessions, templates, menuSvc, cartSvc, bookingSvc, orderSvc, authSvc, logger)

	if cfg.Monitoring.PrometheusEnabled {
		go func() {
			addr := fmt.Sprintf(":%d", cfg.Monitoring.PrometheusPort)
			mux := http.NewServeMux()
			mux.Handle("/metrics", promhttp.Handler())
			logger.Info().Str("addr", addr).Msg("Metrics server listening")
			if err := http.ListenAndServe(addr, mux); err != nil && err != http.ErrServerClosed {
				logger.Error().Err(err).Msg("Metrics server stopped")
			}
		}()
	}

	errCh := make(chan error, 1)
	go func() {
		errCh <- server.Start()
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
	}

	logger.Info().Msg("Shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("failed to shut down server: %w", err)
	}

	return nil
}

// buildSessionRepository prefers Redis with an in-memory fallback, and
// degrades to memory-only when Redis is disabled or unreachable.
func buildSessionRepository(ctx context.Context, cfg *config.Config, ttl time.Duration, logger *zerolog.Logger) domain.SessionRepository {
	memory := repository.NewMemorySessionRepository(ttl)

	if !cfg.Redis.Enabled {
		logger.Info().Msg("Redis disabled, using in-memory sessions")
		return memory
	}

	client := repository.NewRedisClient(cfg.Redis)
	pingCtx, cancel := context.WithTimeout(ctx, 3*time.Second)
	defer cancel()

	if err := repository.Ping(pingCtx, client); err != nil {
		logger.Warn().Err(err).Msg("Redis unreachable, using in-memory sessions")
		return memory
	}

	logger.Info().Str("address", cfg.Redis.Address).Msg("Connected to Redis")
	primary := repository.NewRedisSessionRepository(client, ttl)
	return repository.NewFailoverSessionRepository(primary, memory, logger)
}

func subscribeMetrics(bus *events.EventBus, logger *zerolog.Logger) {
	bus.Subscribe(events.EventOrderPlaced, func(event *events.Event) error {
		metrics.IncOrderPlaced()
		logger.Debug().RawJSON("payload", event.Payload).Msg("Order placed")
		return nil
	})
	bus.Subscribe(events.EventBookingCreated, func(event *events.Event) error {
		metrics.IncBookingCreated()
		logger.Debug().RawJSON("payload", event.Payload).Msg("Booking created")
		return nil
	})
	bus.Subscribe(events.EventUserRegistered, func(event *events.Event) error {
		metrics.IncUserRegistered()
		return nil
	})
}
