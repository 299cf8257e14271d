package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/nikolayk812/canteen/internal/config"
	"github.com/nikolayk812/canteen/internal/db"
	"github.com/nikolayk812/canteen/internal/events"
	"github.com/nikolayk812/canteen/internal/httpapi"
	"github.com/nikolayk812/canteen/internal/port"
	"github.com/nikolayk812/canteen/internal/repository"
	"github.com/nikolayk812/canteen/internal/service"
)

func main() {
	configPath := flag.String("config", "", "path to the YAML config file")
	migrate := flag.Bool("migrate", false, "apply the embedded schema before serving")
	flag.Parse()

	if err := run(*configPath, *migrate); err != nil {
		slog.Error("canteen stopped", "error", err)
		os.Exit(1)
	}
}

func run(configPath string, migrate bool) error {
	cfg, err := config.Load(configPath)
	if err != nil {
		return fmt.Errorf("config.Load: %w", err)
	}

	level, err := cfg.LogLevel()
	if err != nil {
		return fmt.Errorf("cfg.LogLevel: %w", err)
	}
	lgr := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: level}))
	slog.SetDefault(lgr)

	unit, err := cfg.DefaultCurrency()
	if err != nil {
		return fmt.Errorf("cfg.DefaultCurrency: %w", err)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	pool, err := connect(ctx, cfg.Database)
	if err != nil {
		return fmt.Errorf("connect: %w", err)
	}
	defer pool.Close()

	lgr.Info("connected to postgres", "host", cfg.Database.Host, "database", cfg.Database.Database)

	if migrate {
		if err := db.Migrate(ctx, pool); err != nil {
			return fmt.Errorf("db.Migrate: %w", err)
		}
		lgr.Info("schema applied")
	}

	publisher, closePublisher, err := newPublisher(cfg.RabbitMQ, lgr)
	if err != nil {
		return fmt.Errorf("newPublisher: %w", err)
	}
	defer closePublisher()

	menuRepo := repository.NewMenu(pool)

	orders, err := service.NewOrderService(repository.NewTxManager(pool), repository.NewOrder(pool), publisher, lgr)
	if err != nil {
		return fmt.Errorf("service.NewOrderService: %w", err)
	}

	menu, err := service.NewMenuService(menuRepo, unit, lgr)
	if err != nil {
		return fmt.Errorf("service.NewMenuService: %w", err)
	}

	carts, err := service.NewCartService(repository.NewCart(pool), menuRepo, orders, lgr)
	if err != nil {
		return fmt.Errorf("service.NewCartService: %w", err)
	}

	handler, err := httpapi.NewHandler(httpapi.Deps{
		Orders:   orders,
		Menu:     menu,
		Carts:    carts,
		Auth:     httpapi.HeaderAuthenticator{},
		Health:   pool,
		Currency: unit,
		Logger:   lgr,
	})
	if err != nil {
		return fmt.Errorf("httpapi.NewHandler: %w", err)
	}

	server := &http.Server{
		Addr:         cfg.HTTP.Addr,
		Handler:      handler.Routes(),
		ReadTimeout:  cfg.HTTP.ReadTimeout,
		WriteTimeout: cfg.HTTP.WriteTimeout,
	}

	serveErr := make(chan error, 1)
	go func() {
		lgr.Info("http server started", "addr", cfg.HTTP.Addr)
		serveErr <- server.ListenAndServe()
	}()

	select {
	case err := <-serveErr:
		if !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("server.ListenAndServe: %w", err)
		}
		return nil
	case <-ctx.Done():
	}

	lgr.Info("shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.HTTP.ShutdownTimeout)
	defer cancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("server.Shutdown: %w", err)
	}

	return nil
}

func connect(ctx context.Context, cfg config.DatabaseConfig) (*pgxpool.Pool, error) {
	poolCfg, err := pgxpool.ParseConfig(cfg.URL())
	if err != nil {
		return nil, fmt.Errorf("pgxpool.ParseConfig: %w", err)
	}
	poolCfg.MaxConns = cfg.MaxConns
	poolCfg.MinConns = cfg.MinConns

	pool, err := pgxpool.NewWithConfig(ctx, poolCfg)
	if err != nil {
		return nil, fmt.Errorf("pgxpool.NewWithConfig: %w", err)
	}

	if err := pool.Ping(ctx); err != nil {
		pool.Close()
		return nil, fmt.Errorf("pool.Ping: %w", err)
	}

	return pool, nil
}

// newPublisher returns a no-op publisher when RabbitMQ is disabled.
func newPublisher(cfg config.RabbitMQConfig, lgr *slog.Logger) (port.OrderEventPublisher, func(), error) {
	if !cfg.Enabled {
		return events.Noop{}, func() {}, nil
	}

	publisher, err := events.Dial(cfg.URL, cfg.Exchange)
	if err != nil {
		return nil, nil, fmt.Errorf("events.Dial: %w", err)
	}

	lgr.Info("connected to rabbitmq", "exchange", cfg.Exchange)

	return publisher, func() {
		if err := publisher.Close(); err != nil {
			lgr.Warn("close rabbitmq publisher", "error", err)
		}
	}, nil
}
