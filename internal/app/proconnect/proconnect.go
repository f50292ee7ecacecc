// Package proconnect собирает приложение каталога: хранилище, кеш,
// сервисы и HTTP-сервер.
package proconnect

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi"
	"github.com/streadway/amqp"

	"github.com/khussac/proconnect-api/internal/cache"
	"github.com/khussac/proconnect-api/internal/config"
	"github.com/khussac/proconnect-api/internal/lib/jwt"
	"github.com/khussac/proconnect-api/internal/lib/rabbitmq"
	"github.com/khussac/proconnect-api/internal/lib/sl"
	"github.com/khussac/proconnect-api/internal/migrations"
	"github.com/khussac/proconnect-api/internal/models"
	"github.com/khussac/proconnect-api/internal/services/auth"
	"github.com/khussac/proconnect-api/internal/services/directory"
	"github.com/khussac/proconnect-api/internal/services/editor"
	"github.com/khussac/proconnect-api/internal/services/geocode"
	"github.com/khussac/proconnect-api/internal/services/notifier"
	"github.com/khussac/proconnect-api/internal/storage/fixture"
	"github.com/khussac/proconnect-api/internal/storage/repository"
)

// Storage объединяет операции хранилища каталога. Реализуется
// фикстурным хранилищем в памяти и репозиторием PostgreSQL.
type Storage interface {
	ListActive(ctx context.Context) ([]*models.Professional, error)
	GetByID(ctx context.Context, id int) (*models.Professional, error)
	GetByEmail(ctx context.Context, email string) (*models.Professional, error)
	Create(ctx context.Context, p *models.Professional) error
	Update(ctx context.Context, p *models.Professional) error
}

// App содержит собранное приложение и ресурсы для остановки.
type App struct {
	server     *http.Server
	logger     *slog.Logger
	db         *repository.Storage
	rabbitConn *amqp.Connection
	rabbitCh   *amqp.Channel
}

// New собирает приложение по конфигурации.
func New(ctx context.Context, cfg *config.Config, logger *slog.Logger) (*App, error) {
	var (
		store Storage
		db    *repository.Storage
	)
	switch cfg.Storage.Mode {
	case config.StorageModePostgres:
		var err error
		db, err = repository.New(cfg.Storage.ConnectionString)
		if err != nil {
			return nil, err
		}
		if err = migrations.Run(db.DB, "./migrations"); err != nil {
			return nil, err
		}
		store = db
	case config.StorageModeFixture, "":
		store = fixture.Load(cfg.Storage.FixturePath, logger)
	default:
		return nil, fmt.Errorf("unknown storage mode: %q", cfg.Storage.Mode)
	}

	cacheRedis, err := cache.InitServer(ctx, cfg.RedisConnection)
	if err != nil {
		return nil, err
	}

	maker := jwt.NewMaker(cfg.JWTSecretKey, cfg.TokenTTL)

	directoryService := directory.New(store, cacheRedis, logger)
	authService := auth.New(store, cacheRedis, maker, logger)
	editorService := editor.New(store, cacheRedis, logger)
	lookup := geocode.NewSimulated()

	var (
		contactNotifier notifier.Notifier = notifier.Noop{}
		rabbitConn      *amqp.Connection
		rabbitCh        *amqp.Channel
	)
	if cfg.AddressRabbit != "" {
		rabbitConn, rabbitCh, err = rabbitmq.Connect(cfg.AddressRabbit, cfg.Exchange)
		if err != nil {
			return nil, err
		}
		contactNotifier = notifier.NewRabbit(rabbitCh, cfg.Exchange, logger)
	}

	router := chi.NewRouter()
	RegisterRoutes(router, logger, cfg, directoryService, authService, editorService, lookup, contactNotifier)

	srv := &http.Server{
		Addr:         cfg.AddressHTTP,
		Handler:      router,
		ReadTimeout:  cfg.TimeoutHTTP,
		WriteTimeout: cfg.TimeoutHTTP,
		IdleTimeout:  cfg.IdleTimeout,
	}

	return &App{
		server:     srv,
		logger:     logger,
		db:         db,
		rabbitConn: rabbitConn,
		rabbitCh:   rabbitCh,
	}, nil
}

// Run запускает HTTP-сервер и останавливает его при отмене контекста.
func (a *App) Run(ctx context.Context) error {
	errCh := make(chan error, 1)
	go func() {
		a.logger.Info("HTTP server starting on", slog.String("address", a.server.Addr))
		err := a.server.ListenAndServe()
		if errors.Is(err, http.ErrServerClosed) {
			errCh <- nil
		} else {
			errCh <- err
		}
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
		timeoutCtx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
		defer cancel()
		a.logger.Info("shutting down HTTP server gracefully")
		err := a.server.Shutdown(timeoutCtx)
		a.close()
		return err
	}
}

func (a *App) close() {
	if a.db != nil {
		if err := a.db.DB.Close(); err != nil {
			a.logger.Warn("failed to close database", sl.Err(err))
		}
	}
	if a.rabbitCh != nil {
		if err := a.rabbitCh.Close(); err != nil {
			a.logger.Warn("failed to close rabbit channel", sl.Err(err))
		}
	}
	if a.rabbitConn != nil {
		if err := a.rabbitConn.Close(); err != nil {
			a.logger.Warn("failed to close rabbit connection", sl.Err(err))
		}
	}
}
