// Package storefront собирает сервер витрины: хранилище, сервисы,
// маршруты и жизненный цикл HTTP-сервера.
package storefront

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi"

	"github.com/colddogs/storefront/internal/cache"
	"github.com/colddogs/storefront/internal/config"
	"github.com/colddogs/storefront/internal/lib/jwt"
	"github.com/colddogs/storefront/internal/lib/sl"
	"github.com/colddogs/storefront/internal/migrations"
	"github.com/colddogs/storefront/internal/rabbitmq"
	authservice "github.com/colddogs/storefront/internal/services/auth"
	newsservice "github.com/colddogs/storefront/internal/services/news"
	orderservice "github.com/colddogs/storefront/internal/services/order"
	"github.com/colddogs/storefront/internal/storage/postgres"
	"github.com/colddogs/storefront/internal/storage/sqlitedb"
)

// Storage объединяет контракты всех сервисов витрины: учетные записи,
// заказы и новости живут в одном хранилище записей.
type Storage interface {
	authservice.UserRepository
	orderservice.Repository
	newsservice.Repository
	Close() error
}

// App хранит собранный сервер и его зависимости.
type App struct {
	server    *http.Server
	logger    *slog.Logger
	db        Storage
	cache     *cache.Cache
	publisher *rabbitmq.Publisher
}

// New собирает приложение по конфигу: открывает хранилище выбранного
// драйвера, прогоняет миграции, подключает опциональные redis и
// rabbitmq и регистрирует маршруты.
func New(ctx context.Context, cfg *config.Config, logger *slog.Logger) (*App, error) {
	const op = "app.storefront.New"

	db, err := openStorage(cfg)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	var cacheRedis *cache.Cache
	if cfg.CacheEnabled() {
		cacheRedis, err = cache.InitServer(ctx, cfg.RedisConnection)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", op, err)
		}
		logger.Info("orders cache enabled", slog.String("addr", cfg.RedisConnection.Addr))
	}

	var publisher *rabbitmq.Publisher
	if cfg.EventsEnabled() {
		conn, err := rabbitmq.Connect(cfg.RabbitURL, 5, 2*time.Second)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", op, err)
		}
		publisher, err = rabbitmq.NewPublisher(conn)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", op, err)
		}
		logger.Info("order events enabled")
	}

	jwtMaker := jwt.NewMaker(cfg.JWTToken.JWTSecretKey, cfg.JWTToken.TokenTTL)

	authService := authservice.New(db, db, jwtMaker, logger)
	orderService := orderservice.New(db, cacheOrNil(cacheRedis), publisherOrNil(publisher), logger)
	newsService := newsservice.New(db, logger)

	if err := newsService.Seed(ctx); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	router := chi.NewRouter()
	RegisterRoutes(router, logger, jwtMaker, authService, orderService, newsService)

	srv := &http.Server{
		Addr:         cfg.HTTPServer.Address,
		Handler:      router,
		ReadTimeout:  cfg.HTTPServer.Timeout,
		WriteTimeout: cfg.HTTPServer.Timeout,
		IdleTimeout:  cfg.HTTPServer.IdleTimeout,
	}

	return &App{
		server:    srv,
		logger:    logger,
		db:        db,
		cache:     cacheRedis,
		publisher: publisher,
	}, nil
}

func openStorage(cfg *config.Config) (Storage, error) {
	switch cfg.StorageDriver {
	case config.DriverPostgres:
		db, err := postgres.New(cfg.StorageConnectionString)
		if err != nil {
			return nil, err
		}
		if err := migrations.Run(db.DB, cfg.MigrationsPath); err != nil {
			return nil, err
		}
		return db, nil
	case config.DriverSQLite:
		// Схема встроенного хранилища накатывается автомиграцией gorm.
		return sqlitedb.New(cfg.SQLitePath)
	default:
		return nil, fmt.Errorf("unknown storage driver: %q", cfg.StorageDriver)
	}
}

// cacheOrNil превращает отсутствующий redis в nil-интерфейс,
// чтобы сервис заказов корректно распознал выключенный кеш.
func cacheOrNil(c *cache.Cache) orderservice.Cache {
	if c == nil {
		return nil
	}
	return c
}

func publisherOrNil(p *rabbitmq.Publisher) orderservice.EventPublisher {
	if p == nil {
		return nil
	}
	return p
}

// Run запускает HTTP-сервер и блокируется до ошибки или отмены ctx.
// При отмене выполняется graceful shutdown и закрытие зависимостей.
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
	if err := a.db.Close(); err != nil {
		a.logger.Error("failed to close storage", sl.Err(err))
	}
	if a.cache != nil {
		if err := a.cache.Close(); err != nil {
			a.logger.Error("failed to close cache", sl.Err(err))
		}
	}
	if a.publisher != nil {
		if err := a.publisher.Close(); err != nil {
			a.logger.Error("failed to close publisher", sl.Err(err))
		}
	}
}
