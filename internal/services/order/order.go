// Package order содержит бизнес-логику заказов: создание, список
// с кешированием и производные представления подписок.
package order

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/colddogs/storefront/internal/lib/sl"
	"github.com/colddogs/storefront/internal/models"
)

// Repository описывает контракт хранилища заказов.
type Repository interface {
	// CreateOrder сохраняет заказ и возвращает его с присвоенным ID.
	CreateOrder(ctx context.Context, order models.Order) (*models.Order, error)
	// ListOrdersByUser возвращает заказы пользователя от новых к старым.
	ListOrdersByUser(ctx context.Context, userID int64) ([]models.Order, error)
}

// Cache описывает методы для кэширования списков заказов.
type Cache interface {
	// Get пытается получить значение из кеша по ключу.
	Get(ctx context.Context, key string, result any) (bool, error)
	// Set сохраняет значение в кеш с временем жизни.
	Set(ctx context.Context, key string, value any, expiration time.Duration) error
	// Invalidate удаляет значение из кеша по ключу.
	Invalidate(ctx context.Context, key string) error
}

// EventPublisher публикует событие о созданном заказе
// для внешнего конвейера уведомлений.
type EventPublisher interface {
	PublishOrderCreated(ctx context.Context, event CreatedEvent) error
}

// CreatedEvent сообщение о созданном заказе.
type CreatedEvent struct {
	OrderID     int64     `json:"order_id"`
	UserID      int64     `json:"user_id"`
	ProductName string    `json:"product_name"`
	Price       string    `json:"price"`
	Period      string    `json:"period"`
	Status      string    `json:"status"`
	CreatedAt   time.Time `json:"created_at"`
}

// Service реализует бизнес-логику заказов.
// Кеш и издатель событий опциональны: nil отключает их.
type Service struct {
	repo   Repository
	cache  Cache
	events EventPublisher
	log    *slog.Logger
}

// New создает новый экземпляр Service.
func New(repo Repository, cache Cache, events EventPublisher, log *slog.Logger) *Service {
	return &Service{
		repo:   repo,
		cache:  cache,
		events: events,
		log:    log,
	}
}

const cacheTTL = time.Hour

func cacheKey(userID int64) string {
	return fmt.Sprintf("orders:%d", userID)
}

// Create создает заказ пользователя. Никаких проверок оплаты или остатков
// не выполняется: витрина подтверждает покупку сразу и передаёт статус
// completed, серверный дефолт — pending.
func (s *Service) Create(ctx context.Context, userID int64, productName, priceDisplay, periodDisplay string, quantity int, status string) (*models.Order, error) {
	const op = "services.order.Create"

	if quantity <= 0 {
		quantity = 1
	}
	if status == "" {
		status = models.OrderStatusPending
	}

	order, err := s.repo.CreateOrder(ctx, models.Order{
		UserID:      userID,
		ProductName: productName,
		Price:       priceDisplay,
		Period:      periodDisplay,
		Quantity:    quantity,
		Status:      status,
	})
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	s.log.Info("order created",
		slog.Int64("order_id", order.ID),
		slog.Int64("user_id", userID),
		slog.String("product", productName))

	if s.cache != nil {
		if err := s.cache.Invalidate(ctx, cacheKey(userID)); err != nil {
			s.log.Warn("failed to invalidate orders cache",
				slog.String("key", cacheKey(userID)), sl.Err(err))
		}
	}

	if s.events != nil {
		event := CreatedEvent{
			OrderID:     order.ID,
			UserID:      order.UserID,
			ProductName: order.ProductName,
			Price:       order.Price,
			Period:      order.Period,
			Status:      order.Status,
			CreatedAt:   order.CreatedAt,
		}
		if err := s.events.PublishOrderCreated(ctx, event); err != nil {
			s.log.Warn("failed to publish order event",
				slog.Int64("order_id", order.ID), sl.Err(err))
		}
	}

	return order, nil
}

// List возвращает заказы пользователя от новых к старым,
// используя кеш или репозиторий.
func (s *Service) List(ctx context.Context, userID int64) ([]models.Order, error) {
	const op = "services.order.List"

	key := cacheKey(userID)
	if s.cache != nil {
		var cached []models.Order
		found, err := s.cache.Get(ctx, key, &cached)
		if err != nil {
			s.log.Warn("orders cache read failed", slog.String("key", key), sl.Err(err))
		} else if found {
			return cached, nil
		}
	}

	orders, err := s.repo.ListOrdersByUser(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	if s.cache != nil {
		if err := s.cache.Set(ctx, key, orders, cacheTTL); err != nil {
			s.log.Warn("failed to cache orders", slog.String("key", key), sl.Err(err))
		}
	}
	return orders, nil
}
