// Package news содержит логику справочного контента витрины:
// первичное наполнение пустого хранилища и выдача списка.
package news

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/colddogs/storefront/internal/models"
)

// Repository описывает контракт хранилища новостей.
type Repository interface {
	// CountNews возвращает количество новостей.
	CountNews(ctx context.Context) (int64, error)
	// CreateNews сохраняет новость и возвращает её с присвоенным ID.
	CreateNews(ctx context.Context, item models.News) (*models.News, error)
	// ListNews возвращает все новости от новых к старым.
	ListNews(ctx context.Context) ([]models.News, error)
}

// Service реализует работу с новостями витрины.
type Service struct {
	repo Repository
	log  *slog.Logger
}

// New создает новый экземпляр Service.
func New(repo Repository, log *slog.Logger) *Service {
	return &Service{repo: repo, log: log}
}

// defaultNews контент первичного наполнения. После посева записи
// больше не изменяются.
var defaultNews = []models.News{
	{
		Title:   "Fish Bot 2.0 уже здесь",
		Content: "Крупное обновление: новый алгоритм заброса, автоматический подбор наживки и защита от обнаружения.",
		Product: "Fish Bot",
		Type:    "release",
	},
	{
		Title:   "C+ теперь поддерживает все карты",
		Content: "Обновили C+ под последний патч. Подписчикам обновление прилетает автоматически.",
		Product: "C+",
		Type:    "update",
	},
	{
		Title:   "Скидки на годовые подписки",
		Content: "До конца месяца годовые подписки на все продукты со скидкой 30%.",
		Product: "",
		Type:    "promo",
	},
}

// Seed наполняет пустое хранилище стартовым контентом.
// На непустом хранилище ничего не делает.
func (s *Service) Seed(ctx context.Context) error {
	const op = "services.news.Seed"

	count, err := s.repo.CountNews(ctx)
	if err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}
	if count > 0 {
		return nil
	}

	for _, item := range defaultNews {
		if _, err := s.repo.CreateNews(ctx, item); err != nil {
			return fmt.Errorf("%s: %w", op, err)
		}
	}
	s.log.Info("news seeded", slog.Int("count", len(defaultNews)))
	return nil
}

// List возвращает все новости от новых к старым.
func (s *Service) List(ctx context.Context) ([]models.News, error) {
	const op = "services.news.List"

	items, err := s.repo.ListNews(ctx)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	return items, nil
}
