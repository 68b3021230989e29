package postgres

import (
	"context"
	"fmt"

	"github.com/colddogs/storefront/internal/models"
)

// CountNews возвращает количество новостей в хранилище.
func (s *Storage) CountNews(ctx context.Context) (int64, error) {
	const op = "storage.postgres.CountNews"
	select {
	case <-ctx.Done():
		return 0, fmt.Errorf("%s: %w", op, ctx.Err())
	default:
	}

	var count int64
	if err := s.DB.QueryRowContext(ctx, `SELECT COUNT(*) FROM news`).Scan(&count); err != nil {
		return 0, fmt.Errorf("%s: %w", op, err)
	}
	return count, nil
}

// CreateNews вставляет новость и возвращает её с присвоенным ID.
func (s *Storage) CreateNews(ctx context.Context, item models.News) (*models.News, error) {
	const op = "storage.postgres.CreateNews"
	select {
	case <-ctx.Done():
		return nil, fmt.Errorf("%s: %w", op, ctx.Err())
	default:
	}

	query := `INSERT INTO news (title, content, product, image, type)
			  VALUES ($1, $2, $3, $4, $5)
			  RETURNING id, created_at`
	if err := s.DB.QueryRowContext(ctx, query,
		item.Title, item.Content, item.Product, item.Image, item.Type).
		Scan(&item.ID, &item.CreatedAt); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	return &item, nil
}

// ListNews возвращает все новости от новых к старым.
func (s *Storage) ListNews(ctx context.Context) ([]models.News, error) {
	const op = "storage.postgres.ListNews"
	select {
	case <-ctx.Done():
		return nil, fmt.Errorf("%s: %w", op, ctx.Err())
	default:
	}

	query := `SELECT id, title, content, product, image, type, created_at
			  FROM news
			  ORDER BY created_at DESC, id DESC`
	rows, err := s.DB.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	defer func() {
		_ = rows.Close()
	}()

	result := make([]models.News, 0)
	for rows.Next() {
		var n models.News
		if err = rows.Scan(&n.ID, &n.Title, &n.Content, &n.Product,
			&n.Image, &n.Type, &n.CreatedAt); err != nil {
			return nil, fmt.Errorf("%s: %w", op, err)
		}
		result = append(result, n)
	}
	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	return result, nil
}
