package postgres

import (
	"context"
	"fmt"

	"github.com/colddogs/storefront/internal/models"
)

// CreateOrder вставляет новый заказ и возвращает его с присвоенным ID
// и временем создания.
func (s *Storage) CreateOrder(ctx context.Context, order models.Order) (*models.Order, error) {
	const op = "storage.postgres.CreateOrder"
	select {
	case <-ctx.Done():
		return nil, fmt.Errorf("%s: %w", op, ctx.Err())
	default:
	}

	query := `INSERT INTO orders (user_id, product_name, price, period, quantity, status)
			  VALUES ($1, $2, $3, $4, $5, $6)
			  RETURNING id, created_at`
	if err := s.DB.QueryRowContext(ctx, query,
		order.UserID, order.ProductName, order.Price, order.Period,
		order.Quantity, order.Status).
		Scan(&order.ID, &order.CreatedAt); err != nil {
		return nil, fmt.Errorf("%s: %w", op, translate(err))
	}
	return &order, nil
}

// ListOrdersByUser возвращает все заказы пользователя,
// отсортированные от новых к старым.
func (s *Storage) ListOrdersByUser(ctx context.Context, userID int64) ([]models.Order, error) {
	const op = "storage.postgres.ListOrdersByUser"
	select {
	case <-ctx.Done():
		return nil, fmt.Errorf("%s: %w", op, ctx.Err())
	default:
	}

	query := `SELECT id, user_id, product_name, price, period, quantity, status, created_at
			  FROM orders
			  WHERE user_id = $1
			  ORDER BY created_at DESC, id DESC`
	rows, err := s.DB.QueryContext(ctx, query, userID)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	defer func() {
		_ = rows.Close()
	}()

	result := make([]models.Order, 0)
	for rows.Next() {
		var o models.Order
		if err = rows.Scan(&o.ID, &o.UserID, &o.ProductName, &o.Price,
			&o.Period, &o.Quantity, &o.Status, &o.CreatedAt); err != nil {
			return nil, fmt.Errorf("%s: %w", op, err)
		}
		result = append(result, o)
	}
	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	return result, nil
}
