package postgres

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"

	"github.com/colddogs/storefront/internal/models"
	"github.com/colddogs/storefront/internal/storage"
)

// CreateUser сохраняет нового пользователя и возвращает его с присвоенным ID.
// Дубликат email или username даёт storage.ErrAlreadyExists.
func (s *Storage) CreateUser(ctx context.Context, user models.User) (*models.User, error) {
	const op = "storage.postgres.CreateUser"
	select {
	case <-ctx.Done():
		return nil, fmt.Errorf("%s: %w", op, ctx.Err())
	default:
	}

	profile, err := json.Marshal(profileOrEmpty(user.ProfileData))
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	query := `INSERT INTO users (username, email, password_hash, profile_data)
			  VALUES ($1, $2, $3, $4)
			  RETURNING id, created_at`
	if err := s.DB.QueryRowContext(ctx, query,
		user.Username, user.Email, user.PasswordHash, profile).
		Scan(&user.ID, &user.CreatedAt); err != nil {
		return nil, fmt.Errorf("%s: %w", op, translate(err))
	}
	return &user, nil
}

// GetUserByEmail возвращает пользователя по email или storage.ErrNotFound.
func (s *Storage) GetUserByEmail(ctx context.Context, email string) (*models.User, error) {
	const op = "storage.postgres.GetUserByEmail"
	return s.getUser(ctx, op, `WHERE email = $1`, email)
}

// GetUserByUsername возвращает пользователя по имени или storage.ErrNotFound.
func (s *Storage) GetUserByUsername(ctx context.Context, username string) (*models.User, error) {
	const op = "storage.postgres.GetUserByUsername"
	return s.getUser(ctx, op, `WHERE username = $1`, username)
}

// GetUserByID возвращает пользователя по ID или storage.ErrNotFound.
func (s *Storage) GetUserByID(ctx context.Context, id int64) (*models.User, error) {
	const op = "storage.postgres.GetUserByID"
	return s.getUser(ctx, op, `WHERE id = $1`, id)
}

func (s *Storage) getUser(ctx context.Context, op, where string, arg any) (*models.User, error) {
	select {
	case <-ctx.Done():
		return nil, fmt.Errorf("%s: %w", op, ctx.Err())
	default:
	}

	query := `SELECT id, email, username, password_hash, created_at, last_login, profile_data
			  FROM users ` + where
	u := &models.User{}
	row := s.DB.QueryRowContext(ctx, query, arg)

	var lastLogin sql.NullTime
	var profile []byte
	if err := row.Scan(&u.ID, &u.Email, &u.Username, &u.PasswordHash,
		&u.CreatedAt, &lastLogin, &profile); err != nil {
		return nil, fmt.Errorf("%s: %w", op, translate(err))
	}

	if lastLogin.Valid {
		u.LastLogin = &lastLogin.Time
	}
	if err := json.Unmarshal(profile, &u.ProfileData); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	return u, nil
}

// UpdateUser обновляет username, email и данные профиля пользователя.
// Возвращает storage.ErrNotFound, если пользователя нет, и
// storage.ErrAlreadyExists при конфликте уникальности.
func (s *Storage) UpdateUser(ctx context.Context, id int64, username, email string, profileData map[string]any) error {
	const op = "storage.postgres.UpdateUser"
	select {
	case <-ctx.Done():
		return fmt.Errorf("%s: %w", op, ctx.Err())
	default:
	}

	profile, err := json.Marshal(profileOrEmpty(profileData))
	if err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}

	query := `UPDATE users
			  SET username = $1, email = $2, profile_data = $3
			  WHERE id = $4`
	result, err := s.DB.ExecContext(ctx, query, username, email, profile, id)
	if err != nil {
		return fmt.Errorf("%s: %w", op, translate(err))
	}
	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}
	if affected == 0 {
		return fmt.Errorf("%s: %w", op, storage.ErrNotFound)
	}
	return nil
}

// UpdateLastLogin устанавливает время последнего входа пользователя.
func (s *Storage) UpdateLastLogin(ctx context.Context, id int64) error {
	const op = "storage.postgres.UpdateLastLogin"
	select {
	case <-ctx.Done():
		return fmt.Errorf("%s: %w", op, ctx.Err())
	default:
	}

	query := `UPDATE users SET last_login = NOW() WHERE id = $1`
	if _, err := s.DB.ExecContext(ctx, query, id); err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}
	return nil
}

func profileOrEmpty(profile map[string]any) map[string]any {
	if profile == nil {
		return map[string]any{}
	}
	return profile
}
