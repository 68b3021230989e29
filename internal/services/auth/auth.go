// Package auth содержит бизнес-логику регистрации, входа и работы
// с профилем пользователя.
package auth

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/colddogs/storefront/internal/lib/jwt"
	"github.com/colddogs/storefront/internal/lib/password"
	"github.com/colddogs/storefront/internal/models"
	"github.com/colddogs/storefront/internal/storage"
)

// Ошибки сервиса. Хендлеры сравнивают их через errors.Is
// и переводят в HTTP-статусы.
var (
	// ErrUserExists пользователь с таким email или именем уже есть.
	ErrUserExists = errors.New("user already exists")
	// ErrInvalidCredentials неверный email или пароль. Одна ошибка на оба
	// случая: наружу не утекает, какая именно проверка не прошла.
	ErrInvalidCredentials = errors.New("invalid email or password")
	// ErrUserNotFound пользователь с таким id не найден.
	ErrUserNotFound = errors.New("user not found")
)

// UserRepository описывает контракт хранилища пользователей.
type UserRepository interface {
	// CreateUser сохраняет нового пользователя и возвращает его с ID.
	CreateUser(ctx context.Context, user models.User) (*models.User, error)
	// GetUserByEmail возвращает пользователя по email или storage.ErrNotFound.
	GetUserByEmail(ctx context.Context, email string) (*models.User, error)
	// GetUserByUsername возвращает пользователя по имени или storage.ErrNotFound.
	GetUserByUsername(ctx context.Context, username string) (*models.User, error)
	// GetUserByID возвращает пользователя по ID или storage.ErrNotFound.
	GetUserByID(ctx context.Context, id int64) (*models.User, error)
	// UpdateUser обновляет username, email и данные профиля.
	UpdateUser(ctx context.Context, id int64, username, email string, profileData map[string]any) error
	// UpdateLastLogin устанавливает время последнего входа.
	UpdateLastLogin(ctx context.Context, id int64) error
}

// OrderLister отдаёт заказы пользователя для профиля.
type OrderLister interface {
	ListOrdersByUser(ctx context.Context, userID int64) ([]models.Order, error)
}

// Service реализует регистрацию, вход и работу с профилем.
type Service struct {
	users    UserRepository
	orders   OrderLister
	jwtMaker jwt.Maker
	log      *slog.Logger
}

// New создает новый экземпляр Service.
func New(users UserRepository, orders OrderLister, jwtMaker jwt.Maker, log *slog.Logger) *Service {
	return &Service{
		users:    users,
		orders:   orders,
		jwtMaker: jwtMaker,
		log:      log,
	}
}

// Session результат успешной регистрации или входа.
type Session struct {
	Identity models.Identity
	Token    string
}

// Profile профиль пользователя вместе с историей заказов.
type Profile struct {
	User   models.PublicUser `json:"user"`
	Orders []models.Order    `json:"orders"`
}

// UpdateParams изменяемые поля профиля. Пустое значение означает
// "оставить как было".
type UpdateParams struct {
	Username    string
	Email       string
	ProfileData map[string]any
}

// Register создает нового пользователя и выпускает токен сессии.
// Возвращает ErrUserExists, если email или имя уже заняты.
func (s *Service) Register(ctx context.Context, username, email, rawPassword string) (*Session, error) {
	const op = "services.auth.Register"

	// Предварительная проверка — только оптимизация ради внятной ошибки.
	// Гарантию даёт уникальный индекс в хранилище.
	if _, err := s.users.GetUserByEmail(ctx, email); err == nil {
		return nil, ErrUserExists
	} else if !errors.Is(err, storage.ErrNotFound) {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	if _, err := s.users.GetUserByUsername(ctx, username); err == nil {
		return nil, ErrUserExists
	} else if !errors.Is(err, storage.ErrNotFound) {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	user, err := s.users.CreateUser(ctx, models.User{
		Username:     username,
		Email:        email,
		PasswordHash: password.Hash(rawPassword),
		ProfileData:  map[string]any{},
	})
	if err != nil {
		if errors.Is(err, storage.ErrAlreadyExists) {
			return nil, ErrUserExists
		}
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	s.log.Info("user registered", slog.Int64("user_id", user.ID))
	return s.newSession(user)
}

// Login проверяет учётные данные и выпускает токен сессии.
// Неизвестный email и неверный пароль дают одинаковую ошибку.
func (s *Service) Login(ctx context.Context, email, rawPassword string) (*Session, error) {
	const op = "services.auth.Login"

	user, err := s.users.GetUserByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			return nil, ErrInvalidCredentials
		}
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	if err := password.Compare(user.PasswordHash, rawPassword); err != nil {
		return nil, ErrInvalidCredentials
	}

	if err := s.users.UpdateLastLogin(ctx, user.ID); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	s.log.Info("user logged in", slog.Int64("user_id", user.ID))
	return s.newSession(user)
}

// Profile возвращает публичные поля пользователя и его заказы.
func (s *Service) Profile(ctx context.Context, userID int64) (*Profile, error) {
	const op = "services.auth.Profile"

	user, err := s.users.GetUserByID(ctx, userID)
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	orders, err := s.orders.ListOrdersByUser(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return &Profile{
		User:   user.Public(),
		Orders: orders,
	}, nil
}

// UpdateProfile накладывает переданные поля на существующую запись
// и сохраняет её. На несуществующем пользователе записи не происходит.
func (s *Service) UpdateProfile(ctx context.Context, userID int64, params UpdateParams) error {
	const op = "services.auth.UpdateProfile"

	user, err := s.users.GetUserByID(ctx, userID)
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			return ErrUserNotFound
		}
		return fmt.Errorf("%s: %w", op, err)
	}

	username := user.Username
	if params.Username != "" {
		username = params.Username
	}
	email := user.Email
	if params.Email != "" {
		email = params.Email
	}
	profile := user.ProfileData
	if params.ProfileData != nil {
		profile = params.ProfileData
	}

	if err := s.users.UpdateUser(ctx, userID, username, email, profile); err != nil {
		if errors.Is(err, storage.ErrAlreadyExists) {
			return ErrUserExists
		}
		if errors.Is(err, storage.ErrNotFound) {
			return ErrUserNotFound
		}
		return fmt.Errorf("%s: %w", op, err)
	}

	s.log.Info("profile updated", slog.Int64("user_id", userID))
	return nil
}

func (s *Service) newSession(user *models.User) (*Session, error) {
	const op = "services.auth.newSession"

	identity := models.Identity{
		ID:       user.ID,
		Username: user.Username,
		Email:    user.Email,
	}
	token, err := s.jwtMaker.GenerateToken(identity)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	return &Session{Identity: identity, Token: token}, nil
}
