// Package sqlitedb реализует встроенный локальный вариант хранилища
// записей на SQLite через GORM. Контракты и семантика ошибок совпадают
// с PostgreSQL-бэкендом: выбор делается на этапе сборки приложения,
// сервисный слой разницы не видит.
package sqlitedb

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"time"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/colddogs/storefront/internal/models"
	"github.com/colddogs/storefront/internal/storage"
)

// Storage инкапсулирует встроенную базу SQLite.
type Storage struct {
	db *gorm.DB
}

type userRecord struct {
	ID           int64  `gorm:"primaryKey;autoIncrement"`
	Username     string `gorm:"uniqueIndex;not null"`
	Email        string `gorm:"uniqueIndex;not null"`
	PasswordHash string `gorm:"not null"`
	CreatedAt    time.Time
	LastLogin    *time.Time
	ProfileData  string `gorm:"not null;default:'{}'"`
}

func (userRecord) TableName() string { return "users" }

type orderRecord struct {
	ID          int64  `gorm:"primaryKey;autoIncrement"`
	UserID      int64  `gorm:"index;not null"`
	ProductName string `gorm:"not null"`
	Price       string `gorm:"not null"`
	Period      string `gorm:"not null"`
	Quantity    int    `gorm:"not null;default:1"`
	Status      string `gorm:"not null;default:'pending'"`
	CreatedAt   time.Time
}

func (orderRecord) TableName() string { return "orders" }

type newsRecord struct {
	ID        int64  `gorm:"primaryKey;autoIncrement"`
	Title     string `gorm:"not null"`
	Content   string `gorm:"not null"`
	Product   string
	Image     string
	Type      string
	CreatedAt time.Time
}

func (newsRecord) TableName() string { return "news" }

// New открывает (или создаёт) файл базы и применяет схему.
func New(path string) (*Storage, error) {
	const op = "storage.sqlitedb.New"

	db, err := gorm.Open(sqlite.Open(path), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	if err := db.AutoMigrate(&userRecord{}, &orderRecord{}, &newsRecord{}); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	return &Storage{db: db}, nil
}

// Close закрывает соединение с базой данных.
func (s *Storage) Close() error {
	sqlDB, err := s.db.DB()
	if err != nil {
		return err
	}
	return sqlDB.Close()
}

// translate приводит ошибки GORM и драйвера SQLite к общим ошибкам хранилища.
func translate(err error) error {
	if err == nil {
		return nil
	}
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return storage.ErrNotFound
	}
	if strings.Contains(err.Error(), "UNIQUE constraint failed") {
		return storage.ErrAlreadyExists
	}
	return err
}

// CreateUser сохраняет нового пользователя и возвращает его с присвоенным ID.
func (s *Storage) CreateUser(ctx context.Context, user models.User) (*models.User, error) {
	const op = "storage.sqlitedb.CreateUser"

	profile, err := json.Marshal(profileOrEmpty(user.ProfileData))
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	rec := userRecord{
		Username:     user.Username,
		Email:        user.Email,
		PasswordHash: user.PasswordHash,
		ProfileData:  string(profile),
	}
	if err := s.db.WithContext(ctx).Create(&rec).Error; err != nil {
		return nil, fmt.Errorf("%s: %w", op, translate(err))
	}
	return rec.toModel()
}

// GetUserByEmail возвращает пользователя по email или storage.ErrNotFound.
func (s *Storage) GetUserByEmail(ctx context.Context, email string) (*models.User, error) {
	const op = "storage.sqlitedb.GetUserByEmail"
	return s.getUser(ctx, op, "email = ?", email)
}

// GetUserByUsername возвращает пользователя по имени или storage.ErrNotFound.
func (s *Storage) GetUserByUsername(ctx context.Context, username string) (*models.User, error) {
	const op = "storage.sqlitedb.GetUserByUsername"
	return s.getUser(ctx, op, "username = ?", username)
}

// GetUserByID возвращает пользователя по ID или storage.ErrNotFound.
func (s *Storage) GetUserByID(ctx context.Context, id int64) (*models.User, error) {
	const op = "storage.sqlitedb.GetUserByID"
	return s.getUser(ctx, op, "id = ?", id)
}

func (s *Storage) getUser(ctx context.Context, op, where string, arg any) (*models.User, error) {
	var rec userRecord
	if err := s.db.WithContext(ctx).Where(where, arg).First(&rec).Error; err != nil {
		return nil, fmt.Errorf("%s: %w", op, translate(err))
	}
	return rec.toModel()
}

// UpdateUser обновляет username, email и данные профиля пользователя.
func (s *Storage) UpdateUser(ctx context.Context, id int64, username, email string, profileData map[string]any) error {
	const op = "storage.sqlitedb.UpdateUser"

	profile, err := json.Marshal(profileOrEmpty(profileData))
	if err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}
	result := s.db.WithContext(ctx).Model(&userRecord{}).
		Where("id = ?", id).
		Updates(map[string]any{
			"username":     username,
			"email":        email,
			"profile_data": string(profile),
		})
	if result.Error != nil {
		return fmt.Errorf("%s: %w", op, translate(result.Error))
	}
	if result.RowsAffected == 0 {
		return fmt.Errorf("%s: %w", op, storage.ErrNotFound)
	}
	return nil
}

// UpdateLastLogin устанавливает время последнего входа пользователя.
func (s *Storage) UpdateLastLogin(ctx context.Context, id int64) error {
	const op = "storage.sqlitedb.UpdateLastLogin"

	now := time.Now()
	if err := s.db.WithContext(ctx).Model(&userRecord{}).
		Where("id = ?", id).
		Update("last_login", &now).Error; err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}
	return nil
}

// CreateOrder вставляет новый заказ и возвращает его с присвоенным ID.
func (s *Storage) CreateOrder(ctx context.Context, order models.Order) (*models.Order, error) {
	const op = "storage.sqlitedb.CreateOrder"

	rec := orderRecord{
		UserID:      order.UserID,
		ProductName: order.ProductName,
		Price:       order.Price,
		Period:      order.Period,
		Quantity:    order.Quantity,
		Status:      order.Status,
	}
	if err := s.db.WithContext(ctx).Create(&rec).Error; err != nil {
		return nil, fmt.Errorf("%s: %w", op, translate(err))
	}
	m := rec.toModel()
	return &m, nil
}

// ListOrdersByUser возвращает заказы пользователя от новых к старым.
func (s *Storage) ListOrdersByUser(ctx context.Context, userID int64) ([]models.Order, error) {
	const op = "storage.sqlitedb.ListOrdersByUser"

	var recs []orderRecord
	if err := s.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("created_at DESC, id DESC").
		Find(&recs).Error; err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	result := make([]models.Order, 0, len(recs))
	for _, rec := range recs {
		result = append(result, rec.toModel())
	}
	return result, nil
}

// CountNews возвращает количество новостей в хранилище.
func (s *Storage) CountNews(ctx context.Context) (int64, error) {
	const op = "storage.sqlitedb.CountNews"

	var count int64
	if err := s.db.WithContext(ctx).Model(&newsRecord{}).Count(&count).Error; err != nil {
		return 0, fmt.Errorf("%s: %w", op, err)
	}
	return count, nil
}

// CreateNews вставляет новость и возвращает её с присвоенным ID.
func (s *Storage) CreateNews(ctx context.Context, item models.News) (*models.News, error) {
	const op = "storage.sqlitedb.CreateNews"

	rec := newsRecord{
		Title:   item.Title,
		Content: item.Content,
		Product: item.Product,
		Image:   item.Image,
		Type:    item.Type,
	}
	if err := s.db.WithContext(ctx).Create(&rec).Error; err != nil {
		return nil, fmt.Errorf("%s: %w", op, translate(err))
	}
	m := rec.toNews()
	return &m, nil
}

// ListNews возвращает все новости от новых к старым.
func (s *Storage) ListNews(ctx context.Context) ([]models.News, error) {
	const op = "storage.sqlitedb.ListNews"

	var recs []newsRecord
	if err := s.db.WithContext(ctx).
		Order("created_at DESC, id DESC").
		Find(&recs).Error; err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	result := make([]models.News, 0, len(recs))
	for _, rec := range recs {
		result = append(result, rec.toNews())
	}
	return result, nil
}

func (r userRecord) toModel() (*models.User, error) {
	u := &models.User{
		ID:           r.ID,
		Email:        r.Email,
		Username:     r.Username,
		PasswordHash: r.PasswordHash,
		CreatedAt:    r.CreatedAt,
		LastLogin:    r.LastLogin,
	}
	if err := json.Unmarshal([]byte(r.ProfileData), &u.ProfileData); err != nil {
		return nil, err
	}
	return u, nil
}

func (r orderRecord) toModel() models.Order {
	return models.Order{
		ID:          r.ID,
		UserID:      r.UserID,
		ProductName: r.ProductName,
		Price:       r.Price,
		Period:      r.Period,
		Quantity:    r.Quantity,
		Status:      r.Status,
		CreatedAt:   r.CreatedAt,
	}
}

func (r newsRecord) toNews() models.News {
	return models.News{
		ID:        r.ID,
		Title:     r.Title,
		Content:   r.Content,
		Product:   r.Product,
		Image:     r.Image,
		Type:      r.Type,
		CreatedAt: r.CreatedAt,
	}
}

func profileOrEmpty(profile map[string]any) map[string]any {
	if profile == nil {
		return map[string]any{}
	}
	return profile
}
