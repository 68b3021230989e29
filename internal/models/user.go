// Package models содержит доменную модель пользователя системы,
// включающую данные учётной записи, хэш пароля и дату создания.
// Структуры используются в бизнес‑логике и при работе с хранилищем.
package models

import "time"

// User представляет зарегистрированного пользователя магазина.
type User struct {
	ID           int64          // Уникальный идентификатор пользователя
	Email        string         // Электронная почта (уникальная), идентификатор входа
	Username     string         // Имя пользователя (уникальное)
	PasswordHash string         // Хэш пароля пользователя
	CreatedAt    time.Time      // Дата регистрации
	LastLogin    *time.Time     // Дата последнего входа, nil до первого входа
	ProfileData  map[string]any // Произвольные данные профиля (bio и т.п.)
}

// PublicUser содержит публичные поля пользователя для выдачи наружу.
// Хэш пароля сюда не попадает никогда.
type PublicUser struct {
	ID          int64          `json:"id"`
	Username    string         `json:"username"`
	Email       string         `json:"email"`
	CreatedAt   time.Time      `json:"created_at"`
	LastLogin   *time.Time     `json:"last_login"`
	ProfileData map[string]any `json:"profile_data"`
}

// Public возвращает публичное представление пользователя.
func (u *User) Public() PublicUser {
	profile := u.ProfileData
	if profile == nil {
		profile = map[string]any{}
	}
	return PublicUser{
		ID:          u.ID,
		Username:    u.Username,
		Email:       u.Email,
		CreatedAt:   u.CreatedAt,
		LastLogin:   u.LastLogin,
		ProfileData: profile,
	}
}

// Identity минимальный набор данных пользователя, попадающий в JWT
// и возвращаемый клиенту при регистрации и входе.
type Identity struct {
	ID       int64  `json:"id"`
	Username string `json:"username"`
	Email    string `json:"email"`
}
