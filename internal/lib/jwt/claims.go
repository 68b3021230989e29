package jwt

import (
	"github.com/golang-jwt/jwt/v5"

	"github.com/colddogs/storefront/internal/models"
)

// Claims описывает данные сессии, хранящиеся в JWT.
type Claims struct {
	UserID               int64  `json:"id"`       // Идентификатор пользователя
	Username             string `json:"username"` // Имя пользователя
	Email                string `json:"email"`    // Электронная почта
	jwt.RegisteredClaims        // Стандартные claims (ExpiresAt, IssuedAt и пр.)
}

// Identity возвращает идентичность пользователя из claims.
func (c *Claims) Identity() models.Identity {
	return models.Identity{
		ID:       c.UserID,
		Username: c.Username,
		Email:    c.Email,
	}
}
