package register

import (
	"context"

	"github.com/colddogs/storefront/internal/services/auth"
)

// Service описывает интерфейс бизнес-логики регистрации.
type Service interface {
	Register(ctx context.Context, username, email, password string) (*auth.Session, error)
}
