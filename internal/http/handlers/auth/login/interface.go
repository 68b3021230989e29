package login

import (
	"context"

	"github.com/colddogs/storefront/internal/services/auth"
)

// Service описывает интерфейс бизнес-логики входа.
type Service interface {
	Login(ctx context.Context, email, password string) (*auth.Session, error)
}
