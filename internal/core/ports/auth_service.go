package ports

import (
	"context"

	"github.com/stocktrack/inventory-api/internal/core/domain"
)

type AuthService interface {
	Register(ctx context.Context, email, password, role string) (*domain.User, error)
	// Login validates credentials and returns a signed bearer token.
	Login(ctx context.Context, email, password string) (string, error)
}
