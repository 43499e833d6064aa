package ports

import (
	"context"

	"github.com/stocktrack/inventory-api/internal/core/domain"
)

// AuthRepository defines the interface for user authentication persistence.
type AuthRepository interface {
	// FindByEmail looks a user up by exact (case-sensitive) email match.
	// Returns domain.ErrUserNotFound when no row matches.
	FindByEmail(ctx context.Context, email string) (*domain.User, error)
	// Create persists a new user. A uniqueness violation on email surfaces
	// as domain.ErrDuplicateEmail.
	Create(ctx context.Context, user *domain.User) (*domain.User, error)
}
