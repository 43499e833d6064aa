package service

import (
	"context"
	"errors"
	"strconv"
	"time"

	"github.com/rs/zerolog"
	"golang.org/x/crypto/bcrypt"

	"github.com/stocktrack/inventory-api/internal/api/metrics"
	"github.com/stocktrack/inventory-api/internal/core/domain"
	"github.com/stocktrack/inventory-api/internal/core/ports"
	"github.com/stocktrack/inventory-api/internal/core/token"
)

// AuthService implements registration and login.
type AuthService struct {
	repo   ports.AuthRepository
	codec  *token.Codec
	logger zerolog.Logger
}

func NewAuthService(repo ports.AuthRepository, codec *token.Codec, logger zerolog.Logger) *AuthService {
	return &AuthService{repo: repo, codec: codec, logger: logger}
}

// Register creates a new user. Role defaults to "user" when empty. Email
// uniqueness is checked up front and enforced again by the store's unique
// constraint, so a racing duplicate insert still surfaces as ErrDuplicateEmail.
func (s *AuthService) Register(ctx context.Context, email, password, role string) (*domain.User, error) {
	if email == "" || password == "" {
		return nil, domain.ErrInvalidCredentials
	}
	if role == "" {
		role = domain.RoleUser
	}
	if !domain.ValidRole(role) {
		return nil, domain.ErrInvalidCredentials
	}

	// Exact-match lookup, case-sensitive as stored.
	if _, err := s.repo.FindByEmail(ctx, email); err == nil {
		return nil, domain.ErrDuplicateEmail
	} else if !errors.Is(err, domain.ErrUserNotFound) {
		return nil, err
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}

	user := &domain.User{
		Email:        email,
		PasswordHash: string(hash),
		Role:         role,
		CreatedAt:    time.Now().UTC(),
	}

	created, err := s.repo.Create(ctx, user)
	if err != nil {
		return nil, err
	}

	metrics.AuthRegistrationsTotal.WithLabelValues(created.Role).Inc()
	s.logger.Info().Int64("user_id", created.ID).Str("role", created.Role).Msg("user registered")
	return created, nil
}

// Login validates credentials and returns a signed token embedding the
// user's id as subject and the stored role. A lookup miss and a hash
// mismatch are indistinguishable to the caller.
func (s *AuthService) Login(ctx context.Context, email, password string) (string, error) {
	if email == "" || password == "" {
		metrics.AuthLoginsTotal.WithLabelValues("failure").Inc()
		return "", domain.ErrInvalidCredentials
	}

	user, err := s.repo.FindByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, domain.ErrUserNotFound) {
			metrics.AuthLoginsTotal.WithLabelValues("failure").Inc()
			return "", domain.ErrInvalidCredentials
		}
		return "", err
	}

	if bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)) != nil {
		metrics.AuthLoginsTotal.WithLabelValues("failure").Inc()
		return "", domain.ErrInvalidCredentials
	}

	signed, err := s.codec.Issue(strconv.FormatInt(user.ID, 10), user.Role)
	if err != nil {
		return "", err
	}

	metrics.AuthLoginsTotal.WithLabelValues("success").Inc()
	s.logger.Info().Int64("user_id", user.ID).Msg("login succeeded")
	return signed, nil
}
