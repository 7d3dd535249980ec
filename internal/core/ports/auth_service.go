package ports

import (
	"context"

	"github.com/contactly/clients-api/internal/core/domain"
)

// TokenPair is an access/refresh token pair issued at login and refresh.
type TokenPair struct {
	AccessToken  string
	RefreshToken string
}

// AuthService defines registration, login and token refresh.
type AuthService interface {
	Register(ctx context.Context, username, email, password string) (*domain.User, error)
	Login(ctx context.Context, email, password string) (*TokenPair, *domain.User, error)
	// Refresh exchanges a valid refresh token for a new pair. A token that
	// does not match the one stored on the user revokes the stored token.
	Refresh(ctx context.Context, refreshToken string) (*TokenPair, error)
}
