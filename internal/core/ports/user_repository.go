package ports

import (
	"context"

	"github.com/contactly/clients-api/internal/core/domain"
)

// UserRepository defines persistence operations for user accounts.
type UserRepository interface {
	Create(ctx context.Context, u *domain.User) (*domain.User, error)
	FindByEmail(ctx context.Context, email string) (*domain.User, error)
	// UpdateRefreshToken stores the user's current refresh token; an empty
	// token revokes it.
	UpdateRefreshToken(ctx context.Context, id int64, token string) error
	// UpdateAvatar persists the avatar URL for the user with the given email
	// and returns the updated record.
	UpdateAvatar(ctx context.Context, email, avatarURL string) (*domain.User, error)
}
