package ports

import (
	"context"
	"io"

	"github.com/contactly/clients-api/internal/core/domain"
)

// UserService defines the caller-scoped profile operations.
type UserService interface {
	// Me returns the resolved user record for the authenticated caller.
	Me(ctx context.Context, email string) (*domain.User, error)
	// UpdateAvatar uploads the image to the external host and persists the
	// returned reference URL on the caller's record.
	UpdateAvatar(ctx context.Context, email, username string, image io.Reader) (*domain.User, error)
}

// ImageHost is the external collaborator that stores and transforms avatar
// images. Upload returns the public delivery URL for the stored image.
type ImageHost interface {
	Upload(ctx context.Context, image io.Reader, publicID string) (string, error)
}
