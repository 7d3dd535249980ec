package service

import (
	"context"
	"io"

	"github.com/rs/zerolog"

	"github.com/contactly/clients-api/internal/core/domain"
	"github.com/contactly/clients-api/internal/core/ports"
)

// UserService implements the caller-scoped profile operations. Identity is
// resolved upstream; this layer only reads user state and the avatar URL.
type UserService struct {
	repo   ports.UserRepository
	images ports.ImageHost
	logger zerolog.Logger
}

func NewUserService(repo ports.UserRepository, images ports.ImageHost, logger zerolog.Logger) *UserService {
	return &UserService{repo: repo, images: images, logger: logger}
}

func (s *UserService) Me(ctx context.Context, email string) (*domain.User, error) {
	return s.repo.FindByEmail(ctx, email)
}

// UpdateAvatar delegates storage and transformation to the external image
// host, then persists the returned reference URL on the caller's record.
func (s *UserService) UpdateAvatar(ctx context.Context, email, username string, image io.Reader) (*domain.User, error) {
	url, err := s.images.Upload(ctx, image, "avatars/"+username)
	if err != nil {
		s.logger.Error().Err(err).Str("username", username).Msg("avatar upload failed")
		return nil, err
	}

	user, err := s.repo.UpdateAvatar(ctx, email, url)
	if err != nil {
		return nil, err
	}

	s.logger.Info().Str("username", username).Msg("avatar updated")
	return user, nil
}
