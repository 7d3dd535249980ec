package service

import (
	"context"
	"errors"
	"time"

	"github.com/rs/zerolog"

	"github.com/contactly/clients-api/internal/core/domain"
	"github.com/contactly/clients-api/internal/core/ports"
)

const defaultBirthdaySpanDays = 7

type ClientService struct {
	repo   ports.ClientRepository
	logger zerolog.Logger
	now    func() time.Time
}

func NewClientService(repo ports.ClientRepository, logger zerolog.Logger) *ClientService {
	return &ClientService{repo: repo, logger: logger, now: func() time.Time { return time.Now().UTC() }}
}

// List returns the full snapshot of client records. Throttling happens at
// the transport layer before this is reached.
func (s *ClientService) List(ctx context.Context) ([]*domain.Client, error) {
	return s.repo.List(ctx)
}

// ListByBirthday returns clients matching the day/month band [start, end].
// Each omitted bound defaults independently: start to today, end to today
// plus seven days, regardless of the supplied start. The comparison is
// per-component (day and month independently, year ignored), exactly as the
// store implements it.
func (s *ClientService) ListByBirthday(ctx context.Context, start, end time.Time) ([]*domain.Client, error) {
	if start.IsZero() {
		start = s.now()
	}
	if end.IsZero() {
		end = s.now().AddDate(0, 0, defaultBirthdaySpanDays)
	}
	return s.repo.ListByBirthday(ctx, ports.BirthdayWindow{Start: start, End: end})
}

func (s *ClientService) Get(ctx context.Context, id int64) (*domain.Client, error) {
	if id < 1 {
		return nil, domain.ErrInvalidID
	}
	return s.repo.FindByID(ctx, id)
}

// Create inserts a new client record. An existing record with the same email
// rejects the create with domain.ErrEmailTaken before any write.
func (s *ClientService) Create(ctx context.Context, in ports.ClientInput) (*domain.Client, error) {
	existing, err := s.repo.FindByEmail(ctx, in.Email)
	if err != nil && !errors.Is(err, domain.ErrClientNotFound) {
		return nil, err
	}
	if existing != nil {
		return nil, domain.ErrEmailTaken
	}

	now := s.now()
	client := &domain.Client{
		FirstName: in.FirstName,
		LastName:  in.LastName,
		Email:     in.Email,
		Mobile:    in.Mobile,
		Birthday:  in.Birthday,
		AddInfo:   in.AddInfo,
		CreatedAt: now,
		UpdatedAt: now,
	}

	created, err := s.repo.Create(ctx, client)
	if err != nil {
		s.logger.Error().Err(err).Msg("failed to create client")
		return nil, err
	}

	s.logger.Info().Int64("client_id", created.ID).Msg("client created")
	return created, nil
}

// Update replaces every mutable field of an existing record and refreshes
// updated_at. The read-then-write sequence carries no concurrency token;
// concurrent updates resolve last-writer-wins.
func (s *ClientService) Update(ctx context.Context, id int64, in ports.ClientInput) (*domain.Client, error) {
	if id < 1 {
		return nil, domain.ErrInvalidID
	}

	client, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	client.FirstName = in.FirstName
	client.LastName = in.LastName
	client.Email = in.Email
	client.Mobile = in.Mobile
	client.Birthday = in.Birthday
	client.AddInfo = in.AddInfo
	client.UpdatedAt = s.now()

	if err := s.repo.Update(ctx, client); err != nil {
		s.logger.Error().Err(err).Int64("client_id", id).Msg("failed to update client")
		return nil, err
	}

	return client, nil
}

// Delete removes the record permanently and returns its last known values.
func (s *ClientService) Delete(ctx context.Context, id int64) (*domain.Client, error) {
	if id < 1 {
		return nil, domain.ErrInvalidID
	}

	client, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if err := s.repo.Delete(ctx, id); err != nil {
		s.logger.Error().Err(err).Int64("client_id", id).Msg("failed to delete client")
		return nil, err
	}

	s.logger.Info().Int64("client_id", id).Msg("client deleted")
	return client, nil
}
