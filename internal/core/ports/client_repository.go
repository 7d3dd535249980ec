package ports

import (
	"context"
	"time"

	"github.com/contactly/clients-api/internal/core/domain"
)

// BirthdayWindow is the day/month band used by the birthday query. Both
// bounds are calendar dates; only their day and month components are
// compared against stored birthdays, each independently. Ranges that cross a
// month boundary therefore match nothing useful. This mirrors the
// long-standing production behavior and must not be "fixed" here.
type BirthdayWindow struct {
	Start time.Time
	End   time.Time
}

// ClientRepository defines persistence operations for client records.
type ClientRepository interface {
	Create(ctx context.Context, c *domain.Client) (*domain.Client, error)
	FindByID(ctx context.Context, id int64) (*domain.Client, error)
	FindByEmail(ctx context.Context, email string) (*domain.Client, error)
	List(ctx context.Context) ([]*domain.Client, error)
	ListByBirthday(ctx context.Context, w BirthdayWindow) ([]*domain.Client, error)
	// Update replaces every mutable field of the record with the given values.
	// Returns domain.ErrClientNotFound when no record has that id.
	Update(ctx context.Context, c *domain.Client) error
	// Delete removes the record permanently. Returns domain.ErrClientNotFound
	// when no record has that id.
	Delete(ctx context.Context, id int64) error
}
