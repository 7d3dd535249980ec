package ports

import (
	"context"
	"time"

	"github.com/contactly/clients-api/internal/core/domain"
)

// ClientInput carries the full mutable field set of a client record. Both
// create and update take the whole payload; updates replace wholesale, never
// merge field-by-field.
type ClientInput struct {
	FirstName string
	LastName  string
	Email     string
	Mobile    string
	Birthday  time.Time
	AddInfo   string
}

// ClientService defines use-case operations for client records.
type ClientService interface {
	List(ctx context.Context) ([]*domain.Client, error)
	// ListByBirthday returns clients whose birthday falls inside the day/month
	// band [start, end]. Zero bounds default to today and today+7 days.
	ListByBirthday(ctx context.Context, start, end time.Time) ([]*domain.Client, error)
	Get(ctx context.Context, id int64) (*domain.Client, error)
	Create(ctx context.Context, in ClientInput) (*domain.Client, error)
	Update(ctx context.Context, id int64, in ClientInput) (*domain.Client, error)
	// Delete removes the record and returns its last known values.
	Delete(ctx context.Context, id int64) (*domain.Client, error)
}
