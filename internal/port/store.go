package port

import (
	"context"

	"github.com/dayplan/weekly-planner/internal/domain"
)

// RecordStore persists the shared collection of user records. All records
// live in one collection that is read and written as a whole; every
// read-modify-write cycle must be serialized against all others, or a
// concurrent writer's change is silently lost.
type RecordStore interface {
	// LoadAll returns the full persisted collection. A corrupt or
	// unreadable backing store yields an empty collection, never an error.
	LoadAll(ctx context.Context) []domain.Record

	// SaveAll overwrites the full persisted collection. No concurrent
	// reader observes a partially written collection.
	SaveAll(ctx context.Context, records []domain.Record) error

	// Find returns the record for the username, nil if absent.
	Find(ctx context.Context, username string) *domain.Record

	// Upsert replaces the record whose username matches, or appends it,
	// holding the store's critical section for the whole
	// load-modify-save cycle.
	Upsert(ctx context.Context, record *domain.Record) error

	// Create appends the record only if the username is free, with the
	// duplicate check inside the same critical section as the save.
	// Returns domain.ErrDuplicateUser if a record already exists, so two
	// simultaneous registrations can never both succeed.
	Create(ctx context.Context, record *domain.Record) error

	// Update runs fn against the current record for username inside the
	// same critical section as Upsert, then persists the result. Returns
	// domain.ErrRecordNotFound if no record exists. A mutation applied
	// through Update can never race another Update or Upsert.
	Update(ctx context.Context, username string, fn func(*domain.Record) error) (*domain.Record, error)
}
