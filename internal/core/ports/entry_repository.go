package ports

import (
	"context"

	"github.com/forefront/clientplus/internal/core/domain"
)

// EntryRepository persists and aggregates time entries.
type EntryRepository interface {
	// CreateBatch inserts all entries in a single transaction. Either every
	// row is created or none are.
	CreateBatch(ctx context.Context, entries []*domain.TimeEntry) error
	FindByID(ctx context.Context, id int64) (*domain.TimeEntry, error)
	// Update persists the given entry's mutable fields and bumps updated_at.
	Update(ctx context.Context, entry *domain.TimeEntry) error
	// Delete removes the row, returning domain.ErrEntryNotFound when id is unknown.
	Delete(ctx context.Context, id int64) error

	SumHoursForDay(ctx context.Context, consultant string, year, month, day int) (float64, error)
	SumHoursForMonth(ctx context.Context, consultant string, year, month int) (float64, error)
	CountDistinctClients(ctx context.Context, consultant string, year, month int) (int64, error)
	// ListForDay returns the consultant's entries for one day, newest first.
	ListForDay(ctx context.Context, consultant string, year, month, day int) ([]domain.TimeEntry, error)
	// ListRecent returns the consultant's most recently touched entries,
	// ordered by updated_at descending.
	ListRecent(ctx context.Context, consultant string, limit int) ([]domain.TimeEntry, error)
}
