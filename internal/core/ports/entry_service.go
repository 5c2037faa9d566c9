package ports

import (
	"context"
	"time"

	"github.com/forefront/clientplus/internal/core/domain"
)

// EntryDraft is one row of a submission batch as entered by the consultant.
// The hierarchy levels are carried by name; they are resolved against the
// reference data before anything is persisted.
type EntryDraft struct {
	Domain    string
	Subdomain string
	Scope     string
	Hours     float64
	Notes     string
}

// ExceptionalDraft is a backdated draft carrying its own entry date.
type ExceptionalDraft struct {
	EntryDraft
	Date time.Time
}

// UpdateEntryInput is a partial overwrite of an entry's mutable fields.
// Nil pointers leave the stored value untouched.
type UpdateEntryInput struct {
	Hours     *float64
	Notes     *string
	Domain    *string
	Subdomain *string
	Scope     *string
}

// EntryService validates and persists time entries.
type EntryService interface {
	// Submit creates one entry per draft, all dated today, atomically.
	Submit(ctx context.Context, caller Identity, drafts []EntryDraft) ([]domain.TimeEntry, error)
	// SubmitExceptional creates backdated entries; a draft dated after today
	// rejects the whole batch.
	SubmitExceptional(ctx context.Context, caller Identity, drafts []ExceptionalDraft) ([]domain.TimeEntry, error)
	Update(ctx context.Context, caller Identity, id int64, input UpdateEntryInput) (*domain.TimeEntry, error)
	Delete(ctx context.Context, caller Identity, id int64) error
}
