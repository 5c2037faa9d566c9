package service

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/rs/zerolog"

	"github.com/forefront/clientplus/internal/core/domain"
	"github.com/forefront/clientplus/internal/core/ports"
)

// StatsInvalidator drops cached dashboard figures after an entry write.
// Cache failures are logged and ignored; the write itself must not fail.
type StatsInvalidator interface {
	Invalidate(ctx context.Context, consultant string, year, month int) error
}

// EntryService validates and persists time-entry batches and single-entry
// mutations.
type EntryService struct {
	entries ports.EntryRepository
	refs    ports.ReferenceRepository
	cache   StatsInvalidator
	log     zerolog.Logger

	now func() time.Time
}

func NewEntryService(entries ports.EntryRepository, refs ports.ReferenceRepository, cache StatsInvalidator, log zerolog.Logger) *EntryService {
	return &EntryService{
		entries: entries,
		refs:    refs,
		cache:   cache,
		log:     log,
		now:     time.Now,
	}
}

// Submit creates one entry per draft, all dated today. The whole batch is
// validated before any persistence call and written in one transaction.
func (s *EntryService) Submit(ctx context.Context, caller ports.Identity, drafts []ports.EntryDraft) ([]domain.TimeEntry, error) {
	if err := requireConsultant(caller); err != nil {
		return nil, err
	}
	if len(drafts) == 0 {
		return nil, fmt.Errorf("%w: no entries provided", domain.ErrValidation)
	}

	date := domain.NewEntryDate(s.now())
	entries := make([]*domain.TimeEntry, 0, len(drafts))
	for i, draft := range drafts {
		if err := s.validateDraft(ctx, i, draft); err != nil {
			return nil, err
		}
		entries = append(entries, s.buildEntry(caller, draft, date, domain.SourceClientPlus))
	}

	if err := s.entries.CreateBatch(ctx, entries); err != nil {
		s.log.Error().Err(err).Str("consultant", caller.Username).Int("batch_size", len(entries)).Msg("failed to save entries")
		return nil, err
	}

	s.invalidateStats(ctx, caller.Username, date.Year, date.MonthNo)
	s.log.Info().Str("consultant", caller.Username).Int("count", len(entries)).Msg("entries saved")

	return deref(entries), nil
}

// SubmitExceptional creates backdated entries. Every draft must carry a date
// no later than today; one bad draft rejects the whole batch.
func (s *EntryService) SubmitExceptional(ctx context.Context, caller ports.Identity, drafts []ports.ExceptionalDraft) ([]domain.TimeEntry, error) {
	if err := requireConsultant(caller); err != nil {
		return nil, err
	}
	if len(drafts) == 0 {
		return nil, fmt.Errorf("%w: no entries provided", domain.ErrValidation)
	}

	today := dateOnly(s.now())
	entries := make([]*domain.TimeEntry, 0, len(drafts))
	for i, draft := range drafts {
		if err := s.validateDraft(ctx, i, draft.EntryDraft); err != nil {
			return nil, err
		}
		if draft.Date.IsZero() {
			return nil, fmt.Errorf("%w: entry %d: date is required", domain.ErrValidation, i+1)
		}
		if dateOnly(draft.Date).After(today) {
			return nil, fmt.Errorf("%w: entry %d: date cannot be in the future", domain.ErrValidation, i+1)
		}
		entries = append(entries, s.buildEntry(caller, draft.EntryDraft, domain.NewEntryDate(draft.Date), domain.SourceExceptional))
	}

	if err := s.entries.CreateBatch(ctx, entries); err != nil {
		s.log.Error().Err(err).Str("consultant", caller.Username).Int("batch_size", len(entries)).Msg("failed to save exceptional entries")
		return nil, err
	}

	for _, e := range entries {
		s.invalidateStats(ctx, caller.Username, e.Year, e.MonthNo)
	}
	s.log.Info().Str("consultant", caller.Username).Int("count", len(entries)).Msg("exceptional entries saved")

	return deref(entries), nil
}

// Update overwrites the provided fields of an existing entry and bumps
// updated_at. The hierarchy path is re-validated only when all three of
// domain/subdomain/scope are supplied together.
func (s *EntryService) Update(ctx context.Context, caller ports.Identity, id int64, input ports.UpdateEntryInput) (*domain.TimeEntry, error) {
	if err := requireConsultant(caller); err != nil {
		return nil, err
	}
	if id <= 0 {
		return nil, fmt.Errorf("%w: invalid entry id", domain.ErrValidation)
	}

	entry, err := s.entries.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if err := requireOwner(caller, entry); err != nil {
		return nil, err
	}

	if input.Hours != nil {
		if *input.Hours <= 0 || *input.Hours > domain.MaxDailyHours {
			return nil, fmt.Errorf("%w: hours must be between 0 and %d", domain.ErrValidation, domain.MaxDailyHours)
		}
		entry.WorkingHours = *input.Hours
	}
	if input.Notes != nil {
		if strings.TrimSpace(*input.Notes) == "" {
			return nil, fmt.Errorf("%w: notes must not be empty", domain.ErrValidation)
		}
		entry.Notes = *input.Notes
	}
	if input.Domain != nil && input.Subdomain != nil && input.Scope != nil {
		ok, err := s.refs.PathExists(ctx, strings.TrimSpace(*input.Domain), strings.TrimSpace(*input.Subdomain), strings.TrimSpace(*input.Scope))
		if err != nil {
			return nil, err
		}
		if !ok {
			return nil, domain.ErrInvalidPath
		}
	}
	if input.Domain != nil {
		entry.Domain = strings.TrimSpace(*input.Domain)
	}
	if input.Subdomain != nil {
		entry.Subdomain = strings.TrimSpace(*input.Subdomain)
	}
	if input.Scope != nil {
		entry.Scope = strings.TrimSpace(*input.Scope)
	}

	if err := s.entries.Update(ctx, entry); err != nil {
		return nil, err
	}

	s.invalidateStats(ctx, entry.Consultant, entry.Year, entry.MonthNo)
	s.log.Info().Int64("entry_id", id).Str("consultant", entry.Consultant).Msg("entry updated")

	return entry, nil
}

// Delete removes an entry. No soft delete, no audit trail.
func (s *EntryService) Delete(ctx context.Context, caller ports.Identity, id int64) error {
	if err := requireConsultant(caller); err != nil {
		return err
	}
	if id <= 0 {
		return fmt.Errorf("%w: invalid entry id", domain.ErrValidation)
	}

	entry, err := s.entries.FindByID(ctx, id)
	if err != nil {
		return err
	}
	if err := requireOwner(caller, entry); err != nil {
		return err
	}

	if err := s.entries.Delete(ctx, id); err != nil {
		return err
	}

	s.invalidateStats(ctx, entry.Consultant, entry.Year, entry.MonthNo)
	s.log.Info().Int64("entry_id", id).Str("consultant", entry.Consultant).Msg("entry deleted")

	return nil
}

func (s *EntryService) validateDraft(ctx context.Context, i int, draft ports.EntryDraft) error {
	if draft.Hours <= 0 {
		return fmt.Errorf("%w: entry %d: hours must be greater than zero", domain.ErrValidation, i+1)
	}
	if draft.Hours > domain.MaxDailyHours {
		return fmt.Errorf("%w: entry %d: hours must not exceed %d", domain.ErrValidation, i+1, domain.MaxDailyHours)
	}
	if strings.TrimSpace(draft.Notes) == "" {
		return fmt.Errorf("%w: entry %d: notes are required", domain.ErrValidation, i+1)
	}
	if strings.TrimSpace(draft.Domain) == "" || strings.TrimSpace(draft.Subdomain) == "" || strings.TrimSpace(draft.Scope) == "" {
		return fmt.Errorf("%w: entry %d: domain, subdomain and scope are required", domain.ErrValidation, i+1)
	}

	ok, err := s.refs.PathExists(ctx, strings.TrimSpace(draft.Domain), strings.TrimSpace(draft.Subdomain), strings.TrimSpace(draft.Scope))
	if err != nil {
		return err
	}
	if !ok {
		return fmt.Errorf("entry %d: %w", i+1, domain.ErrInvalidPath)
	}
	return nil
}

// buildEntry snapshots the chosen hierarchy path as text. The client field is
// conventionally the subdomain name; the consultant comes from the verified
// caller, never from the payload.
func (s *EntryService) buildEntry(caller ports.Identity, draft ports.EntryDraft, date domain.EntryDate, source string) *domain.TimeEntry {
	return &domain.TimeEntry{
		Source:       source,
		Year:         date.Year,
		MonthNo:      date.MonthNo,
		Day:          date.Day,
		Month:        date.Month,
		ConsultantID: caller.UserID,
		Consultant:   caller.Username,
		Client:       strings.TrimSpace(draft.Subdomain),
		ActivityType: domain.ActivityTypeClient,
		WorkingHours: draft.Hours,
		Notes:        draft.Notes,
		Domain:       strings.TrimSpace(draft.Domain),
		Subdomain:    strings.TrimSpace(draft.Subdomain),
		Scope:        strings.TrimSpace(draft.Scope),
	}
}

func (s *EntryService) invalidateStats(ctx context.Context, consultant string, year, month int) {
	if s.cache == nil {
		return
	}
	if err := s.cache.Invalidate(ctx, consultant, year, month); err != nil {
		s.log.Warn().Err(err).Str("consultant", consultant).Msg("failed to invalidate stats cache")
	}
}

// requireConsultant rejects anonymous and deactivated callers before any
// persistence call.
func requireConsultant(caller ports.Identity) error {
	if caller.UserID == 0 || caller.Username == "" {
		return domain.ErrInvalidCredentials
	}
	if !caller.Active {
		return domain.ErrForbidden
	}
	return nil
}

// requireOwner restricts entry mutation to the creating consultant; a
// SUPER_USER may edit anyone's rows.
func requireOwner(caller ports.Identity, entry *domain.TimeEntry) error {
	if caller.Role == domain.RoleSuperUser {
		return nil
	}
	if entry.Consultant != caller.Username {
		return domain.ErrForbidden
	}
	return nil
}

func dateOnly(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}

func deref(entries []*domain.TimeEntry) []domain.TimeEntry {
	out := make([]domain.TimeEntry, len(entries))
	for i, e := range entries {
		out[i] = *e
	}
	return out
}
