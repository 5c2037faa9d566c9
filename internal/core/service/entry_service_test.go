package service

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"strings"
	"testing"
	"time"

	"github.com/rs/zerolog"

	"github.com/forefront/clientplus/internal/core/domain"
	"github.com/forefront/clientplus/internal/core/ports"
)

// ---------------------------------------------------------------------------
// In-memory stub repositories
// ---------------------------------------------------------------------------

type stubEntryRepo struct {
	entries   map[int64]*domain.TimeEntry
	nextID    int64
	createErr error // if set, CreateBatch returns this error
}

func newStubEntryRepo() *stubEntryRepo {
	return &stubEntryRepo{entries: make(map[int64]*domain.TimeEntry)}
}

func (r *stubEntryRepo) CreateBatch(_ context.Context, entries []*domain.TimeEntry) error {
	if r.createErr != nil {
		return r.createErr
	}
	now := time.Now().UTC()
	for _, e := range entries {
		r.nextID++
		e.ID = r.nextID
		e.CreatedAt = now
		e.UpdatedAt = now
		clone := *e
		r.entries[e.ID] = &clone
	}
	return nil
}

func (r *stubEntryRepo) FindByID(_ context.Context, id int64) (*domain.TimeEntry, error) {
	e, ok := r.entries[id]
	if !ok {
		return nil, domain.ErrEntryNotFound
	}
	clone := *e
	return &clone, nil
}

func (r *stubEntryRepo) Update(_ context.Context, entry *domain.TimeEntry) error {
	if _, ok := r.entries[entry.ID]; !ok {
		return domain.ErrEntryNotFound
	}
	clone := *entry
	clone.UpdatedAt = time.Now().UTC().Add(time.Second) // always after CreatedAt
	r.entries[entry.ID] = &clone
	return nil
}

func (r *stubEntryRepo) Delete(_ context.Context, id int64) error {
	if _, ok := r.entries[id]; !ok {
		return domain.ErrEntryNotFound
	}
	delete(r.entries, id)
	return nil
}

func (r *stubEntryRepo) SumHoursForDay(_ context.Context, consultant string, year, month, day int) (float64, error) {
	var sum float64
	for _, e := range r.entries {
		if e.Consultant == consultant && e.Year == year && e.MonthNo == month && e.Day == day {
			sum += e.WorkingHours
		}
	}
	return sum, nil
}

func (r *stubEntryRepo) SumHoursForMonth(_ context.Context, consultant string, year, month int) (float64, error) {
	var sum float64
	for _, e := range r.entries {
		if e.Consultant == consultant && e.Year == year && e.MonthNo == month {
			sum += e.WorkingHours
		}
	}
	return sum, nil
}

func (r *stubEntryRepo) CountDistinctClients(_ context.Context, consultant string, year, month int) (int64, error) {
	seen := make(map[string]struct{})
	for _, e := range r.entries {
		if e.Consultant == consultant && e.Year == year && e.MonthNo == month {
			seen[e.Client] = struct{}{}
		}
	}
	return int64(len(seen)), nil
}

func (r *stubEntryRepo) ListForDay(_ context.Context, consultant string, year, month, day int) ([]domain.TimeEntry, error) {
	var out []domain.TimeEntry
	for _, e := range r.entries {
		if e.Consultant == consultant && e.Year == year && e.MonthNo == month && e.Day == day {
			out = append(out, *e)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].CreatedAt.After(out[j].CreatedAt) })
	return out, nil
}

func (r *stubEntryRepo) ListRecent(_ context.Context, consultant string, limit int) ([]domain.TimeEntry, error) {
	var out []domain.TimeEntry
	for _, e := range r.entries {
		if e.Consultant == consultant {
			out = append(out, *e)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].UpdatedAt.After(out[j].UpdatedAt) })
	if len(out) > limit {
		out = out[:limit]
	}
	return out, nil
}

// stubRefRepo answers PathExists from a fixed set of known paths.
type stubRefRepo struct {
	paths      map[string]bool
	pathChecks int // number of PathExists calls
	err        error
}

func newStubRefRepo(paths ...[3]string) *stubRefRepo {
	r := &stubRefRepo{paths: make(map[string]bool)}
	for _, p := range paths {
		r.paths[strings.Join(p[:], "|")] = true
	}
	return r
}

func (r *stubRefRepo) ListDomains(context.Context) ([]domain.Domain, error)       { return nil, nil }
func (r *stubRefRepo) ListSubdomains(context.Context, int64) ([]domain.Subdomain, error) {
	return nil, nil
}
func (r *stubRefRepo) ListScopes(context.Context, int64) ([]domain.Scope, error) { return nil, nil }
func (r *stubRefRepo) ListActiveClients(context.Context) ([]domain.Client, error) {
	return nil, nil
}

func (r *stubRefRepo) PathExists(_ context.Context, domainName, subdomainName, scopeName string) (bool, error) {
	r.pathChecks++
	if r.err != nil {
		return false, r.err
	}
	return r.paths[strings.Join([]string{domainName, subdomainName, scopeName}, "|")], nil
}

// stubStatsCache records cache traffic for assertions.
type stubStatsCache struct {
	store         map[string]*ports.DashboardStats
	invalidations []string
	getErr        error
	setErr        error
}

func newStubStatsCache() *stubStatsCache {
	return &stubStatsCache{store: make(map[string]*ports.DashboardStats)}
}

func cacheKey(consultant string, year, month int) string {
	return fmt.Sprintf("%s:%d:%d", consultant, year, month)
}

func (c *stubStatsCache) Get(_ context.Context, consultant string, year, month int) (*ports.DashboardStats, error) {
	if c.getErr != nil {
		return nil, c.getErr
	}
	return c.store[cacheKey(consultant, year, month)], nil
}

func (c *stubStatsCache) Set(_ context.Context, consultant string, year, month int, stats *ports.DashboardStats) error {
	if c.setErr != nil {
		return c.setErr
	}
	clone := *stats
	c.store[cacheKey(consultant, year, month)] = &clone
	return nil
}

func (c *stubStatsCache) Invalidate(_ context.Context, consultant string, year, month int) error {
	key := cacheKey(consultant, year, month)
	c.invalidations = append(c.invalidations, key)
	delete(c.store, key)
	return nil
}

// ---------------------------------------------------------------------------
// Helpers
// ---------------------------------------------------------------------------

var discardLogger = zerolog.Nop()

var momen = ports.Identity{UserID: 1002, Username: "momen", Role: domain.RoleConsultant, Active: true}

func knownPaths() *stubRefRepo {
	return newStubRefRepo(
		[3]string{"Consulting", "ElAbd", "Strategic Planning"},
		[3]string{"Consulting", "ENGAGE", "Client Meeting"},
	)
}

func draft(subdomain, scope string, hours float64) ports.EntryDraft {
	return ports.EntryDraft{
		Domain:    "Consulting",
		Subdomain: subdomain,
		Scope:     scope,
		Hours:     hours,
		Notes:     "working session",
	}
}

func newEntryServiceAt(t *testing.T, repo *stubEntryRepo, refs *stubRefRepo, cache *stubStatsCache, now time.Time) *EntryService {
	t.Helper()
	var inv StatsInvalidator
	if cache != nil {
		inv = cache
	}
	svc := NewEntryService(repo, refs, inv, discardLogger)
	svc.now = func() time.Time { return now }
	return svc
}

// ---------------------------------------------------------------------------
// Submit tests
// ---------------------------------------------------------------------------

func TestEntryService_Submit_Success(t *testing.T) {
	repo := newStubEntryRepo()
	now := time.Date(2025, 6, 10, 14, 30, 0, 0, time.UTC)
	svc := newEntryServiceAt(t, repo, knownPaths(), nil, now)

	created, err := svc.Submit(context.Background(), momen, []ports.EntryDraft{
		draft("ElAbd", "Strategic Planning", 3.5),
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(created) != 1 {
		t.Fatalf("expected 1 entry, got %d", len(created))
	}

	e := created[0]
	if e.Source != domain.SourceClientPlus {
		t.Errorf("source: want %q, got %q", domain.SourceClientPlus, e.Source)
	}
	if e.Year != 2025 || e.MonthNo != 6 || e.Day != 10 || e.Month != "June" {
		t.Errorf("date components wrong: %d-%d-%d %q", e.Year, e.MonthNo, e.Day, e.Month)
	}
	if e.Consultant != "momen" || e.ConsultantID != 1002 {
		t.Errorf("consultant must come from the caller, got %q/%d", e.Consultant, e.ConsultantID)
	}
	if e.Client != "ElAbd" {
		t.Errorf("client must be the subdomain name, got %q", e.Client)
	}
	if e.ActivityType != domain.ActivityTypeClient {
		t.Errorf("activity type: want %q, got %q", domain.ActivityTypeClient, e.ActivityType)
	}
	if e.WorkingHours != 3.5 {
		t.Errorf("hours: want 3.5, got %v", e.WorkingHours)
	}
}

func TestEntryService_Submit_EmptyBatch(t *testing.T) {
	svc := newEntryServiceAt(t, newStubEntryRepo(), knownPaths(), nil, time.Now())

	_, err := svc.Submit(context.Background(), momen, nil)
	if !errors.Is(err, domain.ErrValidation) {
		t.Fatalf("expected ErrValidation for empty batch, got %v", err)
	}
}

func TestEntryService_Submit_UnknownPathRejectsWholeBatch(t *testing.T) {
	repo := newStubEntryRepo()
	svc := newEntryServiceAt(t, repo, knownPaths(), nil, time.Now())

	_, err := svc.Submit(context.Background(), momen, []ports.EntryDraft{
		draft("ElAbd", "Strategic Planning", 2),
		draft("ElAbd", "No Such Scope", 1),
	})
	if !errors.Is(err, domain.ErrInvalidPath) {
		t.Fatalf("expected ErrInvalidPath, got %v", err)
	}
	if len(repo.entries) != 0 {
		t.Errorf("nothing may be stored when one draft is invalid; got %d rows", len(repo.entries))
	}
}

func TestEntryService_Submit_HoursBounds(t *testing.T) {
	svc := newEntryServiceAt(t, newStubEntryRepo(), knownPaths(), nil, time.Now())

	for _, hours := range []float64{0, -1, 24.5} {
		_, err := svc.Submit(context.Background(), momen, []ports.EntryDraft{
			draft("ElAbd", "Strategic Planning", hours),
		})
		if !errors.Is(err, domain.ErrValidation) {
			t.Errorf("hours=%v: expected ErrValidation, got %v", hours, err)
		}
	}

	_, err := svc.Submit(context.Background(), momen, []ports.EntryDraft{
		draft("ElAbd", "Strategic Planning", 24),
	})
	if err != nil {
		t.Errorf("hours=24 must be accepted, got %v", err)
	}
}

func TestEntryService_Submit_BlankNotes(t *testing.T) {
	svc := newEntryServiceAt(t, newStubEntryRepo(), knownPaths(), nil, time.Now())

	d := draft("ElAbd", "Strategic Planning", 1)
	d.Notes = "   "
	_, err := svc.Submit(context.Background(), momen, []ports.EntryDraft{d})
	if !errors.Is(err, domain.ErrValidation) {
		t.Fatalf("expected ErrValidation for blank notes, got %v", err)
	}
}

func TestEntryService_Submit_AnonymousCaller(t *testing.T) {
	svc := newEntryServiceAt(t, newStubEntryRepo(), knownPaths(), nil, time.Now())

	_, err := svc.Submit(context.Background(), ports.Identity{}, []ports.EntryDraft{
		draft("ElAbd", "Strategic Planning", 1),
	})
	if !errors.Is(err, domain.ErrInvalidCredentials) {
		t.Fatalf("expected ErrInvalidCredentials, got %v", err)
	}
}

func TestEntryService_Submit_InactiveCaller(t *testing.T) {
	svc := newEntryServiceAt(t, newStubEntryRepo(), knownPaths(), nil, time.Now())

	inactive := momen
	inactive.Active = false
	_, err := svc.Submit(context.Background(), inactive, []ports.EntryDraft{
		draft("ElAbd", "Strategic Planning", 1),
	})
	if !errors.Is(err, domain.ErrForbidden) {
		t.Fatalf("expected ErrForbidden, got %v", err)
	}
}

func TestEntryService_Submit_RepoError(t *testing.T) {
	repo := newStubEntryRepo()
	repo.createErr = errors.New("db unavailable")
	svc := newEntryServiceAt(t, repo, knownPaths(), nil, time.Now())

	_, err := svc.Submit(context.Background(), momen, []ports.EntryDraft{
		draft("ElAbd", "Strategic Planning", 1),
	})
	if err == nil {
		t.Fatal("expected error when repo fails, got nil")
	}
}

func TestEntryService_Submit_InvalidatesStatsCache(t *testing.T) {
	cache := newStubStatsCache()
	now := time.Date(2025, 6, 10, 9, 0, 0, 0, time.UTC)
	svc := newEntryServiceAt(t, newStubEntryRepo(), knownPaths(), cache, now)

	_, err := svc.Submit(context.Background(), momen, []ports.EntryDraft{
		draft("ElAbd", "Strategic Planning", 1),
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(cache.invalidations) != 1 {
		t.Fatalf("expected 1 cache invalidation, got %d", len(cache.invalidations))
	}
	if cache.invalidations[0] != cacheKey("momen", 2025, 6) {
		t.Errorf("invalidated wrong key: %s", cache.invalidations[0])
	}
}

// ---------------------------------------------------------------------------
// SubmitExceptional tests
// ---------------------------------------------------------------------------

func TestEntryService_SubmitExceptional_Backdated(t *testing.T) {
	repo := newStubEntryRepo()
	now := time.Date(2025, 6, 10, 9, 0, 0, 0, time.UTC)
	svc := newEntryServiceAt(t, repo, knownPaths(), nil, now)

	created, err := svc.SubmitExceptional(context.Background(), momen, []ports.ExceptionalDraft{
		{EntryDraft: draft("ElAbd", "Strategic Planning", 4), Date: time.Date(2025, 5, 28, 0, 0, 0, 0, time.UTC)},
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	e := created[0]
	if e.Source != domain.SourceExceptional {
		t.Errorf("source: want %q, got %q", domain.SourceExceptional, e.Source)
	}
	if e.Year != 2025 || e.MonthNo != 5 || e.Day != 28 || e.Month != "May" {
		t.Errorf("date components must follow the draft date: %d-%d-%d %q", e.Year, e.MonthNo, e.Day, e.Month)
	}
}

func TestEntryService_SubmitExceptional_TodayAllowed(t *testing.T) {
	now := time.Date(2025, 6, 10, 9, 0, 0, 0, time.UTC)
	svc := newEntryServiceAt(t, newStubEntryRepo(), knownPaths(), nil, now)

	// Same calendar day at a later wall-clock time is not "the future".
	_, err := svc.SubmitExceptional(context.Background(), momen, []ports.ExceptionalDraft{
		{EntryDraft: draft("ElAbd", "Strategic Planning", 2), Date: time.Date(2025, 6, 10, 23, 0, 0, 0, time.UTC)},
	})
	if err != nil {
		t.Fatalf("entries dated today must be accepted, got %v", err)
	}
}

func TestEntryService_SubmitExceptional_FutureDateRejectsBatch(t *testing.T) {
	repo := newStubEntryRepo()
	now := time.Date(2025, 6, 10, 9, 0, 0, 0, time.UTC)
	svc := newEntryServiceAt(t, repo, knownPaths(), nil, now)

	_, err := svc.SubmitExceptional(context.Background(), momen, []ports.ExceptionalDraft{
		{EntryDraft: draft("ElAbd", "Strategic Planning", 2), Date: time.Date(2025, 6, 9, 0, 0, 0, 0, time.UTC)},
		{EntryDraft: draft("ENGAGE", "Client Meeting", 1), Date: time.Date(2025, 6, 11, 0, 0, 0, 0, time.UTC)},
	})
	if !errors.Is(err, domain.ErrValidation) {
		t.Fatalf("expected ErrValidation for future date, got %v", err)
	}
	if len(repo.entries) != 0 {
		t.Errorf("a future-dated draft must reject the whole batch; got %d rows", len(repo.entries))
	}
}

func TestEntryService_SubmitExceptional_MissingDate(t *testing.T) {
	svc := newEntryServiceAt(t, newStubEntryRepo(), knownPaths(), nil, time.Now())

	_, err := svc.SubmitExceptional(context.Background(), momen, []ports.ExceptionalDraft{
		{EntryDraft: draft("ElAbd", "Strategic Planning", 2)},
	})
	if !errors.Is(err, domain.ErrValidation) {
		t.Fatalf("expected ErrValidation for missing date, got %v", err)
	}
}

func TestEntryService_SubmitExceptional_InvalidatesEachMonth(t *testing.T) {
	cache := newStubStatsCache()
	now := time.Date(2025, 6, 10, 9, 0, 0, 0, time.UTC)
	svc := newEntryServiceAt(t, newStubEntryRepo(), knownPaths(), cache, now)

	_, err := svc.SubmitExceptional(context.Background(), momen, []ports.ExceptionalDraft{
		{EntryDraft: draft("ElAbd", "Strategic Planning", 2), Date: time.Date(2025, 5, 30, 0, 0, 0, 0, time.UTC)},
		{EntryDraft: draft("ENGAGE", "Client Meeting", 1), Date: time.Date(2025, 6, 2, 0, 0, 0, 0, time.UTC)},
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(cache.invalidations) != 2 {
		t.Fatalf("expected both touched months invalidated, got %d", len(cache.invalidations))
	}
}

// ---------------------------------------------------------------------------
// Update tests
// ---------------------------------------------------------------------------

func seedEntry(t *testing.T, repo *stubEntryRepo, consultant string) *domain.TimeEntry {
	t.Helper()
	e := &domain.TimeEntry{
		Source:       domain.SourceClientPlus,
		Year:         2025,
		MonthNo:      6,
		Day:          10,
		Month:        "June",
		ConsultantID: 1002,
		Consultant:   consultant,
		Client:       "ElAbd",
		ActivityType: domain.ActivityTypeClient,
		WorkingHours: 3.5,
		Notes:        "initial",
		Domain:       "Consulting",
		Subdomain:    "ElAbd",
		Scope:        "Strategic Planning",
	}
	if err := repo.CreateBatch(context.Background(), []*domain.TimeEntry{e}); err != nil {
		t.Fatalf("seed: %v", err)
	}
	return e
}

func floatPtr(v float64) *float64 { return &v }
func strPtr(s string) *string     { return &s }

func TestEntryService_Update_OwnerChangesHoursAndNotes(t *testing.T) {
	repo := newStubEntryRepo()
	svc := newEntryServiceAt(t, repo, knownPaths(), nil, time.Now())
	seeded := seedEntry(t, repo, "momen")

	updated, err := svc.Update(context.Background(), momen, seeded.ID, ports.UpdateEntryInput{
		Hours: floatPtr(5),
		Notes: strPtr("revised"),
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if updated.WorkingHours != 5 {
		t.Errorf("hours: want 5, got %v", updated.WorkingHours)
	}
	if updated.Notes != "revised" {
		t.Errorf("notes: want %q, got %q", "revised", updated.Notes)
	}
	// Untouched fields survive.
	if updated.Scope != "Strategic Planning" {
		t.Errorf("scope must be untouched, got %q", updated.Scope)
	}

	stored := repo.entries[seeded.ID]
	if !stored.UpdatedAt.After(stored.CreatedAt) {
		t.Error("updated_at must be bumped past created_at")
	}
}

func TestEntryService_Update_NonOwnerForbidden(t *testing.T) {
	repo := newStubEntryRepo()
	svc := newEntryServiceAt(t, repo, knownPaths(), nil, time.Now())
	seeded := seedEntry(t, repo, "youssef")

	_, err := svc.Update(context.Background(), momen, seeded.ID, ports.UpdateEntryInput{Hours: floatPtr(1)})
	if !errors.Is(err, domain.ErrForbidden) {
		t.Fatalf("expected ErrForbidden for non-owner, got %v", err)
	}
}

func TestEntryService_Update_SuperUserBypassesOwnership(t *testing.T) {
	repo := newStubEntryRepo()
	svc := newEntryServiceAt(t, repo, knownPaths(), nil, time.Now())
	seeded := seedEntry(t, repo, "youssef")

	admin := ports.Identity{UserID: 1000, Username: "islam", Role: domain.RoleSuperUser, Active: true}
	_, err := svc.Update(context.Background(), admin, seeded.ID, ports.UpdateEntryInput{Hours: floatPtr(1)})
	if err != nil {
		t.Fatalf("super user must edit anyone's entry, got %v", err)
	}
}

func TestEntryService_Update_NotFound(t *testing.T) {
	svc := newEntryServiceAt(t, newStubEntryRepo(), knownPaths(), nil, time.Now())

	_, err := svc.Update(context.Background(), momen, 9999, ports.UpdateEntryInput{Hours: floatPtr(1)})
	if !errors.Is(err, domain.ErrEntryNotFound) {
		t.Fatalf("expected ErrEntryNotFound, got %v", err)
	}
}

func TestEntryService_Update_HoursOutOfRange(t *testing.T) {
	repo := newStubEntryRepo()
	svc := newEntryServiceAt(t, repo, knownPaths(), nil, time.Now())
	seeded := seedEntry(t, repo, "momen")

	_, err := svc.Update(context.Background(), momen, seeded.ID, ports.UpdateEntryInput{Hours: floatPtr(25)})
	if !errors.Is(err, domain.ErrValidation) {
		t.Fatalf("expected ErrValidation, got %v", err)
	}
}

func TestEntryService_Update_FullPathRevalidated(t *testing.T) {
	repo := newStubEntryRepo()
	refs := knownPaths()
	svc := newEntryServiceAt(t, repo, refs, nil, time.Now())
	seeded := seedEntry(t, repo, "momen")
	refs.pathChecks = 0

	_, err := svc.Update(context.Background(), momen, seeded.ID, ports.UpdateEntryInput{
		Domain:    strPtr("Consulting"),
		Subdomain: strPtr("ENGAGE"),
		Scope:     strPtr("No Such Scope"),
	})
	if !errors.Is(err, domain.ErrInvalidPath) {
		t.Fatalf("expected ErrInvalidPath, got %v", err)
	}
	if refs.pathChecks != 1 {
		t.Errorf("expected exactly 1 path check, got %d", refs.pathChecks)
	}
}

func TestEntryService_Update_PartialPathSkipsRevalidation(t *testing.T) {
	repo := newStubEntryRepo()
	refs := knownPaths()
	svc := newEntryServiceAt(t, repo, refs, nil, time.Now())
	seeded := seedEntry(t, repo, "momen")
	refs.pathChecks = 0

	updated, err := svc.Update(context.Background(), momen, seeded.ID, ports.UpdateEntryInput{
		Scope: strPtr("Business Analysis"),
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if refs.pathChecks != 0 {
		t.Errorf("partial path update must not hit PathExists, got %d checks", refs.pathChecks)
	}
	if updated.Scope != "Business Analysis" {
		t.Errorf("scope: want %q, got %q", "Business Analysis", updated.Scope)
	}
}

// ---------------------------------------------------------------------------
// Delete tests
// ---------------------------------------------------------------------------

func TestEntryService_Delete_Success(t *testing.T) {
	repo := newStubEntryRepo()
	cache := newStubStatsCache()
	svc := newEntryServiceAt(t, repo, knownPaths(), cache, time.Now())
	seeded := seedEntry(t, repo, "momen")

	if err := svc.Delete(context.Background(), momen, seeded.ID); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(repo.entries) != 0 {
		t.Errorf("entry must be gone, %d rows remain", len(repo.entries))
	}
	if len(cache.invalidations) != 1 {
		t.Errorf("expected 1 cache invalidation, got %d", len(cache.invalidations))
	}
}

func TestEntryService_Delete_NotFound(t *testing.T) {
	svc := newEntryServiceAt(t, newStubEntryRepo(), knownPaths(), nil, time.Now())

	err := svc.Delete(context.Background(), momen, 42)
	if !errors.Is(err, domain.ErrEntryNotFound) {
		t.Fatalf("expected ErrEntryNotFound, got %v", err)
	}
}

func TestEntryService_Delete_NonOwnerForbidden(t *testing.T) {
	repo := newStubEntryRepo()
	svc := newEntryServiceAt(t, repo, knownPaths(), nil, time.Now())
	seeded := seedEntry(t, repo, "youssef")

	err := svc.Delete(context.Background(), momen, seeded.ID)
	if !errors.Is(err, domain.ErrForbidden) {
		t.Fatalf("expected ErrForbidden, got %v", err)
	}
	if len(repo.entries) != 1 {
		t.Error("entry must survive a forbidden delete")
	}
}
