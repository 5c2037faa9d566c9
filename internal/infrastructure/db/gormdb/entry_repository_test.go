package gormdb

import (
	"context"
	"errors"
	"testing"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"

	"github.com/forefront/clientplus/internal/core/domain"
	"github.com/forefront/clientplus/migrations"
)

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: gormlogger.Discard,
	})
	if err != nil {
		t.Fatalf("open sqlite: %v", err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		t.Fatalf("unwrap sql.DB: %v", err)
	}
	// every pooled connection gets its own empty :memory: database
	sqlDB.SetMaxOpenConns(1)
	t.Cleanup(func() { sqlDB.Close() })

	if err := Migrate(sqlDB, "sqlite", migrations.FS); err != nil {
		t.Fatalf("migrate: %v", err)
	}
	return db
}

func testEntry(day int, hours float64, client string) *domain.TimeEntry {
	return &domain.TimeEntry{
		Source:       domain.SourceClientPlus,
		Year:         2025,
		MonthNo:      6,
		Day:          day,
		Month:        "June",
		ConsultantID: 1002,
		Consultant:   "momen",
		Client:       client,
		ActivityType: domain.ActivityTypeClient,
		WorkingHours: hours,
		Notes:        "kickoff prep",
		Domain:       "Consulting",
		Subdomain:    client,
		Scope:        "Strategic Planning",
	}
}

func TestEntryRepositoryCreateBatchAssignsIDs(t *testing.T) {
	repo := NewEntryRepository(newTestDB(t))

	batch := []*domain.TimeEntry{testEntry(10, 3.5, "ElAbd"), testEntry(10, 2, "ENGAGE")}
	if err := repo.CreateBatch(context.Background(), batch); err != nil {
		t.Fatalf("CreateBatch: %v", err)
	}

	for i, entry := range batch {
		if entry.ID == 0 {
			t.Fatalf("entry %d: id not assigned on insert", i)
		}
	}
	if batch[0].ID == batch[1].ID {
		t.Fatalf("duplicate ids assigned: %d", batch[0].ID)
	}
}

func TestEntryRepositoryFindByID(t *testing.T) {
	repo := NewEntryRepository(newTestDB(t))

	batch := []*domain.TimeEntry{testEntry(10, 3.5, "ElAbd")}
	if err := repo.CreateBatch(context.Background(), batch); err != nil {
		t.Fatalf("CreateBatch: %v", err)
	}

	got, err := repo.FindByID(context.Background(), batch[0].ID)
	if err != nil {
		t.Fatalf("FindByID: %v", err)
	}
	if got.Client != "ElAbd" || got.WorkingHours != 3.5 || got.Day != 10 {
		t.Errorf("unexpected row: %+v", got)
	}

	if _, err := repo.FindByID(context.Background(), 9999); !errors.Is(err, domain.ErrEntryNotFound) {
		t.Errorf("unknown id: got %v, want ErrEntryNotFound", err)
	}
}

func TestEntryRepositoryUpdatePersists(t *testing.T) {
	repo := NewEntryRepository(newTestDB(t))

	batch := []*domain.TimeEntry{testEntry(10, 3.5, "ElAbd")}
	if err := repo.CreateBatch(context.Background(), batch); err != nil {
		t.Fatalf("CreateBatch: %v", err)
	}

	entry := batch[0]
	entry.WorkingHours = 6
	entry.Notes = "extended session"
	if err := repo.Update(context.Background(), entry); err != nil {
		t.Fatalf("Update: %v", err)
	}

	got, err := repo.FindByID(context.Background(), entry.ID)
	if err != nil {
		t.Fatalf("FindByID after update: %v", err)
	}
	if got.WorkingHours != 6 || got.Notes != "extended session" {
		t.Errorf("update not persisted: %+v", got)
	}
}

func TestEntryRepositoryDelete(t *testing.T) {
	repo := NewEntryRepository(newTestDB(t))

	batch := []*domain.TimeEntry{testEntry(10, 3.5, "ElAbd")}
	if err := repo.CreateBatch(context.Background(), batch); err != nil {
		t.Fatalf("CreateBatch: %v", err)
	}

	if err := repo.Delete(context.Background(), batch[0].ID); err != nil {
		t.Fatalf("Delete: %v", err)
	}
	if _, err := repo.FindByID(context.Background(), batch[0].ID); !errors.Is(err, domain.ErrEntryNotFound) {
		t.Errorf("after delete: got %v, want ErrEntryNotFound", err)
	}
	if err := repo.Delete(context.Background(), batch[0].ID); !errors.Is(err, domain.ErrEntryNotFound) {
		t.Errorf("second delete: got %v, want ErrEntryNotFound", err)
	}
}

func TestEntryRepositoryAggregates(t *testing.T) {
	repo := NewEntryRepository(newTestDB(t))

	batch := []*domain.TimeEntry{
		testEntry(10, 3.5, "ElAbd"),
		testEntry(10, 2, "ENGAGE"),
		testEntry(11, 4, "ElAbd"),
	}
	if err := repo.CreateBatch(context.Background(), batch); err != nil {
		t.Fatalf("CreateBatch: %v", err)
	}

	day, err := repo.SumHoursForDay(context.Background(), "momen", 2025, 6, 10)
	if err != nil {
		t.Fatalf("SumHoursForDay: %v", err)
	}
	if day != 5.5 {
		t.Errorf("day total: got %v, want 5.5", day)
	}

	month, err := repo.SumHoursForMonth(context.Background(), "momen", 2025, 6)
	if err != nil {
		t.Fatalf("SumHoursForMonth: %v", err)
	}
	if month != 9.5 {
		t.Errorf("month total: got %v, want 9.5", month)
	}

	clients, err := repo.CountDistinctClients(context.Background(), "momen", 2025, 6)
	if err != nil {
		t.Fatalf("CountDistinctClients: %v", err)
	}
	if clients != 2 {
		t.Errorf("distinct clients: got %d, want 2", clients)
	}

	empty, err := repo.SumHoursForMonth(context.Background(), "momen", 2025, 7)
	if err != nil {
		t.Fatalf("SumHoursForMonth empty: %v", err)
	}
	if empty != 0 {
		t.Errorf("empty month: got %v, want 0", empty)
	}
}
