package gormdb

import (
	"context"
	"database/sql"
	"errors"

	"gorm.io/gorm"

	"github.com/forefront/clientplus/internal/core/domain"
	"github.com/forefront/clientplus/internal/core/ports"
)

type entryRepository struct {
	db *gorm.DB
}

func NewEntryRepository(db *gorm.DB) ports.EntryRepository {
	return &entryRepository{db: db}
}

// CreateBatch inserts all rows inside one transaction; a failed insert rolls
// back the whole batch so the caller can safely resubmit.
func (r *entryRepository) CreateBatch(ctx context.Context, entries []*domain.TimeEntry) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		for _, entry := range entries {
			if err := tx.Create(entry).Error; err != nil {
				return err
			}
		}
		return nil
	})
}

func (r *entryRepository) FindByID(ctx context.Context, id int64) (*domain.TimeEntry, error) {
	var entry domain.TimeEntry
	err := r.db.WithContext(ctx).First(&entry, id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrEntryNotFound
		}
		return nil, err
	}
	return &entry, nil
}

func (r *entryRepository) Update(ctx context.Context, entry *domain.TimeEntry) error {
	return r.db.WithContext(ctx).Save(entry).Error
}

func (r *entryRepository) Delete(ctx context.Context, id int64) error {
	result := r.db.WithContext(ctx).Delete(&domain.TimeEntry{}, id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return domain.ErrEntryNotFound
	}
	return nil
}

func (r *entryRepository) SumHoursForDay(ctx context.Context, consultant string, year, month, day int) (float64, error) {
	var total sql.NullFloat64
	err := r.db.WithContext(ctx).
		Model(&domain.TimeEntry{}).
		Select("SUM(working_hours)").
		Where("consultant = ? AND year = ? AND month_no = ? AND day = ?", consultant, year, month, day).
		Scan(&total).Error
	return total.Float64, err
}

func (r *entryRepository) SumHoursForMonth(ctx context.Context, consultant string, year, month int) (float64, error) {
	var total sql.NullFloat64
	err := r.db.WithContext(ctx).
		Model(&domain.TimeEntry{}).
		Select("SUM(working_hours)").
		Where("consultant = ? AND year = ? AND month_no = ?", consultant, year, month).
		Scan(&total).Error
	return total.Float64, err
}

func (r *entryRepository) CountDistinctClients(ctx context.Context, consultant string, year, month int) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).
		Model(&domain.TimeEntry{}).
		Where("consultant = ? AND year = ? AND month_no = ?", consultant, year, month).
		Distinct("client").
		Count(&count).Error
	return count, err
}

func (r *entryRepository) ListForDay(ctx context.Context, consultant string, year, month, day int) ([]domain.TimeEntry, error) {
	entries := []domain.TimeEntry{}
	err := r.db.WithContext(ctx).
		Where("consultant = ? AND year = ? AND month_no = ? AND day = ?", consultant, year, month, day).
		Order("created_at DESC").
		Find(&entries).Error
	return entries, err
}

func (r *entryRepository) ListRecent(ctx context.Context, consultant string, limit int) ([]domain.TimeEntry, error) {
	entries := []domain.TimeEntry{}
	err := r.db.WithContext(ctx).
		Where("consultant = ?", consultant).
		Order("updated_at DESC").
		Limit(limit).
		Find(&entries).Error
	return entries, err
}
