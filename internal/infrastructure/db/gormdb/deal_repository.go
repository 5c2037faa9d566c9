package gormdb

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"github.com/forefront/clientplus/internal/core/domain"
	"github.com/forefront/clientplus/internal/core/ports"
)

type dealRepository struct {
	db *gorm.DB
}

func NewDealRepository(db *gorm.DB) ports.DealRepository {
	return &dealRepository{db: db}
}

func (r *dealRepository) FindDeal(ctx context.Context, consultant string, year, month int) (*domain.ConsultantDeal, error) {
	var deal domain.ConsultantDeal
	err := r.db.WithContext(ctx).
		Where("consultant = ? AND year = ? AND month = ?", consultant, year, month).
		First(&deal).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrDealNotFound
		}
		return nil, err
	}
	return &deal, nil
}
