package gormdb

import (
	"context"
	"time"

	"gorm.io/gorm"

	"github.com/forefront/clientplus/internal/core/domain"
	"github.com/forefront/clientplus/internal/core/ports"
)

type adminRepository struct {
	db *gorm.DB
}

func NewAdminRepository(db *gorm.DB) ports.AdminRepository {
	return &adminRepository{db: db}
}

func (r *adminRepository) ListDomainsWithCounts(ctx context.Context) ([]ports.DomainWithCounts, error) {
	type row struct {
		ID             int64
		DomainName     string
		CreatedAt      time.Time
		UserCount      int64
		SubdomainCount int64
	}

	var rows []row
	err := r.db.WithContext(ctx).Raw(`
		SELECT d.id,
		       d.domain_name,
		       d.created_at,
		       (SELECT COUNT(*) FROM user_domains ud WHERE ud.domain_id = d.id) AS user_count,
		       (SELECT COUNT(*) FROM subdomains s WHERE s.domain_id = d.id)     AS subdomain_count
		FROM domains d
		ORDER BY d.domain_name ASC
	`).Scan(&rows).Error
	if err != nil {
		return nil, err
	}

	out := make([]ports.DomainWithCounts, 0, len(rows))
	for _, rw := range rows {
		out = append(out, ports.DomainWithCounts{
			Domain: domain.Domain{
				ID:        rw.ID,
				Name:      rw.DomainName,
				CreatedAt: rw.CreatedAt,
			},
			UserCount:      rw.UserCount,
			SubdomainCount: rw.SubdomainCount,
		})
	}
	return out, nil
}
