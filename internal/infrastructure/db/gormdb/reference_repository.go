package gormdb

import (
	"context"

	"gorm.io/gorm"

	"github.com/forefront/clientplus/internal/core/domain"
	"github.com/forefront/clientplus/internal/core/ports"
)

type referenceRepository struct {
	db *gorm.DB
}

func NewReferenceRepository(db *gorm.DB) ports.ReferenceRepository {
	return &referenceRepository{db: db}
}

func (r *referenceRepository) ListDomains(ctx context.Context) ([]domain.Domain, error) {
	var domains []domain.Domain
	err := r.db.WithContext(ctx).
		Order("domain_name ASC").
		Find(&domains).Error
	return domains, err
}

func (r *referenceRepository) ListSubdomains(ctx context.Context, domainID int64) ([]domain.Subdomain, error) {
	subdomains := []domain.Subdomain{}
	err := r.db.WithContext(ctx).
		Where("domain_id = ?", domainID).
		Order("subdomain_name ASC").
		Find(&subdomains).Error
	return subdomains, err
}

func (r *referenceRepository) ListScopes(ctx context.Context, subdomainID int64) ([]domain.Scope, error) {
	scopes := []domain.Scope{}
	err := r.db.WithContext(ctx).
		Where("subdomain_id = ?", subdomainID).
		Order("scope_name ASC").
		Find(&scopes).Error
	return scopes, err
}

func (r *referenceRepository) ListActiveClients(ctx context.Context) ([]domain.Client, error) {
	var clients []domain.Client
	err := r.db.WithContext(ctx).
		Where("status = ?", domain.ClientStatusActive).
		Order("client_name ASC").
		Find(&clients).Error
	return clients, err
}

func (r *referenceRepository) PathExists(ctx context.Context, domainName, subdomainName, scopeName string) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).
		Model(&domain.Scope{}).
		Joins("JOIN subdomains ON subdomains.id = scopes.subdomain_id").
		Joins("JOIN domains ON domains.id = subdomains.domain_id").
		Where("domains.domain_name = ? AND subdomains.subdomain_name = ? AND scopes.scope_name = ?",
			domainName, subdomainName, scopeName).
		Count(&count).Error
	return count > 0, err
}
