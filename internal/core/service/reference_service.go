package service

import (
	"context"
	"fmt"
	"strings"

	"github.com/rs/zerolog"

	"github.com/forefront/clientplus/internal/core/domain"
	"github.com/forefront/clientplus/internal/core/ports"
)

// ReferenceService serves the cascading domain → subdomain → scope selector.
type ReferenceService struct {
	repo   ports.ReferenceRepository
	logger zerolog.Logger
}

func NewReferenceService(repo ports.ReferenceRepository, logger zerolog.Logger) *ReferenceService {
	return &ReferenceService{repo: repo, logger: logger}
}

func (s *ReferenceService) ListDomains(ctx context.Context) ([]domain.Domain, error) {
	return s.repo.ListDomains(ctx)
}

// ListSubdomains returns the ordered children of domainID. A domain with no
// children is an empty list, not an error; the selector renders it disabled.
func (s *ReferenceService) ListSubdomains(ctx context.Context, domainID int64) ([]domain.Subdomain, error) {
	if domainID <= 0 {
		return nil, fmt.Errorf("%w: domain id must be a positive integer", domain.ErrValidation)
	}
	return s.repo.ListSubdomains(ctx, domainID)
}

func (s *ReferenceService) ListScopes(ctx context.Context, subdomainID int64) ([]domain.Scope, error) {
	if subdomainID <= 0 {
		return nil, fmt.Errorf("%w: subdomain id must be a positive integer", domain.ErrValidation)
	}
	return s.repo.ListScopes(ctx, subdomainID)
}

func (s *ReferenceService) ListActiveClients(ctx context.Context) ([]domain.Client, error) {
	return s.repo.ListActiveClients(ctx)
}

// ValidatePath checks that the three names chosen for an entry still resolve
// to a coherent chain through the reference data.
func (s *ReferenceService) ValidatePath(ctx context.Context, domainName, subdomainName, scopeName string) error {
	domainName = strings.TrimSpace(domainName)
	subdomainName = strings.TrimSpace(subdomainName)
	scopeName = strings.TrimSpace(scopeName)
	if domainName == "" || subdomainName == "" || scopeName == "" {
		return domain.ErrInvalidPath
	}

	ok, err := s.repo.PathExists(ctx, domainName, subdomainName, scopeName)
	if err != nil {
		return err
	}
	if !ok {
		s.logger.Debug().
			Str("domain", domainName).
			Str("subdomain", subdomainName).
			Str("scope", scopeName).
			Msg("rejected unknown hierarchy path")
		return domain.ErrInvalidPath
	}
	return nil
}
