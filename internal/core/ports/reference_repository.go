package ports

import (
	"context"

	"github.com/forefront/clientplus/internal/core/domain"
)

// ReferenceRepository reads the administrator-maintained hierarchy and the
// client registry.
type ReferenceRepository interface {
	ListDomains(ctx context.Context) ([]domain.Domain, error)
	// ListSubdomains returns the children of domainID ordered by name.
	// An unknown domainID yields an empty slice, not an error.
	ListSubdomains(ctx context.Context, domainID int64) ([]domain.Subdomain, error)
	ListScopes(ctx context.Context, subdomainID int64) ([]domain.Scope, error)
	ListActiveClients(ctx context.Context) ([]domain.Client, error)
	// PathExists reports whether the three names form a coherent
	// Domain → Subdomain → Scope chain.
	PathExists(ctx context.Context, domainName, subdomainName, scopeName string) (bool, error)
}
