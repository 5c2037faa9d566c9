package ports

import (
	"context"

	"github.com/forefront/clientplus/internal/core/domain"
)

// ReferenceService serves the cascading selector and the client picker.
type ReferenceService interface {
	ListDomains(ctx context.Context) ([]domain.Domain, error)
	ListSubdomains(ctx context.Context, domainID int64) ([]domain.Subdomain, error)
	ListScopes(ctx context.Context, subdomainID int64) ([]domain.Scope, error)
	ListActiveClients(ctx context.Context) ([]domain.Client, error)
	// ValidatePath returns domain.ErrInvalidPath unless the three names form
	// a coherent Domain → Subdomain → Scope chain.
	ValidatePath(ctx context.Context, domainName, subdomainName, scopeName string) error
}

// AuthService authenticates users and issues session tokens.
type AuthService interface {
	// Login returns a signed token and the user on success. Unknown users,
	// wrong passwords and inactive accounts all yield
	// domain.ErrInvalidCredentials.
	Login(ctx context.Context, username, password string) (string, *domain.User, error)
}
