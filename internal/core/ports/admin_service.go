package ports

import (
	"context"

	"github.com/forefront/clientplus/internal/core/domain"
)

// CreateUserInput carries the admin create-user form.
type CreateUserInput struct {
	Username string
	Email    string
	Password string
	Role     string
	IsActive bool
}

// DomainWithCounts is the admin domain list view.
type DomainWithCounts struct {
	domain.Domain
	UserCount      int64 `json:"user_count"`
	SubdomainCount int64 `json:"subdomain_count"`
}

// AdminService covers SUPER_USER-only management operations. Callers must be
// gated by the access-control middleware before reaching any of these.
type AdminService interface {
	ListUsers(ctx context.Context) ([]UserWithStats, error)
	CreateUser(ctx context.Context, input CreateUserInput) (*domain.User, error)
	ListDomainsWithCounts(ctx context.Context) ([]DomainWithCounts, error)
	ListUserPermissions(ctx context.Context, userID int64) ([]domain.PagePermission, error)
}

// AdminRepository aggregates admin-only reference-data views.
type AdminRepository interface {
	ListDomainsWithCounts(ctx context.Context) ([]DomainWithCounts, error)
}
