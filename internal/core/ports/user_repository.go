package ports

import (
	"context"

	"github.com/forefront/clientplus/internal/core/domain"
)

// UserWithStats is the admin list view: a user plus derived entry count and
// assigned domain names.
type UserWithStats struct {
	domain.User
	EntryCount int64    `json:"entry_count"`
	Domains    []string `json:"domains"`
}

// UserRepository persists users, role markers and page permissions.
type UserRepository interface {
	FindByUsername(ctx context.Context, username string) (*domain.User, error)
	FindByID(ctx context.Context, id int64) (*domain.User, error)
	// Create inserts the user and, for SUPER_USER, its denormalized marker
	// row in one transaction. Uniqueness violations surface as
	// domain.ErrUsernameTaken / domain.ErrEmailTaken.
	Create(ctx context.Context, user *domain.User) (*domain.User, error)
	// ListWithStats returns all users ordered by created_at descending,
	// each with entry count and assigned domain names attached.
	ListWithStats(ctx context.Context) ([]UserWithStats, error)
	ListPermissions(ctx context.Context, userID int64) ([]domain.PagePermission, error)
}

// DealRepository looks up monthly contracted-day allotments.
type DealRepository interface {
	// FindDeal returns domain.ErrDealNotFound when no row exists for the month.
	FindDeal(ctx context.Context, consultant string, year, month int) (*domain.ConsultantDeal, error)
}
