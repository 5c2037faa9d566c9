package service

import (
	"context"
	"fmt"
	"net/mail"
	"regexp"
	"strings"
	"unicode"

	"github.com/rs/zerolog"
	"golang.org/x/crypto/bcrypt"

	"github.com/forefront/clientplus/internal/core/domain"
	"github.com/forefront/clientplus/internal/core/ports"
)

const (
	minUsernameLen = 3
	maxUsernameLen = 20
	minPasswordLen = 8
	bcryptCost     = 12
)

var usernamePattern = regexp.MustCompile(`^[a-zA-Z0-9_]+$`)

// AdminService covers SUPER_USER management operations. Role gating happens
// in the access-control middleware; these methods assume an authorized caller.
type AdminService struct {
	users ports.UserRepository
	admin ports.AdminRepository
	log   zerolog.Logger
}

func NewAdminService(users ports.UserRepository, admin ports.AdminRepository, log zerolog.Logger) *AdminService {
	return &AdminService{users: users, admin: admin, log: log}
}

func (s *AdminService) ListUsers(ctx context.Context) ([]ports.UserWithStats, error) {
	return s.users.ListWithStats(ctx)
}

// CreateUser validates the form, hashes the password and inserts the user.
// A SUPER_USER additionally gets its denormalized marker row (written by the
// repository in the same transaction).
func (s *AdminService) CreateUser(ctx context.Context, input ports.CreateUserInput) (*domain.User, error) {
	username := strings.TrimSpace(input.Username)
	email := strings.TrimSpace(input.Email)

	if len(username) < minUsernameLen || len(username) > maxUsernameLen {
		return nil, fmt.Errorf("%w: username must be between %d and %d characters", domain.ErrValidation, minUsernameLen, maxUsernameLen)
	}
	if !usernamePattern.MatchString(username) {
		return nil, fmt.Errorf("%w: username can only contain letters, numbers, and underscores", domain.ErrValidation)
	}
	if _, err := mail.ParseAddress(email); err != nil {
		return nil, fmt.Errorf("%w: invalid email address", domain.ErrValidation)
	}
	if err := checkPasswordPolicy(input.Password); err != nil {
		return nil, err
	}
	if !domain.ValidRole(input.Role) {
		return nil, fmt.Errorf("%w: unknown role %q", domain.ErrValidation, input.Role)
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(input.Password), bcryptCost)
	if err != nil {
		return nil, err
	}

	user := &domain.User{
		Username:     username,
		Email:        email,
		PasswordHash: string(hash),
		Role:         input.Role,
		IsActive:     input.IsActive,
	}

	created, err := s.users.Create(ctx, user)
	if err != nil {
		return nil, err
	}

	s.log.Info().Str("username", created.Username).Str("role", created.Role).Msg("user created")
	return created, nil
}

func (s *AdminService) ListDomainsWithCounts(ctx context.Context) ([]ports.DomainWithCounts, error) {
	return s.admin.ListDomainsWithCounts(ctx)
}

func (s *AdminService) ListUserPermissions(ctx context.Context, userID int64) ([]domain.PagePermission, error) {
	if _, err := s.users.FindByID(ctx, userID); err != nil {
		return nil, err
	}
	return s.users.ListPermissions(ctx, userID)
}

// checkPasswordPolicy requires at least one uppercase letter, one lowercase
// letter and one digit.
func checkPasswordPolicy(password string) error {
	if len(password) < minPasswordLen {
		return fmt.Errorf("%w: password must be at least %d characters", domain.ErrValidation, minPasswordLen)
	}
	var upper, lower, digit bool
	for _, r := range password {
		switch {
		case unicode.IsUpper(r):
			upper = true
		case unicode.IsLower(r):
			lower = true
		case unicode.IsDigit(r):
			digit = true
		}
	}
	if !upper || !lower || !digit {
		return fmt.Errorf("%w: password must contain at least one uppercase letter, one lowercase letter, and one number", domain.ErrValidation)
	}
	return nil
}
