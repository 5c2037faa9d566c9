package gormdb

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"github.com/forefront/clientplus/internal/core/domain"
	"github.com/forefront/clientplus/internal/core/ports"
)

type userRepository struct {
	db *gorm.DB
}

func NewUserRepository(db *gorm.DB) ports.UserRepository {
	return &userRepository{db: db}
}

func (r *userRepository) FindByUsername(ctx context.Context, username string) (*domain.User, error) {
	var user domain.User
	err := r.db.WithContext(ctx).Where("username = ?", username).First(&user).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrUserNotFound
		}
		return nil, err
	}
	return &user, nil
}

func (r *userRepository) FindByID(ctx context.Context, id int64) (*domain.User, error) {
	var user domain.User
	err := r.db.WithContext(ctx).First(&user, id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrUserNotFound
		}
		return nil, err
	}
	return &user, nil
}

// Create inserts the user inside a transaction. Uniqueness is pre-checked so
// the conflict error can name the offending field, which a driver-level
// constraint violation cannot do portably. A SUPER_USER also gets its
// denormalized marker row.
func (r *userRepository) Create(ctx context.Context, user *domain.User) (*domain.User, error) {
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var count int64
		if err := tx.Model(&domain.User{}).Where("username = ?", user.Username).Count(&count).Error; err != nil {
			return err
		}
		if count > 0 {
			return domain.ErrUsernameTaken
		}
		if err := tx.Model(&domain.User{}).Where("email = ?", user.Email).Count(&count).Error; err != nil {
			return err
		}
		if count > 0 {
			return domain.ErrEmailTaken
		}

		if err := tx.Create(user).Error; err != nil {
			return err
		}

		if user.Role == domain.RoleSuperUser {
			marker := domain.SuperUser{UserID: user.ID, Username: user.Username}
			if err := tx.Create(&marker).Error; err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return user, nil
}

func (r *userRepository) ListWithStats(ctx context.Context) ([]ports.UserWithStats, error) {
	var users []domain.User
	err := r.db.WithContext(ctx).
		Preload("UserDomains.Domain").
		Order("created_at DESC").
		Find(&users).Error
	if err != nil {
		return nil, err
	}

	counts, err := r.entryCounts(ctx)
	if err != nil {
		return nil, err
	}

	out := make([]ports.UserWithStats, 0, len(users))
	for _, u := range users {
		stats := ports.UserWithStats{
			User:       u,
			EntryCount: counts[u.ID],
			Domains:    make([]string, 0, len(u.UserDomains)),
		}
		for _, ud := range u.UserDomains {
			if ud.Domain != nil {
				stats.Domains = append(stats.Domains, ud.Domain.Name)
			}
		}
		stats.UserDomains = nil
		out = append(out, stats)
	}
	return out, nil
}

func (r *userRepository) ListPermissions(ctx context.Context, userID int64) ([]domain.PagePermission, error) {
	perms := []domain.PagePermission{}
	err := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("page ASC").
		Find(&perms).Error
	return perms, err
}

func (r *userRepository) entryCounts(ctx context.Context) (map[int64]int64, error) {
	type row struct {
		ConsultantID int64
		Total        int64
	}
	var rows []row
	err := r.db.WithContext(ctx).
		Model(&domain.TimeEntry{}).
		Select("consultant_id, COUNT(*) AS total").
		Group("consultant_id").
		Scan(&rows).Error
	if err != nil {
		return nil, err
	}

	counts := make(map[int64]int64, len(rows))
	for _, rw := range rows {
		counts[rw.ConsultantID] = rw.Total
	}
	return counts, nil
}
