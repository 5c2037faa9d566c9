package domain

import "time"

const (
	RoleSuperUser      = "SUPER_USER"
	RoleLeadConsultant = "LEAD_CONSULTANT"
	RoleConsultant     = "CONSULTANT"
	RoleSupporting     = "SUPPORTING"
)

// ValidRole reports whether role is one of the four known roles.
func ValidRole(role string) bool {
	switch role {
	case RoleSuperUser, RoleLeadConsultant, RoleConsultant, RoleSupporting:
		return true
	}
	return false
}

// User models an authenticated actor in the system.
type User struct {
	ID           int64     `json:"id" gorm:"primaryKey;autoIncrement"`
	Username     string    `json:"username" gorm:"uniqueIndex;size:100;not null"`
	Email        string    `json:"email" gorm:"uniqueIndex;size:200;not null"`
	PasswordHash string    `json:"-" gorm:"column:password_hash;not null"`
	Role         string    `json:"role" gorm:"size:20;not null"`
	IsActive     bool      `json:"is_active" gorm:"not null;default:true"`
	CreatedAt    time.Time `json:"created_at" gorm:"autoCreateTime"`
	UpdatedAt    time.Time `json:"updated_at" gorm:"autoUpdateTime"`

	UserDomains []UserDomain `json:"-" gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE"`
}

func (User) TableName() string { return "users" }

// UserDomain assigns a reference-data domain to a user.
type UserDomain struct {
	ID       int64 `json:"id" gorm:"primaryKey;autoIncrement"`
	UserID   int64 `json:"user_id" gorm:"not null;index"`
	DomainID int64 `json:"domain_id" gorm:"not null;index"`

	Domain *Domain `json:"-" gorm:"foreignKey:DomainID"`
}

func (UserDomain) TableName() string { return "user_domains" }

// SuperUser is a denormalized marker row kept alongside the SUPER_USER role.
// Legacy reporting queries join against it, so it is written on user creation.
type SuperUser struct {
	ID       int64  `json:"id" gorm:"primaryKey;autoIncrement"`
	UserID   int64  `json:"user_id" gorm:"uniqueIndex;not null"`
	Username string `json:"username" gorm:"size:100;not null"`
}

func (SuperUser) TableName() string { return "super_users" }

const (
	PageAccessShow = "Show"
	PageAccessHide = "Hide"
)

// PagePermission overrides page visibility for a single user.
type PagePermission struct {
	ID     int64  `json:"id" gorm:"primaryKey;autoIncrement"`
	UserID int64  `json:"user_id" gorm:"not null;uniqueIndex:idx_page_permissions_user_page"`
	Page   string `json:"page" gorm:"size:100;not null;uniqueIndex:idx_page_permissions_user_page"`
	Access string `json:"access" gorm:"size:4;not null"`
}

func (PagePermission) TableName() string { return "page_permissions" }
