package domain

import "time"

// Domain is the root of the work-classification hierarchy
// (e.g. "Consulting" → "ElAbd" → "Strategic Planning").
type Domain struct {
	ID        int64     `json:"id" gorm:"primaryKey;autoIncrement"`
	Name      string    `json:"name" gorm:"column:domain_name;uniqueIndex;size:200;not null"`
	CreatedAt time.Time `json:"created_at" gorm:"autoCreateTime"`

	Subdomains []Subdomain `json:"subdomains,omitempty" gorm:"foreignKey:DomainID;constraint:OnDelete:CASCADE"`
}

func (Domain) TableName() string { return "domains" }

// Subdomain is the middle hierarchy level. Names are unique within their
// parent domain, not globally.
type Subdomain struct {
	ID             int64  `json:"id" gorm:"primaryKey;autoIncrement"`
	DomainID       int64  `json:"domain_id" gorm:"not null;uniqueIndex:idx_subdomains_domain_name"`
	Name           string `json:"name" gorm:"column:subdomain_name;size:200;not null;uniqueIndex:idx_subdomains_domain_name"`
	LeadConsultant string `json:"lead_consultant" gorm:"size:100"`

	Scopes []Scope `json:"scopes,omitempty" gorm:"foreignKey:SubdomainID;constraint:OnDelete:CASCADE"`
}

func (Subdomain) TableName() string { return "subdomains" }

// Scope is the finest-grained work category a time entry can cite.
type Scope struct {
	ID          int64  `json:"id" gorm:"primaryKey;autoIncrement"`
	SubdomainID int64  `json:"subdomain_id" gorm:"not null;index"`
	Name        string `json:"name" gorm:"column:scope_name;size:200;not null"`
	CreatedBy   string `json:"created_by" gorm:"size:100"`
}

func (Scope) TableName() string { return "scopes" }

const (
	ClientTypeProject  = "PRJ"
	ClientTypeRetainer = "RET"
	ClientTypeInternal = "FFNT"

	ClientStatusActive = "A"
	ClientStatusEnded  = "E"
)

// Client is the independent client registry maintained by administrators.
// Time entries reference clients by name only, never by foreign key.
type Client struct {
	ID       int64  `json:"id" gorm:"primaryKey;autoIncrement"`
	Name     string `json:"name" gorm:"column:client_name;uniqueIndex;size:200;not null"`
	Type     string `json:"type" gorm:"size:4;not null"`
	Status   string `json:"status" gorm:"size:1;not null"`
	Activity string `json:"activity" gorm:"size:10;not null"`
}

func (Client) TableName() string { return "clients" }
