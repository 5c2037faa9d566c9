// Command seed populates a fresh ClientPlus database with the reference
// hierarchy, the initial user set and the current-year consultant deals.
// Safe to re-run: every insert is a FirstOrCreate keyed on natural fields.
package main

import (
	"time"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"github.com/forefront/clientplus/internal/core/domain"
	"github.com/forefront/clientplus/internal/infrastructure/db/gormdb"
	"github.com/forefront/clientplus/internal/pkg/config"
	"github.com/forefront/clientplus/migrations"
	"github.com/forefront/clientplus/pkg/logger"
)

const defaultPassword = "ClientPlus2024!"

func main() {
	cfg := config.Load()
	log := logger.Init(logger.Options{Level: cfg.LogLevel, Pretty: true})

	db, err := gormdb.Connect(cfg.Database)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to connect to database")
	}
	sqlDB, err := db.DB()
	if err != nil {
		log.Fatal().Err(err).Msg("failed to get sql.DB")
	}
	defer sqlDB.Close()

	if err := gormdb.Migrate(sqlDB, cfg.Database.Driver, migrations.FS); err != nil {
		log.Fatal().Err(err).Msg("failed to run migrations")
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(defaultPassword), bcrypt.DefaultCost)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to hash seed password")
	}

	err = db.Transaction(func(tx *gorm.DB) error {
		domainIDs, err := seedHierarchy(tx)
		if err != nil {
			return err
		}
		if err := seedClientRegistry(tx); err != nil {
			return err
		}
		if err := seedUserSet(tx, string(hash), domainIDs); err != nil {
			return err
		}
		return seedPagePermissions(tx)
	})
	if err != nil {
		log.Fatal().Err(err).Msg("seed failed")
	}

	log.Info().Msg("database seeded")
}

// seedHierarchy writes domains, their subdomains and the baseline scope set,
// returning the domain name → id mapping for the user assignments.
func seedHierarchy(tx *gorm.DB) (map[string]int64, error) {
	log := logger.Get()

	domainIDs := make(map[string]int64)
	for _, name := range seedDomains {
		d := domain.Domain{Name: name}
		if err := tx.Where("domain_name = ?", name).FirstOrCreate(&d).Error; err != nil {
			return nil, err
		}
		domainIDs[name] = d.ID
	}

	subdomainIDs := make(map[string]int64)
	for _, s := range seedSubdomains {
		sub := domain.Subdomain{
			DomainID:       domainIDs[s.Domain],
			Name:           s.Name,
			LeadConsultant: s.LeadConsultant,
		}
		if err := tx.Where("domain_id = ? AND subdomain_name = ?", sub.DomainID, sub.Name).
			FirstOrCreate(&sub).Error; err != nil {
			return nil, err
		}
		subdomainIDs[s.Name] = sub.ID
	}

	for _, s := range seedSubdomains {
		for _, scopeName := range seedScopeNames {
			scope := domain.Scope{
				SubdomainID: subdomainIDs[s.Name],
				Name:        scopeName,
				CreatedBy:   "seed",
			}
			if err := tx.Where("subdomain_id = ? AND scope_name = ?", scope.SubdomainID, scopeName).
				FirstOrCreate(&scope).Error; err != nil {
				return nil, err
			}
		}
	}

	log.Info().
		Int("domains", len(domainIDs)).
		Int("subdomains", len(subdomainIDs)).
		Msg("reference hierarchy seeded")
	return domainIDs, nil
}

func seedClientRegistry(tx *gorm.DB) error {
	for _, c := range seedClients {
		client := c
		if err := tx.Where("client_name = ?", client.Name).FirstOrCreate(&client).Error; err != nil {
			return err
		}
	}
	log := logger.Get()
	log.Info().Int("clients", len(seedClients)).Msg("client registry seeded")
	return nil
}

// seedUserSet writes the initial users with their role markers, domain
// assignments and a full year of monthly deals.
func seedUserSet(tx *gorm.DB, hash string, domainIDs map[string]int64) error {
	log := logger.Get()

	now := time.Now()
	for _, u := range seedUsers {
		user := domain.User{
			Username:     u.Username,
			Email:        u.Email,
			PasswordHash: hash,
			Role:         u.Role,
			IsActive:     true,
		}
		if err := tx.Where("username = ?", u.Username).FirstOrCreate(&user).Error; err != nil {
			return err
		}

		if u.Role == domain.RoleSuperUser {
			marker := domain.SuperUser{UserID: user.ID, Username: user.Username}
			if err := tx.Where("user_id = ?", user.ID).FirstOrCreate(&marker).Error; err != nil {
				return err
			}
		}

		for _, name := range seedDomains {
			ud := domain.UserDomain{UserID: user.ID, DomainID: domainIDs[name]}
			if err := tx.Where("user_id = ? AND domain_id = ?", ud.UserID, ud.DomainID).
				FirstOrCreate(&ud).Error; err != nil {
				return err
			}
		}

		dealDays := 20
		if u.Role == domain.RoleSupporting {
			dealDays = 10
		}
		for month := 1; month <= 12; month++ {
			deal := domain.ConsultantDeal{
				Year:         now.Year(),
				Month:        month,
				ConsultantID: user.ID,
				Consultant:   user.Username,
				DealDays:     dealDays,
				Role:         u.Role,
			}
			if err := tx.Where("consultant = ? AND year = ? AND month = ?", user.Username, now.Year(), month).
				FirstOrCreate(&deal).Error; err != nil {
				return err
			}
		}

		log.Debug().Str("username", user.Username).Str("role", user.Role).Msg("user seeded")
	}

	log.Info().Int("users", len(seedUsers)).Int("year", now.Year()).Msg("user set and deals seeded")
	return nil
}

func seedPagePermissions(tx *gorm.DB) error {
	for _, p := range seedPermissions {
		var user domain.User
		if err := tx.Where("username = ?", p.Username).First(&user).Error; err != nil {
			return err
		}
		perm := domain.PagePermission{UserID: user.ID, Page: p.Page, Access: domain.PageAccessShow}
		if err := tx.Where("user_id = ? AND page = ?", user.ID, p.Page).
			FirstOrCreate(&perm).Error; err != nil {
			return err
		}
	}
	return nil
}
