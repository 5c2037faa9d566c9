package domain

import "errors"

var (
	// ErrValidation marks malformed or out-of-range input. Wrapped messages
	// name the offending field, e.g. "validation: hours must be greater than zero".
	ErrValidation = errors.New("validation")

	ErrEntryNotFound     = errors.New("entry not found")
	ErrDomainNotFound    = errors.New("domain not found")
	ErrSubdomainNotFound = errors.New("subdomain not found")
	ErrScopeNotFound     = errors.New("scope not found")
	ErrUserNotFound      = errors.New("user not found")
	ErrDealNotFound      = errors.New("consultant deal not found")

	// ErrInvalidPath rejects a domain/subdomain/scope triple that does not
	// resolve to a coherent path through the reference data.
	ErrInvalidPath = errors.New("domain, subdomain and scope do not form a known path")

	ErrUsernameTaken = errors.New("username already exists")
	ErrEmailTaken    = errors.New("email already exists")

	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrForbidden          = errors.New("access forbidden")
)
