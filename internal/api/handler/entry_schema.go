package handler

import "github.com/forefront/clientplus/internal/core/domain"

// entryDraftRequest is one row of a submission batch.
type entryDraftRequest struct {
	Domain    string  `json:"domain"    validate:"required"`
	Subdomain string  `json:"subdomain" validate:"required"`
	Scope     string  `json:"scope"     validate:"required"`
	Hours     float64 `json:"hours"     validate:"required,gt=0,lte=24"`
	Notes     string  `json:"notes"     validate:"required"`
}

type submitEntriesRequest struct {
	Entries []entryDraftRequest `json:"entries" validate:"required,min=1,dive"`
}

// exceptionalDraftRequest additionally carries the backdated entry date.
type exceptionalDraftRequest struct {
	entryDraftRequest
	Date string `json:"date" validate:"required"`
}

type submitExceptionalRequest struct {
	Entries []exceptionalDraftRequest `json:"entries" validate:"required,min=1,dive"`
}

type submitEntriesResponse struct {
	Message string             `json:"message"`
	Entries []domain.TimeEntry `json:"entries"`
}

// updateEntryRequest is a partial overwrite; absent fields stay untouched.
type updateEntryRequest struct {
	Hours     *float64 `json:"hours" validate:"omitempty,gt=0,lte=24"`
	Notes     *string  `json:"notes"`
	Domain    *string  `json:"domain"`
	Subdomain *string  `json:"subdomain"`
	Scope     *string  `json:"scope"`
}

type updateEntryResponse struct {
	Message string            `json:"message"`
	Entry   *domain.TimeEntry `json:"entry"`
}

type messageResponse struct {
	Message string `json:"message"`
}
