package handler

import (
	"errors"
	"fmt"
	"net/http"
	"strconv"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/forefront/clientplus/internal/api/metrics"
	"github.com/forefront/clientplus/internal/core/domain"
	"github.com/forefront/clientplus/internal/core/ports"
)

const entryDateLayout = "2006-01-02"

// EntryHandler handles time-entry submission and mutation.
type EntryHandler struct {
	service ports.EntryService
}

func NewEntryHandler(service ports.EntryService) *EntryHandler {
	return &EntryHandler{service: service}
}

// Submit handles POST /v1/entries — a batch of entries dated today.
//
// @Summary      Submit a batch of time entries
// @Tags         entries
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body      submitEntriesRequest  true  "Entry drafts"
// @Success      201   {object}  submitEntriesResponse
// @Failure      400   {object}  api.errorResponse
// @Failure      401   {object}  api.errorResponse
// @Router       /v1/entries [post]
func (h *EntryHandler) Submit(c echo.Context) error {
	ident, err := ctxIdentity(c)
	if err != nil {
		return err
	}

	var req submitEntriesRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	drafts := make([]ports.EntryDraft, 0, len(req.Entries))
	for _, e := range req.Entries {
		drafts = append(drafts, ports.EntryDraft{
			Domain:    e.Domain,
			Subdomain: e.Subdomain,
			Scope:     e.Scope,
			Hours:     e.Hours,
			Notes:     e.Notes,
		})
	}

	entries, err := h.service.Submit(c.Request().Context(), ident, drafts)
	if err != nil {
		countRejection(err)
		return err
	}

	metrics.EntryBatchSize.Observe(float64(len(entries)))
	metrics.EntriesCreatedTotal.WithLabelValues(domain.SourceClientPlus).Add(float64(len(entries)))

	return c.JSON(http.StatusCreated, submitEntriesResponse{
		Message: fmt.Sprintf("%d entries saved successfully", len(entries)),
		Entries: entries,
	})
}

// SubmitExceptional handles POST /v1/entries/exceptional — backdated entries.
//
// @Summary      Submit backdated time entries
// @Tags         entries
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body      submitExceptionalRequest  true  "Entry drafts with dates (YYYY-MM-DD)"
// @Success      201   {object}  submitEntriesResponse
// @Failure      400   {object}  api.errorResponse
// @Failure      401   {object}  api.errorResponse
// @Router       /v1/entries/exceptional [post]
func (h *EntryHandler) SubmitExceptional(c echo.Context) error {
	ident, err := ctxIdentity(c)
	if err != nil {
		return err
	}

	var req submitExceptionalRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	drafts := make([]ports.ExceptionalDraft, 0, len(req.Entries))
	for i, e := range req.Entries {
		date, err := time.ParseInLocation(entryDateLayout, e.Date, time.Local)
		if err != nil {
			return echo.NewHTTPError(http.StatusBadRequest, fmt.Sprintf("entry %d: date must be formatted as YYYY-MM-DD", i+1))
		}
		drafts = append(drafts, ports.ExceptionalDraft{
			EntryDraft: ports.EntryDraft{
				Domain:    e.Domain,
				Subdomain: e.Subdomain,
				Scope:     e.Scope,
				Hours:     e.Hours,
				Notes:     e.Notes,
			},
			Date: date,
		})
	}

	entries, err := h.service.SubmitExceptional(c.Request().Context(), ident, drafts)
	if err != nil {
		countRejection(err)
		return err
	}

	metrics.EntryBatchSize.Observe(float64(len(entries)))
	metrics.EntriesCreatedTotal.WithLabelValues(domain.SourceExceptional).Add(float64(len(entries)))

	return c.JSON(http.StatusCreated, submitEntriesResponse{
		Message: fmt.Sprintf("%d exceptional entries saved successfully", len(entries)),
		Entries: entries,
	})
}

// Update handles PUT /v1/entries/:id.
//
// @Summary      Update a time entry
// @Tags         entries
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id    path      int                 true  "Entry ID"
// @Param        body  body      updateEntryRequest  true  "Fields to overwrite"
// @Success      200   {object}  updateEntryResponse
// @Failure      400   {object}  api.errorResponse
// @Failure      404   {object}  api.errorResponse
// @Router       /v1/entries/{id} [put]
func (h *EntryHandler) Update(c echo.Context) error {
	ident, err := ctxIdentity(c)
	if err != nil {
		return err
	}

	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil || id <= 0 {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid entry ID")
	}

	var req updateEntryRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	entry, err := h.service.Update(c.Request().Context(), ident, id, ports.UpdateEntryInput{
		Hours:     req.Hours,
		Notes:     req.Notes,
		Domain:    req.Domain,
		Subdomain: req.Subdomain,
		Scope:     req.Scope,
	})
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, updateEntryResponse{
		Message: "Entry updated successfully",
		Entry:   entry,
	})
}

// Delete handles DELETE /v1/entries/:id.
//
// @Summary      Delete a time entry
// @Tags         entries
// @Produce      json
// @Security     BearerAuth
// @Param        id   path      int  true  "Entry ID"
// @Success      200  {object}  messageResponse
// @Failure      400  {object}  api.errorResponse
// @Failure      404  {object}  api.errorResponse
// @Router       /v1/entries/{id} [delete]
func (h *EntryHandler) Delete(c echo.Context) error {
	ident, err := ctxIdentity(c)
	if err != nil {
		return err
	}

	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil || id <= 0 {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid entry ID")
	}

	if err := h.service.Delete(c.Request().Context(), ident, id); err != nil {
		return err
	}

	return c.JSON(http.StatusOK, messageResponse{Message: "Entry deleted successfully"})
}

func countRejection(err error) {
	switch {
	case errors.Is(err, domain.ErrInvalidPath):
		metrics.EntriesRejectedTotal.WithLabelValues("invalid_path").Inc()
	case errors.Is(err, domain.ErrValidation):
		metrics.EntriesRejectedTotal.WithLabelValues("validation").Inc()
	}
}
