package handler

import (
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	"github.com/forefront/clientplus/internal/core/ports"
)

// ReferenceHandler serves the cascading selector and the client picker.
type ReferenceHandler struct {
	service ports.ReferenceService
}

func NewReferenceHandler(service ports.ReferenceService) *ReferenceHandler {
	return &ReferenceHandler{service: service}
}

// ListDomains handles GET /v1/domains.
//
// @Summary      List work domains
// @Tags         reference
// @Produce      json
// @Security     BearerAuth
// @Success      200  {array}   domain.Domain
// @Failure      401  {object}  api.errorResponse
// @Router       /v1/domains [get]
func (h *ReferenceHandler) ListDomains(c echo.Context) error {
	if _, err := ctxIdentity(c); err != nil {
		return err
	}

	domains, err := h.service.ListDomains(c.Request().Context())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, domains)
}

// ListSubdomains handles GET /v1/domains/:domainId/subdomains.
// An unknown domain id yields an empty list; the selector renders it disabled.
//
// @Summary      List subdomains of a domain
// @Tags         reference
// @Produce      json
// @Security     BearerAuth
// @Param        domainId  path      int  true  "Domain ID"
// @Success      200       {array}   domain.Subdomain
// @Failure      400       {object}  api.errorResponse
// @Router       /v1/domains/{domainId}/subdomains [get]
func (h *ReferenceHandler) ListSubdomains(c echo.Context) error {
	if _, err := ctxIdentity(c); err != nil {
		return err
	}

	domainID, err := strconv.ParseInt(c.Param("domainId"), 10, 64)
	if err != nil || domainID <= 0 {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid domain ID")
	}

	subdomains, err := h.service.ListSubdomains(c.Request().Context(), domainID)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, subdomains)
}

// ListScopes handles GET /v1/subdomains/:subdomainId/scopes.
//
// @Summary      List scopes of a subdomain
// @Tags         reference
// @Produce      json
// @Security     BearerAuth
// @Param        subdomainId  path      int  true  "Subdomain ID"
// @Success      200          {array}   domain.Scope
// @Failure      400          {object}  api.errorResponse
// @Router       /v1/subdomains/{subdomainId}/scopes [get]
func (h *ReferenceHandler) ListScopes(c echo.Context) error {
	if _, err := ctxIdentity(c); err != nil {
		return err
	}

	subdomainID, err := strconv.ParseInt(c.Param("subdomainId"), 10, 64)
	if err != nil || subdomainID <= 0 {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid subdomain ID")
	}

	scopes, err := h.service.ListScopes(c.Request().Context(), subdomainID)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, scopes)
}

// ListClients handles GET /v1/clients — the active client registry.
//
// @Summary      List active clients
// @Tags         reference
// @Produce      json
// @Security     BearerAuth
// @Success      200  {array}   domain.Client
// @Failure      401  {object}  api.errorResponse
// @Router       /v1/clients [get]
func (h *ReferenceHandler) ListClients(c echo.Context) error {
	if _, err := ctxIdentity(c); err != nil {
		return err
	}

	clients, err := h.service.ListActiveClients(c.Request().Context())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, clients)
}
