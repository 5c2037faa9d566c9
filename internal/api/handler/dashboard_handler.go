package handler

import (
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/forefront/clientplus/internal/core/ports"
)

// DashboardHandler serves the consultant dashboard reads.
type DashboardHandler struct {
	service ports.DashboardService
}

func NewDashboardHandler(service ports.DashboardService) *DashboardHandler {
	return &DashboardHandler{service: service}
}

// Stats handles GET /v1/dashboard/stats.
//
// @Summary      Dashboard statistics
// @Tags         dashboard
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  ports.DashboardStats
// @Failure      401  {object}  api.errorResponse
// @Router       /v1/dashboard/stats [get]
func (h *DashboardHandler) Stats(c echo.Context) error {
	ident, err := ctxIdentity(c)
	if err != nil {
		return err
	}

	stats, err := h.service.Stats(c.Request().Context(), ident, time.Now())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, stats)
}

// Today handles GET /v1/dashboard/today — the caller's entries for today.
//
// @Summary      Today's entries
// @Tags         dashboard
// @Produce      json
// @Security     BearerAuth
// @Success      200  {array}   domain.TimeEntry
// @Failure      401  {object}  api.errorResponse
// @Router       /v1/dashboard/today [get]
func (h *DashboardHandler) Today(c echo.Context) error {
	ident, err := ctxIdentity(c)
	if err != nil {
		return err
	}

	entries, err := h.service.TodayEntries(c.Request().Context(), ident, time.Now())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, entries)
}

// Activity handles GET /v1/dashboard/activity — the recent-activity feed.
//
// @Summary      Recent activity feed
// @Tags         dashboard
// @Produce      json
// @Security     BearerAuth
// @Success      200  {array}   ports.ActivityItem
// @Failure      401  {object}  api.errorResponse
// @Router       /v1/dashboard/activity [get]
func (h *DashboardHandler) Activity(c echo.Context) error {
	ident, err := ctxIdentity(c)
	if err != nil {
		return err
	}

	items, err := h.service.RecentActivity(c.Request().Context(), ident)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, items)
}
