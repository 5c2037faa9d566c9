package handler

import (
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	"github.com/forefront/clientplus/internal/api/metrics"
	"github.com/forefront/clientplus/internal/core/domain"
	"github.com/forefront/clientplus/internal/core/ports"
)

// AdminHandler serves SUPER_USER management endpoints. The RBAC middleware
// gates every route before these methods run.
type AdminHandler struct {
	service ports.AdminService
}

func NewAdminHandler(service ports.AdminService) *AdminHandler {
	return &AdminHandler{service: service}
}

type createUserRequest struct {
	Username string `json:"username"  validate:"required,min=3,max=20"`
	Email    string `json:"email"     validate:"required,email"`
	Password string `json:"password"  validate:"required,min=8"`
	Role     string `json:"role"      validate:"required,oneof=SUPER_USER LEAD_CONSULTANT CONSULTANT SUPPORTING"`
	IsActive *bool  `json:"is_active"`
}

type createUserResponse struct {
	Message string       `json:"message"`
	User    *domain.User `json:"user"`
}

// ListUsers handles GET /v1/admin/users.
//
// @Summary      List users with entry counts and domain assignments
// @Tags         admin
// @Produce      json
// @Security     BearerAuth
// @Success      200  {array}   ports.UserWithStats
// @Failure      403  {object}  api.errorResponse
// @Router       /v1/admin/users [get]
func (h *AdminHandler) ListUsers(c echo.Context) error {
	users, err := h.service.ListUsers(c.Request().Context())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, users)
}

// CreateUser handles POST /v1/admin/users.
//
// @Summary      Create a user
// @Tags         admin
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body      createUserRequest  true  "New user details"
// @Success      201   {object}  createUserResponse
// @Failure      400   {object}  api.errorResponse
// @Failure      403   {object}  api.errorResponse
// @Failure      409   {object}  api.errorResponse
// @Router       /v1/admin/users [post]
func (h *AdminHandler) CreateUser(c echo.Context) error {
	var req createUserRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	isActive := true
	if req.IsActive != nil {
		isActive = *req.IsActive
	}

	user, err := h.service.CreateUser(c.Request().Context(), ports.CreateUserInput{
		Username: req.Username,
		Email:    req.Email,
		Password: req.Password,
		Role:     req.Role,
		IsActive: isActive,
	})
	if err != nil {
		return err
	}

	metrics.UsersCreatedTotal.WithLabelValues(user.Role).Inc()

	return c.JSON(http.StatusCreated, createUserResponse{
		Message: "User created successfully",
		User:    user,
	})
}

// ListDomains handles GET /v1/admin/domains — domains with assignment counts.
//
// @Summary      List domains with user and subdomain counts
// @Tags         admin
// @Produce      json
// @Security     BearerAuth
// @Success      200  {array}   ports.DomainWithCounts
// @Failure      403  {object}  api.errorResponse
// @Router       /v1/admin/domains [get]
func (h *AdminHandler) ListDomains(c echo.Context) error {
	domains, err := h.service.ListDomainsWithCounts(c.Request().Context())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, domains)
}

// ListUserPermissions handles GET /v1/admin/users/:id/permissions.
//
// @Summary      List a user's page-permission overrides
// @Tags         admin
// @Produce      json
// @Security     BearerAuth
// @Param        id   path      int  true  "User ID"
// @Success      200  {array}   domain.PagePermission
// @Failure      400  {object}  api.errorResponse
// @Failure      404  {object}  api.errorResponse
// @Router       /v1/admin/users/{id}/permissions [get]
func (h *AdminHandler) ListUserPermissions(c echo.Context) error {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil || id <= 0 {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid user ID")
	}

	perms, err := h.service.ListUserPermissions(c.Request().Context(), id)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, perms)
}
