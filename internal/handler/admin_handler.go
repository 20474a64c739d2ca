package handler

import (
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"

	"github.com/gemechis22/campusswap-ecommerce/internal/errors"
	"github.com/gemechis22/campusswap-ecommerce/internal/model"
	"github.com/gemechis22/campusswap-ecommerce/internal/repository"
	"github.com/gemechis22/campusswap-ecommerce/internal/service"
)

// AdminHandler handles the admin dashboard and category management.
type AdminHandler struct {
	statsService service.StatsService
	categoryRepo repository.CategoryRepository
}

// NewAdminHandler creates a new admin handler.
func NewAdminHandler(statsService service.StatsService, categoryRepo repository.CategoryRepository) *AdminHandler {
	return &AdminHandler{
		statsService: statsService,
		categoryRepo: categoryRepo,
	}
}

// CategoryRequest represents a create-category request.
type CategoryRequest struct {
	Name string `json:"name" validate:"required,max=100"`
	Slug string `json:"slug" validate:"omitempty,max=100"`
}

// Dashboard godoc
// @Summary Admin dashboard aggregates
// @Tags admin
// @Produce json
// @Security BearerAuth
// @Success 200 {object} service.DashboardStats
// @Failure 401 {object} errors.ErrorResponse
// @Failure 403 {object} errors.ErrorResponse
// @Failure 500 {object} errors.ErrorResponse
// @Router /admin/dashboard [get]
func (h *AdminHandler) Dashboard(c echo.Context) error {
	stats, err := h.statsService.Dashboard(c.Request().Context())
	if err != nil {
		httpErr := errors.MapErrorToHTTP(err)
		return echo.NewHTTPError(httpErr.StatusCode, httpErr.ToErrorResponse())
	}

	return c.JSON(http.StatusOK, stats)
}

// CreateCategory godoc
// @Summary Create a category
// @Tags admin
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body CategoryRequest true "Category data"
// @Success 201 {object} model.Category
// @Failure 400 {object} errors.ErrorResponse
// @Failure 401 {object} errors.ErrorResponse
// @Failure 403 {object} errors.ErrorResponse
// @Failure 500 {object} errors.ErrorResponse
// @Router /admin/categories [post]
func (h *AdminHandler) CreateCategory(c echo.Context) error {
	var req CategoryRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	slug := req.Slug
	if slug == "" {
		slug = slugify(req.Name)
	}

	category := &model.Category{
		Name: req.Name,
		Slug: slug,
	}
	if err := h.categoryRepo.Create(c.Request().Context(), category); err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, errors.ErrorResponse{
			Error: "failed to create category",
			Code:  "CATEGORY_CREATE_FAILED",
		})
	}

	return c.JSON(http.StatusCreated, category)
}

// slugify turns a category name into a URL slug.
func slugify(name string) string {
	slug := strings.ToLower(strings.TrimSpace(name))
	slug = strings.Join(strings.Fields(slug), "-")
	return slug
}

// RequireAdmin rejects callers whose token lacks the admin role. Meant to
// wrap the /admin route group after the JWT middleware has run.
func RequireAdmin(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		claims := userClaims(c)
		if claims == nil {
			return echo.NewHTTPError(http.StatusUnauthorized, "invalid token")
		}
		if claims.Role != model.RoleAdmin {
			return echo.NewHTTPError(http.StatusForbidden, errors.ErrorResponse{
				Error: "admin access required",
				Code:  "FORBIDDEN",
			})
		}
		return next(c)
	}
}
