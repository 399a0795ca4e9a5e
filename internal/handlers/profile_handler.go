package handlers

import (
	"errors"

	"github.com/gin-gonic/gin"

	"github.com/hopehr/hr-api/internal/authz"
	domain "github.com/hopehr/hr-api/internal/domain/employee"
	"github.com/hopehr/hr-api/internal/httperr"
	"github.com/hopehr/hr-api/internal/httpresp"
	"github.com/hopehr/hr-api/internal/middleware"
)

// ProfileHandler serves the caller's own employee record, looked up by the
// email carried in the token.
type ProfileHandler struct {
	repo domain.Repository
}

func NewProfileHandler(repo domain.Repository) *ProfileHandler {
	return &ProfileHandler{repo: repo}
}

type UpdateProfileImageRequest struct {
	ImageURL string `json:"image_url" binding:"required"`
}

func (h *ProfileHandler) Get(c *gin.Context) {
	email := c.MustGet(middleware.ContextUserEmail).(string)
	role := c.MustGet(middleware.ContextUserRole).(string)

	// The profile route is self-scoped by construction.
	if !authz.Allow(role, authz.ReadEmployee, true) {
		httperr.Forbidden(c, "access_denied", "Access denied.")
		return
	}

	emp, err := h.repo.FindEmployeeByEmail(c.Request.Context(), email)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			httperr.NotFound(c, "profile_not_found", "Employee profile not found.")
			return
		}
		httperr.Internal(c, "failed_to_get_profile", "Internal server error.")
		return
	}

	httpresp.OK(c, emp)
}

func (h *ProfileHandler) UpdateImage(c *gin.Context) {
	email := c.MustGet(middleware.ContextUserEmail).(string)
	role := c.MustGet(middleware.ContextUserRole).(string)

	if !authz.Allow(role, authz.UpdateOwnImage, true) {
		httperr.Forbidden(c, "access_denied", "Access denied.")
		return
	}

	emp, err := h.repo.FindEmployeeByEmail(c.Request.Context(), email)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			httperr.NotFound(c, "profile_not_found", "Employee profile not found.")
			return
		}
		httperr.Internal(c, "failed_to_get_profile", "Internal server error.")
		return
	}

	var req UpdateProfileImageRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "missing_image_url", "Image URL is required.")
		return
	}

	updated, err := h.repo.UpdateEmployee(c.Request.Context(), emp.ID, domain.UpdateFields{
		ImageURL: &req.ImageURL,
	})
	if err != nil {
		httperr.Internal(c, "failed_to_update_profile", "Internal server error.")
		return
	}

	httpresp.OK(c, updated)
}
